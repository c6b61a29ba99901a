// Package entity decodes the flat positional records exchanged with
// the servers into typed values, and holds the static field-ID schemas
// for every record kind.
package entity

import (
	"strconv"
	"strings"

	"github.com/DiversenSato/dashtools/robtop"
)

// Presence distinguishes an omitted field from an explicit zero. The
// protocol cares about the difference in a few places (difficulty
// divisors, song nong types), so decoders must not collapse the two
// with truthiness checks.
type Presence int

const (
	Absent Presence = iota
	Zero
	NonZero
)

// Raw is a positional record after splitting: field-ID string → raw
// wire value.
type Raw map[string]string

func SplitRaw(s, sep string) Raw {
	return Raw(robtop.Split(s, sep))
}

func (r Raw) Has(id int) bool {
	_, ok := r[strconv.Itoa(id)]
	return ok
}

// Str returns the raw string value, or "" when absent.
func (r Raw) Str(id int) string {
	return r[strconv.Itoa(id)]
}

// Int parses the field as an integer. Absent or non-numeric values
// yield 0; fractional values are truncated.
func (r Raw) Int(id int) int {
	v, ok := r[strconv.Itoa(id)]
	if !ok {
		return 0
	}
	return atoi(v)
}

// Bool is true only for a present field with a nonzero numeric value.
func (r Raw) Bool(id int) bool {
	v, ok := r[strconv.Itoa(id)]
	if !ok {
		return false
	}
	return parseFloat(v) != 0
}

// Presence reports the tri-state interpretation of a field.
func (r Raw) Presence(id int) Presence {
	v, ok := r[strconv.Itoa(id)]
	if !ok {
		return Absent
	}
	if parseFloat(v) == 0 {
		return Zero
	}
	return NonZero
}

func atoi(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return int(parseFloat(s))
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// splitInts parses a comma-joined integer sub-array.
func splitInts(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		out[i] = atoi(p)
	}
	return out
}

func intAt(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	return atoi(parts[i])
}

func strAt(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}
