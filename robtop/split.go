package robtop

import "strings"

// Split breaks a positional record ("1:value:2:value:...") into a
// field-ID → raw-value map. The input alternates keys and values on
// the separator; a trailing key with no value is dropped.
func Split(s, sep string) map[string]string {
	parts := strings.Split(s, sep)
	m := make(map[string]string, len(parts)/2)
	for i := 0; i+1 < len(parts); i += 2 {
		m[parts[i]] = parts[i+1]
	}
	return m
}

// Join is the encoder-side inverse of Split for an ordered field list.
// Order matters on the wire whenever the result feeds a checksum.
func Join(pairs [][2]string, sep string) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(p[0])
		b.WriteString(sep)
		b.WriteString(p[1])
	}
	return b.String()
}
