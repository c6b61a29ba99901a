package robtop

import (
	"fmt"
	"math/rand"
	"strings"
)

// RS returns an n-character random string over the default alphanumeric
// charset. Used for the "rs" nonces echoed next to checksums; the nonce
// is fresh per request but the server is only assumed to check
// consistency, not uniqueness.
func RS(n int) string {
	return RSCharset(n, RSCharacters)
}

func RSCharset(n int, charset string) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(charset[rand.Intn(len(charset))])
	}
	return b.String()
}

// RandomNumber returns a uniform integer in [min, max].
func RandomNumber(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// RandomUUID generates a v4-shaped UUID from the hex charset.
func RandomUUID() string {
	hex := HexCharacters
	return fmt.Sprintf("%s-%s-4%s-%s-%s",
		RSCharset(8, hex), RSCharset(4, hex), RSCharset(3, hex), RSCharset(4, hex), RSCharset(10, hex))
}

// HSV renders a hue/saturation/value channel string the way the game
// serializes icon color modifiers.
func HSV(h, s, v int, sChecked, vChecked bool) string {
	sc, vc := 0, 0
	if sChecked {
		sc = 1
	}
	if vChecked {
		vc = 1
	}
	return fmt.Sprintf("%da%da%da%da%d", h, s, v, sc, vc)
}
