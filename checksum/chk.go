// Package checksum derives the integrity values the servers validate
// on every mutating call: the keyed "chk" digests, leaderboard seeds,
// content-delivery tokens and the sampled content hashes for level,
// map pack and gauntlet listings.
package checksum

import (
	"fmt"

	"github.com/DiversenSato/dashtools/robtop"
)

// Chk concatenates values in order, appends the salt, hashes with
// SHA-1, XORs the hex digest with key and base64url-encodes the
// result. The value order is part of the protocol: a wrong order is
// silently rejected server-side, not reported as an error.
func Chk(values []string, key, salt string) string {
	var concat string
	for _, v := range values {
		concat += v
	}
	return robtop.Base64Encode(robtop.XOR(robtop.SHA1(concat+salt), key))
}

// Values stringifies a mixed argument list for Chk, keeping order.
func Values(vs ...any) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		switch t := v.(type) {
		case string:
			out[i] = t
		case int:
			out[i] = fmt.Sprintf("%d", t)
		case int64:
			out[i] = fmt.Sprintf("%d", t)
		case bool:
			if t {
				out[i] = "1"
			} else {
				out[i] = "0"
			}
		default:
			out[i] = fmt.Sprintf("%v", t)
		}
	}
	return out
}
