package checksum

import "github.com/DiversenSato/dashtools/robtop"

// LeaderboardSeed derives the anti-tamper seed submitted next to
// classic score stats. The formula is a protocol constant; do not
// simplify it.
func LeaderboardSeed(clicks, percentage, seconds, hasPlayed int) int {
	return 1482*hasPlayed +
		(clicks+3991)*(percentage+8354) +
		(seconds+4085)*(seconds+4085) -
		50028039
}

// PlatformerLeaderboardSeed derives the platformer-mode seed from the
// best time (milliseconds) and best points. The result is always in
// [0, 77849).
func PlatformerLeaderboardSeed(time, points int) int {
	if points < 0 {
		points = -points
	}
	return ((((time+7890)%34567)*601+((points+3456)%78901)*967+94819)%94433*829) % 77849
}

// sampleString spreads n probe positions over s with a fixed stride.
// The server verifies the same sample, which lets it confirm the
// client saw the full payload without either side hashing all of it.
func sampleString(s string, n int) string {
	hash := make([]byte, n)
	m := len(s) / n
	for i := n - 1; i >= 0; i-- {
		hash[i] = s[i*m]
	}
	return string(hash)
}

// UploadSeed2 produces the seed2 value for level uploads from the
// level data string. Payloads under 51 characters are checksummed
// whole; longer ones are sampled at 50 positions.
func UploadSeed2(levelString string) string {
	if len(levelString) < 51 {
		return Chk([]string{levelString}, robtop.KeyLevel, robtop.SaltLevel)
	}
	return Chk([]string{sampleString(levelString, 50)}, robtop.KeyLevel, robtop.SaltLevel)
}

// UploadListSeed produces the seed for level list uploads. The joined
// level-ID string plays the role of the payload, the caller's account
// ID acts as the salt and the short random seed2 as the key.
func UploadListSeed(listLevels, accountID, seed2 string) string {
	if len(listLevels) < 51 {
		return Chk([]string{listLevels}, seed2, accountID)
	}
	return Chk([]string{sampleString(listLevels, 50)}, seed2, accountID)
}
