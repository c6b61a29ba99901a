package checksum

import (
	"strconv"
	"strings"

	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

// The listing endpoints append a SHA-1 over a digest of the records so
// clients can detect tampering by caching proxies. Each record
// contributes the first and last digit of its ID plus two stat fields.

// LevelsHash computes the expected integrity hash for a level search
// page.
func LevelsHash(levels []entity.Level) string {
	var b strings.Builder
	for _, l := range levels {
		id := strconv.Itoa(l.ID)
		b.WriteByte(id[0])
		b.WriteByte(id[len(id)-1])
		b.WriteString(strconv.Itoa(l.Stars))
		if l.VerifiedCoins {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return robtop.SHA1(b.String() + robtop.SaltLevel)
}

// MapPacksHash computes the expected integrity hash for a map pack
// page.
func MapPacksHash(packs []entity.MapPack) string {
	var b strings.Builder
	for _, p := range packs {
		id := strconv.Itoa(p.ID)
		b.WriteByte(id[0])
		b.WriteByte(id[len(id)-1])
		b.WriteString(strconv.Itoa(p.Stars))
		b.WriteString(strconv.Itoa(p.Coins))
	}
	return robtop.SHA1(b.String() + robtop.SaltLevel)
}

// GauntletsHash computes the expected integrity hash for the gauntlet
// listing.
func GauntletsHash(gauntlets []entity.Gauntlet) string {
	var b strings.Builder
	for _, g := range gauntlets {
		b.WriteString(strconv.Itoa(g.ID))
		b.WriteString(strings.Join(g.Levels, ","))
	}
	return robtop.SHA1(b.String() + robtop.SaltLevel)
}

// DownloadHash computes the expected hash over a downloaded level's
// game data. Payloads under 41 characters are hashed whole; longer
// ones at 40 sampled positions.
func DownloadHash(levelString string) string {
	if len(levelString) < 41 {
		return robtop.SHA1(levelString + robtop.SaltLevel)
	}
	return robtop.SHA1(sampleString(levelString, 40) + robtop.SaltLevel)
}

// DownloadMetaHash computes the second download hash, taken over the
// level's metadata. An actual copy password is offset by 1000000
// before hashing; the free-copy marker "1" is not.
func DownloadMetaHash(l entity.Level) string {
	password := "0"
	switch l.Password {
	case "", "0":
	case "1":
		password = "1"
	default:
		if n, err := strconv.Atoi(l.Password); err == nil {
			password = strconv.Itoa(n + 1000000)
		} else {
			password = l.Password
		}
	}
	demon := "0"
	if l.Demon {
		demon = "1"
	}
	coins := "0"
	if l.VerifiedCoins {
		coins = "1"
	}
	fields := []string{
		strconv.Itoa(l.PlayerID),
		strconv.Itoa(l.Stars),
		demon,
		strconv.Itoa(l.ID),
		coins,
		strconv.Itoa(l.FeatureScore),
		password,
		strconv.Itoa(l.DailyNumber),
	}
	return robtop.SHA1(strings.Join(fields, ",") + robtop.SaltLevel)
}
