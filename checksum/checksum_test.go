package checksum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DiversenSato/dashtools/entity"
	"github.com/DiversenSato/dashtools/robtop"
)

func TestChkRoundTrip(t *testing.T) {
	chk := Chk(Values(128, 1, "aBcDeFgHiJ", 5021), robtop.KeyLevel, robtop.SaltLevel)

	decoded, err := robtop.XORDecode(chk, robtop.KeyLevel)
	require.NoError(t, err)
	require.Equal(t, robtop.SHA1("1281aBcDeFgHiJ5021"+robtop.SaltLevel), decoded)
}

func TestChkOrderSensitive(t *testing.T) {
	a := Chk(Values(1, 2), robtop.KeyLevel, robtop.SaltLevel)
	b := Chk(Values(2, 1), robtop.KeyLevel, robtop.SaltLevel)
	require.NotEqual(t, a, b)
}

func TestValues(t *testing.T) {
	require.Equal(t,
		[]string{"abc", "42", "1", "0", "7"},
		Values("abc", 42, true, false, int64(7)))
}

func TestLeaderboardSeed(t *testing.T) {
	require.Equal(t, 1482, LeaderboardSeed(0, 0, 0, 1))
	require.Equal(t, 0, LeaderboardSeed(0, 0, 0, 0))
}

func TestPlatformerLeaderboardSeedRange(t *testing.T) {
	cases := [][2]int{{0, 0}, {123456, 789}, {1, -50}, {999999999, 31337}}
	for _, c := range cases {
		seed := PlatformerLeaderboardSeed(c[0], c[1])
		require.GreaterOrEqual(t, seed, 0)
		require.Less(t, seed, 77849)
	}
	require.Equal(t,
		PlatformerLeaderboardSeed(10, 50),
		PlatformerLeaderboardSeed(10, -50))
}

func TestDownloadHashShort(t *testing.T) {
	s := "kS38|kA13,0"
	require.Equal(t, robtop.SHA1(s+robtop.SaltLevel), DownloadHash(s))
}

func TestDownloadHashSampled(t *testing.T) {
	s := strings.Repeat("x", 400)
	require.Equal(t, robtop.SHA1(strings.Repeat("x", 40)+robtop.SaltLevel), DownloadHash(s))
}

func TestUploadSeed2Short(t *testing.T) {
	s := "kS38|kA13,0|kA15,0"
	require.Equal(t, Chk([]string{s}, robtop.KeyLevel, robtop.SaltLevel), UploadSeed2(s))
}

func TestUploadSeed2Sampled(t *testing.T) {
	s := strings.Repeat("ab", 100)
	require.NotEqual(t, UploadSeed2(s), UploadSeed2("c"+s[1:]))
	require.Equal(t, UploadSeed2(s), UploadSeed2(s))
}

func TestLevelsHash(t *testing.T) {
	levels := []entity.Level{
		{ID: 128, Stars: 10, VerifiedCoins: true},
		{ID: 905, Stars: 0},
	}
	require.Equal(t, robtop.SHA1("18101"+"9500"+robtop.SaltLevel), LevelsHash(levels))
}

func TestMapPacksHash(t *testing.T) {
	packs := []entity.MapPack{{ID: 5, Stars: 10, Coins: 2}}
	require.Equal(t, robtop.SHA1("55102"+robtop.SaltLevel), MapPacksHash(packs))
}

func TestGauntletsHash(t *testing.T) {
	gs := []entity.Gauntlet{
		{ID: 1, Levels: []string{"27732941", "28200611"}},
	}
	require.Equal(t, robtop.SHA1("127732941,28200611"+robtop.SaltLevel), GauntletsHash(gs))
}

func TestDownloadMetaHash(t *testing.T) {
	l := entity.Level{
		ID:           128,
		PlayerID:     4,
		Stars:        10,
		Demon:        true,
		Password:     "123456",
		FeatureScore: 9530,
		DailyNumber:  0,
	}
	require.Equal(t,
		robtop.SHA1("4,10,1,128,0,9530,1123456,0"+robtop.SaltLevel),
		DownloadMetaHash(l))

	l.Password = "1"
	require.Equal(t,
		robtop.SHA1("4,10,1,128,0,9530,1,0"+robtop.SaltLevel),
		DownloadMetaHash(l))
}

func TestCDNToken(t *testing.T) {
	tok := CDNToken("/music/10000000.ogg", "1756700000")
	require.NotContains(t, tok, "=")
	require.NotEmpty(t, tok)
	require.Equal(t, tok, CDNToken("/music/10000000.ogg", "1756700000"))
	require.NotEqual(t, tok, CDNToken("/music/10000001.ogg", "1756700000"))
}
