package entity

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/DiversenSato/dashtools/robtop"
)

func TestDecodeUserMinimal(t *testing.T) {
	u, err := DecodeUser("1:TestUser:16:12345", ":")
	require.NoError(t, err)
	require.Equal(t, "TestUser", u.Username)
	require.Equal(t, 12345, u.AccountID)
	require.Zero(t, u.Stars)
	require.Zero(t, u.PlayerID)
	require.Nil(t, u.DemonCounts)
	require.Nil(t, u.Unknown)
}

func TestDecodeUserEmpty(t *testing.T) {
	_, err := DecodeUser("", ":")
	require.Error(t, err)
}

func TestDecodeUserBreakdowns(t *testing.T) {
	raw := "1:Demons:4:42:55:1,2,3,4,5,6,7,8,9,10,11,12:56:1,2,3,4,5,6,7,8:57:9,8,7,6,5,4"
	u, err := DecodeUser(raw, ":")
	require.NoError(t, err)
	require.Equal(t, 42, u.Demons)
	require.NotNil(t, u.DemonCounts)
	require.Equal(t, 1, u.DemonCounts.Classic.Easy)
	require.Equal(t, 5, u.DemonCounts.Classic.Extreme)
	require.Equal(t, 6, u.DemonCounts.Platformer.Easy)
	require.Equal(t, 11, u.DemonCounts.Weekly)
	require.Equal(t, 12, u.DemonCounts.Gauntlet)
	require.NotNil(t, u.LevelCounts)
	require.Equal(t, 1, u.LevelCounts.Classic.Auto)
	require.Equal(t, 7, u.LevelCounts.Daily)
	require.Equal(t, 8, u.LevelCounts.Gauntlet)
	require.Equal(t, 9, u.LevelCounts.Platformer.Auto)
	require.Equal(t, 4, u.LevelCounts.Platformer.Insane)
}

func TestDecodeUserCommentFallback(t *testing.T) {
	encoded := robtop.Base64Encode("hello world")
	u, err := DecodeUser("1:A:35:"+encoded, ":")
	require.NoError(t, err)
	require.Equal(t, "hello world", u.Comment)
}

func TestDecodeUserUnknownFields(t *testing.T) {
	u, err := DecodeUser("1:A:16:5:999:mystery", ":")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"999": "mystery"}, u.Unknown)
}

func TestDecodeUserIndex(t *testing.T) {
	idx := DecodeUserIndex("71:Creator:1234|:Skipped:9|72:Other:5678")
	require.Len(t, idx, 2)
	require.Equal(t, UserRef{Username: "Creator", AccountID: 1234}, idx["71"])
	require.Equal(t, UserRef{Username: "Other", AccountID: 5678}, idx["72"])
}

func TestDecodeLevelDifficultyDivisor(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"divisor present", "1:128:9:30:8:10", 3},
		{"divisor zero", "1:128:9:30:8:0", 30},
		{"divisor absent", "1:128:9:30", 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := DecodeLevel(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.want, l.Difficulty)
		})
	}
}

func TestDecodeLevelPassword(t *testing.T) {
	cases := []struct {
		name  string
		plain string
		want  string
	}{
		{"free copy", "1", "1"},
		{"numeric password", "1123456", "123456"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc := robtop.XOREncode(tc.plain, robtop.KeyLevelPassword)
			l, err := DecodeLevel("1:128:27:" + enc)
			require.NoError(t, err)
			require.Equal(t, tc.want, l.Password)
		})
	}
}

func TestDecodeLevelDescription(t *testing.T) {
	enc := robtop.Base64Encode("a nice level")
	l, err := DecodeLevel("1:128:2:TestLevel:3:" + enc)
	require.NoError(t, err)
	require.Equal(t, "TestLevel", l.Name)
	require.Equal(t, "a nice level", l.Description)
}

func TestDecodeLevelSongLists(t *testing.T) {
	l, err := DecodeLevel("1:128:52:100,200:53:10,20,30")
	require.NoError(t, err)
	require.Equal(t, []string{"100", "200"}, l.SongIDs)
	require.Equal(t, []string{"10", "20", "30"}, l.SFXIDs)
}

func TestDecodeLevelOldClearPassword(t *testing.T) {
	l, err := DecodeLevelOld("1:128:27:4321")
	require.NoError(t, err)
	require.Equal(t, "4321", l.Password)
}

func TestDecodeCommentWithUser(t *testing.T) {
	content := robtop.Base64Encode("nice one")
	raw := "2~" + content + "~3~999~4~12~6~5551~9~1 day~10~87:1~Poster~16~321"
	c, err := DecodeComment(raw)
	require.NoError(t, err)
	require.Equal(t, 5551, c.ID)
	require.Equal(t, "nice one", c.Content)
	require.Equal(t, 999, c.PlayerID)
	require.Equal(t, 12, c.Likes)
	require.Equal(t, 87, c.Percent)
	require.NotNil(t, c.User)
	require.Equal(t, "Poster", c.User.Username)
	require.Equal(t, 321, c.User.AccountID)
}

func TestDecodeCommentStandalone(t *testing.T) {
	c, err := DecodeComment("2~" + robtop.Base64Encode("post") + "~6~7")
	require.NoError(t, err)
	require.Equal(t, "post", c.Content)
	require.Nil(t, c.User)
}

func TestDecodeMessage(t *testing.T) {
	title := robtop.Base64Encode("Hey")
	body := robtop.XOREncode("secret text", robtop.KeyMessages)
	m, err := DecodeMessage("1:77:2:555:4:" + title + ":5:" + body + ":6:Sender:8:1")
	require.NoError(t, err)
	require.Equal(t, 77, m.ID)
	require.Equal(t, "Hey", m.Title)
	require.Equal(t, "secret text", m.Content)
	require.Equal(t, "Sender", m.Username)
	require.True(t, m.Read)
	require.False(t, m.Outgoing)
}

func TestDecodeSongMandatoryFields(t *testing.T) {
	_, err := DecodeSong("1~|~100")
	require.Error(t, err)
	_, err = DecodeSong("2~|~Name Only")
	require.Error(t, err)
}

func TestDecodeSong(t *testing.T) {
	raw := "1~|~912~|~2~|~Song~|~3~|~57~|~4~|~Artist~|~5~|~4.32~|~8~|~1~|~10~|~" +
		"https%3A%2F%2Fcdn.example.com%2F912.mp3"
	s, err := DecodeSong(raw)
	require.NoError(t, err)
	require.Equal(t, 912, s.ID)
	require.Equal(t, "Song", s.Name)
	require.Equal(t, 57, s.ArtistID)
	require.Equal(t, "Artist", s.ArtistName)
	require.Equal(t, 4.32, s.Size)
	require.True(t, s.IsVerified)
	require.Equal(t, "https://cdn.example.com/912.mp3", s.Link)
	require.False(t, s.HasNongType)
}

func TestDecodeSongsSkipsBroken(t *testing.T) {
	good := "1~|~10~|~2~|~A"
	bad := "2~|~B"
	out := DecodeSongs(good + "~:~" + bad)
	require.Len(t, out, 1)
	require.Equal(t, "A", out["10"].Name)
}

func TestDecodeMapPack(t *testing.T) {
	p, err := DecodeMapPack("1:5:2:Demon Pack:3:101,102,103:4:10:5:2:6:1:7:255,0,0:8:0,125,255")
	require.NoError(t, err)
	require.Equal(t, 5, p.ID)
	require.Equal(t, "Demon Pack", p.Name)
	require.Equal(t, []int{101, 102, 103}, p.Levels)
	require.Equal(t, RGB{255, 0, 0}, p.TextColor)
	require.Equal(t, RGB{0, 125, 255}, p.BarColor)
}

func TestDecodeGauntlet(t *testing.T) {
	g, err := DecodeGauntlet("1:2:3:1,2,3,4,5")
	require.NoError(t, err)
	require.Equal(t, 2, g.ID)
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, g.Levels)
}

func TestDecodeChestRewards(t *testing.T) {
	info := "nonce:12345:9:udid-1:6789:3600:50,2,1,0:4:7200:200,10,5,6:1:1"
	blob := robtop.XOREncode(info, robtop.KeyChestRewards)
	body := "AbCdE" + blob + "|" + robtop.SHA1(blob+robtop.SaltRewards)

	r, err := DecodeChestRewards(body)
	require.NoError(t, err)
	require.Equal(t, "AbCdE", r.Prefix)
	require.Equal(t, "nonce", r.Nonce)
	require.Equal(t, 12345, r.PlayerID)
	require.Equal(t, 6789, r.AccountID)
	require.Equal(t, 3600, r.SmallChestCooldown)
	require.Equal(t, Chest{Orbs: 50, Diamonds: 2, Item1: 1, Item2: 0}, r.SmallChest)
	require.Equal(t, Chest{Orbs: 200, Diamonds: 10, Item1: 5, Item2: 6}, r.LargeChest)
	require.True(t, r.IsHashValid)
}

func TestDecodeChestRewardsBadHash(t *testing.T) {
	info := "n:1:2:u:3:4:1,1,1,1:0:5:2,2,2,2:0:1"
	blob := robtop.XOREncode(info, robtop.KeyChestRewards)
	r, err := DecodeChestRewards("XXXXX" + blob + "|deadbeef")
	require.NoError(t, err)
	require.False(t, r.IsHashValid)
}

func TestDecodeQuests(t *testing.T) {
	info := "n:1:2:u:3:600:q1,1,10,5,Orbs:q2,2,3,8,Coins:q3,3,7,12,Stars"
	blob := robtop.XOREncode(info, robtop.KeyChallenges)
	body := "QuEsT" + blob + "|" + robtop.SHA1(blob+robtop.SaltChallenges)

	q, err := DecodeQuests(body)
	require.NoError(t, err)
	require.Equal(t, 600, q.QuestsCooldown)
	require.Equal(t, Quest{ID: "q2", Type: 2, Amount: 3, Reward: 8, Name: "Coins"}, q.Quests[1])
	require.True(t, q.IsHashValid)
}

func TestParsePagination(t *testing.T) {
	p := ParsePagination("9999:20:10")
	require.Equal(t, Pagination{Total: 9999, Offset: 20, PageSize: 10}, p)
}

func TestSplitRecordsCountsEmpties(t *testing.T) {
	recs, empty := SplitRecords("a|||b|c|")
	require.Equal(t, []string{"a", "b", "c"}, recs)
	require.Equal(t, 3, empty)
}

func zipLibrary(t *testing.T, doc string) string {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return robtop.Base64EncodeBytes(buf.Bytes())
}

func TestParseMusicLibrary(t *testing.T) {
	doc := "129|" +
		"1,ArtistOne,example%2Ecom,ytchan;|" +
		"10,First Song,1,1048576,95,1.3;|" +
		"1,Club;3,Chiptune;"
	lib, err := ParseMusicLibrary(zipLibrary(t, doc))
	require.NoError(t, err)
	require.Equal(t, 129, lib.Version)
	require.Len(t, lib.Artists, 1)
	require.Equal(t, "example.com", lib.Artists[0].Website)
	require.Len(t, lib.Songs, 1)
	require.Equal(t, "First Song", lib.Songs[0].Name)
	require.Equal(t, []int{1, 3}, lib.Songs[0].Tags)
	require.Equal(t, "Chiptune", lib.Tags[3])
}

func TestParseMusicLibraryNewFormat(t *testing.T) {
	doc := "150|" +
		";|" +
		"10,New Song,1,2048,120,1,2,3.4,link%2Fx,1,7,42;|" +
		";"
	lib, err := ParseMusicLibrary(zipLibrary(t, doc))
	require.NoError(t, err)
	require.Len(t, lib.Songs, 1)
	s := lib.Songs[0]
	require.Equal(t, 2, s.MusicPlatform)
	require.Equal(t, []int{3, 4}, s.ExtraArtists)
	require.Equal(t, "link/x", s.ExternalLink)
	require.True(t, s.NewButton)
	require.Equal(t, 7, s.PriorityOrder)
	require.Equal(t, 42, s.SongNumber)
}

func TestParseMusicLibraryUnsupported(t *testing.T) {
	doc := "1|;|10,only,three;|;"
	_, err := ParseMusicLibrary(zipLibrary(t, doc))
	require.ErrorContains(t, err, "unsupported music library format")
}

func TestParseSFXLibrary(t *testing.T) {
	doc := "1,10923,1,0;2,Effects,1,1;3,Boom.ogg,0,2,4096,150;|" +
		"SoundSmith,https%3A%2F%2Fexample.com;"
	lib, err := ParseSFXLibrary(zipLibrary(t, doc))
	require.NoError(t, err)
	require.Equal(t, 10923, lib.Version)
	require.Len(t, lib.Credits, 1)
	require.Len(t, lib.Files, 3)

	tree := lib.Tree()
	effects := tree[2]
	require.NotNil(t, effects)
	require.Equal(t, "Effects", effects.Name)
	require.Len(t, effects.Files, 1)
	require.Equal(t, "Boom.ogg", effects.Files[0].Name)
	require.Equal(t, 4096, effects.Files[0].FileSize)
	root := tree[1]
	require.Len(t, root.Folders, 1)
	require.Same(t, effects, root.Folders[0])
}
