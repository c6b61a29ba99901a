package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/DiversenSato/dashtools/checksum"
	"github.com/DiversenSato/dashtools/robtop"
)

// testServer records the last request and answers with a fixed body.
type testServer struct {
	*httptest.Server

	path   string
	form   url.Values
	called bool
}

func newTestServer(t *testing.T, body string) *testServer {
	t.Helper()
	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		ts.called = true
		ts.path = r.URL.Path
		ts.form = r.PostForm
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestClient(srv *testServer, account Account) *Client {
	return New(account, &Config{
		Server:  srv.URL,
		Headers: map[string]string{},
	})
}

func testAccount() Account {
	return Account{
		PlayerID:  16,
		AccountID: 71,
		Password:  "hunter42",
		Username:  "RobTop",
		UDID:      "S1511111111111111111111111111000",
		UUID:      "16",
	}
}

func TestRegisterUsernameTaken(t *testing.T) {
	srv := newTestServer(t, "-2")
	c := newTestClient(srv, Account{})

	err := c.Register(context.Background(), "RobTop", "rob@example.com", "hunter42", nil)
	require.ErrorIs(t, err, ErrUsernameTaken)

	require.Equal(t, "/accounts/registerGJAccount.php", srv.path)
	require.Equal(t, SecretAccount, srv.form.Get("secret"))
	// Registration is the one versionless action.
	require.Empty(t, srv.form.Get("gameVersion"))
	require.Equal(t, "0", srv.form.Get("gdw"))
}

func TestLoginErrors(t *testing.T) {
	srv := newTestServer(t, "-12")
	c := newTestClient(srv, NewAccount(0, 0, "", ""))

	_, err := c.Login(context.Background(), "RobTop", "hunter42", nil)
	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t, "71,16")
	c := newTestClient(srv, NewAccount(0, 0, "", ""))

	session, err := c.Login(context.Background(), "RobTop", "hunter42", nil)
	require.NoError(t, err)
	require.Equal(t, Session{AccountID: 71, PlayerID: 16}, session)
	require.Equal(t, "RobTop", srv.form.Get("userName"))
	require.Equal(t, "hunter42", srv.form.Get("password"))
	require.NotEmpty(t, srv.form.Get("udid"))
}

func TestUnknownNegativeCode(t *testing.T) {
	srv := newTestServer(t, "-42")
	c := newTestClient(srv, Account{})

	err := c.Register(context.Background(), "x", "x@example.com", "pw", nil)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	require.Equal(t, -42, serverErr.Code)
}

func TestAuthRequiredBeforeNetwork(t *testing.T) {
	srv := newTestServer(t, "1")
	c := newTestClient(srv, Account{})

	_, err := c.GetChests(context.Background(), RewardChestNone, nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
	err = c.LikeLevel(context.Background(), 128, true, nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
	_, err = c.DownloadLevel(context.Background(), 128, true, nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.False(t, srv.called)
}

func TestGetLevelsPage(t *testing.T) {
	levels := "1:18101:2:Demon Park:5:2:6:16:10:50219:14:3002:18:10:38:1" +
		"|1:9500:2:Sonar:5:1:6:16:10:9000:14:200:18:0:38:0"
	users := "16:RobTop:71"
	songs := "1~|~911~|~2~|~Zebra~|~4~|~SoundGuy~|~10~|~https%3A%2F%2Fexample.com%2F911.mp3"
	hash := robtop.SHA1("11101"+"9000"+robtop.SaltLevel)
	srv := newTestServer(t, levels+"#"+users+"#"+songs+"#9999:0:10#"+hash)
	c := newTestClient(srv, Account{})

	res, err := c.GetLevels(context.Background(), LevelSearch{Query: "demon"}, nil)
	require.NoError(t, err)
	require.Len(t, res.Levels, 2)
	require.Equal(t, 18101, res.Levels[0].ID)
	require.Equal(t, "Demon Park", res.Levels[0].Name)
	require.Equal(t, "RobTop", res.Users["16"].Username)
	require.Equal(t, "Zebra", res.Songs["911"].Name)
	require.Equal(t, 9999, res.Total)
	require.True(t, res.IsHashValid)

	// A plain search travels as the most-liked ordering.
	require.Equal(t, "2", srv.form.Get("type"))
	require.Equal(t, "demon", srv.form.Get("str"))
	require.Equal(t, "-", srv.form.Get("len"))
	require.Equal(t, SecretCommon, srv.form.Get("secret"))
	require.Equal(t, "22", srv.form.Get("gameVersion"))
}

func TestGetLevelsTamperedHash(t *testing.T) {
	levels := "1:18101:2:Demon Park:18:10:38:1"
	srv := newTestServer(t, levels+"#16:RobTop:71##9999:0:10#deadbeef")
	c := newTestClient(srv, Account{})

	res, err := c.GetLevels(context.Background(), LevelSearch{}, nil)
	require.NoError(t, err)
	require.False(t, res.IsHashValid)
}

func TestGetLevelsDemonFilter(t *testing.T) {
	srv := newTestServer(t, "1:1:2:x:18:10:38:1#||#0:0:10#h")
	c := newTestClient(srv, Account{})

	_, err := c.GetLevels(context.Background(), LevelSearch{
		Difficulties: []int{ExtremeDemon},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "-2", srv.form.Get("diff"))
	require.Equal(t, strconv.Itoa(ExtremeDemon-5), srv.form.Get("demonFilter"))

	_, err = c.GetLevels(context.Background(), LevelSearch{
		Difficulties: []int{DifficultyHard, ExtremeDemon},
	}, nil)
	require.ErrorIs(t, err, ErrMultipleDemonFilters)
}

func TestLikeLevelChk(t *testing.T) {
	srv := newTestServer(t, "1")
	account := testAccount()
	c := newTestClient(srv, account)

	require.NoError(t, c.LikeLevel(context.Background(), 128, true, nil))

	form := srv.form
	require.Equal(t, "128", form.Get("itemID"))
	require.Equal(t, "0", form.Get("special"))
	require.Equal(t, "1", form.Get("like"))
	require.Equal(t, "1", form.Get("type"))
	require.Equal(t, "71", form.Get("accountID"))
	require.Equal(t, account.GJP2(), form.Get("gjp2"))
	require.Len(t, form.Get("rs"), 10)

	// The chk must be reproducible from the submitted fields.
	want := checksum.Chk(checksum.Values(
		0, 128, "1", 1, form.Get("rs"),
		account.AccountID, account.UDID, account.PlayerID,
	), robtop.KeyRate, robtop.SaltLikeOrRate)
	require.Equal(t, want, form.Get("chk"))
}

func TestParamsTiers(t *testing.T) {
	srv := newTestServer(t, "1")
	c := New(Account{}, &Config{
		Server:  srv.URL,
		Headers: map[string]string{},
		Params:  Params{"gameVersion": "21", "gdw": "1"},
	})

	_, err := c.ReportLevel(context.Background(), 128, nil)
	require.NoError(t, err)
	require.Equal(t, "21", srv.form.Get("gameVersion"))
	require.Equal(t, "1", srv.form.Get("gdw"))

	_, err = c.ReportLevel(context.Background(), 128, Params{"gameVersion": "20"})
	require.NoError(t, err)
	require.Equal(t, "20", srv.form.Get("gameVersion"))
}

func TestAccountServerRouting(t *testing.T) {
	main := newTestServer(t, "1")
	accounts := newTestServer(t, "GM;LL;22;42;x;y;")
	c := New(testAccount(), &Config{
		Server:        main.URL,
		AccountServer: accounts.URL,
		Headers:       map[string]string{},
	})

	save, err := c.LoadSaveData(context.Background(), nil)
	require.NoError(t, err)
	require.False(t, main.called)
	require.Equal(t, "/accounts/syncGJAccountNew.php", accounts.path)
	require.Equal(t, SecretAccount, accounts.form.Get("secret"))
	require.Equal(t, "GM", save.GameManager)
	require.Equal(t, "LL", save.LocalLevels)
	require.Equal(t, 22, save.GameVersion)
}

func TestCustomServerKeepsAccountTraffic(t *testing.T) {
	srv := newTestServer(t, "1")
	c := newTestClient(srv, testAccount())

	err := c.BackupSaveData(context.Background(), "GM", "LL", nil)
	require.NoError(t, err)
	require.Equal(t, "/backupGJAccountNew.php", srv.path)
	require.Equal(t, "GM;LL", srv.form.Get("saveData"))
}

func TestEndpointTables(t *testing.T) {
	require.Equal(t, "likeGJItem21.php", Endpoints2100[ActionLikeItem])
	require.Equal(t, "likeGJItem211.php", DefaultEndpoints[ActionLikeItem])
	_, ok := Endpoints2113[ActionGetLists]
	require.False(t, ok)

	srv := newTestServer(t, "1")
	c := New(Account{}, &Config{
		Server:    srv.URL,
		Endpoints: Endpoints2113,
		Headers:   map[string]string{},
	})
	_, err := c.GetLists(context.Background(), ListSearch{}, nil)
	require.Error(t, err)
	require.False(t, srv.called)
}

func TestGetSongInfo(t *testing.T) {
	srv := newTestServer(t, "1~|~911~|~2~|~Zebra~|~4~|~SoundGuy")
	c := newTestClient(srv, Account{})

	song, err := c.GetSongInfo(context.Background(), 911, nil)
	require.NoError(t, err)
	require.Equal(t, 911, song.ID)
	require.Equal(t, "Zebra", song.Name)

	srv2 := newTestServer(t, "-1")
	c2 := newTestClient(srv2, Account{})
	_, err = c2.GetSongInfo(context.Background(), 911, nil)
	require.ErrorIs(t, err, ErrSongNotFound)
}

func TestContentToken(t *testing.T) {
	content := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expires := r.URL.Query().Get("expires")
		require.NotEmpty(t, expires)
		require.Equal(t, checksum.CDNToken(r.URL.Path, expires), r.URL.Query().Get("token"))
		_, _ = w.Write([]byte("130\n"))
	}))
	defer content.Close()

	c := New(Account{}, &Config{
		Server:        content.URL,
		ContentServer: content.URL,
		Headers:       map[string]string{},
	})
	v, err := c.GetMusicLibraryVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, 130, v)
}

// zipBlob packs a library document the way the content server ships
// it: zlib-compressed, then base64url.
func zipBlob(t *testing.T, doc string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return []byte(robtop.Base64EncodeBytes(buf.Bytes()))
}

func newContentClient(t *testing.T, path, doc string) *Client {
	t.Helper()
	content := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, path, r.URL.Path)
		_, _ = w.Write(zipBlob(t, doc))
	}))
	t.Cleanup(content.Close)
	return New(Account{}, &Config{
		Server:        content.URL,
		ContentServer: content.URL,
		Headers:       map[string]string{},
	})
}

func TestGetMusicLibrary(t *testing.T) {
	doc := "129|" +
		"1,ArtistOne,example%2Ecom,ytchan;|" +
		"10,First Song,1,1048576,95,1.3;|" +
		"1,Club;3,Chiptune;"
	c := newContentClient(t, "/music/musiclibrary_02.dat", doc)

	lib, err := c.GetMusicLibrary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 129, lib.Version)
	require.Len(t, lib.Artists, 1)
	require.Len(t, lib.Songs, 1)
	require.Equal(t, "First Song", lib.Songs[0].Name)
	require.Equal(t, "Chiptune", lib.Tags[3])
}

func TestGetSFXLibrary(t *testing.T) {
	doc := "1,10923,1,0;2,Effects,1,1;3,Boom.ogg,0,2,4096,150;|" +
		"SoundSmith,https%3A%2F%2Fexample.com;"
	c := newContentClient(t, "/sfx/sfxlibrary.dat", doc)

	lib, err := c.GetSFXLibrary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10923, lib.Version)
	require.Len(t, lib.Files, 3)
	require.Equal(t, "Boom.ogg", lib.Tree()[2].Files[0].Name)
}

func TestUploadCommentChk(t *testing.T) {
	srv := newTestServer(t, "1")
	account := testAccount()
	c := newTestClient(srv, account)

	require.NoError(t, c.UploadComment(context.Background(), 128, "gg", 93, nil))

	encoded := robtop.Base64Encode("gg")
	require.Equal(t, encoded, srv.form.Get("comment"))
	require.Equal(t, "93", srv.form.Get("percent"))
	want := checksum.Chk(checksum.Values(
		account.Username, encoded, 128, 93, 0,
	), robtop.KeyComment, robtop.SaltComment)
	require.Equal(t, want, srv.form.Get("chk"))
}

func TestGetLevelCommentsEmpty(t *testing.T) {
	srv := newTestServer(t, "-1")
	c := newTestClient(srv, Account{})

	res, err := c.GetLevelComments(context.Background(), 128, 20, CommentsTop, 0, nil)
	require.NoError(t, err)
	require.Empty(t, res.Comments)
}

func TestNewAccountDefaults(t *testing.T) {
	a := NewAccount(16, 71, "hunter42", "")
	require.Equal(t, "Player", a.Username)
	require.Equal(t, "16", a.UUID)
	require.Len(t, a.UDID, 32)
	require.Equal(t, "S15", a.UDID[:3])
	require.Equal(t, "1000", a.UDID[len(a.UDID)-4:])
	require.Equal(t, robtop.GJP2("hunter42"), a.GJP2())
}
