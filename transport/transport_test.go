package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/database/getGJLevels21.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "Wmfd2893gb7", r.FormValue("secret"))
		require.Empty(t, r.Header.Get("User-Agent"))
		w.Write([]byte("record#9999:0:10#hash"))
	}))
	defer srv.Close()

	tr := New(map[string]string{"User-Agent": ""})
	body, err := tr.PostForm(context.Background(), srv.URL, "/database/getGJLevels21.php",
		map[string]string{"secret": "Wmfd2893gb7"})
	require.NoError(t, err)
	require.Equal(t, "record#9999:0:10#hash", body)
}

func TestPostFormNegativeBodyPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("-1"))
	}))
	defer srv.Close()

	tr := New(nil)
	body, err := tr.PostForm(context.Background(), srv.URL, "/x.php", nil)
	require.NoError(t, err)
	require.Equal(t, "-1", body)
}

func TestPostFormBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	tr := New(nil)
	_, err := tr.PostForm(context.Background(), srv.URL, "/x.php", nil)
	require.ErrorContains(t, err, "403")
}

func TestGetQueryAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "10000000", r.URL.Query().Get("song"))
		require.Equal(t, "cdn.example.com", r.Host)
		w.Write([]byte{0x4f, 0x67, 0x67, 0x53})
	}))
	defer srv.Close()

	tr := New(nil)
	body, err := tr.Get(context.Background(), srv.URL, "/music",
		map[string][]string{"song": {"10000000"}},
		map[string]string{"Host": "cdn.example.com"})
	require.NoError(t, err)
	require.Equal(t, []byte{0x4f, 0x67, 0x67, 0x53}, body)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr := New(nil)
	_, err := tr.PostForm(ctx, srv.URL, "/x.php", nil)
	require.Error(t, err)
}
