package robtop

import (
	"bytes"
	"compress/zlib"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXORInvolution(t *testing.T) {
	cases := []struct {
		name string
		s    string
		key  string
	}{
		{"ascii", "hello world", "41274"},
		{"empty string", "", "14251"},
		{"empty key", "payload", ""},
		{"key longer than data", "ab", "26364"},
		{"binary-ish", "\x00\x01\xfe\xff", "59182"},
		{"long", strings.Repeat("abcXYZ123", 500), "85271"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.s, XOR(XOR(tc.s, tc.key), tc.key))
		})
	}
}

func TestXORRandomStrings(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := RS(RandomNumber(0, 64))
		key := RS(RandomNumber(1, 8))
		require.Equal(t, s, XOR(XOR(s, key), key))
	}
}

func TestXOREncodeDecode(t *testing.T) {
	body := "meet me at the secret level"
	enc := XOREncode(body, KeyMessages)
	dec, err := XORDecode(enc, KeyMessages)
	require.NoError(t, err)
	require.Equal(t, body, dec)
}

func TestBase64URLAlphabet(t *testing.T) {
	// 0xfb 0xff encodes to "+/" in the standard alphabet.
	enc := Base64EncodeBytes([]byte{0xfb, 0xff})
	require.NotContains(t, enc, "+")
	require.NotContains(t, enc, "/")

	dec, err := Base64DecodeBytes(enc)
	require.NoError(t, err)
	require.Equal(t, []byte{0xfb, 0xff}, dec)
}

func TestBase64DecodeLenient(t *testing.T) {
	raw := []byte{0xfb, 0xef, 0x01}
	padded := Base64EncodeBytes(raw)

	// Standard-alphabet and unpadded variants must both decode.
	std := strings.NewReplacer("-", "+", "_", "/").Replace(padded)
	unpadded := strings.TrimRight(padded, "=")

	for _, in := range []string{padded, std, unpadded} {
		got, err := Base64DecodeBytes(in)
		require.NoError(t, err)
		require.Equal(t, raw, got)
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		in   string
		sep  string
		want map[string]string
	}{
		{"basic", "1:a:2:b", ":", map[string]string{"1": "a", "2": "b"}},
		{"trailing key dropped", "1:a:2", ":", map[string]string{"1": "a"}},
		{"tilde", "2~content~4~12", "~", map[string]string{"2": "content", "4": "12"}},
		{"song separator", "1~|~942~|~2~|~Epilogue", "~|~", map[string]string{"1": "942", "2": "Epilogue"}},
		{"duplicate key keeps last", "1:a:1:b", ":", map[string]string{"1": "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Split(tc.in, tc.sep))
		})
	}
}

func TestJoinRoundTrip(t *testing.T) {
	pairs := [][2]string{{"1", "a"}, {"2", "b"}, {"16", "12345"}}
	joined := Join(pairs, ":")
	require.Equal(t, "1:a:2:b:16:12345", joined)
	require.Equal(t, map[string]string{"1": "a", "2": "b", "16": "12345"}, Split(joined, ":"))
}

func TestGJPRoundTrip(t *testing.T) {
	tok := GJP("hunter2")
	dec, err := XORDecode(tok, KeyAccountPassword)
	require.NoError(t, err)
	require.Equal(t, "hunter2", dec)
}

func TestGJP2Shape(t *testing.T) {
	tok := GJP2("hunter2")
	require.Len(t, tok, 40)
	require.Equal(t, SHA1("hunter2"+SaltGJP2), tok)
	require.NotEqual(t, tok, GJP2("hunter3"))
}

func TestRS(t *testing.T) {
	s := RS(10)
	require.Len(t, s, 10)
	for i := 0; i < len(s); i++ {
		require.Contains(t, RSCharacters, string(s[i]))
	}
}

func TestRandomUUIDShape(t *testing.T) {
	u := RandomUUID()
	parts := strings.Split(u, "-")
	require.Len(t, parts, 5)
	require.Len(t, parts[0], 8)
	require.Len(t, parts[1], 4)
	require.Len(t, parts[2], 4)
	require.Equal(t, byte('4'), parts[2][0])
	require.Len(t, parts[3], 4)
	require.Len(t, parts[4], 10)
}

func TestHSV(t *testing.T) {
	require.Equal(t, "180a50a75a1a0", HSV(180, 50, 75, true, false))
}

func TestTryUnzipZlib(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte("55|mappack data"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.Equal(t, []byte("55|mappack data"), TryUnzip(buf.Bytes()))
}

func TestTryUnzipPassthrough(t *testing.T) {
	raw := []byte("not compressed at all")
	require.Equal(t, raw, TryUnzip(raw))
}
