package robtop

import (
	"encoding/base64"
	"strings"
)

// The servers speak URL-safe base64 ('-' and '_') but are sloppy about
// padding and occasionally emit standard-alphabet characters, so the
// decoder normalizes before decoding.

func Base64Encode(s string) string {
	return Base64EncodeBytes([]byte(s))
}

func Base64EncodeBytes(b []byte) string {
	return base64.URLEncoding.EncodeToString(b)
}

func Base64Decode(s string) (string, error) {
	b, err := Base64DecodeBytes(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Base64DecodeBytes(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, "+", "-")
	s = strings.ReplaceAll(s, "/", "_")
	if b, err := base64.URLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
