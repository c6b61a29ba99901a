package robtop

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
)

func SHA1(s string) string {
	return hex.EncodeToString(SHA1Bytes(s))
}

func SHA1Bytes(s string) []byte {
	sum := sha1.Sum([]byte(s))
	return sum[:]
}

func MD5(s string) string {
	return hex.EncodeToString(MD5Bytes(s))
}

func MD5Bytes(s string) []byte {
	sum := md5.Sum([]byte(s))
	return sum[:]
}

// GJP produces the legacy password token: XOR with the account
// password key, then base64url.
func GJP(password string) string {
	return Base64Encode(XOR(password, KeyAccountPassword))
}

// GJP2 produces the current password token: salted SHA-1 hex.
func GJP2(password string) string {
	return SHA1(password + SaltGJP2)
}
