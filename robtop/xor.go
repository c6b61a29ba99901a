package robtop

// XOR applies a cyclic byte-wise XOR of s against key. Applying it
// twice with the same key returns the original string.
func XOR(s, key string) string {
	return string(XORBytes([]byte(s), key))
}

// XORBytes is the []byte form of XOR. The returned slice is freshly
// allocated; the input is not modified.
func XORBytes(data []byte, key string) []byte {
	if len(key) == 0 {
		out := make([]byte, len(data))
		copy(out, data)
		return out
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}

// XORDecode base64url-decodes s and XORs the result with key. Used for
// the obfuscated message/password/reward fields.
func XORDecode(s, key string) (string, error) {
	decoded, err := Base64Decode(s)
	if err != nil {
		return "", err
	}
	return XOR(decoded, key), nil
}

// XOREncode is the inverse of XORDecode.
func XOREncode(s, key string) string {
	return Base64Encode(XOR(s, key))
}
