// Package robtop implements the primitive codec utilities shared by
// every layer of the client: the URL-safe base64 variant, the cyclic
// XOR obfuscation, SHA-1/MD5 helpers, positional key/value record
// splitting, and nonce/identifier generation.
package robtop
