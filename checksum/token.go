package checksum

import (
	"strings"

	"github.com/DiversenSato/dashtools/robtop"
)

// LibrarySecret is the shared secret for content-delivery tokens.
const LibrarySecret = "8501f9c2-75ba-4230-8188-51037c4da102"

// CDNToken signs a content server path for the given expiry timestamp
// (unix seconds). The CDN strips base64 padding from the token.
func CDNToken(endpoint, expires string) string {
	sum := robtop.MD5Bytes(LibrarySecret + endpoint + expires)
	return strings.TrimRight(robtop.Base64EncodeBytes(sum), "=")
}
