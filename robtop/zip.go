package robtop

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// TryUnzip inflates a compressed blob, trying zlib, raw deflate and
// gzip in that order. Save data and audio library payloads show up in
// all three framings depending on game version. If nothing works the
// input is returned unchanged.
func TryUnzip(data []byte) []byte {
	if r, err := zlib.NewReader(bytes.NewReader(data)); err == nil {
		if out, err := io.ReadAll(r); err == nil {
			r.Close()
			return out
		}
		r.Close()
	}
	fr := flate.NewReader(bytes.NewReader(data))
	if out, err := io.ReadAll(fr); err == nil && len(out) > 0 {
		fr.Close()
		return out
	}
	fr.Close()
	if r, err := gzip.NewReader(bytes.NewReader(data)); err == nil {
		if out, err := io.ReadAll(r); err == nil {
			r.Close()
			return out
		}
		r.Close()
	}
	return data
}
