// Package compress wraps the two compression codecs the region container
// and the gzip/zlib NBT entry points frame their payloads with. It is the
// one place this module reaches past the standard library on purpose: the
// teacher this project is built from already picks klauspost/compress over
// compress/gzip and compress/zlib for this exact concern.
package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// GzipReader wraps r in a gzip decompressor.
func GzipReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// GzipWriter wraps w in a gzip compressor. Callers must Close it to flush
// the trailer.
func GzipWriter(w io.Writer) io.WriteCloser {
	return gzip.NewWriter(w)
}

// ZlibReader wraps r in a zlib decompressor.
func ZlibReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

// ZlibWriter wraps w in a zlib compressor, returned through the same
// io.WriteCloser interface as GzipWriter for callers that treat the two
// uniformly. Callers must Close it to flush the stream.
func ZlibWriter(w io.Writer) io.WriteCloser {
	return zlib.NewWriter(w)
}
