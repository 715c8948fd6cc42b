package tag

import (
	"io"

	"github.com/astei/nbtregion/compress"
)

// ReadNBT decodes an uncompressed tag tree from r.
func ReadNBT(r io.Reader) (*Tag, error) {
	return Decode(r)
}

// ReadNBTGzip decodes a gzip-framed tag tree from r.
func ReadNBTGzip(r io.Reader) (*Tag, error) {
	gz, err := compress.GzipReader(r)
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return Decode(gz)
}

// ReadNBTZlib decodes a zlib-framed tag tree from r.
func ReadNBTZlib(r io.Reader) (*Tag, error) {
	zr, err := compress.ZlibReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return Decode(zr)
}

// WriteNBT encodes t, uncompressed, to w.
func WriteNBT(w io.Writer, t *Tag) error {
	return Encode(w, t)
}

// WriteNBTGzip encodes t to w, gzip-framed.
func WriteNBTGzip(w io.Writer, t *Tag) error {
	gz := compress.GzipWriter(w)
	if err := Encode(gz, t); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

// WriteNBTZlib encodes t to w, zlib-framed.
func WriteNBTZlib(w io.Writer, t *Tag) error {
	zw := compress.ZlibWriter(w)
	if err := Encode(zw, t); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
