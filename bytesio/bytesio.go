// Package bytesio provides the big-endian scalar read/write primitives the
// rest of this module builds on: the NBT wire format is big-endian
// regardless of host byte order, so every multi-byte value passes through
// here on its way on or off the wire.
package bytesio

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// ErrTruncated is returned when a read primitive cannot obtain the full
// number of bytes its value requires.
var ErrTruncated = errors.New("bytesio: truncated read")

// ErrNegativeLength names a decoded i32 length prefix that is negative.
// bytesio itself never enforces sign, and no package in this module
// currently returns it: tag reports negative array lengths as
// tag.ErrInvalid.
var ErrNegativeLength = errors.New("bytesio: negative length")

func wrapShortRead(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// ReadI8 reads a single signed byte.
func ReadI8(r io.Reader) (int8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, wrapShortRead(err)
	}
	return int8(buf[0]), nil
}

// ReadI16 reads a big-endian signed 16-bit integer.
func ReadI16(r io.Reader) (int16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, wrapShortRead(err)
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

// ReadI32 reads a big-endian signed 32-bit integer.
func ReadI32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, wrapShortRead(err)
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

// ReadI64 reads a big-endian signed 64-bit integer.
func ReadI64(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, wrapShortRead(err)
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// ReadF32 reads an IEEE-754 binary32, bit-cast through a uint32 rather than
// ever treated as a float during the byte swap.
func ReadF32(r io.Reader) (float32, error) {
	bits, err := ReadI32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

// ReadF64 reads an IEEE-754 binary64, bit-cast through a uint64.
func ReadF64(r io.Reader) (float64, error) {
	bits, err := ReadI64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

// ReadString reads a u16-length-prefixed UTF-8 string with no terminator.
// The length prefix is unsigned, so the full 0-65535 range is valid.
func ReadString(r io.Reader) (string, error) {
	var buf2 [2]byte
	if _, err := io.ReadFull(r, buf2[:]); err != nil {
		return "", wrapShortRead(err)
	}
	n := binary.BigEndian.Uint16(buf2[:])
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", wrapShortRead(err)
	}
	return string(buf), nil
}

// WriteI8 writes a single signed byte.
func WriteI8(w io.Writer, v int8) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

// WriteI16 writes a big-endian signed 16-bit integer.
func WriteI16(w io.Writer, v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return err
}

// WriteI32 writes a big-endian signed 32-bit integer.
func WriteI32(w io.Writer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

// WriteI64 writes a big-endian signed 64-bit integer.
func WriteI64(w io.Writer, v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

// WriteF32 writes an IEEE-754 binary32, bit-cast through a uint32.
func WriteF32(w io.Writer, v float32) error {
	return WriteI32(w, int32(math.Float32bits(v)))
}

// WriteF64 writes an IEEE-754 binary64, bit-cast through a uint64.
func WriteF64(w io.Writer, v float64) error {
	return WriteI64(w, int64(math.Float64bits(v)))
}

// WriteString writes a u16-length-prefixed UTF-8 string. It never emits a
// NUL terminator.
func WriteString(w io.Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return errors.New("bytesio: string too long")
	}
	if err := WriteI16(w, int16(uint16(len(s)))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}
