package bytesio

import (
	"bytes"
	"errors"
	"testing"
)

func TestScalarRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteI32(&buf, -1); err != nil {
		t.Fatalf("WriteI32: %v", err)
	}
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}

	v, err := ReadI32(&buf)
	if err != nil {
		t.Fatalf("ReadI32: %v", err)
	}
	if v != -1 {
		t.Fatalf("got %d, want -1", v)
	}
}

func TestFloatBitCast(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteF32(&buf, 1.5); err != nil {
		t.Fatal(err)
	}
	v, err := ReadF32(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1.5 {
		t.Fatalf("got %v, want 1.5", v)
	}
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteString(&buf, "hello"); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0x05, 'h', 'e', 'l', 'l', 'o'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}
	s, err := ReadString(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if s != "hello" {
		t.Fatalf("got %q, want %q", s, "hello")
	}
}

func TestTruncatedRead(t *testing.T) {
	_, err := ReadI32(bytes.NewReader([]byte{0x00, 0x01}))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestMaxLengthStringDecodes(t *testing.T) {
	// 0xFFFF is -1 as a signed i16 but 65535 as the unsigned u16 length
	// prefix the format actually specifies; a string of that length must
	// decode, not be rejected as negative.
	want := make([]byte, 0xFFFF)
	for i := range want {
		want[i] = 'a'
	}
	buf := append([]byte{0xFF, 0xFF}, want...)
	s, err := ReadString(bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != len(want) {
		t.Fatalf("got length %d, want %d", len(s), len(want))
	}
}
