package tag

import (
	"fmt"
	"io"

	"github.com/astei/nbtregion/bytesio"
)

// Decode reads one named tag from r: a kind byte, a name, and that kind's
// payload. A top-level End tag is invalid — there is nothing for it to
// terminate at the root.
func Decode(r io.Reader) (*Tag, error) {
	kindByte, err := bytesio.ReadI8(r)
	if err != nil {
		return nil, err
	}
	kind := Kind(kindByte)
	if kind == KindEnd {
		return nil, fmt.Errorf("%w: top-level tag cannot be End", ErrInvalid)
	}
	if !validKind(kind) {
		return nil, fmt.Errorf("%w: %#02x", ErrInvalidKind, byte(kind))
	}
	return decodeTag(r, false, kind)
}

// decodeTag reads a tag's name (unless nameSuppressed, in which case the
// caller — a list element — already knows there is none on the wire) and
// then its payload for the given kind.
func decodeTag(r io.Reader, nameSuppressed bool, kind Kind) (*Tag, error) {
	name := ""
	if !nameSuppressed {
		n, err := bytesio.ReadString(r)
		if err != nil {
			return nil, err
		}
		name = n
	}
	value, err := decodePayload(r, kind)
	if err != nil {
		return nil, err
	}
	return &Tag{Kind: kind, Name: name, value: value}, nil
}

func decodePayload(r io.Reader, kind Kind) (any, error) {
	switch kind {
	case KindByte:
		return bytesio.ReadI8(r)
	case KindShort:
		return bytesio.ReadI16(r)
	case KindInt:
		return bytesio.ReadI32(r)
	case KindLong:
		return bytesio.ReadI64(r)
	case KindFloat:
		return bytesio.ReadF32(r)
	case KindDouble:
		return bytesio.ReadF64(r)
	case KindString:
		return bytesio.ReadString(r)
	case KindByteArray:
		n, err := readArrayLen(r)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	case KindIntArray:
		n, err := readArrayLen(r)
		if err != nil {
			return nil, err
		}
		out := make([]int32, n)
		for i := range out {
			v, err := bytesio.ReadI32(r)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case KindLongArray:
		n, err := readArrayLen(r)
		if err != nil {
			return nil, err
		}
		out := make([]int64, n)
		for i := range out {
			v, err := bytesio.ReadI64(r)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case KindList:
		return decodeList(r)
	case KindCompound:
		return decodeCompound(r)
	default:
		return nil, fmt.Errorf("%w: %#02x", ErrInvalidKind, byte(kind))
	}
}

func readArrayLen(r io.Reader) (int32, error) {
	n, err := bytesio.ReadI32(r)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative array length %d", ErrInvalid, n)
	}
	return n, nil
}

func decodeList(r io.Reader) (*List, error) {
	elemKindByte, err := bytesio.ReadI8(r)
	if err != nil {
		return nil, err
	}
	elemKind := Kind(elemKindByte)

	n, err := bytesio.ReadI32(r)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		// Some producers emit elemKind=End with n=0; accept it, and accept
		// any other non-positive length as an empty list too.
		return &List{ElemKind: elemKind}, nil
	}
	if elemKind != KindEnd && !validKind(elemKind) {
		return nil, fmt.Errorf("%w: list element kind %#02x", ErrInvalidKind, byte(elemKind))
	}

	elems := make([]*Tag, n)
	for i := range elems {
		elem, err := decodeTag(r, true, elemKind)
		if err != nil {
			return nil, err
		}
		elems[i] = elem
	}
	return &List{ElemKind: elemKind, Elems: elems}, nil
}

func decodeCompound(r io.Reader) (*Compound, error) {
	c := newCompound()
	for {
		kindByte, err := bytesio.ReadI8(r)
		if err != nil {
			return nil, err
		}
		kind := Kind(kindByte)
		if kind == KindEnd {
			return c, nil
		}
		if !validKind(kind) {
			return nil, fmt.Errorf("%w: %#02x", ErrInvalidKind, byte(kind))
		}
		child, err := decodeTag(r, false, kind)
		if err != nil {
			return nil, err
		}
		c.Append(child)
	}
}
