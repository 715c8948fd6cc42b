package tag

import (
	"fmt"
	"io"

	"github.com/astei/nbtregion/bytesio"
)

// Encode writes t's full header (kind byte, name) followed by its payload.
// Use this for the root tag and for compound children; list elements are
// written through encodePayload only, since their kind and name are never
// repeated on the wire.
func Encode(w io.Writer, t *Tag) error {
	if err := bytesio.WriteI8(w, int8(t.Kind)); err != nil {
		return err
	}
	if err := bytesio.WriteString(w, t.Name); err != nil {
		return err
	}
	return encodePayload(w, t)
}

func encodePayload(w io.Writer, t *Tag) error {
	switch t.Kind {
	case KindByte:
		v, _ := t.AsByte()
		return bytesio.WriteI8(w, v)
	case KindShort:
		v, _ := t.AsShort()
		return bytesio.WriteI16(w, v)
	case KindInt:
		v, _ := t.AsInt()
		return bytesio.WriteI32(w, v)
	case KindLong:
		v, _ := t.AsLong()
		return bytesio.WriteI64(w, v)
	case KindFloat:
		v, _ := t.AsFloat()
		return bytesio.WriteF32(w, v)
	case KindDouble:
		v, _ := t.AsDouble()
		return bytesio.WriteF64(w, v)
	case KindString:
		v, _ := t.AsString()
		return bytesio.WriteString(w, v)
	case KindByteArray:
		v, _ := t.AsByteArray()
		if err := bytesio.WriteI32(w, int32(len(v))); err != nil {
			return err
		}
		_, err := w.Write(v)
		return err
	case KindIntArray:
		v, _ := t.AsIntArray()
		if err := bytesio.WriteI32(w, int32(len(v))); err != nil {
			return err
		}
		for _, n := range v {
			if err := bytesio.WriteI32(w, n); err != nil {
				return err
			}
		}
		return nil
	case KindLongArray:
		v, _ := t.AsLongArray()
		if err := bytesio.WriteI32(w, int32(len(v))); err != nil {
			return err
		}
		for _, n := range v {
			if err := bytesio.WriteI64(w, n); err != nil {
				return err
			}
		}
		return nil
	case KindList:
		list, _ := t.AsList()
		return encodeList(w, list)
	case KindCompound:
		comp, _ := t.AsCompound()
		return encodeCompound(w, comp)
	default:
		return fmt.Errorf("%w: %#02x", ErrInvalidKind, byte(t.Kind))
	}
}

func encodeList(w io.Writer, l *List) error {
	elemKind := l.ElemKind
	if len(l.Elems) == 0 {
		elemKind = KindEnd
	}
	if err := bytesio.WriteI8(w, int8(elemKind)); err != nil {
		return err
	}
	if err := bytesio.WriteI32(w, int32(len(l.Elems))); err != nil {
		return err
	}
	for _, elem := range l.Elems {
		if elem.Kind != elemKind {
			return fmt.Errorf("%w: list declared %s but element %q is %s", ErrSchemaViolation, elemKind, elem.Name, elem.Kind)
		}
		if err := encodePayload(w, elem); err != nil {
			return err
		}
	}
	return nil
}

func encodeCompound(w io.Writer, c *Compound) error {
	for _, child := range c.children {
		if err := Encode(w, child); err != nil {
			return err
		}
	}
	return bytesio.WriteI8(w, int8(KindEnd))
}
