package tag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeScalar(t *testing.T) {
	tg := Int("x", -1)
	var buf bytes.Buffer
	if err := Encode(&buf, tg); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x03, 0x00, 0x01, 'x', 0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	v, err := got.AsInt()
	if err != nil {
		t.Fatal(err)
	}
	if v != -1 || got.Name != "x" {
		t.Fatalf("got name=%q value=%d", got.Name, v)
	}
}

func TestCompoundWithNestedList(t *testing.T) {
	root := CompoundTag("r")
	comp, _ := root.AsCompound()
	list := NewList(KindByte)
	list.Append(Byte("", 1))
	list.Append(Byte("", 2))
	list.Append(Byte("", 3))
	comp.Append(New(KindList, "l", list))

	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		t.Fatal(err)
	}

	want := []byte{
		0x0A, 0x00, 0x01, 'r',
		0x09, 0x00, 0x01, 'l', 0x01, 0x00, 0x00, 0x00, 0x03, 0x01, 0x02, 0x03,
		0x00,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}

	decoded, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	decodedComp, _ := decoded.AsCompound()
	lTag, err := decodedComp.Get("l")
	if err != nil {
		t.Fatal(err)
	}
	lDecoded, _ := lTag.AsList()
	if lDecoded.Len() != 3 {
		t.Fatalf("got %d elements, want 3", lDecoded.Len())
	}
	for i, want := range []int8{1, 2, 3} {
		v, err := lDecoded.At(i).AsByte()
		if err != nil {
			t.Fatal(err)
		}
		if v != want {
			t.Fatalf("element %d: got %d, want %d", i, v, want)
		}
	}
}

func TestRoundTripStructuralEquality(t *testing.T) {
	root := CompoundTag("")
	comp, _ := root.AsCompound()
	comp.Append(String("name", "creeper"))
	comp.Append(Double("health", 20.0))
	comp.Append(IntArray("pos", []int32{1, 2, 3}))
	nested := CompoundTag("nested")
	nestedComp, _ := nested.AsCompound()
	nestedComp.Append(Byte("flag", 1))
	comp.Append(nested)

	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	diff := cmp.Diff(asComparable(root), asComparable(decoded))
	if diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

// asComparable flattens a Tag tree into something go-cmp can structurally
// diff without reaching into the unexported value field directly.
func asComparable(t *Tag) map[string]any {
	out := map[string]any{"kind": t.Kind, "name": t.Name}
	switch t.Kind {
	case KindCompound:
		c, _ := t.AsCompound()
		children := make([]map[string]any, 0, c.Len())
		for _, child := range c.Children() {
			children = append(children, asComparable(child))
		}
		out["children"] = children
	case KindList:
		l, _ := t.AsList()
		elems := make([]map[string]any, 0, l.Len())
		for _, elem := range l.Elems {
			elems = append(elems, asComparable(elem))
		}
		out["elemKind"] = l.ElemKind
		out["elems"] = elems
	default:
		out["value"] = t.value
	}
	return out
}

func TestTypeMismatch(t *testing.T) {
	tg := Int("x", 1)
	_, err := tg.AsString()
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}
}

func TestCompoundKeyMissing(t *testing.T) {
	c := NewCompound()
	_, err := c.Get("missing")
	if !errors.Is(err, ErrKeyMissing) {
		t.Fatalf("got %v, want ErrKeyMissing", err)
	}
}

func TestCompoundLenientDefault(t *testing.T) {
	c := NewCompound()
	tg := c.GetLenient("count", KindInt)
	v, err := tg.AsInt()
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("got %d, want 0", v)
	}
	if !c.Contains("count") {
		t.Fatal("expected auto-inserted child to be present")
	}
}

func TestTopLevelEndIsInvalid(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0x00}))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("got %v, want ErrInvalid", err)
	}
}

func TestUnknownKindIsInvalid(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0xFE, 0x00, 0x00}))
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("got %v, want ErrInvalidKind", err)
	}
}

func TestEmptyListAcceptsEndElementKind(t *testing.T) {
	// kind=End, length=0 is explicitly tolerated.
	data := []byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	tg, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	l, err := tg.AsList()
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Fatalf("got %d elements, want 0", l.Len())
	}
}

func TestEncodeSchemaViolation(t *testing.T) {
	list := NewList(KindByte)
	list.Elems = append(list.Elems, Byte("", 1), Int("", 2))
	lt := New(KindList, "l", list)
	var buf bytes.Buffer
	err := Encode(&buf, lt)
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("got %v, want ErrSchemaViolation", err)
	}
}

func TestPrettyString(t *testing.T) {
	root := CompoundTag("")
	comp, _ := root.AsCompound()
	comp.Append(Int("x", 5))
	comp.Append(String("name", "ok"))

	got := PrettyString(root)
	want := "{\n\tx: 5i,\n\tname: \"ok\",\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
