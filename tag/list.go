package tag

// List is an ordered sequence of unnamed tags that all share ElemKind. An
// empty list may declare ElemKind as End, which decode accepts as some
// producers emit exactly that.
type List struct {
	ElemKind Kind
	Elems    []*Tag
}

// NewList returns an empty List of the given element kind.
func NewList(elemKind Kind) *List {
	return &List{ElemKind: elemKind}
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.Elems)
}

// At returns the element at index i. It panics on an out-of-range index,
// matching slice-indexing semantics elsewhere in this module; callers
// working from untrusted palette indices should bounds-check first (see
// package palette).
func (l *List) At(i int) *Tag {
	return l.Elems[i]
}

// Append adds t to the list. It does not verify t.Kind == l.ElemKind;
// Encode is what enforces that at write time (ErrSchemaViolation).
func (l *List) Append(t *Tag) {
	l.Elems = append(l.Elems, t)
	if len(l.Elems) == 1 && l.ElemKind == KindEnd {
		l.ElemKind = t.Kind
	}
}
