package cursor

import (
	"iter"

	"github.com/joshuapare/collections/internal/buf"
	"github.com/joshuapare/collections/internal/contract"
)

// Sequence is contiguous storage a cursor can walk. Ref is only called with
// positions the cursor has already validated against Len.
//
// Implementations must be pointer types: cursor compatibility compares
// sequences by identity.
type Sequence[T any] interface {
	Len() int
	Ref(i int) *T
}

// Const is a read-only random-access cursor.
type Const[T any] struct {
	seq Sequence[T]
	pos int
}

// NewConst returns a cursor at pos, which must lie in [0, seq.Len()].
func NewConst[T any](seq Sequence[T], pos int) Const[T] {
	contract.Require(seq != nil, "cursor.New", "nil sequence")
	contract.Requiref(pos >= 0 && pos <= seq.Len(), "cursor.New", "position %d out of range [0,%d]", pos, seq.Len())
	return Const[T]{seq: seq, pos: pos}
}

// Pos returns the cursor's index.
func (c Const[T]) Pos() int { return c.pos }

// IsZero reports whether c is the zero cursor, bound to no sequence.
func (c Const[T]) IsZero() bool { return c.seq == nil }

// Valid reports whether c can be dereferenced.
func (c Const[T]) Valid() bool {
	return c.seq != nil && c.pos >= 0 && c.pos < c.seq.Len()
}

// Compatible reports whether c and o walk the same sequence.
func (c Const[T]) Compatible(o Const[T]) bool {
	return c.seq != nil && c.seq == o.seq
}

func (c Const[T]) ref(op string) *T {
	contract.Require(c.seq != nil, op, "dereferencing a zero cursor")
	contract.Requiref(c.pos < c.seq.Len(), op, "dereferencing position %d of %d", c.pos, c.seq.Len())
	return c.seq.Ref(c.pos)
}

// Get returns the element under c.
func (c Const[T]) Get() T { return *c.ref("cursor.Get") }

// Add returns c moved by n positions.
func (c Const[T]) Add(n int) Const[T] {
	contract.Require(c.seq != nil, "cursor.Add", "moving a zero cursor")
	next, ok := buf.Offset(c.pos, n, c.seq.Len())
	contract.Requiref(ok, "cursor.Add", "offset %d from %d leaves [0,%d]", n, c.pos, c.seq.Len())
	return Const[T]{seq: c.seq, pos: next}
}

// Next returns c moved one position forward.
func (c Const[T]) Next() Const[T] { return c.Add(1) }

// Prev returns c moved one position back.
func (c Const[T]) Prev() Const[T] { return c.Add(-1) }

// Index returns the element n positions from c.
func (c Const[T]) Index(n int) T {
	return *c.Add(n).ref("cursor.Index")
}

// Distance returns c - o as a signed element count.
func (c Const[T]) Distance(o Const[T]) int {
	c.requireCompatible(o, "cursor.Distance")
	return c.pos - o.pos
}

// Equal reports whether c and o sit at the same position.
func (c Const[T]) Equal(o Const[T]) bool {
	if c.seq == nil && o.seq == nil {
		return true
	}
	c.requireCompatible(o, "cursor.Equal")
	return c.pos == o.pos
}

// Less reports whether c sits before o.
func (c Const[T]) Less(o Const[T]) bool {
	c.requireCompatible(o, "cursor.Less")
	return c.pos < o.pos
}

func (c Const[T]) requireCompatible(o Const[T], op string) {
	contract.Require(c.Compatible(o), op, "cursors belong to different sequences")
}

// Range yields the elements in [first, last).
func Range[T any](first, last Const[T]) iter.Seq[T] {
	first.requireCompatible(last, "cursor.Range")
	contract.Requiref(first.pos <= last.pos, "cursor.Range", "inverted range [%d,%d)", first.pos, last.pos)
	return func(yield func(T) bool) {
		for i := first.pos; i < last.pos; i++ {
			if !yield(*first.seq.Ref(i)) {
				return
			}
		}
	}
}

// Cursor is a read-write cursor. It adds write access to Const and nothing else.
type Cursor[T any] struct {
	Const[T]
}

// New returns a read-write cursor at pos.
func New[T any](seq Sequence[T], pos int) Cursor[T] {
	return Cursor[T]{NewConst(seq, pos)}
}

// Ptr returns a pointer to the element under c.
func (c Cursor[T]) Ptr() *T { return c.ref("cursor.Ptr") }

// Set overwrites the element under c.
func (c Cursor[T]) Set(v T) { *c.ref("cursor.Set") = v }

// AsConst narrows c to a read-only cursor.
func (c Cursor[T]) AsConst() Const[T] { return c.Const }

// Add returns c moved by n positions.
func (c Cursor[T]) Add(n int) Cursor[T] { return Cursor[T]{c.Const.Add(n)} }

// Next returns c moved one position forward.
func (c Cursor[T]) Next() Cursor[T] { return c.Add(1) }

// Prev returns c moved one position back.
func (c Cursor[T]) Prev() Cursor[T] { return c.Add(-1) }

// Distance returns c - o.
func (c Cursor[T]) Distance(o Cursor[T]) int { return c.Const.Distance(o.Const) }

// Equal reports whether c and o sit at the same position.
func (c Cursor[T]) Equal(o Cursor[T]) bool { return c.Const.Equal(o.Const) }

// Less reports whether c sits before o.
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.Const.Less(o.Const) }
