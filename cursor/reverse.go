package cursor

// ReverseConst walks a sequence backwards. It holds a base cursor one past
// the element it refers to, so the reverse begin wraps the forward end.
type ReverseConst[T any] struct {
	base Const[T]
}

// NewReverseConst wraps base.
func NewReverseConst[T any](base Const[T]) ReverseConst[T] {
	return ReverseConst[T]{base: base}
}

// Base returns the underlying forward cursor.
func (r ReverseConst[T]) Base() Const[T] { return r.base }

// Valid reports whether r can be dereferenced.
func (r ReverseConst[T]) Valid() bool {
	return !r.base.IsZero() && r.base.pos > 0 && r.base.pos <= r.base.seq.Len()
}

// Get returns the element before the base position.
func (r ReverseConst[T]) Get() T { return r.base.Prev().Get() }

// Next moves toward the front of the sequence.
func (r ReverseConst[T]) Next() ReverseConst[T] { return ReverseConst[T]{r.base.Prev()} }

// Prev moves toward the back of the sequence.
func (r ReverseConst[T]) Prev() ReverseConst[T] { return ReverseConst[T]{r.base.Next()} }

// Add moves n elements toward the front.
func (r ReverseConst[T]) Add(n int) ReverseConst[T] { return ReverseConst[T]{r.base.Add(-n)} }

// Equal reports whether r and o sit at the same position.
func (r ReverseConst[T]) Equal(o ReverseConst[T]) bool { return r.base.Equal(o.base) }

// Distance returns r - o in reverse order.
func (r ReverseConst[T]) Distance(o ReverseConst[T]) int { return o.base.Distance(r.base) }

// Reverse is a read-write reverse cursor.
type Reverse[T any] struct {
	ReverseConst[T]
}

// NewReverse wraps base.
func NewReverse[T any](base Cursor[T]) Reverse[T] {
	return Reverse[T]{ReverseConst[T]{base: base.Const}}
}

// Base returns the underlying forward cursor.
func (r Reverse[T]) Base() Cursor[T] { return Cursor[T]{r.base} }

// Ptr returns a pointer to the element under r.
func (r Reverse[T]) Ptr() *T { return r.Base().Prev().Ptr() }

// Set overwrites the element under r.
func (r Reverse[T]) Set(v T) { r.Base().Prev().Set(v) }

// Next moves toward the front of the sequence.
func (r Reverse[T]) Next() Reverse[T] { return Reverse[T]{r.ReverseConst.Next()} }

// Prev moves toward the back of the sequence.
func (r Reverse[T]) Prev() Reverse[T] { return Reverse[T]{r.ReverseConst.Prev()} }

// Add moves n elements toward the front.
func (r Reverse[T]) Add(n int) Reverse[T] { return Reverse[T]{r.ReverseConst.Add(n)} }

// Equal reports whether r and o sit at the same position.
func (r Reverse[T]) Equal(o Reverse[T]) bool { return r.ReverseConst.Equal(o.ReverseConst) }
