package vector

import (
	"errors"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/joshuapare/collections/alloc"
	"github.com/joshuapare/collections/compare"
	"github.com/joshuapare/collections/cursor"
	"github.com/joshuapare/collections/internal/buf"
	"github.com/joshuapare/collections/internal/contract"
)

// ErrOutOfRange indicates an index outside [0,Len).
var ErrOutOfRange = errors.New("vector: index out of range")

// Vector is a growable sequence of T. The zero value is an empty vector using
// the heap allocator.
type Vector[T any] struct {
	blk  alloc.Block[T]
	last int // one past the last constructed element

	a alloc.Allocator[T]

	less compare.Less[T]
	eq   compare.Equal[T]
}

// Option configures a Vector.
type Option[T any] func(*Vector[T])

// WithAllocator sets the allocator for element storage.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(v *Vector[T]) { v.a = a }
}

// WithLess sets the ordering used by Compare.
func WithLess[T any](less compare.Less[T]) Option[T] {
	return func(v *Vector[T]) { v.less = less }
}

// WithEqual sets the equivalence used by Equal.
func WithEqual[T any](eq compare.Equal[T]) Option[T] {
	return func(v *Vector[T]) { v.eq = eq }
}

// Ordered installs < and == as the vector's ordering and equivalence.
func Ordered[T constraints.Ordered]() Option[T] {
	return func(v *Vector[T]) {
		v.less = compare.Ordered[T]
		v.eq = compare.Equals[T]
	}
}

// New creates an empty vector. No storage is allocated.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	v.lazyInit()
	return v
}

// NewN creates a vector of n copies of x with capacity exactly n. An n above
// the allocation ceiling fails with alloc.ErrLength and allocates nothing.
func NewN[T any](n int, x T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.checkLen(n); err != nil {
		return nil, err
	}
	blk, err := v.build(n, n, func(int) T { return x })
	if err != nil {
		return nil, err
	}
	v.blk, v.last = blk, n
	return v, nil
}

// From creates a vector holding copies of vals with capacity len(vals).
func From[T any](vals []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	blk, err := v.build(len(vals), len(vals), func(i int) T { return vals[i] })
	if err != nil {
		return nil, err
	}
	v.blk, v.last = blk, len(vals)
	return v, nil
}

func (v *Vector[T]) lazyInit() {
	if v.a == nil {
		v.a = alloc.New[T](nil)
	}
}

// Clone returns a copy using the same allocator. See CloneWith.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.lazyInit()
	return v.CloneWith(v.a)
}

// CloneWith returns a copy whose storage comes from a. The copy has the same
// capacity as v and each live element is copy-constructed through a.
func (v *Vector[T]) CloneWith(a alloc.Allocator[T]) (*Vector[T], error) {
	contract.Require(a != nil, "vector.CloneWith", "nil allocator")
	c := &Vector[T]{a: a, less: v.less, eq: v.eq}
	blk, err := c.build(v.last, v.Cap(), func(i int) T { return *v.blk.At(i) })
	if err != nil {
		return nil, err
	}
	c.blk, c.last = blk, v.last
	return c, nil
}

// MoveFrom returns a vector using a that holds src's elements, leaving src
// empty. When a equals src's allocator the storage is handed over as is;
// otherwise it is copied into storage from a and src's storage is released.
// On error src is unchanged.
func MoveFrom[T any](src *Vector[T], a alloc.Allocator[T]) (*Vector[T], error) {
	contract.Require(a != nil, "vector.MoveFrom", "nil allocator")
	src.lazyInit()
	dst := &Vector[T]{a: a, less: src.less, eq: src.eq}
	if alloc.Equal(a, src.a) {
		dst.blk, dst.last = src.blk, src.last
		src.blk, src.last = alloc.Block[T]{}, 0
		return dst, nil
	}

	blk, err := dst.build(src.last, src.last, func(i int) T { return *src.blk.At(i) })
	if err != nil {
		return nil, err
	}
	dst.blk, dst.last = blk, src.last
	src.Release()
	return dst, nil
}

// Take moves src's storage into a new vector with src's allocator. It never
// allocates.
func Take[T any](src *Vector[T]) *Vector[T] {
	src.lazyInit()
	dst, _ := MoveFrom(src, src.a)
	return dst
}

// Release destroys every element and returns the storage to the allocator.
// The vector stays usable and empty with zero capacity.
func (v *Vector[T]) Release() {
	v.lazyInit()
	v.destroyRange(0, v.last)
	v.a.Deallocate(v.blk, v.blk.Cap())
	v.blk, v.last = alloc.Block[T]{}, 0
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.last }

// Cap returns the number of slots in the current storage.
func (v *Vector[T]) Cap() int { return v.blk.Cap() }

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool { return v.last == 0 }

// MaxSize returns the allocation ceiling for this vector's allocator.
func (v *Vector[T]) MaxSize() int {
	v.lazyInit()
	return alloc.Ceiling(v.a)
}

// Allocator returns the storage allocator.
func (v *Vector[T]) Allocator() alloc.Allocator[T] {
	v.lazyInit()
	return v.a
}

// Ref returns a pointer to element i. An index outside [0,Len) is a contract
// violation. The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ref(i int) *T {
	contract.Requiref(i >= 0 && i < v.last, "vector.Ref", "index %d out of range [0,%d)", i, v.last)
	return v.blk.At(i)
}

// At returns element i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if err := buf.CheckIndex(i, v.last); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return *v.blk.At(i), nil
}

// Set overwrites element i, or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, x T) error {
	if err := buf.CheckIndex(i, v.last); err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	*v.blk.At(i) = x
	return nil
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	contract.Require(v.last > 0, "vector.Front", "empty vector")
	return *v.blk.At(0)
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	contract.Require(v.last > 0, "vector.Back", "empty vector")
	return *v.blk.At(v.last - 1)
}

// Data returns the live elements as a slice sharing the vector's storage.
// It is invalidated by any reallocation.
func (v *Vector[T]) Data() []T {
	if v.blk.IsNil() {
		return nil
	}
	return v.blk.Span(0, v.last)
}

// Swap exchanges contents, allocators and comparators with o.
func (v *Vector[T]) Swap(o *Vector[T]) {
	*v, *o = *o, *v
}

// Equal reports whether v and o have the same length and pairwise equal
// elements under the vector's equivalence.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	contract.Require(v.eq != nil, "vector.Equal", "no equivalence configured")
	return v.EqualFunc(o, v.eq)
}

// EqualFunc is Equal with a caller equivalence.
func (v *Vector[T]) EqualFunc(o *Vector[T], eq compare.Equal[T]) bool {
	if v.last != o.last {
		return false
	}
	for i := range v.last {
		if !eq(*v.blk.At(i), *o.blk.At(i)) {
			return false
		}
	}
	return true
}

// Compare orders v and o lexicographically by the vector's ordering and
// returns -1, 0 or +1.
func (v *Vector[T]) Compare(o *Vector[T]) int {
	contract.Require(v.less != nil, "vector.Compare", "no ordering configured")
	return v.CompareFunc(o, v.less)
}

// CompareFunc is Compare with a caller ordering.
func (v *Vector[T]) CompareFunc(o *Vector[T], less compare.Less[T]) int {
	return compare.Lexicographic(v.Values(), o.Values(), less)
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() cursor.Cursor[T] { return cursor.New[T](v, 0) }

// End returns the one-past-the-end cursor.
func (v *Vector[T]) End() cursor.Cursor[T] { return cursor.New[T](v, v.last) }

// CBegin returns a read-only cursor at the first element.
func (v *Vector[T]) CBegin() cursor.Const[T] { return cursor.NewConst[T](v, 0) }

// CEnd returns the read-only one-past-the-end cursor.
func (v *Vector[T]) CEnd() cursor.Const[T] { return cursor.NewConst[T](v, v.last) }

// RBegin returns a reverse cursor at the last element.
func (v *Vector[T]) RBegin() cursor.Reverse[T] { return cursor.NewReverse(v.End()) }

// REnd returns the reverse cursor before the first element.
func (v *Vector[T]) REnd() cursor.Reverse[T] { return cursor.NewReverse(v.Begin()) }

// CRBegin returns a read-only reverse cursor at the last element.
func (v *Vector[T]) CRBegin() cursor.ReverseConst[T] { return cursor.NewReverseConst(v.CEnd()) }

// CREnd returns the read-only reverse cursor before the first element.
func (v *Vector[T]) CREnd() cursor.ReverseConst[T] { return cursor.NewReverseConst(v.CBegin()) }

// All yields index/value pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.last; i++ {
			if !yield(i, *v.blk.At(i)) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.last; i++ {
			if !yield(*v.blk.At(i)) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.last - 1; i >= 0; i-- {
			if !yield(i, *v.blk.At(i)) {
				return
			}
		}
	}
}
