// Package array provides a fixed-size contiguous container.
//
// The size is fixed when the Array is created and never changes: there is no
// insertion, no removal and no reallocation. Every slot always holds a
// constructed element. Because a size of zero is rejected at construction,
// Empty always reports false; that is a property of the type, not a bug.
package array

import (
	"errors"
	"fmt"
	"iter"

	"github.com/joshuapare/collections/compare"
	"github.com/joshuapare/collections/cursor"
	"github.com/joshuapare/collections/internal/buf"
	"github.com/joshuapare/collections/internal/contract"
)

// ErrOutOfRange indicates an index or range outside the array.
var ErrOutOfRange = errors.New("array: index out of range")

// Array is a fixed-size sequence of T.
type Array[T any] struct {
	data []T
	eq   compare.Equal[T]
}

// Option configures an Array.
type Option[T any] func(*Array[T])

// WithEqual sets the equivalence Fill uses to skip slots that already hold
// the fill value.
func WithEqual[T any](eq compare.Equal[T]) Option[T] {
	return func(a *Array[T]) { a.eq = eq }
}

// New creates an array of size zero-valued elements. size must be >= 1.
func New[T any](size int, opts ...Option[T]) *Array[T] {
	contract.Requiref(size >= 1, "array.New", "size must be >= 1, got %d", size)
	a := &Array[T]{data: make([]T, size)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewComparable creates an array whose Fill skips equal slots using ==.
func NewComparable[T comparable](size int) *Array[T] {
	return New(size, WithEqual(compare.Equal[T](compare.Equals[T])))
}

// From creates an array holding a copy of vals. vals must not be empty.
func From[T any](vals []T, opts ...Option[T]) *Array[T] {
	a := New(len(vals), opts...)
	copy(a.data, vals)
	return a
}

// Len returns the fixed size.
func (a *Array[T]) Len() int { return len(a.data) }

// Empty always reports false: an Array cannot have size zero.
func (a *Array[T]) Empty() bool { return false }

// At returns the element at i, or ErrOutOfRange.
func (a *Array[T]) At(i int) (T, error) {
	if err := buf.CheckIndex(i, len(a.data)); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return a.data[i], nil
}

// Set overwrites the element at i, or returns ErrOutOfRange.
func (a *Array[T]) Set(i int, v T) error {
	if err := buf.CheckIndex(i, len(a.data)); err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	a.data[i] = v
	return nil
}

// Ref returns a pointer to the element at i. An index outside the array is a
// contract violation.
func (a *Array[T]) Ref(i int) *T {
	contract.Requiref(i >= 0 && i < len(a.data), "array.Ref", "index %d out of range [0,%d)", i, len(a.data))
	return &a.data[i]
}

// Front returns the first element.
func (a *Array[T]) Front() T { return a.data[0] }

// Back returns the last element.
func (a *Array[T]) Back() T { return a.data[len(a.data)-1] }

// Data returns the backing slice. Its length is fixed; writes go to the array.
func (a *Array[T]) Data() []T { return a.data[:len(a.data):len(a.data)] }

// Fill writes v to every slot. With an equivalence configured, slots that
// already hold an equal value are left untouched.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		if a.eq != nil && a.eq(a.data[i], v) {
			continue
		}
		a.data[i] = v
	}
}

// Map replaces every element with fn(element).
func (a *Array[T]) Map(fn func(T) T) {
	for i, v := range a.data {
		a.data[i] = fn(v)
	}
}

// MapRange replaces the elements in [begin,end) with fn(element). An invalid
// range returns ErrOutOfRange before any element is touched.
func (a *Array[T]) MapRange(fn func(T) T, begin, end int) error {
	if err := buf.CheckRange(begin, end, len(a.data)); err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	for i := begin; i < end; i++ {
		a.data[i] = fn(a.data[i])
	}
	return nil
}

// Swap exchanges contents with o. Sizes must match.
func (a *Array[T]) Swap(o *Array[T]) {
	contract.Requiref(len(a.data) == len(o.data), "array.Swap", "size mismatch %d != %d", len(a.data), len(o.data))
	a.data, o.data = o.data, a.data
}

// Clone returns an independent copy.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{data: make([]T, len(a.data)), eq: a.eq}
	copy(c.data, a.data)
	return c
}

// Equal reports whether a and o have the same size and pairwise equal elements.
func (a *Array[T]) Equal(o *Array[T], eq compare.Equal[T]) bool {
	if len(a.data) != len(o.data) {
		return false
	}
	for i := range a.data {
		if !eq(a.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and o lexicographically.
func (a *Array[T]) Compare(o *Array[T], less compare.Less[T]) int {
	return compare.Lexicographic(a.Values(), o.Values(), less)
}

// Begin returns a cursor at the first element.
func (a *Array[T]) Begin() cursor.Cursor[T] { return cursor.New[T](a, 0) }

// End returns the one-past-the-end cursor.
func (a *Array[T]) End() cursor.Cursor[T] { return cursor.New[T](a, len(a.data)) }

// CBegin returns a read-only cursor at the first element.
func (a *Array[T]) CBegin() cursor.Const[T] { return cursor.NewConst[T](a, 0) }

// CEnd returns the read-only one-past-the-end cursor.
func (a *Array[T]) CEnd() cursor.Const[T] { return cursor.NewConst[T](a, len(a.data)) }

// RBegin returns a reverse cursor at the last element.
func (a *Array[T]) RBegin() cursor.Reverse[T] { return cursor.NewReverse(a.End()) }

// REnd returns the reverse cursor before the first element.
func (a *Array[T]) REnd() cursor.Reverse[T] { return cursor.NewReverse(a.Begin()) }

// CRBegin returns a read-only reverse cursor at the last element.
func (a *Array[T]) CRBegin() cursor.ReverseConst[T] { return cursor.NewReverseConst(a.CEnd()) }

// CREnd returns the read-only reverse cursor before the first element.
func (a *Array[T]) CREnd() cursor.ReverseConst[T] { return cursor.NewReverseConst(a.CBegin()) }

// All yields index/value pairs front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}
