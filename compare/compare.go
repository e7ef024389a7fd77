// Package compare holds the comparator types the containers consume and the
// default comparators for ordered element types.
//
// Containers accept three shapes:
//
//	Less[T]    - strict weak ordering, a < b
//	Equal[T]   - equivalence, a == b
//	Checked[T] - a fallible ordering; a non-nil error aborts the algorithm
//
// Checked comparators let callers surface failures from sort and merge as
// plain errors. The list reassembles every node before returning the error.
package compare

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Less reports whether a orders strictly before b.
type Less[T any] func(a, b T) bool

// Equal reports whether a and b are equivalent.
type Equal[T any] func(a, b T) bool

// Checked is a Less that may fail.
type Checked[T any] func(a, b T) (bool, error)

// Ordered is the default Less for ordered types.
func Ordered[T constraints.Ordered](a, b T) bool { return a < b }

// Equals is the default Equal for comparable types.
func Equals[T comparable](a, b T) bool { return a == b }

// Reverse flips an ordering.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool { return less(b, a) }
}

// Check lifts an infallible ordering into a Checked one.
func Check[T any](less Less[T]) Checked[T] {
	return func(a, b T) (bool, error) { return less(a, b), nil }
}

// EqualFromLess derives equivalence from an ordering: neither orders before the other.
func EqualFromLess[T any](less Less[T]) Equal[T] {
	return func(a, b T) bool { return !less(a, b) && !less(b, a) }
}

// Lexicographic compares two sequences element-wise and returns -1, 0 or +1.
// A sequence that is a strict prefix of the other orders first.
func Lexicographic[T any](a, b iter.Seq[T], less Less[T]) int {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for {
		va, okA := nextA()
		vb, okB := nextB()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		case less(va, vb):
			return -1
		case less(vb, va):
			return 1
		}
	}
}
