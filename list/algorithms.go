package list

import (
	"github.com/joshuapare/collections/compare"
	"github.com/joshuapare/collections/internal/contract"
)

// Remove erases every element equal to v under the list's equivalence and
// returns how many were removed.
func (l *List[T]) Remove(v T) int {
	contract.Require(l.eq != nil, "list.Remove", "no equivalence configured")
	eq := l.eq
	return l.RemoveIf(func(e T) bool { return eq(e, v) })
}

// RemoveIf erases every element satisfying pred and returns how many were
// removed. Survivors keep their relative order.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	l.lazyInit()
	removed := 0
	for p := l.c.first(); p != l.c.end(); {
		next := p.next
		if pred(p.val) {
			l.erase(p)
			removed++
		}
		p = next
	}
	return removed
}

// Unique collapses each run of adjacent equal elements to its first element
// and returns how many were removed. Non-adjacent duplicates are kept.
func (l *List[T]) Unique() int {
	contract.Require(l.eq != nil, "list.Unique", "no equivalence configured")
	return l.UniqueFunc(l.eq)
}

// UniqueFunc is Unique with a caller equivalence; same(kept, candidate)
// decides whether candidate duplicates the element kept before it.
func (l *List[T]) UniqueFunc(same compare.Equal[T]) int {
	l.lazyInit()
	if l.c.size < 2 {
		return 0
	}
	removed := 0
	kept := l.c.first()
	for p := kept.next; p != l.c.end(); {
		next := p.next
		if same(kept.val, p.val) {
			l.erase(p)
			removed++
		} else {
			kept = p
		}
		p = next
	}
	return removed
}

// Reverse reverses the order of the elements by relinking; nothing is copied.
func (l *List[T]) Reverse() {
	l.lazyInit()
	l.c.head.reverseRing()
}

// Equal reports whether l and o have the same length and pairwise equal
// elements under the list's equivalence.
func (l *List[T]) Equal(o *List[T]) bool {
	contract.Require(l.eq != nil, "list.Equal", "no equivalence configured")
	return l.EqualFunc(o, l.eq)
}

// EqualFunc is Equal with a caller equivalence.
func (l *List[T]) EqualFunc(o *List[T], eq compare.Equal[T]) bool {
	l.lazyInit()
	o.lazyInit()
	if l.c.size != o.c.size {
		return false
	}
	for p, q := l.c.first(), o.c.first(); p != l.c.end(); p, q = p.next, q.next {
		if !eq(p.val, q.val) {
			return false
		}
	}
	return true
}

// Compare orders l and o lexicographically by the list's ordering and
// returns -1, 0 or +1.
func (l *List[T]) Compare(o *List[T]) int {
	contract.Require(l.less != nil, "list.Compare", "no ordering configured")
	return l.CompareFunc(o, l.less)
}

// CompareFunc is Compare with a caller ordering.
func (l *List[T]) CompareFunc(o *List[T], less compare.Less[T]) int {
	return compare.Lexicographic(l.Values(), o.Values(), less)
}

// Less reports whether l orders before o.
func (l *List[T]) Less(o *List[T]) bool { return l.Compare(o) < 0 }

// Greater reports whether l orders after o.
func (l *List[T]) Greater(o *List[T]) bool { return o.Less(l) }

// LessEqual reports whether l does not order after o.
func (l *List[T]) LessEqual(o *List[T]) bool { return !o.Less(l) }

// GreaterEqual reports whether l does not order before o.
func (l *List[T]) GreaterEqual(o *List[T]) bool { return !l.Less(o) }
