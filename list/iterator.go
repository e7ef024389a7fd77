package list

import "github.com/joshuapare/collections/internal/contract"

// ConstIterator is a read-only bidirectional cursor over a List. It names a
// node, not a list: once the node is spliced elsewhere the iterator belongs
// to the list that now holds it.
type ConstIterator[T any] struct {
	n *node[T]
}

// IsZero reports whether it is bound to no list.
func (it ConstIterator[T]) IsZero() bool { return it.n == nil }

// Valid reports whether it can be dereferenced: bound, not at the end, not erased.
func (it ConstIterator[T]) Valid() bool {
	return it.n != nil && !it.n.sentinel && !it.n.detached()
}

// Compatible reports whether it and o belong to the same list.
func (it ConstIterator[T]) Compatible(o ConstIterator[T]) bool {
	if it.n == nil || o.n == nil {
		return false
	}
	owner := it.n.owner()
	return owner != nil && owner == o.n.owner()
}

func (it ConstIterator[T]) requireValid(op string) {
	contract.Require(it.n != nil, op, "zero iterator")
	contract.Require(!it.n.sentinel, op, "iterator at end")
	contract.Require(!it.n.detached(), op, "iterator to an erased element")
}

func (it ConstIterator[T]) requireLinked(op string) {
	contract.Require(it.n != nil, op, "zero iterator")
	contract.Require(!it.n.detached(), op, "iterator to an erased element")
}

// Get returns the element under it.
func (it ConstIterator[T]) Get() T {
	it.requireValid("list.Iterator.Get")
	return it.n.val
}

// Next returns the iterator to the following element. Advancing the end
// iterator is a contract violation.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	it.requireLinked("list.Iterator.Next")
	contract.Require(!it.n.sentinel, "list.Iterator.Next", "advancing past end")
	return ConstIterator[T]{n: it.n.next}
}

// Prev returns the iterator to the preceding element. Retreating from the
// first element is a contract violation.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	it.requireLinked("list.Iterator.Prev")
	contract.Require(!it.n.prev.sentinel, "list.Iterator.Prev", "retreating before begin")
	return ConstIterator[T]{n: it.n.prev}
}

// Equal reports whether it and o refer to the same position.
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool {
	if it.n == nil && o.n == nil {
		return true
	}
	contract.Require(it.Compatible(o), "list.Iterator.Equal", "iterators belong to different lists")
	return it.n == o.n
}

// Iterator is a read-write bidirectional cursor. It adds write access to
// ConstIterator and nothing else.
type Iterator[T any] struct {
	ConstIterator[T]
}

// Ptr returns a pointer to the element under it.
func (it Iterator[T]) Ptr() *T {
	it.requireValid("list.Iterator.Ptr")
	return &it.n.val
}

// Set overwrites the element under it.
func (it Iterator[T]) Set(v T) {
	it.requireValid("list.Iterator.Set")
	it.n.val = v
}

// AsConst narrows it to a read-only iterator.
func (it Iterator[T]) AsConst() ConstIterator[T] { return it.ConstIterator }

// Next returns the iterator to the following element.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.ConstIterator.Next()} }

// Prev returns the iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.ConstIterator.Prev()} }

// Equal reports whether it and o refer to the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.ConstIterator.Equal(o.ConstIterator) }

// ReverseIterator walks a List back to front. Like the contiguous reverse
// cursors it holds the forward iterator one past the element it refers to.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Base returns the underlying forward iterator.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

// Valid reports whether r can be dereferenced.
func (r ReverseIterator[T]) Valid() bool {
	return r.base.n != nil && !r.base.n.detached() && !r.base.n.prev.sentinel
}

// Get returns the element before the base position.
func (r ReverseIterator[T]) Get() T { return r.base.Prev().Get() }

// Set overwrites the element before the base position.
func (r ReverseIterator[T]) Set(v T) { r.base.Prev().Set(v) }

// Next moves toward the front of the list.
func (r ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{r.base.Prev()} }

// Prev moves toward the back of the list.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{r.base.Next()} }

// Equal reports whether r and o refer to the same position.
func (r ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return r.base.Equal(o.base) }

func (l *List[T]) iter(n *node[T]) Iterator[T] {
	return Iterator[T]{ConstIterator[T]{n: n}}
}

// requireOwn checks that it refers to a live node or the sentinel of l.
func (l *List[T]) requireOwn(it ConstIterator[T], op string) {
	it.requireLinked(op)
	contract.Require(it.n.owner() == l, op, "iterator belongs to a different list")
}

// Begin returns an iterator to the first element (End if empty).
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return l.iter(l.c.first())
}

// End returns the past-the-end iterator, which refers to the sentinel.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return l.iter(l.c.end())
}

// CBegin returns a read-only iterator to the first element.
func (l *List[T]) CBegin() ConstIterator[T] { return l.Begin().ConstIterator }

// CEnd returns the read-only past-the-end iterator.
func (l *List[T]) CEnd() ConstIterator[T] { return l.End().ConstIterator }

// RBegin returns a reverse iterator to the last element.
func (l *List[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{l.End()} }

// REnd returns the reverse iterator before the first element.
func (l *List[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{l.Begin()} }
