package list

import (
	"fmt"

	"github.com/joshuapare/collections/alloc"
	"github.com/joshuapare/collections/compare"
	"github.com/joshuapare/collections/internal/contract"
)

// requireTransferable checks that nodes may move from o to l without
// reallocation: either the same list or equal allocators.
func (l *List[T]) requireTransferable(o *List[T], op string) {
	if l == o {
		return
	}
	contract.Require(alloc.Equal(l.elems, o.elems), op, "lists have unequal allocators")
}

// Splice moves every element of o before pos. o ends up empty.
func (l *List[T]) Splice(pos Iterator[T], o *List[T]) {
	l.lazyInit()
	o.lazyInit()
	contract.Require(l != o, "list.Splice", "splicing a list into itself")
	l.requireOwn(pos.ConstIterator, "list.Splice")
	l.requireTransferable(o, "list.Splice")
	if o.c.size == 0 {
		return
	}
	pos.n.transfer(o.c.first(), o.c.end())
	l.c.size += o.c.size
	o.c.size = 0
	o.home.fwd = l.home
	o.rehome()
}

// SpliceOne moves the element at it, which belongs to o, before pos and
// returns an iterator to it in l. o may be l.
func (l *List[T]) SpliceOne(pos Iterator[T], o *List[T], it Iterator[T]) Iterator[T] {
	l.lazyInit()
	o.lazyInit()
	l.requireOwn(pos.ConstIterator, "list.SpliceOne")
	o.requireOwn(it.ConstIterator, "list.SpliceOne")
	it.requireValid("list.SpliceOne")
	l.requireTransferable(o, "list.SpliceOne")

	n := it.n
	if pos.n == n || pos.n == n.next {
		return l.iter(n)
	}
	pos.n.transfer(n, n.next)
	if l != o {
		l.c.size++
		o.c.size--
		n.home = l.home
	}
	return l.iter(n)
}

// SpliceRange moves [first,last), which belongs to o, before pos and returns
// an iterator to the first moved element in l (pos if the range is empty).
// When o is l, pos must not lie inside the range.
func (l *List[T]) SpliceRange(pos Iterator[T], o *List[T], first, last Iterator[T]) Iterator[T] {
	l.lazyInit()
	o.lazyInit()
	l.requireOwn(pos.ConstIterator, "list.SpliceRange")
	o.requireOwn(first.ConstIterator, "list.SpliceRange")
	o.requireOwn(last.ConstIterator, "list.SpliceRange")
	l.requireTransferable(o, "list.SpliceRange")

	if first.n == last.n {
		return pos
	}

	// Count the range; this also proves last is reachable from first.
	moved := 0
	for p := first.n; p != last.n; p = p.next {
		contract.Require(!p.sentinel, "list.SpliceRange", "last is not reachable from first")
		contract.Require(l != o || p != pos.n, "list.SpliceRange", "position inside the spliced range")
		moved++
	}

	start := first.n
	pos.n.transfer(first.n, last.n)
	if l != o {
		l.c.size += moved
		o.c.size -= moved
		for p := start; p != pos.n; p = p.next {
			p.home = l.home
		}
	}
	return l.iter(start)
}

// Merge merges the sorted list o into this sorted list using the list's
// ordering. See MergeFunc.
func (l *List[T]) Merge(o *List[T]) {
	contract.Require(l.less != nil, "list.Merge", "no ordering configured")
	l.MergeFunc(o, l.less)
}

// MergeFunc merges the sorted list o into this sorted list, moving nodes.
// The merge is stable: an element of o is placed ahead of an equal element of
// l only if less(o, l) holds. o ends up empty. Merging a list with itself does
// nothing.
func (l *List[T]) MergeFunc(o *List[T], less compare.Less[T]) {
	// Check never fails, so neither does the merge; a panic in less still propagates.
	_ = l.MergeChecked(o, compare.Check(less))
}

// MergeChecked is MergeFunc with a fallible ordering. If less fails the
// nodes already moved stay in l, the rest stay in o, both lengths match their
// actual node counts, and the error is returned.
func (l *List[T]) MergeChecked(o *List[T], less compare.Checked[T]) error {
	l.lazyInit()
	o.lazyInit()
	if l == o {
		return nil
	}
	l.requireTransferable(o, "list.Merge")
	defer l.adopt()
	if err := l.c.merge(&o.c, less); err != nil {
		return fmt.Errorf("list: merge: %w", err)
	}
	return nil
}

// Sort sorts the list stably using the list's ordering.
func (l *List[T]) Sort() {
	contract.Require(l.less != nil, "list.Sort", "no ordering configured")
	l.SortFunc(l.less)
}

// SortFunc sorts the list stably by less. Equal elements keep their order.
func (l *List[T]) SortFunc(less compare.Less[T]) {
	// Check never fails, so neither does the sort; a panic in less still propagates.
	_ = l.SortChecked(compare.Check(less))
}

// SortChecked sorts with a fallible ordering. If less fails, every node is
// reassembled into the list (in unspecified order) before the error is
// returned; none is lost or duplicated.
func (l *List[T]) SortChecked(less compare.Checked[T]) error {
	l.lazyInit()
	if err := l.c.sort(less); err != nil {
		return fmt.Errorf("list: sort: %w", err)
	}
	return nil
}
