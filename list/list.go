package list

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/joshuapare/collections/alloc"
	"github.com/joshuapare/collections/compare"
	"github.com/joshuapare/collections/internal/contract"
)

// List is a doubly-linked list of T. The zero value is an empty list using
// the heap allocator.
type List[T any] struct {
	c    chain[T]
	home *home[T]

	elems alloc.Allocator[T]
	nodes alloc.Allocator[node[T]]

	less compare.Less[T]
	eq   compare.Equal[T]
}

// Option configures a List.
type Option[T any] func(*List[T])

// WithAllocator sets the element allocator. Node storage is rebound from it
// with alloc.Rebind: a *alloc.Pooled keeps its size-class policy for nodes,
// and any allocator other than *alloc.Standard or *alloc.Pooled gets its
// nodes from a plain Standard over the same resource. Element construction
// and destruction always go through a itself.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(l *List[T]) { l.elems = a }
}

// WithLess sets the ordering used by Sort, Merge and Compare.
func WithLess[T any](less compare.Less[T]) Option[T] {
	return func(l *List[T]) { l.less = less }
}

// WithEqual sets the equivalence used by Remove, Unique and Equal.
func WithEqual[T any](eq compare.Equal[T]) Option[T] {
	return func(l *List[T]) { l.eq = eq }
}

// Ordered installs < and == as the list's ordering and equivalence.
func Ordered[T constraints.Ordered]() Option[T] {
	return func(l *List[T]) {
		l.less = compare.Ordered[T]
		l.eq = compare.Equals[T]
	}
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	l.lazyInit()
	return l
}

// NewOrdered creates an empty list ordered by < and compared with ==.
// Later options override the defaults.
func NewOrdered[T constraints.Ordered](opts ...Option[T]) *List[T] {
	return New(append([]Option[T]{Ordered[T]()}, opts...)...)
}

// NewN creates a list of n zero values.
func NewN[T any](n int, opts ...Option[T]) (*List[T], error) {
	var zero T
	return NewFilled(n, zero, opts...)
}

// NewFilled creates a list of n copies of v.
func NewFilled[T any](n int, v T, opts ...Option[T]) (*List[T], error) {
	l := New(opts...)
	if _, err := l.InsertN(l.End(), n, v); err != nil {
		return nil, err
	}
	return l, nil
}

// From creates a list holding copies of vals in order.
func From[T any](vals []T, opts ...Option[T]) (*List[T], error) {
	l := New(opts...)
	if _, err := l.InsertSlice(l.End(), vals); err != nil {
		return nil, err
	}
	return l, nil
}

// lazyInit prepares the sentinel and allocators of a zero List.
func (l *List[T]) lazyInit() {
	if l.c.head.next != nil {
		return
	}
	l.c.init()
	l.rehome()
	if l.elems == nil {
		l.elems = alloc.New[T](nil)
	}
	l.nodes = alloc.Rebind[node[T]](l.elems)
}

// rehome gives l a fresh live home and points its sentinel at it.
func (l *List[T]) rehome() {
	l.home = &home[T]{list: l}
	l.c.head.home = l.home
}

// adopt points every node of l at l's home. Used after operations that move
// nodes in one at a time.
func (l *List[T]) adopt() {
	for p := l.c.first(); p != l.c.end(); p = p.next {
		p.home = l.home
	}
}

// Clone returns a copy with the same allocator and comparators.
func (l *List[T]) Clone() (*List[T], error) {
	l.lazyInit()
	c := &List[T]{elems: l.elems, less: l.less, eq: l.eq}
	c.lazyInit()
	if _, err := c.InsertSeq(c.End(), l.Values()); err != nil {
		return nil, err
	}
	return c, nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.c.size }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.c.size == 0 }

// MaxSize returns the largest length the node allocator could support.
func (l *List[T]) MaxSize() int {
	l.lazyInit()
	return alloc.Ceiling(l.nodes)
}

// Allocator returns the element allocator.
func (l *List[T]) Allocator() alloc.Allocator[T] {
	l.lazyInit()
	return l.elems
}

// Front returns the first element. The list must not be empty.
func (l *List[T]) Front() T {
	contract.Require(l.c.size > 0, "list.Front", "empty list")
	return l.c.first().val
}

// Back returns the last element. The list must not be empty.
func (l *List[T]) Back() T {
	contract.Require(l.c.size > 0, "list.Back", "empty list")
	return l.c.head.prev.val
}

// createNode allocates a node and constructs v into it.
func (l *List[T]) createNode(v T) (*node[T], error) {
	blk, err := l.nodes.Allocate(1)
	if err != nil {
		return nil, err
	}
	n := blk.At(0)
	constructed := false
	defer func() {
		if !constructed {
			l.nodes.Deallocate(blk, 1)
		}
	}()
	l.elems.Construct(&n.val, v)
	constructed = true
	n.blk = blk
	n.home = l.home
	return n, nil
}

// destroyNode destroys the element and releases the node. n must be unhooked.
func (l *List[T]) destroyNode(n *node[T]) {
	l.elems.Destroy(&n.val)
	blk := n.blk
	n.blk = alloc.Block[node[T]]{}
	n.home = nil
	l.nodes.Deallocate(blk, 1)
}

// checkGrowth validates that n more elements fit under MaxSize.
func (l *List[T]) checkGrowth(n int) error {
	if n < 0 {
		return fmt.Errorf("list: %w: negative count %d", alloc.ErrLength, n)
	}
	if maxLen := alloc.Ceiling(l.nodes); n > maxLen-l.c.size {
		return fmt.Errorf("list: %w: %d + %d exceeds %d", alloc.ErrLength, l.c.size, n, maxLen)
	}
	return nil
}

// build creates a detached chain of nodes holding the values of seq, stopping
// after limit values when limit >= 0. On failure every node built so far is
// released and the list is untouched.
func (l *List[T]) build(seq iter.Seq[T], limit int) (*chain[T], error) {
	tmp := &chain[T]{}
	tmp.init()
	for v := range seq {
		if limit >= 0 && tmp.size == limit {
			break
		}
		if err := l.checkGrowth(tmp.size + 1); err != nil {
			l.destroyChain(tmp)
			return nil, err
		}
		n, err := l.createNode(v)
		if err != nil {
			l.destroyChain(tmp)
			return nil, fmt.Errorf("list: %w", err)
		}
		n.hook(tmp.end())
		tmp.size++
	}
	return tmp, nil
}

// destroyChain erases every node of c.
func (l *List[T]) destroyChain(c *chain[T]) {
	for c.size > 0 {
		n := c.first()
		n.unhook()
		c.size--
		l.destroyNode(n)
	}
}

// Insert inserts v before pos and returns an iterator to it.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	l.lazyInit()
	l.requireOwn(pos.ConstIterator, "list.Insert")
	if err := l.checkGrowth(1); err != nil {
		return pos, err
	}
	n, err := l.createNode(v)
	if err != nil {
		return pos, fmt.Errorf("list: insert: %w", err)
	}
	n.hook(pos.n)
	l.c.size++
	return l.iter(n), nil
}

// Emplace is Insert; elements are constructed in place through the allocator.
func (l *List[T]) Emplace(pos Iterator[T], v T) (Iterator[T], error) {
	return l.Insert(pos, v)
}

// InsertN inserts n copies of v before pos and returns an iterator to the
// first inserted element (pos if n == 0). Either all n are inserted or none.
func (l *List[T]) InsertN(pos Iterator[T], n int, v T) (Iterator[T], error) {
	l.lazyInit()
	l.requireOwn(pos.ConstIterator, "list.InsertN")
	if err := l.checkGrowth(n); err != nil {
		return pos, err
	}
	return l.insertChain(pos, func(yield func(T) bool) {
		for range n {
			if !yield(v) {
				return
			}
		}
	}, n)
}

// InsertSlice inserts copies of vals before pos. Either all are inserted or none.
func (l *List[T]) InsertSlice(pos Iterator[T], vals []T) (Iterator[T], error) {
	l.lazyInit()
	l.requireOwn(pos.ConstIterator, "list.InsertSlice")
	return l.insertChain(pos, func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}, -1)
}

// InsertSeq inserts the values of seq before pos. Either all are inserted or none.
func (l *List[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	l.lazyInit()
	l.requireOwn(pos.ConstIterator, "list.InsertSeq")
	return l.insertChain(pos, seq, -1)
}

func (l *List[T]) insertChain(pos Iterator[T], seq iter.Seq[T], limit int) (Iterator[T], error) {
	tmp, err := l.build(seq, limit)
	if err != nil {
		return pos, err
	}
	if tmp.size == 0 {
		return pos, nil
	}
	first := tmp.first()
	pos.n.transfer(tmp.first(), tmp.end())
	l.c.size += tmp.size
	return l.iter(first), nil
}

// PushBack appends v.
func (l *List[T]) PushBack(v T) error {
	l.lazyInit()
	_, err := l.Insert(l.End(), v)
	return err
}

// PushFront prepends v.
func (l *List[T]) PushFront(v T) error {
	l.lazyInit()
	_, err := l.Insert(l.Begin(), v)
	return err
}

// EmplaceBack appends v and returns a pointer to the stored element.
func (l *List[T]) EmplaceBack(v T) (*T, error) {
	l.lazyInit()
	it, err := l.Insert(l.End(), v)
	if err != nil {
		return nil, err
	}
	return &it.n.val, nil
}

// EmplaceFront prepends v and returns a pointer to the stored element.
func (l *List[T]) EmplaceFront(v T) (*T, error) {
	l.lazyInit()
	it, err := l.Insert(l.Begin(), v)
	if err != nil {
		return nil, err
	}
	return &it.n.val, nil
}

// PopFront removes the first element. The list must not be empty.
func (l *List[T]) PopFront() {
	contract.Require(l.c.size > 0, "list.PopFront", "empty list")
	l.erase(l.c.first())
}

// PopBack removes the last element. The list must not be empty.
func (l *List[T]) PopBack() {
	contract.Require(l.c.size > 0, "list.PopBack", "empty list")
	l.erase(l.c.head.prev)
}

func (l *List[T]) erase(n *node[T]) {
	n.unhook()
	l.c.size--
	l.destroyNode(n)
}

// Erase removes the element at pos and returns an iterator to the next one.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	l.requireOwn(pos.ConstIterator, "list.Erase")
	pos.requireValid("list.Erase")
	next := pos.n.next
	l.erase(pos.n)
	return l.iter(next)
}

// EraseRange removes [first,last) and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	l.requireOwn(first.ConstIterator, "list.EraseRange")
	l.requireOwn(last.ConstIterator, "list.EraseRange")
	for first.n != last.n {
		first = l.Erase(first)
	}
	return last
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.lazyInit()
	l.destroyChain(&l.c)
}

// Release destroys every element and returns all node storage. Nodes are
// allocated one at a time, so this is Clear; it exists so code generic over
// containers can release them uniformly.
func (l *List[T]) Release() { l.Clear() }

// Assign replaces the contents with n copies of v. Existing elements are
// assigned in place; missing ones are appended, surplus ones erased.
func (l *List[T]) Assign(n int, v T) error {
	l.lazyInit()
	contract.Requiref(n >= 0, "list.Assign", "negative count %d", n)
	p := l.c.first()
	assigned := 0
	for ; assigned < n && p != l.c.end(); assigned++ {
		p.val = v
		p = p.next
	}
	if assigned < n {
		_, err := l.InsertN(l.End(), n-assigned, v)
		return err
	}
	l.EraseRange(l.iter(p), l.End())
	return nil
}

// AssignSlice replaces the contents with copies of vals.
func (l *List[T]) AssignSlice(vals []T) error {
	l.lazyInit()
	p := l.c.first()
	i := 0
	for ; i < len(vals) && p != l.c.end(); i++ {
		p.val = vals[i]
		p = p.next
	}
	if i < len(vals) {
		_, err := l.InsertSlice(l.End(), vals[i:])
		return err
	}
	l.EraseRange(l.iter(p), l.End())
	return nil
}

// Resize grows the list with zero values or truncates it to n elements.
func (l *List[T]) Resize(n int) error {
	var zero T
	return l.ResizeWith(n, zero)
}

// ResizeWith grows the list with copies of v or truncates it to n elements.
func (l *List[T]) ResizeWith(n int, v T) error {
	l.lazyInit()
	contract.Requiref(n >= 0, "list.Resize", "negative size %d", n)
	size := l.c.size
	if n >= size {
		_, err := l.InsertN(l.End(), n-size, v)
		return err
	}

	// Walk to the first surplus node from whichever end is closer.
	var p *node[T]
	if n <= size/2 {
		p = l.c.first()
		for range n {
			p = p.next
		}
	} else {
		p = l.c.end()
		for range size - n {
			p = p.prev
		}
	}
	l.EraseRange(l.iter(p), l.End())
	return nil
}

// Swap exchanges contents, allocators and comparators with o.
func (l *List[T]) Swap(o *List[T]) {
	l.lazyInit()
	o.lazyInit()
	l.c.swap(&o.c)
	// The rings changed hands; so do the homes their nodes resolve through.
	l.home, o.home = o.home, l.home
	l.home.list, o.home.list = l, o
	l.c.head.home, o.c.head.home = l.home, o.home
	l.elems, o.elems = o.elems, l.elems
	l.nodes, o.nodes = o.nodes, l.nodes
	l.less, o.less = o.less, l.less
	l.eq, o.eq = o.eq, l.eq
}

// Values yields the elements front to back.
func (l *List[T]) Values() iter.Seq[T] {
	l.lazyInit()
	return func(yield func(T) bool) {
		for p := l.c.first(); p != l.c.end(); p = p.next {
			if !yield(p.val) {
				return
			}
		}
	}
}

// All yields position/value pairs front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	l.lazyInit()
	return func(yield func(int, T) bool) {
		i := 0
		for p := l.c.first(); p != l.c.end(); p = p.next {
			if !yield(i, p.val) {
				return
			}
			i++
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	l.lazyInit()
	return func(yield func(T) bool) {
		for p := l.c.head.prev; p != l.c.end(); p = p.prev {
			if !yield(p.val) {
				return
			}
		}
	}
}

// Slice returns the elements as a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.c.size)
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}
