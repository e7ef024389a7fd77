package list

import (
	"github.com/joshuapare/collections/alloc"
	"github.com/joshuapare/collections/compare"
)

// node is a ring member. The sentinel variant carries no payload and no block.
type node[T any] struct {
	prev, next *node[T]
	home       *home[T]
	val        T
	blk        alloc.Block[node[T]]
	sentinel   bool
}

// home records which list a node lives in. A whole-list splice retires the
// donor's home by forwarding it to the recipient's, so every moved node is
// re-homed without being visited. A retired home never becomes live again.
type home[T any] struct {
	list *List[T]
	fwd  *home[T]
}

// owner returns the list n currently lives in, or nil for an erased node.
// Forwarding chains are halved on the way and n is pointed at the live home.
func (n *node[T]) owner() *List[T] {
	h := n.home
	if h == nil {
		return nil
	}
	for h.fwd != nil {
		if h.fwd.fwd != nil {
			h.fwd = h.fwd.fwd
		}
		h = h.fwd
	}
	n.home = h
	return h.list
}

// hook links n in before pos.
func (n *node[T]) hook(pos *node[T]) {
	n.next = pos
	n.prev = pos.prev
	pos.prev.next = n
	pos.prev = n
}

// unhook removes n from its ring and clears its links.
func (n *node[T]) unhook() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}

// detached reports whether n has been unhooked (erased).
func (n *node[T]) detached() bool { return n.next == nil }

// transfer moves [first,last) before n. The range may come from any ring,
// including n's own, as long as n is not inside it.
func (n *node[T]) transfer(first, last *node[T]) {
	if n == last || first == last {
		return
	}
	last.prev.next = n
	first.prev.next = last
	n.prev.next = first

	tmp := n.prev
	n.prev = last.prev
	last.prev = first.prev
	first.prev = tmp
}

// reverseRing swaps next and prev on every member of n's ring, n included.
func (n *node[T]) reverseRing() {
	p := n
	for {
		p.next, p.prev = p.prev, p.next
		p = p.prev // old next
		if p == n {
			return
		}
	}
}

// swapRings exchanges the members of the rings anchored at x and y.
func swapRings[T any](x, y *node[T]) {
	switch {
	case x.next != x && y.next != y:
		x.next, y.next = y.next, x.next
		x.prev, y.prev = y.prev, x.prev
		x.next.prev, x.prev.next = x, x
		y.next.prev, y.prev.next = y, y
	case x.next != x:
		y.next, y.prev = x.next, x.prev
		y.next.prev, y.prev.next = y, y
		x.next, x.prev = x, x
	case y.next != y:
		x.next, x.prev = y.next, y.prev
		x.next.prev, x.prev.next = x, x
		y.next, y.prev = y, y
	}
}

// chain is a sentinel plus an element count. It owns no allocator: the
// List wraps one for storage, and Sort uses bare chains as buckets.
type chain[T any] struct {
	head node[T]
	size int
}

func (c *chain[T]) init() {
	c.head.next = &c.head
	c.head.prev = &c.head
	c.head.sentinel = true
	c.size = 0
}

func (c *chain[T]) first() *node[T] { return c.head.next }
func (c *chain[T]) end() *node[T]   { return &c.head }

// spliceAll moves every node of src to the end of c.
func (c *chain[T]) spliceAll(src *chain[T]) {
	if src.size == 0 {
		return
	}
	c.end().transfer(src.first(), src.end())
	c.size += src.size
	src.size = 0
}

// moveOne moves node n from src to just before pos in c.
func (c *chain[T]) moveOne(pos *node[T], src *chain[T], n *node[T]) {
	pos.transfer(n, n.next)
	c.size++
	src.size--
}

func (c *chain[T]) swap(o *chain[T]) {
	swapRings(&c.head, &o.head)
	c.size, o.size = o.size, c.size
}

// countNodes walks the ring and returns the number of payload nodes.
func (c *chain[T]) countNodes() int {
	n := 0
	for p := c.head.next; p != &c.head; p = p.next {
		n++
	}
	return n
}

// merge moves the nodes of src into c, which must both be sorted by less.
// A node of src goes ahead of a node of c only if it orders strictly before
// it. On failure the nodes moved so far stay in c and both sizes are exact.
func (c *chain[T]) merge(src *chain[T], less compare.Checked[T]) error {
	first1, last1 := c.first(), c.end()
	first2, last2 := src.first(), src.end()

	for first1 != last1 && first2 != last2 {
		before, err := less(first2.val, first1.val)
		if err != nil {
			return err
		}
		if before {
			next := first2.next
			c.moveOne(first1, src, first2)
			first2 = next
		} else {
			first1 = first1.next
		}
	}
	if first2 != last2 {
		c.spliceAll(src)
	}
	return nil
}

// sortBuckets is the number of bucket chains; bucket i holds up to 2^i nodes.
const sortBuckets = 64

// sort orders c with a bottom-up merge sort. Nodes are peeled off the front
// into carry and merged up through the buckets like a binary counter, then
// the buckets are merged down into one chain that is swapped into c.
//
// If less fails (error or panic) carry and every bucket are spliced back onto
// c before the failure surfaces.
func (c *chain[T]) sort(less compare.Checked[T]) (err error) {
	if c.size < 2 {
		return nil
	}

	var carry chain[T]
	carry.init()
	var buckets [sortBuckets]chain[T]
	for i := range buckets {
		buckets[i].init()
	}

	done := false
	defer func() {
		if done {
			return
		}
		c.spliceAll(&carry)
		for i := range buckets {
			c.spliceAll(&buckets[i])
		}
	}()

	fill := 0
	for c.size > 0 {
		carry.moveOne(carry.first(), c, c.first())

		counter := 0
		for ; counter != fill && buckets[counter].size > 0; counter++ {
			if err := buckets[counter].merge(&carry, less); err != nil {
				return err
			}
			carry.swap(&buckets[counter])
		}
		carry.swap(&buckets[counter])
		if counter == fill {
			fill++
		}
	}

	for counter := 1; counter < fill; counter++ {
		if err := buckets[counter].merge(&buckets[counter-1], less); err != nil {
			return err
		}
	}
	c.swap(&buckets[fill-1])
	done = true
	return nil
}
