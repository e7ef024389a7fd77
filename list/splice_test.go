package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/collections/alloc"
	"github.com/joshuapare/collections/internal/testutil"
)

// TestSplice_Whole tests moving an entire list.
func TestSplice_Whole(t *testing.T) {
	a := mustFrom(t, []int{1, 4})
	b := mustFrom(t, []int{2, 3})

	a.Splice(a.Begin().Next(), b)
	assert.Equal(t, []int{1, 2, 3, 4}, a.Slice())
	assert.True(t, b.Empty())
	requireConsistent(t, a)
	requireConsistent(t, b)

	a.Splice(a.End(), b)
	assert.Equal(t, 4, a.Len(), "splicing an empty list changes nothing")

	testutil.RequireViolation(t, func() { a.Splice(a.End(), a) })
}

// TestSplice_One tests moving a single element between and within lists.
func TestSplice_One(t *testing.T) {
	a := mustFrom(t, []int{1, 2, 3})
	b := mustFrom(t, []int{9, 8})

	it := a.SpliceOne(a.Begin(), b, b.Begin().Next())
	assert.Equal(t, 8, it.Get())
	assert.Equal(t, []int{8, 1, 2, 3}, a.Slice())
	assert.Equal(t, []int{9}, b.Slice())

	// Within one list: move the last element to the front.
	it = a.SpliceOne(a.Begin(), a, a.End().Prev())
	assert.Equal(t, 3, it.Get())
	assert.Equal(t, []int{3, 8, 1, 2}, a.Slice())

	// No-ops: pos is the element or the one right after it.
	a.SpliceOne(a.Begin(), a, a.Begin())
	a.SpliceOne(a.Begin().Next(), a, a.Begin())
	assert.Equal(t, []int{3, 8, 1, 2}, a.Slice())
	assert.Equal(t, 4, a.Len())

	requireConsistent(t, a)
	requireConsistent(t, b)
	testutil.RequireViolation(t, func() { a.SpliceOne(a.Begin(), b, b.End()) })
}

// TestSplice_Range tests moving [first,last) with size adjustments.
func TestSplice_Range(t *testing.T) {
	a := mustFrom(t, []int{1, 2, 3, 4, 5})
	b := mustFrom(t, []int{10, 20})

	first := a.Begin().Next()
	last := first.Next().Next()
	it := b.SpliceRange(b.Begin().Next(), a, first, last)
	assert.Equal(t, 2, it.Get())
	assert.Equal(t, []int{10, 2, 3, 20}, b.Slice())
	assert.Equal(t, []int{1, 4, 5}, a.Slice())
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 3, a.Len())

	// Empty range returns pos.
	pos := b.End()
	it = b.SpliceRange(pos, a, a.Begin(), a.Begin())
	assert.True(t, it.Equal(pos))

	// Within one list.
	it = a.SpliceRange(a.Begin(), a, a.Begin().Next(), a.End())
	assert.Equal(t, 4, it.Get())
	assert.Equal(t, []int{4, 5, 1}, a.Slice())

	requireConsistent(t, a)
	requireConsistent(t, b)
}

// TestSplice_RangeContainingPos tests that a same-list range may not contain pos.
func TestSplice_RangeContainingPos(t *testing.T) {
	a := mustFrom(t, []int{1, 2, 3, 4})
	testutil.RequireViolation(t, func() {
		a.SpliceRange(a.Begin().Next(), a, a.Begin(), a.End())
	})
	assert.Equal(t, []int{1, 2, 3, 4}, a.Slice(), "the check runs before anything moves")
}

// TestSplice_AllocatorMismatch tests that nodes never cross unequal allocators.
func TestSplice_AllocatorMismatch(t *testing.T) {
	a := New(WithAllocator[int](alloc.New[int](alloc.NewBounded(1 << 12))))
	b := New(WithAllocator[int](alloc.New[int](alloc.NewBounded(1 << 12))))
	require.NoError(t, b.PushBack(1))

	testutil.RequireViolation(t, func() { a.Splice(a.End(), b) })
	testutil.RequireViolation(t, func() { a.SpliceOne(a.End(), b, b.Begin()) })
	testutil.RequireViolation(t, func() { a.SpliceRange(a.End(), b, b.Begin(), b.End()) })
	testutil.RequireViolation(t, func() { a.MergeFunc(b, func(x, y int) bool { return x < y }) })
	assert.Equal(t, 1, b.Len())
}

// TestSplice_SharedResource tests that distinct allocators over one resource
// may exchange nodes and the accounting still balances.
func TestSplice_SharedResource(t *testing.T) {
	res := alloc.NewBounded(1 << 14)
	a := New(WithAllocator[int](alloc.New[int](res)))
	b := New(WithAllocator[int](alloc.New[int](res)))
	for i := range 5 {
		require.NoError(t, b.PushBack(i))
	}

	a.Splice(a.End(), b)
	assert.Equal(t, 5, a.Len())
	a.Clear()
	assert.Zero(t, res.InUse())
}

// TestSplice_IteratorFollowsNode tests that an iterator belongs to whichever
// list holds its node, so the donor can no longer erase through it.
func TestSplice_IteratorFollowsNode(t *testing.T) {
	a := mustFrom(t, []int{1, 2})
	b := mustFrom(t, []int{3})

	it := a.Begin()
	b.SpliceOne(b.End(), a, it)
	assert.False(t, it.Compatible(a.End().ConstIterator))
	assert.True(t, it.Compatible(b.End().ConstIterator))

	testutil.RequireViolationIn(t, "list.Erase", func() { a.Erase(it) })
	testutil.RequireViolationIn(t, "list.SpliceOne", func() { a.SpliceOne(a.End(), a, it) })
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []int{3, 1}, b.Slice())
	requireConsistent(t, a)
	requireConsistent(t, b)

	b.Erase(it)
	assert.Equal(t, []int{3}, b.Slice())
	requireConsistent(t, b)
}

// TestSplice_RangeIteratorsFollowNodes tests re-homing of a moved sub-range.
func TestSplice_RangeIteratorsFollowNodes(t *testing.T) {
	a := mustFrom(t, []int{1, 2, 3, 4})
	b := mustFrom(t, []int{9})

	first := a.Begin().Next()
	last := first.Next().Next()
	b.SpliceRange(b.Begin(), a, first, last)
	assert.Equal(t, []int{1, 4}, a.Slice())
	assert.Equal(t, []int{2, 3, 9}, b.Slice())

	testutil.RequireViolationIn(t, "list.EraseRange", func() { a.EraseRange(first, last) })
	assert.True(t, last.Compatible(a.End().ConstIterator), "last was never moved")
	b.Erase(first)
	requireConsistent(t, a)
	requireConsistent(t, b)
}

// TestSplice_WholeListIteratorsFollowNodes tests ownership through repeated
// whole-list splices and a swap.
func TestSplice_WholeListIteratorsFollowNodes(t *testing.T) {
	a := mustFrom(t, []int{1})
	b := mustFrom(t, []int{2})
	c := mustFrom(t, []int{3})

	fromB := b.Begin()
	a.Splice(a.End(), b)
	testutil.RequireViolationIn(t, "list.Erase", func() { b.Erase(fromB) })
	assert.True(t, fromB.Compatible(a.Begin().ConstIterator))
	assert.True(t, b.End().Compatible(b.Begin().ConstIterator), "the emptied list keeps its own end")

	c.Splice(c.Begin(), a)
	assert.Equal(t, []int{1, 2, 3}, c.Slice())
	testutil.RequireViolationIn(t, "list.Erase", func() { a.Erase(fromB) })

	require.NoError(t, b.PushBack(7))
	c.Swap(b)
	assert.Equal(t, []int{7}, c.Slice())
	assert.True(t, fromB.Compatible(b.End().ConstIterator), "swapped nodes go with their ring")
	assert.True(t, c.Begin().Compatible(c.End().ConstIterator))

	b.Erase(fromB)
	assert.Equal(t, []int{1, 3}, b.Slice())
	for _, l := range []*List[int]{a, b, c} {
		requireConsistent(t, l)
	}
}

// TestMerge_IteratorsFollowNodes tests that merged nodes belong to the target,
// including when the ordering fails partway.
func TestMerge_IteratorsFollowNodes(t *testing.T) {
	a := mustFrom(t, []int{1, 5}, Ordered[int]())
	b := mustFrom(t, []int{2, 8}, Ordered[int]())

	two, eight := b.Begin(), b.Begin().Next()
	calls := 0
	err := a.MergeChecked(b, func(x, y int) (bool, error) {
		calls++
		if calls == 3 {
			return false, errCompare
		}
		return x < y, nil
	})
	require.ErrorIs(t, err, errCompare)
	assert.Equal(t, []int{1, 2, 5}, a.Slice())
	assert.Equal(t, []int{8}, b.Slice())
	assert.True(t, two.Compatible(a.End().ConstIterator))
	assert.True(t, eight.Compatible(b.End().ConstIterator))
	requireConsistent(t, a)
	requireConsistent(t, b)

	a.Merge(b)
	testutil.RequireViolationIn(t, "list.Erase", func() { b.Erase(eight) })
	a.Erase(eight)
	assert.Equal(t, []int{1, 2, 5}, a.Slice())
	requireConsistent(t, a)
}
