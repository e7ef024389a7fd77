package list

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/collections/compare"
	"github.com/joshuapare/collections/internal/testutil"
)

type tagged struct {
	key, seq int
}

func byKey(a, b tagged) bool { return a.key < b.key }

var errCompare = errors.New("comparator failed")

// failAfter returns a checked ordering that errors on call n+1.
func failAfter(n int) compare.Checked[int] {
	calls := 0
	return func(a, b int) (bool, error) {
		calls++
		if calls > n {
			return false, errCompare
		}
		return a < b, nil
	}
}

// TestSort_Ordering tests sorting across sizes, including the empty list.
func TestSort_Ordering(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 2, 3, 7, 64, 65, 1000} {
		vals := make([]int, n)
		for i := range vals {
			vals[i] = rng.IntN(50)
		}
		l := mustFrom(t, vals, Ordered[int]())
		l.Sort()
		assert.Equal(t, sortedCopy(vals), l.Slice(), "n=%d", n)
		requireConsistent(t, l)
	}
}

// TestSort_Stable tests that equal keys keep their original order.
func TestSort_Stable(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	vals := make([]tagged, 500)
	for i := range vals {
		vals[i] = tagged{key: rng.IntN(10), seq: i}
	}
	l := mustFrom(t, vals)
	l.SortFunc(byKey)

	want := slices.Clone(vals)
	slices.SortStableFunc(want, func(a, b tagged) int { return a.key - b.key })
	assert.Equal(t, want, l.Slice())
}

// TestSort_Descending tests a reversed ordering.
func TestSort_Descending(t *testing.T) {
	l := mustFrom(t, []int{3, 1, 2})
	l.SortFunc(compare.Reverse(compare.Less[int](compare.Ordered[int])))
	assert.Equal(t, []int{3, 2, 1}, l.Slice())
}

// TestSort_RequiresOrdering tests Sort without a configured ordering.
func TestSort_RequiresOrdering(t *testing.T) {
	l := mustFrom(t, []int{2, 1})
	testutil.RequireViolation(t, func() { l.Sort() })
}

// TestSort_CheckedFailureKeepsNodes tests reassembly after a comparator error.
func TestSort_CheckedFailureKeepsNodes(t *testing.T) {
	vals := []int{9, 3, 7, 1, 8, 2, 6, 4, 5, 0, 11, 10}
	for _, budget := range []int{0, 1, 5, 17} {
		l := mustFrom(t, vals)
		err := l.SortChecked(failAfter(budget))
		require.ErrorIs(t, err, errCompare)
		assert.Equal(t, len(vals), l.Len())
		requireConsistent(t, l)
		assert.Equal(t, sortedCopy(vals), sortedCopy(l.Slice()), "no element lost or duplicated")
	}
}

// TestSort_PanicKeepsNodes tests reassembly when the ordering panics.
func TestSort_PanicKeepsNodes(t *testing.T) {
	vals := []int{5, 4, 3, 2, 1, 0}
	l := mustFrom(t, vals)
	calls := 0
	assert.Panics(t, func() {
		l.SortFunc(func(a, b int) bool {
			calls++
			if calls == 4 {
				panic("boom")
			}
			return a < b
		})
	})
	assert.Equal(t, len(vals), l.Len())
	requireConsistent(t, l)
	assert.Equal(t, sortedCopy(vals), sortedCopy(l.Slice()))
}

// TestMerge_Basic tests merging two sorted lists.
func TestMerge_Basic(t *testing.T) {
	a := mustFrom(t, []int{1, 3, 5}, Ordered[int]())
	b := mustFrom(t, []int{2, 4, 6, 7})

	a.Merge(b)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, a.Slice())
	assert.Equal(t, 7, a.Len())
	assert.True(t, b.Empty())
	requireConsistent(t, a)
	requireConsistent(t, b)

	a.Merge(a)
	assert.Equal(t, 7, a.Len(), "self merge is a no-op")
}

// TestMerge_Stable tests that elements of the receiver precede equal ones of the argument.
func TestMerge_Stable(t *testing.T) {
	a := mustFrom(t, []tagged{{1, 0}, {2, 1}, {2, 2}})
	b := mustFrom(t, []tagged{{1, 10}, {2, 11}, {3, 12}})

	a.MergeFunc(b, byKey)
	assert.Equal(t, []tagged{{1, 0}, {1, 10}, {2, 1}, {2, 2}, {2, 11}, {3, 12}}, a.Slice())
}

// TestMerge_CheckedFailure tests that sizes stay exact when merge aborts.
func TestMerge_CheckedFailure(t *testing.T) {
	a := mustFrom(t, []int{1, 3, 5})
	b := mustFrom(t, []int{2, 4, 6})

	// (2<1) no, (2<3) yes -> 2 moves, then the third comparison fails.
	err := a.MergeChecked(b, failAfter(2))
	require.ErrorIs(t, err, errCompare)
	assert.Equal(t, []int{1, 2, 3, 5}, a.Slice())
	assert.Equal(t, []int{4, 6}, b.Slice())
	requireConsistent(t, a)
	requireConsistent(t, b)
}

// TestMerge_PanicKeepsSizes tests that a panicking ordering leaves sizes exact.
func TestMerge_PanicKeepsSizes(t *testing.T) {
	a := mustFrom(t, []int{1, 3, 5})
	b := mustFrom(t, []int{0, 4, 6})
	calls := 0
	assert.Panics(t, func() {
		a.MergeFunc(b, func(x, y int) bool {
			calls++
			if calls == 3 {
				panic("boom")
			}
			return x < y
		})
	})
	assert.Equal(t, 6, a.Len()+b.Len())
	requireConsistent(t, a)
	requireConsistent(t, b)
}
