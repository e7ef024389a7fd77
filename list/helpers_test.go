package list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustFrom[T any](t *testing.T, vals []T, opts ...Option[T]) *List[T] {
	t.Helper()
	l, err := From(vals, opts...)
	require.NoError(t, err)
	return l
}

// requireConsistent checks the recorded length against the ring and that the
// back links mirror the forward links.
func requireConsistent[T any](t *testing.T, l *List[T]) {
	t.Helper()
	require.Equal(t, l.c.countNodes(), l.Len(), "recorded size must match the ring")
	for p := l.c.head.next; p != &l.c.head; p = p.next {
		require.Same(t, p, p.next.prev, "broken back link")
		require.False(t, p.sentinel)
		require.Same(t, l, p.owner(), "node resolves to another list")
	}
	require.Same(t, &l.c.head, l.c.head.next.prev)
}

func sortedCopy(vals []int) []int {
	out := slices.Clone(vals)
	slices.Sort(out)
	return out
}
