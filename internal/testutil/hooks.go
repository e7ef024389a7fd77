package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/collections/alloc"
)

// Lifecycle counts element constructions and destructions made through an
// allocator's hooks.
type Lifecycle[T any] struct {
	Constructed int
	Destroyed   int
}

// Hooks returns allocator hooks that update the counters.
func (l *Lifecycle[T]) Hooks() alloc.Hooks[T] {
	return alloc.Hooks[T]{
		Construct: func(dst *T, src T) {
			l.Constructed++
			*dst = src
		},
		Destroy: func(*T) { l.Destroyed++ },
	}
}

// Live returns the number of elements constructed and not yet destroyed.
func (l *Lifecycle[T]) Live() int { return l.Constructed - l.Destroyed }

// AssertBalanced checks that every constructed element was destroyed.
func (l *Lifecycle[T]) AssertBalanced(t *testing.T) {
	t.Helper()
	assert.Equal(t, l.Constructed, l.Destroyed, "constructions and destructions should balance")
}

// AssertReleased checks that nothing is reserved against res.
func AssertReleased(t *testing.T, res *alloc.Bounded) {
	t.Helper()
	st := res.Stats()
	assert.Zero(t, st.InUse, "%d bytes still reserved (peak %d)", st.InUse, st.Peak)
}
