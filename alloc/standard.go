package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/collections/internal/buf"
	"github.com/joshuapare/collections/internal/contract"
)

// Standard is the default allocator: every Allocate reserves bytes on the
// resource and returns a fresh block; every Deallocate gives them back.
type Standard[T any] struct {
	res      Resource
	hooks    Hooks[T]
	elemSize int
}

// New creates a Standard allocator over r. A nil r selects Heap().
func New[T any](r Resource, opts ...Option[T]) *Standard[T] {
	if r == nil {
		r = Heap()
	}
	var s settings[T]
	for _, opt := range opts {
		opt(&s)
	}
	return &Standard[T]{res: r, hooks: s.hooks, elemSize: sizeOf[T]()}
}

// sizeOf returns the accounting size of T. Zero-sized types count as one byte.
func sizeOf[T any]() int {
	var zero T
	if n := int(unsafe.Sizeof(zero)); n > 0 {
		return n
	}
	return 1
}

// Allocate implements Allocator.
func (a *Standard[T]) Allocate(n int) (Block[T], error) {
	if err := checkCount(a, n); err != nil {
		return Block[T]{}, err
	}
	if n == 0 {
		return Block[T]{}, nil
	}
	bytes := n * a.elemSize
	if err := a.res.Reserve(bytes); err != nil {
		return Block[T]{}, fmt.Errorf("allocate %d elements: %w", n, err)
	}
	return Block[T]{mem: make([]T, n)}, nil
}

// Deallocate implements Allocator.
func (a *Standard[T]) Deallocate(b Block[T], n int) {
	if b.IsNil() {
		return
	}
	contract.Requiref(n == b.Cap(), "alloc.Deallocate", "count %d does not match block of %d", n, b.Cap())
	// A block from an equal Pooled carries its whole size class in its
	// capacity, and that is what the resource was charged.
	mem := b.mem[:cap(b.mem)]
	clear(mem)
	a.res.Release(len(mem) * a.elemSize)
}

// MaxSize implements Allocator.
func (a *Standard[T]) MaxSize() int {
	return min(buf.MaxCount(a.elemSize), a.res.Limit()/a.elemSize)
}

// Construct implements Allocator.
func (a *Standard[T]) Construct(p *T, v T) { a.hooks.construct(p, v) }

// Destroy implements Allocator.
func (a *Standard[T]) Destroy(p *T) { a.hooks.destroy(p) }

// Resource implements Allocator.
func (a *Standard[T]) Resource() Resource { return a.res }

// checkCount validates n against the ceiling before anything is reserved.
func checkCount[T any](a Allocator[T], n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrLength, n)
	}
	if ceiling := Ceiling(a); n > ceiling {
		return fmt.Errorf("%w: requested %d, ceiling %d", ErrLength, n, ceiling)
	}
	return nil
}
