package alloc

import "github.com/google/uuid"

// Block is raw storage for a fixed number of T. Slots hold the zero value
// until constructed and after being destroyed.
type Block[T any] struct {
	mem []T
}

// IsNil reports whether b is the empty block returned by Allocate(0).
func (b Block[T]) IsNil() bool { return b.mem == nil }

// Cap returns the number of slots in b.
func (b Block[T]) Cap() int { return len(b.mem) }

// At returns a pointer to slot i.
func (b Block[T]) At(i int) *T { return &b.mem[i] }

// Span returns the slots [i,j) as a slice sharing b's storage.
func (b Block[T]) Span(i, j int) []T { return b.mem[i:j:j] }

// Resource is an untyped memory source.
type Resource interface {
	// ID identifies the resource. Allocators over resources with equal IDs
	// compare equal.
	ID() uuid.UUID

	// Reserve accounts bytes against the resource or fails without side effects.
	Reserve(bytes int) error

	// Release returns bytes previously reserved.
	Release(bytes int)

	// Limit reports the largest number of bytes a single reservation could
	// ever succeed with.
	Limit() int
}

// Allocator hands out typed storage blocks and runs element lifecycle hooks.
//
// Implementations:
//   - Standard: one block per request
//   - Pooled: recycles released blocks by size class
type Allocator[T any] interface {
	// Allocate returns storage for n elements. n == 0 yields the nil block.
	Allocate(n int) (Block[T], error)

	// Deallocate releases a block obtained from Allocate(n).
	// Deallocating the nil block is a no-op.
	Deallocate(b Block[T], n int)

	// MaxSize is the allocator's own element-count maximum.
	MaxSize() int

	// Construct initializes *p from v.
	Construct(p *T, v T)

	// Destroy ends the lifetime of *p and resets it to the zero value.
	Destroy(p *T)

	// Resource returns the memory source backing this allocator.
	Resource() Resource
}

// Hooks customize element construction and destruction.
// A nil Construct is plain assignment; a nil Destroy does nothing beyond
// zeroing the slot.
type Hooks[T any] struct {
	Construct func(dst *T, src T)
	Destroy   func(p *T)
}

func (h Hooks[T]) construct(p *T, v T) {
	if h.Construct != nil {
		h.Construct(p, v)
		return
	}
	*p = v
}

func (h Hooks[T]) destroy(p *T) {
	if h.Destroy != nil {
		h.Destroy(p)
	}
	var zero T
	*p = zero
}

type settings[T any] struct {
	hooks Hooks[T]
}

// Option configures an allocator.
type Option[T any] func(*settings[T])

// WithHooks installs element lifecycle hooks.
func WithHooks[T any](h Hooks[T]) Option[T] {
	return func(s *settings[T]) { s.hooks = h }
}
