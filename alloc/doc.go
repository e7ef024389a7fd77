// Package alloc provides allocator-aware storage management for the containers
// in this module.
//
// # Overview
//
// Storage is split into two layers:
//
//   - Resource: an untyped memory source that accounts bytes. It decides
//     whether a reservation may proceed and carries the identity used for
//     allocator equality.
//   - Allocator[T]: a typed view over a Resource. It hands out Blocks of T,
//     takes them back, reports its maximum size, and runs element
//     construction/destruction hooks.
//
// Containers keep the four phases apart: Allocate, Construct, Destroy,
// Deallocate. Failure recovery only has to reason about the phase that failed.
//
// # Allocator Interface
//
//   - Allocate(n): storage for n elements, or ErrLength when n exceeds the
//     ceiling min(MaxInt/sizeof(T), MaxSize()). The check runs before the
//     resource is touched.
//   - Deallocate(b, n): release a block obtained from Allocate(n). A nil block
//     is a no-op.
//   - Construct(p, v) / Destroy(p): element lifecycle hooks.
//
// # Implementations
//
// Standard: one fresh block per request, released straight back to the
// resource.
//
// Pooled: segregated free lists of released blocks keyed by size class.
//
//	Class  0:  1 -  8 elements
//	Class  1:  9 - 16 elements
//	...
//	Class  n:  geometric growth up to MediumMax
//	Large:     > MediumMax, never cached
//
// Requests are rounded up to their class capacity so a released block can
// serve any later request in the same class. Cached blocks stay reserved
// against the resource until Trim.
//
// # Resources
//
//	Heap()          process-wide, unbounded, single identity
//	NewBounded(n)   byte quota; ErrExhausted on overrun
//	Instrument(r)   Prometheus counters and gauges around r
//	Trace(r, log)   zap debug logging around r
//
// # Equality
//
// Two allocators are equal when their resources share an identity. Equal
// allocators may release each other's blocks, which is what lets a list move
// nodes between instances without reallocating them.
//
// # Usage Example
//
//	res := alloc.NewBounded(1 << 20)
//	a := alloc.New[int](res)
//
//	b, err := a.Allocate(16)
//	if err != nil {
//	    return err
//	}
//	a.Construct(b.At(0), 42)
//	// ...
//	a.Destroy(b.At(0))
//	a.Deallocate(b, 16)
//
// # Thread Safety
//
// Allocators are not thread-safe. Bounded uses atomics, so one quota may be
// shared by containers living on different goroutines.
package alloc
