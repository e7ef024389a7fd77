package alloc

import (
	"fmt"

	"github.com/joshuapare/collections/internal/buf"
	"github.com/joshuapare/collections/internal/contract"
)

// Pooled recycles released blocks through segregated free lists.
//
//   - Requests are rounded up to their size class capacity.
//   - Deallocate pushes the block onto its class list instead of releasing it.
//   - Allocate pops from the class list before reserving new bytes.
//   - Requests above the table's largest class go straight to the resource.
//
// Cached blocks stay reserved against the resource; Trim releases them.
type Pooled[T any] struct {
	res      Resource
	hooks    Hooks[T]
	elemSize int

	table     *sizeClassTable
	freeLists [][][]T // per class, LIFO

	stats PoolStats
}

// PoolStats holds counters for testing and instrumentation.
type PoolStats struct {
	AllocCalls   int // total Allocate calls with n > 0
	Hits         int // served from a free list
	Misses       int // reserved fresh storage
	LargeAllocs  int // bypassed the pool
	FreeCalls    int // total Deallocate calls with a non-nil block
	Cached       int // blocks currently held in free lists
	ReleasedBack int // blocks returned to the resource by Deallocate or Trim
}

// NewPooled creates a pooled allocator over r using cfg. A nil r selects
// Heap(); an invalid cfg is a contract violation (validate user input with
// SizeClassConfig.Validate first).
func NewPooled[T any](r Resource, cfg SizeClassConfig, opts ...Option[T]) *Pooled[T] {
	if r == nil {
		r = Heap()
	}
	if err := cfg.Validate(); err != nil {
		contract.Fail("alloc.NewPooled", err.Error())
	}
	var s settings[T]
	for _, opt := range opts {
		opt(&s)
	}
	table := newSizeClassTable(cfg)
	return &Pooled[T]{
		res:       r,
		hooks:     s.hooks,
		elemSize:  sizeOf[T](),
		table:     table,
		freeLists: make([][][]T, table.NumClasses()),
	}
}

// Allocate implements Allocator.
func (p *Pooled[T]) Allocate(n int) (Block[T], error) {
	if err := checkCount(p, n); err != nil {
		return Block[T]{}, err
	}
	if n == 0 {
		return Block[T]{}, nil
	}
	p.stats.AllocCalls++

	sc := p.table.getSizeClass(n)
	if sc == p.table.NumClasses() {
		p.stats.LargeAllocs++
		if err := p.res.Reserve(n * p.elemSize); err != nil {
			return Block[T]{}, fmt.Errorf("allocate %d elements: %w", n, err)
		}
		return Block[T]{mem: make([]T, n)}, nil
	}

	if list := p.freeLists[sc]; len(list) > 0 {
		mem := list[len(list)-1]
		list[len(list)-1] = nil
		p.freeLists[sc] = list[:len(list)-1]
		p.stats.Hits++
		p.stats.Cached--
		return Block[T]{mem: mem[:n]}, nil
	}

	capacity := p.table.capacity(sc)
	bytes, ok := buf.MulOverflowSafe(capacity, p.elemSize)
	if !ok {
		return Block[T]{}, fmt.Errorf("%w: class capacity %d overflows", ErrLength, capacity)
	}
	if err := p.res.Reserve(bytes); err != nil {
		return Block[T]{}, fmt.Errorf("allocate %d elements: %w", n, err)
	}
	p.stats.Misses++
	return Block[T]{mem: make([]T, n, capacity)}, nil
}

// Deallocate implements Allocator.
func (p *Pooled[T]) Deallocate(b Block[T], n int) {
	if b.IsNil() {
		return
	}
	contract.Requiref(n == b.Cap(), "alloc.Deallocate", "count %d does not match block of %d", n, b.Cap())
	p.stats.FreeCalls++

	mem := b.mem[:cap(b.mem)]
	clear(mem)

	sc := p.table.getSizeClass(n)
	if sc == p.table.NumClasses() || cap(mem) != p.table.capacity(sc) {
		// Large, or carved by an equal allocator with a different table.
		p.res.Release(cap(mem) * p.elemSize)
		p.stats.ReleasedBack++
		return
	}
	if len(p.freeLists[sc]) >= p.table.config.MaxFree {
		p.res.Release(cap(mem) * p.elemSize)
		p.stats.ReleasedBack++
		return
	}
	p.freeLists[sc] = append(p.freeLists[sc], mem)
	p.stats.Cached++
}

// Trim releases every cached block back to the resource.
func (p *Pooled[T]) Trim() {
	for sc, list := range p.freeLists {
		for i, mem := range list {
			p.res.Release(cap(mem) * p.elemSize)
			list[i] = nil
			p.stats.ReleasedBack++
		}
		p.freeLists[sc] = list[:0]
	}
	p.stats.Cached = 0
}

// MaxSize implements Allocator.
func (p *Pooled[T]) MaxSize() int {
	return min(buf.MaxCount(p.elemSize), p.res.Limit()/p.elemSize)
}

// Construct implements Allocator.
func (p *Pooled[T]) Construct(ptr *T, v T) { p.hooks.construct(ptr, v) }

// Destroy implements Allocator.
func (p *Pooled[T]) Destroy(ptr *T) { p.hooks.destroy(ptr) }

// Resource implements Allocator.
func (p *Pooled[T]) Resource() Resource { return p.res }

// Config returns the size class configuration in use.
func (p *Pooled[T]) Config() SizeClassConfig { return p.table.config }

// Stats returns a copy of the pool counters.
func (p *Pooled[T]) Stats() PoolStats { return p.stats }
