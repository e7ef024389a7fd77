package alloc

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/joshuapare/collections/internal/contract"
)

// heapID is stable across processes so Heap() allocators always compare equal.
var heapID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("github.com/joshuapare/collections/alloc.Heap"))

type heapResource struct{}

var heapRes Resource = heapResource{}

// Heap returns the process-wide unbounded resource backed by the Go heap.
// It is the default for every container.
func Heap() Resource { return heapRes }

func (heapResource) ID() uuid.UUID     { return heapID }
func (heapResource) Reserve(int) error { return nil }
func (heapResource) Release(int)       {}
func (heapResource) Limit() int        { return math.MaxInt }
func (heapResource) String() string    { return "heap" }

// Bounded is a resource with a fixed byte quota.
//
// Reservations that would push usage past the quota fail with ErrExhausted and
// leave the accounting untouched.
type Bounded struct {
	id    uuid.UUID
	limit int64

	inUse atomic.Int64
	peak  atomic.Int64

	reservations atomic.Int64
	releases     atomic.Int64
	failures     atomic.Int64
}

// BoundedStats is a snapshot of a Bounded resource's accounting.
type BoundedStats struct {
	Limit        int64 // quota in bytes
	InUse        int64 // bytes currently reserved
	Peak         int64 // high-water mark of InUse
	Reservations int64 // successful Reserve calls
	Releases     int64 // Release calls
	Failures     int64 // Reserve calls rejected with ErrExhausted
}

// NewBounded creates a resource that allows at most limit bytes in use.
func NewBounded(limit int) *Bounded {
	contract.Requiref(limit >= 0, "alloc.NewBounded", "negative limit %d", limit)
	return &Bounded{id: uuid.New(), limit: int64(limit)}
}

// ID implements Resource.
func (b *Bounded) ID() uuid.UUID { return b.id }

// Limit implements Resource.
func (b *Bounded) Limit() int { return int(b.limit) }

// Reserve implements Resource.
func (b *Bounded) Reserve(bytes int) error {
	contract.Requiref(bytes >= 0, "alloc.Bounded.Reserve", "negative size %d", bytes)
	n := int64(bytes)
	for {
		cur := b.inUse.Load()
		if n > b.limit-cur {
			b.failures.Add(1)
			return fmt.Errorf("%w: need %d bytes, %d of %d in use", ErrExhausted, n, cur, b.limit)
		}
		if b.inUse.CompareAndSwap(cur, cur+n) {
			b.reservations.Add(1)
			b.raisePeak(cur + n)
			return nil
		}
	}
}

// Release implements Resource. Releasing more than is in use is a contract violation.
func (b *Bounded) Release(bytes int) {
	n := int64(bytes)
	after := b.inUse.Add(-n)
	if after < 0 {
		b.inUse.Add(n)
		contract.Requiref(false, "alloc.Bounded.Release", "released %d bytes with only %d in use", n, after+n)
	}
	b.releases.Add(1)
}

func (b *Bounded) raisePeak(v int64) {
	for {
		p := b.peak.Load()
		if v <= p || b.peak.CompareAndSwap(p, v) {
			return
		}
	}
}

// InUse returns the bytes currently reserved.
func (b *Bounded) InUse() int { return int(b.inUse.Load()) }

// Stats returns a snapshot of the accounting counters.
func (b *Bounded) Stats() BoundedStats {
	return BoundedStats{
		Limit:        b.limit,
		InUse:        b.inUse.Load(),
		Peak:         b.peak.Load(),
		Reservations: b.reservations.Load(),
		Releases:     b.releases.Load(),
		Failures:     b.failures.Load(),
	}
}

func (b *Bounded) String() string {
	return fmt.Sprintf("bounded(%s, %d/%d)", b.id, b.inUse.Load(), b.limit)
}
