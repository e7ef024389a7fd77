package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPooled_RecyclesSameClass tests that a released block serves the next request in its class.
func TestPooled_RecyclesSameClass(t *testing.T) {
	res := NewBounded(1 << 20)
	p := NewPooled[int64](res, ConfigBalanced)

	b1, err := p.Allocate(5)
	require.NoError(t, err)
	assert.Equal(t, 5, b1.Cap())
	assert.Equal(t, 8*8, res.InUse(), "class 1-8 reserves 8 slots")

	p.Deallocate(b1, 5)
	assert.Equal(t, 64, res.InUse(), "cached block stays reserved")

	b2, err := p.Allocate(7)
	require.NoError(t, err)
	assert.Equal(t, 7, b2.Cap())

	st := p.Stats()
	assert.Equal(t, 1, st.Hits)
	assert.Equal(t, 1, st.Misses)
	assert.Equal(t, 0, st.Cached)
	assert.Equal(t, 64, res.InUse(), "hit must not reserve again")

	p.Deallocate(b2, 7)
}

// TestPooled_RecycledBlockIsZeroed tests that recycled storage never leaks old values.
func TestPooled_RecycledBlockIsZeroed(t *testing.T) {
	p := NewPooled[string](nil, ConfigNodes)

	b, err := p.Allocate(1)
	require.NoError(t, err)
	*b.At(0) = "stale"
	p.Deallocate(b, 1)

	b, err = p.Allocate(1)
	require.NoError(t, err)
	assert.Empty(t, *b.At(0))
}

// TestPooled_LargeBypassesPool tests that requests above the last class are not cached.
func TestPooled_LargeBypassesPool(t *testing.T) {
	res := NewBounded(1 << 20)
	p := NewPooled[byte](res, ConfigNodes)

	b, err := p.Allocate(4096)
	require.NoError(t, err)
	assert.Equal(t, 4096, res.InUse())

	p.Deallocate(b, 4096)
	assert.Equal(t, 0, res.InUse())
	assert.Equal(t, 1, p.Stats().LargeAllocs)
	assert.Equal(t, 1, p.Stats().ReleasedBack)
}

// TestPooled_MaxFree tests that each class keeps at most MaxFree blocks.
func TestPooled_MaxFree(t *testing.T) {
	cfg := ConfigNodes
	cfg.MaxFree = 2
	res := NewBounded(1 << 20)
	p := NewPooled[int32](res, cfg)

	var blocks []Block[int32]
	for range 4 {
		b, err := p.Allocate(1)
		require.NoError(t, err)
		blocks = append(blocks, b)
	}
	for _, b := range blocks {
		p.Deallocate(b, 1)
	}

	st := p.Stats()
	assert.Equal(t, 2, st.Cached)
	assert.Equal(t, 2, st.ReleasedBack)
	assert.Equal(t, 2*4, res.InUse())
}

// TestPooled_Trim tests that Trim returns all cached bytes.
func TestPooled_Trim(t *testing.T) {
	res := NewBounded(1 << 20)
	p := NewPooled[int64](res, ConfigBalanced)

	for _, n := range []int{1, 9, 100} {
		b, err := p.Allocate(n)
		require.NoError(t, err)
		p.Deallocate(b, n)
	}
	require.NotZero(t, res.InUse())

	p.Trim()
	assert.Zero(t, res.InUse())
	assert.Zero(t, p.Stats().Cached)
}

// TestPooled_ExhaustionLeavesPoolIntact tests failure on reservation.
func TestPooled_ExhaustionLeavesPoolIntact(t *testing.T) {
	res := NewBounded(16)
	p := NewPooled[int64](res, ConfigBalanced)

	_, err := p.Allocate(1) // class capacity 8 -> 64 bytes
	require.ErrorIs(t, err, ErrExhausted)
	assert.Zero(t, res.InUse())
	assert.Zero(t, p.Stats().Misses)
}

// TestPooled_InvalidConfigPanics tests the constructor contract.
func TestPooled_InvalidConfigPanics(t *testing.T) {
	bad := ConfigNodes
	bad.SmallIncrement = 0
	assert.Panics(t, func() { NewPooled[int](nil, bad) })
}
