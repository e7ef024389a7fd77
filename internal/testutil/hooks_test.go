package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/collections/alloc"
	"github.com/joshuapare/collections/internal/contract"
)

func TestLifecycle_CountsThroughAllocator(t *testing.T) {
	var lc Lifecycle[string]
	a := alloc.New(nil, alloc.WithHooks(lc.Hooks()))

	var s string
	a.Construct(&s, "x")
	assert.Equal(t, "x", s)
	assert.Equal(t, 1, lc.Live())

	a.Destroy(&s)
	assert.Empty(t, s, "destroy zeroes the slot")
	lc.AssertBalanced(t)
}

func TestRequireViolation_ReturnsViolation(t *testing.T) {
	v := RequireViolation(t, func() { contract.Fail("list.Front", "empty list") })
	require.NotNil(t, v)
	assert.Equal(t, "empty list", v.Reason)

	RequireViolationIn(t, "vector.Ref", func() { contract.Fail("vector.Ref", "index 3") })
}
