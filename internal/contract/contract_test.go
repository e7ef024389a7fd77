package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire_PassesWhenTrue(t *testing.T) {
	assert.NotPanics(t, func() { Require(true, "op", "never") })
	assert.NotPanics(t, func() { Requiref(true, "op", "never %d", 1) })
}

func TestRequire_PanicsWithViolation(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		v, ok := r.(*Violation)
		require.True(t, ok, "panic value should be *Violation, got %T", r)
		assert.Equal(t, "vector.Ref", v.Op)
		assert.Equal(t, "index 4 out of range", v.Reason)
		assert.Equal(t, "contract violation in vector.Ref: index 4 out of range", v.Error())
	}()
	Requiref(false, "vector.Ref", "index %d out of range", 4)
}

func TestFail(t *testing.T) {
	assert.PanicsWithError(t, "contract violation in list.Front: empty list", func() {
		Fail("list.Front", "empty list")
	})
}
