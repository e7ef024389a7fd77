// Package testutil holds assertions shared by the container tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/collections/internal/contract"
)

// RequireViolation fails the test unless fn panics with a *contract.Violation,
// and returns the violation.
//
// Example:
//
//	testutil.RequireViolation(t, func() { l.PopFront() })
func RequireViolation(t *testing.T, fn func()) (v *contract.Violation) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract violation")
		var ok bool
		v, ok = r.(*contract.Violation)
		require.True(t, ok, "panic value should be *contract.Violation, got %T: %v", r, r)
	}()
	fn()
	return nil
}

// RequireViolationIn is RequireViolation that also checks the reporting operation.
//
// Example:
//
//	testutil.RequireViolationIn(t, "list.Splice", func() { a.Splice(a.End(), a) })
func RequireViolationIn(t *testing.T, op string, fn func()) {
	t.Helper()
	v := RequireViolation(t, fn)
	require.Equal(t, op, v.Op, "violation reported by the wrong operation: %s", v.Reason)
}
