// Package contract reports caller bugs: out-of-range cursors, incompatible
// cursors, dereferencing invalid positions, and splicing between lists with
// unequal allocators.
//
// A violation is not a recoverable condition. It panics with a *Violation so
// the program stops at the offending call; containers never recover it.
package contract

import "fmt"

// Violation describes a broken precondition.
type Violation struct {
	Op     string // operation that detected the violation, e.g. "list.Erase"
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", v.Op, v.Reason)
}

// Require panics with a *Violation when cond is false.
func Require(cond bool, op, reason string) {
	if !cond {
		panic(&Violation{Op: op, Reason: reason})
	}
}

// Requiref is Require with a formatted reason. The arguments are only
// formatted when the check fails.
func Requiref(cond bool, op, format string, args ...any) {
	if !cond {
		panic(&Violation{Op: op, Reason: fmt.Sprintf(format, args...)})
	}
}

// Fail panics unconditionally.
func Fail(op, reason string) {
	panic(&Violation{Op: op, Reason: reason})
}
