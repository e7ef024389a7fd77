// Package cursor implements random-access cursors over contiguous storage.
//
// A cursor is a (sequence, position) pair. Positions run from 0 to Len(),
// where Len() is the one-past-the-end position: reachable, comparable, never
// dereferenceable.
//
// All position and bounds logic lives in Const. Cursor wraps a Const and only
// adds write access; ReverseConst and Reverse do the same for reverse
// traversal, dereferencing the element before their base.
//
// Every check failure is a contract violation (see internal/contract):
//
//   - dereferencing a zero cursor, or one at/after the end
//   - moving before the first element or past the end
//   - comparing or subtracting cursors from different sequences
package cursor
