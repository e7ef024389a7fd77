// Package vector provides a growable contiguous container with
// allocator-aware storage.
//
// # Storage
//
// A Vector owns one alloc.Block and a length. Slots [0,Len) hold constructed
// elements; slots [Len,Cap) are allocated but unconstructed and never
// observable. Elements are constructed and destroyed through the allocator's
// hooks, so a caller-supplied alloc.Hooks sees every copy the vector makes.
//
// # Growth
//
// When an insertion does not fit, the new capacity is max(2*Cap, needed),
// capped at alloc.Ceiling. A request whose needed length is above the ceiling
// fails with alloc.ErrLength before anything is allocated. Reallocation builds
// the new block completely before the old one is destroyed, so a failed
// allocation leaves the vector exactly as it was.
//
// # Cursors
//
// Cursors are (vector, index) pairs from package cursor. They survive
// reallocation positionally, but an index at or beyond Len after an erase is
// no longer dereferenceable.
//
// # Moving storage
//
// MoveFrom hands storage over without copying when the allocators are equal
// (share a resource). Otherwise it copies into storage from the destination
// allocator and releases the source:
//
//	dst, err := vector.MoveFrom(src, alloc.New[int](quota))
package vector
