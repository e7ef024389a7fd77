package alloc

import "github.com/joshuapare/collections/internal/buf"

// Ceiling returns the largest element count a may ever be asked for:
// min(MaxInt / sizeof(T), a.MaxSize()). Containers validate lengths against it
// before touching storage.
func Ceiling[T any](a Allocator[T]) int {
	return min(buf.MaxCount(sizeOf[T]()), a.MaxSize())
}

// Equal reports whether a and b draw from the same resource. Storage obtained
// from one may be released through the other.
func Equal[T, U any](a Allocator[T], b Allocator[U]) bool {
	return a.Resource().ID() == b.Resource().ID()
}

// Rebind returns an allocator for U with a's resource and allocation policy.
// Element hooks are not carried over; they belong to T.
//
// Only the policies of *Standard and *Pooled are known here. Any other
// Allocator is rebound to a Standard over a.Resource(): storage still comes
// from the same resource and the result is Equal to a, but whatever policy
// the custom allocator applies in Allocate or MaxSize does not reach U.
//
// The list uses it to obtain node storage from the allocator it was given for
// elements:
//
//	nodes := alloc.Rebind[node[T]](elems)
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	switch src := a.(type) {
	case *Pooled[T]:
		return NewPooled[U](src.res, src.table.config)
	default:
		return New[U](a.Resource())
	}
}
