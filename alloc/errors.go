package alloc

import "errors"

var (
	// ErrLength indicates a request larger than the allocator's ceiling.
	// Nothing has been reserved when it is returned.
	ErrLength = errors.New("alloc: requested length exceeds allocation ceiling")

	// ErrExhausted indicates the resource cannot satisfy a reservation.
	ErrExhausted = errors.New("alloc: resource exhausted")

	// ErrBadConfig indicates an invalid allocator configuration.
	ErrBadConfig = errors.New("alloc: invalid configuration")
)
