package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is what guards count * elementSize before any storage is reserved.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// MaxCount returns the largest element count whose byte size still fits in an int.
// Zero-sized elements are counted as one byte so the ceiling stays finite.
func MaxCount(elemSize int) int {
	if elemSize <= 0 {
		elemSize = 1
	}
	return math.MaxInt / elemSize
}

// CheckIndex validates that i addresses an element of a sequence of length n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("index %d out of range [0,%d)", i, n)
	}
	return nil
}

// CheckRange validates the half-open range [begin,end) against a sequence of length n.
// An empty range at n is valid.
//
//	if err := buf.CheckRange(begin, end, len(data)); err != nil {
//	    return fmt.Errorf("map: %w", err)
//	}
func CheckRange(begin, end, n int) error {
	if begin < 0 {
		return fmt.Errorf("negative begin: %d", begin)
	}
	if end < begin {
		return fmt.Errorf("inverted range: [%d,%d)", begin, end)
	}
	if end > n {
		return fmt.Errorf("bounds: end=%d > len=%d", end, n)
	}
	return nil
}

// Offset moves pos by delta and reports whether the result stays within [0,n].
// n itself is the one-past-the-end position and is reachable.
func Offset(pos, delta, n int) (int, bool) {
	next, ok := AddOverflowSafe(pos, delta)
	if !ok || next < 0 || next > n {
		return 0, false
	}
	return next, true
}
