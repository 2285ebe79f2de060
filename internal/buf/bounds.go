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
// This is essential for count * elementSize calculations when sizing blocks.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
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

// CheckIndex validates that i addresses a live element of a range of length n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("index %d out of range [0,%d)", i, n)
	}
	return nil
}

// CheckPosition validates that pos is an insertion point in a range of length n.
// Unlike CheckIndex, pos == n (one past the last element) is valid.
func CheckPosition(pos, n int) error {
	if pos < 0 || pos > n {
		return fmt.Errorf("position %d out of range [0,%d]", pos, n)
	}
	return nil
}

// CheckSpan validates that [first,last) is a well-formed sub-range of [0,n).
//
//	if err := buf.CheckSpan(first, last, v.Len()); err != nil {
//	    return fmt.Errorf("erase: %w", err)
//	}
func CheckSpan(first, last, n int) error {
	if first < 0 || last > n {
		return fmt.Errorf("span [%d,%d) out of range [0,%d]", first, last, n)
	}
	if first > last {
		return fmt.Errorf("span [%d,%d) is inverted", first, last)
	}
	return nil
}

// BlockBytes returns count * elemSize, or ok = false on overflow or negative input.
func BlockBytes(count, elemSize int) (int, bool) {
	if count < 0 || elemSize < 0 {
		return 0, false
	}
	return MulOverflowSafe(count, elemSize)
}
