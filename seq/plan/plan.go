// Package plan sizes storage for growable sequences.
//
// Recommend implements geometric (doubling) growth bounded by a hard maximum.
// Doubling makes the total relocation work over N appends at most 2N element
// moves, which is what makes append amortized O(1).
package plan

import (
	"math"

	"github.com/joshuapare/seqkit/internal/buf"
	"github.com/joshuapare/seqkit/pkg/types"
)

// MaxSize combines the provider's limit with the largest representable
// signed offset. Both bounds are needed: a provider may allow more slots than
// int arithmetic on positions can address.
func MaxSize(providerMax int) int {
	if providerMax <= 0 {
		return 0
	}
	return min(providerMax, math.MaxInt)
}

// Recommend returns the capacity to allocate when a sequence of capacity
// current must hold requested elements.
//
//   - requested > maxSize (or negative) fails with a length error
//   - current >= maxSize/2 returns maxSize (doubling would overshoot)
//   - otherwise max(2*current, requested)
func Recommend(current, requested, maxSize int) (int, error) {
	if requested < 0 || requested > maxSize {
		return 0, types.Errorf(types.ErrKindLength, "plan.Recommend",
			"requested %d exceeds max size %d", requested, maxSize)
	}
	if current >= maxSize/2 {
		return maxSize, nil
	}
	return max(2*current, requested), nil
}

// Need returns size+n as the size a sequence must reach, failing with a
// length error when the sum overflows or n is negative.
func Need(size, n int) (int, error) {
	if n < 0 {
		return 0, types.Errorf(types.ErrKindLength, "plan.Need", "negative count %d", n)
	}
	total, ok := buf.AddOverflowSafe(size, n)
	if !ok {
		return 0, types.Errorf(types.ErrKindLength, "plan.Need",
			"size %d + %d overflows", size, n)
	}
	return total, nil
}

// Grow is the capacity a double-ended buffer moves to when one side runs out
// of spare and the other has none to give: twice the current, at least 1.
func Grow(capacity int) int {
	if capacity > math.MaxInt/2 {
		return math.MaxInt
	}
	return max(2*capacity, 1)
}

// FrontBias is where the live range starts in a buffer of capacity c grown by
// a push at the front. Rounding up keeps at least one front slot for c >= 1.
func FrontBias(c int) int { return (c + 3) / 4 }

// BackBias is where the live range starts in a buffer of capacity c grown by
// a push at the back.
func BackBias(c int) int { return c / 4 }
