package alloc

import (
	"fmt"
	"math"
	"runtime/debug"
	"unsafe"
)

// MaxHeapBytes caps a single Heap block. The Go runtime aborts the process on
// an allocation it cannot satisfy, so larger requests are refused up front
// with ErrTooLarge. The default is the smaller of the runtime soft memory
// limit (GOMEMLIMIT) and the host's physical memory.
var MaxHeapBytes = defaultMaxHeapBytes()

// fallbackHeapBytes applies when physical memory cannot be queried.
const fallbackHeapBytes = 1 << 34

func defaultMaxHeapBytes() int {
	limit := debug.SetMemoryLimit(-1)
	phys := physicalMemory()
	if phys <= 0 {
		phys = fallbackHeapBytes
	}
	return int(min(limit, phys, int64(math.MaxInt)))
}

// Heap allocates blocks with make. The zero value is ready to use and every
// Heap is interchangeable with every other.
type Heap[T any] struct{}

// Allocate returns a zeroed block of exactly n slots.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	if n == 0 {
		return nil, nil
	}
	if limit := (Heap[T]{}).MaxSize(); n > limit {
		return nil, fmt.Errorf("heap allocate %d slots (max %d): %w", n, limit, ErrTooLarge)
	}
	return make([]T, n), nil
}

// Deallocate drops the block; the collector reclaims it.
func (Heap[T]) Deallocate([]T) {}

func (Heap[T]) Construct(slot *T, v T) error {
	*slot = v
	return nil
}

func (Heap[T]) MoveConstruct(slot, src *T) error {
	*slot = *src
	var zero T
	*src = zero
	return nil
}

// Destroy zeroes the slot so the collector does not see stale references.
func (Heap[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// MaxSize is MaxHeapBytes divided by the element size.
func (Heap[T]) MaxSize() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return MaxHeapBytes / size
}

func (Heap[T]) Traits() Traits {
	return Traits{AlwaysEqual: true, MoveNoFail: true}
}

func (Heap[T]) Equal(other Provider[T]) bool {
	_, ok := other.(Heap[T])
	return ok
}

// Compile-time interface check
var _ Provider[int] = Heap[int]{}
