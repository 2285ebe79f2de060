package alloc

// Traits describes how a provider behaves when its owning sequence is copied,
// moved or swapped, and whether element moves can fail.
type Traits struct {
	// AlwaysEqual means any two instances can release each other's blocks.
	AlwaysEqual bool

	// PropagateOnCopy means copy-assignment adopts the source's provider.
	PropagateOnCopy bool

	// PropagateOnMove means move-assignment adopts the source's provider,
	// which keeps the O(1) block transfer available for non-equal providers.
	PropagateOnMove bool

	// PropagateOnSwap means Swap exchanges providers along with blocks.
	PropagateOnSwap bool

	// MoveNoFail means MoveConstruct never returns an error. When false,
	// migrations copy instead of moving so the source stays intact for rollback.
	MoveNoFail bool
}

// Provider defines the interface for block allocation and per-slot lifetime
// management.
//
// Implementations:
//   - Heap: garbage-collected blocks (default)
//   - Arena: bump-pointer blocks from a fixed slab
//   - Mmap: off-heap mappings for pointer-free element types
//   - Counting: instrumentation wrapper around any provider
type Provider[T any] interface {
	// Allocate returns a block of at least n slots. n == 0 may return nil.
	// Failure is reported with an error of kind types.ErrKindMemory.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block previously returned by Allocate on this
	// provider (or one Equal to it). Live slots must be destroyed first.
	Deallocate(block []T)

	// Construct copy-constructs v into the uninitialized slot.
	Construct(slot *T, v T) error

	// MoveConstruct moves *src into the uninitialized slot. src stays a live,
	// moved-from element that still needs Destroy.
	MoveConstruct(slot, src *T) error

	// Destroy ends the lifetime of a live slot.
	Destroy(slot *T)

	// MaxSize is the largest slot count Allocate can ever satisfy.
	MaxSize() int

	// Traits reports propagation and failure characteristics.
	Traits() Traits

	// Equal reports whether blocks allocated by other may be released by this provider.
	Equal(other Provider[T]) bool
}

// Relocate constructs *dst from *src using move when p guarantees moves
// cannot fail, and copy otherwise, so a failed migration never leaves the
// source half-moved.
func Relocate[T any](p Provider[T], moveNoFail bool, dst, src *T) error {
	if moveNoFail {
		return p.MoveConstruct(dst, src)
	}
	return p.Construct(dst, *src)
}

// Interchangeable reports whether a and b can exchange blocks in either direction.
func Interchangeable[T any](a, b Provider[T]) bool {
	if a.Traits().AlwaysEqual && b.Traits().AlwaysEqual {
		return true
	}
	return a.Equal(b) && b.Equal(a)
}

// DestroyRange destroys block[from:to] in reverse order.
func DestroyRange[T any](p Provider[T], block []T, from, to int) {
	for i := to - 1; i >= from; i-- {
		p.Destroy(&block[i])
	}
}
