package alloc

import "fmt"

// DefaultArenaSlots is the slab size used when ArenaOptions.Slots is zero.
const DefaultArenaSlots = 4096

// ArenaOptions configures NewArena.
type ArenaOptions struct {
	// Slots is the slab size in elements. Default: DefaultArenaSlots.
	Slots int
}

// Arena is an append-only bump allocator over a single fixed slab.
//
// Key characteristics:
//   - O(1) initialization and allocation: a single bump pointer, no free lists
//   - Deallocate reclaims space only when the block is the most recent one;
//     anything else becomes dead space until Reset
//   - Exhaustion fails with ErrExhausted instead of growing the slab
//
// Arenas are stateful: two arenas are never Equal, and sequences that move or
// swap storage carry their arena with them.
type Arena[T any] struct {
	slab []T

	// off is the bump pointer: the slab index where the next block starts.
	off int

	// blocks counts outstanding blocks (allocated minus deallocated).
	blocks int
}

// NewArena creates an arena with a zeroed slab. opts may be nil.
func NewArena[T any](opts *ArenaOptions) *Arena[T] {
	slots := DefaultArenaSlots
	if opts != nil && opts.Slots > 0 {
		slots = opts.Slots
	}
	return &Arena[T]{slab: make([]T, slots)}
}

// Allocate carves exactly n slots off the end of the used region.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	if n == 0 {
		return nil, nil
	}
	if n > len(a.slab)-a.off {
		return nil, fmt.Errorf("arena allocate %d slots (used %d of %d): %w",
			n, a.off, len(a.slab), ErrExhausted)
	}
	block := a.slab[a.off : a.off+n : a.off+n]
	a.off += n
	a.blocks++
	return block, nil
}

// Deallocate rewinds the bump pointer when block is the most recent allocation.
func (a *Arena[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	a.blocks--
	start := a.off - len(block)
	if start >= 0 && &a.slab[start] == &block[0] {
		clear(a.slab[start:a.off])
		a.off = start
	}
}

func (a *Arena[T]) Construct(slot *T, v T) error {
	*slot = v
	return nil
}

func (a *Arena[T]) MoveConstruct(slot, src *T) error {
	*slot = *src
	var zero T
	*src = zero
	return nil
}

func (a *Arena[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// MaxSize is the slab size: no single block can be larger.
func (a *Arena[T]) MaxSize() int { return len(a.slab) }

func (a *Arena[T]) Traits() Traits {
	return Traits{PropagateOnMove: true, PropagateOnSwap: true, MoveNoFail: true}
}

func (a *Arena[T]) Equal(other Provider[T]) bool {
	o, ok := other.(*Arena[T])
	return ok && o == a
}

// Used returns the bump pointer position, dead space included.
func (a *Arena[T]) Used() int { return a.off }

// Remaining returns the slots still available to Allocate.
func (a *Arena[T]) Remaining() int { return len(a.slab) - a.off }

// Blocks returns the number of outstanding blocks.
func (a *Arena[T]) Blocks() int { return a.blocks }

// Reset releases every block at once. Blocks handed out earlier must no
// longer be in use.
func (a *Arena[T]) Reset() {
	clear(a.slab[:a.off])
	a.off = 0
	a.blocks = 0
}

// Compile-time interface check
var _ Provider[int] = (*Arena[int])(nil)
