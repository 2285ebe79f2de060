package splitbuf

import (
	"github.com/joshuapare/seqkit/pkg/types"
	"github.com/joshuapare/seqkit/seq/alloc"
	"github.com/joshuapare/seqkit/seq/plan"
	"github.com/joshuapare/seqkit/seq/tx"
)

// Buffer is a block with a live range [begin, end) and spare on either side.
// The zero value is not usable; call New.
type Buffer[T any] struct {
	p     alloc.Provider[T]
	block []T
	begin int
	end   int
}

// New allocates a buffer of at least capacity slots with an empty live range
// starting at start. A zero capacity allocates nothing.
func New[T any](p alloc.Provider[T], capacity, start int) (*Buffer[T], error) {
	if capacity < 0 || start < 0 || start > capacity {
		return nil, types.Errorf(types.ErrKindLength, "splitbuf.New",
			"invalid capacity %d / start %d", capacity, start)
	}
	if p == nil {
		p = alloc.Heap[T]{}
	}
	b := &Buffer[T]{p: p, begin: start, end: start}
	if capacity == 0 {
		return b, nil
	}
	block, err := p.Allocate(capacity)
	if err != nil {
		return nil, types.Wrap(types.ErrKindMemory, "splitbuf.New", err)
	}
	b.block = block
	return b, nil
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.end - b.begin }

// Cap returns the block size.
func (b *Buffer[T]) Cap() int { return len(b.block) }

// FrontSpare returns the number of free slots before the live range.
func (b *Buffer[T]) FrontSpare() int { return b.begin }

// BackSpare returns the number of free slots after the live range.
func (b *Buffer[T]) BackSpare() int { return len(b.block) - b.end }

// Provider returns the buffer's provider.
func (b *Buffer[T]) Provider() alloc.Provider[T] { return b.p }

// At returns the i-th live element. It panics if i is out of range.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.Len() {
		panic("splitbuf: index out of range")
	}
	return b.block[b.begin+i]
}

// Front returns the first live element.
func (b *Buffer[T]) Front() (T, error) {
	if b.Len() == 0 {
		var zero T
		return zero, types.ErrEmpty
	}
	return b.block[b.begin], nil
}

// Back returns the last live element.
func (b *Buffer[T]) Back() (T, error) {
	if b.Len() == 0 {
		var zero T
		return zero, types.ErrEmpty
	}
	return b.block[b.end-1], nil
}

// Data returns the live range. The slice aliases the block.
func (b *Buffer[T]) Data() []T { return b.block[b.begin:b.end] }

// PushBack constructs v after the last element.
func (b *Buffer[T]) PushBack(v T) error {
	if b.end == len(b.block) {
		if b.begin > 0 {
			b.slide(-(b.begin + 1) / 2)
		} else if err := b.regrow(plan.BackBias); err != nil {
			return err
		}
	}
	t := tx.Begin(b.p, b.block, &b.end, 1)
	defer t.Close()
	if err := t.Construct(v); err != nil {
		return err
	}
	t.Commit()
	return nil
}

// PushFront constructs v before the first element.
func (b *Buffer[T]) PushFront(v T) error {
	if b.begin == 0 {
		if spare := b.BackSpare(); spare > 0 {
			b.slide((spare + 1) / 2)
		} else if err := b.regrow(plan.FrontBias); err != nil {
			return err
		}
	}
	t := tx.BeginBackward(b.p, b.block, &b.begin, 1)
	defer t.Close()
	if err := t.Construct(v); err != nil {
		return err
	}
	t.Commit()
	return nil
}

// PopBack destroys the last element.
func (b *Buffer[T]) PopBack() error {
	if b.Len() == 0 {
		return types.ErrEmpty
	}
	b.end--
	b.p.Destroy(&b.block[b.end])
	return nil
}

// PopFront destroys the first element.
func (b *Buffer[T]) PopFront() error {
	if b.Len() == 0 {
		return types.ErrEmpty
	}
	b.p.Destroy(&b.block[b.begin])
	b.begin++
	return nil
}

// ConstructAtEnd constructs n copies of v after the last element. The back
// spare must hold n slots. On failure nothing is added.
func (b *Buffer[T]) ConstructAtEnd(n int, v T) error {
	return b.ConstructAtEndFrom(n, func(int) (T, error) { return v, nil })
}

// ConstructAtEndFrom constructs at(0) .. at(n-1) after the last element. The
// back spare must hold n slots. An error from at rolls back every slot built
// by this call.
func (b *Buffer[T]) ConstructAtEndFrom(n int, at func(i int) (T, error)) error {
	if n > b.BackSpare() {
		return types.Errorf(types.ErrKindState, "splitbuf.ConstructAtEnd",
			"%d slots requested, %d spare", n, b.BackSpare())
	}
	t := tx.Begin(b.p, b.block, &b.end, n)
	defer t.Close()
	for i := 0; i < n; i++ {
		v, err := at(i)
		if err != nil {
			return types.Wrap(types.ErrKindConstruct, "splitbuf.ConstructAtEnd", err)
		}
		if err := t.Construct(v); err != nil {
			return err
		}
	}
	t.Commit()
	return nil
}

// RelocateFront relocates src into the front spare, last element first, so
// src ends up immediately before the current live range in its original order.
func (b *Buffer[T]) RelocateFront(src []T) error {
	if len(src) > b.begin {
		return types.Errorf(types.ErrKindState, "splitbuf.RelocateFront",
			"%d elements, %d front spare", len(src), b.begin)
	}
	t := tx.BeginBackward(b.p, b.block, &b.begin, len(src))
	defer t.Close()
	for i := len(src) - 1; i >= 0; i-- {
		if err := t.Relocate(&src[i]); err != nil {
			return err
		}
	}
	t.Commit()
	return nil
}

// RelocateBack relocates src after the last element in order.
func (b *Buffer[T]) RelocateBack(src []T) error {
	if len(src) > b.BackSpare() {
		return types.Errorf(types.ErrKindState, "splitbuf.RelocateBack",
			"%d elements, %d back spare", len(src), b.BackSpare())
	}
	t := tx.Begin(b.p, b.block, &b.end, len(src))
	defer t.Close()
	for i := range src {
		if err := t.Relocate(&src[i]); err != nil {
			return err
		}
	}
	t.Commit()
	return nil
}

// Reserve grows the block to exactly n slots when n exceeds Cap. The live
// range moves to the front of the new block.
func (b *Buffer[T]) Reserve(n int) error {
	if n <= b.Cap() {
		return nil
	}
	return b.reallocate(n, 0)
}

// ShrinkToFit reallocates to exactly Len slots when there is spare.
func (b *Buffer[T]) ShrinkToFit() error {
	if b.Cap() == b.Len() {
		return nil
	}
	return b.reallocate(b.Len(), 0)
}

// Release destroys the live range and returns the block to the provider.
// The buffer is empty afterwards and may be reused.
func (b *Buffer[T]) Release() {
	if b.block == nil {
		return
	}
	alloc.DestroyRange(b.p, b.block, b.begin, b.end)
	b.p.Deallocate(b.block)
	b.block, b.begin, b.end = nil, 0, 0
}

// Swap exchanges blocks, cursors and providers with other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	*b, *other = *other, *b
}

// Detach hands the block and live-range cursors to the caller, who takes
// over ownership. The buffer is left empty.
func (b *Buffer[T]) Detach() (block []T, begin, end int) {
	block, begin, end = b.block, b.begin, b.end
	b.block, b.begin, b.end = nil, 0, 0
	return block, begin, end
}

// slide shifts the live range by d slots (negative is toward the front).
// Live elements keep their identity, so no construction is involved;
// vacated slots are zeroed.
func (b *Buffer[T]) slide(d int) {
	n := copy(b.block[b.begin+d:], b.block[b.begin:b.end])
	if d < 0 {
		clear(b.block[b.end+d : b.end])
	} else {
		clear(b.block[b.begin : b.begin+d])
	}
	b.begin += d
	b.end = b.begin + n
}

// regrow moves the live range into a block of plan.Grow(Cap) slots, placing
// it at bias(newCap).
func (b *Buffer[T]) regrow(bias func(int) int) error {
	c := plan.Grow(b.Cap())
	return b.reallocate(c, bias(c))
}

func (b *Buffer[T]) reallocate(capacity, start int) error {
	nb, err := New(b.p, capacity, start)
	if err != nil {
		return err
	}
	defer nb.Release()
	if err := nb.RelocateBack(b.Data()); err != nil {
		return err
	}
	b.Swap(nb)
	return nil
}
