//go:build !linux && !darwin

package alloc

import "fmt"

// Mmap falls back to heap-backed blocks on platforms without anonymous
// mappings. It keeps the pointer-free restriction so code behaves the same
// everywhere.
type Mmap[T any] struct {
	live int
}

// NewMmap creates the fallback provider. It fails with ErrHasPointers when T
// holds Go pointers.
func NewMmap[T any]() (*Mmap[T], error) {
	if err := checkPointerFree[T](); err != nil {
		return nil, err
	}
	return &Mmap[T]{}, nil
}

func (m *Mmap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	if n == 0 {
		return nil, nil
	}
	if n > m.MaxSize() {
		return nil, fmt.Errorf("mmap allocate %d slots: %w", n, ErrTooLarge)
	}
	m.live++
	return make([]T, n), nil
}

func (m *Mmap[T]) Deallocate(block []T) {
	if len(block) > 0 {
		m.live--
	}
}

func (m *Mmap[T]) Construct(slot *T, v T) error {
	*slot = v
	return nil
}

func (m *Mmap[T]) MoveConstruct(slot, src *T) error {
	*slot = *src
	return nil
}

func (m *Mmap[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

func (m *Mmap[T]) MaxSize() int {
	return min(mmapMaxSize(elemSize[T]()), (Heap[T]{}).MaxSize())
}

func (m *Mmap[T]) Traits() Traits {
	return Traits{PropagateOnMove: true, PropagateOnSwap: true, MoveNoFail: true}
}

func (m *Mmap[T]) Equal(other Provider[T]) bool {
	o, ok := other.(*Mmap[T])
	return ok && o == m
}

func (m *Mmap[T]) Mappings() int { return m.live }

func (m *Mmap[T]) Close() error {
	m.live = 0
	return nil
}

var _ Provider[int] = (*Mmap[int])(nil)
