//go:build linux || darwin

package alloc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/seqkit/internal/buf"
	"github.com/joshuapare/seqkit/pkg/types"
)

// Mmap hands out blocks backed by private anonymous mappings. Each block is
// its own mapping, page rounded, and is released with munmap on Deallocate.
// The collector never scans these blocks, so T must be pointer-free.
type Mmap[T any] struct {
	size int
	page int

	// maps keys each live mapping by the address of its first slot.
	maps map[*T][]byte
}

// NewMmap creates an off-heap provider. It fails with ErrHasPointers when T
// holds Go pointers (strings, slices, maps, interfaces, pointers, ...).
func NewMmap[T any]() (*Mmap[T], error) {
	if err := checkPointerFree[T](); err != nil {
		return nil, err
	}
	return &Mmap[T]{
		size: elemSize[T](),
		page: unix.Getpagesize(),
		maps: make(map[*T][]byte),
	}, nil
}

// Allocate maps a fresh region of at least n*sizeof(T) bytes and returns
// exactly n slots over it.
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
	if m.size == 0 {
		return make([]T, n), nil
	}

	nbytes, ok := buf.BlockBytes(n, m.size)
	if !ok {
		return nil, fmt.Errorf("mmap allocate %d slots: %w", n, ErrTooLarge)
	}
	// Round up to a whole number of pages
	length := ((nbytes + m.page - 1) / m.page) * m.page

	mem, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, types.Wrap(types.ErrKindMemory, "alloc.Mmap", fmt.Errorf("mmap %d bytes: %w", length, err))
	}

	block := unsafe.Slice((*T)(unsafe.Pointer(&mem[0])), n)
	m.maps[&block[0]] = mem
	return block, nil
}

// Deallocate unmaps the region behind block. Blocks not produced by this
// provider are ignored.
func (m *Mmap[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	mem, ok := m.maps[&block[0]]
	if !ok {
		return
	}
	delete(m.maps, &block[0])
	_ = unix.Munmap(mem)
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

func (m *Mmap[T]) MaxSize() int { return mmapMaxSize(m.size) }

func (m *Mmap[T]) Traits() Traits {
	return Traits{PropagateOnMove: true, PropagateOnSwap: true, MoveNoFail: true}
}

func (m *Mmap[T]) Equal(other Provider[T]) bool {
	o, ok := other.(*Mmap[T])
	return ok && o == m
}

// Mappings returns the number of live mappings.
func (m *Mmap[T]) Mappings() int { return len(m.maps) }

// Close unmaps every outstanding block.
func (m *Mmap[T]) Close() error {
	var first error
	for k, mem := range m.maps {
		if err := unix.Munmap(mem); err != nil && first == nil {
			first = err
		}
		delete(m.maps, k)
	}
	return first
}

// Compile-time interface check
var _ Provider[int] = (*Mmap[int])(nil)
