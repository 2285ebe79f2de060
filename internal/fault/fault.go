// Package fault provides a memory provider that fails on demand. Tests use it
// to drive rollback paths and seqctl replay uses it to inject failures into
// scripted runs.
package fault

import (
	"errors"

	"github.com/joshuapare/seqkit/seq/alloc"
)

// ErrInjected is returned by a Provider when an armed fault fires.
var ErrInjected = errors.New("fault: injected")

// Provider wraps another provider and fails the Nth call of a chosen kind.
// Counters are 1-based and count every call since the fault was armed; zero
// disables. A failing Allocate returns alloc.ErrExhausted.
//
//	f := fault.New[int](nil)
//	f.FailConstructAt(3) // third Construct from now returns ErrInjected
type Provider[T any] struct {
	inner alloc.Provider[T]

	failConstruct int
	failMove      int
	failAlloc     int

	constructs int
	moves      int
	allocs     int

	// MoveMayFail reports MoveNoFail=false so migrations copy instead of moving.
	MoveMayFail bool
}

// New wraps inner. A nil inner wraps alloc.Heap.
func New[T any](inner alloc.Provider[T]) *Provider[T] {
	if inner == nil {
		inner = alloc.Heap[T]{}
	}
	return &Provider[T]{inner: inner}
}

// FailConstructAt arms a fault on the nth Construct call from now.
func (f *Provider[T]) FailConstructAt(n int) {
	f.failConstruct, f.constructs = n, 0
}

// FailMoveAt arms a fault on the nth MoveConstruct call from now.
func (f *Provider[T]) FailMoveAt(n int) {
	f.failMove, f.moves = n, 0
}

// FailAllocAt arms a fault on the nth Allocate call from now.
func (f *Provider[T]) FailAllocAt(n int) {
	f.failAlloc, f.allocs = n, 0
}

// Disarm clears every armed fault.
func (f *Provider[T]) Disarm() {
	f.failConstruct, f.failMove, f.failAlloc = 0, 0, 0
}

func (f *Provider[T]) Allocate(n int) ([]T, error) {
	f.allocs++
	if f.failAlloc > 0 && f.allocs == f.failAlloc {
		return nil, alloc.ErrExhausted
	}
	return f.inner.Allocate(n)
}

func (f *Provider[T]) Deallocate(block []T) { f.inner.Deallocate(block) }

func (f *Provider[T]) Construct(slot *T, v T) error {
	f.constructs++
	if f.failConstruct > 0 && f.constructs == f.failConstruct {
		return ErrInjected
	}
	return f.inner.Construct(slot, v)
}

func (f *Provider[T]) MoveConstruct(slot, src *T) error {
	f.moves++
	if f.failMove > 0 && f.moves == f.failMove {
		return ErrInjected
	}
	return f.inner.MoveConstruct(slot, src)
}

func (f *Provider[T]) Destroy(slot *T) { f.inner.Destroy(slot) }

func (f *Provider[T]) MaxSize() int { return f.inner.MaxSize() }

func (f *Provider[T]) Traits() alloc.Traits {
	t := f.inner.Traits()
	if f.MoveMayFail {
		t.MoveNoFail = false
	}
	return t
}

func (f *Provider[T]) Equal(other alloc.Provider[T]) bool {
	if o, ok := other.(*Provider[T]); ok {
		other = o.inner
	}
	return f.inner.Equal(other)
}

var _ alloc.Provider[int] = (*Provider[int])(nil)
