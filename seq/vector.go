package seq

import (
	"fmt"
	"iter"

	"github.com/joshuapare/seqkit/internal/buf"
	"github.com/joshuapare/seqkit/pkg/types"
	"github.com/joshuapare/seqkit/seq/alloc"
	"github.com/joshuapare/seqkit/seq/plan"
	"github.com/joshuapare/seqkit/seq/report"
	"github.com/joshuapare/seqkit/seq/tx"
)

// Vector is a growable contiguous sequence whose storage comes from a
// Provider. Elements occupy block[0:Len()]; block[Len():Cap()] is spare.
//
// The zero value is an empty Vector on alloc.Heap, ready to use.
// A Vector is NOT safe for concurrent use.
type Vector[T any] struct {
	p     alloc.Provider[T]
	block []T // len(block) is the capacity
	end   int
}

// New returns an empty Vector using p. A nil p uses alloc.Heap.
func New[T any](p alloc.Provider[T]) *Vector[T] {
	if p == nil {
		p = alloc.Heap[T]{}
	}
	return &Vector[T]{p: p}
}

// FromSlice returns a Vector holding copies of s, with capacity exactly len(s).
func FromSlice[T any](p alloc.Provider[T], s []T) (*Vector[T], error) {
	v := New(p)
	if err := v.rebuild(len(s), len(s), Slice(s).At); err != nil {
		return nil, v.failed("seq.FromSlice", err)
	}
	return v, nil
}

// FromSource returns a Vector holding the elements src produces. A Counted
// source is sized exactly up front; any other source is appended one element
// at a time.
func FromSource[T any](p alloc.Provider[T], src Source[T]) (*Vector[T], error) {
	v := New(p)
	if c, ok := src.(Counted[T]); ok {
		n := max(c.Len(), 0)
		if err := v.rebuild(n, n, c.At); err != nil {
			return nil, v.failed("seq.FromSource", err)
		}
		return v, nil
	}
	if _, err := v.insertSinglePass("seq.FromSource", 0, src); err != nil {
		v.Release()
		return nil, v.failed("seq.FromSource", err)
	}
	return v, nil
}

func (v *Vector[T]) prov() alloc.Provider[T] {
	if v.p == nil {
		v.p = alloc.Heap[T]{}
	}
	return v.p
}

// Provider returns the Vector's provider.
func (v *Vector[T]) Provider() alloc.Provider[T] { return v.prov() }

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.end }

// Cap returns the number of slots in the current block.
func (v *Vector[T]) Cap() int { return len(v.block) }

// Empty reports whether Len is zero.
func (v *Vector[T]) Empty() bool { return v.end == 0 }

// MaxSize is the largest Len any operation may request.
func (v *Vector[T]) MaxSize() int { return plan.MaxSize(v.prov().MaxSize()) }

// Data returns the live elements. The slice aliases the Vector's block and is
// invalidated by any operation that reallocates; its capacity is clipped so
// appending to it never writes into spare slots.
func (v *Vector[T]) Data() []T { return v.block[:v.end:v.end] }

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := buf.CheckIndex(i, v.end); err != nil {
		var zero T
		return zero, v.failed("seq.At", rangeErr(err))
	}
	return v.block[i], nil
}

// Index returns element i without a range error. It panics if i >= Len.
func (v *Vector[T]) Index(i int) T { return v.block[:v.end][i] }

// Set assigns element i.
func (v *Vector[T]) Set(i int, x T) error {
	if err := buf.CheckIndex(i, v.end); err != nil {
		return v.failed("seq.Set", rangeErr(err))
	}
	v.block[i] = x
	return nil
}

// Ptr returns a pointer to element i, valid until the next reallocation.
func (v *Vector[T]) Ptr(i int) (*T, error) {
	if err := buf.CheckIndex(i, v.end); err != nil {
		return nil, v.failed("seq.Ptr", rangeErr(err))
	}
	return &v.block[i], nil
}

// Front returns the first element, or types.ErrEmpty.
func (v *Vector[T]) Front() (T, error) {
	if v.end == 0 {
		var zero T
		return zero, v.failed("seq.Front", types.ErrEmpty)
	}
	return v.block[0], nil
}

// Back returns the last element, or types.ErrEmpty.
func (v *Vector[T]) Back() (T, error) {
	if v.end == 0 {
		var zero T
		return zero, v.failed("seq.Back", types.ErrEmpty)
	}
	return v.block[v.end-1], nil
}

// All yields index/element pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.end; i++ {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.end - 1; i >= 0; i-- {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

// Values yields elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.end; i++ {
			if !yield(v.block[i]) {
				return
			}
		}
	}
}

// Append adds x after the last element, reallocating when there is no spare.
// On failure the Vector is unchanged.
func (v *Vector[T]) Append(x T) error {
	return v.failed("seq.Append", v.insertAt("seq.Append", v.end, 1, one(x)))
}

// EmplaceBack appends an element built by ctor. If ctor fails nothing is
// appended.
func (v *Vector[T]) EmplaceBack(ctor func(*T) error) error {
	const op = "seq.EmplaceBack"
	if v.end < v.Cap() {
		return v.failed(op, v.emplaceSpare(ctor))
	}
	return v.failed(op, v.insertAt(op, v.end, 1, build(ctor)))
}

// emplaceSpare builds one element directly into the first spare slot.
func (v *Vector[T]) emplaceSpare(ctor func(*T) error) error {
	t := tx.Begin(v.prov(), v.block, &v.end, 1)
	defer t.Close()
	if err := t.ConstructWith(ctor); err != nil {
		return err
	}
	t.Commit()
	return nil
}

// PopBack destroys the last element.
func (v *Vector[T]) PopBack() error {
	if v.end == 0 {
		return v.failed("seq.PopBack", types.ErrEmpty)
	}
	v.destructAtEnd(v.end - 1)
	return nil
}

// Erase removes element pos and returns the position now holding the element
// that followed it.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if err := buf.CheckIndex(pos, v.end); err != nil {
		return pos, v.failed("seq.Erase", rangeErr(err))
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes [first, last) and returns first. Trailing elements shift
// left by assignment; the vacated slots at the end are destroyed. Capacity is
// never changed.
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	if err := buf.CheckSpan(first, last, v.end); err != nil {
		return first, v.failed("seq.EraseRange", rangeErr(err))
	}
	if first == last {
		return first, nil
	}
	n := copy(v.block[first:], v.block[last:v.end])
	v.destructAtEnd(first + n)
	return first, nil
}

// Reserve grows capacity to exactly n when n exceeds Cap.
func (v *Vector[T]) Reserve(n int) error {
	const op = "seq.Reserve"
	if n < 0 || n > v.MaxSize() {
		return v.failed(op, types.Errorf(types.ErrKindLength, op,
			"%d exceeds max size %d", n, v.MaxSize()), "n", n)
	}
	if n <= v.Cap() {
		return nil
	}
	return v.failed(op, v.reallocate(op, n, v.end, 0, nil), "n", n)
}

// ShrinkToFit reallocates to exactly Len slots when there is spare. A failed
// reallocation is reported and returned; the Vector keeps its old block.
func (v *Vector[T]) ShrinkToFit() error {
	const op = "seq.ShrinkToFit"
	if v.Cap() == v.end {
		return nil
	}
	return v.failed(op, v.reallocate(op, v.end, v.end, 0, nil))
}

// Clear destroys every element and keeps the block.
func (v *Vector[T]) Clear() { v.destructAtEnd(0) }

// Release destroys every element and returns the block to the provider.
func (v *Vector[T]) Release() {
	v.Clear()
	if v.block != nil {
		v.prov().Deallocate(v.block)
		v.block = nil
	}
}

// Resize sets Len to n, destroying trailing elements or appending zero values.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith sets Len to n, destroying trailing elements or appending copies
// of x. Growth is all or nothing.
func (v *Vector[T]) ResizeWith(n int, x T) error {
	const op = "seq.Resize"
	if n < 0 || n > v.MaxSize() {
		return v.failed(op, types.Errorf(types.ErrKindLength, op,
			"%d exceeds max size %d", n, v.MaxSize()), "n", n)
	}
	if n <= v.end {
		v.destructAtEnd(n)
		return nil
	}
	return v.failed(op, v.insertAt(op, v.end, n-v.end, one(x)), "n", n)
}

// Clone returns an independent copy on the same provider with capacity
// exactly Len.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	w := New(v.prov())
	if err := w.rebuild(v.end, v.end, v.read); err != nil {
		return nil, v.failed("seq.Clone", err)
	}
	return w, nil
}

// Take moves the contents into a new Vector in O(1). v is left empty with no
// block.
func (v *Vector[T]) Take() *Vector[T] {
	w := &Vector[T]{p: v.prov(), block: v.block, end: v.end}
	v.block, v.end = nil, 0
	return w
}

func (v *Vector[T]) read(i int) (T, error) { return v.block[i], nil }

// destructAtEnd destroys [n, Len) in reverse order.
func (v *Vector[T]) destructAtEnd(n int) {
	alloc.DestroyRange(v.prov(), v.block, n, v.end)
	v.end = n
}

// constructAtEnd builds n elements from at into spare slots as one
// transaction. The caller guarantees the spare exists.
func (v *Vector[T]) constructAtEnd(n int, at func(int) (T, error)) error {
	t := tx.Begin(v.prov(), v.block, &v.end, n)
	defer t.Close()
	for i := 0; i < n; i++ {
		x, err := at(i)
		if err != nil {
			return types.Wrap(types.ErrKindConstruct, "seq.construct", err)
		}
		if err := t.Construct(x); err != nil {
			return err
		}
	}
	t.Commit()
	return nil
}

// failed prefixes err with op and routes it through the report sink.
func (v *Vector[T]) failed(op string, err error, args ...any) error {
	if err == nil {
		return nil
	}
	if te, ok := err.(*types.Error); !ok || te.Op != op {
		err = fmt.Errorf("%s: %w", op, err)
	}
	args = append(args, "len", v.end, "cap", v.Cap())
	return report.Failure(op, err, args...)
}

func rangeErr(err error) error {
	return &types.Error{Kind: types.ErrKindRange, Msg: "out of range", Err: err}
}

func one[T any](x T) func(int) (T, error) {
	return func(int) (T, error) { return x, nil }
}

func build[T any](ctor func(*T) error) func(int) (T, error) {
	return func(int) (T, error) {
		var x T
		err := ctor(&x)
		return x, err
	}
}
