package seq

import (
	"github.com/joshuapare/seqkit/pkg/types"
	"github.com/joshuapare/seqkit/seq/alloc"
	"github.com/joshuapare/seqkit/seq/tx"
)

// Assign replaces the contents with n copies of x.
func (v *Vector[T]) Assign(n int, x T) error {
	const op = "seq.Assign"
	if n < 0 || n > v.MaxSize() {
		return v.failed(op, types.Errorf(types.ErrKindLength, op,
			"%d exceeds max size %d", n, v.MaxSize()), "n", n)
	}
	return v.failed(op, v.assignAt(n, one(x)), "n", n)
}

// AssignFrom replaces the contents with the elements src yields. On failure
// the Vector is unchanged.
func (v *Vector[T]) AssignFrom(src Source[T]) error {
	const op = "seq.AssignFrom"
	if c, ok := src.(Counted[T]); ok {
		n := max(c.Len(), 0)
		if n > v.MaxSize() {
			return v.failed(op, types.Errorf(types.ErrKindLength, op,
				"%d exceeds max size %d", n, v.MaxSize()), "n", n)
		}
		return v.failed(op, v.assignAt(n, c.At), "n", n)
	}
	staged := New(v.prov())
	if _, err := staged.insertSinglePass(op, 0, src); err != nil {
		staged.Release()
		return v.failed(op, err)
	}
	v.adopt(staged.block, staged.end)
	staged.block, staged.end = nil, 0
	return nil
}

// assignAt replaces the contents with at(0..n-1), reusing the block when it
// is large enough. Values for the slots that already hold elements are read
// before anything is constructed, so a failure leaves the Vector unchanged.
func (v *Vector[T]) assignAt(n int, at func(int) (T, error)) error {
	if n > v.Cap() {
		return v.rebuild(n, n, at)
	}
	keep := min(n, v.end)
	scratch := make([]T, keep)
	for i := range scratch {
		x, err := at(i)
		if err != nil {
			return types.Wrap(types.ErrKindConstruct, "seq.assign", err)
		}
		scratch[i] = x
	}
	if n > v.end {
		if err := func() error {
			base := v.end
			t := tx.Begin(v.prov(), v.block, &v.end, n-base)
			defer t.Close()
			for i := base; i < n; i++ {
				x, err := at(i)
				if err != nil {
					return types.Wrap(types.ErrKindConstruct, "seq.assign", err)
				}
				if err := t.Construct(x); err != nil {
					return err
				}
			}
			t.Commit()
			return nil
		}(); err != nil {
			return err
		}
	} else {
		v.destructAtEnd(n)
	}
	copy(v.block, scratch)
	return nil
}

// MoveAssign replaces the contents of v with those of src and leaves src
// empty. When the providers are interchangeable, or v's provider propagates
// on move, the block itself is transferred in O(1). Otherwise the elements
// are copied into v's own storage and src is released.
func (v *Vector[T]) MoveAssign(src *Vector[T]) error {
	const op = "seq.MoveAssign"
	if v == src {
		return nil
	}
	propagate := v.prov().Traits().PropagateOnMove
	if propagate || alloc.Interchangeable(v.prov(), src.prov()) {
		v.Release()
		if propagate {
			v.p = src.prov()
		}
		v.block, v.end = src.block, src.end
		src.block, src.end = nil, 0
		return nil
	}
	if err := v.assignAt(src.end, src.read); err != nil {
		return v.failed(op, err)
	}
	src.Release()
	return nil
}

// CopyAssign replaces the contents of v with copies of src's elements. If v's
// provider propagates on copy, v adopts src's provider first, releasing its
// block when the two cannot share storage.
func (v *Vector[T]) CopyAssign(src *Vector[T]) error {
	const op = "seq.CopyAssign"
	if v == src {
		return nil
	}
	if v.prov().Traits().PropagateOnCopy {
		if !alloc.Interchangeable(v.prov(), src.prov()) {
			v.Release()
		}
		v.p = src.prov()
	}
	return v.failed(op, v.assignAt(src.end, src.read), "n", src.end)
}

// Swap exchanges contents with other in O(1). Providers are exchanged too
// when both propagate on swap; otherwise the two providers must be
// interchangeable or types.ErrProviderMismatch is returned. The outcome is
// the same whichever side Swap is called on.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if v.prov().Traits().PropagateOnSwap && other.prov().Traits().PropagateOnSwap {
		v.p, other.p = other.p, v.p
	} else if !alloc.Interchangeable(v.prov(), other.prov()) {
		return v.failed("seq.Swap", types.ErrProviderMismatch)
	}
	v.block, other.block = other.block, v.block
	v.end, other.end = other.end, v.end
	return nil
}

// Options configures Make.
type Options[T any] struct {
	Provider alloc.Provider[T] // Default: alloc.Heap
	Len      int               // Initial length
	Cap      int               // Initial capacity; raised to Len when smaller
	Fill     T                 // Value for the initial Len elements
}

// Make builds a Vector from opts. A nil opts returns an empty Vector on
// alloc.Heap.
func Make[T any](opts *Options[T]) (*Vector[T], error) {
	const op = "seq.Make"
	if opts == nil {
		return New[T](nil), nil
	}
	v := New(opts.Provider)
	c := max(opts.Len, opts.Cap)
	if opts.Len < 0 || opts.Cap < 0 || c > v.MaxSize() {
		return nil, v.failed(op, types.Errorf(types.ErrKindLength, op,
			"len %d / cap %d invalid for max size %d", opts.Len, opts.Cap, v.MaxSize()))
	}
	if err := v.rebuild(c, opts.Len, one(opts.Fill)); err != nil {
		return nil, v.failed(op, err)
	}
	return v, nil
}
