package seq

import (
	"slices"

	"github.com/joshuapare/seqkit/pkg/types"
	"github.com/joshuapare/seqkit/seq/alloc"
	"github.com/joshuapare/seqkit/seq/plan"
	"github.com/joshuapare/seqkit/seq/report"
	"github.com/joshuapare/seqkit/seq/splitbuf"
	"github.com/joshuapare/seqkit/seq/tx"
)

// insertAt inserts at(0) .. at(n-1) before pos. Every call to at happens
// before any live element is moved, so at may read from the Vector itself.
func (v *Vector[T]) insertAt(op string, pos, n int, at func(int) (T, error)) error {
	if n <= 0 {
		return nil
	}
	if n <= v.Cap()-v.end {
		return v.insertInPlace(pos, n, at)
	}
	need, err := plan.Need(v.end, n)
	if err != nil {
		return err
	}
	c, err := plan.Recommend(v.Cap(), need, v.MaxSize())
	if err != nil {
		return err
	}
	return v.reallocate(op, c, pos, n, at)
}

// insertInPlace inserts n elements before pos using spare capacity.
//
// With tail = Len-pos and m = min(n, tail):
//  1. at(0..m-1) is read into scratch
//  2. one transaction constructs at(m..n-1) past the end, then relocates the
//     last m tail elements after them
//  3. the rest of the tail shifts right by assignment
//  4. scratch is assigned over [pos, pos+m)
//
// Steps 3 and 4 cannot fail, so a failure leaves the Vector unchanged.
func (v *Vector[T]) insertInPlace(pos, n int, at func(int) (T, error)) error {
	oldEnd := v.end
	m := min(n, oldEnd-pos)

	var scratch []T
	if m > 0 {
		scratch = make([]T, m)
		for i := range scratch {
			x, err := at(i)
			if err != nil {
				return types.Wrap(types.ErrKindConstruct, "seq.insert", err)
			}
			scratch[i] = x
		}
	}

	if err := func() error {
		t := tx.Begin(v.prov(), v.block, &v.end, n)
		defer t.Close()
		for i := m; i < n; i++ {
			x, err := at(i)
			if err != nil {
				return types.Wrap(types.ErrKindConstruct, "seq.insert", err)
			}
			if err := t.Construct(x); err != nil {
				return err
			}
		}
		for i := oldEnd - m; i < oldEnd; i++ {
			if err := t.Relocate(&v.block[i]); err != nil {
				return err
			}
		}
		t.Commit()
		return nil
	}(); err != nil {
		return err
	}

	copy(v.block[pos+m:oldEnd], v.block[pos:oldEnd-m])
	copy(v.block[pos:], scratch)
	return nil
}

// reallocate moves the Vector into a new block of capacity c, inserting
// at(0..n-1) before pos on the way. The new elements are built first, then
// the head relocates into the front spare and the tail onto the back. The
// old block is released only after everything succeeded.
func (v *Vector[T]) reallocate(op string, c, pos, n int, at func(int) (T, error)) error {
	b, err := splitbuf.New(v.prov(), c, pos)
	if err != nil {
		return err
	}
	defer b.Release()
	if err := b.ConstructAtEndFrom(n, at); err != nil {
		return err
	}
	oldCap := v.Cap()
	if err := v.swapOut(b, pos); err != nil {
		return err
	}
	report.Grow(op, oldCap, v.Cap(), v.end)
	return nil
}

// swapOut relocates [0, pos) into b's front spare (last element first) and
// [pos, Len) onto b's back, then adopts b's block and releases the old one.
func (v *Vector[T]) swapOut(b *splitbuf.Buffer[T], pos int) error {
	if err := b.RelocateFront(v.block[:pos]); err != nil {
		return err
	}
	if err := b.RelocateBack(v.block[pos:v.end]); err != nil {
		return err
	}
	block, begin, end := b.Detach()
	if begin != 0 {
		panic("seq: front spare left after migration")
	}
	v.adopt(block, end)
	return nil
}

// rebuild replaces the contents with at(0..n-1) in a new block of capacity
// c. The old elements are destroyed only after every construction succeeded.
func (v *Vector[T]) rebuild(c, n int, at func(int) (T, error)) error {
	b, err := splitbuf.New(v.prov(), c, 0)
	if err != nil {
		return err
	}
	defer b.Release()
	if err := b.ConstructAtEndFrom(n, at); err != nil {
		return err
	}
	block, _, end := b.Detach()
	v.adopt(block, end)
	return nil
}

// adopt destroys the current elements, releases the current block and takes
// ownership of block with live range [0, end).
func (v *Vector[T]) adopt(block []T, end int) {
	old := v.block
	alloc.DestroyRange(v.prov(), old, 0, v.end)
	if old != nil {
		v.p.Deallocate(old)
	}
	v.block, v.end = block, end
}

// insertSinglePass inserts everything src yields before pos when the count is
// not known up front. Elements fill the spare slots first, the rest is staged
// in a growth buffer and appended in one step, and the appended run is then
// rotated into place. On failure every element added by this call is
// destroyed; capacity may have grown.
func (v *Vector[T]) insertSinglePass(op string, pos int, src Source[T]) (int, error) {
	if s, ok := src.(interface{ Stop() }); ok {
		defer s.Stop()
	}
	oldLast := v.end

	exhausted := false
	if err := func() error {
		t := tx.Begin(v.prov(), v.block, &v.end, v.Cap()-v.end)
		defer t.Close()
		for t.Remaining() > 0 {
			x, ok, err := src.Next()
			if err != nil {
				return types.Wrap(types.ErrKindConstruct, op, err)
			}
			if !ok {
				exhausted = true
				break
			}
			if err := t.Construct(x); err != nil {
				return err
			}
		}
		t.Commit()
		return nil
	}(); err != nil {
		return pos, err
	}

	g := tx.NewGuard(func() { v.destructAtEnd(oldLast) })
	defer g.Close()

	if !exhausted {
		staged, err := splitbuf.New[T](v.prov(), 0, 0)
		if err != nil {
			return pos, err
		}
		defer staged.Release()
		for {
			x, ok, err := src.Next()
			if err != nil {
				return pos, types.Wrap(types.ErrKindConstruct, op, err)
			}
			if !ok {
				break
			}
			if err := staged.PushBack(x); err != nil {
				return pos, err
			}
		}
		rest := staged.Data()
		if err := v.insertAt(op, v.end, len(rest), Slice(rest).At); err != nil {
			return pos, err
		}
	}

	g.Complete()
	rotate(v.block[pos:v.end], oldLast-pos)
	return pos, nil
}

// rotate moves s[k:] to the front of s, keeping both runs in order.
func rotate[T any](s []T, k int) {
	if k <= 0 || k >= len(s) {
		return
	}
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}
