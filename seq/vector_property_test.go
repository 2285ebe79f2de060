//go:build property

package seq

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/joshuapare/seqkit/internal/testutil"
	"github.com/joshuapare/seqkit/seq/alloc"
)

// TestVectorProperties checks the growth and rollback guarantees against
// random inputs.
func TestVectorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Property: relocations from growth over n appends stay below 2n
	properties.Property("append relocations are linear", prop.ForAll(
		func(n int) bool {
			c := alloc.NewCounting[int](nil)
			v := New[int](c)
			for i := range n {
				if v.Append(i) != nil {
					return false
				}
			}
			return c.Stats().Moves <= 2*n && v.Len() == n
		},
		gen.IntRange(0, 5000),
	))

	// Property: Reserve keeps values and reaches the requested capacity
	properties.Property("reserve preserves contents", prop.ForAll(
		func(xs []int, k int) bool {
			v, err := FromSlice[int](nil, xs)
			if err != nil {
				return false
			}
			if v.Reserve(k) != nil {
				return false
			}
			return slices.Equal(v.Data(), xs) && v.Cap() >= k
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 256),
	))

	// Property: erase then insert of the same value restores the sequence in place
	properties.Property("erase/insert round trip", prop.ForAll(
		func(xs []int, p int) bool {
			if len(xs) == 0 {
				return true
			}
			p %= len(xs)
			v, _ := FromSlice[int](nil, xs)
			capBefore := v.Cap()
			old := v.Index(p)
			if _, err := v.Erase(p); err != nil {
				return false
			}
			if _, err := v.Insert(p, old); err != nil {
				return false
			}
			return slices.Equal(v.Data(), xs) && v.Cap() == capBefore
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 1000),
	))

	// Property: a construction failure during InsertN changes nothing
	properties.Property("failed InsertN is atomic", prop.ForAll(
		func(xs []int, pos, n, failAt, spare int) bool {
			pos %= len(xs) + 1
			f, c := testutil.Stack[int](nil)
			f.MoveMayFail = true
			v, err := FromSlice[int](f, xs)
			if err != nil || v.Reserve(len(xs)+spare) != nil {
				return false
			}
			capBefore := v.Cap()
			f.FailConstructAt(failAt)
			_, err = v.InsertN(pos, n, -1)
			if err == nil {
				// the fault landed past the last construction
				return v.Len() == len(xs)+n
			}
			return slices.Equal(v.Data(), xs) &&
				v.Cap() == capBefore &&
				c.Stats().Live() == len(xs)
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 64),
		gen.IntRange(1, 16),
		gen.IntRange(1, 40),
		gen.IntRange(0, 20),
	))

	// Property: ShrinkToFit never grows and ends tight
	properties.Property("shrink to fit", prop.ForAll(
		func(xs []int, extra int) bool {
			v, _ := FromSlice[int](nil, xs)
			_ = v.Reserve(len(xs) + extra)
			before := v.Cap()
			if v.ShrinkToFit() != nil {
				return false
			}
			return v.Cap() <= before && v.Cap() == v.Len() && slices.Equal(v.Data(), xs)
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 64),
	))

	// Property: single-pass insertion matches the counted path
	properties.Property("single-pass equals counted", prop.ForAll(
		func(xs, ys []int, pos int) bool {
			pos %= len(xs) + 1
			a, _ := FromSlice[int](nil, xs)
			b, _ := FromSlice[int](nil, xs)
			if _, err := a.InsertFrom(pos, Slice(ys)); err != nil {
				return false
			}
			if _, err := b.InsertFrom(pos, Seq(slices.Values(ys))); err != nil {
				return false
			}
			return slices.Equal(a.Data(), b.Data())
		},
		gen.SliceOf(gen.Int()),
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
