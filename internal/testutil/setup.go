// Package testutil provides assertion helpers and provider stacks for seqkit
// tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/seqkit/internal/fault"
	"github.com/joshuapare/seqkit/seq/alloc"
)

// Ints returns [1, 2, ..., n].
func Ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Stack builds a fault provider over a Counting provider over inner, so a
// test can inject faults and still audit constructions and destructions.
// A nil inner uses alloc.Heap.
func Stack[T any](inner alloc.Provider[T]) (*fault.Provider[T], *alloc.Counting[T]) {
	c := alloc.NewCounting[T](inner)
	return fault.New[T](c), c
}

// RequireLive asserts that exactly want elements are constructed and not yet
// destroyed, which catches both leaks and double destruction.
func RequireLive[T any](t testing.TB, c *alloc.Counting[T], want int) {
	t.Helper()
	s := c.Stats()
	require.Equal(t, want, s.Live(),
		"live elements (constructs=%d moves=%d destroys=%d)", s.Constructs, s.Moves, s.Destroys)
}

// RequireNoBlocks asserts every allocated block has been released.
func RequireNoBlocks[T any](t testing.TB, c *alloc.Counting[T]) {
	t.Helper()
	s := c.Stats()
	require.Equal(t, s.Allocations, s.Deallocations, "outstanding blocks")
}
