package fault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/seqkit/pkg/types"
	"github.com/joshuapare/seqkit/seq/alloc"
)

func TestProvider_FailConstructAt(t *testing.T) {
	f := New[int](nil)
	var a, b, c int
	f.FailConstructAt(2)

	require.NoError(t, f.Construct(&a, 1))
	require.ErrorIs(t, f.Construct(&b, 2), ErrInjected)
	require.NoError(t, f.Construct(&c, 3))
	assert.Equal(t, 0, b)
}

func TestProvider_FailMoveAt(t *testing.T) {
	f := New[int](nil)
	src, dst := 7, 0
	f.FailMoveAt(1)
	require.ErrorIs(t, f.MoveConstruct(&dst, &src), ErrInjected)
	assert.Equal(t, 7, src)
	require.NoError(t, f.MoveConstruct(&dst, &src))
	assert.Equal(t, 7, dst)
}

func TestProvider_FailAllocAt(t *testing.T) {
	c := alloc.NewCounting[int](nil)
	f := New[int](c)
	f.FailAllocAt(1)

	_, err := f.Allocate(4)
	require.ErrorIs(t, err, types.ErrOutOfMemory)
	assert.Equal(t, 0, c.Stats().Allocations)

	block, err := f.Allocate(4)
	require.NoError(t, err)
	assert.Len(t, block, 4)
}

func TestProvider_Disarm(t *testing.T) {
	f := New[int](nil)
	var x int
	f.FailConstructAt(1)
	f.FailAllocAt(1)
	f.Disarm()

	require.NoError(t, f.Construct(&x, 1))
	_, err := f.Allocate(1)
	require.NoError(t, err)
}

func TestProvider_TraitsAndEquality(t *testing.T) {
	f := New[int](nil)
	assert.True(t, f.Traits().MoveNoFail)
	f.MoveMayFail = true
	assert.False(t, f.Traits().MoveNoFail)

	assert.True(t, f.Equal(alloc.Heap[int]{}))
	assert.True(t, f.Equal(New[int](nil)))

	a := alloc.NewArena[int](nil)
	assert.False(t, New[int](a).Equal(New[int](alloc.NewArena[int](nil))))
	assert.True(t, New[int](a).Equal(a))
}
