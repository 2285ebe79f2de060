package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounting_ForwardsAndCounts(t *testing.T) {
	c := NewCounting[int](nil)

	block, err := c.Allocate(4)
	require.NoError(t, err)
	require.NoError(t, c.Construct(&block[0], 1))
	require.NoError(t, c.Construct(&block[1], 2))
	require.NoError(t, c.MoveConstruct(&block[2], &block[1]))
	c.Destroy(&block[1])
	c.Destroy(&block[2])
	c.Destroy(&block[0])
	c.Deallocate(block)

	s := c.Stats()
	assert.Equal(t, 1, s.Allocations)
	assert.Equal(t, 1, s.Deallocations)
	assert.Equal(t, 4, s.SlotsAlloc)
	assert.Equal(t, 2, s.Constructs)
	assert.Equal(t, 1, s.Moves)
	assert.Equal(t, 3, s.Destroys)
	assert.Equal(t, 0, s.Live())

	c.Reset()
	assert.Equal(t, Stats{}, c.Stats())
}

func TestCounting_CountsFailures(t *testing.T) {
	c := NewCounting[int](NewArena[int](&ArenaOptions{Slots: 2}))
	_, err := c.Allocate(3)
	require.Error(t, err)
	assert.Equal(t, 1, c.Stats().Failures)
	assert.Equal(t, 0, c.Stats().Allocations)
}

func TestCounting_EqualityFollowsInner(t *testing.T) {
	arena := NewArena[int](nil)
	a := NewCounting[int](arena)
	b := NewCounting[int](arena)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(arena))
	assert.False(t, a.Equal(NewArena[int](nil)))
	assert.Same(t, arena, a.Inner())
}
