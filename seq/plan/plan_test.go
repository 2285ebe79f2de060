package plan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/seqkit/pkg/types"
)

func TestRecommend(t *testing.T) {
	cases := []struct {
		name                  string
		current, req, maxSize int
		want                  int
	}{
		{"empty grows to request", 0, 1, 100, 1},
		{"doubles", 4, 5, 100, 8},
		{"request beats doubling", 4, 20, 100, 20},
		{"odd capacity doubles", 5, 6, 100, 10},
		{"half of max clamps to max", 50, 51, 100, 100},
		{"above half clamps to max", 70, 71, 100, 100},
		{"request equals max", 10, 100, 100, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Recommend(c.current, c.req, c.maxSize)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestRecommend_LengthError(t *testing.T) {
	_, err := Recommend(10, 101, 100)
	require.ErrorIs(t, err, types.ErrLength)

	_, err = Recommend(0, -1, 100)
	require.ErrorIs(t, err, types.ErrLength)
}

func TestRecommend_NoOverflowNearMaxInt(t *testing.T) {
	got, err := Recommend(math.MaxInt/2-1, math.MaxInt/2, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 2*(math.MaxInt/2-1), got)

	got, err = Recommend(math.MaxInt/2, math.MaxInt/2+1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)
}

func TestRecommend_DoublingSequenceFromOne(t *testing.T) {
	capacity := 0
	var seen []int
	for size := 1; size <= 1000; size++ {
		if size > capacity {
			next, err := Recommend(capacity, size, 1<<40)
			require.NoError(t, err)
			require.GreaterOrEqual(t, next, capacity)
			capacity = next
			seen = append(seen, capacity)
		}
	}
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}, seen)
}

func TestMaxSize(t *testing.T) {
	assert.Equal(t, 10, MaxSize(10))
	assert.Equal(t, math.MaxInt, MaxSize(math.MaxInt))
	assert.Equal(t, 0, MaxSize(-5))
}

func TestNeed(t *testing.T) {
	n, err := Need(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = Need(math.MaxInt, 1)
	require.ErrorIs(t, err, types.ErrLength)

	_, err = Need(1, -1)
	require.ErrorIs(t, err, types.ErrLength)
}

func TestGrowAndBias(t *testing.T) {
	assert.Equal(t, 1, Grow(0))
	assert.Equal(t, 8, Grow(4))
	assert.Equal(t, math.MaxInt, Grow(math.MaxInt/2+1))

	assert.Equal(t, 1, FrontBias(1))
	assert.Equal(t, 2, FrontBias(8))
	assert.Equal(t, 0, BackBias(1))
	assert.Equal(t, 2, BackBias(8))
}
