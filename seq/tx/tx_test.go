package tx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/seqkit/internal/fault"
	"github.com/joshuapare/seqkit/internal/testutil"
	"github.com/joshuapare/seqkit/pkg/types"
	"github.com/joshuapare/seqkit/seq/alloc"
)

func TestTx_CommitPublishesCursor(t *testing.T) {
	c := alloc.NewCounting[int](nil)
	block := make([]int, 8)
	end := 2

	tr := Begin[int](c, block, &end, 3)
	defer tr.Close()
	for i := 0; tr.Remaining() > 0; i++ {
		require.NoError(t, tr.Construct(10+i))
	}
	require.Equal(t, 2, end, "owner cursor must not move before Commit")
	require.Equal(t, 5, tr.Pos())
	tr.Commit()
	tr.Close()

	assert.Equal(t, 5, end)
	assert.Equal(t, []int{10, 11, 12}, block[2:5])
	assert.Equal(t, 0, c.Stats().Destroys)
}

func TestTx_CloseRollsBackInReverse(t *testing.T) {
	f, c := testutil.Stack[int](nil)
	block := make([]int, 6)
	end := 1

	f.FailConstructAt(4)
	err := func() error {
		tr := Begin[int](f, block, &end, 5)
		defer tr.Close()
		for i := 0; tr.Remaining() > 0; i++ {
			if err := tr.Construct(i + 1); err != nil {
				return err
			}
		}
		tr.Commit()
		return nil
	}()

	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrInjected)
	assert.ErrorIs(t, err, types.ErrConstruct)
	assert.Equal(t, 1, end)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, block, "rolled back slots are zeroed")
	assert.Equal(t, 3, c.Stats().Destroys)
	testutil.RequireLive(t, c, 0)
}

func TestTx_Backward(t *testing.T) {
	block := make([]int, 5)
	begin := 4
	head := []int{1, 2, 3}

	tr := BeginBackward[int](alloc.Heap[int]{}, block, &begin, len(head))
	defer tr.Close()
	for i := len(head) - 1; i >= 0; i-- {
		require.NoError(t, tr.Construct(head[i]))
	}
	require.Equal(t, 0, tr.Remaining())
	tr.Commit()

	assert.Equal(t, 1, begin)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, block)
}

func TestTx_BackwardRollback(t *testing.T) {
	f, c := testutil.Stack[int](nil)
	block := make([]int, 4)
	begin := 4

	f.FailConstructAt(3)
	tr := BeginBackward[int](f, block, &begin, 4)
	require.NoError(t, tr.Construct(9))
	require.NoError(t, tr.Construct(8))
	require.Error(t, tr.Construct(7))
	tr.Close()

	assert.Equal(t, 4, begin)
	assert.Equal(t, []int{0, 0, 0, 0}, block)
	testutil.RequireLive(t, c, 0)
}

func TestTx_PanicUnwindsThroughClose(t *testing.T) {
	c := alloc.NewCounting[int](nil)
	block := make([]int, 4)
	end := 0

	require.Panics(t, func() {
		tr := Begin[int](c, block, &end, 4)
		defer tr.Close()
		require.NoError(t, tr.Construct(1))
		require.NoError(t, tr.Construct(2))
		panic("ctor blew up")
	})

	assert.Equal(t, 0, end)
	testutil.RequireLive(t, c, 0)
}

func TestTx_FullAndClosed(t *testing.T) {
	block := make([]int, 2)
	end := 0
	tr := Begin[int](alloc.Heap[int]{}, block, &end, 1)
	require.NoError(t, tr.Construct(1))

	err := tr.Construct(2)
	require.Error(t, err)
	k, ok := types.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrKindState, k)

	tr.Commit()
	assert.Error(t, tr.Construct(3), "construct after commit")
	assert.Equal(t, 1, end)
}

func TestTx_RangePanics(t *testing.T) {
	block := make([]int, 2)
	end := 1
	assert.Panics(t, func() { Begin[int](alloc.Heap[int]{}, block, &end, 2) })
	assert.Panics(t, func() { BeginBackward[int](alloc.Heap[int]{}, block, &end, 2) })
}

func TestTx_ConstructWith(t *testing.T) {
	block := make([]string, 2)
	end := 0
	tr := Begin[string](alloc.Heap[string]{}, block, &end, 2)
	defer tr.Close()

	require.NoError(t, tr.ConstructWith(func(s *string) error { *s = "built"; return nil }))
	boom := errors.New("boom")
	err := tr.ConstructWith(func(s *string) error { *s = "half"; return boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, tr.Built(), "failed ctor does not advance")
	assert.Equal(t, "", block[1])

	tr.Commit()
	assert.Equal(t, []string{"built", ""}, block)
}

func TestTx_RelocateMovesOrCopies(t *testing.T) {
	src := []int{7, 8}

	t.Run("move", func(t *testing.T) {
		block := make([]int, 2)
		end := 0
		in := append([]int(nil), src...)
		tr := Begin[int](alloc.Heap[int]{}, block, &end, 2)
		require.NoError(t, tr.Relocate(&in[0]))
		require.NoError(t, tr.Relocate(&in[1]))
		tr.Commit()
		assert.Equal(t, src, block)
		assert.Equal(t, []int{0, 0}, in, "heap moves leave zeroed sources")
	})

	t.Run("copy when moves may fail", func(t *testing.T) {
		f := fault.New[int](nil)
		f.MoveMayFail = true
		block := make([]int, 2)
		end := 0
		in := append([]int(nil), src...)
		tr := Begin[int](f, block, &end, 2)
		require.NoError(t, tr.Relocate(&in[0]))
		require.NoError(t, tr.Relocate(&in[1]))
		tr.Commit()
		assert.Equal(t, src, block)
		assert.Equal(t, src, in, "copies leave sources intact")
	})
}

func TestGuard(t *testing.T) {
	ran := 0
	g := NewGuard(func() { ran++ })
	g.Close()
	g.Close()
	assert.Equal(t, 1, ran)

	g = NewGuard(func() { ran++ })
	g.Complete()
	assert.True(t, g.Completed())
	g.Close()
	assert.Equal(t, 1, ran)

	NewGuard(nil).Close()
}
