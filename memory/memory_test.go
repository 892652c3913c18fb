package memory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/memory"
)

func TestHeap(t *testing.T) {
	var h memory.Heap[int]
	s, err := h.Acquire(5)
	require.NoError(t, err)
	assert.Len(t, s, 5)
	h.Release(s)

	_, err = h.Acquire(-1)
	assert.True(t, errors.Is(err, memory.ErrAllocationFailed))
}

func TestLimitedBudget(t *testing.T) {
	a := memory.NewLimited[string](8)

	s1, err := a.Acquire(5)
	require.NoError(t, err)
	_, err = a.Acquire(4)
	require.ErrorIs(t, err, memory.ErrAllocationFailed)

	s2, err := a.Acquire(3)
	require.NoError(t, err)
	assert.Equal(t, 8, a.InUse())

	a.Release(s1)
	a.Release(s2)
	assert.Equal(t, 0, a.InUse())
	assert.Equal(t, 8, a.Peak())

	assert.Panics(t, func() { memory.NewLimited[int](-1) })
}

func TestObservedAllocator(t *testing.T) {
	var c memory.Counter
	a := memory.Observed[int](memory.NewLimited[int](4), &c)

	s, err := a.Acquire(3)
	require.NoError(t, err)
	_, err = a.Acquire(3)
	require.Error(t, err)
	assert.Equal(t, 3, c.Live(), "failed acquisitions are not reported")

	a.Release(s)
	assert.Equal(t, 0, c.Live())
	assert.Equal(t, 3, c.Total())
	assert.Equal(t, 3, c.Freed())

	c.Reset()
	assert.Equal(t, 0, c.Total())

	var n memory.Nop
	n.Acquired(1)
	n.Released(1)
}
