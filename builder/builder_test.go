package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/bifurcate"
	"github.com/katalvlaran/lvseq/builder"
	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/memory"
)

func less(a, b int) bool { return a < b }

func TestIota(t *testing.T) {
	xs, err := builder.Iota[int](5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, xs)

	empty, err := builder.Iota[uint8](0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = builder.Iota[int](-1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestRandomFamily(t *testing.T) {
	xs, err := builder.Random[int](200, builder.WithSeed(1), builder.WithRange(10, 20))
	require.NoError(t, err)
	require.Len(t, xs, 200)
	for _, x := range xs {
		assert.True(t, x >= 10 && x < 20, "%d out of range", x)
	}

	again, err := builder.Random[int](200, builder.WithSeed(1), builder.WithRange(10, 20))
	require.NoError(t, err)
	assert.Equal(t, xs, again, "same seed, same fixture")

	s, err := builder.Sorted[int](100, builder.WithSeed(2))
	require.NoError(t, err)
	f, l := iterator.Bounds(s)
	assert.True(t, iterator.IncreasingRange(f, l, less))

	r, err := builder.Reversed[int64](100, builder.WithSeed(2))
	require.NoError(t, err)
	for i := 1; i < len(r); i++ {
		assert.GreaterOrEqual(t, r[i-1], r[i])
	}
}

func TestRandomDistinct(t *testing.T) {
	xs, err := builder.Random[int](10, builder.WithSeed(3), builder.WithRange(0, 10), builder.WithDistinct())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, xs)

	_, err = builder.Random[int](11, builder.WithSeed(3), builder.WithRange(0, 10), builder.WithDistinct())
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestFewUnique(t *testing.T) {
	xs, err := builder.FewUnique[int](100, 3, builder.WithSeed(4))
	require.NoError(t, err)
	seen := map[int]bool{}
	for _, x := range xs {
		seen[x] = true
	}
	assert.LessOrEqual(t, len(seen), 3)

	_, err = builder.FewUnique[int](5, 0, builder.WithSeed(4))
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestStochasticNeedsRand(t *testing.T) {
	_, err := builder.Random[int](3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Sorted[int](3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.FewUnique[int](3, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomTree(3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestCompleteTree(t *testing.T) {
	x, err := builder.CompleteTree(3)
	require.NoError(t, err)
	assert.Equal(t, "(1 (2 (4) (5)) (3 (6) (7)))", x.String())
	assert.Equal(t, 7, x.Weight())
	assert.Equal(t, 3, x.Height())

	s, err := builder.CompleteSTree(3)
	require.NoError(t, err)
	assert.Equal(t, x.String(), s.String())

	empty, err := builder.CompleteTree(0)
	require.NoError(t, err)
	assert.True(t, empty.Empty())

	_, err = builder.CompleteTree(-1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestRandomTreeIsSearchTree(t *testing.T) {
	var c memory.Counter
	x, err := builder.RandomTree(50, builder.WithSeed(5),
		builder.WithTreeOptions(bifurcate.WithObserver(&c)))
	require.NoError(t, err)
	want, _ := builder.Iota[int](50)
	assert.Equal(t, want, x.Values(bifurcate.In))
	assert.Equal(t, 50, c.Live())

	s, err := builder.RandomSTree(50, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, x.String(), s.String())
}

func TestLeftSpine(t *testing.T) {
	x, err := builder.LeftSpine(4)
	require.NoError(t, err)
	assert.Equal(t, "(0 (1 (2 (3))))", x.String())
	assert.Equal(t, 4, x.Height())

	deep, err := builder.LeftSpineSTree(100000)
	require.NoError(t, err)
	assert.Equal(t, 100000, deep.Weight())
	deep.Erase()
	assert.True(t, deep.Empty())
}
