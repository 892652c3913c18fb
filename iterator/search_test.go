package iterator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvseq/iterator"
)

func isEven(x int) bool { return x%2 == 0 }

func less(a, b int) bool { return a < b }

func TestFindFamily(t *testing.T) {
	xs := []int{1, 3, 4, 5, 6}
	f, l := iterator.Bounds(xs)

	assert.Equal(t, 2, iterator.FindIf(f, l, isEven).Index())
	assert.Equal(t, 0, iterator.FindIfNot(f, l, isEven).Index())
	assert.Equal(t, 4, iterator.Find(f, l, 6).Index())
	assert.Equal(t, l, iterator.Find(f, l, 42))
	assert.Equal(t, 2, iterator.FindIfUnguarded(f, isEven).Index())
	assert.Equal(t, 3, iterator.FindIfNotUnguarded(f.Offset(2), isEven).Index())

	p, rest := iterator.FindN(f, 5, 5)
	assert.Equal(t, 3, p.Index())
	assert.Equal(t, 2, rest)

	assert.Equal(t, 5, iterator.FindBackwardIf(f, l, isEven).Index())
	assert.Equal(t, 4, iterator.FindBackwardIfNot(f, l, isEven).Index())
	assert.Equal(t, 4, iterator.FindBackwardIfUnguarded(l, isEven).Index())
	assert.Equal(t, 3, iterator.FindBackwardIfNotUnguarded(l, isEven).Index())
	assert.Equal(t, f, iterator.FindBackwardIf(f, f.Offset(2), isEven))
}

func TestQuantifiersAndCounts(t *testing.T) {
	xs := []int{2, 4, 5}
	f, l := iterator.Bounds(xs)

	assert.False(t, iterator.All(f, l, isEven))
	assert.True(t, iterator.All(f, f.Offset(2), isEven))
	assert.False(t, iterator.None(f, l, isEven))
	assert.True(t, iterator.Some(f, l, isEven))
	assert.True(t, iterator.NotAll(f, l, isEven))
	assert.Equal(t, 2, iterator.CountIf(f, l, isEven))
	assert.Equal(t, 1, iterator.CountIfNot(f, l, isEven))
	assert.Equal(t, 11, iterator.Reduce(f, l, func(a, b int) int { return a + b }, 0))
	assert.Equal(t, -1, iterator.Reduce(f, f, func(a, b int) int { return a + b }, -1))

	var seen []int
	iterator.ForEach(f, l, func(x int) { seen = append(seen, x) })
	assert.Equal(t, xs, seen)
	end := iterator.ForEachN(f, 2, func(int) {})
	assert.Equal(t, 2, end.Index())
}

func TestOrderingPredicates(t *testing.T) {
	inc := []int{1, 2, 2, 3}
	f, l := iterator.Bounds(inc)
	assert.True(t, iterator.IncreasingRange(f, l, less))
	assert.False(t, iterator.StrictlyIncreasingRange(f, l, less))
	assert.Equal(t, 2, iterator.FindAdjacentMismatch(f, l, less).Index())

	part := []int{1, 3, 2, 4}
	pf, pl := iterator.Bounds(part)
	assert.True(t, iterator.Partitioned(pf, pl, isEven))
	assert.Equal(t, 2, iterator.PartitionPoint(pf, pl, isEven).Index())

	notPart := []int{2, 1}
	nf, nl := iterator.Bounds(notPart)
	assert.False(t, iterator.Partitioned(nf, nl, isEven))
}

func TestBoundsOnForwardPositions(t *testing.T) {
	xs := []int{1, 2, 2, 2, 5, 7}
	f, _ := iterator.ForwardBounds(xs)

	assert.Equal(t, 1, iterator.LowerBoundN(f, len(xs), 2, less).Index())
	assert.Equal(t, 4, iterator.UpperBoundN(f, len(xs), 2, less).Index())
	assert.Equal(t, 5, iterator.LowerBoundN(f, len(xs), 6, less).Index())
	assert.Equal(t, 0, iterator.LowerBoundN(f, len(xs), 0, less).Index())

	lo, hi := iterator.EqualRange(f, len(xs), 2, less)
	assert.Equal(t, 1, lo.Index())
	assert.Equal(t, 4, hi.Index())
}

func TestMismatchAndLexicographical(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 4, 0}
	af, al := iterator.Bounds(a)
	bf, bl := iterator.ForwardBounds(b)
	eq := func(x, y int) bool { return x == y }

	m0, m1 := iterator.FindMismatch(af, al, bf, bl, eq)
	assert.Equal(t, 2, m0.Index())
	assert.Equal(t, 2, m1.Index())

	assert.False(t, iterator.LexicographicalEqual(af, al, bf, bl, eq))
	assert.True(t, iterator.LexicographicalEqual(af, al, af, al, eq))
	assert.True(t, iterator.LexicographicalCompare(af, al, bf, bl, less))
	assert.False(t, iterator.LexicographicalCompare(bf, bl, af, al, less))
	assert.True(t, iterator.LexicographicalCompare(af, af.Offset(2), af, al, less), "proper prefix precedes")
	assert.False(t, iterator.LexicographicalCompare(af, al, af, al, less))
}
