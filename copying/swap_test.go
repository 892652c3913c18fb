package copying_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvseq/copying"
	"github.com/katalvlaran/lvseq/iterator"
)

func TestSwapRanges(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6}
	f, l := iterator.Bounds(xs)
	m := f.Offset(3)

	end := copying.SwapRanges[int](f, m, m)
	assert.Equal(t, l, end)
	assert.Equal(t, []int{4, 5, 6, 1, 2, 3}, xs)

	e0, e1 := copying.SwapRangesBounded[int](f, f.Offset(2), m, l)
	assert.Equal(t, 2, e0.Index())
	assert.Equal(t, 5, e1.Index())
	assert.Equal(t, []int{1, 2, 6, 4, 5, 3}, xs)

	n0, n1 := copying.SwapRangesN[int](f, l.Predecessor(), 1)
	assert.Equal(t, 1, n0.Index())
	assert.Equal(t, 6, n1.Index())
	assert.Equal(t, []int{3, 2, 6, 4, 5, 1}, xs)
}

func TestReverseSwapRanges(t *testing.T) {
	xs := []int{1, 2, 3, 7, 8, 9}
	f, l := iterator.Bounds(xs)
	m := f.Offset(3)

	end := copying.ReverseSwapRanges[int](f, m, m)
	assert.Equal(t, l, end)
	assert.Equal(t, []int{9, 8, 7, 3, 2, 1}, xs)

	ys := []int{1, 2, 3, 4, 5}
	yf, yl := iterator.Bounds(ys)
	ym := yf.Offset(3)
	rem, reached := copying.ReverseSwapRangesBounded[int](yf, ym, ym, yl)
	assert.Equal(t, 1, rem.Index())
	assert.Equal(t, yl, reached)
	assert.Equal(t, []int{1, 5, 4, 3, 2}, ys)

	zs := []int{1, 2, 3, 4}
	zf, _ := iterator.Bounds(zs)
	l0, f1 := copying.ReverseSwapRangesN[int](zf.Offset(2), zf.Offset(2), 2)
	assert.Equal(t, 0, l0.Index())
	assert.Equal(t, 4, f1.Index())
	assert.Equal(t, []int{4, 3, 2, 1}, zs)

	a := []int{1}
	b := []int{2}
	af, _ := iterator.Bounds(a)
	bf, _ := iterator.ForwardBounds(b)
	copying.ExchangeValues[int](af, bf)
	assert.Equal(t, []int{2}, a)
	assert.Equal(t, []int{1}, b)
}
