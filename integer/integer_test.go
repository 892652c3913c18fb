package integer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvseq/integer"
)

func TestParityAndHalving(t *testing.T) {
	assert.True(t, integer.Odd(7))
	assert.False(t, integer.Odd(int8(-4)))
	assert.True(t, integer.Even(uint(10)))
	assert.Equal(t, 3, integer.HalfNonnegative(7))
	assert.Equal(t, int64(14), integer.Twice(int64(7)))
	assert.Equal(t, 2, integer.BinaryScaleDownNonnegative(17, 3))
	assert.Equal(t, 40, integer.BinaryScaleUpNonnegative(5, 3))
	assert.Equal(t, 4, integer.Successor(3))
	assert.Equal(t, 2, integer.Predecessor(3))
	assert.True(t, integer.Zero(0))
	assert.True(t, integer.One(uint16(1)))
	assert.True(t, integer.Positive(1))
	assert.True(t, integer.Negative(-1))
}

func TestGcd(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 0, 0},
		{6, 0, 6},
		{0, 9, 9},
		{12, 18, 6},
		{2, 4, 2},
		{17, 5, 1},
		{-12, 18, 6},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, integer.Gcd(c.a, c.b), "gcd(%d,%d)", c.a, c.b)
	}
}

func TestCountDown(t *testing.T) {
	n := 3
	steps := 0
	for integer.CountDown(&n) {
		steps++
	}
	assert.Equal(t, 3, steps)
	assert.Equal(t, 0, n)

	var u uint
	assert.False(t, integer.CountDown(&u))
	assert.Equal(t, uint(0), u)
}
