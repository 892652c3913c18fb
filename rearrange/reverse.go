// SPDX-License-Identifier: MIT
// Package: lvseq/rearrange
//
// reverse.go - the reverse family and its dispatcher.

package rearrange

import (
	"github.com/katalvlaran/lvseq/buffer"
	"github.com/katalvlaran/lvseq/copying"
	"github.com/katalvlaran/lvseq/integer"
	"github.com/katalvlaran/lvseq/iterator"
)

// ReverseNIndexed reverses the counted range (f, n) by exchanging the
// elements at offsets i and n-1-i.
func ReverseNIndexed[T any, I iterator.MutableIndexed[I, T]](f I, n int) {
	i := 0
	n--
	for i < n {
		copying.ExchangeValues[T](f.Offset(i), f.Offset(n))
		i++
		n--
	}
}

// ReverseIndexed reverses [f, l).
func ReverseIndexed[T any, I iterator.MutableIndexed[I, T]](f, l I) {
	ReverseNIndexed[T](f, f.Distance(l))
}

// ReverseBidirectional reverses [f, l) by exchanging from both ends until
// the cursors meet.
func ReverseBidirectional[T any, I iterator.MutableBidirectional[I, T]](f, l I) {
	for {
		if f == l {
			return
		}
		l = l.Predecessor()
		if f == l {
			return
		}
		copying.ExchangeValues[T](f, l)
		f = f.Successor()
	}
}

// ReverseNBidirectional reverses [f, l) given its length n, performing
// exactly n/2 exchanges without comparing positions.
func ReverseNBidirectional[T any, I iterator.MutableBidirectional[I, T]](f, l I, n int) {
	copying.ReverseSwapRangesN[T](l, f, integer.HalfNonnegative(n))
}

// ReverseNWithBuffer reverses (fi, n) through a buffer of at least n
// elements starting at fb, and returns fi+n.
func ReverseNWithBuffer[T any, I iterator.MutableIterator[I, T], B iterator.MutableBidirectional[B, T]](fi I, n int, fb B) I {
	_, lb := copying.CopyN[T](fi, n, fb)
	return copying.ReverseCopy[T](fb, lb, fi)
}

// ReverseNForward reverses (f, n) using only forward traversal and returns
// f+n.
//
// Algorithm Outline:
//
//	n < 2: nothing to do
//	reverse the first h = n/2 elements, skip the middle one when n is odd,
//	reverse the last h elements, then swap the two reversed halves.
//
// Complexity: O(n log n) exchanges, recursion depth ⌈log2 n⌉.
func ReverseNForward[T any, I iterator.MutableIterator[I, T]](f I, n int) I {
	if n < 2 {
		return iterator.Advance(f, n)
	}
	h := integer.HalfNonnegative(n)
	nMod2 := n - integer.Twice(h)
	m := iterator.Advance(ReverseNForward[T](f, h), nMod2)
	l := ReverseNForward[T](m, h)
	copying.SwapRangesN[T](f, m, h)
	return l
}

// ReverseNAdaptive reverses (fi, ni) using the buffer (fb, nb) whenever the
// current subproblem fits in it and halving otherwise. Any nb >= 0 is
// correct; larger buffers save exchanges. It returns fi+ni.
func ReverseNAdaptive[T any, I iterator.MutableIterator[I, T], B iterator.MutableBidirectional[B, T]](fi I, ni int, fb B, nb int) I {
	if ni < 2 {
		return iterator.Advance(fi, ni)
	}
	if ni <= nb {
		return ReverseNWithBuffer[T](fi, ni, fb)
	}
	hi := integer.HalfNonnegative(ni)
	nMod2 := ni - integer.Twice(hi)
	mi := iterator.Advance(ReverseNAdaptive[T](fi, hi, fb, nb), nMod2)
	li := ReverseNAdaptive[T](mi, hi, fb, nb)
	copying.SwapRangesN[T](fi, mi, hi)
	return li
}

// ReverseNWithTemporaryBuffer reverses (f, n) with whatever temporary
// buffer of up to n elements can be acquired, and returns f+n.
func ReverseNWithTemporaryBuffer[T any, I iterator.MutableIterator[I, T]](f I, n int, opts ...buffer.Option[T]) I {
	b := buffer.New[T](n, opts...)
	defer b.Release()
	return ReverseNAdaptive[T](f, n, b.Begin(), b.Len())
}

// Reverse reverses [f, l) with the cheapest variant the dynamic capability
// of the positions allows. Options only affect forward-only positions,
// which go through a temporary buffer.
func Reverse[T any, I iterator.MutableIterator[I, T]](f, l I, opts ...buffer.Option[T]) {
	switch iterator.CategoryOf(f) {
	case iterator.CategoryRandomAccess, iterator.CategoryIndexed:
		ReverseNIndexed[T](iterator.Promote[T](f), iterator.Distance(f, l))
	case iterator.CategoryBidirectional:
		ReverseBidirectional[T](iterator.Promote[T](f), iterator.Promote[T](l))
	default:
		ReverseNWithTemporaryBuffer[T](f, iterator.Distance(f, l), opts...)
	}
}
