// SPDX-License-Identifier: MIT
// Package: lvseq/copying
//
// swap.go - exchanging elements between disjoint ranges.

package copying

import "github.com/katalvlaran/lvseq/iterator"

// ExchangeValues swaps the elements at x and y.
func ExchangeValues[T any, I0 iterator.MutableIterator[I0, T], I1 iterator.MutableIterator[I1, T]](x I0, y I1) {
	t := x.Source()
	x.Sink(y.Source())
	y.Sink(t)
}

// SwapRanges exchanges [f0, l0) with the equally long range at f1 and
// returns the end of the second range.
func SwapRanges[T any, I0 iterator.MutableIterator[I0, T], I1 iterator.MutableIterator[I1, T]](f0, l0 I0, f1 I1) I1 {
	for f0 != l0 {
		ExchangeValues[T](f0, f1)
		f0, f1 = f0.Successor(), f1.Successor()
	}
	return f1
}

// SwapRangesBounded exchanges elements until either range is exhausted.
func SwapRangesBounded[T any, I0 iterator.MutableIterator[I0, T], I1 iterator.MutableIterator[I1, T]](f0, l0 I0, f1, l1 I1) (I0, I1) {
	for f0 != l0 && f1 != l1 {
		ExchangeValues[T](f0, f1)
		f0, f1 = f0.Successor(), f1.Successor()
	}
	return f0, f1
}

// SwapRangesN exchanges n elements starting at f0 and f1.
func SwapRangesN[T any, I0 iterator.MutableIterator[I0, T], I1 iterator.MutableIterator[I1, T]](f0 I0, f1 I1, n int) (I0, I1) {
	for ; n > 0; n-- {
		ExchangeValues[T](f0, f1)
		f0, f1 = f0.Successor(), f1.Successor()
	}
	return f0, f1
}

// ReverseSwapRanges exchanges [f0, l0), read backward, with the range at f1
// read forward. It returns the end of the second range.
func ReverseSwapRanges[T any, I0 iterator.MutableBidirectional[I0, T], I1 iterator.MutableIterator[I1, T]](f0, l0 I0, f1 I1) I1 {
	for f0 != l0 {
		l0 = l0.Predecessor()
		ExchangeValues[T](l0, f1)
		f1 = f1.Successor()
	}
	return f1
}

// ReverseSwapRangesBounded is ReverseSwapRanges stopping when either range
// is exhausted. It returns the remaining end of the first range and the
// reached position of the second.
func ReverseSwapRangesBounded[T any, I0 iterator.MutableBidirectional[I0, T], I1 iterator.MutableIterator[I1, T]](f0, l0 I0, f1, l1 I1) (I0, I1) {
	for f0 != l0 && f1 != l1 {
		l0 = l0.Predecessor()
		ExchangeValues[T](l0, f1)
		f1 = f1.Successor()
	}
	return l0, f1
}

// ReverseSwapRangesN is ReverseSwapRanges over n elements.
func ReverseSwapRangesN[T any, I0 iterator.MutableBidirectional[I0, T], I1 iterator.MutableIterator[I1, T]](l0 I0, f1 I1, n int) (I0, I1) {
	for ; n > 0; n-- {
		l0 = l0.Predecessor()
		ExchangeValues[T](l0, f1)
		f1 = f1.Successor()
	}
	return l0, f1
}
