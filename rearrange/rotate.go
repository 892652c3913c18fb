// SPDX-License-Identifier: MIT
// Package: lvseq/rearrange
//
// rotate.go - the rotate family and its dispatcher.

package rearrange

import (
	"github.com/katalvlaran/lvseq/buffer"
	"github.com/katalvlaran/lvseq/copying"
	"github.com/katalvlaran/lvseq/iterator"
)

// RotateIndexedNontrivial rotates [f, l) at m with the cycle algorithm using
// index arithmetic. Requires f != m && m != l.
func RotateIndexedNontrivial[T any, I iterator.MutableIndexed[I, T]](f, m, l I) I {
	return RotateCycles[T](f, m, l, KRotateFromPermutationIndexed(f, m, l))
}

// RotateRandomAccessNontrivial rotates [f, l) at m with the cycle algorithm
// using position ordering. Requires f != m && m != l.
func RotateRandomAccessNontrivial[T any, I iterator.MutableRandomAccess[I, T]](f, m, l I) I {
	return RotateCycles[T](f, m, l, KRotateFromPermutationRandomAccess(f, m, l))
}

// RotateBidirectionalNontrivial rotates [f, l) at m by reversing both
// blocks, reverse-swapping their common length and reversing what remains
// of the longer block. Requires f != m && m != l.
func RotateBidirectionalNontrivial[T any, I iterator.MutableBidirectional[I, T]](f, m, l I) I {
	ReverseBidirectional[T](f, m)
	ReverseBidirectional[T](m, l)
	l0, f1 := copying.ReverseSwapRangesBounded[T](m, l, f, m)
	ReverseBidirectional[T](f1, l0)
	if m == l0 {
		return f1
	}
	return l0
}

// RotateForwardAnnotated rotates [f, l) at m by repeatedly swapping the
// bounded ranges [f, m) and [m, l). Which range runs out first decides
// whether the next round continues with the rest of the first block or
// with the tail of the second. No lengths are tracked. Requires f != m &&
// m != l.
func RotateForwardAnnotated[T any, I iterator.MutableIterator[I, T]](f, m, l I) {
	for {
		p0, p1 := copying.SwapRangesBounded[T](f, m, m, l)
		if p0 == m && p1 == l {
			// both ranges ran out together
			return
		}
		f = p0
		if f == m {
			// first range ran out: the tail of the second still has to move.
			m = p1
		}
		// otherwise [f, m) is the rest of the first block.
	}
}

// rotateForwardStep swaps [f, m) forward through [m, l) once, moving the
// block boundary m whenever f catches up with it.
func rotateForwardStep[T any, I iterator.MutableIterator[I, T]](f, m, l I) (I, I) {
	c := m
	for {
		copying.ExchangeValues[T](f, c)
		f, c = f.Successor(), c.Successor()
		if f == m {
			m = c
		}
		if c == l {
			return f, m
		}
	}
}

// RotateForwardNontrivial rotates [f, l) at m using forward traversal only.
// Requires f != m && m != l.
func RotateForwardNontrivial[T any, I iterator.MutableIterator[I, T]](f, m, l I) I {
	f, m = rotateForwardStep[T](f, m, l)
	mPrime := f
	for m != l {
		f, m = rotateForwardStep[T](f, m, l)
	}
	return mPrime
}

// RotatePartialNontrivial swaps [m, l) into the front of [f, l). The front
// l-m elements end up as a rotation would leave them; the remaining ones
// are a rotation of the original first block, not necessarily the right
// one. Requires f != m && m != l.
func RotatePartialNontrivial[T any, I iterator.MutableIterator[I, T]](f, m, l I) I {
	return copying.SwapRanges[T](m, l, f)
}

// RotateWithBufferNontrivial rotates [f, l) at m by copying [f, m) to the
// buffer at fb, shifting [m, l) to the front and copying the buffer back.
// The buffer must hold m-f elements.
func RotateWithBufferNontrivial[T any, I iterator.MutableIterator[I, T], B iterator.MutableIterator[B, T]](f, m, l I, fb B) I {
	lb := copying.Copy[T](f, m, fb)
	mPrime := copying.Copy[T](m, l, f)
	copying.Copy[T](fb, lb, mPrime)
	return mPrime
}

// RotateWithBufferBackwardNontrivial rotates [f, l) at m by copying [m, l)
// to the buffer, shifting [f, m) to the back and copying the buffer to the
// front. The buffer must hold l-m elements.
func RotateWithBufferBackwardNontrivial[T any, I iterator.MutableBidirectional[I, T], B iterator.MutableIterator[B, T]](f, m, l I, fb B) I {
	lb := copying.Copy[T](m, l, fb)
	copying.CopyBackward[T](f, m, l)
	return copying.Copy[T](fb, lb, f)
}

// RotateWithTemporaryBuffer rotates [f, l) at m by parking the first block
// [f, m) in a temporary buffer, falling back to the in-place dispatch when
// the buffer cannot be granted in full.
func RotateWithTemporaryBuffer[T any, I iterator.MutableIterator[I, T]](f, m, l I, opts ...buffer.Option[T]) I {
	if m == f {
		return l
	}
	if m == l {
		return f
	}
	n := iterator.Distance(f, m)
	b := buffer.New[T](n, opts...)
	defer b.Release()
	if b.Len() < n {
		return Rotate[T](f, m, l)
	}
	return RotateWithBufferNontrivial[T](f, m, l, b.Begin())
}

// Rotate moves [f, m) behind [m, l) and returns the new position of the
// element originally at f. It returns l when m == f and f when m == l, and
// otherwise dispatches on the dynamic capability of f.
func Rotate[T any, I iterator.MutableIterator[I, T]](f, m, l I) I {
	if m == f {
		return l
	}
	if m == l {
		return f
	}
	switch iterator.CategoryOf(f) {
	case iterator.CategoryRandomAccess:
		pf, pm, pl := iterator.Promote[T](f), iterator.Promote[T](m), iterator.Promote[T](l)
		return RotateRandomAccessNontrivial[T](pf, pm, pl).Pos
	case iterator.CategoryIndexed:
		pf, pm, pl := iterator.Promote[T](f), iterator.Promote[T](m), iterator.Promote[T](l)
		return RotateIndexedNontrivial[T](pf, pm, pl).Pos
	case iterator.CategoryBidirectional:
		pf, pm, pl := iterator.Promote[T](f), iterator.Promote[T](m), iterator.Promote[T](l)
		return RotateBidirectionalNontrivial[T](pf, pm, pl).Pos
	default:
		return RotateForwardNontrivial[T](f, m, l)
	}
}
