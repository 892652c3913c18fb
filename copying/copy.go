// SPDX-License-Identifier: MIT
// Package: lvseq/copying
//
// copy.go - forward, bounded, counted, backward and reversed copies; fills.

package copying

import "github.com/katalvlaran/lvseq/iterator"

// Copy copies [fi, li) to the range starting at fo and returns the end of
// the output range.
func Copy[T any, I iterator.ReadableIterator[I, T], O iterator.WritableIterator[O, T]](fi, li I, fo O) O {
	for fi != li {
		fo.Sink(fi.Source())
		fi, fo = fi.Successor(), fo.Successor()
	}
	return fo
}

// CopyBounded copies until either range is exhausted and returns where both
// stopped.
func CopyBounded[T any, I iterator.ReadableIterator[I, T], O iterator.WritableIterator[O, T]](fi, li I, fo, lo O) (I, O) {
	for fi != li && fo != lo {
		fo.Sink(fi.Source())
		fi, fo = fi.Successor(), fo.Successor()
	}
	return fi, fo
}

// CopyN copies the counted range (fi, n) to fo.
func CopyN[T any, I iterator.ReadableIterator[I, T], O iterator.WritableIterator[O, T]](fi I, n int, fo O) (I, O) {
	for ; n > 0; n-- {
		fo.Sink(fi.Source())
		fi, fo = fi.Successor(), fo.Successor()
	}
	return fi, fo
}

// CopyBackward copies [fi, li) to the range ending at lo, last element
// first, and returns the start of the output range.
func CopyBackward[T any, I iterator.ReadableBidirectional[I, T], O iterator.WritableBidirectional[O, T]](fi, li I, lo O) O {
	for fi != li {
		li, lo = li.Predecessor(), lo.Predecessor()
		lo.Sink(li.Source())
	}
	return lo
}

// CopyBackwardN copies the n elements ending at li to the range ending at lo.
func CopyBackwardN[T any, I iterator.ReadableBidirectional[I, T], O iterator.WritableBidirectional[O, T]](li I, n int, lo O) (I, O) {
	for ; n > 0; n-- {
		li, lo = li.Predecessor(), lo.Predecessor()
		lo.Sink(li.Source())
	}
	return li, lo
}

// ReverseCopy copies [fi, li) to fo in reverse order.
func ReverseCopy[T any, I iterator.ReadableBidirectional[I, T], O iterator.WritableIterator[O, T]](fi, li I, fo O) O {
	for fi != li {
		li = li.Predecessor()
		fo.Sink(li.Source())
		fo = fo.Successor()
	}
	return fo
}

// ReverseCopyBackward copies [fi, li) in reverse order to the range ending
// at lo.
func ReverseCopyBackward[T any, I iterator.ReadableIterator[I, T], O iterator.WritableBidirectional[O, T]](fi, li I, lo O) O {
	for fi != li {
		lo = lo.Predecessor()
		lo.Sink(fi.Source())
		fi = fi.Successor()
	}
	return lo
}

// Fill stores x at every position of [f, l).
func Fill[T any, O iterator.WritableIterator[O, T]](f, l O, x T) {
	for f != l {
		f.Sink(x)
		f = f.Successor()
	}
}

// FillN stores x at the n positions starting at f and returns f+n.
func FillN[T any, O iterator.WritableIterator[O, T]](f O, n int, x T) O {
	for ; n > 0; n-- {
		f.Sink(x)
		f = f.Successor()
	}
	return f
}

// Iota writes 0, 1, ..., n-1 starting at fo.
func Iota[O iterator.WritableIterator[O, int]](n int, fo O) O {
	for i := 0; i < n; i++ {
		fo.Sink(i)
		fo = fo.Successor()
	}
	return fo
}

// EqualIota reports whether [f, l) holds 0, 1, ..., l-f-1.
func EqualIota[I iterator.ReadableIterator[I, int]](f, l I) bool {
	for n := 0; f != l; n++ {
		if f.Source() != n {
			return false
		}
		f = f.Successor()
	}
	return true
}
