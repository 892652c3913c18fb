// SPDX-License-Identifier: MIT
// Package: lvseq/copying
//
// select.go - selection, split and partition copies.

package copying

import "github.com/katalvlaran/lvseq/iterator"

// CopySelect copies the elements of [fi, li) whose positions satisfy ps.
func CopySelect[T any, I iterator.ReadableIterator[I, T], O iterator.WritableIterator[O, T]](fi, li I, ft O, ps func(I) bool) O {
	for fi != li {
		if ps(fi) {
			ft.Sink(fi.Source())
			ft = ft.Successor()
		}
		fi = fi.Successor()
	}
	return ft
}

// CopyIf copies the elements of [fi, li) satisfying p.
func CopyIf[T any, I iterator.ReadableIterator[I, T], O iterator.WritableIterator[O, T]](fi, li I, ft O, p func(T) bool) O {
	return CopySelect[T](fi, li, ft, func(i I) bool { return p(i.Source()) })
}

// SplitCopy copies every element of [fi, li) to ft when its position
// satisfies ps and to ff otherwise. It returns the ends of both outputs.
func SplitCopy[T any, I iterator.ReadableIterator[I, T], OF iterator.WritableIterator[OF, T], OT iterator.WritableIterator[OT, T]](fi, li I, ff OF, ft OT, ps func(I) bool) (OF, OT) {
	for fi != li {
		if ps(fi) {
			ft.Sink(fi.Source())
			ft = ft.Successor()
		} else {
			ff.Sink(fi.Source())
			ff = ff.Successor()
		}
		fi = fi.Successor()
	}
	return ff, ft
}

// SplitCopyN is SplitCopy over the counted range (fi, n).
func SplitCopyN[T any, I iterator.ReadableIterator[I, T], OF iterator.WritableIterator[OF, T], OT iterator.WritableIterator[OT, T]](fi I, n int, ff OF, ft OT, ps func(I) bool) (I, OF, OT) {
	for ; n > 0; n-- {
		if ps(fi) {
			ft.Sink(fi.Source())
			ft = ft.Successor()
		} else {
			ff.Sink(fi.Source())
			ff = ff.Successor()
		}
		fi = fi.Successor()
	}
	return fi, ff, ft
}

// PartitionCopy sends elements satisfying p to ft and the rest to ff.
func PartitionCopy[T any, I iterator.ReadableIterator[I, T], OF iterator.WritableIterator[OF, T], OT iterator.WritableIterator[OT, T]](fi, li I, ff OF, ft OT, p func(T) bool) (OF, OT) {
	return SplitCopy[T](fi, li, ff, ft, func(i I) bool { return p(i.Source()) })
}

// PartitionCopyN is PartitionCopy over the counted range (fi, n).
func PartitionCopyN[T any, I iterator.ReadableIterator[I, T], OF iterator.WritableIterator[OF, T], OT iterator.WritableIterator[OT, T]](fi I, n int, ff OF, ft OT, p func(T) bool) (I, OF, OT) {
	return SplitCopyN[T](fi, n, ff, ft, func(i I) bool { return p(i.Source()) })
}
