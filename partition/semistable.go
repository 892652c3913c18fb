// SPDX-License-Identifier: MIT
// Package: lvseq/partition
//
// semistable.go - single-pass and two-ended unstable partitions.

package partition

import (
	"github.com/katalvlaran/lvseq/copying"
	"github.com/katalvlaran/lvseq/iterator"
)

// PartitionedAtPoint reports whether [f, m) holds only false elements and
// [m, l) only true ones.
func PartitionedAtPoint[T any, I iterator.ReadableIterator[I, T]](f, m, l I, p func(T) bool) bool {
	return iterator.None(f, m, p) && iterator.All(m, l, p)
}

// PotentialPartitionPoint returns the position the partition point will
// occupy once [f, l) is partitioned by p.
func PotentialPartitionPoint[T any, I iterator.ReadableIterator[I, T]](f, l I, p func(T) bool) I {
	return iterator.Advance(f, iterator.CountIfNot(f, l, p))
}

// Semistable partitions [f, l) in one forward pass, keeping the relative
// order of the false elements.
//
// Algorithm Outline:
//
//	i = first true element; j scans ahead of i
//	each false element at j is swapped with i, and i advances
//	[f, i) is then all false, [i, j) all true
//
// Complexity: l-f applications of p, at most (l-f) - (i-f) swaps.
func Semistable[T any, I iterator.MutableIterator[I, T]](f, l I, p func(T) bool) I {
	i := iterator.FindIf(f, l, p)
	if i == l {
		return i
	}
	j := i.Successor()
	for {
		j = iterator.FindIfNot(j, l, p)
		if j == l {
			return i
		}
		copying.ExchangeValues[T](i, j)
		i, j = i.Successor(), j.Successor()
	}
}

// RemoveIf compacts the elements failing p to the front of [f, l), in
// order, and returns the end of the kept prefix. The elements of
// [result, l) are left unspecified.
func RemoveIf[T any, I iterator.MutableIterator[I, T]](f, l I, p func(T) bool) I {
	i := iterator.FindIf(f, l, p)
	if i == l {
		return i
	}
	j := i.Successor()
	for {
		j = iterator.FindIfNot(j, l, p)
		if j == l {
			return i
		}
		i.Sink(j.Source())
		i, j = i.Successor(), j.Successor()
	}
}

// Forward partitions [f, l) with forward traversal only, making the
// minimal number of swaps: it first counts the false elements to find the
// partition point, then swaps every false element beyond it with a true
// element before it.
func Forward[T any, I iterator.MutableIterator[I, T]](f, l I, p func(T) bool) I {
	i := PotentialPartitionPoint(f, l, p)
	j := i
	for {
		j = iterator.FindIfNot(j, l, p)
		if j == l {
			return i
		}
		f = iterator.FindIfUnguarded(f, p)
		copying.ExchangeValues[T](f, j)
		f, j = f.Successor(), j.Successor()
	}
}

// Bidirectional partitions [f, l) from both ends, swapping each misplaced
// true element from the front with a misplaced false element from the back.
func Bidirectional[T any, I iterator.MutableBidirectional[I, T]](f, l I, p func(T) bool) I {
	for {
		f = iterator.FindIf(f, l, p)
		l = iterator.FindBackwardIfNot(f, l, p)
		if f == l {
			return f
		}
		l = l.Predecessor()
		copying.ExchangeValues[T](l, f)
		f = f.Successor()
	}
}

// SingleCycle is Bidirectional with the swaps replaced by a single cycle
// of moves, using one temporary.
func SingleCycle[T any, I iterator.MutableBidirectional[I, T]](f, l I, p func(T) bool) I {
	f = iterator.FindIf(f, l, p)
	l = iterator.FindBackwardIfNot(f, l, p)
	if f == l {
		return f
	}
	l = l.Predecessor()
	tmp := f.Source()
	for {
		f.Sink(l.Source())
		f = iterator.FindIf(f.Successor(), l, p)
		if f == l {
			l.Sink(tmp)
			return f
		}
		l.Sink(f.Source())
		l = iterator.FindBackwardIfNot(f, l, p)
		if l == f {
			f.Sink(tmp)
			return f
		}
		l = l.Predecessor()
	}
}

// BidirectionalUnguarded partitions when the range is known to be guarded:
// either it holds both false and true elements, or the element before f
// fails p and the element at l satisfies it. No bound checks are made
// inside the scanning loops.
func BidirectionalUnguarded[T any, I iterator.MutableBidirectional[I, T]](f, l I, p func(T) bool) I {
	for {
		f = iterator.FindIfUnguarded(f, p)
		l = iterator.FindBackwardIfNotUnguarded(l, p)
		if l.Successor() == f {
			return f
		}
		copying.ExchangeValues[T](f, l)
		f = f.Successor()
	}
}

// Sentinel establishes the guards for BidirectionalUnguarded with one
// guarded scan from each end and then runs it.
func Sentinel[T any, I iterator.MutableBidirectional[I, T]](f, l I, p func(T) bool) I {
	f = iterator.FindIf(f, l, p)
	l = iterator.FindBackwardIfNot(f, l, p)
	if f == l {
		return f
	}
	l = l.Predecessor()
	copying.ExchangeValues[T](f, l)
	f = f.Successor()
	return BidirectionalUnguarded[T](f, l, p)
}

// Indexed is the two-ended partition written with integer offsets from f.
func Indexed[T any, I iterator.MutableIndexed[I, T]](f, l I, p func(T) bool) I {
	i, j := 0, f.Distance(l)
	for {
		for {
			if i == j {
				return f.Offset(i)
			}
			if p(f.Offset(i).Source()) {
				break
			}
			i++
		}
		for {
			j--
			if i == j {
				return f.Offset(j)
			}
			if !p(f.Offset(j).Source()) {
				break
			}
		}
		copying.ExchangeValues[T](f.Offset(i), f.Offset(j))
		i++
	}
}

// Partition partitions [f, l) with the cheapest unstable variant the
// dynamic capability of f allows and returns the partition point.
func Partition[T any, I iterator.MutableIterator[I, T]](f, l I, p func(T) bool) I {
	switch iterator.CategoryOf(f) {
	case iterator.CategoryRandomAccess, iterator.CategoryIndexed:
		return Indexed[T](iterator.Promote[T](f), iterator.Promote[T](l), p).Pos
	case iterator.CategoryBidirectional:
		return Sentinel[T](iterator.Promote[T](f), iterator.Promote[T](l), p).Pos
	default:
		return Semistable[T](f, l, p)
	}
}
