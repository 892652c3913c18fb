// SPDX-License-Identifier: MIT
// Package: lvseq/rearrange
//
// cycle.go - permutation cycles and the rotation from-permutations.

package rearrange

import (
	"github.com/katalvlaran/lvseq/copying"
	"github.com/katalvlaran/lvseq/integer"
	"github.com/katalvlaran/lvseq/iterator"
)

// CycleTo moves the elements of the cycle of i under the to-permutation f,
// so that the element at x ends up at f(x). It uses 3(k-1) assignments for
// a cycle of length k.
func CycleTo[T any, I iterator.MutableIterator[I, T]](i I, f func(I) I) {
	k := f(i)
	for k != i {
		copying.ExchangeValues[T](i, k)
		k = f(k)
	}
}

// CycleFrom moves the elements of the cycle of i under the
// from-permutation f, so that x receives the element from f(x). It uses
// k+1 assignments for a cycle of length k.
func CycleFrom[T any, I iterator.MutableIterator[I, T]](i I, f func(I) I) {
	tmp := i.Source()
	j := i
	k := f(i)
	for k != i {
		j.Sink(k.Source())
		j = k
		k = f(k)
	}
	j.Sink(tmp)
}

// KRotateFromPermutationIndexed returns the from-permutation of the
// rotation of [f, l) at m, computed with index arithmetic.
func KRotateFromPermutationIndexed[I interface {
	comparable
	iterator.Indexed[I]
}](f, m, l I) func(I) I {
	k := m.Distance(l)
	nMinusK := f.Distance(m)
	return func(x I) I {
		i := f.Distance(x)
		if i < k {
			return x.Offset(nMinusK)
		}
		return f.Offset(i - k)
	}
}

// KRotateFromPermutationRandomAccess is KRotateFromPermutationIndexed using
// position ordering and negative offsets.
func KRotateFromPermutationRandomAccess[I interface {
	comparable
	iterator.RandomAccess[I]
}](f, m, l I) func(I) I {
	k := m.Distance(l)
	nMinusK := f.Distance(m)
	mPrime := f.Offset(k)
	return func(x I) I {
		if x.Less(mPrime) {
			return x.Offset(nMinusK)
		}
		return x.Offset(-k)
	}
}

// RotateCycles resolves the from-permutation of a rotation of [f, l) at m:
// the rotation decomposes into gcd(m-f, l-m) disjoint cycles, each holding
// exactly one of the first gcd positions.
func RotateCycles[T any, I iterator.MutableIndexed[I, T]](f, m, l I, from func(I) I) I {
	d := integer.Gcd(f.Distance(m), m.Distance(l))
	for integer.CountDown(&d) {
		CycleFrom[T](f.Offset(d), from)
	}
	return f.Offset(m.Distance(l))
}
