// SPDX-License-Identifier: MIT
// Package: lvseq/iterator
//
// search.go - linear searches, quantifiers and counting over readable ranges.

package iterator

// ForEach applies proc to every element of [f, l).
func ForEach[T any, I ReadableIterator[I, T]](f, l I, proc func(T)) {
	for f != l {
		proc(f.Source())
		f = f.Successor()
	}
}

// ForEachN applies proc to the counted range (f, n) and returns f+n.
func ForEachN[T any, I ReadableIterator[I, T]](f I, n int, proc func(T)) I {
	for ; n > 0; n-- {
		proc(f.Source())
		f = f.Successor()
	}
	return f
}

// Find returns the first position in [f, l) holding x, or l.
func Find[T comparable, I ReadableIterator[I, T]](f, l I, x T) I {
	for f != l && f.Source() != x {
		f = f.Successor()
	}
	return f
}

// FindN searches the counted range (f, n) for x. It returns the position
// reached and the count remaining there; a zero count means not found.
func FindN[T comparable, I ReadableIterator[I, T]](f I, n int, x T) (I, int) {
	for n > 0 && f.Source() != x {
		n--
		f = f.Successor()
	}
	return f, n
}

// FindIf returns the first position in [f, l) satisfying p, or l.
func FindIf[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) I {
	for f != l && !p(f.Source()) {
		f = f.Successor()
	}
	return f
}

// FindIfNot returns the first position in [f, l) not satisfying p, or l.
func FindIfNot[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) I {
	for f != l && p(f.Source()) {
		f = f.Successor()
	}
	return f
}

// FindIfUnguarded returns the first position from f satisfying p. Some
// position reachable from f must satisfy p.
func FindIfUnguarded[T any, I ReadableIterator[I, T]](f I, p func(T) bool) I {
	for !p(f.Source()) {
		f = f.Successor()
	}
	return f
}

// FindIfNotUnguarded returns the first position from f not satisfying p.
// Some position reachable from f must fail p.
func FindIfNotUnguarded[T any, I ReadableIterator[I, T]](f I, p func(T) bool) I {
	for p(f.Source()) {
		f = f.Successor()
	}
	return f
}

// All reports whether every element of [f, l) satisfies p.
func All[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) bool {
	return l == FindIfNot(f, l, p)
}

// None reports whether no element of [f, l) satisfies p.
func None[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) bool {
	return l == FindIf(f, l, p)
}

// NotAll reports whether some element of [f, l) fails p.
func NotAll[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) bool {
	return !All(f, l, p)
}

// Some reports whether some element of [f, l) satisfies p.
func Some[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) bool {
	return !None(f, l, p)
}

// CountIf returns how many elements of [f, l) satisfy p.
func CountIf[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) int {
	n := 0
	for f != l {
		if p(f.Source()) {
			n++
		}
		f = f.Successor()
	}
	return n
}

// CountIfNot returns how many elements of [f, l) fail p.
func CountIfNot[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) int {
	n := 0
	for f != l {
		if !p(f.Source()) {
			n++
		}
		f = f.Successor()
	}
	return n
}

// Reduce folds [f, l) with op, returning z for an empty range.
func Reduce[T any, I ReadableIterator[I, T]](f, l I, op func(T, T) T, z T) T {
	if f == l {
		return z
	}
	r := f.Source()
	f = f.Successor()
	for f != l {
		r = op(r, f.Source())
		f = f.Successor()
	}
	return r
}

// FindMismatch advances through both ranges while r holds for the pair of
// current elements and returns the first positions where it fails or either
// range ends.
func FindMismatch[T any, I0 ReadableIterator[I0, T], I1 ReadableIterator[I1, T]](f0, l0 I0, f1, l1 I1, r func(T, T) bool) (I0, I1) {
	for f0 != l0 && f1 != l1 && r(f0.Source(), f1.Source()) {
		f0 = f0.Successor()
		f1 = f1.Successor()
	}
	return f0, f1
}

// FindAdjacentMismatch returns the first position i in [f, l) such that r
// does not hold between the element before i and the element at i, or l.
func FindAdjacentMismatch[T any, I ReadableIterator[I, T]](f, l I, r func(T, T) bool) I {
	if f == l {
		return l
	}
	x := f.Source()
	f = f.Successor()
	for f != l && r(x, f.Source()) {
		x = f.Source()
		f = f.Successor()
	}
	return f
}

// RelationPreserving reports whether r holds between every adjacent pair.
func RelationPreserving[T any, I ReadableIterator[I, T]](f, l I, r func(T, T) bool) bool {
	return l == FindAdjacentMismatch(f, l, r)
}

// StrictlyIncreasingRange reports whether [f, l) is strictly increasing
// under the weak ordering r.
func StrictlyIncreasingRange[T any, I ReadableIterator[I, T]](f, l I, r func(T, T) bool) bool {
	return RelationPreserving(f, l, r)
}

// IncreasingRange reports whether [f, l) is non-decreasing under r.
func IncreasingRange[T any, I ReadableIterator[I, T]](f, l I, r func(T, T) bool) bool {
	return RelationPreserving(f, l, func(a, b T) bool { return !r(b, a) })
}

// Partitioned reports whether no element satisfying p precedes an element
// that fails it.
func Partitioned[T any, I ReadableIterator[I, T]](f, l I, p func(T) bool) bool {
	return l == FindIfNot(FindIf(f, l, p), l, p)
}

// LexicographicalEqual reports whether both ranges hold equal elements
// under the equivalence r, pairwise, and have the same length.
func LexicographicalEqual[T any, I0 ReadableIterator[I0, T], I1 ReadableIterator[I1, T]](f0, l0 I0, f1, l1 I1, r func(T, T) bool) bool {
	m0, m1 := FindMismatch(f0, l0, f1, l1, r)
	return m0 == l0 && m1 == l1
}

// LexicographicalCompare reports whether [f0, l0) precedes [f1, l1) in the
// lexicographical extension of the weak ordering r.
func LexicographicalCompare[T any, I0 ReadableIterator[I0, T], I1 ReadableIterator[I1, T]](f0, l0 I0, f1, l1 I1, r func(T, T) bool) bool {
	for {
		if f1 == l1 {
			return false
		}
		if f0 == l0 {
			return true
		}
		if r(f0.Source(), f1.Source()) {
			return true
		}
		if r(f1.Source(), f0.Source()) {
			return false
		}
		f0 = f0.Successor()
		f1 = f1.Successor()
	}
}
