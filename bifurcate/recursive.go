// SPDX-License-Identifier: MIT
// Package: lvseq/bifurcate
//
// recursive.go - algorithms that recurse on the two successors.
//
// Recursion depth equals the height of the tree.

package bifurcate

// WeightRecursive returns the number of nodes in the tree rooted at c.
func WeightRecursive[C Coordinate[C]](c C) int {
	if c.Empty() {
		return 0
	}
	l, r := 0, 0
	if HasLeftSuccessor(c) {
		l = WeightRecursive(c.LeftSuccessor())
	}
	if HasRightSuccessor(c) {
		r = WeightRecursive(c.RightSuccessor())
	}
	return l + r + 1
}

// HeightRecursive returns the number of nodes on the longest path from c
// down to a leaf; 0 for the empty tree.
func HeightRecursive[C Coordinate[C]](c C) int {
	if c.Empty() {
		return 0
	}
	l, r := 0, 0
	if HasLeftSuccessor(c) {
		l = HeightRecursive(c.LeftSuccessor())
	}
	if HasRightSuccessor(c) {
		r = HeightRecursive(c.RightSuccessor())
	}
	return max(l, r) + 1
}

// TraverseNonemptyRecursive calls proc(Pre, n), walks the left subtree,
// calls proc(In, n), walks the right subtree and calls proc(Post, n), for
// every node n of the nonempty tree c.
func TraverseNonemptyRecursive[C Coordinate[C]](c C, proc func(Visit, C)) {
	proc(Pre, c)
	if HasLeftSuccessor(c) {
		TraverseNonemptyRecursive(c.LeftSuccessor(), proc)
	}
	proc(In, c)
	if HasRightSuccessor(c) {
		TraverseNonemptyRecursive(c.RightSuccessor(), proc)
	}
	proc(Post, c)
}

// EquivalentNonempty reports whether the nonempty trees c0 and c1 have the
// same shape and r-equivalent values at corresponding nodes.
func EquivalentNonempty[T any, C0 ReadableCoordinate[C0, T], C1 ReadableCoordinate[C1, T]](c0 C0, c1 C1, r func(a, b T) bool) bool {
	if !r(c0.Source(), c1.Source()) {
		return false
	}
	if HasLeftSuccessor(c0) != HasLeftSuccessor(c1) {
		return false
	}
	if HasLeftSuccessor(c0) && !EquivalentNonempty(c0.LeftSuccessor(), c1.LeftSuccessor(), r) {
		return false
	}
	if HasRightSuccessor(c0) != HasRightSuccessor(c1) {
		return false
	}
	return !HasRightSuccessor(c0) || EquivalentNonempty(c0.RightSuccessor(), c1.RightSuccessor(), r)
}

// CompareNonempty orders the nonempty trees c0 and c1 by their preorder
// values under the three-way comparison cmp, with shape as the tiebreak: a
// missing child orders before a present one. It returns a negative number
// when c0 precedes c1, zero when they are equivalent and a positive number
// otherwise.
func CompareNonempty[T any, C0 ReadableCoordinate[C0, T], C1 ReadableCoordinate[C1, T]](c0 C0, c1 C1, cmp func(a, b T) int) int {
	if d := cmp(c0.Source(), c1.Source()); d != 0 {
		return d
	}
	if d := compareChild(c0.LeftSuccessor(), c1.LeftSuccessor(), cmp); d != 0 {
		return d
	}
	return compareChild(c0.RightSuccessor(), c1.RightSuccessor(), cmp)
}

func compareChild[T any, C0 ReadableCoordinate[C0, T], C1 ReadableCoordinate[C1, T]](c0 C0, c1 C1, cmp func(a, b T) int) int {
	switch {
	case c0.Empty() && c1.Empty():
		return 0
	case c0.Empty():
		return -1
	case c1.Empty():
		return 1
	default:
		return CompareNonempty(c0, c1, cmp)
	}
}

// threeWay lifts a strict weak ordering to a three-way comparison.
func threeWay[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
