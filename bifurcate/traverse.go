// SPDX-License-Identifier: MIT
// Package: lvseq/bifurcate
//
// traverse.go - the visit automaton over predecessor links.
//
// Contract:
//   - c is the root of the walk; the walk never leaves its subtree.
//   - O(1) extra space, 3 visits per node.

package bifurcate

// TraverseStep advances the pair (v, c) to the next visit and returns the
// change in depth: 1 going down, 0 staying, -1 going up. A Post visit must
// not be stepped from a root.
func TraverseStep[C BidirectionalCoordinate[C]](v *Visit, c *C) int {
	switch *v {
	case Pre:
		if HasLeftSuccessor(*c) {
			*c = (*c).LeftSuccessor()
			return 1
		}
		*v = In
		return 0
	case In:
		if HasRightSuccessor(*c) {
			*v = Pre
			*c = (*c).RightSuccessor()
			return 1
		}
		*v = Post
		return 0
	default:
		if IsLeftSuccessor(*c) {
			*v = In
		}
		*c = (*c).Predecessor()
		return -1
	}
}

// Reachable reports whether y is a node of the tree rooted at x.
func Reachable[C BidirectionalCoordinate[C]](x, y C) bool {
	if x.Empty() {
		return false
	}
	root, v := x, Pre
	for {
		if x == y {
			return true
		}
		TraverseStep(&v, &x)
		if x == root && v == Post {
			return false
		}
	}
}

// Weight returns the number of nodes under c, counting Pre visits.
func Weight[C BidirectionalCoordinate[C]](c C) int {
	if c.Empty() {
		return 0
	}
	root, v, n := c, Pre, 1
	for {
		TraverseStep(&v, &c)
		if v == Pre {
			n++
		}
		if c == root && v == Post {
			return n
		}
	}
}

// Height returns the number of nodes on the longest downward path from c.
func Height[C BidirectionalCoordinate[C]](c C) int {
	if c.Empty() {
		return 0
	}
	root, v := c, Pre
	n, m := 1, 1 // tallest so far, depth of the current node
	for {
		m += TraverseStep(&v, &c)
		n = max(n, m)
		if c == root && v == Post {
			return n
		}
	}
}

// TraverseNonempty calls proc for the three visits of every node of the
// nonempty tree c, in the same order as TraverseNonemptyRecursive.
func TraverseNonempty[C BidirectionalCoordinate[C]](c C, proc func(Visit, C)) {
	root, v := c, Pre
	proc(Pre, c)
	for {
		TraverseStep(&v, &c)
		proc(v, c)
		if c == root && v == Post {
			return
		}
	}
}

// Traverse is TraverseNonempty that accepts the empty tree.
func Traverse[C BidirectionalCoordinate[C]](c C, proc func(Visit, C)) {
	if c.Empty() {
		return
	}
	TraverseNonempty(c, proc)
}

// Isomorphic reports whether c0 and c1 have the same shape.
func Isomorphic[C0 BidirectionalCoordinate[C0], C1 BidirectionalCoordinate[C1]](c0 C0, c1 C1) bool {
	if c0.Empty() {
		return c1.Empty()
	}
	if c1.Empty() {
		return false
	}
	root0, v0, v1 := c0, Pre, Pre
	for {
		TraverseStep(&v0, &c0)
		TraverseStep(&v1, &c1)
		if v0 != v1 {
			return false
		}
		if c0 == root0 && v0 == Post {
			return true
		}
	}
}

// Equivalent reports whether c0 and c1 have the same shape and r-equivalent
// values at corresponding nodes.
func Equivalent[T any, C0 ReadableBidirectional[C0, T], C1 ReadableBidirectional[C1, T]](c0 C0, c1 C1, r func(a, b T) bool) bool {
	if c0.Empty() {
		return c1.Empty()
	}
	if c1.Empty() {
		return false
	}
	root0, v0, v1 := c0, Pre, Pre
	for {
		if v0 == Pre && !r(c0.Source(), c1.Source()) {
			return false
		}
		TraverseStep(&v0, &c0)
		TraverseStep(&v1, &c1)
		if v0 != v1 {
			return false
		}
		if c0 == root0 && v0 == Post {
			return true
		}
	}
}

// Compare reports whether c0 precedes c1 in the order of CompareNonempty,
// with the empty tree first, under the weak ordering r.
func Compare[T any, C0 ReadableBidirectional[C0, T], C1 ReadableBidirectional[C1, T]](c0 C0, c1 C1, r func(a, b T) bool) bool {
	cmp := threeWay(r)
	return lockstepLess(c0, c1, func(x0 C0, x1 C1) int { return cmp(x0.Source(), x1.Source()) })
}

// ShapeCompare reports whether the shape of c0 precedes the shape of c1,
// ignoring values.
func ShapeCompare[C0 BidirectionalCoordinate[C0], C1 BidirectionalCoordinate[C1]](c0 C0, c1 C1) bool {
	return lockstepLess(c0, c1, nil)
}

// lockstepLess steps both trees together. At each Pre visit the node values
// are compared by cmp when it is not nil; the first differing visit kind
// decides by shape.
func lockstepLess[C0 BidirectionalCoordinate[C0], C1 BidirectionalCoordinate[C1]](c0 C0, c1 C1, cmp func(C0, C1) int) bool {
	if c1.Empty() {
		return false
	}
	if c0.Empty() {
		return true
	}
	root0, v0, v1 := c0, Pre, Pre
	for {
		if v0 == Pre && cmp != nil {
			if d := cmp(c0, c1); d != 0 {
				return d < 0
			}
		}
		TraverseStep(&v0, &c0)
		TraverseStep(&v1, &c1)
		if v0 != v1 {
			return v0 > v1
		}
		if c0 == root0 && v0 == Post {
			return false
		}
	}
}
