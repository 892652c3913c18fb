// SPDX-License-Identifier: MIT
// Package: lvseq/bifurcate
//
// rotating.go - link-rotation traversal without predecessor links.

package bifurcate

// TreeRotate performs one step of the rotating traversal on the nonempty
// curr: the links of curr rotate (left <- right <- prev <- left) and the
// walk moves into the old left subtree, or stays on curr with an empty
// prev when there is none.
func TreeRotate[C LinkedCoordinate[C]](curr, prev *C) {
	tmp := (*curr).LeftSuccessor()
	(*curr).SetLeftSuccessor((*curr).RightSuccessor())
	(*curr).SetRightSuccessor(*prev)
	if tmp.Empty() {
		*prev = tmp
		return
	}
	*prev = *curr
	*curr = tmp
}

// TraverseRotating calls proc three times for every node of the tree c,
// rotating links as it goes. Each node's links have turned a full cycle by
// the time the call returns, so the tree is left as it was found. The
// order of the three visits is not pre, in and post; use
// TraversePhasedRotating to select one visit per node.
//
// Complexity: O(n) time, O(1) extra space.
func TraverseRotating[C LinkedCoordinate[C]](c C, proc func(C)) {
	if c.Empty() {
		return
	}
	curr := c
	var prev C
	for lap := 0; lap < 2; lap++ {
		for {
			proc(curr)
			TreeRotate(&curr, &prev)
			if curr == c {
				break
			}
		}
	}
	proc(curr)
	TreeRotate(&curr, &prev)
}

// WeightRotating counts the nodes of c with a rotating traversal.
func WeightRotating[C LinkedCoordinate[C]](c C) int {
	n := 0
	TraverseRotating(c, func(C) { n++ })
	return n / 3
}

// TraversePhasedRotating calls proc once per node: on the visit whose
// index modulo 3 equals phase. phase must be 0, 1 or 2.
func TraversePhasedRotating[C LinkedCoordinate[C]](c C, phase int, proc func(C)) {
	n := 0
	TraverseRotating(c, func(x C) {
		if n == phase {
			proc(x)
		}
		n++
		if n == 3 {
			n = 0
		}
	})
}
