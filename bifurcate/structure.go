// SPDX-License-Identifier: MIT
// Package: lvseq/bifurcate
//
// structure.go - whole-tree copy and erase with threaded worklists.
//
// Contract:
//   - No recursion, no auxiliary containers.
//   - Every node is constructed or released exactly once.

package bifurcate

// Copy returns a new tree equivalent to c, built with construct, which
// must return a fresh node holding the value of src with raw links l and
// r. construct must not touch the predecessor of l or r.
//
// Until a new node is expanded its left link points at its source node,
// and its right link chains the new nodes still to expand. Expansion
// replaces both with links to the new children.
//
// Complexity: O(n) time, one construct call per node, O(1) extra space.
func Copy[C LinkedCoordinate[C]](c C, construct func(src, l, r C) C) C {
	if c.Empty() {
		return c
	}
	var empty C
	stack := construct(c, c, empty)
	root := stack
	for !stack.Empty() {
		c = stack.LeftSuccessor()
		l, r := c.LeftSuccessor(), c.RightSuccessor()
		top := stack
		switch {
		case !l.Empty():
			if !r.Empty() {
				r = construct(r, r, stack.RightSuccessor())
				stack = construct(l, l, r)
			} else {
				stack = construct(l, l, stack.RightSuccessor())
			}
			l = stack
		case !r.Empty():
			stack = construct(r, r, stack.RightSuccessor())
			r = stack
		default:
			stack = stack.RightSuccessor()
		}
		top.SetRightSuccessor(r)
		top.SetLeftSuccessor(l)
	}
	return root
}

// Erase calls release once for every node of c. Nodes with two children
// wait for their right subtree on a stack chained through their left
// links; release sees each node after its links have been read.
//
// Complexity: O(n) time, O(1) extra space.
func Erase[C LinkedCoordinate[C]](c C, release func(C)) {
	if c.Empty() {
		return
	}
	var stack C
	for {
		l, r := c.LeftSuccessor(), c.RightSuccessor()
		switch {
		case !l.Empty():
			if !r.Empty() {
				c.SetLeftSuccessor(stack)
				stack = c
			} else {
				release(c)
			}
			c = l
		case !r.Empty():
			release(c)
			c = r
		default:
			release(c)
			if stack.Empty() {
				return
			}
			c = stack
			stack = stack.LeftSuccessor()
			var empty C
			c.SetLeftSuccessor(empty)
		}
	}
}
