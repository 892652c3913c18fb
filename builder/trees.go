// SPDX-License-Identifier: MIT
// Package: lvseq/builder
//
// trees.go - binary tree fixtures of chosen shapes.
//
// Contract:
//   • Trees are built without recursion, so spines of any length are safe.
//   • Node creation goes through the container's NewNode, so observers set
//     with WithTreeOptions see every node.

package builder

import "github.com/katalvlaran/lvseq/bifurcate"

// treeCoordinate is an int-valued coordinate with settable links.
type treeCoordinate[C any] interface {
	bifurcate.LinkedCoordinate[C]
	Source() int
}

// nodeMaker is the part of bifurcate.Tree and bifurcate.STree the shape
// builders need.
type nodeMaker[C any] interface {
	NewNode(v int, l, r C) C
	SetRoot(c C)
}

// CompleteTree returns a tree of the given depth with every level full:
// 2^depth - 1 nodes holding 1, 2, … in breadth-first order.
// Complexity: O(2^depth) time and space.
func CompleteTree(depth int, opts ...BuilderOption) (*bifurcate.Tree[int], error) {
	cfg := newBuilderConfig(opts...)
	x := bifurcate.NewTree[int](cfg.treeOpts...)

	if err := complete[*bifurcate.Node[int]](depth, x); err != nil {
		return nil, err
	}

	return x, nil
}

// CompleteSTree is CompleteTree without parent links.
func CompleteSTree(depth int, opts ...BuilderOption) (*bifurcate.STree[int], error) {
	cfg := newBuilderConfig(opts...)
	x := bifurcate.NewSTree[int](cfg.treeOpts...)

	if err := complete[*bifurcate.SNode[int]](depth, x); err != nil {
		return nil, err
	}

	return x, nil
}

// RandomTree returns the shape of the binary search tree obtained by
// inserting a random permutation of 0..n-1; its inorder values are
// 0, 1, …, n-1. Requires an RNG.
// Complexity: O(n log n) expected, O(n²) worst case.
func RandomTree(n int, opts ...BuilderOption) (*bifurcate.Tree[int], error) {
	cfg := newBuilderConfig(opts...)
	x := bifurcate.NewTree[int](cfg.treeOpts...)

	if err := randomShape[*bifurcate.Node[int]](n, cfg, x); err != nil {
		return nil, err
	}

	return x, nil
}

// RandomSTree is RandomTree without parent links.
func RandomSTree(n int, opts ...BuilderOption) (*bifurcate.STree[int], error) {
	cfg := newBuilderConfig(opts...)
	x := bifurcate.NewSTree[int](cfg.treeOpts...)

	if err := randomShape[*bifurcate.SNode[int]](n, cfg, x); err != nil {
		return nil, err
	}

	return x, nil
}

// LeftSpine returns n nodes 0, 1, …, n-1, each the left child of the
// previous one.
// Complexity: O(n).
func LeftSpine(n int, opts ...BuilderOption) (*bifurcate.Tree[int], error) {
	cfg := newBuilderConfig(opts...)
	x := bifurcate.NewTree[int](cfg.treeOpts...)

	if err := leftSpine[*bifurcate.Node[int]](n, x); err != nil {
		return nil, err
	}

	return x, nil
}

// LeftSpineSTree is LeftSpine without parent links.
func LeftSpineSTree(n int, opts ...BuilderOption) (*bifurcate.STree[int], error) {
	cfg := newBuilderConfig(opts...)
	x := bifurcate.NewSTree[int](cfg.treeOpts...)

	if err := leftSpine[*bifurcate.SNode[int]](n, x); err != nil {
		return nil, err
	}

	return x, nil
}

// complete builds the heap-ordered complete tree bottom-up: node i has
// children 2i and 2i+1.
func complete[C bifurcate.Coordinate[C]](depth int, x nodeMaker[C]) error {
	if err := validateSize(MethodCompleteTree, depth); err != nil {
		return err
	}
	if depth >= 31 {
		return builderErrorf(MethodCompleteTree, ErrBadSize, "depth %d overflows", depth)
	}
	n := 1<<depth - 1
	if n == 0 {
		return nil
	}
	at := make([]C, 2*n+2)
	for i := n; i >= 1; i-- {
		at[i] = x.NewNode(i, at[2*i], at[2*i+1])
	}
	x.SetRoot(at[1])

	return nil
}

// randomShape grows a binary search tree by iterative insertion.
func randomShape[C treeCoordinate[C]](n int, cfg builderConfig, x nodeMaker[C]) error {
	if err := validateSize(MethodRandomTree, n); err != nil {
		return err
	}
	if err := requireRand(MethodRandomTree, cfg); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	keys := cfg.rng.Perm(n)
	var empty C
	root := x.NewNode(keys[0], empty, empty)
	x.SetRoot(root)
	for _, k := range keys[1:] {
		node := x.NewNode(k, empty, empty)
		for c := root; ; {
			if k < c.Source() {
				if c.LeftSuccessor().Empty() {
					c.SetLeftSuccessor(node)
					break
				}
				c = c.LeftSuccessor()
			} else {
				if c.RightSuccessor().Empty() {
					c.SetRightSuccessor(node)
					break
				}
				c = c.RightSuccessor()
			}
		}
	}

	return nil
}

// leftSpine links n nodes bottom-up through their left links.
func leftSpine[C bifurcate.Coordinate[C]](n int, x nodeMaker[C]) error {
	if err := validateSize(MethodLeftSpine, n); err != nil {
		return err
	}
	var c C
	for i := n - 1; i >= 0; i-- {
		var empty C
		c = x.NewNode(i, c, empty)
	}
	if n > 0 {
		x.SetRoot(c)
	}

	return nil
}
