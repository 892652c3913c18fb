// SPDX-License-Identifier: MIT
// Package: lvseq/bifurcate
//
// stree.go - binary tree without parent links.

package bifurcate

// SNode is a node of an STree and its coordinate type. The nil *SNode is
// the empty coordinate.
type SNode[T any] struct {
	value       T
	left, right *SNode[T]
}

// Empty reports whether n is the empty coordinate.
func (n *SNode[T]) Empty() bool { return n == nil }

// LeftSuccessor returns the left child.
func (n *SNode[T]) LeftSuccessor() *SNode[T] { return n.left }

// RightSuccessor returns the right child.
func (n *SNode[T]) RightSuccessor() *SNode[T] { return n.right }

// SetLeftSuccessor relinks the left child.
func (n *SNode[T]) SetLeftSuccessor(l *SNode[T]) { n.left = l }

// SetRightSuccessor relinks the right child.
func (n *SNode[T]) SetRightSuccessor(r *SNode[T]) { n.right = r }

// Source returns the stored value.
func (n *SNode[T]) Source() T { return n.value }

// Sink stores x.
func (n *SNode[T]) Sink(x T) { n.value = x }

// STree owns the nodes reachable from its root. Nodes are created with
// NewNode and attached with SetRoot. STree is not safe for concurrent use.
type STree[T any] struct {
	root *SNode[T]
	cfg  config
}

// NewSTree returns an empty tree.
func NewSTree[T any](opts ...Option) *STree[T] {
	return &STree[T]{cfg: newConfig(opts)}
}

// NewNode creates a node holding v with children l and r. The node belongs
// to x once it is reachable from the root.
func (x *STree[T]) NewNode(v T, l, r *SNode[T]) *SNode[T] {
	x.cfg.observer.Acquired(1)
	return &SNode[T]{value: v, left: l, right: r}
}

func (x *STree[T]) release(n *SNode[T]) {
	*n = SNode[T]{}
	x.cfg.observer.Released(1)
}

// SetRoot erases the current nodes and makes c the root.
func (x *STree[T]) SetRoot(c *SNode[T]) {
	x.Erase()
	x.root = c
}

// Root returns the root coordinate.
func (x *STree[T]) Root() *SNode[T] { return x.root }

// Empty reports whether the tree has no nodes.
func (x *STree[T]) Empty() bool { return x.root == nil }

// Erase releases every node.
func (x *STree[T]) Erase() {
	Erase(x.root, x.release)
	x.root = nil
}

// Clone returns a copy with distinct nodes and the same options.
func (x *STree[T]) Clone() *STree[T] {
	y := &STree[T]{cfg: x.cfg}
	y.root = Copy(x.root, func(src, l, r *SNode[T]) *SNode[T] {
		return y.NewNode(src.value, l, r)
	})
	return y
}

// Weight counts the nodes with a rotating traversal.
func (x *STree[T]) Weight() int { return WeightRotating(x.root) }

// Height returns the number of nodes on the longest root-to-leaf path.
func (x *STree[T]) Height() int { return HeightRecursive(x.root) }

// Traverse calls proc for the pre, in and post visit of every node.
func (x *STree[T]) Traverse(proc func(Visit, *SNode[T])) {
	if x.Empty() {
		return
	}
	TraverseNonemptyRecursive(x.root, proc)
}

// Equal reports whether x and y have the same shape and eq-equal values.
func (x *STree[T]) Equal(y *STree[T], eq func(a, b T) bool) bool {
	if x.Empty() || y.Empty() {
		return x.Empty() == y.Empty()
	}
	return EquivalentNonempty(x.root, y.root, eq)
}

// Less reports whether x precedes y in preorder-lexicographic order under
// less, shape breaking ties.
func (x *STree[T]) Less(y *STree[T], less func(a, b T) bool) bool {
	if x.Empty() {
		return !y.Empty()
	}
	if y.Empty() {
		return false
	}
	return CompareNonempty(x.root, y.root, threeWay(less)) < 0
}

// String formats the tree as an s-expression.
func (x *STree[T]) String() string { return Format[T](x.root) }

// Values returns the values in the order of the given visit.
func (x *STree[T]) Values(v Visit) []T {
	var out []T
	x.Traverse(func(w Visit, n *SNode[T]) {
		if w == v {
			out = append(out, n.value)
		}
	})
	return out
}
