// SPDX-License-Identifier: MIT
// Package: lvseq/bifurcate
//
// tree.go - binary tree with parent links.

package bifurcate

// Node is a node of a Tree and its coordinate type. The nil *Node is the
// empty coordinate.
type Node[T any] struct {
	value               T
	left, right, parent *Node[T]
}

// Empty reports whether n is the empty coordinate.
func (n *Node[T]) Empty() bool { return n == nil }

// LeftSuccessor returns the left child.
func (n *Node[T]) LeftSuccessor() *Node[T] { return n.left }

// RightSuccessor returns the right child.
func (n *Node[T]) RightSuccessor() *Node[T] { return n.right }

// Predecessor returns the parent, or nil at a root.
func (n *Node[T]) Predecessor() *Node[T] { return n.parent }

// SetLeftSuccessor relinks the left child and points its parent at n.
func (n *Node[T]) SetLeftSuccessor(l *Node[T]) {
	n.left = l
	if l != nil {
		l.parent = n
	}
}

// SetRightSuccessor relinks the right child and points its parent at n.
func (n *Node[T]) SetRightSuccessor(r *Node[T]) {
	n.right = r
	if r != nil {
		r.parent = n
	}
}

// Source returns the stored value.
func (n *Node[T]) Source() T { return n.value }

// Sink stores x.
func (n *Node[T]) Sink(x T) { n.value = x }

// Tree owns the nodes reachable from its root and keeps every child's
// parent link pointing at the node that links to it. Tree is not safe for
// concurrent use.
type Tree[T any] struct {
	root *Node[T]
	cfg  config
}

// NewTree returns an empty tree.
func NewTree[T any](opts ...Option) *Tree[T] {
	return &Tree[T]{cfg: newConfig(opts)}
}

// NewNode creates a parentless node holding v and adopts l and r as its
// children.
func (x *Tree[T]) NewNode(v T, l, r *Node[T]) *Node[T] {
	n := x.rawNode(v, nil, nil)
	n.SetLeftSuccessor(l)
	n.SetRightSuccessor(r)
	return n
}

// rawNode creates a node without touching the predecessors of l and r.
func (x *Tree[T]) rawNode(v T, l, r *Node[T]) *Node[T] {
	x.cfg.observer.Acquired(1)
	return &Node[T]{value: v, left: l, right: r}
}

func (x *Tree[T]) release(n *Node[T]) {
	*n = Node[T]{}
	x.cfg.observer.Released(1)
}

// SetRoot erases the current nodes and makes c the root.
func (x *Tree[T]) SetRoot(c *Node[T]) {
	x.Erase()
	if c != nil {
		c.parent = nil
	}
	x.root = c
}

// Root returns the root coordinate.
func (x *Tree[T]) Root() *Node[T] { return x.root }

// Empty reports whether the tree has no nodes.
func (x *Tree[T]) Empty() bool { return x.root == nil }

// Erase releases every node.
func (x *Tree[T]) Erase() {
	Erase(x.root, x.release)
	x.root = nil
}

// Clone returns a copy with distinct nodes and the same options.
func (x *Tree[T]) Clone() *Tree[T] {
	y := &Tree[T]{cfg: x.cfg}
	y.root = Copy(x.root, func(src, l, r *Node[T]) *Node[T] {
		return y.rawNode(src.value, l, r)
	})
	return y
}

// Weight counts the nodes.
func (x *Tree[T]) Weight() int { return Weight(x.root) }

// Height returns the number of nodes on the longest root-to-leaf path.
func (x *Tree[T]) Height() int { return Height(x.root) }

// Traverse calls proc for the pre, in and post visit of every node,
// without recursion.
func (x *Tree[T]) Traverse(proc func(Visit, *Node[T])) { Traverse(x.root, proc) }

// Values returns the values in the order of the given visit.
func (x *Tree[T]) Values(v Visit) []T {
	var out []T
	x.Traverse(func(w Visit, n *Node[T]) {
		if w == v {
			out = append(out, n.value)
		}
	})
	return out
}

// Equal reports whether x and y have the same shape and eq-equal values.
func (x *Tree[T]) Equal(y *Tree[T], eq func(a, b T) bool) bool {
	return Equivalent(x.root, y.root, eq)
}

// Less reports whether x precedes y in preorder-lexicographic order under
// less, shape breaking ties.
func (x *Tree[T]) Less(y *Tree[T], less func(a, b T) bool) bool {
	return Compare(x.root, y.root, less)
}

// String formats the tree as an s-expression.
func (x *Tree[T]) String() string { return Format[T](x.root) }
