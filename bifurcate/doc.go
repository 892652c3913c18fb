// Package bifurcate implements algorithms over binary tree coordinates and
// two node-based tree containers.
//
// A coordinate is a nil-able node position with a left and a right
// successor. Coordinates that also expose their predecessor (the parent)
// support the visit automaton, which walks a tree in pre, in and post
// order with no stack and no recursion:
//
//   - TraverseStep, Traverse, TraverseNonempty, Reachable, Weight, Height.
//   - Isomorphic, Equivalent, Compare, ShapeCompare: two trees stepped in
//     lockstep.
//
// Coordinates with settable links support algorithms that borrow the
// tree's own link fields as temporary storage:
//
//   - TreeRotate / TraverseRotating: Lindstrom's link-rotation traversal.
//     Every node is visited three times and the shape is restored when the
//     traversal returns. Parent links are not maintained during the walk,
//     so use it on trees without them (STree).
//   - Copy: Lee's copy. The pending-work stack is threaded through the
//     right links of the new nodes; each new node's left link points at
//     its source node until the node is expanded.
//   - Erase: the nodes still to delete are chained through left links.
//
// Recursive variants (WeightRecursive, HeightRecursive,
// TraverseNonemptyRecursive, EquivalentNonempty, CompareNonempty) need
// only the two successors and use O(height) stack.
//
// Containers STree (no parent links) and Tree (parent links kept in step
// with the successor links) report node creation and release to a
// memory.Observer. Parse and Format convert trees to and from
// s-expressions such as (1 (2 (4) (5)) (3)).
package bifurcate
