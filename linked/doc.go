// Package linked implements algorithms over positions whose successor can
// be changed, and two node containers built on them.
//
// A linker is a func(x, y I) that makes y the successor of x. The same
// algorithm relinks a singly linked chain with ForwardLinker and a doubly
// linked one with BidirectionalLinker. No algorithm in this package moves a
// value or allocates a node: ranges are rearranged by rewriting links only.
//
// Algorithms:
//
//   - SplitLinked: distribute a range into two chains by a position
//     predicate, keeping the relative order in each. A five-state machine
//     that only rewrites a link when the chain being grown changes.
//   - CombineLinkedNonempty / MergeLinkedNonempty: interleave two ranges by
//     a relation; ties take the node of the first range.
//   - SortLinkedNonemptyN: stable top-down merge sort by count.
//   - ReverseAppend, PartitionLinked, FindLast: building blocks.
//
// Containers:
//
//   - SList: nil-terminated singly linked list.
//   - List: doubly linked circular list with a dummy header node.
//
// Both containers report every node they create or free to a
// memory.Observer (WithObserver), so callers can check that relinking
// operations neither lose nor duplicate nodes.
package linked
