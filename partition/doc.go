// Package partition rearranges a range so that every element failing a
// predicate p precedes every element satisfying it, and returns the
// partition point: the first position whose element satisfies p.
//
// Variants:
//
//   - Semistable: one forward pass; the false side keeps its order.
//   - Bidirectional, Forward, SingleCycle, Sentinel, BidirectionalUnguarded,
//     Indexed: move-count optimizations of the same idea; no order kept.
//   - StableWithBuffer: one pass through a buffer of l-f elements.
//   - StableN / Stable: divide and conquer with rotations; O(n log n) moves,
//     no buffer, O(log n) recursion.
//   - StableNAdaptive / StableAdaptive: divide and conquer that switches to
//     the buffer whenever a subproblem fits in it.
//   - StableIterative: the balanced reduction of singleton partitions driven
//     by a 64-slot binary counter; no recursion.
//   - Partition: dispatch to the cheapest unstable variant for the
//     capability of the positions.
//
// The stable variants return a Bounded range (partition point, end of
// range) where the recursion needs the end, and a position otherwise.
//
// Convention: false elements go first. This differs from
// copying.PartitionCopy, which writes true elements to a separate output.
package partition
