// Package iterator defines the position capability hierarchy every lvseq
// algorithm is parameterized over, the bounded and counted range forms, a
// slice-backed position family and the searching primitives shared by the
// higher layers.
//
// What:
//
//   - Traversal tiers as method-set interfaces:
//     Forward (Successor), Bidirectional (+Predecessor),
//     Indexed (+Offset, Distance), RandomAccess (Indexed + Bidirectional + Less).
//   - Access as separate interfaces: Readable (Source), Writable (Sink).
//   - Constraints for generic code (ReadableIterator, MutableBidirectional, ...)
//     that add `comparable`, so ranges can be tested for emptiness with ==.
//   - Slice, the random-access position over a Go slice, and the restricted
//     views ForwardSlice, BidirectionalSlice and IndexedSlice that expose
//     only the weaker tiers. The views exist so weaker algorithm variants
//     can be exercised and so dispatch can be observed.
//   - Searching: FindIf, quantifiers, CountIf, FindMismatch, Partitioned,
//     PartitionPointN, LowerBoundN, UpperBoundN, backward finds,
//     lexicographical equality and comparison.
//
// Conventions:
//
//   - A bounded range is [f, l); a counted range is (f, n) with n >= 0.
//   - Distances are int.
//   - Type parameter lists put the value type T first, so callers can write
//     FindIf[int](f, l, p) and let the position type be inferred.
//
// Complexity:
//
//   - Advance/Distance: O(1) for Indexed positions, O(n) otherwise.
//   - PartitionPointN, LowerBoundN, UpperBoundN: O(log n) predicate
//     applications, O(n) successor steps on Forward positions.
package iterator
