// Package merge implements buffer-adaptive merging and sorting of ranges
// under a caller-supplied weak ordering.
//
// What:
//
//   - MergeNWithBuffer: copy the first range out, merge it back in place.
//   - MergeNAdaptive: merge with the buffer when the first range fits;
//     otherwise split the larger range at its midpoint, find the matching
//     split of the other by binary search, rotate the middle blocks and
//     merge the two independent halves recursively.
//   - SortNWithBuffer, SortNAdaptive, SortN: top-down merge sort.
//   - Sort: the slice entry point, with options for buffer size and the
//     allocator behind the temporary buffer.
//
// Stability: equivalent elements keep their original order; in a merge the
// element of the first range goes first.
//
// Adaptivity: every function is correct for any buffer size from 0 up.
// A buffer of ⌊n/2⌋ elements makes every merge a buffered one.
//
// Complexity (n elements, buffer of b):
//
//   - b >= n/2: O(n log n) comparisons and moves.
//   - b == 0:   O(n log n) comparisons, O(n log² n) moves.
//   - Recursion depth O(log n) for merge, O(log n) for sort.
package merge
