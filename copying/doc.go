// Package copying moves elements between ranges: plain, bounded, counted,
// backward and reversed copies; selection, split and partition copies;
// combine and merge copies (forward and backward); fills; and the swap
// range family used by rotation.
//
// Aliasing:
//
//   - Forward copies allow the output to overlap the input only when the
//     output starts at or before the input.
//   - Backward copies allow the output to overlap only when it ends at or
//     after the input.
//   - Swap ranges require disjoint ranges.
//
// Violations are undefined behaviour, not detected errors.
//
// Merge stability: MergeCopy emits the element of the first range whenever
// the second range's element does not strictly precede it, so equivalent
// elements keep first-range-first order. The backward variants preserve the
// same result order.
//
// Selection conventions: SplitCopy and PartitionCopy send the elements that
// satisfy the predicate to the "true" output and all others to the "false"
// output, each in original order.
package copying
