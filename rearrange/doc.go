// Package rearrange implements the reverse and rotate families, one variant
// per position capability, plus the dispatching entry points Reverse and
// Rotate that select the cheapest variant for the capability actually
// available.
//
// Reverse variants:
//
//   - ReverseNIndexed / ReverseIndexed: swap i with n-1-i.        O(n), O(1) space.
//   - ReverseBidirectional / ReverseNBidirectional: swap inward.  O(n), O(1) space.
//   - ReverseNForward: halve, reverse halves, swap halves.        O(n log n), O(log n) stack.
//   - ReverseNWithBuffer: copy out, reverse-copy back.            O(n), n buffer.
//   - ReverseNAdaptive: buffer when the call fits, else halve.    correct for any buffer.
//   - ReverseNWithTemporaryBuffer: adaptive over buffer.New.
//
// Rotate variants (rotate(f, m, l) moves [f, m) behind [m, l) and returns
// the new position of the old first element, f + (l - m)):
//
//   - RotateIndexedNontrivial / RotateRandomAccessNontrivial: gcd(m-f, l-m)
//     cycles resolved with CycleFrom; n + gcd moves, O(1) space.
//   - RotateBidirectionalNontrivial: three reversals; about 3n moves.
//   - RotateForwardNontrivial: repeated block swaps; about 3n moves.
//   - RotateWithBufferNontrivial (and Backward): n + (m-f) moves, buffer of m-f.
//   - RotatePartialNontrivial: a single swap of [m, l) to the front.
//
// Dispatch (Reverse, Rotate):
//
//	RandomAccess  -> cycles with position ordering
//	Indexed       -> cycles with index arithmetic
//	Bidirectional -> reversal based
//	Forward       -> block swap (rotate) / temporary buffer (reverse)
//
// Preconditions are trusted: f <= m <= l in the same range.
package rearrange
