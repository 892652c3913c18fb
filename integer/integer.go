// SPDX-License-Identifier: MIT
// Package: lvseq/integer
//
// integer.go - numeric primitives over constraints.Integer.

package integer

import "golang.org/x/exp/constraints"

// Successor returns n+1.
func Successor[N constraints.Integer](n N) N { return n + 1 }

// Predecessor returns n-1.
func Predecessor[N constraints.Integer](n N) N { return n - 1 }

// Twice returns n+n.
func Twice[N constraints.Integer](n N) N { return n + n }

// HalfNonnegative returns n/2 for n >= 0 using a shift.
func HalfNonnegative[N constraints.Integer](n N) N { return n >> 1 }

// BinaryScaleDownNonnegative returns n/2^k for n >= 0.
func BinaryScaleDownNonnegative[N constraints.Integer](n N, k int) N { return n >> uint(k) }

// BinaryScaleUpNonnegative returns n*2^k for n >= 0.
func BinaryScaleUpNonnegative[N constraints.Integer](n N, k int) N { return n << uint(k) }

// Zero reports whether n == 0.
func Zero[N constraints.Integer](n N) bool { return n == 0 }

// One reports whether n == 1.
func One[N constraints.Integer](n N) bool { return n == 1 }

// Positive reports whether n > 0.
func Positive[N constraints.Integer](n N) bool { return n > 0 }

// Negative reports whether n < 0.
func Negative[N constraints.Integer](n N) bool { return n < 0 }

// Odd reports whether the lowest bit of n is set.
func Odd[N constraints.Integer](n N) bool { return n&1 != 0 }

// Even reports whether the lowest bit of n is clear.
func Even[N constraints.Integer](n N) bool { return n&1 == 0 }

// CountDown decrements *n and reports true, unless *n is already zero.
// It is the loop guard used by every counted-range algorithm:
//
//	for integer.CountDown(&n) { ... }
func CountDown[N constraints.Integer](n *N) bool {
	if *n == 0 {
		return false
	}
	*n--
	return true
}

// Gcd returns the greatest common divisor of a and b by Euclid's remainder
// algorithm. Gcd(0, 0) is 0. Negative inputs are folded to their magnitude.
func Gcd[N constraints.Integer](a, b N) N {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
