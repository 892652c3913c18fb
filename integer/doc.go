// Package integer provides the numeric primitives the sequence algorithms
// consume for counts and distances: successor and predecessor, doubling and
// halving, parity and sign tests, the greatest common divisor and the
// count-down loop helper.
//
// All functions are generic over golang.org/x/exp/constraints.Integer and
// are trivially inlinable. None of them check for overflow.
package integer
