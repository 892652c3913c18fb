// Package builder produces deterministic input fixtures for the lvseq
// algorithms: integer sequences with a chosen order profile, and binary
// trees of chosen shapes.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds the RNG, the value range, the distinct flag
//     and the options passed on to bifurcate containers.
//   - Sequences:
//     – Iota:      0, 1, …, n-1.
//     – Random:    n draws from the value range (distinct with WithDistinct).
//     – Sorted:    Random in non-decreasing order.
//     – Reversed:  Random in non-increasing order.
//     – FewUnique: n draws from only k values, to stress stability.
//   - Trees (bifurcate.Tree and bifurcate.STree):
//     – CompleteTree / CompleteSTree: every level full, values in
//     breadth-first order from 1.
//     – RandomTree / RandomSTree: the shape of a binary search tree grown
//     from a random permutation of 0..n-1.
//     – LeftSpine / LeftSpineSTree: a chain of left children, the deepest
//     tree of its weight.
//
// Guarantees:
//
//   - Determinism: the same arguments, options and seed give the same
//     fixture.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors.
//   - Constructors never panic; they return sentinel errors (ErrBadSize,
//     ErrNeedRandSource) wrapped with the constructor name.
//   - No recursion: tree builders work bottom-up or by iterative insertion,
//     so spines of any length are safe.
package builder
