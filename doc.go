// Package lvseq is a library of generic, capability-parameterized algorithms
// for rearranging, copying, partitioning, merging and sorting sequences, plus
// the structurally analogous algorithms on linked and binary-tree coordinates.
//
// Every algorithm is written against the weakest position capability it
// needs and uses the least auxiliary memory the situation allows. When a
// temporary buffer cannot be obtained at the requested size the adaptive
// algorithms shrink it, down to nothing, and stay correct.
//
// Capability tiers (weakest to strongest):
//
//	Forward  ⊂  Bidirectional  ⊂  Indexed  ⊂  RandomAccess
//	         plus Readable / Writable (Mutable = both)
//
// Subpackages, leaves first:
//
//	integer/   - numeric primitives (halving, parity, gcd, count-down)
//	iterator/  - capability interfaces, ranges, slice positions, searching
//	memory/    - allocators and node counters
//	buffer/    - temporary buffer that halves its request on failure
//	copying/   - copy, select, split, combine, merge and swap of ranges
//	rearrange/ - reverse and rotate families with capability dispatch
//	partition/ - semistable, stable, buffered and iterative partitioning
//	merge/     - buffer-adaptive merge and sort
//	linked/    - linkers, split/merge/sort on links, SList and List
//	bifurcate/ - tree coordinates, traversal, rotating traversal, copy, erase
//	builder/   - deterministic fixtures for tests and benchmarks
//	cmd/lvseq  - command line driver
//
// Quick example:
//
//	xs := []int{0, 1, 2, 3, 4, 5}
//	f, l := iterator.Bounds(xs)
//	rearrange.Rotate[int](f, f.Offset(2), l)
//	// xs == [2 3 4 5 0 1]
//
// All algorithms are synchronous. Precondition violations are undefined
// behaviour: ranges, orderings and predicates are trusted, not checked.
package lvseq
