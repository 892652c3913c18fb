// Package buffer implements the temporary buffer used by the adaptive
// reverse, partition, merge and sort algorithms.
//
// A Temporary is requested for n elements. If the allocator refuses, the
// request is halved and retried until an allocation succeeds or the request
// reaches zero; a zero-length buffer is a valid result and every adaptive
// algorithm stays correct with it. The shrink is never reported as an error.
// Callers that want to see it install a hook with WithOnShrink.
//
// Lifecycle:
//
//	buf := buffer.New[int](n)
//	defer buf.Release()
//	f, l := buf.Bounds()
//
// Release zeroes the elements (dropping references held by T) and returns
// the storage to the allocator. A Temporary must not escape the call that
// created it.
//
// Complexity: New performs at most ⌊log2 n⌋+2 allocation attempts.
package buffer
