// Package memory provides the raw storage primitives consumed by the
// temporary buffer and by node-based containers: an Allocator that acquires
// and releases storage for k elements, a heap allocator, a budget-limited
// allocator that fails like an exhausted system would, and Observer/Counter
// for accounting live nodes without global state.
//
// Errors:
//
//   - ErrAllocationFailed - the allocator could not provide the storage.
//     Temporary buffers absorb it by shrinking the request; nothing in the
//     algorithm packages surfaces it to callers.
package memory
