// SPDX-License-Identifier: MIT
// Package: lvseq/bifurcate
//
// coordinates.go - coordinate capabilities and the visit kinds.

package bifurcate

import "github.com/katalvlaran/lvseq/iterator"

// Coordinate is a position in a binary tree. The empty coordinate has no
// successors; its methods other than Empty must not be called.
type Coordinate[C any] interface {
	comparable
	Empty() bool
	LeftSuccessor() C
	RightSuccessor() C
}

// LinkedCoordinate can redirect its successors.
type LinkedCoordinate[C any] interface {
	Coordinate[C]
	SetLeftSuccessor(l C)
	SetRightSuccessor(r C)
}

// BidirectionalCoordinate can step to its predecessor. The predecessor of
// a root is empty.
type BidirectionalCoordinate[C any] interface {
	Coordinate[C]
	Predecessor() C
}

// ReadableCoordinate yields the value at a nonempty coordinate.
type ReadableCoordinate[C, T any] interface {
	Coordinate[C]
	iterator.Readable[T]
}

// ReadableBidirectional combines ReadableCoordinate and
// BidirectionalCoordinate.
type ReadableBidirectional[C, T any] interface {
	BidirectionalCoordinate[C]
	iterator.Readable[T]
}

// Visit is the phase in which a traversal reaches a node.
type Visit uint8

const (
	// Pre is the visit on the way down, before the left subtree.
	Pre Visit = iota
	// In is the visit between the left and the right subtree.
	In
	// Post is the visit on the way up, after the right subtree.
	Post
)

// String returns "pre", "in" or "post".
func (v Visit) String() string {
	switch v {
	case Pre:
		return "pre"
	case In:
		return "in"
	default:
		return "post"
	}
}

// HasLeftSuccessor reports whether the nonempty c has a left child.
func HasLeftSuccessor[C Coordinate[C]](c C) bool { return !c.LeftSuccessor().Empty() }

// HasRightSuccessor reports whether the nonempty c has a right child.
func HasRightSuccessor[C Coordinate[C]](c C) bool { return !c.RightSuccessor().Empty() }

// IsLeftSuccessor reports whether j is the left child of its predecessor,
// which must exist.
func IsLeftSuccessor[C BidirectionalCoordinate[C]](j C) bool {
	i := j.Predecessor()
	return HasLeftSuccessor(i) && i.LeftSuccessor() == j
}

// IsRightSuccessor reports whether j is the right child of its
// predecessor, which must exist.
func IsRightSuccessor[C BidirectionalCoordinate[C]](j C) bool {
	i := j.Predecessor()
	return HasRightSuccessor(i) && i.RightSuccessor() == j
}
