// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

// Span is the set of queries shared by Segment and Chain.
//
// The pairwise operations (Intersect, Union, Overlaps, StrictOverlaps) are not
// part of Span.  Each (receiver, operand) pairing has its own statically named
// method instead:
//
//   Segment.Intersect(Segment)      Segment.IntersectChain(Chain)
//   Chain.IntersectSegment(Segment) Chain.Intersect(Chain)
//
// and likewise for Union, Overlaps and StrictOverlaps.
type Span interface {
	// Contains returns true if pos is covered.
	Contains(pos PosType) bool
	// Empty returns true if no position is covered.
	Empty() bool
	// Envelope returns the smallest segment containing every covered
	// position.  ok is false iff Empty().
	Envelope() (env Segment, ok bool)
}

var (
	_ Span = Segment{}
	_ Span = Chain{}
)

// EnvelopesOverlap is the loose overlap test between any two spans: it
// compares envelopes only.  Empty spans overlap nothing.
func EnvelopesOverlap(a, b Span) bool {
	ea, ok := a.Envelope()
	if !ok {
		return false
	}
	eb, ok := b.Envelope()
	if !ok {
		return false
	}
	return ea.Overlaps(eb)
}
