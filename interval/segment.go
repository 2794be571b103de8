// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// PosType is the coordinate type of Segment and Chain.
type PosType uint32

// PosTypeMax is the maximum value that can be represented by a PosType.  It is
// a valid position; [PosTypeMax, PosTypeMax] is an ordinary one-base segment.
const PosTypeMax = math.MaxUint32

// Segment is a closed interval [start, end].  The zero value is the one-base
// segment [0, 0].  start <= end always holds for segments obtained from
// NewSegment and kept up to date through SetStart/SetEnd.
type Segment struct {
	start PosType
	end   PosType
}

// NewSegment returns the segment [start, end].  It fails with ErrInvalidRange
// if start > end.
func NewSegment(start, end PosType) (Segment, error) {
	if start > end {
		return Segment{}, errors.Wrapf(ErrInvalidRange, "interval.NewSegment: start %d > end %d", start, end)
	}
	return Segment{start: start, end: end}, nil
}

// Point returns the one-base segment [pos, pos].
func Point(pos PosType) Segment {
	return Segment{start: pos, end: pos}
}

// Start returns the first position of s.
func (s Segment) Start() PosType { return s.start }

// End returns the last position of s.
func (s Segment) End() PosType { return s.end }

// Empty always returns false; Segment has no empty state.  It exists to
// satisfy Span.
func (s Segment) Empty() bool { return false }

// Envelope returns s itself.
func (s Segment) Envelope() (Segment, bool) { return s, true }

// SetStart replaces the start of s.  It fails with ErrInvalidRange if start >
// s.End(), in which case s is unchanged.
func (s *Segment) SetStart(start PosType) error {
	if start > s.end {
		return errors.Wrapf(ErrInvalidRange, "interval.Segment.SetStart: start %d > end %d", start, s.end)
	}
	s.start = start
	return nil
}

// SetEnd replaces the end of s.  It fails with ErrInvalidRange if end <
// s.Start(), in which case s is unchanged.
func (s *Segment) SetEnd(end PosType) error {
	if end < s.start {
		return errors.Wrapf(ErrInvalidRange, "interval.Segment.SetEnd: end %d < start %d", end, s.start)
	}
	s.end = end
	return nil
}

// Length returns the number of positions in s, end - start + 1.  The one
// segment whose length doesn't fit in a PosType, [0, PosTypeMax], reports
// PosTypeMax.
func (s Segment) Length() PosType {
	diff := s.end - s.start
	if diff == PosTypeMax {
		return PosTypeMax
	}
	return diff + 1
}

// Contains returns true if start <= pos <= end.
func (s Segment) Contains(pos PosType) bool {
	return s.start <= pos && pos <= s.end
}

// Overlaps returns true if s and other share at least one position.  Touching
// endpoints count.
func (s Segment) Overlaps(other Segment) bool {
	return s.start <= other.end && other.start <= s.end
}

// StrictOverlaps is the same as Overlaps; a single segment has no gaps to be
// strict about.
func (s Segment) StrictOverlaps(other Segment) bool {
	return s.Overlaps(other)
}

// Adjacent returns true if s and other don't overlap but no position lies
// between them, e.g. [1, 5] and [6, 9].
func (s Segment) Adjacent(other Segment) bool {
	if s.end < other.start {
		return s.end+1 == other.start
	}
	if other.end < s.start {
		return other.end+1 == s.start
	}
	return false
}

// Intersect returns the positions s and other have in common.  ok is false if
// they don't overlap.
func (s Segment) Intersect(other Segment) (result Segment, ok bool) {
	result.start = maxPos(s.start, other.start)
	result.end = minPos(s.end, other.end)
	if result.start > result.end {
		return Segment{}, false
	}
	return result, true
}

// Union returns the smallest segment spanning s and other.  It is only
// defined when the two overlap; ok is false otherwise.  Use Chain.Union for
// disjoint inputs.
func (s Segment) Union(other Segment) (result Segment, ok bool) {
	if !s.Overlaps(other) {
		return Segment{}, false
	}
	return Segment{start: minPos(s.start, other.start), end: maxPos(s.end, other.end)}, true
}

// Compare orders segments lexicographically by (start, end).  It returns -1,
// 0 or 1.
func (s Segment) Compare(other Segment) int {
	switch {
	case s.start < other.start:
		return -1
	case s.start > other.start:
		return 1
	case s.end < other.end:
		return -1
	case s.end > other.end:
		return 1
	}
	return 0
}

// Less returns true if s sorts strictly before other.
func (s Segment) Less(other Segment) bool {
	return s.Compare(other) < 0
}

// IntersectChain returns the parts of c covered by s.  It is the mirror of
// Chain.IntersectSegment.
func (s Segment) IntersectChain(c Chain) (Chain, bool) {
	return c.IntersectSegment(s)
}

// UnionChain returns the normalized union of s and c.
func (s Segment) UnionChain(c Chain) (Chain, bool) {
	return c.UnionSegment(s)
}

// OverlapsChain is the loose overlap test against c's envelope.
func (s Segment) OverlapsChain(c Chain) bool {
	return c.OverlapsSegment(s)
}

// StrictOverlapsChain returns true if some element of c overlaps s.
func (s Segment) StrictOverlapsChain(c Chain) bool {
	return c.StrictOverlapsSegment(s)
}

func (s Segment) String() string {
	return fmt.Sprintf("[%d, %d]", s.start, s.end)
}

func minPos(a, b PosType) PosType {
	if a < b {
		return a
	}
	return b
}

func maxPos(a, b PosType) PosType {
	if a > b {
		return a
	}
	return b
}
