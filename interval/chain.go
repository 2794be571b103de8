// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"strings"

	"github.com/pkg/errors"
)

// Chain is a sequence of Segments in nondecreasing (start, end) order.
// Sortedness is enforced by Push; disjointness is not, so adjacent elements
// may overlap.  A Chain owns its segments: Segments() returns a copy, and the
// mutators never write into storage that a copy of the chain can see, so
// chains copied by plain assignment stay independent.
//
// The zero value is an empty chain.
type Chain struct {
	segs []Segment
}

// NewChain returns an empty chain.
func NewChain() Chain {
	return Chain{}
}

// ChainOf returns a chain holding a copy of segs.  It fails with
// ErrOutOfOrder on the first segment that sorts before its predecessor.
func ChainOf(segs ...Segment) (Chain, error) {
	for i := 1; i < len(segs); i++ {
		if segs[i].Less(segs[i-1]) {
			return Chain{}, errors.Wrapf(ErrOutOfOrder, "interval.ChainOf: %v after %v", segs[i], segs[i-1])
		}
	}
	return Chain{segs: append([]Segment(nil), segs...)}, nil
}

// Push appends s.  It fails with ErrOutOfOrder if the chain is nonempty and s
// compares less than the last segment; the chain is unchanged in that case.
//
// Push always reallocates, since spare capacity may be visible to a copy of
// the chain.  Use ChainOf to build a chain from many segments at once.
func (c *Chain) Push(s Segment) error {
	n := len(c.segs)
	if n > 0 && s.Less(c.segs[n-1]) {
		return errors.Wrapf(ErrOutOfOrder, "interval.Chain.Push: %v after %v", s, c.segs[n-1])
	}
	c.segs = append(c.segs[:n:n], s)
	return nil
}

// Empty returns true if the chain has no segments.
func (c Chain) Empty() bool { return len(c.segs) == 0 }

// Len returns the number of segments.
func (c Chain) Len() int { return len(c.segs) }

// At returns the i'th segment.  It panics if i is out of range, like a slice
// index.
func (c Chain) At(i int) Segment { return c.segs[i] }

// Segments returns a copy of the chain's segments.
func (c Chain) Segments() []Segment {
	return append([]Segment(nil), c.segs...)
}

// Clone returns a chain with its own copy of the segments.
func (c Chain) Clone() Chain {
	return Chain{segs: c.Segments()}
}

// Start returns the first segment's start.  ok is false if the chain is
// empty.
func (c Chain) Start() (pos PosType, ok bool) {
	if len(c.segs) == 0 {
		return 0, false
	}
	return c.segs[0].start, true
}

// End returns the last segment's end.  ok is false if the chain is empty.
//
// Since the chain is sorted by start, an earlier overlapping segment may end
// later than the last one; End still reports the last segment's end.
func (c Chain) End() (pos PosType, ok bool) {
	if len(c.segs) == 0 {
		return 0, false
	}
	return c.segs[len(c.segs)-1].end, true
}

// Envelope returns [Start(), End()].  ok is false if the chain is empty.
func (c Chain) Envelope() (env Segment, ok bool) {
	if len(c.segs) == 0 {
		return Segment{}, false
	}
	// The last start is >= the first start, so this is well formed.
	return Segment{start: c.segs[0].start, end: c.segs[len(c.segs)-1].end}, true
}

// Contains returns true if any segment contains pos.
func (c Chain) Contains(pos PosType) bool {
	for _, s := range c.segs {
		if s.Contains(pos) {
			return true
		}
	}
	return false
}

// SetStart moves the start of the chain to start.
//
// - If start <= Start(), the first segment is extended down to start.
// - Otherwise every leading segment whose own start is < start is dropped.
//   Segments are dropped whole, never clipped, so a segment straddling start
//   disappears, and the chain may end up empty.
//
// It fails with ErrInvalidRange if the chain is empty or start > End().
func (c *Chain) SetStart(start PosType) error {
	end, ok := c.End()
	if !ok {
		return errors.Wrapf(ErrInvalidRange, "interval.Chain.SetStart: empty chain")
	}
	if start > end {
		return errors.Wrapf(ErrInvalidRange, "interval.Chain.SetStart: start %d > end %d", start, end)
	}
	if start <= c.segs[0].start {
		c.segs = c.Segments()
		c.segs[0].start = start
		return nil
	}
	i := 0
	for i < len(c.segs) && c.segs[i].start < start {
		i++
	}
	c.segs = append([]Segment(nil), c.segs[i:]...)
	return nil
}

// SetEnd is the mirror of SetStart on the tail of the chain.
//
// - If end >= End(), the last segment is extended up to end.
// - Otherwise every trailing segment whose own end is > end is dropped whole.
//
// It fails with ErrInvalidRange if the chain is empty or end < Start().
func (c *Chain) SetEnd(end PosType) error {
	start, ok := c.Start()
	if !ok {
		return errors.Wrapf(ErrInvalidRange, "interval.Chain.SetEnd: empty chain")
	}
	if end < start {
		return errors.Wrapf(ErrInvalidRange, "interval.Chain.SetEnd: end %d < start %d", end, start)
	}
	last := len(c.segs) - 1
	if end >= c.segs[last].end {
		c.segs = c.Segments()
		c.segs[last].end = end
		return nil
	}
	n := len(c.segs)
	for n > 0 && c.segs[n-1].end > end {
		n--
	}
	c.segs = append([]Segment(nil), c.segs[:n]...)
	return nil
}

// Coverage returns the number of distinct positions covered by the chain.
func (c Chain) Coverage() uint64 {
	var total uint64
	for _, s := range c.Normalize().segs {
		total += uint64(s.end-s.start) + 1
	}
	return total
}

// Equal returns true if both chains hold the same segments in the same
// order.
func (c Chain) Equal(other Chain) bool {
	if len(c.segs) != len(other.segs) {
		return false
	}
	for i := range c.segs {
		if c.segs[i] != other.segs[i] {
			return false
		}
	}
	return true
}

// EqualSegment returns true if the chain consists of exactly s.
func (c Chain) EqualSegment(s Segment) bool {
	return len(c.segs) == 1 && c.segs[0] == s
}

// Compare orders chains lexicographically by their segments.  A chain that
// is a proper prefix of the other sorts first.
func (c Chain) Compare(other Chain) int {
	for i := 0; i < len(c.segs) && i < len(other.segs); i++ {
		if cmp := c.segs[i].Compare(other.segs[i]); cmp != 0 {
			return cmp
		}
	}
	switch {
	case len(c.segs) < len(other.segs):
		return -1
	case len(c.segs) > len(other.segs):
		return 1
	}
	return 0
}

// CompareSegment compares the chain's first segment with s.  An empty chain
// sorts before every segment.
func (c Chain) CompareSegment(s Segment) int {
	if len(c.segs) == 0 {
		return -1
	}
	return c.segs[0].Compare(s)
}

func (c Chain) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, s := range c.segs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
