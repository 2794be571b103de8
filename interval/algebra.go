// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

// appendOrdered appends s if that keeps the chain sorted.  Pairwise results
// computed from sorted, internally disjoint inputs always pass; with
// overlapping inputs a result that would break the ordering is not added.
func (c *Chain) appendOrdered(s Segment) {
	if n := len(c.segs); n > 0 && s.Less(c.segs[n-1]) {
		return
	}
	c.segs = append(c.segs, s)
}

// Intersect returns the positions covered by both chains, as the
// concatenation of the pairwise intersections of their elements.  ok is false
// if there are none.
//
// This is the usual sorted two-pointer merge: at each step the element with
// the smaller end is done and its cursor advances; on a tie the cursor into
// other advances.  Each input is expected to be internally non-overlapping;
// that isn't checked, and the result is incomplete when it doesn't hold.
func (c Chain) Intersect(other Chain) (result Chain, ok bool) {
	i, j := 0, 0
	for i < len(c.segs) && j < len(other.segs) {
		a, b := c.segs[i], other.segs[j]
		if s, ok := a.Intersect(b); ok {
			result.appendOrdered(s)
		}
		if a.end < b.end {
			i++
		} else {
			j++
		}
	}
	return result, !result.Empty()
}

// IntersectSegment returns the parts of the chain covered by other.  All
// elements up to and including the first one whose end is >= other.End() are
// examined; the sweep stops there.  ok is false if nothing is covered.
func (c Chain) IntersectSegment(other Segment) (result Chain, ok bool) {
	for _, s := range c.segs {
		if x, ok := s.Intersect(other); ok {
			result.appendOrdered(x)
		}
		if s.end >= other.end {
			break
		}
	}
	return result, !result.Empty()
}

// Union returns the positions covered by either chain as a normalized chain:
// overlapping and adjacent elements are merged.  ok is false only when both
// chains are empty.
func (c Chain) Union(other Chain) (result Chain, ok bool) {
	result = Chain{segs: coalesce(mergeSorted(c.segs, other.segs))}
	return result, !result.Empty()
}

// UnionSegment is Union with a one-element chain.  ok is always true.
func (c Chain) UnionSegment(other Segment) (result Chain, ok bool) {
	return c.Union(Chain{segs: []Segment{other}})
}

// Normalize returns a copy of the chain with overlapping and adjacent
// elements merged, e.g. {[1, 5], [3, 8], [9, 9], [12, 14]} becomes
// {[1, 9], [12, 14]}.
func (c Chain) Normalize() Chain {
	return Chain{segs: coalesce(append([]Segment(nil), c.segs...))}
}

// Normalized returns true if no two elements overlap or touch, i.e. if
// Normalize would return an identical chain.
func (c Chain) Normalized() bool {
	for i := 1; i < len(c.segs); i++ {
		if prev := c.segs[i-1]; prev.Overlaps(c.segs[i]) || prev.Adjacent(c.segs[i]) {
			return false
		}
	}
	return true
}

// OverlapsSegment is the loose overlap test: it treats the chain as its
// envelope [Start(), End()], so it returns true for a segment falling wholly
// inside a gap between two elements.  See StrictOverlapsSegment.
func (c Chain) OverlapsSegment(other Segment) bool {
	return EnvelopesOverlap(c, other)
}

// Overlaps returns true if some element of c loosely overlaps other, i.e.
// overlaps other's envelope.
func (c Chain) Overlaps(other Chain) bool {
	for _, s := range c.segs {
		if other.OverlapsSegment(s) {
			return true
		}
	}
	return false
}

// StrictOverlapsSegment returns true if some element of the chain overlaps
// other.
func (c Chain) StrictOverlapsSegment(other Segment) bool {
	for _, s := range c.segs {
		if s.start > other.end {
			break
		}
		if s.Overlaps(other) {
			return true
		}
	}
	return false
}

// StrictOverlaps returns true if some element of c overlaps some element of
// other.
func (c Chain) StrictOverlaps(other Chain) bool {
	for _, s := range c.segs {
		if other.StrictOverlapsSegment(s) {
			return true
		}
	}
	return false
}

// mergeSorted merges two sorted segment slices into a new sorted slice.
func mergeSorted(a, b []Segment) []Segment {
	merged := make([]Segment, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j].Less(a[i]) {
			merged = append(merged, b[j])
			j++
		} else {
			merged = append(merged, a[i])
			i++
		}
	}
	merged = append(merged, a[i:]...)
	return append(merged, b[j:]...)
}

// coalesce merges overlapping and adjacent runs of the sorted slice segs in
// place, and returns the shortened slice.
func coalesce(segs []Segment) []Segment {
	if len(segs) == 0 {
		return nil
	}
	out := segs[:1]
	for _, s := range segs[1:] {
		cur := &out[len(out)-1]
		if cur.Overlaps(s) || cur.Adjacent(s) {
			if s.end > cur.end {
				cur.end = s.end
			}
			continue
		}
		out = append(out, s)
	}
	return out
}
