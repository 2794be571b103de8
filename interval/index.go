// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"sort"

	itree "github.com/biogo/store/interval"
	"github.com/pkg/errors"
)

const maxInt = int(^uint(0) >> 1)

// treeSegment adapts a chain element to biogo's integer interval tree.  The
// tree uses half-open int ranges, so [start, end] is stored as
// [start, end+1).  On platforms with 32-bit int, segments ending at
// PosTypeMax are not representable and NewIndex rejects them.
type treeSegment struct {
	seg Segment
	// idx is the element's position in the source chain, and doubles as the
	// tree ID.
	idx int
}

func (t treeSegment) Overlap(r itree.IntRange) bool {
	return int(t.seg.start) < r.End && r.Start < int(t.seg.end)+1
}

func (t treeSegment) ID() uintptr { return uintptr(t.idx) }

func (t treeSegment) Range() itree.IntRange {
	return itree.IntRange{Start: int(t.seg.start), End: int(t.seg.end) + 1}
}

// Index answers strict overlap queries against a fixed chain in logarithmic
// time.  It is read-only once built, so concurrent queries are safe.
type Index struct {
	tree itree.IntTree
}

// NewIndex builds an Index over the elements of c.  Later changes to c are not
// reflected.
func NewIndex(c Chain) (*Index, error) {
	x := &Index{}
	for i, s := range c.segs {
		t := treeSegment{seg: s, idx: i}
		if uint64(s.end) >= uint64(maxInt) {
			return nil, errors.Wrapf(ErrInvalidRange, "interval.NewIndex: %v does not fit in int", s)
		}
		if err := x.tree.Insert(t, true); err != nil {
			return nil, errors.Wrapf(err, "interval.NewIndex: inserting %v", s)
		}
	}
	if len(c.segs) > 0 {
		x.tree.AdjustRanges()
	}
	return x, nil
}

// Len returns the number of indexed elements.
func (x *Index) Len() int {
	return x.tree.Len()
}

// Overlapping returns the indexed elements that overlap q, in chain order.
func (x *Index) Overlapping(q Segment) []Segment {
	if x.tree.Len() == 0 {
		return nil
	}
	hits := x.tree.Get(treeSegment{seg: q})
	if len(hits) == 0 {
		return nil
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID() < hits[j].ID() })
	result := make([]Segment, len(hits))
	for i, h := range hits {
		result[i] = h.(treeSegment).seg
	}
	return result
}

// StrictOverlaps returns true if some indexed element overlaps q.  It agrees
// with Chain.StrictOverlapsSegment on the indexed chain.
func (x *Index) StrictOverlaps(q Segment) bool {
	if x.tree.Len() == 0 {
		return false
	}
	found := false
	x.tree.DoMatching(func(itree.IntInterface) bool {
		found = true
		return true
	}, treeSegment{seg: q})
	return found
}
