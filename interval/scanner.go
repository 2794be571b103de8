// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

// This file includes support for iterating over the positions covered by a
// Chain as maximal runs.
//
// For example, given the chain
//   {[5, 14], [7, 16], [20, 24]}
// the runs are
//   [5, 16] and [20, 24].
//
// Scanner can be used to iterate over these positions as follows:
//   s := NewScanner(chain)
//   var start, end PosType
//   for s.Scan(&start, &end, 21) {
//     for pos := start; pos <= end; pos++ {
//       fmt.Printf("%d ", pos)
//     }
//   }
//   fmt.Printf("\n")
// This prints "5 6 7 8 9 10 11 12 13 14 15 16 20 21 ".
// We can follow up with
//   for s.Scan(&start, &end, 30) {
//     ...
//   }
// to pick up where we left off and print "22 23 24 ".
//
// Note that limit is inclusive, unlike the half-open BED conventions; this
// lets a scan reach PosTypeMax.

// expsearchEnd performs "exponential search"
// (https://en.wikipedia.org/wiki/Exponential_search ) over segs, which must be
// normalized, for the first index >= idx whose segment ends at or after pos.
// It checks segs[idx], then segs[idx + 1], then segs[idx + 3], etc., and
// finishes with binary search.  It returns len(segs) if there is no such
// segment.
func expsearchEnd(segs []Segment, pos PosType, idx int) int {
	nextIncr := 1
	startIdx := idx
	endIdx := len(segs)
	for idx < endIdx {
		if segs[idx].end >= pos {
			endIdx = idx
			break
		}
		startIdx = idx + 1
		idx += nextIncr
		nextIncr *= 2
	}
	for startIdx < endIdx {
		midIdx := int(uint(startIdx+endIdx) >> 1)
		if segs[midIdx].end >= pos {
			endIdx = midIdx
		} else {
			startIdx = midIdx + 1
		}
	}
	return startIdx
}

// Scanner supports iteration over the runs of a Chain.
// Invariants:
//   segs is normalized
//   idx == len(segs), or segs[idx].Contains(pos)
type Scanner struct {
	segs []Segment
	idx  int
	pos  PosType
}

// NewScanner returns a Scanner positioned at the start of the first run of c.
// c itself is not retained.
func NewScanner(c Chain) Scanner {
	s := Scanner{segs: c.Normalize().segs}
	if len(s.segs) > 0 {
		s.pos = s.segs[0].start
	}
	return s
}

// Pos returns the next position to be iterated over.  ok is false if the scan
// is finished.
func (s *Scanner) Pos() (pos PosType, ok bool) {
	if s.idx >= len(s.segs) {
		return 0, false
	}
	return s.pos, true
}

// Scan yields the next run, clipped at limit (inclusive), in [*start, *end].
// It returns false, leaving *start and *end alone, once the next position to
// be iterated over exceeds limit or the chain is exhausted.  It is written so
// that the following loop visits all covered positions up to limit:
//   for s.Scan(&start, &end, limit) {
//     for pos := start; pos <= end; pos++ {
//       // ...do stuff with pos... (beware pos++ wrapping at PosTypeMax)
//     }
//   }
func (s *Scanner) Scan(start, end *PosType, limit PosType) bool {
	if s.idx >= len(s.segs) || s.pos > limit {
		return false
	}
	*start = s.pos
	runEnd := s.segs[s.idx].end
	if runEnd > limit {
		// limit < runEnd <= PosTypeMax, so this can't wrap.
		s.pos = limit + 1
		*end = limit
		return true
	}
	*end = runEnd
	s.idx++
	if s.idx < len(s.segs) {
		s.pos = s.segs[s.idx].start
	}
	return true
}

// Seek skips forward so that the next run starts at the first covered
// position >= pos.  It never moves backwards.
func (s *Scanner) Seek(pos PosType) {
	if s.idx >= len(s.segs) || pos <= s.pos {
		return
	}
	s.idx = expsearchEnd(s.segs, pos, s.idx)
	if s.idx < len(s.segs) {
		s.pos = maxPos(pos, s.segs[s.idx].start)
	}
}
