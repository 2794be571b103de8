// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/segchain/interval"
)

// singleton wraps the result of a Segment-vs-Segment operation.
func singleton(s interval.Segment, ok bool) (interval.Chain, bool) {
	if !ok {
		return interval.Chain{}, false
	}
	c := interval.NewChain()
	if err := c.Push(s); err != nil {
		log.Panicf("push into empty chain: %v", err)
	}
	return c, true
}

func intersect(a, b operand) (interval.Chain, bool) {
	log.Debug.Printf("intersect %s %v with %s %v", a.kind(), a.chain, b.kind(), b.chain)
	switch {
	case a.isSegment() && b.isSegment():
		return singleton(a.segment().Intersect(b.segment()))
	case a.isSegment():
		return a.segment().IntersectChain(b.chain)
	case b.isSegment():
		return a.chain.IntersectSegment(b.segment())
	}
	return a.chain.Intersect(b.chain)
}

func union(a, b operand) (interval.Chain, bool) {
	log.Debug.Printf("union %s %v with %s %v", a.kind(), a.chain, b.kind(), b.chain)
	switch {
	case a.isSegment() && b.isSegment():
		return singleton(a.segment().Union(b.segment()))
	case a.isSegment():
		return a.segment().UnionChain(b.chain)
	case b.isSegment():
		return a.chain.UnionSegment(b.segment())
	}
	return a.chain.Union(b.chain)
}

func overlap(a, b operand, strict bool) bool {
	log.Debug.Printf("overlap(strict=%v) %s %v with %s %v", strict, a.kind(), a.chain, b.kind(), b.chain)
	switch {
	case a.isSegment() && b.isSegment():
		if strict {
			return a.segment().StrictOverlaps(b.segment())
		}
		return a.segment().Overlaps(b.segment())
	case a.isSegment():
		if strict {
			return a.segment().StrictOverlapsChain(b.chain)
		}
		return a.segment().OverlapsChain(b.chain)
	case b.isSegment():
		if strict {
			return a.chain.StrictOverlapsSegment(b.segment())
		}
		return a.chain.OverlapsSegment(b.segment())
	}
	if strict {
		return a.chain.StrictOverlaps(b.chain)
	}
	return a.chain.Overlaps(b.chain)
}
