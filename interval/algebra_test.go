// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectChain(t *testing.T) {
	tests := []struct {
		a, b Chain
		want Chain
		ok   bool
	}{
		{
			chain(t, 1, 5, 10, 15, 20, 25),
			chain(t, 5, 12, 18, 22, 30, 35),
			chain(t, 5, 5, 10, 12, 20, 22),
			true,
		},
		{
			chain(t, 1, 5, 10, 15, 20, 25),
			chain(t, 30, 35, 40, 45),
			NewChain(),
			false,
		},
		{
			chain(t, 1, 10),
			chain(t, 2, 3, 5, 6, 8, 12),
			chain(t, 2, 3, 5, 6, 8, 10),
			true,
		},
		// Equal ends: both orders must agree.
		{
			chain(t, 1, 5, 7, 9),
			chain(t, 3, 5, 6, 9),
			chain(t, 3, 5, 7, 9),
			true,
		},
		{NewChain(), chain(t, 1, 5), NewChain(), false},
	}
	for _, tt := range tests {
		got, ok := tt.a.Intersect(tt.b)
		assert.Equal(t, tt.ok, ok, "%v & %v", tt.a, tt.b)
		assert.True(t, got.Equal(tt.want), "%v & %v: got %v, want %v", tt.a, tt.b, got, tt.want)

		got, ok = tt.b.Intersect(tt.a)
		assert.Equal(t, tt.ok, ok, "%v & %v", tt.b, tt.a)
		assert.True(t, got.Equal(tt.want), "%v & %v: got %v, want %v", tt.b, tt.a, got, tt.want)
	}
}

// randomChain returns a normalized chain of up to n segments within [0, 1000).
func randomChain(t *testing.T, n int) Chain {
	c := NewChain()
	pos := PosType(rand.Intn(20))
	for i := 0; i < n && pos < 1000; i++ {
		end := pos + PosType(rand.Intn(30))
		require.NoError(t, c.Push(seg(t, pos, end)))
		pos = end + 2 + PosType(rand.Intn(30))
	}
	return c
}

func TestIntersectChainRandom(t *testing.T) {
	for iter := 0; iter < 200; iter++ {
		a := randomChain(t, rand.Intn(20))
		b := randomChain(t, rand.Intn(20))
		got, ok := a.Intersect(b)
		expect.EQ(t, ok, !got.Empty())
		// Sorted output.
		for i := 1; i < got.Len(); i++ {
			expect.False(t, got.At(i).Less(got.At(i-1)), "%v", got)
		}
		for pos := PosType(0); pos < 1100; pos++ {
			expect.EQ(t, got.Contains(pos), a.Contains(pos) && b.Contains(pos), "%v & %v at %d", a, b, pos)
		}
	}
}

func TestIntersectSegment(t *testing.T) {
	c := chain(t, 1, 5, 10, 15, 20, 25)
	tests := []struct {
		s    Segment
		want Chain
		ok   bool
	}{
		{seg(t, 3, 14), chain(t, 3, 5, 10, 14), true},
		{seg(t, 0, 30), c, true},
		{seg(t, 16, 18), NewChain(), false},
		{seg(t, 12, 12), chain(t, 12, 12), true},
		{seg(t, 5, 20), chain(t, 5, 5, 10, 15, 20, 20), true},
		{seg(t, 26, 30), NewChain(), false},
	}
	for _, tt := range tests {
		got, ok := c.IntersectSegment(tt.s)
		assert.Equal(t, tt.ok, ok, "%v & %v", c, tt.s)
		assert.True(t, got.Equal(tt.want), "%v & %v: got %v, want %v", c, tt.s, got, tt.want)

		// Segment-vs-chain mirrors chain-vs-segment.
		got, ok = tt.s.IntersectChain(c)
		assert.Equal(t, tt.ok, ok, "%v & %v", tt.s, c)
		assert.True(t, got.Equal(tt.want), "%v & %v: got %v, want %v", tt.s, c, got, tt.want)
	}

	_, ok := NewChain().IntersectSegment(seg(t, 1, 2))
	assert.False(t, ok)
}

func TestUnion(t *testing.T) {
	tests := []struct {
		a, b Chain
		want Chain
		ok   bool
	}{
		{
			chain(t, 1, 5, 10, 15, 20, 25),
			chain(t, 5, 12, 18, 22, 30, 35),
			chain(t, 1, 15, 18, 25, 30, 35),
			true,
		},
		// Adjacent elements merge.
		{
			chain(t, 1, 5, 11, 15),
			chain(t, 6, 10),
			chain(t, 1, 15),
			true,
		},
		{
			chain(t, 1, 5),
			chain(t, 7, 10),
			chain(t, 1, 5, 7, 10),
			true,
		},
		{NewChain(), chain(t, 3, 4), chain(t, 3, 4), true},
		{NewChain(), NewChain(), NewChain(), false},
		{
			chain(t, 0, 10, PosTypeMax-1, PosTypeMax),
			chain(t, 5, 20, PosTypeMax, PosTypeMax),
			chain(t, 0, 20, PosTypeMax-1, PosTypeMax),
			true,
		},
	}
	for _, tt := range tests {
		got, ok := tt.a.Union(tt.b)
		assert.Equal(t, tt.ok, ok, "%v | %v", tt.a, tt.b)
		assert.True(t, got.Equal(tt.want), "%v | %v: got %v, want %v", tt.a, tt.b, got, tt.want)
		assert.True(t, got.Normalized(), "%v", got)
		got, ok = tt.b.Union(tt.a)
		assert.Equal(t, tt.ok, ok, "%v | %v", tt.b, tt.a)
		assert.True(t, got.Equal(tt.want), "%v | %v: got %v, want %v", tt.b, tt.a, got, tt.want)
	}
}

func TestUnionSegment(t *testing.T) {
	c := chain(t, 1, 5, 10, 15, 20, 25)
	got, ok := c.UnionSegment(seg(t, 4, 11))
	assert.True(t, ok)
	assert.True(t, got.Equal(chain(t, 1, 15, 20, 25)), "got %v", got)

	got, ok = seg(t, 16, 19).UnionChain(c)
	assert.True(t, ok)
	assert.True(t, got.Equal(chain(t, 1, 5, 10, 25)), "got %v", got)

	got, ok = NewChain().UnionSegment(seg(t, 7, 8))
	assert.True(t, ok)
	assert.True(t, got.EqualSegment(seg(t, 7, 8)))

	// The inputs are left alone.
	assert.True(t, c.Equal(chain(t, 1, 5, 10, 15, 20, 25)))
}

func TestNormalize(t *testing.T) {
	c := chain(t, 1, 5, 3, 8, 9, 9, 12, 14)
	assert.False(t, c.Normalized())
	n := c.Normalize()
	assert.True(t, n.Equal(chain(t, 1, 9, 12, 14)), "got %v", n)
	assert.True(t, n.Normalized())
	assert.Equal(t, 4, c.Len())

	assert.True(t, NewChain().Normalized())
	assert.True(t, chain(t, 1, 5, 7, 9).Normalized())
	assert.False(t, chain(t, 1, 5, 6, 9).Normalized())
	assert.False(t, chain(t, 1, PosTypeMax, PosTypeMax, PosTypeMax).Normalized())
}

func TestOverlapSegment(t *testing.T) {
	c := chain(t, 1, 5, 10, 15, 20, 25)
	tests := []struct {
		s             Segment
		loose, strict bool
	}{
		{seg(t, 1, 10), true, true},
		// In a gap: only the envelope overlaps.
		{seg(t, 7, 9), true, false},
		{seg(t, 16, 18), true, false},
		{seg(t, 25, 29), true, true},
		{seg(t, 26, 29), false, false},
		{seg(t, 0, 0), false, false},
		{seg(t, 0, 30), true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.loose, c.OverlapsSegment(tt.s), "loose %v", tt.s)
		assert.Equal(t, tt.loose, tt.s.OverlapsChain(c), "loose %v", tt.s)
		assert.Equal(t, tt.strict, c.StrictOverlapsSegment(tt.s), "strict %v", tt.s)
		assert.Equal(t, tt.strict, tt.s.StrictOverlapsChain(c), "strict %v", tt.s)
		assert.Equal(t, tt.loose, EnvelopesOverlap(c, tt.s), "envelope %v", tt.s)
	}

	c = chain(t, 2, 5, 10, 15, 20, 25)
	assert.True(t, c.StrictOverlapsSegment(seg(t, 1, 10)))
	assert.False(t, c.StrictOverlapsSegment(seg(t, 7, 9)))
	assert.True(t, c.StrictOverlapsSegment(seg(t, 1, 30)))

	var empty Chain
	assert.False(t, empty.OverlapsSegment(seg(t, 0, PosTypeMax)))
	assert.False(t, empty.StrictOverlapsSegment(seg(t, 0, PosTypeMax)))
	assert.False(t, EnvelopesOverlap(empty, seg(t, 0, PosTypeMax)))
}

func TestOverlapChain(t *testing.T) {
	c1 := chain(t, 1, 5, 10, 15, 20, 25)
	tests := []struct {
		c2            Chain
		loose, strict bool
	}{
		{chain(t, 4, 7, 17, 23), true, true},
		{chain(t, 7, 9, 16, 18, 26, 29), true, false},
		{chain(t, 26, 30), false, false},
		{NewChain(), false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.loose, c1.Overlaps(tt.c2), "loose %v", tt.c2)
		assert.Equal(t, tt.strict, c1.StrictOverlaps(tt.c2), "strict %v", tt.c2)
		assert.Equal(t, tt.strict, tt.c2.StrictOverlaps(c1), "strict %v", tt.c2)
	}
}
