// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	c := chain(t, 1, 5, 10, 15, 20, 25)
	x, err := NewIndex(c)
	require.NoError(t, err)
	assert.Equal(t, 3, x.Len())

	assert.Equal(t, []Segment{seg(t, 1, 5), seg(t, 10, 15)}, x.Overlapping(seg(t, 4, 11)))
	assert.Equal(t, []Segment{seg(t, 20, 25)}, x.Overlapping(seg(t, 25, 25)))
	assert.Nil(t, x.Overlapping(seg(t, 16, 18)))
	assert.True(t, x.StrictOverlaps(seg(t, 5, 5)))
	assert.False(t, x.StrictOverlaps(seg(t, 6, 9)))

	empty, err := NewIndex(NewChain())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Overlapping(seg(t, 0, 100)))
	assert.False(t, empty.StrictOverlaps(seg(t, 0, 100)))
}

func TestIndexOverlappingElements(t *testing.T) {
	// Elements may overlap each other; all hits are reported in chain order.
	c := chain(t, 1, 20, 5, 6, 5, 9, 30, 40)
	x, err := NewIndex(c)
	require.NoError(t, err)
	assert.Equal(t, []Segment{seg(t, 1, 20), seg(t, 5, 6), seg(t, 5, 9)}, x.Overlapping(seg(t, 6, 8)))
	assert.Equal(t, []Segment{seg(t, 1, 20)}, x.Overlapping(seg(t, 15, 29)))
}

func TestIndexRandom(t *testing.T) {
	for iter := 0; iter < 100; iter++ {
		c := randomChain(t, rand.Intn(40))
		x, err := NewIndex(c)
		require.NoError(t, err)
		for q := 0; q < 50; q++ {
			a, b := PosType(rand.Intn(1100)), PosType(rand.Intn(1100))
			if a > b {
				a, b = b, a
			}
			query := seg(t, a, b)
			var want []Segment
			for _, s := range c.Segments() {
				if s.Overlaps(query) {
					want = append(want, s)
				}
			}
			assert.Equal(t, want, x.Overlapping(query), "%v vs %v", c, query)
			assert.Equal(t, c.StrictOverlapsSegment(query), x.StrictOverlaps(query), "%v vs %v", c, query)
		}
	}
}
