// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"encoding/binary"

	farm "github.com/dgryski/go-farm"
)

// Hash returns a fingerprint of the chain's segments.  Equal chains have equal
// hashes, so (hash, chain) pairs can be used to bucket chains in a map.
func (c Chain) Hash() uint64 {
	buf := make([]byte, 8*len(c.segs))
	for i, s := range c.segs {
		binary.LittleEndian.PutUint32(buf[8*i:], uint32(s.start))
		binary.LittleEndian.PutUint32(buf[8*i+4:], uint32(s.end))
	}
	return farm.Hash64(buf)
}
