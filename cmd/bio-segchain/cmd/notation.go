// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/segchain/interval"
	"github.com/pkg/errors"
)

// parsePos parses a single decimal position.
func parsePos(s string) (interval.PosType, error) {
	pos, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errors.Errorf("invalid position %q", s)
	}
	return interval.PosType(pos), nil
}

// parseSegment parses a segment of one of the forms
//   [start]-[end]
//   [pos]
// Both bounds are inclusive.
func parseSegment(s string) (interval.Segment, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return interval.Segment{}, errors.Errorf("empty segment")
	}
	dashPos := strings.IndexByte(s, '-')
	if dashPos == -1 {
		pos, err := parsePos(s)
		if err != nil {
			return interval.Segment{}, err
		}
		return interval.Point(pos), nil
	}
	start, err := parsePos(s[:dashPos])
	if err != nil {
		return interval.Segment{}, errors.Wrapf(err, "segment %q", s)
	}
	end, err := parsePos(s[dashPos+1:])
	if err != nil {
		return interval.Segment{}, errors.Wrapf(err, "segment %q", s)
	}
	seg, err := interval.NewSegment(start, end)
	if err != nil {
		return interval.Segment{}, errors.Wrapf(err, "segment %q", s)
	}
	return seg, nil
}

// parseChain parses a comma-separated list of segments, e.g.
// "1-5,10-15,20-25".  The empty string is the empty chain.
func parseChain(s string) (interval.Chain, error) {
	c := interval.NewChain()
	if strings.TrimSpace(s) == "" {
		return c, nil
	}
	for _, tok := range strings.Split(s, ",") {
		seg, err := parseSegment(tok)
		if err != nil {
			return interval.Chain{}, err
		}
		if err := c.Push(seg); err != nil {
			return interval.Chain{}, errors.Wrapf(err, "chain %q", s)
		}
	}
	return c, nil
}

// formatSegment is the inverse of parseSegment; it always uses the
// "start-end" form.
func formatSegment(s interval.Segment) string {
	return strconv.FormatUint(uint64(s.Start()), 10) + "-" + strconv.FormatUint(uint64(s.End()), 10)
}

// formatChain is the inverse of parseChain.
func formatChain(c interval.Chain) string {
	parts := make([]string, c.Len())
	for i := range parts {
		parts[i] = formatSegment(c.At(i))
	}
	return strings.Join(parts, ",")
}

// formatHash renders a chain fingerprint as fixed-width hex.
func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// operand is a parsed command-line argument.  Arguments holding exactly one
// segment are Segments; all others are Chains.
type operand struct {
	chain interval.Chain
}

func parseOperand(s string) (operand, error) {
	c, err := parseChain(s)
	if err != nil {
		return operand{}, err
	}
	return operand{chain: c}, nil
}

func (o operand) isSegment() bool { return o.chain.Len() == 1 }

func (o operand) segment() interval.Segment { return o.chain.At(0) }

func (o operand) kind() string {
	if o.isSegment() {
		return "segment"
	}
	return "chain"
}
