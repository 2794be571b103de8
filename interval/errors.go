// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import "github.com/pkg/errors"

var (
	// ErrInvalidRange is returned when a constructor or mutator would leave a
	// range with start > end.
	ErrInvalidRange = errors.New("invalid range")
	// ErrOutOfOrder is returned by Chain.Push when the new segment sorts
	// before the chain's last segment.
	ErrOutOfOrder = errors.New("segment out of order")
)

// IsInvalidRange reports whether err was caused by ErrInvalidRange.
func IsInvalidRange(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidRange
}

// IsOutOfOrder reports whether err was caused by ErrOutOfOrder.
func IsOutOfOrder(err error) bool {
	return err != nil && errors.Cause(err) == ErrOutOfOrder
}
