// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ringbuf

import "errors"

// Errors returned by the buffer operations.
var (
	// ErrInvalidCapacity indicates a requested capacity of zero
	// bytes.
	ErrInvalidCapacity = errors.New("ringbuf: capacity must be at least one byte")
	// ErrInsufficientData indicates a discard request larger than
	// the number of unread bytes. The buffer remains unchanged.
	ErrInsufficientData = errors.New("ringbuf: not enough data in buffer")
	// ErrInvalidRange indicates a search range whose start exceeds
	// its end.
	ErrInvalidRange = errors.New("ringbuf: invalid search range")
	// ErrInvalidDistance indicates a seekback distance of zero or
	// one that reaches behind the retained history.
	ErrInvalidDistance = errors.New("ringbuf: distance outside retained history")
)
