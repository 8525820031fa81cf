// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ringbuf

// Buffer is a fixed-capacity circular byte buffer. The readPos and
// writePos fields are absolute stream offsets and only grow; the
// arena position of an offset is its remainder modulo the capacity.
// The unread window covers [readPos, writePos). Consumed bytes below
// readPos stay in the arena until later writes overwrite them, so the
// retained history [max(0, writePos-capacity), writePos) remains
// addressable for the seekback operations.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	ring     ring
	readPos  int64
	writePos int64
}

// New creates an empty buffer with the given capacity. The capacity is
// fixed for the lifetime of the buffer.
func New(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer{ring: ring{data: make([]byte, capacity)}}, nil
}

// NewBytes creates a buffer that uses p directly as its arena. The
// capacity becomes len(p) and the buffer starts fully used with the
// content of p. Ownership of p transfers to the buffer; the caller
// must not access the slice afterwards.
func NewBytes(p []byte) (*Buffer, error) {
	if len(p) < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer{ring: ring{data: p}, writePos: int64(len(p))}, nil
}

// Cap returns the capacity of the buffer.
func (b *Buffer) Cap() int { return b.ring.capacity() }

// UsedSpace returns the number of unread bytes in the buffer.
func (b *Buffer) UsedSpace() int { return int(b.writePos - b.readPos) }

// EmptySpace returns the number of bytes that can be written before
// the buffer is full.
func (b *Buffer) EmptySpace() int { return b.Cap() - b.UsedSpace() }

// Reset drops the buffer content including the retained history.
func (b *Buffer) Reset() {
	b.readPos = 0
	b.writePos = 0
}

// bottom returns the absolute offset of the oldest retained byte.
// Bytes below bottom have been overwritten and are gone.
func (b *Buffer) bottom() int64 {
	bottom := b.writePos - int64(b.Cap())
	if bottom < 0 {
		bottom = 0
	}
	return bottom
}

// seekbackLen returns the number of consumed bytes that are still
// retained in the arena.
func (b *Buffer) seekbackLen() int { return int(b.readPos - b.bottom()) }

// historyLen returns the total number of retained bytes, consumed or
// not. It equals min(writePos, capacity).
func (b *Buffer) historyLen() int { return int(b.writePos - b.bottom()) }

// Write copies min(len(p), EmptySpace()) bytes into the buffer and
// returns the count. Write never fails; a short count signals a full
// buffer.
func (b *Buffer) Write(p []byte) int {
	n := len(p)
	if m := b.EmptySpace(); n > m {
		n = m
	}
	u, v := b.ring.regions(b.writePos, n)
	k := copy(u, p)
	copy(v, p[k:])
	b.writePos += int64(n)
	return n
}

// Read copies min(len(p), UsedSpace()) bytes into p in FIFO order,
// consumes them and returns the count. Read never fails; a short count
// signals that not enough data has been written yet.
func (b *Buffer) Read(p []byte) int {
	n := len(p)
	if m := b.UsedSpace(); n > m {
		n = m
	}
	u, v := b.ring.regions(b.readPos, n)
	k := copy(p, u)
	copy(p[k:], v)
	b.readPos += int64(n)
	return n
}

// Discard consumes n bytes without copying them. If n exceeds the
// unread bytes ErrInsufficientData is returned and the buffer remains
// unchanged. Discard doesn't erase anything; the discarded bytes stay
// part of the retained history.
func (b *Buffer) Discard(n int) error {
	if n < 0 {
		panic("ringbuf: negative discard count")
	}
	if n > b.UsedSpace() {
		return ErrInsufficientData
	}
	b.readPos += int64(n)
	return nil
}

// equalAt reports whether the retained bytes at the absolute offset
// off equal p. The caller must ensure that the range is retained.
func (b *Buffer) equalAt(off int64, p []byte) bool {
	for i := 0; i < len(p); i++ {
		if b.ring.byteAt(off+int64(i)) != p[i] {
			return false
		}
	}
	return true
}
