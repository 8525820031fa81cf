// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ringbuf

// CopyFromSeekback appends length bytes starting distance bytes before
// the current write position. The copy proceeds byte by byte with both
// cursors advancing together, so once the source reaches the original
// write position it re-reads bytes appended by the same call. A
// distance smaller than length therefore expands a short pattern into
// an arbitrarily long run.
//
// The count is capped by the empty space available at the start of the
// call; a short count is not an error. ErrInvalidDistance is returned
// if distance is zero or reaches behind the retained history.
func (b *Buffer) CopyFromSeekback(distance, length int) (int, error) {
	if distance < 1 || int64(distance) > b.writePos || distance > b.Cap() {
		return 0, ErrInvalidDistance
	}
	if length < 0 {
		panic("ringbuf: negative copy length")
	}
	n := length
	if m := b.EmptySpace(); n > m {
		n = m
	}
	for i := 0; i < n; i++ {
		c := b.ring.byteAt(b.writePos - int64(distance))
		b.ring.setByteAt(b.writePos, c)
		b.writePos++
	}
	return n, nil
}

// ReadWithSeekback copies up to len(p) retained bytes starting
// distance bytes before the write position into p. Nothing is
// consumed; the read and write cursors stay where they are. The count
// is capped at distance, so the read stops at the write position.
// ErrInvalidDistance is returned if distance is zero or reaches behind
// the retained history.
func (b *Buffer) ReadWithSeekback(p []byte, distance int) (int, error) {
	if distance < 1 || int64(distance) > b.writePos || distance > b.Cap() {
		return 0, ErrInvalidDistance
	}
	n := len(p)
	if n > distance {
		n = distance
	}
	u, v := b.ring.regions(b.writePos-int64(distance), n)
	k := copy(p, u)
	copy(p[k:], v)
	return n, nil
}
