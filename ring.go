// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ringbuf

// ring is the fixed-size byte arena underneath Buffer. Offsets are
// absolute stream offsets; index reduces them to arena positions.
// The ring has no notion of used or empty space, that policy lives in
// Buffer.
type ring struct {
	data []byte
}

// capacity returns the size of the arena.
func (r *ring) capacity() int { return len(r.data) }

// index converts an absolute stream offset into an arena index.
func (r *ring) index(off int64) int {
	if off < 0 {
		panic("ringbuf: negative offset")
	}
	return int(off % int64(len(r.data)))
}

// regions returns one or two spans aliasing the arena that together
// cover exactly n bytes starting at the arena position of off. The
// second span is nil unless the range straddles the physical end of
// the arena. No allocation takes place.
func (r *ring) regions(off int64, n int) (p, q []byte) {
	if !(0 <= n && n <= len(r.data)) {
		panic("ringbuf: region size out of range")
	}
	i := r.index(off)
	if i+n <= len(r.data) {
		return r.data[i : i+n], nil
	}
	return r.data[i:], r.data[:i+n-len(r.data)]
}

// byteAt returns the arena byte for the absolute offset off.
func (r *ring) byteAt(off int64) byte { return r.data[r.index(off)] }

// setByteAt stores c at the arena position of the absolute offset off.
func (r *ring) setByteAt(off int64, c byte) { r.data[r.index(off)] = c }
