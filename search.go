// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ringbuf

// OffsetOf returns the offset of the first occurrence of needle in the
// unread window, relative to the read cursor, or -1 if the window
// doesn't contain needle. The search works on the logical byte
// sequence; a needle crossing the physical end of the arena is found
// like any other.
func (b *Buffer) OffsetOf(needle []byte) int {
	off, _ := b.OffsetOfRange(needle, 0, b.Cap())
	return off
}

// OffsetOfRange behaves like OffsetOf but restricts the search to the
// window [after, until) relative to the read cursor. The needle must
// lie completely inside the window and inside the unread data. It
// returns -1 if there is no occurrence and ErrInvalidRange if after
// exceeds until.
func (b *Buffer) OffsetOfRange(needle []byte, after, until int) (int, error) {
	if after < 0 || after > until {
		return -1, ErrInvalidRange
	}
	end := until
	if m := b.UsedSpace(); end > m {
		end = m
	}
	last := end - len(needle)
	for off := after; off <= last; off++ {
		if b.equalAt(b.readPos+int64(off), needle) {
			return off, nil
		}
	}
	return -1, nil
}
