// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ringbuf

import "io"

// maxEmptyReads bounds the number of consecutive Read calls returning
// no data and no error before Fill gives up, the limit bufio uses.
const maxEmptyReads = 100

// Fill reads from r into the empty space of the buffer until the
// buffer is full or r is drained. It returns the number of bytes
// written into the buffer. A depleted reader is not an error; io.EOF
// is swallowed. A reader that keeps returning no data without an error
// causes io.ErrNoProgress after maxEmptyReads attempts.
func (b *Buffer) Fill(r io.Reader) (n int, err error) {
	empty := 0
	for {
		m := b.EmptySpace()
		if m == 0 {
			return n, nil
		}
		u, _ := b.ring.regions(b.writePos, m)
		k, err := r.Read(u)
		b.writePos += int64(k)
		n += k
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return n, err
		}
		if k > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			return n, io.ErrNoProgress
		}
	}
}

// Flush writes all unread bytes to w and consumes them. It returns the
// number of bytes written. On a write error the bytes reported by w
// count as consumed.
func (b *Buffer) Flush(w io.Writer) (n int, err error) {
	for b.UsedSpace() > 0 {
		u, _ := b.ring.regions(b.readPos, b.UsedSpace())
		k, err := w.Write(u)
		b.readPos += int64(k)
		n += k
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
