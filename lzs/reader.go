// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzs

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/ulikunitz/ringbuf"
)

// ErrCorrupt reports a stream that violates the format, for instance a
// copy reaching back before the start of the data.
var ErrCorrupt = errors.New("lzs: data is corrupt")

// Reader decompresses an lzs stream.
type Reader struct {
	br        *bufio.Reader
	b         *ringbuf.Buffer
	litLeft   int64
	matchLeft int
	matchDist int
	err       error
}

// NewReader creates a Reader and consumes the stream header.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	var m [2]byte
	if _, err := io.ReadFull(br, m[:]); err != nil {
		return nil, noEOF(err)
	}
	if m[0] != magic[0] || m[1] != magic[1] {
		return nil, ErrCorrupt
	}
	u, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, noEOF(err)
	}
	if !(minWindowSize <= u && u <= maxWindowSize) {
		return nil, ErrCorrupt
	}
	b, err := ringbuf.New(int(u))
	if err != nil {
		return nil, err
	}
	return &Reader{br: br, b: b}, nil
}

// noEOF converts a bare EOF into ErrUnexpectedEOF. A stream may only
// end after the end marker.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if r.b.UsedSpace() > 0 {
			n += r.b.Read(p[n:])
			continue
		}
		if r.err != nil {
			if n > 0 {
				return n, nil
			}
			return n, r.err
		}
		if err = r.decode(); err != nil {
			r.err = err
		}
	}
	return n, nil
}

// decode produces at least one byte into the window or returns an
// error. io.EOF marks the regular end of the stream.
func (r *Reader) decode() error {
	for r.b.UsedSpace() == 0 {
		switch {
		case r.litLeft > 0:
			k, err := r.b.Fill(io.LimitReader(r.br, r.litLeft))
			r.litLeft -= int64(k)
			if err != nil {
				return err
			}
			if k == 0 {
				return io.ErrUnexpectedEOF
			}
		case r.matchLeft > 0:
			k, err := r.b.CopyFromSeekback(r.matchDist,
				r.matchLeft)
			if err != nil {
				// distance reaches back before the
				// produced data
				return ErrCorrupt
			}
			r.matchLeft -= k
		default:
			if err := r.readOp(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Reader) readOp() error {
	tag, err := r.br.ReadByte()
	if err != nil {
		return noEOF(err)
	}
	switch tag {
	case tagEnd:
		return io.EOF
	case tagLiteral:
		u, err := binary.ReadUvarint(r.br)
		if err != nil {
			return noEOF(err)
		}
		if u == 0 || u > 1<<62 {
			return ErrCorrupt
		}
		r.litLeft = int64(u)
	case tagMatch:
		d, err := binary.ReadUvarint(r.br)
		if err != nil {
			return noEOF(err)
		}
		l, err := binary.ReadUvarint(r.br)
		if err != nil {
			return noEOF(err)
		}
		if d == 0 || d > uint64(r.b.Cap()) {
			return ErrCorrupt
		}
		if l < minMatchLen || l > math.MaxInt32 {
			return ErrCorrupt
		}
		r.matchDist = int(d)
		r.matchLeft = int(l)
	default:
		return ErrCorrupt
	}
	return nil
}
