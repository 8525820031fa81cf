// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzs

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/ulikunitz/ringbuf"
)

// Operation tags of the stream format.
const (
	tagEnd     = 0x00
	tagLiteral = 0x01
	tagMatch   = 0x02
)

// Limits of the stream format.
const (
	minMatchLen = 3
	maxMatchLen = 273

	minWindowSize = 1 << 10
	maxWindowSize = 1 << 26

	// DefaultWindowSize is used if the writer configuration leaves
	// the window size zero.
	DefaultWindowSize = 1 << 16

	// literal runs are flushed at this size to bound buffering
	maxLiteralRun = 1 << 16
)

var magic = []byte{'L', 'Z'}

var errClosed = errors.New("lzs: writer is closed")

// WriterConfig describes the parameters of a Writer.
type WriterConfig struct {
	// WindowSize is the number of bytes matches may reach back.
	// (default: DefaultWindowSize)
	WindowSize int
}

// ApplyDefaults replaces zero values with default values.
func (c *WriterConfig) ApplyDefaults() {
	if c.WindowSize == 0 {
		c.WindowSize = DefaultWindowSize
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by defaults before the check.
func (c *WriterConfig) Verify() error {
	c.ApplyDefaults()
	if !(minWindowSize <= c.WindowSize &&
		c.WindowSize <= maxWindowSize) {
		return errors.New("lzs: WindowSize out of range")
	}
	return nil
}

// Writer compresses data written to it into an lzs stream. The Writer
// buffers data and must be closed to produce a complete stream.
type Writer struct {
	bw       *bufio.Writer
	s        *ringbuf.SearchBuffer
	lit      []byte
	lastDist int
	err      error
}

// NewWriter creates a Writer with the default configuration and writes
// the stream header.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a Writer using the given configuration and
// writes the stream header.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	s, err := ringbuf.NewSearch(cfg.WindowSize)
	if err != nil {
		return nil, err
	}
	lw := &Writer{bw: bufio.NewWriter(w), s: s}
	if _, err = lw.bw.Write(magic); err != nil {
		return nil, err
	}
	var p [binary.MaxVarintLen64]byte
	k := binary.PutUvarint(p[:], uint64(cfg.WindowSize))
	if _, err = lw.bw.Write(p[:k]); err != nil {
		return nil, err
	}
	return lw, nil
}

// Write buffers p and compresses it as enough lookahead accumulates.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	for len(p) > 0 {
		k := w.s.Write(p)
		n += k
		p = p[k:]
		if err = w.compress(false); err != nil {
			w.err = err
			return n, err
		}
	}
	return n, nil
}

// Close compresses all buffered data, writes the end marker and
// flushes the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if err := w.compress(true); err != nil {
		w.err = err
		return err
	}
	if err := w.bw.WriteByte(tagEnd); err != nil {
		w.err = err
		return err
	}
	if err := w.bw.Flush(); err != nil {
		w.err = err
		return err
	}
	w.err = errClosed
	return nil
}

// compress consumes the unread window greedily. Unless final is set a
// full lookahead of maxMatchLen bytes is kept back, so matches are
// never cut short by a buffer boundary.
func (w *Writer) compress(final bool) error {
	for {
		u := w.s.UsedSpace()
		if u == 0 || (!final && u <= maxMatchLen) {
			break
		}
		max := maxMatchLen
		if max > u {
			max = u
		}
		m, ok := w.s.FindCopyInSeekback(max, minMatchLen)
		if w.lastDist > 0 {
			// repeating the last distance costs nothing
			// extra, so it wins on equal length
			hm, hok := w.s.FindCopyInSeekbackHints(
				[]int{w.lastDist}, max, minMatchLen)
			if hok && (!ok || hm.Length >= m.Length) {
				m, ok = hm, true
			}
		}
		if ok && matchCost(m) > m.Length {
			// a short match with a wide distance encodes
			// larger than the literals it replaces
			ok = false
		}
		if !ok {
			var b [1]byte
			w.s.Read(b[:])
			w.lit = append(w.lit, b[0])
			if len(w.lit) >= maxLiteralRun {
				if err := w.writeLiterals(); err != nil {
					return err
				}
			}
			continue
		}
		if err := w.writeLiterals(); err != nil {
			return err
		}
		if err := w.writeMatch(m); err != nil {
			return err
		}
		if err := w.s.Discard(m.Length); err != nil {
			return err
		}
		w.lastDist = m.Distance
	}
	if final {
		return w.writeLiterals()
	}
	return nil
}

func (w *Writer) writeLiterals() error {
	if len(w.lit) == 0 {
		return nil
	}
	var p [1 + binary.MaxVarintLen64]byte
	p[0] = tagLiteral
	k := 1 + binary.PutUvarint(p[1:], uint64(len(w.lit)))
	if _, err := w.bw.Write(p[:k]); err != nil {
		return err
	}
	if _, err := w.bw.Write(w.lit); err != nil {
		return err
	}
	w.lit = w.lit[:0]
	return nil
}

func uvarintLen(x uint64) int {
	n := 1
	for x >= 0x80 {
		x >>= 7
		n++
	}
	return n
}

// matchCost returns the encoded size of the match operation in bytes.
func matchCost(m ringbuf.Match) int {
	return 1 + uvarintLen(uint64(m.Distance)) + uvarintLen(uint64(m.Length))
}

func (w *Writer) writeMatch(m ringbuf.Match) error {
	var p [1 + 2*binary.MaxVarintLen64]byte
	p[0] = tagMatch
	k := 1 + binary.PutUvarint(p[1:], uint64(m.Distance))
	k += binary.PutUvarint(p[k:], uint64(m.Length))
	_, err := w.bw.Write(p[:k])
	return err
}
