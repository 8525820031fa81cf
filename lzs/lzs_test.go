// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzs

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/rand"
	"strings"
	"testing"
)

func compress(t *testing.T, cfg WriterConfig, data []byte) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w, err := NewWriterConfig(buf, cfg)
	if err != nil {
		t.Fatalf("NewWriterConfig error %s", err)
	}
	n, err := w.Write(data)
	if err != nil {
		t.Fatalf("Write error %s", err)
	}
	if n != len(data) {
		t.Fatalf("Write returned %d; want %d", n, len(data))
	}
	if err = w.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	return buf.Bytes()
}

func decompress(t *testing.T, p []byte) []byte {
	t.Helper()
	r, err := NewReader(bytes.NewReader(p))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll error %s", err)
	}
	return data
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"a",
		"abc",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"The quick brown fox jumps over the lazy dog. " +
			"The quick brown fox jumps over the lazy dog.",
		strings.Repeat("ab", 300),
		strings.Repeat("=====LZS=====", 100),
	}
	for _, s := range tests {
		p := compress(t, WriterConfig{}, []byte(s))
		q := decompress(t, p)
		if !bytes.Equal(q, []byte(s)) {
			t.Errorf("round trip of %.20q... failed: got %.20q...",
				s, q)
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(41))
	alphabet := []byte("abcdef")
	data := make([]byte, 100000)
	for i := range data {
		data[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	p := compress(t, WriterConfig{}, data)
	q := decompress(t, p)
	if !bytes.Equal(q, data) {
		t.Fatalf("round trip of random text failed")
	}
}

func TestRoundTripWords(t *testing.T) {
	rnd := rand.New(rand.NewSource(47))
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over",
		"lazy", "dog", "buffer", "window", "match", "stream",
	}
	var sb strings.Builder
	for sb.Len() < 100000 {
		sb.WriteString(words[rnd.Intn(len(words))])
		sb.WriteByte(' ')
	}
	data := []byte(sb.String())
	p := compress(t, WriterConfig{}, data)
	q := decompress(t, p)
	if !bytes.Equal(q, data) {
		t.Fatalf("round trip of word salad failed")
	}
	t.Logf("compressed %d bytes into %d (ratio %.3f)",
		len(data), len(p), float64(len(p))/float64(len(data)))
	if len(p) >= len(data)*3/5 {
		t.Errorf("compressed %d bytes into %d; expected a ratio "+
			"below 0.6", len(data), len(p))
	}
}

func TestRoundTripIncompressible(t *testing.T) {
	rnd := rand.New(rand.NewSource(43))
	data := make([]byte, 10000)
	rnd.Read(data)
	p := compress(t, WriterConfig{WindowSize: 1 << 12}, data)
	q := decompress(t, p)
	if !bytes.Equal(q, data) {
		t.Fatalf("round trip of random bytes failed")
	}
}

func TestRoundTripSmallWindow(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefghijklmnop"), 4000)
	p := compress(t, WriterConfig{WindowSize: minWindowSize}, data)
	q := decompress(t, p)
	if !bytes.Equal(q, data) {
		t.Fatalf("round trip with small window failed")
	}
}

func TestWriterConfigVerify(t *testing.T) {
	cfg := WriterConfig{WindowSize: maxWindowSize + 1}
	if err := cfg.Verify(); err == nil {
		t.Fatalf("Verify accepted window size %d", cfg.WindowSize)
	}
	cfg = WriterConfig{}
	if err := cfg.Verify(); err != nil {
		t.Fatalf("Verify error %s", err)
	}
	if cfg.WindowSize != DefaultWindowSize {
		t.Fatalf("WindowSize is %d; want %d", cfg.WindowSize,
			DefaultWindowSize)
	}
}

func TestWriterClosed(t *testing.T) {
	w, err := NewWriter(io.Discard)
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if err = w.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	if _, err = w.Write([]byte("a")); err != errClosed {
		t.Fatalf("Write after Close error %v; want %v", err,
			errClosed)
	}
}

// header returns a valid stream header for the given window size.
func header(windowSize int) []byte {
	p := append([]byte{}, magic...)
	var v [binary.MaxVarintLen64]byte
	k := binary.PutUvarint(v[:], uint64(windowSize))
	return append(p, v[:k]...)
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
		err    error
	}{
		{"badMagic", []byte{'L', 'Q', 0x80, 0x08, tagEnd},
			ErrCorrupt},
		{"hugeWindow", append([]byte{'L', 'Z'},
			0x80, 0x80, 0x80, 0x80, 0x40), ErrCorrupt},
		{"matchBeforeData", append(header(1024),
			tagMatch, 1, 3), ErrCorrupt},
		{"badTag", append(header(1024), 0x7f), ErrCorrupt},
		{"hugeMatchLen", append(header(1024), tagMatch, 1,
			0x80, 0x80, 0x80, 0x80, 0x08), ErrCorrupt},
		{"zeroLiteral", append(header(1024), tagLiteral, 0),
			ErrCorrupt},
		{"truncatedLiteral", append(header(1024),
			tagLiteral, 5, 'a', 'b'), io.ErrUnexpectedEOF},
		{"missingEnd", append(header(1024),
			tagLiteral, 2, 'a', 'b'), io.ErrUnexpectedEOF},
	}
	for _, c := range tests {
		r, err := NewReader(bytes.NewReader(c.stream))
		if err == nil {
			_, err = io.ReadAll(r)
		}
		if err != c.err {
			t.Errorf("%s: error %v; want %v", c.name, err, c.err)
		}
	}
}

func TestReaderTruncatedHeader(t *testing.T) {
	if _, err := NewReader(bytes.NewReader([]byte{'L'})); err != io.ErrUnexpectedEOF {
		t.Fatalf("NewReader error %v; want %v", err,
			io.ErrUnexpectedEOF)
	}
}
