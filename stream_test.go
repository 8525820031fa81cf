// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ringbuf

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// stuckReader returns no data and no error on every call.
type stuckReader struct{}

func (stuckReader) Read(p []byte) (int, error) { return 0, nil }

func TestFill(t *testing.T) {
	b := mustNew(8)
	n, err := b.Fill(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("Fill error %s", err)
	}
	if n != 3 {
		t.Fatalf("Fill returned %d; want %d", n, 3)
	}
	n, err = b.Fill(strings.NewReader("defghijkl"))
	if err != nil {
		t.Fatalf("Fill error %s", err)
	}
	if n != 5 {
		t.Fatalf("Fill returned %d; want %d", n, 5)
	}
	if e := b.EmptySpace(); e != 0 {
		t.Fatalf("EmptySpace is %d; want %d", e, 0)
	}
	p := make([]byte, 8)
	b.Read(p)
	if !bytes.Equal(p, []byte("abcdefgh")) {
		t.Fatalf("read %q; want %q", p, "abcdefgh")
	}
}

func TestFillAcrossWrap(t *testing.T) {
	b := mustNew(5)
	b.Write([]byte("abcd"))
	p := make([]byte, 3)
	b.Read(p)
	n, err := b.Fill(strings.NewReader("wxyz"))
	if err != nil {
		t.Fatalf("Fill error %s", err)
	}
	if n != 4 {
		t.Fatalf("Fill returned %d; want %d", n, 4)
	}
	q := make([]byte, 5)
	if k := b.Read(q); k != 5 {
		t.Fatalf("Read returned %d; want %d", k, 5)
	}
	if !bytes.Equal(q, []byte("dwxyz")) {
		t.Fatalf("read %q; want %q", q, "dwxyz")
	}
}

func TestFillNoProgress(t *testing.T) {
	b := mustNew(4)
	n, err := b.Fill(stuckReader{})
	if err != io.ErrNoProgress {
		t.Fatalf("Fill error %v; want %v", err, io.ErrNoProgress)
	}
	if n != 0 {
		t.Fatalf("Fill returned %d; want %d", n, 0)
	}
}

func TestFlush(t *testing.T) {
	b := mustNew(5)
	b.Write([]byte("abcd"))
	p := make([]byte, 3)
	b.Read(p)
	b.Write([]byte("wxyz"))
	// unread window "dwxyz" straddles the arena end
	buf := new(bytes.Buffer)
	n, err := b.Flush(buf)
	if err != nil {
		t.Fatalf("Flush error %s", err)
	}
	if n != 5 {
		t.Fatalf("Flush returned %d; want %d", n, 5)
	}
	if s := buf.String(); s != "dwxyz" {
		t.Fatalf("flushed %q; want %q", s, "dwxyz")
	}
	if u := b.UsedSpace(); u != 0 {
		t.Fatalf("UsedSpace is %d; want %d", u, 0)
	}
}

func TestSearchBufferFlushIndexes(t *testing.T) {
	s := mustNewSearch(16)
	s.Write([]byte("ABCxy"))
	buf := new(bytes.Buffer)
	if _, err := s.Flush(buf); err != nil {
		t.Fatalf("Flush error %s", err)
	}
	s.Write([]byte("ABC"))
	m, ok := s.FindCopyInSeekback(3, 1)
	if !ok || m != (Match{Distance: 5, Length: 3}) {
		t.Fatalf("FindCopyInSeekback(3, 1) is %+v, %t; "+
			"want %+v, %t", m, ok, Match{Distance: 5, Length: 3},
			true)
	}
}
