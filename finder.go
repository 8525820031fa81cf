// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ringbuf

import "io"

// Match describes an earlier occurrence of the bytes at the front of
// the unread window. Distance is measured backwards from the read
// cursor to the start of the occurrence and is at least 1.
type Match struct {
	Distance int
	Length   int
}

// SearchBuffer extends Buffer with match finding over the retained
// history. Chunk positions enter the hash index as their bytes leave
// the unread window through Read, Discard or Flush; only consumed data
// can be found through the index. Discard doesn't purge index entries,
// stale positions are rejected during lookup verification.
type SearchBuffer struct {
	Buffer
	table *hashTable
	// next chunk start position to index
	indexed int64
}

// NewSearch creates an empty search buffer with the given capacity.
func NewSearch(capacity int) (*SearchBuffer, error) {
	b, err := New(capacity)
	if err != nil {
		return nil, err
	}
	return &SearchBuffer{Buffer: *b, table: newHashTable(capacity)}, nil
}

// NewSearchBytes creates a search buffer that takes ownership of p as
// its fully used arena, like NewBytes.
func NewSearchBytes(p []byte) (*SearchBuffer, error) {
	b, err := NewBytes(p)
	if err != nil {
		return nil, err
	}
	return &SearchBuffer{Buffer: *b, table: newHashTable(b.Cap())}, nil
}

// Read consumes bytes like Buffer.Read and feeds the consumed chunks
// into the hash index.
func (s *SearchBuffer) Read(p []byte) int {
	n := s.Buffer.Read(p)
	s.indexConsumed()
	return n
}

// Discard consumes bytes like Buffer.Discard and feeds the consumed
// chunks into the hash index.
func (s *SearchBuffer) Discard(n int) error {
	if err := s.Buffer.Discard(n); err != nil {
		return err
	}
	s.indexConsumed()
	return nil
}

// Flush drains the unread bytes like Buffer.Flush and feeds the
// consumed chunks into the hash index.
func (s *SearchBuffer) Flush(w io.Writer) (int, error) {
	n, err := s.Buffer.Flush(w)
	s.indexConsumed()
	return n, err
}

// Reset drops the buffer content and the hash index.
func (s *SearchBuffer) Reset() {
	s.Buffer.Reset()
	s.table.reset()
	s.indexed = 0
}

// chunkHash computes the index key for the chunk at the absolute
// offset off. The chunk may straddle the physical end of the arena.
func (s *SearchBuffer) chunkHash(off int64) uint64 {
	var h uint64
	for i := 0; i < chunkLen; i++ {
		h = s.table.roller.AddYoung(h, s.ring.byteAt(off+int64(i)))
	}
	return h
}

// indexConsumed inserts every chunk that is now completely consumed
// and still retained. Chunks that have already been overwritten are
// skipped; their bytes are gone.
func (s *SearchBuffer) indexConsumed() {
	p := s.indexed
	if bottom := s.bottom(); p < bottom {
		p = bottom
	}
	for ; p+chunkLen <= s.readPos; p++ {
		s.table.put(s.chunkHash(p), p)
	}
	s.indexed = p
}

// matchLen returns the length of the common prefix of the retained
// bytes at off and the unread window, capped at max and at the size of
// the unread window.
func (s *SearchBuffer) matchLen(off int64, max int) int {
	if m := s.UsedSpace(); max > m {
		max = m
	}
	n := 0
	for n < max && s.ring.byteAt(off+int64(n)) == s.ring.byteAt(s.readPos+int64(n)) {
		n++
	}
	return n
}

// FindCopyInSeekback searches the consumed part of the retained
// history for the longest match of the unread window, with the match
// length bounded by minLength and maxLength. A match extends byte by
// byte, so it may overlap the unread window; together with
// CopyFromSeekback this supports run-length patterns whose length
// exceeds their distance.
//
// Matches shorter than the index chunk size can only be found by the
// exhaustive scan, which prefers the furthest qualifying occurrence.
// Longer matches go through the hash index, which prefers the nearest
// occurrence; the scan serves as fallback only while minLength still
// admits matches below the chunk size. The differing distance
// preference of the two strategies is deliberate but not a guaranteed
// contract; see the package documentation.
func (s *SearchBuffer) FindCopyInSeekback(maxLength, minLength int) (m Match, ok bool) {
	if minLength < 1 || maxLength < minLength {
		return Match{}, false
	}
	if minLength > s.seekbackLen() || minLength > s.UsedSpace() {
		return Match{}, false
	}
	if maxLength >= chunkLen && s.UsedSpace() >= chunkLen {
		if m, ok = s.findHashed(maxLength, minLength); ok {
			return m, true
		}
		if minLength >= chunkLen {
			// the scan could only surface occurrences the
			// single-slot index has evicted; not worth a
			// pass over the whole history
			return Match{}, false
		}
	}
	return s.findScan(maxLength, minLength)
}

// findHashed is the nearest-biased strategy. The index keeps a single,
// most recent position per chunk hash, so a hit that survives the byte
// verification is the closest indexed occurrence.
func (s *SearchBuffer) findHashed(maxLength, minLength int) (Match, bool) {
	pos, ok := s.table.get(s.chunkHash(s.readPos))
	if !ok || pos < s.bottom() {
		return Match{}, false
	}
	n := s.matchLen(pos, maxLength)
	if n < chunkLen {
		// hash collision or stale entry
		return Match{}, false
	}
	if n < minLength {
		return Match{}, false
	}
	return Match{Distance: int(s.readPos - pos), Length: n}, true
}

// findScan is the exhaustive strategy. It walks the consumed history
// from the oldest retained byte forward and keeps only strict
// improvements, so ties resolve to the furthest occurrence.
func (s *SearchBuffer) findScan(maxLength, minLength int) (Match, bool) {
	var best Match
	for off := s.bottom(); off < s.readPos; off++ {
		n := s.matchLen(off, maxLength)
		if n >= minLength && n > best.Length {
			best = Match{Distance: int(s.readPos - off), Length: n}
		}
	}
	return best, best.Length > 0
}

// FindCopyInSeekbackHints evaluates the given distances in order and
// returns the longest match among them, bounded by minLength and
// maxLength. Hints outside [1, consumed history size] are skipped.
// When several hints tie at the maximal length the earliest hint in
// the slice wins, regardless of its distance.
func (s *SearchBuffer) FindCopyInSeekbackHints(hints []int, maxLength, minLength int) (Match, bool) {
	if minLength < 1 || maxLength < minLength {
		return Match{}, false
	}
	var best Match
	for _, d := range hints {
		if d < 1 || d > s.seekbackLen() {
			continue
		}
		n := s.matchLen(s.readPos-int64(d), maxLength)
		if n >= minLength && n > best.Length {
			best = Match{Distance: d, Length: n}
		}
	}
	return best, best.Length > 0
}
