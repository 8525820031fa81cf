// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ringbuf

import (
	"github.com/ulikunitz/ringbuf/hash"
	"github.com/ulikunitz/ringbuf/internal/bitops"
)

// chunkLen is the number of bytes hashed into a single index key. It
// is also the smallest match length the hash strategy can find;
// shorter matches require the exhaustive scan.
const chunkLen = 3

// The table exponent is clamped to this range. The minimum is somewhat
// arbitrary, the maximum keeps the table below 8 MiB even for huge
// histories.
const (
	minTableExponent = 9
	maxTableExponent = 20
)

// hashTableExponent derives the hash table exponent from the history
// size.
func hashTableExponent(n uint32) int {
	e := 30 - bitops.NLZ32(n)
	switch {
	case e < minTableExponent:
		e = minTableExponent
	case e > maxTableExponent:
		e = maxTableExponent
	}
	return e
}

// hashTable maps chunk hashes to the absolute position of the most
// recent occurrence of the chunk. Every slot holds a single position;
// newer insertions overwrite older ones, which biases lookups towards
// the nearest occurrence and keeps both memory and lookup cost
// constant. Entries are never removed. A stale position, whose bytes
// have been overwritten in the arena, simply fails the byte
// verification done by the user of a lookup result.
type hashTable struct {
	table  []int64
	mask   uint64
	roller hash.Roller
}

// newHashTable creates a hash table sized for the given history.
func newHashTable(historySize int) *hashTable {
	exp := hashTableExponent(uint32(historySize))
	t := &hashTable{
		table:  make([]int64, 1<<exp),
		mask:   1<<uint(exp) - 1,
		roller: hash.NewRabinKarp(chunkLen),
	}
	t.reset()
	return t
}

// reset empties the table.
func (t *hashTable) reset() {
	for i := range t.table {
		t.table[i] = -1
	}
}

// put stores pos as the most recent position for the hash h. An
// earlier position with the same slot is overwritten.
func (t *hashTable) put(h uint64, pos int64) {
	t.table[h&t.mask] = pos
}

// get returns the most recent position stored for the hash h.
func (t *hashTable) get(h uint64) (pos int64, ok bool) {
	pos = t.table[h&t.mask]
	return pos, pos >= 0
}
