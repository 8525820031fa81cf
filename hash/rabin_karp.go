// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hash

// A is the default multiplier for the Rabin-Karp rolling hash. It is a
// random prime.
const A = 252097800623

// RabinKarp computes a multiplicative rolling hash over byte
// sequences of length n.
type RabinKarp struct {
	a uint64
	n int
	// a^(n-1), the weight of the oldest byte
	aOldest uint64
}

// NewRabinKarp creates a Rabin-Karp hash for sequences of n bytes
// using the default multiplier.
func NewRabinKarp(n int) *RabinKarp {
	return NewRabinKarpConst(n, A)
}

// NewRabinKarpConst creates a Rabin-Karp hash for sequences of n bytes
// using the multiplier a.
func NewRabinKarpConst(n int, a uint64) *RabinKarp {
	if n <= 0 {
		panic("sequence length n must be positive")
	}
	aOldest := uint64(1)
	// O(n) is fine for the small n used by the buffer index.
	for i := 0; i < n-1; i++ {
		aOldest *= a
	}
	return &RabinKarp{a: a, n: n, aOldest: aOldest}
}

// Len returns the length of the byte sequences the hash covers.
func (r *RabinKarp) Len() int { return r.n }

// AddYoung adds the byte b as the youngest byte to the hash h.
func (r *RabinKarp) AddYoung(h uint64, b byte) uint64 {
	return h*r.a + uint64(b)
}

// RemoveOldest removes the oldest byte b from the hash h.
func (r *RabinKarp) RemoveOldest(h uint64, b byte) uint64 {
	return h - uint64(b)*r.aOldest
}
