// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitops provides the bit manipulation primitives used by the
// buffer, as thin wrappers around math/bits. All functions are pure.
// The zero-operand cases follow the math/bits convention: leading and
// trailing zero counts return the full bit width for a zero argument.
package bitops

import "math/bits"

// PopCount32 returns the number of set bits in x.
func PopCount32(x uint32) int { return bits.OnesCount32(x) }

// PopCount64 returns the number of set bits in x.
func PopCount64(x uint64) int { return bits.OnesCount64(x) }

// NLZ32 returns the number of leading zero bits in x; the result is 32
// for x == 0.
func NLZ32(x uint32) int { return bits.LeadingZeros32(x) }

// NLZ64 returns the number of leading zero bits in x; the result is 64
// for x == 0.
func NLZ64(x uint64) int { return bits.LeadingZeros64(x) }

// NTZ32 returns the number of trailing zero bits in x; the result is
// 32 for x == 0.
func NTZ32(x uint32) int { return bits.TrailingZeros32(x) }

// NTZ64 returns the number of trailing zero bits in x; the result is
// 64 for x == 0.
func NTZ64(x uint64) int { return bits.TrailingZeros64(x) }

// BitLen32 returns the minimum number of bits required to represent x.
// A zero value still takes one bit to write down, so BitLen32(0) is 1.
func BitLen32(x uint32) int {
	if x == 0 {
		return 1
	}
	return bits.Len32(x)
}

// BitLen64 returns the minimum number of bits required to represent x.
// BitLen64(0) is 1.
func BitLen64(x uint64) int {
	if x == 0 {
		return 1
	}
	return bits.Len64(x)
}
