// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hash

// Roller is the interface of a rolling hash over byte sequences of a
// fixed length.
//
// Len provides the length of the byte sequences the hash covers.
// AddYoung adds a new byte to the provided hash, shifting or
// multiplying the hash value accordingly. RemoveOldest removes the
// oldest byte from the hash; the hash value is not shifted.
type Roller interface {
	Len() int
	AddYoung(h uint64, b byte) uint64
	RemoveOldest(h uint64, b byte) uint64
}

// Hashes computes the hashes of all windows of length r.Len() in p
// using the rolling property of r. It returns nil if p is shorter
// than one window.
func Hashes(r Roller, p []byte) []uint64 {
	m, n := len(p), r.Len()
	if m < n {
		return nil
	}
	h := make([]uint64, m-n+1)
	for i := 0; i < n; i++ {
		h[0] = r.AddYoung(h[0], p[i])
	}
	for i := 1; i < len(h); i++ {
		h[i] = r.RemoveOldest(h[i-1], p[i-1])
		h[i] = r.AddYoung(h[i], p[n-1+i])
	}
	return h
}
