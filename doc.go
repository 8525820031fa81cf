// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ringbuf provides a fixed-capacity circular byte buffer with
// search support for LZ77-style compressors and decompressors.
//
// Buffer is a classic wraparound byte queue with the twist that
// consumed bytes are not erased. They remain in the arena until later
// writes overwrite them and can be searched and copied with the
// seekback operations. SearchBuffer adds a hash index over the
// consumed data and finds the longest earlier occurrence of the bytes
// at the front of the unread window.
//
// Note that the two match finding strategies of SearchBuffer differ in
// their tie-break: the hash index keeps only the most recent position
// per chunk and therefore prefers the nearest occurrence, while the
// exhaustive scan walks the history from the oldest byte forward and
// prefers the furthest one. The asymmetry is kept on purpose and
// documented on FindCopyInSeekback; don't rely on either preference as
// a permanent contract.
package ringbuf
