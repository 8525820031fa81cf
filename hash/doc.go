// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hash provides rolling hashes for short byte chunks.

The ringbuf hash index maintains the positions of chunkLen-byte
sequences of the buffer history. The rolling form allows updating a
hash by one byte instead of recomputing it for the whole chunk.
*/
package hash
