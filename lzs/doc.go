// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzs implements a simple byte-oriented LZ77 stream format on
// top of the ringbuf seekback buffer. It is not a competitive
// compressor; it exists to exercise the match finder against real data.
//
// A stream starts with the magic bytes 'L' 'Z' followed by the window
// size as an unsigned varint. A sequence of operations follows:
//
//	0x00                      end of stream
//	0x01 <n> <n bytes>        literal run
//	0x02 <distance> <length>  copy length bytes from distance bytes back
//
// All integers are unsigned varints as defined by encoding/binary. A
// copy may overlap the bytes it produces, which repeats the pattern in
// between. The decompressor requires the window size from the header,
// so streams are self-describing.
package lzs
