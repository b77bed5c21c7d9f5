// Copyright (C) vu64 Authors 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package vu64 implements a variable-length encoding of 64-bit integers.
//
// An encoded value occupies 1 to 9 bytes. The leading run of one bits in
// the first byte states how many follow bytes the value uses:
//
//	First byte  Payload bits  Total bytes
//	0xxxxxxx     7            1
//	10xxxxxx    14            2
//	110xxxxx    21            3
//	1110xxxx    28            4
//	11110xxx    35            5
//	111110xx    42            6
//	1111110x    49            7
//	11111110    56            8
//	11111111    64            9
//
// For lengths 1 through 7 the payload is little-endian with its low-order
// bits packed into the unused low bits of the first byte. Lengths 8 and 9
// place the full value, unshifted, in the eight bytes after the marker.
//
// Every value has exactly one valid encoding: the shortest one. Decoding
// rejects inputs that spend more bytes than the value needs, so the codec
// is a bijection between uint64 values and canonical byte sequences.
//
// Signed integers are supported through the zigzag transform, which keeps
// small-magnitude values short on the wire. Streaming helpers read and
// write encoded values over any io.Reader or io.Writer.
package vu64
