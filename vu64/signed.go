// Copyright (C) vu64 Authors 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package vu64

// Zigzag maps a signed 64-bit integer to an unsigned one, interleaving
// positive and negative values by magnitude: 0, -1, 1, -2, 2, ... become
// 0, 1, 2, 3, 4, ... so small-magnitude values stay short on the wire.
//
// Reference: https://protobuf.dev/programming-guides/encoding/#signed-ints
func Zigzag(value int64) uint64 {
	return uint64(value<<1) ^ uint64(value>>63)
}

// Unzigzag inverts Zigzag.
func Unzigzag(encoded uint64) int64 {
	return int64(encoded>>1) ^ -int64(encoded&1)
}

// EncodeInt64 encodes a signed 64-bit integer as a zigzag-transformed
// vu64 value.
func EncodeInt64(value int64) Vu64 {
	return Encode(Zigzag(value))
}

// DecodeInt64 decodes a zigzag-transformed vu64 value from the front of b.
func DecodeInt64(b []byte) (int64, error) {
	u, err := Decode(b)
	if err != nil {
		return 0, err
	}
	return Unzigzag(u), nil
}

// EncodedLenInt64 returns the number of bytes EncodeInt64 uses for value.
func EncodedLenInt64(value int64) int {
	return EncodedLen(Zigzag(value))
}
