// Copyright (C) vu64 Authors 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package vu64

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// MaxBytes is the maximum number of bytes an encoded value occupies.
const MaxBytes = 9

// Largest value representable by each encoded length.
const (
	MaxLen1 uint64 = 0x7F
	MaxLen2 uint64 = 0x3FFF
	MaxLen3 uint64 = 0x1FFFFF
	MaxLen4 uint64 = 0x0FFFFFFF
	MaxLen5 uint64 = 0x07FFFFFFFF
	MaxLen6 uint64 = 0x03FFFFFFFFFF
	MaxLen7 uint64 = 0x01FFFFFFFFFFFF
	MaxLen8 uint64 = 0xFFFFFFFFFFFFFF
	MaxLen9 uint64 = math.MaxUint64
)

// Vu64 is an encoded value: up to MaxBytes of storage inline, with only
// the first length bytes significant. It is a plain value type, cheap to
// copy and immutable after construction.
type Vu64 struct {
	length uint8
	bytes  [MaxBytes]byte
}

// Bytes returns the significant bytes of the encoded value.
func (v Vu64) Bytes() []byte {
	return v.bytes[:v.length]
}

// Len returns the encoded length in bytes.
func (v Vu64) Len() int {
	return int(v.length)
}

// Equal compares two encoded values. Canonical encoding makes byte
// equality and numeric equality the same thing.
func (v Vu64) Equal(other Vu64) bool {
	if v.length != other.length {
		return false
	}
	return v.bytes == other.bytes
}

// String implements fmt.Stringer, rendering the decoded numeric value.
func (v Vu64) String() string {
	n, err := Decode(v.Bytes())
	if err != nil {
		return "V64(<invalid>)"
	}
	return fmt.Sprintf("V64(%d)", n)
}

// FromBytes decodes the leading encoded value in b and returns it as a
// Vu64, propagating any decode error. Bytes after the encoded value are
// ignored.
func FromBytes(b []byte) (Vu64, error) {
	n, err := Decode(b)
	if err != nil {
		return Vu64{}, err
	}
	return Encode(n), nil
}

// encodedLenTable maps bits.LeadingZeros64 of a value, which is always in
// [0, 64], to the encoded length. Values up to 7 significant bits take 1
// byte, up to 14 bits take 2 bytes, and so on up to 56 bits for 8 bytes;
// anything wider takes the full 9.
var encodedLenTable = [65]uint8{
	9,
	9, 9, 9, 9, 9, 9, 9,
	8, 8, 8, 8, 8, 8, 8,
	7, 7, 7, 7, 7, 7, 7,
	6, 6, 6, 6, 6, 6, 6,
	5, 5, 5, 5, 5, 5, 5,
	4, 4, 4, 4, 4, 4, 4,
	3, 3, 3, 3, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2,
	1, 1, 1, 1, 1, 1, 1,
	1,
}

// EncodedLen returns the number of bytes Encode uses for value.
//
// The result is always in [1, 9].
func EncodedLen(value uint64) int {
	return int(encodedLenTable[bits.LeadingZeros64(value)])
}

// DecodedLen returns the total encoded length implied by the first byte,
// including the first byte itself.
//
// The result is always in [1, 9].
func DecodedLen(first byte) int {
	return bits.LeadingZeros8(^first) + 1
}

// Encode encodes an unsigned 64-bit integer.
func Encode(value uint64) Vu64 {
	var v Vu64
	length := EncodedLen(value)
	followLen := length - 1

	switch {
	case followLen == 0:
		// 1-byte special case
		v.bytes[0] = byte(value)
	case followLen < 7:
		binary.LittleEndian.PutUint64(v.bytes[:8], value<<length)
		b := v.bytes[0]
		v.bytes[0] = ^((^(b >> 1)) >> followLen)
	default:
		binary.LittleEndian.PutUint64(v.bytes[1:], value)
		if followLen == 7 {
			// 8-byte special case
			v.bytes[0] = 0xFE
		} else {
			// 9-byte special case
			v.bytes[0] = 0xFF
		}
	}

	v.length = uint8(length)
	return v
}

// Decode decodes an encoded unsigned 64-bit integer from the front of b.
func Decode(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, ErrTruncated
	}
	return decodeWithLength(DecodedLen(b[0]), b)
}

// DecodeSplit decodes an encoded value whose first byte and follow bytes
// arrive separately, as they do when reading from a stream that delivers
// the first byte before the total length is known.
func DecodeSplit(first byte, follow []byte) (uint64, error) {
	return decodeWithFollow(DecodedLen(first), first, follow)
}

// DecodePacked decodes an encoded value whose follow bytes have been
// packed into a little-endian 64-bit word, zero-padded past the encoded
// length. The caller supplies a full word, so truncation cannot be
// detected here; canonical-form validation still applies.
func DecodePacked(first byte, followLE uint64) (uint64, error) {
	length := DecodedLen(first)
	followLen := length - 1

	var value uint64
	switch {
	case followLen == 0:
		// 1-byte special case
		value = uint64(first)
	case followLen < 7:
		lsb := first << length
		value = (followLE<<8 | uint64(lsb)) >> length
	default:
		// 8-byte and 9-byte special cases
		value = followLE
	}

	return value, CheckedLen(length, value)
}

// CheckedLen reports whether value actually requires an encoding of the
// given length. A value small enough for a shorter encoding fails with
// ErrRedundant. Length 1 is exempt from the lower bound: zero is a valid
// 1-byte value.
func CheckedLen(length int, value uint64) error {
	if length == 1 || value >= 1<<(7*uint(length-1)) {
		return nil
	}
	return ErrRedundant
}

func decodeWithLength(length int, b []byte) (uint64, error) {
	if len(b) < length {
		return 0, ErrTruncated
	}
	followLen := length - 1

	var value uint64
	switch {
	case followLen == 0:
		// 1-byte special case
		value = uint64(b[0])
	case followLen < 7:
		for i := length - 1; i > 0; i-- {
			value = value<<8 | uint64(b[i])
		}
		lsb := b[0] << length
		value = (value<<8 | uint64(lsb)) >> length
	case followLen == 7:
		// 8-byte special case
		for i := length - 1; i > 0; i-- {
			value = value<<8 | uint64(b[i])
		}
	default:
		// 9-byte special case
		value = binary.LittleEndian.Uint64(b[1:9])
	}

	return value, CheckedLen(length, value)
}

func decodeWithFollow(length int, first byte, follow []byte) (uint64, error) {
	if len(follow) < length-1 {
		return 0, ErrTruncated
	}
	followLen := length - 1

	var value uint64
	switch {
	case followLen == 0:
		// 1-byte special case
		value = uint64(first)
	case followLen < 7:
		for i := followLen - 1; i >= 0; i-- {
			value = value<<8 | uint64(follow[i])
		}
		lsb := first << length
		value = (value<<8 | uint64(lsb)) >> length
	case followLen == 7:
		// 8-byte special case
		for i := followLen - 1; i >= 0; i-- {
			value = value<<8 | uint64(follow[i])
		}
	default:
		// 9-byte special case
		value = binary.LittleEndian.Uint64(follow[:8])
	}

	return value, CheckedLen(length, value)
}
