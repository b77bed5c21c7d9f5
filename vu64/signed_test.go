// Copyright (C) vu64 Authors 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package vu64

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZigzag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		signed   int64
		unsigned uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{63, 126},
		{-64, 127},
		{64, 128},
		{-65, 129},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.unsigned, Zigzag(tc.signed), "Zigzag(%d)", tc.signed)
		assert.Equal(t, tc.signed, Unzigzag(tc.unsigned), "Unzigzag(%d)", tc.unsigned)
	}
}

func TestZigzagKeepsSmallMagnitudesSmall(t *testing.T) {
	t.Parallel()

	// |v| <= n maps into [0, 2n].
	for v := int64(-1000); v <= 1000; v++ {
		u := Zigzag(v)
		m := v
		if m < 0 {
			m = -m
		}
		require.LessOrEqual(t, u, uint64(2*m))
		require.Equal(t, v, Unzigzag(u))
	}
}

func TestEncodeSignedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value int64
		want  []byte
	}{
		{0x0F0FF0F0, []byte{0xF0, 0x3C, 0xFC, 0xC3, 0x03}},
		{-0x0F0FF0F0, []byte{0xF7, 0x3B, 0xFC, 0xC3, 0x03}},
	}

	for _, tc := range tests {
		enc := EncodeInt64(tc.value)
		assert.Equal(t, tc.want, enc.Bytes(), "EncodeInt64(%d)", tc.value)

		got, err := DecodeInt64(enc.Bytes())
		require.NoError(t, err)
		assert.Equal(t, tc.value, got)
	}
}

func TestSignedRoundTripBoundaries(t *testing.T) {
	t.Parallel()

	values := []int64{
		0, 1, -1, 63, -64, 64, -65, 12345, -54321,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64,
	}

	for _, v := range values {
		enc := EncodeInt64(v)
		require.Equal(t, EncodedLenInt64(v), enc.Len(), "EncodedLenInt64(%d)", v)

		got, err := DecodeInt64(enc.Bytes())
		require.NoError(t, err, "DecodeInt64 for %d", v)
		assert.Equal(t, v, got)
	}
}

func TestDecodeInt64PropagatesErrors(t *testing.T) {
	t.Parallel()

	_, err := DecodeInt64([]byte{0xF0})
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = DecodeInt64([]byte{0x81, 0x00})
	assert.ErrorIs(t, err, ErrRedundant)
}
