// Copyright (C) vu64 Authors 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package randutil provides deterministic pseudo-random sequences for
// tests that need bit-for-bit reproducible inputs across runs and Go
// releases, which seeded math/rand does not guarantee.
package randutil

// LCG is a 64-bit linear congruential generator using Knuth's MMIX
// multiplier. Not suitable for anything but test data.
type LCG struct {
	state uint64
}

// NewLCG returns a generator seeded with seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed}
}

// Uint64 returns the next value in the sequence.
func (g *LCG) Uint64() uint64 {
	g.state = g.state*6364136223846793005 + 1
	return g.state
}

// Byte returns a byte drawn from the middle bits of the next value.
func (g *LCG) Byte() byte {
	g.state = g.state*6364136223846793005 + 1
	return byte(g.state >> 32)
}
