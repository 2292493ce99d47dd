// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package acorn

import "math"

// pow10 holds the powers of ten representable by a uint64.
var pow10 = [20]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000,
	100000000000000000, 1000000000000000000, 10000000000000000000,
}

// FixedDigitsUint64 returns a random uint64 with exactly the provided number
// of decimal digits, uniform over all such values and free of modulo bias.
// The digit count is clamped to [1,20].  A single digit covers [0,9] and
// twenty digits covers the values from 10^19 through the uint64 maximum.
func (g *Generator) FixedDigitsUint64(digits int) uint64 {
	switch {
	case digits < 1:
		digits = 1
	case digits > 20:
		digits = 20
	}

	var low uint64
	if digits > 1 {
		low = pow10[digits-1]
	}
	high := uint64(math.MaxUint64)
	if digits < 20 {
		high = pow10[digits] - 1
	}
	return low + g.Uint64N(high-low+1)
}

// FixedDigitsUint32 returns a random uint32 with exactly the provided number
// of decimal digits, uniform over all such values and free of modulo bias.
// The digit count is clamped to [1,10].  A single digit covers [0,9] and ten
// digits covers the values from 10^9 through the uint32 maximum.
func (g *Generator) FixedDigitsUint32(digits int) uint32 {
	switch {
	case digits < 1:
		digits = 1
	case digits > 10:
		digits = 10
	}

	var low uint64
	if digits > 1 {
		low = pow10[digits-1]
	}
	high := uint64(math.MaxUint32)
	if digits < 10 {
		high = pow10[digits] - 1
	}
	return uint32(low + g.Uint64N(high-low+1))
}
