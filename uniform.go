// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
// Uniform random algorithms modified from the Go math/rand/v2 package with
// the following license:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package acorn

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"math/bits"
	"time"
)

// The low-order bits of an additive congruential generator cycle with short
// periods, so every sampler in this file derives its result from the
// high-order bits of the raw output.  None of them panic: arguments that
// leave an empty range produce the documented degenerate result instead.

// Uint32 returns a uniform random uint32.
func (g *Generator) Uint32() uint32 {
	return uint32(g.Uint64() >> 32)
}

// Float64 returns a uniform random float64 in [0,1).
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) / (1 << 53)
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Returns 0 when n is 0.
func (g *Generator) Uint64N(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	// Suppose we have a uint64 x uniform in the range [0,2⁶⁴)
	// and want to reduce it to the range [0,n) preserving exact uniformity.
	// We can simulate a scaling arbitrary precision x * (n/2⁶⁴) by
	// the high bits of a double-width multiply of x*n, meaning (x*n)/2⁶⁴.
	// Since there are 2⁶⁴ possible inputs x and only n possible outputs,
	// the output is necessarily biased if n does not divide 2⁶⁴.
	// In general (x*n)/2⁶⁴ = k for x*n in [k*2⁶⁴,(k+1)*2⁶⁴).
	// There are either floor(2⁶⁴/n) or ceil(2⁶⁴/n) possible products
	// in that range, depending on k.
	// But suppose we reject the sample and try again when
	// x*n is in [k*2⁶⁴, k*2⁶⁴+(2⁶⁴%n)), meaning rejecting fewer than n possible
	// outcomes out of the 2⁶⁴.
	// Now there are exactly floor(2⁶⁴/n) possible ways to produce
	// each output value k, so we've restored uniformity.
	// To get valid uint64 math, 2⁶⁴ % n = (2⁶⁴ - n) % n = -n % n,
	// so the direct implementation of this algorithm would be:
	//
	//	hi, lo := bits.Mul64(g.Uint64(), n)
	//	thresh := -n % n
	//	for lo < thresh {
	//		hi, lo = bits.Mul64(g.Uint64(), n)
	//	}
	//
	// That still leaves an expensive 64-bit division that we would rather avoid.
	// We know that thresh < n, and n is usually much less than 2⁶⁴, so we can
	// avoid the last four lines unless lo < n.
	//
	// Note there is deliberately no power-of-two fast path here: masking
	// would select the weak low-order bits, while the multiply reduces a
	// power-of-two n to a shift of the high-order ones.
	//
	// See also:
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	// https://lemire.me/blog/2016/06/30/fast-random-shuffling
	hi, lo := bits.Mul64(g.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(g.Uint64(), n)
		}
	}
	return hi
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Returns 0 when n is 0.
func (g *Generator) Uint32N(n uint32) uint32 {
	return uint32(g.Uint64N(uint64(n)))
}

// Int32 returns a random 31-bit non-negative integer as an int32 without
// modulo bias.
func (g *Generator) Int32() int32 {
	return int32(g.Uint32() & 0x7FFFFFFF)
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Returns 0 when n <= 0.
func (g *Generator) Int32N(n int32) int32 {
	if n <= 0 {
		return 0
	}
	return int32(g.Uint32N(uint32(n)))
}

// Int64 returns a random 63-bit non-negative integer as an int64 without
// modulo bias.
func (g *Generator) Int64() int64 {
	return int64(g.Uint64() & 0x7FFFFFFF_FFFFFFFF)
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Returns 0 when n <= 0.
func (g *Generator) Int64N(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return int64(g.Uint64N(uint64(n)))
}

// Int returns a non-negative integer without bias.
func (g *Generator) Int() int {
	// Reduce through the high bits so 32-bit platforms do not end up with
	// the weak low half of the output word.
	return int(g.Int64() >> (64 - bits.UintSize))
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Returns 0 when n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Uint64N(uint64(n)))
}

// UintN returns, as an uint, a random integer in [0,n) without modulo bias.
// Returns 0 when n is 0.
func (g *Generator) UintN(n uint) uint {
	return uint(g.Uint64N(uint64(n)))
}

// Uint64Range returns a random uint64 in range [low,high) without modulo
// bias.
// Returns low when high <= low.
func (g *Generator) Uint64Range(low, high uint64) uint64 {
	if high <= low {
		return low
	}
	return low + g.Uint64N(high-low)
}

// Int64Range returns a random int64 in range [low,high) without modulo bias.
// The bounds may be anywhere in the int64 range, including spanning zero.
// Returns low when high <= low.
func (g *Generator) Int64Range(low, high int64) int64 {
	if high <= low {
		return low
	}
	// The unsigned difference of the bounds always fits a uint64, and
	// adding the draw back to low wraps to the correct signed value.
	span := uint64(high) - uint64(low)
	return int64(uint64(low) + g.Uint64N(span))
}

// Duration returns a random duration in [0,n) without modulo bias.
// Returns 0 when n <= 0.
func (g *Generator) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(g.Uint64N(uint64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Does nothing when n < 1.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	// Shuffle really ought not be called with n that doesn't fit in 32 bits.
	// Not only will it take a very long time, but with 2³¹! possible permutations,
	// there's no way that any PRNG can have a big enough internal state to
	// generate even a minuscule percentage of the possible permutations.
	// Nevertheless, the right API signature accepts an int n, so handle it as best we can.
	for i := n - 1; i > 0; i-- {
		j := int(g.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}

// ShuffleSlice randomizes the order of all elements in the provided slice.
func ShuffleSlice[T any](g *Generator, s []T) {
	g.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Read fills s with the little-endian bytes of successive generator outputs.
// The returned n is always len(s) and the error is always nil.  Reading
// consumes one output per eight bytes, rounded up, from the same stream the
// other methods draw on.
func (g *Generator) Read(s []byte) (n int, err error) {
	for len(s)-n >= 8 {
		binary.LittleEndian.PutUint64(s[n:], g.Uint64())
		n += 8
	}
	if n < len(s) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], g.Uint64())
		n += copy(s[n:], b[:len(s)-n])
	}
	return n, nil
}

// BigInt returns a uniform random value in [0,max).
// Returns a new zero big.Int when max is nil or not positive.
func (g *Generator) BigInt(max *big.Int) *big.Int {
	if max == nil || max.Sign() <= 0 {
		return new(big.Int)
	}
	// Will never error with our reader.
	n, _ := rand.Int(g, max)
	return n
}
