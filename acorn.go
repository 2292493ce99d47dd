// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package acorn

import (
	"math"
	"math/bits"
)

// References:
//   [ACORN] ACORN - A New Method for Generating Sequences of Uniformly
//     Distributed Pseudo-random Numbers (Wikramaratna)
//     Journal of Computational Physics 83 (1989), 16-31
//
//   [TECR] Theoretical and empirical convergence results for additive
//     congruential random number generators (Wikramaratna)
//     Journal of Computational and Applied Mathematics 233 (2010), 2302-2311
//
//   [ACWEB] ACORN concepts, algorithm and implementation
//     http://acorn.wikramaratna.org/concept.html

// RecommendedOrder is a generator order suitable for general use.  The
// statistical quality of the sequence improves with the order, with very low
// orders showing visible structure, and [ACWEB] suggests an order of at least
// this value together with a large odd seed for demanding applications.
// Higher orders cost proportionally more memory and time per generated value.
const RecommendedOrder = 45

// Generator is an additive congruential (ACORN) pseudorandom number
// generator.  The sequence it produces is completely determined by the seed
// and order provided when it is created, which makes it suitable for
// simulation, fuzzing, and other workloads that need reproducible streams.
// It must not be used for secrets or any other security-sensitive purpose.
//
// Generator methods are not safe for concurrent access.  Callers that share
// one across goroutines must provide their own synchronization, though
// separate generators per goroutine are cheap and avoid the locking overhead
// entirely.
type Generator struct {
	// seed is retained for the accessor only.  The evolving values live in
	// state.
	seed uint64

	// state holds the order+1 rows of the generator.  state[0] never changes
	// after seeding and state[len(state)-1] is the output row.
	state []uint64

	// coef is scratch space for the binomial coefficients used by Skip.  It
	// shares a backing array with state.
	coef []uint64
}

// New returns a generator of the provided order with every row of its state
// initialized to the provided seed.
//
// The order is the depth of the additive lattice.  Values as small as 1 are
// accepted and produce well-defined sequences, however small orders have poor
// statistical quality.  Use RecommendedOrder unless there is a specific
// reason not to.  An order of zero is the only rejected input and results in
// an error with kind ErrInvalidOrder.
//
// Seeds may be any value.  Odd seeds achieve the maximum period of the
// generator, while a seed with g = gcd(seed, 2^64) > 1 confines every output
// to multiples of g, and a zero seed produces the all-zero sequence.  The
// first values after seeding are also strongly correlated with the seed
// itself, so callers wanting well-mixed output from the start should warm the
// generator up with Skip.
func New(seed uint64, order uint16) (*Generator, error) {
	if order == 0 {
		str := "generator order must be nonzero"
		return nil, makeError(ErrInvalidOrder, str)
	}

	// Lay the state rows and the skip scratch out in one allocation.
	rows := int(order) + 1
	backing := make([]uint64, 2*rows)
	g := &Generator{
		seed:  seed,
		state: backing[:rows:rows],
		coef:  backing[rows:],
	}
	for i := range g.state {
		g.state[i] = seed
	}
	return g, nil
}

// Order returns the order the generator was created with.
func (g *Generator) Order() uint16 {
	return uint16(len(g.state) - 1)
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Uint64 advances the generator a single step and returns the new value of
// the output row.
func (g *Generator) Uint64() uint64 {
	// One ACORN step adds each row into the row above it, reusing the
	// already-updated value, with the modulus applied by the natural uint64
	// wraparound.
	s := g.state
	for i := 1; i < len(s); i++ {
		s[i] += s[i-1]
	}
	return s[len(s)-1]
}

// Skip advances the generator by n steps as if Uint64 had been called n times
// with the results discarded.  It runs in time proportional to the square of
// the order regardless of n and does not allocate.
//
// Skipping a fresh generator is the recommended way to decorrelate its first
// outputs from the seed: with RecommendedOrder and a seed of at least a few
// hundred thousand, Skip(20) fully mixes the state.  Skipping is also useful
// for positioning several generators at disjoint sections of one stream.
//
// Skip(a) followed by Skip(b) is equivalent to Skip(a+b) so long as a+b does
// not overflow.
func (g *Generator) Skip(n uint64) {
	if n == 0 {
		return
	}

	// The binomial arguments below need n-1+order to fit a uint64, so walk
	// oversized jumps down to the supported range first.  This takes at most
	// order single steps.
	k := len(g.state) - 1
	for n > math.MaxUint64-uint64(k) {
		g.Uint64()
		n--
	}

	// Advancing n steps multiplies the state vector by the n-th power of a
	// lower-triangular all-ones band matrix, whose entries are binomial
	// coefficients:
	//
	//	y'[j] = sum(d = 0..j, C(n-1+d, d)*y[j-d])  (mod 2^64)
	//
	// The coefficients are produced incrementally via
	//
	//	C(n-1+d, d) = C(n-2+d, d-1) * (n-1+d) / d
	//
	// The division is exact over the integers but has no direct analogue
	// modulo 2^64, so the running value is tracked as an odd part, where
	// dividing is multiplying by the odd inverse, and a separate power of
	// two.  Kummer's theorem guarantees the power never goes negative, and
	// once it reaches 64 the coefficient is zero modulo 2^64.
	coef := g.coef[:k+1]
	coef[0] = 1
	acc := uint64(1) // odd part of the running coefficient, mod 2^64
	e := 0           // exponent of two of the running coefficient
	for d := 1; d <= k; d++ {
		num := n - 1 + uint64(d)
		den := uint64(d)
		tz := bits.TrailingZeros64(num)
		e += tz
		acc *= num >> tz
		tz = bits.TrailingZeros64(den)
		e -= tz
		acc *= oddInverse(den >> tz)
		if e < 64 {
			coef[d] = acc << e
		} else {
			coef[d] = 0
		}
	}

	// Convolve from the output row downward so every read still sees the
	// original value of the rows beneath it.
	s := g.state
	for j := k; j >= 1; j-- {
		v := s[j]
		for d := 1; d <= j; d++ {
			v += coef[d] * s[j-d]
		}
		s[j] = v
	}
}

// oddInverse returns the multiplicative inverse of x modulo 2^64.  x must be
// odd.
func oddInverse(x uint64) uint64 {
	// Any odd x is its own inverse modulo 8, and each Newton step doubles
	// the number of correct low-order bits, so five steps reach 64.
	inv := x
	for i := 0; i < 5; i++ {
		inv *= 2 - x*inv
	}
	return inv
}
