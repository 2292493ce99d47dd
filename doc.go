// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package acorn implements the ACORN family of additive congruential
pseudorandom number generators.

An ACORN generator of order k maintains k+1 unsigned values.  Every step adds
each value into the one above it, working upward so that each addition sees
the result of the one before it, and the topmost value is the output.  With
the modulus fixed at 2^64 the step is a handful of additions with natural
wraparound, so sequences are cheap to produce, and the defining property of
the family is that they are completely reproducible: the same seed and order
yield the same stream on every platform, which is what makes the package
useful for simulation, property-based testing, fuzzing, and deterministic
load generation.

In addition to raw uint64 outputs, a generator can produce floats in [0,1),
unbiased bounded integers of the common sizes, values with an exact decimal
digit count, durations, shuffles, big integers, and byte streams via
io.Reader, all derived from the high-order bits of the raw outputs.

# Seeding and quality

Reproducibility cuts both ways: a generator is exactly as unpredictable as
its seed, which is to say not at all.  This package must not be used for
key material, tokens, or anything else security sensitive.  For that, use a
CSPRNG such as crypto/rand.

Statistical quality improves with the order.  Orders as low as 1 are
permitted and well defined but show obvious structure; RecommendedOrder is a
sensible default.  Odd seeds achieve the full period of 2^64 steps, while an
even seed confines outputs to multiples of gcd(seed, 2^64).  The first
outputs after seeding remain close to the seed value until the additions wrap
the modulus, so callers that want well-mixed values immediately should
discard a few outputs with Skip, for example Skip(20) on a generator of
RecommendedOrder.  Finally, the low-order bits of raw outputs cycle with
short periods, a property shared by all power-of-two-modulus ACORN
generators; the derived methods already account for this by consuming only
high-order bits.

# Errors

Errors returned by this package are of type acorn.Error and have full support
for the standard library errors.Is and errors.As functions.  The only defined
kind is ErrInvalidOrder, returned by New for an order of zero.
*/
package acorn
