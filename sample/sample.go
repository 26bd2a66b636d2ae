// Package sample maps raw 64-bit draws onto uniformly distributed integers
// in [0, bound) without modulo bias.
package sample

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

type Source interface {
	Uint64() uint64
}

// Below returns a uniform value in [0, bound) using Lemire's multiply-high
// method. A zero bound yields 0 without consuming a draw.
//
// The rejection loop has no retry cap: a draw is rejected with probability
// below bound/2^64, so the expected number of draws is close to 1 but the
// worst case is unbounded.
func Below[T constraints.Unsigned](src Source, bound T) T {
	n := uint64(bound)
	if n == 0 {
		return 0
	}
	if n&(n-1) == 0 {
		return T(src.Uint64() & (n - 1))
	}
	hi, lo := bits.Mul64(src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(src.Uint64(), n)
		}
	}
	return T(hi)
}

// BelowRejection is the portable variant of Below: draws at or above the
// largest multiple of bound are discarded and the rest reduced modulo bound.
// It is unbiased as well but consumes a different number of draws, so the
// two do not produce the same sequence.
func BelowRejection[T constraints.Unsigned](src Source, bound T) T {
	n := uint64(bound)
	if n == 0 {
		return 0
	}
	if n&(n-1) == 0 {
		return T(src.Uint64() & (n - 1))
	}
	limit := (math.MaxUint64 / n) * n
	for {
		if x := src.Uint64(); x < limit {
			return T(x % n)
		}
	}
}
