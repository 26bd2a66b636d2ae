// Package odds answers "1 in N" questions on top of an explicitly owned
// xoshiro256** generator.
package odds

import (
	"golang.org/x/exp/constraints"

	"github.com/daystram/odds/prng"
	"github.com/daystram/odds/sample"
)

// OneIn reports true with probability 1/bound.
//
// A bound of 0 or 1 always reports true. "1 in 1" is a certainty; "1 in 0"
// is undefined and is treated the same way for compatibility, so callers that
// mean "never" must check for 0 themselves.
func OneIn[T constraints.Unsigned](src sample.Source, bound T) bool {
	if bound <= 1 {
		return true
	}
	return sample.Below(src, bound) == 0
}

// Roller owns a generator. It is not safe for concurrent use; use Split to
// hand each goroutine its own Roller.
type Roller struct {
	rng  *prng.Xoshiro256
	seed uint64
}

type Option func(*Roller)

func WithSeed(seed uint64) Option {
	return func(r *Roller) {
		r.seed = seed
	}
}

// WithEntropy seeds from the platform randomness source. This is the default.
func WithEntropy() Option {
	return func(r *Roller) {
		r.seed = prng.EntropySeed()
	}
}

func New(opts ...Option) *Roller {
	if len(opts) == 0 {
		opts = []Option{WithEntropy()}
	}
	r := &Roller{}
	for _, opt := range opts {
		opt(r)
	}
	r.rng = prng.NewXoshiro256(r.seed)
	return r
}

// Seed resets the stream; the same seed replays the same draws.
func (r *Roller) Seed(seed uint64) {
	r.seed = seed
	r.rng.Seed(seed)
}

// LastSeed returns the seed most recently applied, including one taken from
// entropy. A Roller returned by Split reports its parent's seed.
func (r *Roller) LastSeed() uint64 {
	return r.seed
}

func (r *Roller) Uint64() uint64 {
	return r.rng.Uint64()
}

func (r *Roller) Uint32() uint32 {
	return r.rng.Uint32()
}

func (r *Roller) Below(bound uint64) uint64 {
	return sample.Below(r.rng, bound)
}

func (r *Roller) OneIn(bound uint32) bool {
	return OneIn(r.rng, bound)
}

func (r *Roller) Roll(d Denominator) bool {
	return OneIn(r.rng, uint32(d))
}

func (r *Roller) State() [4]uint64 {
	return r.rng.State()
}

// Jump advances the stream by 2^128 draws.
func (r *Roller) Jump() {
	r.rng.Jump()
}

// Split returns a Roller that continues r's current stream and moves r 2^128
// draws ahead, so repeated calls yield non-overlapping streams.
func (r *Roller) Split() *Roller {
	child := &prng.Xoshiro256{}
	child.SetState(r.rng.State())
	r.rng.Jump()
	return &Roller{rng: child, seed: r.seed}
}
