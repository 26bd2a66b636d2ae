package prng

import "math/bits"

var (
	// used when a seed expands to the all-zero state
	fallbackState = [4]uint64{
		0x9E3779B97F4A7C15,
		0xBF58476D1CE4E5B9,
		0x94D049BB133111EB,
		0xD1B54A32D192ED03,
	}

	// held by the zero value
	defaultState = [4]uint64{
		0x123456789ABCDEF0,
		0xCAFEBABEDEADC0DE,
		0x0F1E2D3C4B5A6978,
		0x1122334455667788,
	}

	jumpPoly = [4]uint64{
		0x180EC6D33CFD0ABA,
		0xD5A61266F0C9392C,
		0xA9582618E03FC9AA,
		0x39ABDC4529B1661C,
	}
)

// Xoshiro256 is the xoshiro256** generator. It is not safe for concurrent use;
// give each goroutine its own instance (see Jump).
type Xoshiro256 struct {
	s [4]uint64
}

func NewXoshiro256(seed uint64) *Xoshiro256 {
	r := &Xoshiro256{}
	r.Seed(seed)
	return r
}

func (r *Xoshiro256) Seed(seed uint64) {
	r.SetState(Expand(seed))
}

// SetState replaces the generator state. An all-zero state is substituted
// with a fixed non-zero vector.
func (r *Xoshiro256) SetState(s [4]uint64) {
	if isZero(s) {
		s = fallbackState
	}
	r.s = s
}

func (r *Xoshiro256) State() [4]uint64 {
	if isZero(r.s) {
		return defaultState
	}
	return r.s
}

func (r *Xoshiro256) Uint64() uint64 {
	if isZero(r.s) {
		r.s = defaultState
	}
	result := bits.RotateLeft64(r.s[1]*5, 7) * 9
	t := r.s[1] << 17

	r.s[2] ^= r.s[0]
	r.s[3] ^= r.s[1]
	r.s[1] ^= r.s[2]
	r.s[0] ^= r.s[3]

	r.s[2] ^= t
	r.s[3] = bits.RotateLeft64(r.s[3], 45)

	return result
}

// Uint32 returns the upper half of a 64-bit draw; the low bits are the
// statistically weaker ones.
func (r *Xoshiro256) Uint32() uint32 {
	return uint32(r.Uint64() >> 32)
}

// Jump advances the state by 2^128 draws. Calling Jump on a copy yields a
// stream that does not overlap with the original for 2^128 draws.
func (r *Xoshiro256) Jump() {
	if isZero(r.s) {
		r.s = defaultState
	}
	var s [4]uint64
	for _, poly := range jumpPoly {
		for b := 0; b < 64; b++ {
			if poly&(1<<b) != 0 {
				s[0] ^= r.s[0]
				s[1] ^= r.s[1]
				s[2] ^= r.s[2]
				s[3] ^= r.s[3]
			}
			r.Uint64()
		}
	}
	r.s = s
}

func isZero(s [4]uint64) bool {
	return s[0]|s[1]|s[2]|s[3] == 0
}
