package prng

const (
	goldenGamma = 0x9E3779B97F4A7C15

	mixMul1 = 0xBF58476D1CE4E5B9
	mixMul2 = 0x94D049BB133111EB
)

// SplitMix64 expands a single seed word into a stream of well-mixed words.
// It is only used to initialize Xoshiro256.
type SplitMix64 struct {
	s uint64
}

func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{s: seed}
}

func (r *SplitMix64) Uint64() uint64 {
	r.s += goldenGamma
	z := r.s
	z = (z ^ (z >> 30)) * mixMul1
	z = (z ^ (z >> 27)) * mixMul2
	return z ^ (z >> 31)
}

// Expand returns the first four SplitMix64 outputs for seed.
func Expand(seed uint64) [4]uint64 {
	sm := SplitMix64{s: seed}
	return [4]uint64{sm.Uint64(), sm.Uint64(), sm.Uint64(), sm.Uint64()}
}
