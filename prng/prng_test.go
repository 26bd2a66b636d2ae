package prng

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestSplitMix64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		seed uint64
		want [4]uint64
	}{
		{
			name: "seed 0",
			seed: 0,
			want: [4]uint64{0xE220A8397B1DCDAF, 0x6E789E6AA1B965F4, 0x06C45D188009454F, 0xF88BB8A8724C81EC},
		},
		{
			name: "seed 1",
			seed: 1,
			want: [4]uint64{0x910A2DEC89025CC1, 0xBEEB8DA1658EEC67, 0xF893A2EEFB32555E, 0x71C18690EE42C90B},
		},
		{
			name: "seed 1337",
			seed: 1337,
			want: [4]uint64{13161956497586561035, 14663483216071361993, 3765287255879986010, 8575537320440087138},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Expand(tt.seed); got != tt.want {
				t.Errorf("unexpected expansion: got=%#x want=%#x", got, tt.want)
			}
			sm := NewSplitMix64(tt.seed)
			for i, want := range tt.want {
				if got := sm.Uint64(); got != want {
					t.Errorf("unexpected output %d: got=%#x want=%#x", i, got, want)
				}
			}
		})
	}
}

func TestXoshiro256Uint64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		seed uint64
		want []uint64
	}{
		{
			name: "seed 0",
			seed: 0,
			want: []uint64{11091344671253066420, 13793997310169335082, 1900383378846508768},
		},
		{
			name: "seed 1",
			seed: 1,
			want: []uint64{12966619160104079557, 9600361134598540522, 10590380919521690900},
		},
		{
			name: "seed 1337",
			seed: 1337,
			want: []uint64{12468955128717782748, 15024386940265324015, 14342583032507416131},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewXoshiro256(tt.seed)
			for i, want := range tt.want {
				if got := r.Uint64(); got != want {
					t.Errorf("unexpected draw %d: got=%d want=%d", i, got, want)
				}
			}
		})
	}
}

func TestXoshiro256Uint32(t *testing.T) {
	t.Parallel()
	r := NewXoshiro256(1337)
	if got, want := r.Uint32(), uint32(2903154848); got != want {
		t.Errorf("unexpected draw: got=%d want=%d", got, want)
	}
	if got, want := r.Uint32(), uint32(15024386940265324015>>32); got != want {
		t.Errorf("unexpected draw: got=%d want=%d", got, want)
	}
}

func TestXoshiro256Determinism(t *testing.T) {
	t.Parallel()
	for _, seed := range []uint64{0, 1, 42, 1337, math.MaxUint64} {
		a, b := NewXoshiro256(seed), NewXoshiro256(seed)
		for i := 0; i < 10_000; i++ {
			if x, y := a.Uint64(), b.Uint64(); x != y {
				t.Fatalf("streams diverged: seed=%d draw=%d got=%d want=%d", seed, i, x, y)
			}
		}
	}
}

func TestXoshiro256Reseed(t *testing.T) {
	t.Parallel()
	r := NewXoshiro256(1337)
	first := make([]uint64, 64)
	for i := range first {
		first[i] = r.Uint64()
	}
	r.Seed(99)
	_ = r.Uint64()
	r.Seed(1337)
	for i, want := range first {
		if got := r.Uint64(); got != want {
			t.Fatalf("re-seed did not replay: draw=%d got=%d want=%d", i, got, want)
		}
	}
}

func TestXoshiro256NonZeroState(t *testing.T) {
	t.Parallel()
	seeds := []uint64{0, 1, 2, 1 << 63, math.MaxUint64, goldenGamma}
	for s := uint64(0); s < 4096; s++ {
		seeds = append(seeds, s*0x9E3779B97F4A7C15)
	}
	for _, seed := range seeds {
		r := NewXoshiro256(seed)
		if isZero(r.State()) {
			t.Fatalf("zero state after seeding: seed=%d", seed)
		}
		for i := 0; i < 16; i++ {
			r.Uint64()
			if isZero(r.State()) {
				t.Fatalf("zero state after draw: seed=%d draw=%d", seed, i)
			}
		}
	}
}

func TestXoshiro256SetStateZero(t *testing.T) {
	t.Parallel()
	r := &Xoshiro256{}
	r.SetState([4]uint64{})
	if got := r.State(); got != fallbackState {
		t.Errorf("unexpected state: got=%#x want=%#x", got, fallbackState)
	}
	if got, want := r.Uint64(), uint64(4775811262073325006); got != want {
		t.Errorf("unexpected draw: got=%d want=%d", got, want)
	}
}

func TestXoshiro256ZeroValue(t *testing.T) {
	t.Parallel()
	var r Xoshiro256
	if got := r.State(); got != defaultState {
		t.Errorf("unexpected state: got=%#x want=%#x", got, defaultState)
	}
	for i, want := range []uint64{7163475013842208595, 3678449514600796147} {
		if got := r.Uint64(); got != want {
			t.Errorf("unexpected draw %d: got=%d want=%d", i, got, want)
		}
	}
}

func TestXoshiro256Jump(t *testing.T) {
	t.Parallel()
	r := NewXoshiro256(1337)
	r.Jump()
	for i, want := range []uint64{12630531053944416775, 10973645814897024117} {
		if got := r.Uint64(); got != want {
			t.Errorf("unexpected draw %d: got=%d want=%d", i, got, want)
		}
	}

	base, jumped := NewXoshiro256(1337), NewXoshiro256(1337)
	jumped.Jump()
	seen := make(map[uint64]struct{}, 1024)
	for i := 0; i < 1024; i++ {
		seen[base.Uint64()] = struct{}{}
	}
	for i := 0; i < 1024; i++ {
		if _, ok := seen[jumped.Uint64()]; ok {
			t.Fatalf("jumped stream overlaps base stream at draw %d", i)
		}
	}
}

func TestMixEntropy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, c uint64
		want    uint64
	}{
		{a: 0, b: 0, c: 0, want: entropyWhitening},
		{a: 1, b: 2, c: 3, want: 15485880998374800786},
	}
	for _, tt := range tests {
		if got := mixEntropy(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("unexpected mix(%d, %d, %d): got=%d want=%d", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestEntropySeed(t *testing.T) {
	t.Parallel()
	// collisions across a handful of pulls would mean the source is not being read
	seen := make(map[uint64]struct{})
	for i := 0; i < 8; i++ {
		s := EntropySeed()
		if _, ok := seen[s]; ok {
			t.Fatalf("repeated entropy seed: %d", s)
		}
		seen[s] = struct{}{}
	}
}

func TestFillFromClock(t *testing.T) {
	t.Parallel()
	var buf [24]byte
	fillFromClock(&buf, 0)
	want := []uint64{0xe220a8397b1dcdaf, 0x6e789e6aa1b965f4, 0x06c45d188009454f}
	for k, w := range want {
		if got := binary.LittleEndian.Uint64(buf[k*8:]); got != w {
			t.Errorf("unexpected word %d: got=%#x want=%#x", k, got, w)
		}
	}
}
