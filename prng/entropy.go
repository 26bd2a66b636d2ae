package prng

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"
	"time"
)

const entropyWhitening = 0xD6E8FEB86659FD93

// EntropySeed derives a seed from the platform randomness source. Three
// independent pulls are folded together so that no single read decides the
// result.
func EntropySeed() uint64 {
	var buf [24]byte
	if _, err := rand.Read(buf[:]); err != nil {
		fillFromClock(&buf, uint64(time.Now().UnixNano()))
	}
	a := binary.LittleEndian.Uint64(buf[0:8])
	b := binary.LittleEndian.Uint64(buf[8:16])
	c := binary.LittleEndian.Uint64(buf[16:24])
	return mixEntropy(a, b, c)
}

// fillFromClock stands in for the platform source by expanding a single clock
// reading into all three words.
func fillFromClock(buf *[24]byte, nanos uint64) {
	sm := NewSplitMix64(nanos)
	for k := 0; k < len(buf); k += 8 {
		binary.LittleEndian.PutUint64(buf[k:], sm.Uint64())
	}
}

func mixEntropy(a, b, c uint64) uint64 {
	return a ^ bits.RotateLeft64(b, 21) ^ bits.RotateLeft64(c, 43) ^ entropyWhitening
}
