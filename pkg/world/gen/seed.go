package gen

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// mix64 is the splitmix64 finalizer.
func mix64(z uint64) uint64 {
	z += goldenRatio64
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// DeriveSeed maps a position and a global seed to a reproducible seed.
// It is total over all integer inputs and does not depend on the platform.
func DeriveSeed(x, y int, seed int64) uint64 {
	ux := uint64(int64(x))
	uy := uint64(int64(y))
	v := mix64(uint64(seed))
	v = mix64(v ^ (ux * goldenRatio64))
	return mix64(v ^ (uy * 0xc2b2ae3d27d4eb4f))
}

// newBlockRand returns a fresh PCG stream for one derived seed.
func newBlockRand(s uint64) *rand.Rand {
	return rand.New(rand.NewPCG(s, mix64(s+goldenRatio64)))
}

// RandomSeed returns a non-deterministic global seed, for callers that
// leave the seed unset.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Int64()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
