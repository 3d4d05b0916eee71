// Package gen - deterministic RNG plumbing for instance generation.
package gen

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass Seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 selects defaultRNGSeed; any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, so retry attempts run on
// decorrelated streams while staying a pure function of (parent, stream).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
