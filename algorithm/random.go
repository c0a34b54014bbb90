package algorithm

import (
	rand "math/rand/v2"

	"github.com/zeebo/xxh3"
)

// RandSource shuffles index sequences for RandomClosedLoop.
//
// *math/rand/v2.Rand satisfies this interface. Implementations must produce a
// uniform permutation (Fisher–Yates or equivalent).
type RandSource interface {
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// seedMix decorrelates the second PCG word from the first.
const seedMix = 0x9e3779b97f4a7c15

// NewSeededSource returns a deterministic source for the given seed.
//
// Two sources created with the same seed produce the same shuffle sequence,
// which makes draws reproducible in tests and audits.
//
// Example:
//
//	draw := algorithm.NewRandomClosedLoop(algorithm.NewSeededSource(42))
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedMix)) //nolint:gosec // draws are not security sensitive
}

// NewSystemSource returns a source seeded from the runtime's random state.
func NewSystemSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // draws are not security sensitive
}

// SeedFromPhrase derives a seed from a human-friendly phrase.
//
// A group can agree on a phrase ("north pole 2026") instead of a number and
// still reproduce the same draw.
func SeedFromPhrase(phrase string) uint64 {
	return xxh3.HashString(phrase)
}
