// Package dice provides the randomness capability threaded through the
// autoresolve engine.
package dice

import (
	"math/rand/v2"
)

// Source is the randomness provider for every roll in a battle.
//
// A Source is owned by a single goroutine; workers each build their own.
type Source interface {
	// IntN returns a non-negative random int in [0, n). n must be > 0.
	IntN(n int) int
}

// New returns a deterministic source for the given seed
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a source seeded from the runtime's entropy
func NewRandom() *rand.Rand {
	return New(rand.Uint64())
}

// Roll returns a uniform integer in [lo, hi], both ends inclusive.
// hi < lo returns lo.
func Roll(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Sum rolls count dice in [lo, hi] and returns the total
func Sum(src Source, count, lo, hi int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += Roll(src, lo, hi)
	}
	return total
}

// Chance returns true with probability 1/n
func Chance(src Source, n int) bool {
	return Roll(src, 1, n) == 1
}
