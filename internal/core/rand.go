package core

import (
	"math/rand"
	"time"
)

// Rand is the random source injected into games.
// *math/rand.Rand satisfies it; tests may supply scripted sources.
type Rand interface {
	Intn(n int) int
	Int63n(n int64) int64
	Float64() float64
}

// NewRand creates a seeded random source.
// A zero seed means "seed from the current time".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes n elements in place using the given source.
func Shuffle(rng Rand, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		swap(i, j)
	}
}

// DurationBetween returns a random duration in [lo, hi].
// If hi <= lo it returns lo.
func DurationBetween(rng Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int63n(int64(hi-lo)+1))
}
