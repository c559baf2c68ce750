package study

import (
	"math/rand"
	"time"
)

// Shuffle returns a uniformly random permutation of items without modifying
// the input. It walks from the last position down to 1 and swaps each
// position with one drawn uniformly from [0, i].
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewRand returns a random source seeded with seed, or with the clock when
// seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
