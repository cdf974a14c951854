// Package rng wraps math/rand with the bounded helpers the generator and the
// combat code share. Every caller passes its own *rand.Rand so a level can be
// replayed from a seed.
package rng

import (
	"math/rand"
	"time"
)

// New returns a generator seeded with seed. A zero seed picks one from the clock.
func New(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Int returns a uniform integer in [0, n). Non-positive n yields 0.
func Int(r *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return r.Intn(n)
}

// Between returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func Between(r *rand.Rand, lo, hi int) int {
	return lo + Int(r, hi-lo+1)
}

// OneIn reports true with probability 1/n. Non-positive n never fires.
func OneIn(r *rand.Rand, n int) bool {
	if n <= 0 {
		return false
	}
	return r.Intn(n) == 0
}
