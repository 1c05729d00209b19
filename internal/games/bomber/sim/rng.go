package sim

import "math/rand"

// Rand is the randomness a World draws from. *rand.Rand satisfies it, and
// tests can substitute a scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded source suitable for New.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
}
