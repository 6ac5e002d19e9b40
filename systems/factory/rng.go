package factory

import "math/rand"

var rng = rand.New(rand.NewSource(42))

// UseRand makes the factory draw from r, so that systems and factory share
// one source.
func UseRand(r *rand.Rand) {
	rng = r
}
