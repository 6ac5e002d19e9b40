package systems

import (
	"math/rand"

	"github.com/automoto/bamboo/systems/factory"
)

// Random number generator for AI decisions and cosmetic effects.
// Uses fixed seed for deterministic replay support.
var rng = rand.New(rand.NewSource(42))

// SetRandSource replaces the random source shared by the systems and the
// entity factory.
func SetRandSource(src rand.Source) {
	rng = rand.New(src)
	factory.UseRand(rng)
}

func init() {
	factory.UseRand(rng)
}
