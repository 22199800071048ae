package engine

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// RandomSource supplies uniformly distributed values in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandom returns a PCG backed source. Seed 0 picks a random seed.
func NewRandom(seed uint64) RandomSource {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomDirection returns a unit vector with a uniformly random angle
func RandomDirection(rng RandomSource) physics.Vector2D {
	return physics.FromAngle(rng.Float64()*2*math.Pi, 1)
}
