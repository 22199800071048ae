package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Spawner creates entities. Both *entity.Store and *entity.Commands
// implement it.
type Spawner interface {
	Spawn(components ...entity.Component) entity.ID
}

// Impact is a bullet striking an asteroid
type Impact struct {
	Bullet   entity.ID
	Asteroid entity.ID
	Position physics.Vector2D // asteroid position at impact
	Size     entity.Size
}

// Fragmentation is the outcome of resolving an impact
type Fragmentation struct {
	Impact
	Fragments []entity.ID
}

// Fragmenter resolves impacts: the bullet and asteroid are destroyed and
// a non-small asteroid is replaced by smaller fragments moving in random
// directions.
type Fragmenter struct {
	cfg *config.Config
	rng RandomSource
}

// NewFragmenter creates a fragmenter using rng for fragment directions
func NewFragmenter(cfg *config.Config, rng RandomSource) *Fragmenter {
	return &Fragmenter{cfg: cfg, rng: rng}
}

// Resolve queues the destruction and fragment spawns for one impact
func (f *Fragmenter) Resolve(cmd *entity.Commands, impact Impact) Fragmentation {
	cmd.Destroy(impact.Bullet)
	cmd.Destroy(impact.Asteroid)

	result := Fragmentation{Impact: impact}
	child, ok := impact.Size.Child()
	if !ok {
		return result
	}
	for i := 0; i < f.cfg.Asteroid.FragmentCount; i++ {
		result.Fragments = append(result.Fragments, f.Spawn(cmd, impact.Position, child))
	}
	return result
}

// Spawn creates one asteroid of the given size at pos, drifting in a
// random direction at the configured asteroid speed.
func (f *Fragmenter) Spawn(sp Spawner, pos physics.Vector2D, size entity.Size) entity.ID {
	vel := RandomDirection(f.rng).Scale(f.cfg.Asteroid.Speed)
	return sp.Spawn(
		entity.Position{Vector2D: pos},
		entity.Velocity{Vector2D: vel},
		entity.Scale{Vector2D: physics.Splat(f.ScaleFor(size))},
		entity.Asteroid{Size: size},
	)
}

// ScaleFor maps an asteroid size to its visual scale
func (f *Fragmenter) ScaleFor(size entity.Size) float64 {
	switch size {
	case entity.SizeBig:
		return f.cfg.Asteroid.BigScale
	case entity.SizeMedium:
		return f.cfg.Asteroid.MediumScale
	default:
		return f.cfg.Asteroid.SmallScale
	}
}
