package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// MotionSystem advances every moving entity by its velocity and wraps it
// around the viewport.
type MotionSystem struct {
	store  *entity.Store
	bounds physics.Bounds
}

// NewMotionSystem creates a motion system for the given viewport bounds
func NewMotionSystem(store *entity.Store, bounds physics.Bounds) *MotionSystem {
	return &MotionSystem{store: store, bounds: bounds}
}

// Update integrates one tick. dt is ignored: velocities are per tick.
func (s *MotionSystem) Update(dt float32) {
	for id, vel := range s.store.Velocities.All() {
		pos, ok := s.store.Positions.Get(id)
		if !ok {
			continue
		}
		next := pos.Add(vel.Vector2D)
		pos.Vector2D = s.bounds.Wrap(next, s.store.Margin(id))
	}
}

// Remove satisfies the ecs.System interface
func (s *MotionSystem) Remove(ecs.BasicEntity) {}

// Priority satisfies ecs.Prioritizer
func (s *MotionSystem) Priority() int { return PriorityMotion }
