package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/input"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ShipControlSystem turns player input into ship rotation, thrust, drag
// and bullets.
type ShipControlSystem struct {
	store *entity.Store
	cfg   *config.Config
	frame *Frame
	bus   *event.Bus
}

// NewShipControlSystem creates the ship controller
func NewShipControlSystem(store *entity.Store, cfg *config.Config, frame *Frame, bus *event.Bus) *ShipControlSystem {
	return &ShipControlSystem{store: store, cfg: cfg, frame: frame, bus: bus}
}

// Update applies the input of the current frame
func (s *ShipControlSystem) Update(dt float32) {
	in := s.frame.Input
	cmd := s.store.Commands()
	var fired []entity.ID

	for id, ship := range s.store.Ships.All() {
		pos, okPos := s.store.Positions.Get(id)
		vel, okVel := s.store.Velocities.Get(id)
		if !okPos || !okVel {
			continue
		}

		// left wins when both are held
		if in.IsHeld(input.RotateLeft) {
			ship.Rotation += s.cfg.Ship.RotationSpeed
		} else if in.IsHeld(input.RotateRight) {
			ship.Rotation -= s.cfg.Ship.RotationSpeed
		}

		heading := physics.Heading(ship.Rotation)
		if in.IsHeld(input.Accelerate) {
			thrust := heading.Scale(s.cfg.Ship.Acceleration)
			vel.Vector2D = vel.Add(thrust).ClampLength(s.cfg.Ship.MaxSpeed)
		} else {
			vel.Vector2D = vel.Scale(1 - s.cfg.Ship.Drag)
		}

		for n := in.Presses(input.Fire); n > 0; n-- {
			fired = append(fired, s.fire(cmd, pos.Vector2D, heading))
		}
	}

	cmd.Flush()
	for _, id := range fired {
		s.bus.Publish(event.NewEntityEvent(event.BulletFired, s, uint64(id), s.frame.Tick))
	}
}

func (s *ShipControlSystem) fire(cmd *entity.Commands, origin, heading physics.Vector2D) entity.ID {
	return cmd.Spawn(
		entity.Position{Vector2D: origin},
		entity.Velocity{Vector2D: heading.Scale(s.cfg.BulletSpeed())},
		entity.Scale{Vector2D: physics.Splat(s.cfg.Bullet.Scale)},
		entity.Bullet{Origin: origin},
	)
}

// Remove satisfies the ecs.System interface
func (s *ShipControlSystem) Remove(ecs.BasicEntity) {}

// Priority satisfies ecs.Prioritizer
func (s *ShipControlSystem) Priority() int { return PriorityShipControl }
