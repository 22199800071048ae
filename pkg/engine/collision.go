package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ShipHit reports whether a ship overlaps an asteroid. The ship radius is
// its scale divided by divider, which makes the triangular hull harder to
// hit than its bounding circle.
func ShipHit(shipPos physics.Vector2D, shipScale float64, rockPos physics.Vector2D, rockScale, divider float64) bool {
	return physics.Overlaps(shipPos, rockPos, shipScale/divider+rockScale/2)
}

// BulletHit reports whether a bullet overlaps an asteroid
func BulletHit(bulletPos physics.Vector2D, bulletScale float64, rockPos physics.Vector2D, rockScale float64) bool {
	return physics.Circle{Center: bulletPos, Radius: bulletScale / 2}.
		Collides(physics.Circle{Center: rockPos, Radius: rockScale / 2})
}

// CollisionSystem destroys the ship when it touches an asteroid and hands
// bullet impacts to the fragmenter.
type CollisionSystem struct {
	store      *entity.Store
	cfg        *config.Config
	frame      *Frame
	bus        *event.Bus
	fragmenter *Fragmenter
}

// NewCollisionSystem creates the collision system
func NewCollisionSystem(store *entity.Store, cfg *config.Config, frame *Frame, bus *event.Bus, fragmenter *Fragmenter) *CollisionSystem {
	return &CollisionSystem{store: store, cfg: cfg, frame: frame, bus: bus, fragmenter: fragmenter}
}

// Update runs both scans against the post-motion positions and applies
// the resulting destroys and spawns once both scans are complete.
func (s *CollisionSystem) Update(dt float32) {
	cmd := s.store.Commands()

	lost := s.scanShips(cmd)
	var results []Fragmentation
	for _, impact := range s.scanBullets(cmd) {
		results = append(results, s.fragmenter.Resolve(cmd, impact))
	}

	cmd.Flush()

	for _, id := range lost {
		s.bus.Publish(event.NewEntityEvent(event.ShipDestroyed, s, uint64(id), s.frame.Tick))
	}
	for _, r := range results {
		s.bus.Publish(event.NewImpactEvent(s, uint64(r.Bullet), uint64(r.Asteroid), r.Size.String(), toUint64s(r.Fragments), s.frame.Tick))
	}
}

func (s *CollisionSystem) scanShips(cmd *entity.Commands) []entity.ID {
	var lost []entity.ID
	rocks := s.store.Asteroids.IDs()

	for shipID := range s.store.Ships.All() {
		shipPos, ok := s.store.Positions.Get(shipID)
		if !ok {
			continue
		}
		shipScale := s.diameter(shipID)

		for _, rockID := range rocks {
			rockPos, ok := s.store.Positions.Get(rockID)
			if !ok {
				continue
			}
			if ShipHit(shipPos.Vector2D, shipScale, rockPos.Vector2D, s.diameter(rockID), s.cfg.Ship.CollisionDivider) {
				cmd.Destroy(shipID)
				lost = append(lost, shipID)
				break
			}
		}
	}
	return lost
}

// scanBullets pairs every bullet with at most one asteroid, and every
// asteroid with at most one bullet.
func (s *CollisionSystem) scanBullets(cmd *entity.Commands) []Impact {
	var impacts []Impact
	rocks := s.store.Asteroids.IDs()

	for bulletID := range s.store.Bullets.All() {
		bulletPos, ok := s.store.Positions.Get(bulletID)
		if !ok {
			continue
		}
		bulletScale := s.diameter(bulletID)

		for _, rockID := range rocks {
			if cmd.Destroyed(rockID) {
				continue
			}
			rockPos, ok := s.store.Positions.Get(rockID)
			if !ok {
				continue
			}
			if !BulletHit(bulletPos.Vector2D, bulletScale, rockPos.Vector2D, s.diameter(rockID)) {
				continue
			}
			rock, _ := s.store.Asteroids.Get(rockID)
			// mark both consumed so neither matches again during this scan
			cmd.Destroy(bulletID)
			cmd.Destroy(rockID)
			impacts = append(impacts, Impact{
				Bullet:   bulletID,
				Asteroid: rockID,
				Position: rockPos.Vector2D,
				Size:     rock.Size,
			})
			break
		}
	}
	return impacts
}

func (s *CollisionSystem) diameter(id entity.ID) float64 {
	if scale, ok := s.store.Scales.Get(id); ok {
		return scale.Diameter()
	}
	return 0
}

// Remove satisfies the ecs.System interface
func (s *CollisionSystem) Remove(ecs.BasicEntity) {}

// Priority satisfies ecs.Prioritizer
func (s *CollisionSystem) Priority() int { return PriorityCollision }

func toUint64s(ids []entity.ID) []uint64 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = uint64(id)
	}
	return out
}
