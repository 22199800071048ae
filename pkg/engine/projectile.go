package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
)

// ProjectileSystem retires bullets that travelled farther than the fire
// range from where they were fired.
type ProjectileSystem struct {
	store     *entity.Store
	fireRange float64
	frame     *Frame
	bus       *event.Bus
}

// NewProjectileSystem creates the projectile lifecycle system
func NewProjectileSystem(store *entity.Store, fireRange float64, frame *Frame, bus *event.Bus) *ProjectileSystem {
	return &ProjectileSystem{store: store, fireRange: fireRange, frame: frame, bus: bus}
}

// Update culls expired bullets
func (s *ProjectileSystem) Update(dt float32) {
	cmd := s.store.Commands()
	var expired []entity.ID

	for id, bullet := range s.store.Bullets.All() {
		pos, ok := s.store.Positions.Get(id)
		if !ok {
			continue
		}
		if pos.Distance(bullet.Origin) > s.fireRange {
			cmd.Destroy(id)
			expired = append(expired, id)
		}
	}

	cmd.Flush()
	for _, id := range expired {
		s.bus.Publish(event.NewEntityEvent(event.BulletExpired, s, uint64(id), s.frame.Tick))
	}
}

// Remove satisfies the ecs.System interface
func (s *ProjectileSystem) Remove(ecs.BasicEntity) {}

// Priority satisfies ecs.Prioritizer
func (s *ProjectileSystem) Priority() int { return PriorityProjectile }
