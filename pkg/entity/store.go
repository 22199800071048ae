package entity

import (
	"github.com/EngoEngine/ecs"
)

// Store maps entity identities to their components. Identities are
// allocated from ecs.BasicEntity so the same entity can be handed to
// systems registered on an ecs.World.
type Store struct {
	Positions  *Table[Position]
	Velocities *Table[Velocity]
	Scales     *Table[Scale]
	Ships      *Table[Ship]
	Asteroids  *Table[Asteroid]
	Bullets    *Table[Bullet]

	basics    map[ID]ecs.BasicEntity
	order     []ID
	onDestroy []func(ecs.BasicEntity)
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		Positions:  newTable[Position](),
		Velocities: newTable[Velocity](),
		Scales:     newTable[Scale](),
		Ships:      newTable[Ship](),
		Asteroids:  newTable[Asteroid](),
		Bullets:    newTable[Bullet](),
		basics:     make(map[ID]ecs.BasicEntity),
	}
}

// Spawn creates an entity with the given components and returns its id.
func (s *Store) Spawn(components ...Component) ID {
	basic := ecs.NewBasic()
	s.insert(basic, components)
	return ID(basic.ID())
}

func (s *Store) insert(basic ecs.BasicEntity, components []Component) {
	id := ID(basic.ID())
	s.basics[id] = basic
	s.order = append(s.order, id)

	var mask Mask
	for _, c := range components {
		if c == nil {
			continue
		}
		c.attach(s, id)
		mask |= c.Kind()
	}
	// motion integration needs a position for every velocity
	if mask.Has(VelocityMask) && !mask.Has(PositionMask) {
		Position{}.attach(s, id)
	}
}

// Destroy removes an entity and all of its components. Destroying an unknown
// or already destroyed id does nothing. It reports whether id was alive.
func (s *Store) Destroy(id ID) bool {
	basic, ok := s.basics[id]
	if !ok {
		return false
	}
	delete(s.basics, id)
	for i, e := range s.order {
		if e == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.Positions.remove(id)
	s.Velocities.remove(id)
	s.Scales.remove(id)
	s.Ships.remove(id)
	s.Asteroids.remove(id)
	s.Bullets.remove(id)

	for _, fn := range s.onDestroy {
		fn(basic)
	}
	return true
}

// OnDestroy registers fn to be called with the ecs identity of every
// destroyed entity.
func (s *Store) OnDestroy(fn func(ecs.BasicEntity)) {
	s.onDestroy = append(s.onDestroy, fn)
}

// Alive reports whether id refers to a live entity
func (s *Store) Alive(id ID) bool {
	_, ok := s.basics[id]
	return ok
}

// Basic returns the ecs identity of id
func (s *Store) Basic(id ID) (ecs.BasicEntity, bool) {
	basic, ok := s.basics[id]
	return basic, ok
}

// Len returns the number of live entities
func (s *Store) Len() int {
	return len(s.order)
}

// Mask returns the set of components attached to id
func (s *Store) Mask(id ID) Mask {
	var m Mask
	if s.Positions.Has(id) {
		m |= PositionMask
	}
	if s.Velocities.Has(id) {
		m |= VelocityMask
	}
	if s.Scales.Has(id) {
		m |= ScaleMask
	}
	if s.Ships.Has(id) {
		m |= ShipMask
	}
	if s.Asteroids.Has(id) {
		m |= AsteroidMask
	}
	if s.Bullets.Has(id) {
		m |= BulletMask
	}
	return m
}

// Query returns the live entities that have every component in m, in
// spawn order. The result is a snapshot.
func (s *Store) Query(m Mask) []ID {
	ids := make([]ID, 0, len(s.order))
	for _, id := range s.order {
		if s.Mask(id).Has(m) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Margin returns half of the dominant scale axis of id, or zero when the
// entity has no scale.
func (s *Store) Margin(id ID) float64 {
	if scale, ok := s.Scales.Get(id); ok {
		return scale.Diameter() / 2
	}
	return 0
}
