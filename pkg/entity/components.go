package entity

import "github.com/opd-ai/go-asteroids/pkg/physics"

// Component is a piece of data that can be attached to an entity.
type Component interface {
	Kind() Mask
	attach(s *Store, id ID)
}

// Position is a point in world space.
type Position struct {
	physics.Vector2D
}

// Velocity is the displacement applied to Position every tick.
type Velocity struct {
	physics.Vector2D
}

// Scale is the visual size of an entity. Its dominant axis doubles as the
// collision diameter.
type Scale struct {
	physics.Vector2D
}

// Ship marks the player ship.
type Ship struct {
	Rotation float64 // radians, counter-clockwise, 0 faces +Y
}

// Asteroid marks a drifting asteroid.
type Asteroid struct {
	Size Size
}

// Bullet marks a projectile fired by the ship.
type Bullet struct {
	Origin physics.Vector2D // where the bullet was fired; never mutated
}

// Diameter returns the collision diameter for a scale.
func (s Scale) Diameter() float64 {
	return s.Dominant()
}

func (Position) Kind() Mask { return PositionMask }
func (Velocity) Kind() Mask { return VelocityMask }
func (Scale) Kind() Mask    { return ScaleMask }
func (Ship) Kind() Mask     { return ShipMask }
func (Asteroid) Kind() Mask { return AsteroidMask }
func (Bullet) Kind() Mask   { return BulletMask }

func (c Position) attach(s *Store, id ID) { s.Positions.set(id, c) }
func (c Velocity) attach(s *Store, id ID) { s.Velocities.set(id, c) }
func (c Scale) attach(s *Store, id ID)    { s.Scales.set(id, c) }
func (c Ship) attach(s *Store, id ID)     { s.Ships.set(id, c) }
func (c Asteroid) attach(s *Store, id ID) { s.Asteroids.set(id, c) }
func (c Bullet) attach(s *Store, id ID)   { s.Bullets.set(id, c) }
