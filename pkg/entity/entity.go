// pkg/entity/entity.go
package entity

import "strings"

// ID is the identity of an entity. It stays valid until the entity is
// destroyed and is never reused.
type ID uint64

// Mask is a set of component kinds.
type Mask uint8

const (
	PositionMask Mask = 1 << iota
	VelocityMask
	ScaleMask
	ShipMask
	AsteroidMask
	BulletMask
)

// Has reports whether m contains every kind in other
func (m Mask) Has(other Mask) bool {
	return m&other == other
}

func (m Mask) String() string {
	names := []string{"position", "velocity", "scale", "ship", "asteroid", "bullet"}
	var parts []string
	for i, name := range names {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Size is the asteroid size class. Larger sizes compare greater.
type Size int

const (
	SizeSmall Size = iota + 1
	SizeMedium
	SizeBig
)

// Child returns the size of the fragments an asteroid of size s breaks into.
// Small asteroids have no fragments.
func (s Size) Child() (Size, bool) {
	switch s {
	case SizeBig:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	default:
		return 0, false
	}
}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeBig:
		return "big"
	default:
		return "unknown"
	}
}
