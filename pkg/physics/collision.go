// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles overlap. Touching circles do not collide.
func (c Circle) Collides(other Circle) bool {
	return Overlaps(c.Center, other.Center, c.Radius+other.Radius)
}

// Overlaps reports whether a and b are closer than threshold.
// The test is symmetric in a and b.
func Overlaps(a, b Vector2D, threshold float64) bool {
	return a.Distance(b) < threshold
}
