package physics

// Bounds is an axis-aligned viewport centered at the origin.
type Bounds struct {
	HalfWidth  float64
	HalfHeight float64
}

// NewBounds returns the centered bounds of a width x height viewport.
func NewBounds(width, height float64) Bounds {
	return Bounds{HalfWidth: width / 2, HalfHeight: height / 2}
}

// Wrap applies toroidal wraparound to p. margin extends the bounds on every
// side so an entity of radius margin leaves the viewport completely before
// it reappears on the opposite edge. Each axis wraps independently.
func (b Bounds) Wrap(p Vector2D, margin float64) Vector2D {
	return Vector2D{
		X: wrapAxis(p.X, b.HalfWidth+margin),
		Y: wrapAxis(p.Y, b.HalfHeight+margin),
	}
}

// Contains reports whether p lies within the bounds extended by margin.
func (b Bounds) Contains(p Vector2D, margin float64) bool {
	return p.X >= -b.HalfWidth-margin && p.X <= b.HalfWidth+margin &&
		p.Y >= -b.HalfHeight-margin && p.Y <= b.HalfHeight+margin
}

func wrapAxis(v, limit float64) float64 {
	switch {
	case v > limit:
		return -limit
	case v < -limit:
		return limit
	}
	return v
}
