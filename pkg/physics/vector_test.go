// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b Vector2D) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 1, Y: 2},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "mixed_signs",
			v1:       Vector2D{X: 5, Y: -3},
			v2:       Vector2D{X: -2, Y: 7},
			expected: Vector2D{X: 3, Y: 4},
		},
		{
			name:     "zero_vector",
			v1:       Vector2D{},
			v2:       Vector2D{X: 5, Y: -3},
			expected: Vector2D{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Scale(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		factor   float64
		expected Vector2D
	}{
		{"double", Vector2D{X: 1, Y: -2}, 2, Vector2D{X: 2, Y: -4}},
		{"zero_factor", Vector2D{X: 1, Y: -2}, 0, Vector2D{}},
		{"drag_factor", Vector2D{X: 10, Y: 0}, 0.98, Vector2D{X: 9.8, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.v.Scale(tt.factor); !approxEqual(result, tt.expected) {
				t.Errorf("Scale() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("Length() = %v, expected 5", v.Length())
	}
	if v.LengthSquared() != 25 {
		t.Errorf("LengthSquared() = %v, expected 25", v.LengthSquared())
	}
}

func TestVector2D_Normalize(t *testing.T) {
	t.Run("regular_vector", func(t *testing.T) {
		result := Vector2D{X: 3, Y: 4}.Normalize()
		if !approxEqual(result, Vector2D{X: 0.6, Y: 0.8}) {
			t.Errorf("Normalize() = %v, expected (0.6, 0.8)", result)
		}
	})

	t.Run("zero_vector", func(t *testing.T) {
		result := Vector2D{}.Normalize()
		if result != (Vector2D{}) {
			t.Errorf("Normalize() on zero vector = %v, expected zero vector", result)
		}
	})
}

func TestVector2D_ClampLength(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		max      float64
		expected Vector2D
	}{
		{"under_limit", Vector2D{X: 1, Y: 1}, 5, Vector2D{X: 1, Y: 1}},
		{"over_limit", Vector2D{X: 30, Y: 40}, 5, Vector2D{X: 3, Y: 4}},
		{"zero_vector", Vector2D{}, 5, Vector2D{}},
		{"exactly_at_limit", Vector2D{X: 0, Y: 5}, 5, Vector2D{X: 0, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.ClampLength(tt.max)
			if !approxEqual(result, tt.expected) {
				t.Errorf("ClampLength() = %v, expected %v", result, tt.expected)
			}
			if result.Length() > tt.max+epsilon {
				t.Errorf("ClampLength() length %v exceeds %v", result.Length(), tt.max)
			}
		})
	}
}

func TestVector2D_Distance(t *testing.T) {
	a := Vector2D{X: 0, Y: 0}
	b := Vector2D{X: 0, Y: 400}
	if a.Distance(b) != 400 {
		t.Errorf("Distance() = %v, expected 400", a.Distance(b))
	}
	if a.Distance(b) != b.Distance(a) {
		t.Error("Distance() is not symmetric")
	}
}

func TestVector2D_Dominant(t *testing.T) {
	if d := (Vector2D{X: -80, Y: 50}).Dominant(); d != 80 {
		t.Errorf("Dominant() = %v, expected 80", d)
	}
	if d := Splat(25).Dominant(); d != 25 {
		t.Errorf("Dominant() = %v, expected 25", d)
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		expected Vector2D
	}{
		{"zero_faces_up", 0, Vector2D{X: 0, Y: 1}},
		{"quarter_turn_faces_left", math.Pi / 2, Vector2D{X: -1, Y: 0}},
		{"half_turn_faces_down", math.Pi, Vector2D{X: 0, Y: -1}},
		{"unnormalized_rotation", 4 * math.Pi, Vector2D{X: 0, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Heading(tt.rotation)
			if !approxEqual(result, tt.expected) {
				t.Errorf("Heading(%v) = %v, expected %v", tt.rotation, result, tt.expected)
			}
		})
	}
}
