package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNilConfig is returned when a nil configuration is passed in
	ErrNilConfig = errors.New("nil configuration")
)

// ValidationError names the offending field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfig, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks that every tunable is usable by the simulation
func (c *Config) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.Viewport.Width > 0, "viewport.width", "must be positive"},
		{c.Viewport.Height > 0, "viewport.height", "must be positive"},
		{c.Ship.Scale > 0, "ship.scale", "must be positive"},
		{c.Ship.RotationSpeed >= 0, "ship.rotation_speed", "must not be negative"},
		{c.Ship.Acceleration >= 0, "ship.acceleration", "must not be negative"},
		{c.Ship.MaxSpeed > 0, "ship.max_speed", "must be positive"},
		{c.Ship.Drag >= 0 && c.Ship.Drag <= 1, "ship.drag", "must be within [0, 1]"},
		{c.Ship.CollisionDivider > 0, "ship.collision_divider", "must be positive"},
		{c.Asteroid.InitialCount >= 0, "asteroid.initial_count", "must not be negative"},
		{c.Asteroid.Speed >= 0, "asteroid.speed", "must not be negative"},
		{c.Asteroid.BigScale > 0, "asteroid.big_scale", "must be positive"},
		{c.Asteroid.MediumScale > 0, "asteroid.medium_scale", "must be positive"},
		{c.Asteroid.SmallScale > 0, "asteroid.small_scale", "must be positive"},
		{c.Asteroid.BigScale > c.Asteroid.MediumScale && c.Asteroid.MediumScale > c.Asteroid.SmallScale,
			"asteroid.big_scale", "sizes must strictly decrease from big to small"},
		{c.Asteroid.SpawnClearance >= 0, "asteroid.spawn_clearance", "must not be negative"},
		{c.Asteroid.FragmentCount >= 0, "asteroid.fragment_count", "must not be negative"},
		{c.Bullet.Scale > 0, "bullet.scale", "must be positive"},
		{c.Bullet.SpeedMultiplier > 0, "bullet.speed_multiplier", "must be positive"},
		{c.Bullet.RangeFraction > 0, "bullet.range_fraction", "must be positive"},
		{c.Sim.TickRate > 0, "sim.tick_rate", "must be positive"},
	}

	for _, check := range checks {
		if !check.ok {
			return &ValidationError{Field: check.field, Message: check.message}
		}
	}
	return nil
}
