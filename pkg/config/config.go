// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config contains every tunable of the simulation
type Config struct {
	Viewport ViewportConfig `json:"viewport" mapstructure:"viewport"`
	Ship     ShipConfig     `json:"ship" mapstructure:"ship"`
	Asteroid AsteroidConfig `json:"asteroid" mapstructure:"asteroid"`
	Bullet   BulletConfig   `json:"bullet" mapstructure:"bullet"`
	Sim      SimConfig      `json:"sim" mapstructure:"sim"`
}

// ViewportConfig is the size of the play area. The area is centered on the origin.
type ViewportConfig struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// ShipConfig contains ship handling parameters. Speeds are per tick.
type ShipConfig struct {
	Scale            float64 `json:"scale" mapstructure:"scale"`
	RotationSpeed    float64 `json:"rotation_speed" mapstructure:"rotation_speed"`
	Acceleration     float64 `json:"acceleration" mapstructure:"acceleration"`
	MaxSpeed         float64 `json:"max_speed" mapstructure:"max_speed"`
	Drag             float64 `json:"drag" mapstructure:"drag"`
	CollisionDivider float64 `json:"collision_divider" mapstructure:"collision_divider"`
}

// AsteroidConfig contains asteroid spawning parameters
type AsteroidConfig struct {
	InitialCount   int     `json:"initial_count" mapstructure:"initial_count"`
	Speed          float64 `json:"speed" mapstructure:"speed"`
	BigScale       float64 `json:"big_scale" mapstructure:"big_scale"`
	MediumScale    float64 `json:"medium_scale" mapstructure:"medium_scale"`
	SmallScale     float64 `json:"small_scale" mapstructure:"small_scale"`
	SpawnClearance float64 `json:"spawn_clearance" mapstructure:"spawn_clearance"`
	FragmentCount  int     `json:"fragment_count" mapstructure:"fragment_count"`
}

// BulletConfig contains projectile parameters
type BulletConfig struct {
	Scale           float64 `json:"scale" mapstructure:"scale"`
	SpeedMultiplier float64 `json:"speed_multiplier" mapstructure:"speed_multiplier"`
	RangeFraction   float64 `json:"range_fraction" mapstructure:"range_fraction"`
}

// SimConfig contains runtime parameters of the hosts
type SimConfig struct {
	Seed     uint64 `json:"seed" mapstructure:"seed"`
	TickRate int    `json:"tick_rate" mapstructure:"tick_rate"`
}

// FireRange is the distance from its origin past which a bullet is retired
func (c *Config) FireRange() float64 {
	return c.Bullet.RangeFraction * c.Viewport.Height
}

// BulletSpeed is the muzzle speed of a bullet
func (c *Config) BulletSpeed() float64 {
	return c.Ship.MaxSpeed * c.Bullet.SpeedMultiplier
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:  1024,
			Height: 720,
		},
		Ship: ShipConfig{
			Scale:            50,
			RotationSpeed:    0.08,
			Acceleration:     0.15,
			MaxSpeed:         6,
			Drag:             0.02,
			CollisionDivider: 4,
		},
		Asteroid: AsteroidConfig{
			InitialCount:   4,
			Speed:          1,
			BigScale:       100,
			MediumScale:    50,
			SmallScale:     25,
			SpawnClearance: 150,
			FragmentCount:  2,
		},
		Bullet: BulletConfig{
			Scale:           6,
			SpeedMultiplier: 2,
			RangeFraction:   0.5,
		},
		Sim: SimConfig{
			Seed:     0,
			TickRate: 60,
		},
	}
}

// SaveConfig saves a configuration to a file as JSON
func SaveConfig(config *Config, path string) error {
	if config == nil {
		return fmt.Errorf("failed to marshal config: %w", ErrNilConfig)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
