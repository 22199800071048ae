package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ASTEROIDS_SHIP_MAX_SPEED.
const EnvPrefix = "ASTEROIDS"

// SetDefaults registers the default value of every key on v. Registering
// every key also lets AutomaticEnv resolve overrides during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("viewport.width", d.Viewport.Width)
	v.SetDefault("viewport.height", d.Viewport.Height)

	v.SetDefault("ship.scale", d.Ship.Scale)
	v.SetDefault("ship.rotation_speed", d.Ship.RotationSpeed)
	v.SetDefault("ship.acceleration", d.Ship.Acceleration)
	v.SetDefault("ship.max_speed", d.Ship.MaxSpeed)
	v.SetDefault("ship.drag", d.Ship.Drag)
	v.SetDefault("ship.collision_divider", d.Ship.CollisionDivider)

	v.SetDefault("asteroid.initial_count", d.Asteroid.InitialCount)
	v.SetDefault("asteroid.speed", d.Asteroid.Speed)
	v.SetDefault("asteroid.big_scale", d.Asteroid.BigScale)
	v.SetDefault("asteroid.medium_scale", d.Asteroid.MediumScale)
	v.SetDefault("asteroid.small_scale", d.Asteroid.SmallScale)
	v.SetDefault("asteroid.spawn_clearance", d.Asteroid.SpawnClearance)
	v.SetDefault("asteroid.fragment_count", d.Asteroid.FragmentCount)

	v.SetDefault("bullet.scale", d.Bullet.Scale)
	v.SetDefault("bullet.speed_multiplier", d.Bullet.SpeedMultiplier)
	v.SetDefault("bullet.range_fraction", d.Bullet.RangeFraction)

	v.SetDefault("sim.seed", d.Sim.Seed)
	v.SetDefault("sim.tick_rate", d.Sim.TickRate)
}

// NewViper returns a viper instance with defaults and environment
// overrides configured.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads a configuration from a file. An empty path yields the
// defaults. Environment overrides apply in both cases.
func LoadConfig(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
