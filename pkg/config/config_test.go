package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if config.Viewport.Width != 1024 || config.Viewport.Height != 720 {
		t.Errorf("Expected viewport 1024x720, got %vx%v", config.Viewport.Width, config.Viewport.Height)
	}

	if config.Asteroid.BigScale != 100 || config.Asteroid.MediumScale != 50 || config.Asteroid.SmallScale != 25 {
		t.Errorf("Unexpected asteroid scales: %+v", config.Asteroid)
	}

	if config.Ship.CollisionDivider != 4 {
		t.Errorf("Expected CollisionDivider 4, got %v", config.Ship.CollisionDivider)
	}

	if config.FireRange() != 360 {
		t.Errorf("Expected FireRange 360, got %v", config.FireRange())
	}

	if config.BulletSpeed() != 2*config.Ship.MaxSpeed {
		t.Errorf("Expected BulletSpeed %v, got %v", 2*config.Ship.MaxSpeed, config.BulletSpeed())
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig does not validate: %v", err)
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *config != *DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v, want defaults", config)
	}
}

func TestLoadConfig_Success(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "asteroids.json")

	content := `{
  "ship": {"max_speed": 9, "collision_divider": 3},
  "asteroid": {"initial_count": 7},
  "bullet": {"range_fraction": 0.25}
}`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Ship.MaxSpeed != 9 {
		t.Errorf("Expected MaxSpeed 9, got %v", config.Ship.MaxSpeed)
	}
	if config.Ship.CollisionDivider != 3 {
		t.Errorf("Expected CollisionDivider 3, got %v", config.Ship.CollisionDivider)
	}
	if config.Asteroid.InitialCount != 7 {
		t.Errorf("Expected InitialCount 7, got %d", config.Asteroid.InitialCount)
	}
	if config.FireRange() != 180 {
		t.Errorf("Expected FireRange 180, got %v", config.FireRange())
	}
	// untouched keys keep their defaults
	if config.Ship.Scale != 50 {
		t.Errorf("Expected default ship scale 50, got %v", config.Ship.Scale)
	}
}

func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("ASTEROIDS_SHIP_MAX_SPEED", "12.5")
	t.Setenv("ASTEROIDS_ASTEROID_INITIAL_COUNT", "9")
	t.Setenv("ASTEROIDS_SIM_SEED", "42")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Ship.MaxSpeed != 12.5 {
		t.Errorf("Expected MaxSpeed 12.5, got %v", config.Ship.MaxSpeed)
	}
	if config.Asteroid.InitialCount != 9 {
		t.Errorf("Expected InitialCount 9, got %d", config.Asteroid.InitialCount)
	}
	if config.Sim.Seed != 42 {
		t.Errorf("Expected Seed 42, got %d", config.Sim.Seed)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(configPath, []byte(`{"ship": {"drag": 2}}`), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "ship.drag" {
		t.Errorf("Expected ValidationError on ship.drag, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(c *Config)
		errorField string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero_width", func(c *Config) { c.Viewport.Width = 0 }, "viewport.width"},
		{"negative_height", func(c *Config) { c.Viewport.Height = -1 }, "viewport.height"},
		{"zero_max_speed", func(c *Config) { c.Ship.MaxSpeed = 0 }, "ship.max_speed"},
		{"zero_divider", func(c *Config) { c.Ship.CollisionDivider = 0 }, "ship.collision_divider"},
		{"sizes_not_decreasing", func(c *Config) { c.Asteroid.SmallScale = 60 }, "asteroid.big_scale"},
		{"negative_fragments", func(c *Config) { c.Asteroid.FragmentCount = -1 }, "asteroid.fragment_count"},
		{"zero_range", func(c *Config) { c.Bullet.RangeFraction = 0 }, "bullet.range_fraction"},
		{"zero_tick_rate", func(c *Config) { c.Sim.TickRate = 0 }, "sim.tick_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := c.Validate()

			if tt.errorField == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.errorField {
				t.Errorf("error field = %q, want %q", verr.Field, tt.errorField)
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "saved.json")
	original := DefaultConfig()
	original.Ship.Drag = 0.05
	original.Sim.Seed = 7

	if err := SaveConfig(original, configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if !json.Valid(data) {
		t.Fatal("Saved config is not valid JSON")
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig of saved file failed: %v", err)
	}
	if *loaded != *original {
		t.Errorf("loaded config %+v differs from saved %+v", loaded, original)
	}
}

func TestSaveConfig_Errors(t *testing.T) {
	if err := SaveConfig(nil, filepath.Join(t.TempDir(), "nil.json")); !errors.Is(err, ErrNilConfig) {
		t.Errorf("Expected ErrNilConfig, got %v", err)
	}
	if err := SaveConfig(DefaultConfig(), filepath.Join(t.TempDir(), "missing", "dir", "c.json")); err == nil {
		t.Error("Expected error for invalid path")
	}
}
