package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Physics PhysicsConfig `mapstructure:"physics"`
	World   WorldConfig   `mapstructure:"world"`
	Trail   TrailConfig   `mapstructure:"trail"`
	UI      UIConfig      `mapstructure:"ui"`
}

// PhysicsConfig holds the stepping constants.
type PhysicsConfig struct {
	DeltaT          float64 `mapstructure:"delta_t"`           // seconds of simulated time per step
	StepsPerAdvance int     `mapstructure:"steps_per_advance"` // steps per batch
	GravityConst    float64 `mapstructure:"gravity_const"`     // km³·kg⁻¹·s⁻²
}

// WorldConfig holds the world-to-view mapping settings.
type WorldConfig struct {
	WidthKm float64 `mapstructure:"width_km"` // world span mapped across the view width
}

// TrailConfig holds trail decimation settings.
type TrailConfig struct {
	MaxPoints      int     `mapstructure:"max_points"`
	MinSpacingFrac float64 `mapstructure:"min_spacing_frac"` // fraction of the world width
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FPS        int  `mapstructure:"fps"`
	ShowTrails bool `mapstructure:"show_trails"`
	ShowStats  bool `mapstructure:"show_stats"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{DeltaT: 100, StepsPerAdvance: 100, GravityConst: 6.6743e-20},
		World:   WorldConfig{WidthKm: 5e8},
		Trail:   TrailConfig{MaxPoints: 100, MinSpacingFrac: 0.01},
		UI:      UIConfig{FPS: 30, ShowTrails: true, ShowStats: true},
	}
}

// Load reads configuration from file and env. An empty path falls back to
// $ORRERY_CONFIG, then to ~/.config/orrery/config.toml; only the explicit
// paths are required to exist. Env var overrides use prefix ORRERY_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	def := Default()
	v.SetDefault("physics.delta_t", def.Physics.DeltaT)
	v.SetDefault("physics.steps_per_advance", def.Physics.StepsPerAdvance)
	v.SetDefault("physics.gravity_const", def.Physics.GravityConst)
	v.SetDefault("world.width_km", def.World.WidthKm)
	v.SetDefault("trail.max_points", def.Trail.MaxPoints)
	v.SetDefault("trail.min_spacing_frac", def.Trail.MinSpacingFrac)
	v.SetDefault("ui.fps", def.UI.FPS)
	v.SetDefault("ui.show_trails", def.UI.ShowTrails)
	v.SetDefault("ui.show_stats", def.UI.ShowStats)

	v.SetConfigType("toml")

	cfgPath := path
	if cfgPath == "" {
		cfgPath = os.Getenv("ORRERY_CONFIG")
	}

	v.SetEnvPrefix("ORRERY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "orrery"))
		v.SetConfigName("config")
		// read config file if present
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the simulation or the view cannot run with.
func (c Config) Validate() error {
	if c.Physics.DeltaT <= 0 {
		return fmt.Errorf("physics.delta_t must be positive: got %g", c.Physics.DeltaT)
	}
	if c.Physics.StepsPerAdvance < 1 {
		return fmt.Errorf("physics.steps_per_advance must be at least 1: got %d", c.Physics.StepsPerAdvance)
	}
	if c.Physics.GravityConst <= 0 {
		return fmt.Errorf("physics.gravity_const must be positive: got %g", c.Physics.GravityConst)
	}
	if c.World.WidthKm <= 0 {
		return fmt.Errorf("world.width_km must be positive: got %g", c.World.WidthKm)
	}
	if c.Trail.MaxPoints < 2 {
		return fmt.Errorf("trail.max_points must be at least 2: got %d", c.Trail.MaxPoints)
	}
	if c.Trail.MinSpacingFrac <= 0 || c.Trail.MinSpacingFrac >= 1 {
		return fmt.Errorf("trail.min_spacing_frac must be in (0, 1): got %g", c.Trail.MinSpacingFrac)
	}
	if c.UI.FPS < 1 || c.UI.FPS > 120 {
		return fmt.Errorf("ui.fps must be between 1 and 120: got %d", c.UI.FPS)
	}
	return nil
}
