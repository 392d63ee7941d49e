// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/fractal-terrain/internal/heightfield"
)

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Scene   SceneConfig   `yaml:"scene"`
	Balls   BallsConfig   `yaml:"balls"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// TerrainConfig controls heightfield generation and meshing.
type TerrainConfig struct {
	Level           int     `yaml:"level"` // grid width is 2^level + 1
	Seed            uint64  `yaml:"seed"`  // 0 picks a random seed
	Roughness       float32 `yaml:"roughness"`
	HorizontalScale float32 `yaml:"horizontal_scale"`
	HeightScale     float32 `yaml:"height_scale"`
}

// Width returns the heightfield width for the configured level.
func (t TerrainConfig) Width() int {
	return heightfield.WidthForLevel(t.Level)
}

// SceneConfig holds the animated scene around the terrain.
type SceneConfig struct {
	SunOrbitRadius  float32 `yaml:"sun_orbit_radius"`
	SunOrbitHeight  float32 `yaml:"sun_orbit_height"`
	SunAngularSpeed float32 `yaml:"sun_angular_speed"`
	SeaAmplitude    float32 `yaml:"sea_amplitude"`
	SeaOffset       float32 `yaml:"sea_offset"`
	SeaAngularSpeed float32 `yaml:"sea_angular_speed"`
	MoveSpeed       float32 `yaml:"move_speed"`
	SprintFactor    float32 `yaml:"sprint_factor"`
	ScreenshotDir   string  `yaml:"screenshot_dir"`
}

// BallsConfig holds the verlet ball demo settings.
type BallsConfig struct {
	MaxBalls      int     `yaml:"max_balls"`
	SpawnInterval float32 `yaml:"spawn_interval"` // seconds between spawns
	MinRadius     float32 `yaml:"min_radius"`
	MaxRadius     float32 `yaml:"max_radius"`
	Gravity       float32 `yaml:"gravity"`
	SubSteps      int     `yaml:"sub_steps"`
	TickRate      int     `yaml:"tick_rate"` // simulation steps per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demos' stock values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Fractal Terrain",
			Width:  1600,
			Height: 900,
			VSync:  true,
		},
		Terrain: TerrainConfig{
			Level:           10,
			Roughness:       1,
			HorizontalScale: 0.5,
			HeightScale:     0.5,
		},
		Scene: SceneConfig{
			SunOrbitRadius:  1024,
			SunOrbitHeight:  800,
			SunAngularSpeed: 0.5,
			SeaAmplitude:    50,
			SeaOffset:       -30,
			SeaAngularSpeed: 0.125,
			MoveSpeed:       100,
			SprintFactor:    2.5,
			ScreenshotDir:   "screenshots",
		},
		Balls: BallsConfig{
			MaxBalls:      400,
			SpawnInterval: 0.05,
			MinRadius:     4,
			MaxRadius:     12,
			Gravity:       1000,
			SubSteps:      8,
			TickRate:      120,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects settings the demos cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Terrain.Level < 1 || c.Terrain.Width() > heightfield.MaxWidth {
		errs = append(errs, fmt.Errorf("terrain level %d out of range [1, 14]", c.Terrain.Level))
	}
	if c.Terrain.HorizontalScale <= 0 || c.Terrain.HeightScale <= 0 {
		errs = append(errs, errors.New("terrain scales must be positive"))
	}
	if c.Balls.SubSteps < 1 {
		errs = append(errs, fmt.Errorf("balls sub_steps %d must be at least 1", c.Balls.SubSteps))
	}
	if c.Balls.TickRate < 1 {
		errs = append(errs, fmt.Errorf("balls tick_rate %d must be at least 1", c.Balls.TickRate))
	}
	if c.Balls.MinRadius <= 0 || c.Balls.MaxRadius < c.Balls.MinRadius {
		errs = append(errs, fmt.Errorf("balls radius range [%g, %g] is invalid", c.Balls.MinRadius, c.Balls.MaxRadius))
	}

	return errors.Join(errs...)
}
