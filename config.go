package cursordust

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the window and simulation created by Run. Zero-value fields
// fall back to the defaults below, so partial YAML files are fine.
type Config struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	ParticleCount int    `yaml:"particle_count"`
	// RestRadius and PressedRadius are the scatter radii while the pointer
	// is up and held, respectively.
	RestRadius    float64 `yaml:"rest_radius"`
	PressedRadius float64 `yaml:"pressed_radius"`
	// Damping scales sampled sphere coordinates down before they become
	// particle positions.
	Damping float64 `yaml:"damping"`
	// Seed drives particle spawns, the sphere sampler, and color mode.
	// Zero picks a time-based seed, so replays are non-deterministic
	// unless a seed is set explicitly.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the configuration Run uses when given a zero Config.
func DefaultConfig() Config {
	return Config{
		Title:         "cursordust",
		Width:         800,
		Height:        600,
		ParticleCount: 100,
		RestRadius:    RestRadius,
		PressedRadius: PressedRadius,
		Damping:       scatterDamping,
	}
}

// LoadConfig reads a YAML config file and fills unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults replaces zero or negative fields with DefaultConfig values.
// Seed is deliberately left alone: zero means time-based.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.ParticleCount <= 0 {
		c.ParticleCount = def.ParticleCount
	}
	if c.RestRadius <= 0 {
		c.RestRadius = def.RestRadius
	}
	if c.PressedRadius <= 0 {
		c.PressedRadius = def.PressedRadius
	}
	if c.Damping <= 0 {
		c.Damping = def.Damping
	}
}
