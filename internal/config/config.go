// Package config assembles the startup configuration from defaults, an
// optional YAML file, and command-line flags, in that order. The result is
// validated once before the frame loop starts and never mutated afterwards.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"starfield/internal/sim"
)

// Audio configures the optional playback-driven reactivity.
type Audio struct {
	// Path is an audio file to loop, "ask" for a file dialog, or empty to
	// run without audio reactivity.
	Path      string  `yaml:"path"`
	Smoothing float64 `yaml:"smoothing"`
}

// Config is the full application configuration.
type Config struct {
	Sim   sim.Params `yaml:"sim"`
	TPS   int        `yaml:"tps"`
	Seed  int64      `yaml:"seed"`
	Audio Audio      `yaml:"audio"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Sim:  sim.DefaultParams(),
		TPS:  60,
		Seed: 42,
		Audio: Audio{
			Smoothing: 0.4,
		},
	}
}

// LoadFile overlays values from a YAML file onto the receiver. Fields absent
// from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Bind attaches the commonly tweaked knobs to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Sim.Count, "particles", c.Sim.Count, "number of stars in the field")
	fs.IntVar(&c.Sim.Width, "width", c.Sim.Width, "viewport width in pixels")
	fs.IntVar(&c.Sim.Height, "height", c.Sim.Height, "viewport height in pixels")
	fs.IntVar(&c.Sim.TrailLength, "trail", c.Sim.TrailLength, "trail history length per star")
	fs.Float64Var(&c.Sim.BoostMultiplier, "boost", c.Sim.BoostMultiplier, "speed multiplier while boosting")
	fs.Float64Var(&c.Sim.SpiralRate, "spiral-rate", c.Sim.SpiralRate, "angular rate of the spiral transform")
	fs.Float64Var(&c.Sim.ShootingProb, "shooting-prob", c.Sim.ShootingProb, "per-star per-tick shooting star probability")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for field reset")
	fs.StringVar(&c.Audio.Path, "audio", c.Audio.Path, "audio file to loop for reactivity, or 'ask' for a dialog")
}

// Validate fails fast with a descriptive error for any out-of-range value.
func (c Config) Validate() error {
	if err := c.Sim.Validate(); err != nil {
		return err
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d: must be positive", c.TPS)
	}
	if c.Audio.Smoothing <= 0 || c.Audio.Smoothing > 1 {
		return fmt.Errorf("audio smoothing %g: must be in (0, 1]", c.Audio.Smoothing)
	}
	return nil
}
