package config

import (
	"fmt"
	"log/slog"

	"github.com/OCharnyshevich/diamond-terrain/pkg/world/gen"
)

// Config holds the generator and runner configuration.
type Config struct {
	Seed             *int64  `yaml:"seed"` // nil = random seed
	ChunkWidth       int     `yaml:"chunk_width"`
	BaseGridDistance int     `yaml:"base_grid_distance"`
	BaseGridMaxValue float64 `yaml:"base_grid_max_value"`
	Radius           int     `yaml:"radius"` // pre-generation radius in chunks
	LogLevel         string  `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	p := gen.DefaultParams()
	return &Config{
		ChunkWidth:       p.ChunkWidth,
		BaseGridDistance: p.BaseGridDistance,
		BaseGridMaxValue: p.BaseGridMaxValue,
		Radius:           2,
		LogLevel:         "info",
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["chunk-width"] {
		cfg.ChunkWidth = fromFile.ChunkWidth
	}
	if !explicitFlags["base-grid-distance"] {
		cfg.BaseGridDistance = fromFile.BaseGridDistance
	}
	if !explicitFlags["max-value"] {
		cfg.BaseGridMaxValue = fromFile.BaseGridMaxValue
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// ResolveSeed fills in a random seed if none is set. It reports whether the
// seed was chosen randomly.
func (c *Config) ResolveSeed() (seed int64, random bool) {
	if c.Seed == nil {
		s := gen.RandomSeed()
		c.Seed = &s
		random = true
	}
	return *c.Seed, random
}

// Params converts the config to generator parameters. An unset seed
// becomes 0; call ResolveSeed first to pick a random one.
func (c *Config) Params() gen.Params {
	p := gen.Params{
		ChunkWidth:       c.ChunkWidth,
		BaseGridDistance: c.BaseGridDistance,
		BaseGridMaxValue: c.BaseGridMaxValue,
	}
	if c.Seed != nil {
		p.Seed = *c.Seed
	}
	return p
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
