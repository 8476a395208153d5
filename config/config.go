// SPDX-License-Identifier: MIT

// Package config holds the numeric policy and REPL presentation settings,
// loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
)

const (
	DefaultPrecision     = scalar.DefaultPrecision
	DefaultEpsilon       = matrix.DefaultEpsilon
	DefaultRootPlaces    = matrix.DefaultRootPlaces
	DefaultMaxIterations = matrix.DefaultMaxIterations
	DefaultPrompt        = "> "
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Precision     uint    `yaml:"precision"`
	Epsilon       float64 `yaml:"epsilon"`
	RootPlaces    int     `yaml:"root_places"`
	MaxIterations int     `yaml:"max_iterations"`
	Prompt        string  `yaml:"prompt"`
	Color         bool    `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Precision:     DefaultPrecision,
		Epsilon:       DefaultEpsilon,
		RootPlaces:    DefaultRootPlaces,
		MaxIterations: DefaultMaxIterations,
		Prompt:        DefaultPrompt,
		Color:         true,
	}
}

// Load reads path over the defaults, so a file only needs the keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field against the ranges the matrix options accept.
func (c *Config) Validate() error {
	switch {
	case c.Precision < 2:
		return fmt.Errorf("%w: precision %d must be at least 2 bits", ErrInvalidConfig, c.Precision)
	case math.IsNaN(c.Epsilon) || c.Epsilon < 0 || c.Epsilon > 1:
		return fmt.Errorf("%w: epsilon %v must be in [0, 1]", ErrInvalidConfig, c.Epsilon)
	case c.RootPlaces < 0 || c.RootPlaces > 15:
		return fmt.Errorf("%w: root_places %d must be in [0, 15]", ErrInvalidConfig, c.RootPlaces)
	case c.MaxIterations < 0:
		return fmt.Errorf("%w: max_iterations %d must be >= 0", ErrInvalidConfig, c.MaxIterations)
	}
	return nil
}

// MatrixOptions translates the numeric policy into matrix options.
// Call Validate first; invalid values make the option constructors panic.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithEpsilon(c.Epsilon),
		matrix.WithRootPlaces(c.RootPlaces),
		matrix.WithMaxIterations(c.MaxIterations),
	}
}
