// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads quadsolve settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/db47h/quadratic"
)

// Config holds the quadsolve settings. Zero fields are replaced by defaults
// when loading.
type Config struct {
	Strategy      string  `toml:"strategy" yaml:"strategy"`
	Precision     uint    `toml:"precision" yaml:"precision"`
	MaxIterations int     `toml:"max_iterations" yaml:"max_iterations"`
	Tolerance     float64 `toml:"tolerance" yaml:"tolerance"`
	LogLevel      string  `toml:"log_level" yaml:"log_level"`
}

// Default values.
const (
	DefaultStrategy  = "citardauq"
	DefaultTolerance = 1e-20
	DefaultLogLevel  = "warn"
)

// Default returns the default configuration.
func Default() *Config {
	cfg := new(Config)
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file at path. The format is chosen from the
// file extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Strategy == "" {
		c.Strategy = DefaultStrategy
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = quadratic.DefaultMaxIterations
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []error
	if _, err := quadratic.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.MaxIterations < 0 {
		errs = append(errs, fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations))
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 1) {
		errs = append(errs, fmt.Errorf("tolerance must be finite and > 0, got %g", c.Tolerance))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Solver returns the library configuration matching c.
func (c *Config) Solver(log *slog.Logger) quadratic.Config {
	return quadratic.Config{
		Precision:     c.Precision,
		MaxIterations: c.MaxIterations,
		Logger:        log,
	}
}

// ParseLevel parses a log level name: debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", s)
	}
	return l, nil
}
