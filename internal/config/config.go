// Package config provides solver configuration for the helloworld command.
//
// Sources, lowest priority first:
//  1. built-in defaults (markov.Default*)
//  2. a .env file in the working directory (never overrides real env vars)
//  3. HELLOWORLD_* environment variables
//  4. a YAML profile passed with --config
//  5. command-line flags (applied by the command)
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/helloworld/markov"
)

// Environment variable names.
const (
	EnvTolerance     = "HELLOWORLD_TOLERANCE"
	EnvMaxIterations = "HELLOWORLD_MAX_ITERATIONS"
	EnvNorm          = "HELLOWORLD_NORM"
	EnvVerbose       = "HELLOWORLD_VERBOSE"
)

// DefaultDotEnv is the dotenv file read by LoadDotEnv when no path is given.
const DefaultDotEnv = ".env"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the solver profile.
type Config struct {
	// Tolerance is nil when unset; 0 selects exact equality.
	Tolerance       *float64    `yaml:"tolerance,omitempty"`
	MaxIterations   int         `yaml:"max_iterations,omitempty"`
	Norm            string      `yaml:"norm,omitempty"`
	StochasticCheck bool        `yaml:"stochastic_check,omitempty"`
	Verbose         bool        `yaml:"verbose,omitempty"`
	Matrix          [][]float64 `yaml:"matrix,omitempty"`
	Vector          []float64   `yaml:"vector,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	tol := markov.DefaultTolerance
	return &Config{
		Tolerance:     &tol,
		MaxIterations: markov.DefaultMaxIterations,
		Norm:          markov.NormMax.String(),
	}
}

// LoadDotEnv loads path (DefaultDotEnv when empty) into the process
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultDotEnv
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// Load builds a Config from defaults, the environment and, when path is not
// empty, the YAML file at path.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from HELLOWORLD_* variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if s := strings.TrimSpace(getenv(EnvTolerance)); s != "" {
		tol, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTolerance, err)
		}
		c.Tolerance = &tol
	}
	if s := strings.TrimSpace(getenv(EnvMaxIterations)); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxIterations, err)
		}
		c.MaxIterations = n
	}
	if s := strings.TrimSpace(getenv(EnvNorm)); s != "" {
		c.Norm = s
	}
	if s := strings.TrimSpace(getenv(EnvVerbose)); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		c.Verbose = v
	}

	return nil
}

// Validate checks ranges so that SolverOptions never panics.
func (c *Config) Validate() error {
	if c.Tolerance != nil {
		tol := *c.Tolerance
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
			return fmt.Errorf("%w: tolerance %g must be finite and >= 0", ErrInvalidConfig, tol)
		}
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations %d must be >= 0 (0 keeps the default)", ErrInvalidConfig, c.MaxIterations)
	}
	if _, err := markov.ParseNorm(c.Norm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// SolverOptions translates the profile into markov options.
// A zero MaxIterations keeps the solver default.
func (c *Config) SolverOptions() ([]markov.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	norm, _ := markov.ParseNorm(c.Norm)

	opts := []markov.Option{markov.WithNorm(norm)}
	if c.Tolerance != nil {
		opts = append(opts, markov.WithTolerance(*c.Tolerance))
	}
	if c.MaxIterations > 0 {
		opts = append(opts, markov.WithMaxIterations(c.MaxIterations))
	}
	if c.StochasticCheck {
		opts = append(opts, markov.WithStochasticCheck(0))
	}

	return opts, nil
}
