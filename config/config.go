// Package config holds the lvsearch run configuration: a YAML file overlaid
// by command-line flags and checked with struct-tag validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrHeuristicRequired is returned when A* or a heuristic check is
	// requested but neither a heuristic file nor an embedded table is available.
	ErrHeuristicRequired = fmt.Errorf("%w: a heuristic is required for astar and heuristic checks", ErrInvalidConfig)
)

// validate is shared; validator caches struct metadata per type.
var validate = validator.New()

// Config is one lvsearch invocation.
type Config struct {
	// Algorithm is "bfs", "ucs", "astar" or empty for no search.
	Algorithm string `yaml:"algorithm" validate:"omitempty,oneof=bfs ucs astar"`

	// StateSpace is the state-space file (text or YAML).
	StateSpace string `yaml:"state_space" validate:"required"`

	// Heuristic is the heuristic file. It may be omitted when the state-space
	// file embeds a heuristic table.
	Heuristic string `yaml:"heuristic"`

	CheckOptimistic bool `yaml:"check_optimistic"`
	CheckConsistent bool `yaml:"check_consistent"`

	// Timeout bounds the whole run; 0 disables it.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	// MaxExpansions aborts a search after that many expansions; 0 disables it.
	MaxExpansions int `yaml:"max_expansions" validate:"gte=0"`

	// MetricsFile, when set, receives the Prometheus text exposition after the run.
	MetricsFile string `yaml:"metrics_file"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns a Config with warn-level text logging and no limits.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

// Load reads path into Default(). Unknown keys are rejected. An empty path
// returns Default() unchanged. Load does not validate; callers overlay
// flags first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the struct-tag constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// NeedsHeuristic reports whether the run uses a heuristic.
func (c *Config) NeedsHeuristic() bool {
	return c.Algorithm == "astar" || c.CheckOptimistic || c.CheckConsistent
}
