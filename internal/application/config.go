// Package application orchestrates the evaluation pipeline: it wires a
// Segmenter and an Aggregator in strict dependency order and exposes the
// engine's configuration surface.
package application

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ArturoSbr/go-binclass/internal/domain"
	"github.com/ArturoSbr/go-binclass/internal/ports"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// EvalConfig is the recognized configuration surface of the evaluation
// engine. The zero value is not valid; start from DefaultEvalConfig and
// override fields as needed.
type EvalConfig struct {
	// NumSegments controls the granularity of the results table.
	// Default: 10 (a decile table).
	NumSegments int `yaml:"num_segments" json:"num_segments" validate:"required,min=1"`

	// TiePolicy controls tie handling at segment boundaries.
	// Default: rank-based equal-count.
	TiePolicy domain.TiePolicy `yaml:"tie_policy" json:"tie_policy" validate:"required,oneof=rank_equal_count boundary_snap"`

	// RoundBounds rounds the reported segment probability bounds to the
	// nearest integer.
	RoundBounds bool `yaml:"round_bounds" json:"round_bounds"`
}

// DefaultEvalConfig returns the engine's default configuration: a decile
// table under the rank-based equal-count tie policy.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		NumSegments: 10,
		TiePolicy:   domain.TieRankEqualCount,
	}
}

// Validate checks the configuration against its constraints. The returned
// error wraps domain.ErrInvalidConfiguration.
func (c EvalConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	return nil
}

// ParseEvalConfig decodes and validates a YAML configuration document.
// Unknown fields are rejected so typos fail loudly instead of silently
// falling back to defaults.
func ParseEvalConfig(data []byte) (EvalConfig, error) {
	cfg := DefaultEvalConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return EvalConfig{}, ports.NewConfigError("eval", fmt.Errorf("failed to decode config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return EvalConfig{}, ports.NewConfigError("eval", err)
	}
	return cfg, nil
}

// LoadEvalConfig reads and parses a YAML configuration file.
func LoadEvalConfig(path string) (EvalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return EvalConfig{}, ports.NewConfigError(path, ports.ErrConfigNotFound)
		}
		return EvalConfig{}, ports.NewConfigError(path, err)
	}
	return ParseEvalConfig(data)
}
