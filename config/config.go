// Package config loads runtime settings from built-in defaults, an optional
// YAML file and EDA_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "EDA"

// ErrInvalidConfig is returned when the loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level     string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format    string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output    string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout stderr"`
	AddSource bool   `yaml:"add_source" envconfig:"ADD_SOURCE"`
}

// AnalysisConfig contains settings for the analysis helpers
type AnalysisConfig struct {
	// IndicatorSuffix is appended to a column name to name its
	// missing-value indicator.
	IndicatorSuffix string `yaml:"indicator_suffix" envconfig:"INDICATOR_SUFFIX" validate:"required"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Analysis: AnalysisConfig{
			IndicatorSuffix: "_na",
		},
	}
}

// Load builds the configuration. Values from the YAML file at path override
// the defaults, and EDA_* environment variables override both. An empty
// path skips the file; a path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// loadFromFile overlays the YAML file at path onto cfg. Keys missing from
// the file keep their current value.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
