// Package config loads handler settings from YAML.
//
// Values may reference environment variables as ${VAR} or $VAR. Fields left
// out of the file keep their defaults.
//
//	cfg, err := config.Load("linepara.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h, err := cfg.NewHandler(logger)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/linepara"
	"github.com/tsawler/linepara/layout"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything needed to build a handler.
type Config struct {
	// Strategy selects the handler: statistical, adaptive, hinted, character
	Strategy string `yaml:"strategy" json:"strategy"`

	// SplitFactor multiplies the page's minimum line spacing
	SplitFactor float64 `yaml:"split_factor" json:"split_factor"`

	// SpacingPercentile picks the minimum line spacing from the sorted gaps
	SpacingPercentile float64 `yaml:"spacing_percentile" json:"spacing_percentile"`

	// MinLineHeight is the floor for the adaptive threshold's line height
	MinLineHeight float64 `yaml:"min_line_height" json:"min_line_height"`

	// AdaptiveFactor multiplies the tallest line height
	AdaptiveFactor float64 `yaml:"adaptive_factor" json:"adaptive_factor"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Workers bounds how many documents are replayed at once, 0 for no limit
	Workers int `yaml:"workers" json:"workers"`
}

// Default returns the default configuration.
func Default() *Config {
	l := layout.DefaultConfig()
	return &Config{
		Strategy:          layout.StrategyStatistical,
		SplitFactor:       l.SplitFactor,
		SpacingPercentile: l.SpacingPercentile,
		MinLineHeight:     l.MinLineHeight,
		AdaptiveFactor:    l.AdaptiveFactor,
		LogLevel:          "info",
		Workers:           0,
	}
}

// Load reads, parses and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates YAML config data.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.Strategy = strings.ToLower(strings.TrimSpace(config.Strategy))
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config to path as YAML.
func Save(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	switch c.Strategy {
	case "", layout.StrategyStatistical, layout.StrategyAdaptive,
		linepara.StrategyHinted, linepara.StrategyCharacter:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, c.Strategy)
	}
	if c.SplitFactor <= 0 {
		return fmt.Errorf("%w: split_factor must be positive", ErrInvalidConfig)
	}
	if c.SpacingPercentile < 0 || c.SpacingPercentile > 1 {
		return fmt.Errorf("%w: spacing_percentile must be between 0 and 1", ErrInvalidConfig)
	}
	if c.MinLineHeight < 0 {
		return fmt.Errorf("%w: min_line_height must be non-negative", ErrInvalidConfig)
	}
	if c.AdaptiveFactor <= 0 {
		return fmt.Errorf("%w: adaptive_factor must be positive", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel. An empty LogLevel means info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return level, nil
}

// Layout returns the segmentation thresholds.
func (c *Config) Layout() layout.Config {
	return layout.Config{
		SplitFactor:       c.SplitFactor,
		SpacingPercentile: c.SpacingPercentile,
		MinLineHeight:     c.MinLineHeight,
		AdaptiveFactor:    c.AdaptiveFactor,
	}
}

// NewHandler builds the configured handler.
func (c *Config) NewHandler(logger *slog.Logger) (linepara.Handler, error) {
	return linepara.NewHandler(c.Strategy,
		linepara.WithLogger(logger),
		linepara.WithConfig(c.Layout()),
	)
}
