// Package config loads library configuration from file and environment via
// viper: logging setup, default validation bounds, and the default combine
// strategy.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/relateby/pattern-go/pkg/pattern"
	"github.com/relateby/pattern-go/pkg/subject"
)

// Config holds all configuration for the library.
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Validation bounds applied by callers that opt into configured limits
	Validation ValidationConfig `mapstructure:"validation"`

	// Combine configuration
	Combine CombineConfig `mapstructure:"combine"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ValidationConfig holds default pattern bounds. Zero means unconstrained.
type ValidationConfig struct {
	MaxDepth    int `mapstructure:"max_depth"`
	MaxElements int `mapstructure:"max_elements"`
}

// CombineConfig holds the default subject combine strategy.
type CombineConfig struct {
	Strategy string `mapstructure:"strategy"`
}

// Rules converts the configured bounds to validation rules, leaving zeroed
// bounds unset.
func (v ValidationConfig) Rules() pattern.ValidationRules {
	var rules pattern.ValidationRules
	if v.MaxDepth > 0 {
		rules.MaxDepth = pattern.Limit(v.MaxDepth)
	}
	if v.MaxElements > 0 {
		rules.MaxElements = pattern.Limit(v.MaxElements)
	}
	return rules
}

// Resolve returns the configured combine strategy, validated against the
// known strategy names.
func (c CombineConfig) Resolve() (subject.Strategy, error) {
	s := subject.Strategy(c.Strategy)
	if _, err := subject.Combiner(s); err != nil {
		return "", err
	}
	return s, nil
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("validation.max_depth", 0)
	viper.SetDefault("validation.max_elements", 0)

	viper.SetDefault("combine.strategy", string(subject.StrategyMerge))
}

// NewLogger builds a slog logger from the log configuration.
func NewLogger(cfg LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
