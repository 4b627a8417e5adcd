// Package config provides configuration loading and management for semowl.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semowl/translate"
)

// Config represents the complete semowl configuration
type Config struct {
	Translator TranslatorConfig `yaml:"translator"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// TranslatorConfig configures the axiom translators
type TranslatorConfig struct {
	// IgnoreReadErrors skips malformed statements when reading a whole graph
	IgnoreReadErrors bool `yaml:"ignore_read_errors"`
	// BulkAnnotationAssertions reads plain annotations on declarations as
	// annotation assertions
	BulkAnnotationAssertions bool `yaml:"bulk_annotation_assertions"`
	// AtomicWrites commits the triples of an axiom only when all were written
	AtomicWrites bool `yaml:"atomic_writes"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `yaml:"level"`
}

// MetricsConfig configures Prometheus metrics
type MetricsConfig struct {
	// Enabled turns on metric collection
	Enabled bool `yaml:"enabled"`
	// Namespace prefixes every metric name (default: semowl)
	Namespace string `yaml:"namespace"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	d := translate.DefaultConfig()
	return &Config{
		Translator: TranslatorConfig{
			IgnoreReadErrors:         d.IgnoreReadErrors,
			BulkAnnotationAssertions: d.BulkAnnotationAssertions,
			AtomicWrites:             d.AtomicWrites,
		},
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "semowl",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace is required when metrics are enabled")
	}
	return nil
}

// SlogLevel returns the configured log level. Unknown levels map to info.
func (c *Config) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.Log.Level)]; ok {
		return level
	}
	return slog.LevelInfo
}

// TranslatorOptions returns the translator configuration for translate.NewManager.
func (c *Config) TranslatorOptions() translate.Config {
	return translate.Config{
		IgnoreReadErrors:         c.Translator.IgnoreReadErrors,
		BulkAnnotationAssertions: c.Translator.BulkAnnotationAssertions,
		AtomicWrites:             c.Translator.AtomicWrites,
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.apply(path); err != nil {
		return nil, err
	}
	return config, nil
}

// apply overlays the keys present in the YAML file at path.
func (c *Config) apply(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one. Non-empty strings and enabled
// switches in other take precedence; a switch that is on here stays on.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Translator
	if other.Translator.IgnoreReadErrors {
		c.Translator.IgnoreReadErrors = true
	}
	if other.Translator.BulkAnnotationAssertions {
		c.Translator.BulkAnnotationAssertions = true
	}
	if other.Translator.AtomicWrites {
		c.Translator.AtomicWrites = true
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}

	// Metrics
	if other.Metrics.Enabled {
		c.Metrics.Enabled = true
	}
	if other.Metrics.Namespace != "" {
		c.Metrics.Namespace = other.Metrics.Namespace
	}
}
