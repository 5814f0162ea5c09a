// Package config provides configuration loading and management for the
// exporter.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete exporter configuration
type Config struct {
	Export ExportConfig `yaml:"export"`
	Psets  PsetsConfig  `yaml:"psets"`
	Log    LogConfig    `yaml:"log"`
}

// ExportConfig configures the export pass
type ExportConfig struct {
	// SplitByLevel enables splitting of columns, walls and duct segments
	// at building-story boundaries
	SplitByLevel bool `yaml:"split_by_level"`

	// Format is the output serialization (spf, xml, json)
	Format string `yaml:"format"`

	// Profile selects the attached descriptive tables (minimal, standard, cobie)
	Profile string `yaml:"profile"`

	// Include lists category glob patterns to export (empty = all)
	Include []string `yaml:"include"`

	// Exclude lists category glob patterns to skip
	Exclude []string `yaml:"exclude"`

	// Workers bounds per-element concurrency (0 = serial)
	Workers int `yaml:"workers"`
}

// PsetsConfig configures property-set derivation
type PsetsConfig struct {
	// ScheduleAsPsets exports schedules as custom property sets
	ScheduleAsPsets bool `yaml:"schedule_as_psets"`

	// CustomFiles lists YAML files with custom definitions
	CustomFiles []string `yaml:"custom_files"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is the minimum level to emit (debug, info, warn, error)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			SplitByLevel: true,
			Format:       "spf",
			Profile:      "standard",
			Workers:      4,
		},
		Psets: PsetsConfig{
			ScheduleAsPsets: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Export.Format {
	case "spf", "ifc", "step", "xml", "ifcxml", "json":
	default:
		return fmt.Errorf("export.format %q is not a known format", c.Export.Format)
	}
	switch c.Export.Profile {
	case "minimal", "standard", "cobie":
	default:
		return fmt.Errorf("export.profile %q is not a known profile", c.Export.Profile)
	}
	if c.Export.Workers < 0 {
		return fmt.Errorf("export.workers must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not a known level", c.Log.Level)
	}
	return nil
}

// Merge overlays non-zero fields of other onto c
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	c.Export.SplitByLevel = other.Export.SplitByLevel
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.Profile != "" {
		c.Export.Profile = other.Export.Profile
	}
	if len(other.Export.Include) > 0 {
		c.Export.Include = other.Export.Include
	}
	if len(other.Export.Exclude) > 0 {
		c.Export.Exclude = other.Export.Exclude
	}
	if other.Export.Workers != 0 {
		c.Export.Workers = other.Export.Workers
	}
	c.Psets.ScheduleAsPsets = other.Psets.ScheduleAsPsets
	if len(other.Psets.CustomFiles) > 0 {
		c.Psets.CustomFiles = other.Psets.CustomFiles
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
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
