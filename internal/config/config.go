// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Scoring contains the default scoring settings
	Scoring types.Settings `json:"scoring"`

	// Reconcile contains cost-reconciliation configuration
	Reconcile ReconcileConfig `json:"reconcile"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ReconcileConfig contains cost-reconciliation settings
type ReconcileConfig struct {
	// AutoAcknowledge skips the interactive acknowledgment prompt for
	// blocked validation reports
	AutoAcknowledge bool `json:"auto_acknowledge"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowExplanations includes per-item explanation lines
	ShowExplanations bool `json:"show_explanations"`

	// ShowWatchList includes the low-signal watch list
	ShowWatchList bool `json:"show_watch_list"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Scoring: types.DefaultSettings(),
		Reconcile: ReconcileConfig{
			AutoAcknowledge: false,
		},
		Output: OutputConfig{
			DefaultFormat:    "cli",
			ShowExplanations: true,
			ShowWatchList:    true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
