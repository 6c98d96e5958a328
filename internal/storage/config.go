package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the optional user configuration file.
	userConfigFile = ".cbconfig.yaml"

	// Default configuration values
	DefaultColor = true
)

// Config represents user configuration from .cbconfig.yaml.
// This file is user-managed and never written by cb.
type Config struct {
	// DataFile is the contact file path. Relative paths are resolved
	// against the directory holding the config file.
	DataFile string `yaml:"data_file"`

	// Color allows ANSI colors when stdout is a terminal.
	Color bool `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		Color:    DefaultColor,
	}
}

// LoadConfig loads .cbconfig.yaml from dir if it exists, otherwise returns defaults.
// Partial config files are merged with defaults. On a parse error the
// defaults are still returned alongside the error so callers can warn and go on.
func LoadConfig(dir string) (*Config, error) {
	configPath := ConfigPath(dir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return withDataDir(DefaultConfig(), dir), nil
		}
		return withDataDir(DefaultConfig(), dir), fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return withDataDir(DefaultConfig(), dir), fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}

	return withDataDir(cfg, dir), nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}

func withDataDir(cfg *Config, dir string) *Config {
	if !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(dir, cfg.DataFile)
	}
	return cfg
}
