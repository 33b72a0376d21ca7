// Package config loads and saves the flightdeck configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the flightdeck configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
}

// DatabaseConfig contains storage settings.
type DatabaseConfig struct {
	Path string `toml:"path"` // SQLite database file
}

// DefaultDir returns the default configuration directory
// (~/.flightdeck).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".flightdeck"), nil
}

// Default returns the configuration used when no config file exists:
// the database lives next to the config in dir.
func Default(dir string) *Config {
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "flightdeck.db")},
	}
}

// Load reads config.toml from dir. A missing file is not an error: the
// defaults for dir are returned instead.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.toml")

	cfg := Default(dir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = Default(dir).Database.Path
	}

	return cfg, nil
}

// Save writes config.toml to dir, creating the directory as needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "config.toml"))
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
