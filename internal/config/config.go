// Package config loads the persistent application configuration from
// ~/.gigview/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config is the persistent application configuration.
type Config struct {
	// API settings
	API APIConfig `json:"api"`

	// StatePath overrides where view state is persisted. Empty means
	// ~/.gigview/state.db.
	StatePath string `json:"state_path,omitempty"`
}

// APIConfig holds marketplace API settings.
type APIConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "", // empty -> api.DefaultBaseURL
			TimeoutSeconds: 30,
		},
	}
}

// Timeout returns the configured API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".gigview", "config.json")
}

// StateDBPath returns where the view-state database lives.
func (c *Config) StateDBPath() string {
	if c.StatePath != "" {
		return c.StatePath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".gigview", "state.db")
}

// Load reads config from disk, or returns defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
