// ABOUTME: Environment-driven configuration for the Oura sync tool.
// ABOUTME: Resolves the API token and XDG-style data directories.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
)

// ErrMissingToken means OURA_API_TOKEN is not set; nothing can be fetched.
var ErrMissingToken = errors.New("OURA_API_TOKEN not set in environment")

// Config stores ourasync settings, sourced from the environment.
type Config struct {
	// APIToken is the Oura personal access token. Required for sync.
	APIToken string `env:"OURA_API_TOKEN"`

	// DataDir is the root directory for the database and payload archive.
	// Supports ~ expansion. Defaults to ~/.local/share/ourasync.
	DataDir string `env:"OURA_DATA_DIR"`

	// BaseURL overrides the Oura API host. Mostly useful in tests.
	BaseURL string `env:"OURA_API_URL" envDefault:"https://api.ouraring.com"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// RequireToken fails fast when no API token is configured.
func (c *Config) RequireToken() error {
	if c.APIToken == "" {
		return ErrMissingToken
	}
	return nil
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the SQLite database path inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "oura.db")
}

// ArchiveDir returns the raw payload archive path inside the data directory.
func (c *Config) ArchiveDir() string {
	return filepath.Join(c.GetDataDir(), "archive")
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "ourasync")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "ourasync")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
