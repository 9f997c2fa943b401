// ABOUTME: Ironlog configuration management with remote backend selection.
// ABOUTME: Handles data paths, sync tuning, and the remote service factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/ironlog/internal/localstore"
	"github.com/harperreed/ironlog/internal/remote"
	"github.com/harperreed/ironlog/internal/remote/charmkv"
	"github.com/harperreed/ironlog/internal/remote/sqlitestore"
)

// Config stores ironlog tool configuration.
type Config struct {
	// Remote selects the remote backend: "charm" (default), "sqlite",
	// or "off" for local-only operation.
	Remote string `json:"remote,omitempty"`

	// DataDir is the root directory for the local snapshot store.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/ironlog.
	DataDir string `json:"data_dir,omitempty"`

	// RemoteDBPath is the SQLite file used when Remote is "sqlite".
	RemoteDBPath string `json:"remote_db_path,omitempty"`

	// DebounceMillis delays remote session writes so rapid set logging
	// coalesces into one write. Defaults to 400.
	DebounceMillis int `json:"debounce_millis,omitempty"`

	// SweepSeconds is the queue sweeper interval. Defaults to 30.
	SweepSeconds int `json:"sweep_seconds,omitempty"`
}

// GetRemote returns the configured remote backend, defaulting to "charm".
func (c *Config) GetRemote() string {
	if c.Remote == "" {
		return "charm"
	}
	return c.Remote
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return localstore.DefaultDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDebounce returns the debounce delay for remote session writes.
func (c *Config) GetDebounce() time.Duration {
	if c.DebounceMillis <= 0 {
		return 400 * time.Millisecond
	}
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

// GetSweepInterval returns the queue sweeper interval.
func (c *Config) GetSweepInterval() time.Duration {
	if c.SweepSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SweepSeconds) * time.Second
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

// OpenRemote creates the remote record service for the configured
// backend. Returns nil (and no error) when remote sync is off.
func (c *Config) OpenRemote() (remote.Service, error) {
	switch c.GetRemote() {
	case "charm":
		return charmkv.Open()
	case "sqlite":
		dbPath := c.RemoteDBPath
		if dbPath == "" {
			dbPath = sqlitestore.DefaultDBPath()
		}
		return sqlitestore.Open(ExpandPath(dbPath))
	case "off":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown remote backend: %q", c.Remote)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ironlog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
