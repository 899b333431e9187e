package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Config holds application configuration.
type Config struct {
	// TickIntervalMS is the countdown tick cadence in milliseconds.
	// Defaults to 1000; anything else trades display accuracy for
	// battery or test speed.
	TickIntervalMS int `json:"tick_interval_ms"`

	// WebHost and WebPort select where `tickdown web` listens.
	WebHost string `json:"web_host,omitempty"`
	WebPort int    `json:"web_port,omitempty"`

	// AllowedPaths is an allowlist of directories for export operations.
	// Paths outside ~/.tickdown/exports require either being in this
	// list or AllowUnsafePaths=true. Paths should be absolute.
	AllowedPaths []string `json:"allowed_paths,omitempty"`

	// AllowUnsafePaths disables directory restrictions for export.
	// Symlink checks still apply.
	AllowUnsafePaths bool `json:"allow_unsafe_paths,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// 0 means use sql.DB default. Only set if you experience contention.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TickIntervalMS: 1000,
		WebHost:        "127.0.0.1",
		WebPort:        7421,
	}
}

// TickInterval returns the tick cadence as a duration, falling back to
// one second for zero or negative configured values.
func (c *Config) TickInterval() time.Duration {
	if c == nil || c.TickIntervalMS <= 0 {
		return time.Second
	}
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.tickdown.
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return merge(DefaultConfig(), cfg), nil
}

// merge combines base and overlay configs. Overlay values take
// precedence for non-zero scalars; the path allowlist is concatenated.
func merge(base, overlay *Config) *Config {
	result := *overlay

	if result.TickIntervalMS == 0 {
		result.TickIntervalMS = base.TickIntervalMS
	}
	if result.WebHost == "" {
		result.WebHost = base.WebHost
	}
	if result.WebPort == 0 {
		result.WebPort = base.WebPort
	}
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}
	result.AllowUnsafePaths = base.AllowUnsafePaths || overlay.AllowUnsafePaths
	result.AllowedPaths = append(append([]string(nil), base.AllowedPaths...), overlay.AllowedPaths...)
	if len(result.AllowedPaths) == 0 {
		result.AllowedPaths = nil
	}

	return &result
}
