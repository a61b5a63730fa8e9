// Package config handles configuration loading and validation for tender.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/core/table"
)

// Config holds the application configuration.
type Config struct {
	Backend  BackendConfig  `yaml:"backend"`
	Table    TableConfig    `yaml:"table"`
	Export   ExportConfig   `yaml:"export"`
	TUI      TUIConfig      `yaml:"tui"`
	Database DatabaseConfig `yaml:"database"`
	// User is recorded as the actor in the activity log when no session exists.
	User    string `yaml:"user"`
	DataDir string `yaml:"-"` // set by caller, not from config file
}

// BackendConfig points at the hosted REST backend.
type BackendConfig struct {
	URL     string        `yaml:"url"`
	AnonKey string        `yaml:"anon_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// Enabled reports whether a backend URL is configured.
func (b BackendConfig) Enabled() bool {
	return b.URL != ""
}

// TableConfig controls listing presentation.
type TableConfig struct {
	PageSize int `yaml:"page_size"`
	// PadTo extends the demo RFP catalog with filler rows up to this length.
	// Zero disables padding.
	PadTo int `yaml:"pad_to"`
}

// ExportConfig controls where exported files are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// TUIConfig holds interactive UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"` // one of styles.ThemeNames()
}

// DatabaseConfig tunes the sqlite connection pool.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend: BackendConfig{
			Timeout: 15 * time.Second,
		},
		Table: TableConfig{
			PageSize: table.DefaultPageSize,
			PadTo:    50,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 2,
			MaxIdleConns: 2,
			BusyTimeout:  5000,
		},
		User: "local",
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg, err := Parse(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Parse is Load without validation.
func Parse(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = defaults.Backend.Timeout
	}
	if c.Table.PageSize == 0 {
		c.Table.PageSize = defaults.Table.PageSize
	}
	if c.Export.Dir == "" {
		c.Export.Dir = defaults.Export.Dir
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.User == "" {
		c.User = defaults.User
	}
}

// SessionFile returns the path to the stored backend session.
func (c *Config) SessionFile() string {
	return filepath.Join(c.DataDir, "session.json")
}

// LogFile returns the default log file path.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "tender.log")
}
