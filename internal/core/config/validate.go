package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tender/internal/core/styles"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, notEmpty),
		criterio.Run("backend.url", c.Backend.URL, backendURL),
		c.validateRanges(),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
	)
}

// ValidateDeep performs Validate plus file system checks. An empty
// configPath skips the config file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("export.dir", c.Export.Dir, isDirectoryOrNotExist),
	)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if !c.Backend.Enabled() {
		warnings = append(warnings, ValidationWarning{
			Category: "Backend",
			Item:     "backend.url",
			Message:  "no backend configured; links, login and ask are unavailable",
		})
	}
	if c.Backend.Enabled() && c.Backend.AnonKey == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Backend",
			Item:     "backend.anon_key",
			Message:  "anon key is empty; most hosted backends reject unauthenticated requests",
		})
	}

	return warnings
}

func (c *Config) validateRanges() error {
	var errs criterio.FieldErrorsBuilder
	if c.Table.PageSize < 1 {
		errs = errs.Append("table.page_size", fmt.Errorf("must be at least 1"))
	}
	if c.Table.PadTo < 0 {
		errs = errs.Append("table.pad_to", fmt.Errorf("must not be negative"))
	}
	if c.Backend.Timeout < 0 {
		errs = errs.Append("backend.timeout", fmt.Errorf("must not be negative"))
	}
	if c.Database.MaxOpenConns < 1 {
		errs = errs.Append("database.max_open_conns", fmt.Errorf("must be at least 1"))
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = errs.Append("database.max_idle_conns", fmt.Errorf("must not exceed max_open_conns"))
	}
	return errs.ToError()
}

func notEmpty(v string) error {
	if v == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func backendURL(v string) error {
	if v == "" {
		return nil
	}
	u, err := url.Parse(v)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	return nil
}

func knownTheme(v string) error {
	if _, ok := styles.GetPalette(v); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", v, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
