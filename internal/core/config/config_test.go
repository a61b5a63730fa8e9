package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/core/styles"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()
	cfg, err := Load(filepath.Join(dataDir, "nope.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, 10, cfg.Table.PageSize)
	assert.Equal(t, 50, cfg.Table.PadTo)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, styles.DefaultTheme, cfg.TUI.Theme)
	assert.False(t, cfg.Backend.Enabled())
	assert.Equal(t, filepath.Join(dataDir, "session.json"), cfg.SessionFile())
}

func TestLoad_FileOverridesAndDefaultsFill(t *testing.T) {
	path := writeConfig(t, `
backend:
  url: https://demo.example.co
  anon_key: anon
table:
  page_size: 25
  pad_to: 0
export:
  dir: /tmp/exports
`)
	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://demo.example.co", cfg.Backend.URL)
	assert.True(t, cfg.Backend.Enabled())
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout, "zero timeout falls back to default")
	assert.Equal(t, 25, cfg.Table.PageSize)
	assert.Equal(t, 0, cfg.Table.PadTo)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
	assert.Equal(t, 2, cfg.Database.MaxOpenConns)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad backend url", "backend:\n  url: not a url\n", "backend.url"},
		{"negative pad", "table:\n  pad_to: -1\n", "table.pad_to"},
		{"unknown theme", "tui:\n  theme: neon\n", "tui.theme"},
		{"idle over open", "database:\n  max_open_conns: 1\n  max_idle_conns: 3\n", "database.max_idle_conns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "table: [\n"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_dir")
}

func TestParse_SkipsValidation(t *testing.T) {
	cfg, err := Parse(writeConfig(t, "tui:\n  theme: neon\n"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.TUI.Theme)
	require.Error(t, cfg.Validate())
}
