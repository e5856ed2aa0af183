package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drmario.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500*time.Millisecond, cfg.DropInterval())
	assert.True(t, cfg.ShouldAutoSpawn())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
field {
  rows          = 12
  columns       = 6
  viruses       = 4
  virus_ceiling = 6
  seed          = 99
}

timing {
  drop_interval_ms = 250
  auto_spawn       = false
}

log {
  level = "debug"
  file  = "drmario.log"
}

ui {
  theme = "mono"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, FieldSettings{Rows: 12, Columns: 6, Viruses: 4, VirusCeiling: 6, Seed: 99}, cfg.Field)
	assert.Equal(t, 250*time.Millisecond, cfg.DropInterval())
	assert.False(t, cfg.ShouldAutoSpawn())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "drmario.log", cfg.Log.File)
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, 48, cfg.UI.CellSize, "unset values fall back to defaults")
}

func TestLoadPartialBlocks(t *testing.T) {
	path := writeConfig(t, `
field {}
timing {}
log {}
ui {
  cell_size = 32
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Field.Rows)
	assert.Equal(t, 8, cfg.Field.Columns)
	assert.Equal(t, 32, cfg.UI.CellSize)
	assert.True(t, cfg.ShouldAutoSpawn())
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `field { rows = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few rows", func(c *Config) { c.Field.Rows = 3 }},
		{"too few columns", func(c *Config) { c.Field.Columns = 2 }},
		{"negative viruses", func(c *Config) { c.Field.Viruses = -1 }},
		{"too many viruses", func(c *Config) { c.Field.Viruses = 65 }},
		{"ceiling below floor", func(c *Config) { c.Field.VirusCeiling = 16 }},
		{"viruses above ceiling", func(c *Config) { c.Field.VirusCeiling = 14; c.Field.Viruses = 20 }},
		{"zero interval", func(c *Config) { c.Timing.DropIntervalMs = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"tiny cells", func(c *Config) { c.UI.CellSize = 4 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
