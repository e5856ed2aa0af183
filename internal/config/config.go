package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the configuration file read when none is named.
const DefaultFile = "drmario.hcl"

// Config represents the complete game configuration
type Config struct {
	Field  FieldSettings  `hcl:"field,block"`
	Timing TimingSettings `hcl:"timing,block"`
	Log    LogSettings    `hcl:"log,block"`
	UI     UISettings     `hcl:"ui,block"`
}

// FieldSettings describes the playfield and its random virus layout
type FieldSettings struct {
	Rows         int   `hcl:"rows,optional"`
	Columns      int   `hcl:"columns,optional"`
	Viruses      int   `hcl:"viruses,optional"`
	VirusCeiling int   `hcl:"virus_ceiling,optional"`
	Seed         int64 `hcl:"seed,optional"`
}

// TimingSettings controls real-time front ends
type TimingSettings struct {
	DropIntervalMs int   `hcl:"drop_interval_ms,optional"`
	AutoSpawn      *bool `hcl:"auto_spawn,optional"`
}

// LogSettings controls diagnostic logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// UISettings controls presentation
type UISettings struct {
	Theme    string `hcl:"theme,optional"`
	CellSize int    `hcl:"cell_size,optional"`
}

// Default returns the default configuration
func Default() *Config {
	autoSpawn := true
	return &Config{
		Field: FieldSettings{
			Rows:         16,
			Columns:      8,
			Viruses:      12,
			VirusCeiling: 5,
		},
		Timing: TimingSettings{
			DropIntervalMs: 500,
			AutoSpawn:      &autoSpawn,
		},
		Log: LogSettings{
			Level: "warn",
		},
		UI: UISettings{
			Theme:    "default",
			CellSize: 48,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Field.Rows == 0 {
		c.Field.Rows = defaults.Field.Rows
	}
	if c.Field.Columns == 0 {
		c.Field.Columns = defaults.Field.Columns
	}
	if c.Field.VirusCeiling == 0 {
		c.Field.VirusCeiling = defaults.Field.VirusCeiling
	}

	if c.Timing.DropIntervalMs == 0 {
		c.Timing.DropIntervalMs = defaults.Timing.DropIntervalMs
	}
	if c.Timing.AutoSpawn == nil {
		c.Timing.AutoSpawn = defaults.Timing.AutoSpawn
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.CellSize == 0 {
		c.UI.CellSize = defaults.UI.CellSize
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Field.Rows < 4 {
		return fmt.Errorf("field rows must be at least 4, got %d", c.Field.Rows)
	}
	if c.Field.Columns < 3 {
		return fmt.Errorf("field columns must be at least 3, got %d", c.Field.Columns)
	}
	if c.Field.Viruses < 0 || c.Field.Viruses > c.Field.Rows*c.Field.Columns/2 {
		return fmt.Errorf("virus count %d out of range for a %dx%d field", c.Field.Viruses, c.Field.Rows, c.Field.Columns)
	}
	if c.Field.VirusCeiling < 0 || c.Field.VirusCeiling >= c.Field.Rows {
		return fmt.Errorf("virus ceiling must be between 0 and %d, got %d", c.Field.Rows-1, c.Field.VirusCeiling)
	}
	if c.Field.Viruses > (c.Field.Rows-c.Field.VirusCeiling)*c.Field.Columns {
		return fmt.Errorf("%d viruses do not fit below row %d", c.Field.Viruses, c.Field.VirusCeiling)
	}

	if c.Timing.DropIntervalMs <= 0 {
		return fmt.Errorf("drop interval must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	validThemes := map[string]bool{
		"default": true,
		"mono":    true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	if c.UI.CellSize < 8 {
		return fmt.Errorf("cell size must be at least 8 pixels, got %d", c.UI.CellSize)
	}

	return nil
}

// DropInterval returns the idle tick period
func (c *Config) DropInterval() time.Duration {
	return time.Duration(c.Timing.DropIntervalMs) * time.Millisecond
}

// ShouldAutoSpawn reports whether front ends spawn a random faller when none is active
func (c *Config) ShouldAutoSpawn() bool {
	return c.Timing.AutoSpawn == nil || *c.Timing.AutoSpawn
}
