package main

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/config"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/level"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/randutil"
)

// GlobalFlags are shared by every subcommand
type GlobalFlags struct {
	Config   string `short:"c" default:"drmario.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	LogFile  string `help:"Log file path (overrides config)"`
	Debug    bool   `help:"Shortcut for --log-level=debug"`
	Seed     int64  `help:"Random seed, 0 picks one (overrides config)"`
	Theme    string `help:"Color theme: default or mono (overrides config)"`
}

// load reads the config file and applies command line overrides.
func (f *GlobalFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", f.Config, err)
	}

	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.Debug {
		cfg.Log.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.Seed != 0 {
		cfg.Field.Seed = f.Seed
	}
	if f.Theme != "" {
		cfg.UI.Theme = f.Theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupLogger opens the configured log destination. fallback is used when no
// log file is set. The returned func closes the file, if any.
func setupLogger(cfg *config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
		closer = func() { _ = file.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	switch cfg.Log.Level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	return logger, closer, nil
}

// newRandomGame builds a populated field from the config.
func newRandomGame(cfg *config.Config, logger *log.Logger) (*game.GameState, *rand.Rand, error) {
	rng, seed := randutil.NewOrRandom(cfg.Field.Seed)
	state, placed, err := level.NewField(
		cfg.Field.Rows, cfg.Field.Columns,
		cfg.Field.Viruses, cfg.Field.VirusCeiling,
		rng, game.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("building field: %w", err)
	}
	logger.Info("New game",
		"rows", cfg.Field.Rows,
		"columns", cfg.Field.Columns,
		"viruses", placed,
		"seed", seed)
	return state, rng, nil
}
