package main

import (
	"os"

	"github.com/coder/quartz"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/control"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/gui"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/pace"
)

type GUICmd struct {
	CellSize    int  `help:"Cell size in pixels (overrides config)"`
	NoAutoSpawn bool `help:"Only spawn capsules on request (F key)"`
}

func (c *GUICmd) Run(flags *GlobalFlags) error {
	cfg, err := flags.load()
	if err != nil {
		return err
	}
	if c.CellSize > 0 {
		cfg.UI.CellSize = c.CellSize
	}
	logger, closeLog, err := setupLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	state, rng, err := newRandomGame(cfg, logger)
	if err != nil {
		return err
	}
	ctrl := control.New(state,
		control.WithLogger(logger),
		control.WithRand(rng),
		control.WithDropper(pace.NewDropper(quartz.NewReal(), cfg.DropInterval())),
		control.WithAutoSpawn(cfg.ShouldAutoSpawn() && !c.NoAutoSpawn),
	)
	return gui.Run(gui.New(ctrl, cfg.UI.CellSize, logger), "Dr. Mario")
}
