package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/control"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/pace"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/tui"
)

type TUICmd struct {
	NoAutoSpawn bool `help:"Only spawn capsules on request (n key or F command)"`
}

func (c *TUICmd) Run(flags *GlobalFlags) error {
	cfg, err := flags.load()
	if err != nil {
		return err
	}
	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := setupLogger(cfg, io.Discard)
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
	model := tui.NewModel(ctrl,
		tui.WithLogger(logger),
		tui.WithRenderer(os.Stdout, cfg.UI.Theme),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return tui.Run(ctx, model)
	})
	g.Go(func() error {
		return watchSignals(ctx, logger)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errInterrupted) {
		return err
	}
	logger.Info("Session ended", "game_over", state.GameOver(), "level_cleared", state.LevelCleared())
	return nil
}
