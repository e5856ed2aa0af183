package main

import (
	"context"
	"os"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/console"
)

type ConsoleCmd struct{}

// Run reads the field setup and commands from stdin. Logs never go to stdout.
func (c *ConsoleCmd) Run(flags *GlobalFlags) error {
	cfg, err := flags.load()
	if err != nil {
		return err
	}
	logger, closeLog, err := setupLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return console.NewSession(os.Stdin, os.Stdout, logger).Run(context.Background())
}
