package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

// errInterrupted ends a run that was stopped by a signal.
var errInterrupted = errors.New("interrupted")

// watchSignals blocks until an interrupt or ctx is done. A signal is
// reported as errInterrupted so an errgroup cancels its siblings.
func watchSignals(ctx context.Context, logger *log.Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logger.Info("Received signal, shutting down gracefully", "signal", sig.String())
		return errInterrupted
	case <-ctx.Done():
		return nil
	}
}
