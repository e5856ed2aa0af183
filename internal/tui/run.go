package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
)

// Run starts the program on the alternate screen and feeds it idle ticks from
// the controller's dropper until the player quits or ctx is done.
func Run(parent context.Context, m *Model, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(m, opts...)

	var ticker quartz.Waiter
	if dropper := m.ctrl.Dropper(); dropper != nil {
		ticker = dropper.Start(ctx, func() { program.Send(DropMsg{}) })
	}

	_, err := program.Run()
	cancel()
	if ticker != nil {
		_ = ticker.Wait()
	}

	if errors.Is(err, tea.ErrProgramKilled) && parent.Err() != nil {
		return nil
	}
	return err
}
