package command

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
)

// Dispatcher applies text commands to a GameState. Malformed input is logged
// and ignored; the state is never touched for a line that fails to parse.
type Dispatcher struct {
	state  *game.GameState
	logger *log.Logger
}

// NewDispatcher creates a dispatcher bound to state. A nil logger discards.
func NewDispatcher(state *game.GameState, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{
		state:  state,
		logger: logger.WithPrefix("dispatch"),
	}
}

// State returns the bound game state
func (d *Dispatcher) State() *game.GameState {
	return d.state
}

// Dispatch parses and applies one line. It returns false once the line asks
// to quit, true otherwise.
func (d *Dispatcher) Dispatch(line string) bool {
	cmd, err := Parse(line)
	if err != nil {
		d.logger.Debug("Ignoring command", "line", line, "error", err)
		return true
	}
	if err := d.checkBounds(cmd); err != nil {
		d.logger.Debug("Ignoring command", "line", line, "error", err)
		return true
	}
	if cmd.Kind == Quit {
		d.logger.Debug("Quit requested")
		return false
	}
	applied := d.Apply(cmd)
	d.logger.Debug("Applied command", "command", cmd.Kind, "applied", applied)
	return true
}

// Apply runs a parsed command and reports whether it changed anything the
// engine reports on. Ticks always report true.
func (d *Dispatcher) Apply(cmd Command) bool {
	switch cmd.Kind {
	case Tick:
		d.state.Tick()
		return true
	case Spawn:
		return d.state.CreateFaller(cmd.Left, cmd.Right)
	case RotateClockwise:
		return d.state.Rotate(true)
	case RotateCounterClockwise:
		return d.state.Rotate(false)
	case MoveLeft:
		return d.state.MoveLeft()
	case MoveRight:
		return d.state.MoveRight()
	case PlaceVirus:
		return d.state.CreateVirus(cmd.Row, cmd.Col, cmd.Color)
	}
	return false
}

func (d *Dispatcher) checkBounds(cmd Command) error {
	if cmd.Kind != PlaceVirus {
		return nil
	}
	if !d.state.InBounds(game.Position{Row: cmd.Row, Col: cmd.Col}) {
		return fmt.Errorf("%w: (%d,%d) on a %dx%d field", ErrOutOfBounds, cmd.Row, cmd.Col, d.state.Rows(), d.state.Columns())
	}
	return nil
}
