// Package console runs the line-oriented text protocol: field setup on the
// first lines of input, then one command per line, with the field printed
// before every read.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/command"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/render"
)

// ErrUnexpectedEOF is returned when input ends during field setup.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// Session reads setup and commands from in and writes the field to out.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
	opts   []game.Option

	state *game.GameState
}

// NewSession creates a session. Extra game options (event bus, logger) are
// passed to the GameState it builds.
func NewSession(in io.Reader, out io.Writer, logger *log.Logger, opts ...game.Option) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.WithPrefix("console"),
		opts:   opts,
	}
}

// State returns the game built by Run, or nil before setup completes.
func (s *Session) State() *game.GameState {
	return s.state
}

// Run reads the field setup and then processes commands until Q, end of
// input, game over, or ctx is cancelled. Only setup errors and write errors
// are returned.
func (s *Session) Run(ctx context.Context) error {
	state, err := s.setup()
	if err != nil {
		return err
	}
	s.state = state
	dispatcher := command.NewDispatcher(state, s.logger)

	for {
		if err := render.Text(s.out, state); err != nil {
			return fmt.Errorf("failed to write field: %w", err)
		}
		if state.GameOver() {
			s.logger.Info("Game over")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := s.next()
		if !ok {
			s.logger.Debug("Input closed")
			return s.in.Err()
		}
		if !dispatcher.Dispatch(line) {
			s.logger.Info("Session ended by player")
			return nil
		}
	}
}

func (s *Session) setup() (*game.GameState, error) {
	rows, err := s.nextInt("rows")
	if err != nil {
		return nil, err
	}
	columns, err := s.nextInt("columns")
	if err != nil {
		return nil, err
	}

	line, ok := s.next()
	if !ok {
		return nil, fmt.Errorf("reading initial configuration: %w", ErrUnexpectedEOF)
	}
	initial, err := game.ParseInitialConfig(strings.TrimSpace(line))
	if err != nil {
		return nil, err
	}

	var contents []string
	if initial == game.ConfigContents {
		for r := 0; r < rows; r++ {
			line, ok := s.next()
			if !ok {
				s.logger.Warn("Contents ended early", "expected", rows, "got", r)
				break
			}
			contents = append(contents, line)
		}
	}

	state, err := game.New(rows, columns, initial, contents, append([]game.Option{game.WithLogger(s.logger)}, s.opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating field: %w", err)
	}
	s.logger.Info("Field ready", "rows", rows, "columns", columns, "config", initial)
	return state, nil
}

func (s *Session) next() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimRight(s.in.Text(), "\r"), true
}

func (s *Session) nextInt(what string) (int, error) {
	line, ok := s.next()
	if !ok {
		return 0, fmt.Errorf("reading %s: %w", what, ErrUnexpectedEOF)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}
	return n, nil
}
