// Package control drives a game from real-time input: player actions, timed
// drops, pause, and automatic spawning of random fallers.
package control

import (
	"errors"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/command"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/level"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/pace"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/randutil"
)

// ErrQuit is returned by Submit for the quit command.
var ErrQuit = errors.New("quit requested")

// Action is a player input
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	RotateClockwise
	RotateCounterClockwise
	Drop
	Spawn
)

var actionNames = map[Action]string{
	MoveLeft:               "left",
	MoveRight:              "right",
	RotateClockwise:        "rotate_cw",
	RotateCounterClockwise: "rotate_ccw",
	Drop:                   "drop",
	Spawn:                  "spawn",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Controller applies input to a GameState. It is not safe for concurrent
// use; front ends call it from their update loop.
type Controller struct {
	state      *game.GameState
	dispatcher *command.Dispatcher
	dropper    *pace.Dropper
	rng        *rand.Rand
	autoSpawn  bool
	paused     bool
	logger     *log.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger.WithPrefix("control")
		}
	}
}

// WithDropper sets the timer polled by Poll
func WithDropper(d *pace.Dropper) Option {
	return func(c *Controller) { c.dropper = d }
}

// WithRand sets the source of faller colors
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithAutoSpawn controls whether a random faller appears whenever none is in
// play and viruses remain.
func WithAutoSpawn(enabled bool) Option {
	return func(c *Controller) { c.autoSpawn = enabled }
}

// New creates a controller for state
func New(state *game.GameState, opts ...Option) *Controller {
	c := &Controller{
		state:     state,
		autoSpawn: true,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng, _ = randutil.NewOrRandom(0)
	}
	c.dispatcher = command.NewDispatcher(state, c.logger)
	return c
}

// State returns the controlled game
func (c *Controller) State() *game.GameState {
	return c.state
}

// Dropper returns the drop timer, or nil
func (c *Controller) Dropper() *pace.Dropper {
	return c.dropper
}

// Start spawns the first faller when auto-spawn is on
func (c *Controller) Start() {
	c.spawnIfIdle()
}

// Do applies a player action. Actions are ignored while paused or after game
// over. It reports whether the action changed the game.
func (c *Controller) Do(a Action) bool {
	if c.paused || c.state.GameOver() {
		return false
	}

	var changed bool
	switch a {
	case MoveLeft:
		changed = c.state.MoveLeft()
	case MoveRight:
		changed = c.state.MoveRight()
	case RotateClockwise:
		changed = c.state.Rotate(true)
	case RotateCounterClockwise:
		changed = c.state.Rotate(false)
	case Drop:
		c.tick()
		if c.dropper != nil {
			c.dropper.Reset()
		}
		changed = true
	case Spawn:
		changed = c.spawn()
	}
	c.logger.Debug("Action", "action", a, "changed", changed)
	return changed
}

// Tick is the timed idle step. It does nothing while paused.
func (c *Controller) Tick() {
	if c.paused {
		return
	}
	c.tick()
}

// Poll ticks if the dropper says a drop is due, for frame-driven loops.
func (c *Controller) Poll() bool {
	if c.dropper == nil || c.paused || !c.dropper.Due() {
		return false
	}
	c.tick()
	return true
}

// Submit runs one protocol line. Parse errors are returned unapplied;
// the quit command returns ErrQuit.
func (c *Controller) Submit(line string) error {
	if _, err := command.Parse(line); err != nil {
		return err
	}
	if !c.dispatcher.Dispatch(line) {
		return ErrQuit
	}
	c.spawnIfIdle()
	return nil
}

// SetPaused stops or resumes timed drops and player actions
func (c *Controller) SetPaused(paused bool) {
	c.paused = paused
	if c.dropper != nil {
		c.dropper.SetPaused(paused)
	}
	c.logger.Debug("Pause toggled", "paused", paused)
}

// TogglePause flips the pause state
func (c *Controller) TogglePause() {
	c.SetPaused(!c.paused)
}

// Paused reports whether play is suspended
func (c *Controller) Paused() bool {
	return c.paused
}

func (c *Controller) tick() {
	if c.state.GameOver() {
		return
	}
	c.state.Tick()
	c.spawnIfIdle()
}

func (c *Controller) spawn() bool {
	left, right := level.RandomPair(c.rng)
	return c.state.CreateFaller(left, right)
}

func (c *Controller) spawnIfIdle() {
	if !c.autoSpawn || c.state.HasFaller() || c.state.GameOver() || !c.state.HasViruses() {
		return
	}
	c.spawn()
}
