// Package gui is a desktop front end drawn with Ebitengine.
package gui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/control"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
)

const (
	margin       = 16
	sidebarWidth = 200
	logLines     = 8
	lineHeight   = 16
)

var bindings = []struct {
	key    ebiten.Key
	action control.Action
}{
	{ebiten.KeyArrowLeft, control.MoveLeft},
	{ebiten.KeyArrowRight, control.MoveRight},
	{ebiten.KeyA, control.RotateClockwise},
	{ebiten.KeyArrowUp, control.RotateClockwise},
	{ebiten.KeyB, control.RotateCounterClockwise},
	{ebiten.KeyArrowDown, control.Drop},
	{ebiten.KeySpace, control.Drop},
	{ebiten.KeyF, control.Spawn},
}

// Game implements ebiten.Game over a controller
type Game struct {
	ctrl     *control.Controller
	cellSize int
	logger   *log.Logger

	formatter *game.EventFormatter
	recent    []string
}

// New creates a window-sized view of ctrl's game with square cells of
// cellSize pixels.
func New(ctrl *control.Controller, cellSize int, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		ctrl:      ctrl,
		cellSize:  cellSize,
		logger:    logger.WithPrefix("gui"),
		formatter: game.NewEventFormatter(),
	}
	ctrl.State().EventBus().Subscribe(game.EventSubscriberFunc(g.onEvent))
	return g
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(g *Game, title string) error {
	w, h := g.size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)

	g.ctrl.Start()
	g.logger.Info("Window opened", "width", w, "height", h)
	return ebiten.RunGame(g)
}

// Update applies input and timed drops once per frame
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("Window closed by player")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.ctrl.TogglePause()
	}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.ctrl.Do(b.action)
		}
	}
	g.ctrl.Poll()
	return nil
}

// Draw renders the field, the faller and the sidebar
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	state := g.ctrl.State()

	cs := float32(g.cellSize)
	fieldW := cs * float32(state.Columns())
	fieldH := cs * float32(state.Rows())
	vector.StrokeRect(screen, margin-2, margin-2, fieldW+4, fieldH+4, 2, wallColor, false)

	for r := 0; r < state.Rows(); r++ {
		for c := 0; c < state.Columns(); c++ {
			cell := state.Cell(r, c)
			switch cell.Kind {
			case game.Virus:
				g.drawVirus(screen, r, c, cell.Color)
			case game.Capsule:
				g.drawSegment(screen, r, c, cell.Color, false)
			}
		}
	}

	if f, ok := state.Faller(); ok {
		for _, seg := range f.Segments() {
			g.drawSegment(screen, seg.Pos.Row, seg.Pos.Col, seg.Color, f.Landed)
		}
		x0, y0 := g.center(f.Primary.Pos.Row, f.Primary.Pos.Col)
		x1, y1 := g.center(f.Secondary.Pos.Row, f.Secondary.Pos.Col)
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, linkColor, false)
	}

	g.drawSidebar(screen, int(fieldW)+2*margin)
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size()
}

func (g *Game) size() (int, int) {
	state := g.ctrl.State()
	w := 2*margin + state.Columns()*g.cellSize + sidebarWidth
	h := max(2*margin+state.Rows()*g.cellSize, 2*margin+(logLines+6)*lineHeight)
	return w, h
}

func (g *Game) origin(row, col int) (float32, float32) {
	return float32(margin + col*g.cellSize), float32(margin + row*g.cellSize)
}

func (g *Game) center(row, col int) (float32, float32) {
	x, y := g.origin(row, col)
	half := float32(g.cellSize) / 2
	return x + half, y + half
}

func (g *Game) drawSegment(screen *ebiten.Image, row, col int, c game.Color, landed bool) {
	x, y := g.origin(row, col)
	cs := float32(g.cellSize)
	fill := colorFor(c)
	vector.DrawFilledRect(screen, x+2, y+2, cs-4, cs-4, fill, false)
	vector.StrokeRect(screen, x+2, y+2, cs-4, cs-4, 1, darker(fill), false)
	if landed {
		vector.StrokeRect(screen, x+1, y+1, cs-2, cs-2, 2, landedColor, false)
	}
}

func (g *Game) drawVirus(screen *ebiten.Image, row, col int, c game.Color) {
	cx, cy := g.center(row, col)
	r := float32(g.cellSize) * 0.35
	fill := colorFor(c)
	vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
	vector.StrokeCircle(screen, cx, cy, r, 2, darker(fill), true)
}

func (g *Game) drawSidebar(screen *ebiten.Image, x int) {
	state := g.ctrl.State()
	y := margin

	lines := []string{"DR. MARIO"}
	if state.LevelCleared() {
		lines = append(lines, "LEVEL CLEARED")
	}
	if state.GameOver() {
		lines = append(lines, "GAME OVER")
	}
	if g.ctrl.Paused() {
		lines = append(lines, "PAUSED")
	}
	lines = append(lines, "", "arrows move/drop", "A/B rotate  F spawn", "P pause  Q quit", "")

	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += lineHeight
	}
	for _, line := range g.recent {
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += lineHeight
	}
}

func (g *Game) onEvent(event game.GameEvent) {
	line := g.formatter.Format(event)
	g.recent = append(g.recent, line)
	if len(g.recent) > logLines {
		g.recent = g.recent[len(g.recent)-logLines:]
	}
	g.logger.Debug("Event", "type", event.EventType(), "text", line)
}
