package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// InitialConfig selects how the grid is populated at construction.
type InitialConfig string

const (
	ConfigEmpty    InitialConfig = "EMPTY"
	ConfigContents InitialConfig = "CONTENTS"
)

// ParseInitialConfig accepts EMPTY or CONTENTS.
func ParseInitialConfig(s string) (InitialConfig, error) {
	switch InitialConfig(s) {
	case ConfigEmpty, ConfigContents:
		return InitialConfig(s), nil
	}
	return "", fmt.Errorf("unknown initial configuration %q", s)
}

// SpawnRow is the row a new faller appears on.
const SpawnRow = 1

// Option configures a GameState during creation.
type Option func(*GameState)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *log.Logger) Option {
	return func(g *GameState) {
		if logger != nil {
			g.logger = logger.WithPrefix("engine")
		}
	}
}

// WithEventBus publishes state changes to bus.
func WithEventBus(bus EventBus) Option {
	return func(g *GameState) {
		if bus != nil {
			g.eventBus = bus
		}
	}
}

// GameState owns the grid and the active faller. All operations are
// synchronous and leave the state consistent when they return.
type GameState struct {
	rows     int
	columns  int
	grid     [][]Cell
	faller   *Faller
	gameOver bool

	logger   *log.Logger
	eventBus EventBus
}

// New creates a game field. With ConfigContents, row r is read from
// contents[r]; missing rows or characters are treated as empty.
func New(rows, columns int, initial InitialConfig, contents []string, opts ...Option) (*GameState, error) {
	if rows < SpawnRow+1 || columns < 2 {
		return nil, fmt.Errorf("field %dx%d is too small to spawn a faller", rows, columns)
	}

	g := &GameState{
		rows:     rows,
		columns:  columns,
		grid:     make([][]Cell, rows),
		logger:   log.New(io.Discard),
		eventBus: NewEventBus(),
	}
	for r := range g.grid {
		g.grid[r] = make([]Cell, columns)
	}
	for _, opt := range opts {
		opt(g)
	}

	if initial == ConfigContents {
		for r := 0; r < rows && r < len(contents); r++ {
			line := contents[r]
			for c := 0; c < columns && c < len(line); c++ {
				g.grid[r][c] = CellFromSymbol(line[c])
			}
		}
	}

	g.logger.Debug("Created field", "rows", rows, "columns", columns, "config", initial)
	return g, nil
}

// Rows returns the number of rows in the field
func (g *GameState) Rows() int { return g.rows }

// Columns returns the number of columns in the field
func (g *GameState) Columns() int { return g.columns }

// EventBus returns the bus state changes are published on
func (g *GameState) EventBus() EventBus { return g.eventBus }

// GameOver reports whether a spawn has been blocked.
func (g *GameState) GameOver() bool { return g.gameOver }

// HasViruses reports whether any virus remains on the grid.
func (g *GameState) HasViruses() bool {
	for _, row := range g.grid {
		for _, cell := range row {
			if cell.Kind == Virus {
				return true
			}
		}
	}
	return false
}

// LevelCleared is the negation of HasViruses.
func (g *GameState) LevelCleared() bool { return !g.HasViruses() }

// InBounds reports whether p lies on the grid.
func (g *GameState) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.columns
}

// Cell returns the settled content at (row, col); out-of-range reads are empty.
func (g *GameState) Cell(row, col int) Cell {
	if !g.InBounds(Position{Row: row, Col: col}) {
		return EmptyCell
	}
	return g.grid[row][col]
}

// Faller returns a copy of the active faller.
func (g *GameState) Faller() (Faller, bool) {
	if g.faller == nil {
		return Faller{}, false
	}
	return *g.faller, true
}

// HasFaller reports whether a faller is in play.
func (g *GameState) HasFaller() bool { return g.faller != nil }

// Contents returns the grid in CONTENTS form, one string per row.
func (g *GameState) Contents() []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.columns)
	for r, row := range g.grid {
		for c, cell := range row {
			buf[c] = cell.Symbol()
		}
		out[r] = string(buf)
	}
	return out
}

// free reports whether p is on the grid and holds no settled content.
func (g *GameState) free(p Position) bool {
	return g.InBounds(p) && g.grid[p.Row][p.Col].IsEmpty()
}

// CellDisplay returns the three-character token for a cell. Faller segments
// are bracketed while airborne and barred once landed; horizontal fallers
// show a dash on the joined side.
func (g *GameState) CellDisplay(row, col int) string {
	p := Position{Row: row, Col: col}
	if g.faller != nil {
		if seg, primary, ok := g.faller.At(p); ok {
			open, close := byte('['), byte(']')
			if g.faller.Landed {
				open, close = '|', '|'
			}
			letter := seg.Color.Letter()
			if g.faller.Orientation() == Vertical {
				return string([]byte{open, letter, close})
			}
			if primary {
				return string([]byte{open, letter, '-'})
			}
			return string([]byte{'-', letter, close})
		}
	}

	cell := g.Cell(row, col)
	if cell.IsEmpty() {
		return "   "
	}
	return string([]byte{' ', cell.Symbol(), ' '})
}
