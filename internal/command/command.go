package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
)

// Kind identifies a command in the text protocol.
type Kind int

const (
	Tick Kind = iota
	Spawn
	RotateClockwise
	RotateCounterClockwise
	MoveLeft
	MoveRight
	PlaceVirus
	Quit
)

// String returns the command name
func (k Kind) String() string {
	switch k {
	case Tick:
		return "tick"
	case Spawn:
		return "spawn"
	case RotateClockwise:
		return "rotate-cw"
	case RotateCounterClockwise:
		return "rotate-ccw"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case PlaceVirus:
		return "virus"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMalformed      = errors.New("malformed command")
	ErrInvalidColor   = errors.New("invalid color")
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
)

// Command is one parsed input line.
type Command struct {
	Kind Kind

	// Spawn
	Left, Right game.Color

	// PlaceVirus
	Row, Col int
	Color    game.Color
}

// Parse reads one line of the text protocol:
//
//	""          idle tick
//	F c1 c2     spawn, c ∈ {R,Y,B}
//	A / B       rotate clockwise / counter-clockwise
//	< / >       move left / right
//	v r c col   place virus, col ∈ {r,y,b}
//	Q           quit
//
// Surrounding whitespace is ignored. Bounds are checked by the engine.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: Tick}, nil
	}

	switch line {
	case "Q":
		return Command{Kind: Quit}, nil
	case "A":
		return Command{Kind: RotateClockwise}, nil
	case "B":
		return Command{Kind: RotateCounterClockwise}, nil
	case "<":
		return Command{Kind: MoveLeft}, nil
	case ">":
		return Command{Kind: MoveRight}, nil
	}

	parts := strings.Fields(line)
	switch parts[0] {
	case "F":
		return parseSpawn(parts)
	case "v":
		return parseVirus(parts)
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}

func parseSpawn(parts []string) (Command, error) {
	if len(parts) != 3 {
		return Command{}, fmt.Errorf("%w: F takes 2 colors, got %d", ErrMalformed, len(parts)-1)
	}
	left, err := capsuleColor(parts[1])
	if err != nil {
		return Command{}, err
	}
	right, err := capsuleColor(parts[2])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: Spawn, Left: left, Right: right}, nil
}

func parseVirus(parts []string) (Command, error) {
	if len(parts) != 4 {
		return Command{}, fmt.Errorf("%w: v takes row, column and color, got %d args", ErrMalformed, len(parts)-1)
	}
	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: row %q", ErrMalformed, parts[1])
	}
	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return Command{}, fmt.Errorf("%w: column %q", ErrMalformed, parts[2])
	}
	color, err := virusColor(parts[3])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: PlaceVirus, Row: row, Col: col, Color: color}, nil
}

// capsuleColor accepts only the uppercase letters used by F.
func capsuleColor(s string) (game.Color, error) {
	if s != "R" && s != "Y" && s != "B" {
		return game.NoColor, fmt.Errorf("%w: capsule color %q", ErrInvalidColor, s)
	}
	return game.ParseColor(s)
}

// virusColor accepts only the lowercase letters used by v.
func virusColor(s string) (game.Color, error) {
	if s != "r" && s != "y" && s != "b" {
		return game.NoColor, fmt.Errorf("%w: virus color %q", ErrInvalidColor, s)
	}
	return game.ParseColor(s)
}

// String renders the command back in protocol form.
func (c Command) String() string {
	switch c.Kind {
	case Tick:
		return ""
	case Spawn:
		return fmt.Sprintf("F %c %c", c.Left.Letter(), c.Right.Letter())
	case RotateClockwise:
		return "A"
	case RotateCounterClockwise:
		return "B"
	case MoveLeft:
		return "<"
	case MoveRight:
		return ">"
	case PlaceVirus:
		return fmt.Sprintf("v %d %d %c", c.Row, c.Col, c.Color.Letter()+('a'-'A'))
	case Quit:
		return "Q"
	}
	return "?"
}
