package game

import "fmt"

// Color is one of the three capsule/virus colors.
type Color int

const (
	NoColor Color = iota
	Red
	Yellow
	Blue
)

// Colors lists the playable palette in display order.
var Colors = []Color{Red, Yellow, Blue}

// String returns the color name
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	default:
		return "None"
	}
}

// Letter returns the uppercase letter used for the color in text protocols.
func (c Color) Letter() byte {
	switch c {
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	case Blue:
		return 'B'
	default:
		return ' '
	}
}

// ParseColor maps R/Y/B (either case) to a Color.
func ParseColor(s string) (Color, error) {
	if len(s) != 1 {
		return NoColor, fmt.Errorf("invalid color %q", s)
	}
	switch s[0] {
	case 'R', 'r':
		return Red, nil
	case 'Y', 'y':
		return Yellow, nil
	case 'B', 'b':
		return Blue, nil
	}
	return NoColor, fmt.Errorf("invalid color %q", s)
}

// Kind distinguishes what occupies a grid cell.
type Kind int

const (
	Empty Kind = iota
	Virus
	Capsule
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Virus:
		return "Virus"
	case Capsule:
		return "Capsule"
	default:
		return "Empty"
	}
}

// Cell is the content of one grid square.
type Cell struct {
	Kind  Kind
	Color Color
}

// EmptyCell is the zero Cell.
var EmptyCell = Cell{}

// NewVirus returns a virus cell of the given color.
func NewVirus(c Color) Cell { return Cell{Kind: Virus, Color: c} }

// NewCapsule returns a settled capsule segment of the given color.
func NewCapsule(c Color) Cell { return Cell{Kind: Capsule, Color: c} }

// IsEmpty reports whether nothing occupies the cell.
func (c Cell) IsEmpty() bool { return c.Kind == Empty }

// Symbol returns the single-character form used by CONTENTS rows: space for
// empty, lowercase for viruses, uppercase for capsules.
func (c Cell) Symbol() byte {
	switch c.Kind {
	case Virus:
		return c.Color.Letter() + ('a' - 'A')
	case Capsule:
		return c.Color.Letter()
	default:
		return ' '
	}
}

// CellFromSymbol is the inverse of Symbol. Unknown symbols map to EmptyCell.
func CellFromSymbol(b byte) Cell {
	switch b {
	case 'r':
		return NewVirus(Red)
	case 'y':
		return NewVirus(Yellow)
	case 'b':
		return NewVirus(Blue)
	case 'R':
		return NewCapsule(Red)
	case 'Y':
		return NewCapsule(Yellow)
	case 'B':
		return NewCapsule(Blue)
	default:
		return EmptyCell
	}
}

// Position is a zero-based grid coordinate; row 0 is the top.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Below returns the position one row down.
func (p Position) Below() Position { return Position{Row: p.Row + 1, Col: p.Col} }

// Offset returns the position shifted by the given deltas.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}
