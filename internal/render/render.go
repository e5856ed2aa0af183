// Package render draws a game field as text.
package render

import (
	"io"
	"strings"
)

// Status lines printed under the field.
const (
	LevelCleared = "LEVEL CLEARED"
	GameOver     = "GAME OVER"
)

// View is the read-only surface of a game the renderers need.
type View interface {
	Rows() int
	Columns() int
	CellDisplay(row, col int) string
	HasViruses() bool
	GameOver() bool
}

// Field returns the bordered grid and its footer, one line per row.
func Field(v View) []string {
	lines := make([]string, 0, v.Rows()+1)
	var b strings.Builder
	for r := 0; r < v.Rows(); r++ {
		b.Reset()
		b.WriteByte('|')
		for c := 0; c < v.Columns(); c++ {
			b.WriteString(v.CellDisplay(r, c))
		}
		b.WriteByte('|')
		lines = append(lines, b.String())
	}
	lines = append(lines, Footer(v.Columns()))
	return lines
}

// Footer is the line drawn under the last row.
func Footer(columns int) string {
	return " " + strings.Repeat("-", 3*columns) + " "
}

// Status returns LEVEL CLEARED and/or GAME OVER as they apply.
func Status(v View) []string {
	var out []string
	if !v.HasViruses() {
		out = append(out, LevelCleared)
	}
	if v.GameOver() {
		out = append(out, GameOver)
	}
	return out
}

// Text writes the field followed by its status lines.
func Text(w io.Writer, v View) error {
	lines := append(Field(v), Status(v)...)
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
