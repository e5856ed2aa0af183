// Package level builds random starting fields.
package level

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
)

// ErrCrowded is returned when fewer viruses fit than were asked for.
var ErrCrowded = errors.New("not enough room for viruses")

// maxRun is the longest same-color line Populate will leave in place.
const maxRun = 2

// Populate places count viruses at random on empty cells at or below row
// ceiling. A color is only used where it would not extend a horizontal or
// vertical line beyond two cells; cells where every color would are skipped.
// It returns the number of viruses placed.
func Populate(g *game.GameState, rng *rand.Rand, count, ceiling int) (int, error) {
	if ceiling < 0 || ceiling >= g.Rows() {
		return 0, fmt.Errorf("ceiling %d outside a %d-row field", ceiling, g.Rows())
	}

	var candidates []game.Position
	for r := ceiling; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			if g.Cell(r, c).IsEmpty() {
				candidates = append(candidates, game.Position{Row: r, Col: c})
			}
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	placed := 0
	for _, p := range candidates {
		if placed == count {
			break
		}
		offset := rng.IntN(len(game.Colors))
		for i := range game.Colors {
			color := game.Colors[(offset+i)%len(game.Colors)]
			if runThrough(g, p, color) > maxRun {
				continue
			}
			if g.CreateVirus(p.Row, p.Col, color) {
				placed++
			}
			break
		}
	}
	if placed < count {
		return placed, fmt.Errorf("placed %d of %d: %w", placed, count, ErrCrowded)
	}
	return placed, nil
}

// NewField creates an empty rows x columns game and populates it. Running out
// of room is not fatal here; the number placed is returned either way.
func NewField(rows, columns, viruses, ceiling int, rng *rand.Rand, opts ...game.Option) (*game.GameState, int, error) {
	g, err := game.New(rows, columns, game.ConfigEmpty, nil, opts...)
	if err != nil {
		return nil, 0, err
	}
	placed, err := Populate(g, rng, viruses, ceiling)
	if err != nil && !errors.Is(err, ErrCrowded) {
		return nil, 0, err
	}
	return g, placed, nil
}

// runThrough returns the longest line of color that p would be part of.
func runThrough(g *game.GameState, p game.Position, color game.Color) int {
	longest := 0
	for _, d := range [][2]int{{0, 1}, {1, 0}} {
		n := 1 + extent(g, p, color, d[0], d[1]) + extent(g, p, color, -d[0], -d[1])
		longest = max(longest, n)
	}
	return longest
}

func extent(g *game.GameState, p game.Position, color game.Color, dRow, dCol int) int {
	n := 0
	for q := p.Offset(dRow, dCol); ; q = q.Offset(dRow, dCol) {
		cell := g.Cell(q.Row, q.Col)
		if cell.IsEmpty() || cell.Color != color {
			return n
		}
		n++
	}
}

// RandomPair picks colors for a new faller.
func RandomPair(rng *rand.Rand) (game.Color, game.Color) {
	return game.Colors[rng.IntN(len(game.Colors))], game.Colors[rng.IntN(len(game.Colors))]
}
