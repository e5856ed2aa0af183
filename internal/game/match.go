package game

import (
	"github.com/kamstrup/intmap"
)

// MinRun is the shortest same-color line that clears.
const MinRun = 4

// MatchSet is a set of grid positions in first-seen order.
type MatchSet struct {
	columns int
	index   *intmap.Map[int, struct{}]
	cells   []Position
}

func newMatchSet(columns int) *MatchSet {
	return &MatchSet{
		columns: columns,
		index:   intmap.New[int, struct{}](16),
	}
}

// Add inserts p unless it is already present.
func (m *MatchSet) Add(p Position) {
	key := p.Row*m.columns + p.Col
	if m.index.Has(key) {
		return
	}
	m.index.Put(key, struct{}{})
	m.cells = append(m.cells, p)
}

// Contains reports whether p is in the set.
func (m *MatchSet) Contains(p Position) bool {
	return m.index.Has(p.Row*m.columns + p.Col)
}

// Len returns the number of unique positions.
func (m *MatchSet) Len() int { return len(m.cells) }

// Positions returns the members in insertion order.
func (m *MatchSet) Positions() []Position {
	out := make([]Position, len(m.cells))
	copy(out, m.cells)
	return out
}

// FindMatches returns every cell belonging to a maximal horizontal or
// vertical run of at least MinRun same-colored cells. Viruses and capsules of
// one color match each other.
func (g *GameState) FindMatches() *MatchSet {
	set := newMatchSet(g.columns)

	for r := 0; r < g.rows; r++ {
		g.scanLine(set, Position{Row: r, Col: 0}, 0, 1, g.columns)
	}
	for c := 0; c < g.columns; c++ {
		g.scanLine(set, Position{Row: 0, Col: c}, 1, 0, g.rows)
	}
	return set
}

// scanLine walks length cells from start in direction (dRow, dCol) and adds
// every qualifying run to set.
func (g *GameState) scanLine(set *MatchSet, start Position, dRow, dCol, length int) {
	runStart := 0
	for i := 1; i <= length; i++ {
		prev := g.grid[start.Row+dRow*(i-1)][start.Col+dCol*(i-1)]
		if i < length {
			cur := g.grid[start.Row+dRow*i][start.Col+dCol*i]
			if !cur.IsEmpty() && cur.Color == prev.Color {
				continue
			}
		}
		if i-runStart >= MinRun && !prev.IsEmpty() {
			for j := runStart; j < i; j++ {
				set.Add(start.Offset(dRow*j, dCol*j))
			}
		}
		runStart = i
	}
}

// HandleMatching clears matches until none remain, letting capsules fall
// after each clear so newly aligned runs are found.
func (g *GameState) HandleMatching() {
	for step := 1; ; step++ {
		matches := g.FindMatches()
		if matches.Len() == 0 {
			g.refreshLanded()
			return
		}

		viruses := 0
		for _, p := range matches.cells {
			if g.grid[p.Row][p.Col].Kind == Virus {
				viruses++
			}
			g.grid[p.Row][p.Col] = EmptyCell
		}
		g.logger.Debug("Cleared matches", "cells", matches.Len(), "viruses", viruses, "step", step)
		g.eventBus.Publish(NewMatchesClearedEvent(matches.cells, step, viruses))
		if viruses > 0 && !g.HasViruses() {
			g.logger.Debug("Level cleared")
			g.eventBus.Publish(NewLevelClearedEvent())
		}

		g.dropCapsules()
	}
}

// ApplyGravity lets every capsule segment fall as far as it can, then
// resolves any matches that exposes. Viruses never move.
func (g *GameState) ApplyGravity() {
	g.dropCapsules()
	g.HandleMatching()
}

// dropCapsules repeats bottom-up passes moving unsupported capsule cells down
// one row until a pass moves nothing. Active faller cells count as support.
// Each move lowers a cell, so the loop ends within rows passes.
func (g *GameState) dropCapsules() {
	passes := 0
	for moved := true; moved; passes++ {
		moved = false
		for r := g.rows - 2; r >= 0; r-- {
			for c := 0; c < g.columns; c++ {
				if g.grid[r][c].Kind != Capsule {
					continue
				}
				below := Position{Row: r + 1, Col: c}
				if !g.grid[below.Row][below.Col].IsEmpty() {
					continue
				}
				if g.faller != nil && g.faller.Covers(below) {
					continue
				}
				g.grid[below.Row][below.Col] = g.grid[r][c]
				g.grid[r][c] = EmptyCell
				moved = true
			}
		}
	}
	if passes > 1 {
		g.logger.Debug("Gravity settled", "passes", passes)
	}
}
