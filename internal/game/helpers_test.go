package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newField builds a CONTENTS field from row strings; all rows must share a width.
func newField(t *testing.T, rows ...string) *GameState {
	t.Helper()
	require.NotEmpty(t, rows)
	g, err := New(len(rows), len(rows[0]), ConfigContents, rows)
	require.NoError(t, err)
	return g
}

// newEmpty builds an empty field.
func newEmpty(t *testing.T, rows, columns int) *GameState {
	t.Helper()
	g, err := New(rows, columns, ConfigEmpty, nil)
	require.NoError(t, err)
	return g
}

// recorder collects published events.
type recorder struct {
	events []GameEvent
}

func (r *recorder) OnEvent(e GameEvent) { r.events = append(r.events, e) }

func (r *recorder) ofType(t EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}

// dropUntilLanded lets the faller fall until it reports landed.
func dropUntilLanded(t *testing.T, g *GameState) {
	t.Helper()
	for i := 0; i <= g.Rows(); i++ {
		f, ok := g.Faller()
		require.True(t, ok, "no faller")
		if f.Landed {
			return
		}
		g.FallOneStep()
	}
	t.Fatal("faller never landed")
}
