package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
)

func newDispatcher(t *testing.T, rows, columns int) *Dispatcher {
	t.Helper()
	g, err := game.New(rows, columns, game.ConfigEmpty, nil)
	require.NoError(t, err)
	return NewDispatcher(g, nil)
}

func TestDispatchSpawnAndMove(t *testing.T) {
	d := newDispatcher(t, 8, 6)

	assert.True(t, d.Dispatch("F R B"))
	f, ok := d.State().Faller()
	require.True(t, ok)
	assert.Equal(t, game.Position{Row: 1, Col: 2}, f.Primary.Pos)
	assert.Equal(t, game.Red, f.Primary.Color)
	assert.Equal(t, game.Blue, f.Secondary.Color)
	assert.False(t, f.Landed)

	d.Dispatch("<")
	d.Dispatch("A")
	f, _ = d.State().Faller()
	assert.Equal(t, game.Vertical, f.Orientation())
	assert.Equal(t, 1, f.Primary.Pos.Col)

	d.Dispatch("B")
	d.Dispatch(">")
	f, _ = d.State().Faller()
	assert.Equal(t, game.Horizontal, f.Orientation())
	assert.Equal(t, 2, f.Primary.Pos.Col)

	d.Dispatch("")
	f, _ = d.State().Faller()
	assert.Equal(t, 2, f.Primary.Pos.Row)
}

func TestDispatchQuit(t *testing.T) {
	d := newDispatcher(t, 8, 6)
	assert.False(t, d.Dispatch("Q"))
	assert.False(t, d.Dispatch("  Q  "))
}

func TestDispatchIgnoresMalformed(t *testing.T) {
	d := newDispatcher(t, 8, 6)
	before := d.State().Contents()

	for _, line := range []string{
		"F R", "F X Y", "v 1 1", "v a b r", "v 8 0 r", "v 0 6 r", "v -1 0 r", "hello", "v 1 1 R",
	} {
		assert.True(t, d.Dispatch(line), line)
	}
	assert.Equal(t, before, d.State().Contents())
	assert.False(t, d.State().HasFaller())
}

func TestDispatchVirus(t *testing.T) {
	d := newDispatcher(t, 8, 6)
	d.Dispatch("v 7 0 r")
	assert.Equal(t, game.NewVirus(game.Red), d.State().Cell(7, 0))

	d.Dispatch("v 7 0 b")
	assert.Equal(t, game.NewVirus(game.Red), d.State().Cell(7, 0), "occupied cells are kept")

	for i := 0; i < 10; i++ {
		d.Dispatch("")
	}
	assert.Equal(t, game.NewVirus(game.Red), d.State().Cell(7, 0))
}

func TestApplyReportsOutcome(t *testing.T) {
	d := newDispatcher(t, 8, 6)
	assert.False(t, d.Apply(Command{Kind: MoveLeft}))
	assert.True(t, d.Apply(Command{Kind: Spawn, Left: game.Red, Right: game.Red}))
	assert.False(t, d.Apply(Command{Kind: Spawn, Left: game.Blue, Right: game.Blue}))
	assert.True(t, d.Apply(Command{Kind: Tick}))
	assert.False(t, d.Apply(Command{Kind: Quit}))
}
