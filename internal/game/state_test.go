package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("empty field", func(t *testing.T) {
		g := newEmpty(t, 8, 6)
		assert.Equal(t, 8, g.Rows())
		assert.Equal(t, 6, g.Columns())
		assert.False(t, g.HasViruses())
		assert.False(t, g.HasFaller())
		assert.False(t, g.GameOver())
		for r := 0; r < 8; r++ {
			for c := 0; c < 6; c++ {
				assert.True(t, g.Cell(r, c).IsEmpty())
			}
		}
	})

	t.Run("contents are mapped by symbol", func(t *testing.T) {
		g := newField(t,
			"r Y ",
			"bB y",
		)
		assert.Equal(t, NewVirus(Red), g.Cell(0, 0))
		assert.Equal(t, EmptyCell, g.Cell(0, 1))
		assert.Equal(t, NewCapsule(Yellow), g.Cell(0, 2))
		assert.Equal(t, NewVirus(Blue), g.Cell(1, 0))
		assert.Equal(t, NewCapsule(Blue), g.Cell(1, 1))
		assert.Equal(t, NewVirus(Yellow), g.Cell(1, 3))
		assert.Equal(t, []string{"r Y ", "bB y"}, g.Contents())
	})

	t.Run("malformed contents become empty cells", func(t *testing.T) {
		g, err := New(4, 4, ConfigContents, []string{"rr", "x?Zq"})
		require.NoError(t, err)
		assert.Equal(t, []string{"rr  ", "    ", "    ", "    "}, g.Contents())
	})

	t.Run("contents ignored for EMPTY", func(t *testing.T) {
		g, err := New(4, 3, ConfigEmpty, []string{"rrr", "rrr", "rrr", "rrr"})
		require.NoError(t, err)
		assert.False(t, g.HasViruses())
	})

	t.Run("too small to spawn", func(t *testing.T) {
		_, err := New(1, 6, ConfigEmpty, nil)
		assert.Error(t, err)
		_, err = New(6, 1, ConfigEmpty, nil)
		assert.Error(t, err)
	})
}

func TestParseInitialConfig(t *testing.T) {
	cfg, err := ParseInitialConfig("EMPTY")
	require.NoError(t, err)
	assert.Equal(t, ConfigEmpty, cfg)

	cfg, err = ParseInitialConfig("CONTENTS")
	require.NoError(t, err)
	assert.Equal(t, ConfigContents, cfg)

	_, err = ParseInitialConfig("contents")
	assert.Error(t, err)
}

func TestHasViruses(t *testing.T) {
	assert.True(t, newField(t, "    ", "  b ", "    ", "    ").HasViruses())
	assert.False(t, newField(t, "    ", "  B ", "  R ", "    ").HasViruses())
}

func TestCellOutOfRange(t *testing.T) {
	g := newField(t, "rrr", "rrr", "rrr", "rrr")
	assert.True(t, g.Cell(-1, 0).IsEmpty())
	assert.True(t, g.Cell(0, 3).IsEmpty())
	assert.True(t, g.Cell(4, 0).IsEmpty())
}

func TestCellDisplay(t *testing.T) {
	g := newField(t,
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		"y    R",
	)

	assert.Equal(t, "   ", g.CellDisplay(0, 0))
	assert.Equal(t, " y ", g.CellDisplay(5, 0))
	assert.Equal(t, " R ", g.CellDisplay(5, 5))

	require.True(t, g.CreateFaller(Red, Blue))
	assert.Equal(t, "[R-", g.CellDisplay(1, 2))
	assert.Equal(t, "-B]", g.CellDisplay(1, 3))

	require.True(t, g.Rotate(true))
	assert.Equal(t, "[R]", g.CellDisplay(1, 2))
	assert.Equal(t, "[B]", g.CellDisplay(2, 2))
	assert.Equal(t, "   ", g.CellDisplay(1, 3))

	dropUntilLanded(t, g)
	assert.Equal(t, "|R|", g.CellDisplay(4, 2))
	assert.Equal(t, "|B|", g.CellDisplay(5, 2))

	// Rotating back to horizontal leaves empty cells below, so it is airborne again.
	require.True(t, g.Rotate(false))
	assert.Equal(t, "[R-", g.CellDisplay(4, 2))
	assert.Equal(t, "-B]", g.CellDisplay(4, 3))

	require.True(t, g.FallOneStep())
	assert.Equal(t, "|R-", g.CellDisplay(5, 2))
	assert.Equal(t, "-B|", g.CellDisplay(5, 3))

	before := g.Contents()
	_ = g.CellDisplay(5, 2)
	assert.Equal(t, before, g.Contents(), "display must not mutate the grid")
}
