package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
)

func TestText(t *testing.T) {
	g, err := game.New(4, 3, game.ConfigContents, []string{"   ", "   ", "  Y", "r B"})
	require.NoError(t, err)
	require.True(t, g.CreateFaller(game.Red, game.Blue))

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, g))
	assert.Equal(t, strings.Join([]string{
		"|         |",
		"|[R--B]   |",
		"|       Y |",
		"| r     B |",
		" --------- ",
		"",
	}, "\n"), buf.String())
}

func TestStatus(t *testing.T) {
	t.Run("viruses remain", func(t *testing.T) {
		g, err := game.New(4, 3, game.ConfigContents, []string{"   ", "   ", "   ", " y "})
		require.NoError(t, err)
		assert.Empty(t, Status(g))
	})

	t.Run("level cleared", func(t *testing.T) {
		g, err := game.New(4, 3, game.ConfigEmpty, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{LevelCleared}, Status(g))
	})

	t.Run("game over", func(t *testing.T) {
		g, err := game.New(4, 3, game.ConfigContents, []string{"   ", "y  ", "   ", "   "})
		require.NoError(t, err)
		assert.False(t, g.CreateFaller(game.Red, game.Red))
		assert.Equal(t, []string{GameOver}, Status(g))
	})
}

func TestStyledMonoMatchesText(t *testing.T) {
	g, err := game.New(4, 4, game.ConfigContents, []string{"    ", "    ", " Y  ", "rbBy"})
	require.NoError(t, err)
	require.True(t, g.CreateFaller(game.Yellow, game.Blue))

	s := NewStyled(&bytes.Buffer{}, ThemeMono)
	assert.Equal(t, strings.Join(Field(g), "\n"), s.Field(g))
	assert.Equal(t, "", s.Status(g))
	assert.Equal(t, "[Y-", s.Token("[Y-"))
	assert.Equal(t, "   ", s.Token("   "))
}
