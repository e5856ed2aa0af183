package level

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/randutil"
)

func TestPopulate(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			g, err := game.New(16, 8, game.ConfigEmpty, nil)
			require.NoError(t, err)

			placed, err := Populate(g, randutil.New(seed), 30, 6)
			require.NoError(t, err)
			assert.Equal(t, 30, placed)

			count := 0
			for r := 0; r < g.Rows(); r++ {
				for c := 0; c < g.Columns(); c++ {
					cell := g.Cell(r, c)
					if r < 6 {
						assert.True(t, cell.IsEmpty(), "virus above ceiling at (%d,%d)", r, c)
					}
					if cell.Kind == game.Virus {
						count++
					}
				}
			}
			assert.Equal(t, 30, count)
			assert.Empty(t, g.FindMatches().Positions())
		})
	}
}

func TestPopulateIsDeterministic(t *testing.T) {
	a, err := game.New(10, 6, game.ConfigEmpty, nil)
	require.NoError(t, err)
	b, err := game.New(10, 6, game.ConfigEmpty, nil)
	require.NoError(t, err)

	_, err = Populate(a, randutil.New(5), 12, 4)
	require.NoError(t, err)
	_, err = Populate(b, randutil.New(5), 12, 4)
	require.NoError(t, err)
	assert.Equal(t, a.Contents(), b.Contents())
}

func TestPopulateErrors(t *testing.T) {
	g, err := game.New(4, 3, game.ConfigEmpty, nil)
	require.NoError(t, err)

	_, err = Populate(g, randutil.New(1), 1, 4)
	assert.Error(t, err)

	placed, err := Populate(g, randutil.New(1), 100, 2)
	assert.ErrorIs(t, err, ErrCrowded)
	assert.LessOrEqual(t, placed, 6)
}

func TestNewField(t *testing.T) {
	g, placed, err := NewField(8, 4, 100, 3, randutil.New(9))
	require.NoError(t, err)
	assert.Equal(t, 8, g.Rows())
	assert.Positive(t, placed)
	assert.Less(t, placed, 100)
	assert.True(t, g.HasViruses())

	_, _, err = NewField(1, 4, 2, 0, randutil.New(9))
	assert.Error(t, err)

	_, _, err = NewField(8, 4, 2, 8, randutil.New(9))
	assert.Error(t, err)
}

func TestRandomPair(t *testing.T) {
	rng := randutil.New(3)
	seen := map[game.Color]bool{}
	for i := 0; i < 100; i++ {
		l, r := RandomPair(rng)
		seen[l] = true
		seen[r] = true
	}
	assert.Len(t, seen, 3)
	assert.False(t, seen[game.NoColor])
}
