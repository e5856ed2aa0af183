package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
	}{
		{"", Command{Kind: Tick}},
		{"   ", Command{Kind: Tick}},
		{"Q", Command{Kind: Quit}},
		{"A", Command{Kind: RotateClockwise}},
		{"B", Command{Kind: RotateCounterClockwise}},
		{"<", Command{Kind: MoveLeft}},
		{" > ", Command{Kind: MoveRight}},
		{"F R B", Command{Kind: Spawn, Left: game.Red, Right: game.Blue}},
		{"F  Y   Y", Command{Kind: Spawn, Left: game.Yellow, Right: game.Yellow}},
		{"v 7 0 r", Command{Kind: PlaceVirus, Row: 7, Col: 0, Color: game.Red}},
		{"v 0 5 b", Command{Kind: PlaceVirus, Row: 0, Col: 5, Color: game.Blue}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"X", ErrUnknownCommand},
		{"q", ErrUnknownCommand},
		{"FOO R B", ErrUnknownCommand},
		{"F R", ErrMalformed},
		{"F R B Y", ErrMalformed},
		{"F r b", ErrInvalidColor},
		{"F R G", ErrInvalidColor},
		{"v 1 2", ErrMalformed},
		{"v one 2 r", ErrMalformed},
		{"v 1 2.5 r", ErrMalformed},
		{"v 1 2 R", ErrInvalidColor},
		{"v 1 2 g", ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCommandStringRoundTrip(t *testing.T) {
	for _, line := range []string{"", "Q", "A", "B", "<", ">", "F R Y", "v 3 4 y"} {
		cmd, err := Parse(line)
		require.NoError(t, err)
		assert.Equal(t, line, cmd.String())
	}
}
