package gui

import (
	"image/color"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
)

var (
	backgroundColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	wallColor       = color.RGBA{R: 0x62, G: 0x62, B: 0x62, A: 0xff}
	landedColor     = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	linkColor       = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0x90}
)

// pieceColors matches the terminal theme.
var pieceColors = map[game.Color]color.RGBA{
	game.Red:    {R: 0xff, G: 0x6b, B: 0x6b, A: 0xff},
	game.Yellow: {R: 0xff, G: 0xea, B: 0xa7, A: 0xff},
	game.Blue:   {R: 0x74, G: 0xb9, B: 0xff, A: 0xff},
}

func colorFor(c game.Color) color.RGBA {
	if rgba, ok := pieceColors[c]; ok {
		return rgba
	}
	return wallColor
}

// darker returns c with each channel scaled to 60%.
func darker(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R * 3 / 5, G: c.G * 3 / 5, B: c.B * 3 / 5, A: c.A}
}
