// Package draw provides drawing surfaces for the game: a terminal cell canvas,
// a buffered ANSI writer, and an in-memory recorder.
package draw

import "image/color"

// Surface is a 2D drawing target measured in logical pixels.
// Implementations must tolerate coordinates outside their bounds.
type Surface interface {
	Width() float64
	Height() float64
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	// FillText draws text with its baseline at y, starting at x.
	FillText(text string, x, y float64, style TextStyle)
}

// Font selects glyph size (in logical pixels) and family.
type Font struct {
	Size   float64
	Family string
}

// TextStyle describes how FillText renders a string.
// MaxWidth <= 0 means unlimited.
type TextStyle struct {
	Font     Font
	Color    color.Color
	MaxWidth float64
}

// MonoFamily is the font family used for all game text.
const MonoFamily = `"Roboto Mono", monospace`

// Colors used by the game.
var (
	ColorWhite = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorGray  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	ColorBlue  = color.RGBA{0x00, 0x00, 0xff, 0xff}
	ColorBlack = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// ColorEqual reports whether two colors have the same RGBA value.
func ColorEqual(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
