// Package desktop runs the game in an ebiten window.
package desktop

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/typedrift/internal/draw"
)

// glyphHeight is the pixel height basicfont glyphs are scaled from.
const glyphHeight = 13

// Surface is a draw.Surface backed by an offscreen ebiten image.
type Surface struct {
	img  *ebiten.Image
	face *text.GoXFace
}

// NewSurface creates a width x height surface.
func NewSurface(width, height int) *Surface {
	return &Surface{
		img:  ebiten.NewImage(width, height),
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Image returns the backing image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Width returns the width in pixels.
func (s *Surface) Width() float64 {
	return float64(s.img.Bounds().Dx())
}

// Height returns the height in pixels.
func (s *Surface) Height() float64 {
	return float64(s.img.Bounds().Dy())
}

// ClearRect makes the rectangle transparent.
func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Clear()
}

// FillRect fills the rectangle with c.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// FillText draws text with its baseline at y, scaled to the style's font size
// and cut to MaxWidth.
func (s *Surface) FillText(str string, x, y float64, style draw.TextStyle) {
	if str == "" {
		return
	}
	scale := 1.0
	if style.Font.Size > 0 {
		scale = style.Font.Size / glyphHeight
	}
	if style.MaxWidth > 0 {
		runes := []rune(str)
		for len(runes) > 0 && text.Advance(string(runes), s.face)*scale > style.MaxWidth {
			runes = runes[:len(runes)-1]
		}
		str = string(runes)
	}

	col := style.Color
	if col == nil {
		col = draw.ColorWhite
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-s.face.Metrics().HAscent*scale)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(s.img, str, s.face, op)
}

var _ draw.Surface = (*Surface)(nil)
