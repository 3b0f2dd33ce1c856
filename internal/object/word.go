package object

import (
	"github.com/tomz197/typedrift/internal/draw"
)

// GlyphAdvance is the horizontal distance between letters of a word, in pixels.
const GlyphAdvance = 25

// WordFont is the font words are drawn with.
var WordFont = draw.Font{Size: 48, Family: draw.MonoFamily}

// Word colors.
var (
	MatchedColor = draw.ColorBlue
	DefaultColor = draw.ColorWhite
)

// Word is a target string drifting left to right.
type Word struct {
	Text string
	X    float64 // Left edge; starts at 0 and only grows
	Y    float64 // Baseline, fixed at spawn
}

// NewWord creates a word at the left edge with baseline y.
func NewWord(text string, y float64) *Word {
	return &Word{Text: text, Y: y}
}

// Advance moves the word right by speed pixels.
func (w *Word) Advance(speed float64) {
	w.X += speed
}

// Exited reports whether the word has moved past the right edge.
func (w *Word) Exited(width float64) bool {
	return w.X > width
}

// Render draws the word letter by letter. The leading run of letters that
// matches playerInput uses MatchedColor; from the first mismatch on, every
// letter uses DefaultColor even if later letters happen to match.
func (w *Word) Render(s draw.Surface, playerInput string) {
	if w == nil || w.Text == "" {
		return
	}

	in := []rune(playerInput)
	matching := true
	i := 0
	for _, letter := range w.Text {
		style := draw.TextStyle{Font: WordFont, Color: DefaultColor}
		if matching && i < len(in) && in[i] == letter {
			style.Color = MatchedColor
		} else {
			matching = false
		}
		s.FillText(string(letter), w.X+float64(i*GlyphAdvance), w.Y, style)
		i++
	}
}

// Update advances the word and reports removal once it leaves the surface.
func (w *Word) Update(ctx UpdateContext) (bool, error) {
	w.Advance(ctx.Speed)
	return w.Exited(ctx.Bounds.Width), nil
}

// Draw renders the word against the current input.
func (w *Word) Draw(ctx DrawContext) error {
	w.Render(ctx.Surface, ctx.Input)
	return nil
}
