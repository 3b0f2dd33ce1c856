package object

import "github.com/tomz197/typedrift/internal/draw"

// Text is a static HUD label. X and Y are in logical pixels, Y is the baseline.
type Text struct {
	X     float64
	Y     float64
	Value string
	Style draw.TextStyle
}

// Draw writes the label onto the surface.
func (t Text) Draw(ctx DrawContext) error {
	if t.Value == "" {
		return nil
	}
	ctx.Surface.FillText(t.Value, t.X, t.Y, t.Style)
	return nil
}

// Update is a no-op for static text.
func (t Text) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}
