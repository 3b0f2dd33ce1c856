package loop

import (
	"fmt"

	"github.com/tomz197/typedrift/internal/draw"
	"github.com/tomz197/typedrift/internal/object"
)

// Input box geometry, centered at the top of the surface.
const (
	inputBoxWidth    = 300
	inputBoxHeight   = 50
	inputBaseline    = 39
	scoreBaseline    = 25
	scoreMaxWidth    = 150
	debugLineSpacing = 15
)

var (
	inputFont = draw.Font{Size: 48, Family: draw.MonoFamily}
	scoreFont = draw.Font{Size: 24, Family: draw.MonoFamily}
	debugFont = draw.Font{Size: 14, Family: draw.MonoFamily}
)

// Draw clears the surface and draws words, the input box and the score.
func (g *Game) Draw() {
	s := g.surface
	width := s.Width()
	s.ClearRect(0, 0, width, s.Height())

	ctx := object.DrawContext{Surface: s, Input: g.playerInput}
	for _, w := range g.words {
		w.Draw(ctx)
	}

	boxX := width/2 - inputBoxWidth/2
	s.FillRect(boxX, 0, inputBoxWidth, inputBoxHeight, draw.ColorGray)

	for _, label := range g.hudLabels(boxX) {
		label.Draw(ctx)
	}
}

// hudLabels returns the input readout, the score and, in debug mode, the timers.
func (g *Game) hudLabels(boxX float64) []object.Text {
	labels := []object.Text{
		{
			X:     boxX,
			Y:     inputBaseline,
			Value: ": " + g.playerInput,
			Style: draw.TextStyle{Font: inputFont, Color: draw.ColorWhite, MaxWidth: inputBoxWidth},
		},
		{
			X:     0,
			Y:     scoreBaseline,
			Value: fmt.Sprintf("Score: %d", g.score),
			Style: draw.TextStyle{Font: scoreFont, Color: draw.ColorWhite, MaxWidth: scoreMaxWidth},
		},
	}
	if !g.debug {
		return labels
	}

	debugStyle := draw.TextStyle{Font: debugFont, Color: draw.ColorWhite, MaxWidth: scoreMaxWidth}
	return append(labels,
		object.Text{
			X:     0,
			Y:     inputBoxHeight,
			Value: fmt.Sprintf("delay: %d", g.delay.Milliseconds()),
			Style: debugStyle,
		},
		object.Text{
			X:     0,
			Y:     inputBoxHeight + debugLineSpacing,
			Value: fmt.Sprintf("enemy speed: %g", g.speed),
			Style: debugStyle,
		},
	)
}
