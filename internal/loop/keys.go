package loop

import (
	"strings"
	"unicode/utf8"

	"github.com/tomz197/typedrift/internal/input"
)

// HandleInput applies a key press to the input buffer.
// Only backspace, escape and letters are considered; anything else, including
// a nil event, is ignored.
func (g *Game) HandleInput(ev *input.KeyEvent) {
	if ev == nil {
		return
	}
	if ev.Code != input.KeyBackspace && ev.Code != input.KeyEscape && !ev.IsLetter() {
		return
	}

	if ev.Code == input.KeyBackspace {
		if ev.Ctrl {
			g.playerInput = ""
			return
		}
		_, size := utf8.DecodeLastRuneInString(g.playerInput)
		g.playerInput = g.playerInput[:len(g.playerInput)-size]
		return
	}

	if utf8.RuneCountInString(ev.Key) == 1 {
		g.playerInput = strings.TrimSpace(g.playerInput + ev.Key)
	}
}
