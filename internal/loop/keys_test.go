package loop

import (
	"testing"

	"github.com/tomz197/typedrift/internal/input"
)

func TestHandleInput(t *testing.T) {
	letter := func(r rune) *input.KeyEvent {
		ev := input.FromRune(r)
		return &ev
	}
	tests := []struct {
		name  string
		start string
		ev    *input.KeyEvent
		want  string
	}{
		{"nil event", "hel", nil, "hel"},
		{"letter appends", "he", letter('l'), "hel"},
		{"upper case kept", "he", letter('L'), "heL"},
		{"backspace", "hel", &input.KeyEvent{Code: input.KeyBackspace}, "he"},
		{"backspace on empty", "", &input.KeyEvent{Code: input.KeyBackspace}, ""},
		{"ctrl backspace clears", "hel", &input.KeyEvent{Code: input.KeyBackspace, Ctrl: true}, ""},
		{"escape ignored", "hel", &input.KeyEvent{Code: input.KeyEscape}, "hel"},
		{"space ignored", "hel", letter(' '), "hel"},
		{"digit ignored", "hel", letter('7'), "hel"},
		{"punctuation ignored", "hel", letter('-'), "hel"},
		{"enter ignored", "hel", &input.KeyEvent{Code: input.KeyEnter}, "hel"},
		{"arrow ignored", "hel", &input.KeyEvent{Code: input.KeyArrowLeft}, "hel"},
		{"letter code without key", "hel", &input.KeyEvent{Code: 'L', Ctrl: true}, "hel"},
		{"multi-rune key ignored", "hel", &input.KeyEvent{Code: 'L', Key: "lo"}, "hel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, 800, 600, []string{"test"})
			g.playerInput = tt.start
			g.HandleInput(tt.ev)
			if g.Input() != tt.want {
				t.Errorf("HandleInput(%+v) on %q: Input() = %q, want %q", tt.ev, tt.start, g.Input(), tt.want)
			}
		})
	}
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	g, _ := newTestGame(t, 800, 600, []string{"test"})
	g.playerInput = "naïve"
	for i := 0; i < 3; i++ {
		g.HandleInput(&input.KeyEvent{Code: input.KeyBackspace})
	}
	if g.Input() != "na" {
		t.Errorf("Input() = %q, want %q", g.Input(), "na")
	}
}
