package object

import (
	"image/color"
	"testing"

	"github.com/tomz197/typedrift/internal/draw"
)

func TestWordAdvance(t *testing.T) {
	w := NewWord("test", 100)
	w.Advance(2)
	w.Advance(2.5)
	if w.X != 4.5 {
		t.Errorf("X = %v, want 4.5", w.X)
	}
	if w.Y != 100 {
		t.Errorf("Y changed to %v", w.Y)
	}
}

func TestWordRenderHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		input string
		want  []color.Color
	}{
		{"no input", "code", "", []color.Color{DefaultColor, DefaultColor, DefaultColor, DefaultColor}},
		{"prefix", "code", "co", []color.Color{MatchedColor, MatchedColor, DefaultColor, DefaultColor}},
		{"mismatch propagates", "code", "co x", []color.Color{MatchedColor, MatchedColor, DefaultColor, DefaultColor}},
		{"later coincidence ignored", "code", "coxe", []color.Color{MatchedColor, MatchedColor, DefaultColor, DefaultColor}},
		{"first letter wrong", "code", "xode", []color.Color{DefaultColor, DefaultColor, DefaultColor, DefaultColor}},
		{"full match", "code", "code", []color.Color{MatchedColor, MatchedColor, MatchedColor, MatchedColor}},
		{"input longer", "to", "today", []color.Color{MatchedColor, MatchedColor}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := draw.NewRecorder(800, 600)
			w := &Word{Text: tt.text, X: 10, Y: 200}
			w.Render(rec, tt.input)

			texts := rec.Texts()
			if len(texts) != len(tt.want) {
				t.Fatalf("rendered %d glyphs, want %d", len(texts), len(tt.want))
			}
			for i, op := range texts {
				if op.Text != string(tt.text[i]) {
					t.Errorf("glyph %d = %q, want %q", i, op.Text, string(tt.text[i]))
				}
				if wantX := 10 + float64(i*GlyphAdvance); op.X != wantX || op.Y != 200 {
					t.Errorf("glyph %d at (%v, %v), want (%v, 200)", i, op.X, op.Y, wantX)
				}
				if !draw.ColorEqual(op.Color, tt.want[i]) {
					t.Errorf("glyph %d color = %v, want %v", i, op.Color, tt.want[i])
				}
				if op.Style.Font != WordFont {
					t.Errorf("glyph %d font = %+v, want %+v", i, op.Style.Font, WordFont)
				}
			}
		})
	}
}

func TestWordRenderEmpty(t *testing.T) {
	rec := draw.NewRecorder(800, 600)
	(&Word{}).Render(rec, "abc")
	var nilWord *Word
	nilWord.Render(rec, "abc")
	if len(rec.Ops) != 0 {
		t.Errorf("empty word rendered %d ops", len(rec.Ops))
	}
}

func TestWordUpdateRemovesAfterRightEdge(t *testing.T) {
	w := NewWord("test", 100)
	ctx := UpdateContext{Speed: 2, Bounds: Bounds{Width: 10, Height: 100}}

	for i := 1; i <= 5; i++ {
		remove, err := w.Update(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if remove {
			t.Fatalf("removed at tick %d with X=%v", i, w.X)
		}
	}
	remove, _ := w.Update(ctx)
	if !remove {
		t.Errorf("X=%v should be removed past width 10", w.X)
	}
}

func TestTextDraw(t *testing.T) {
	rec := draw.NewRecorder(800, 600)
	style := draw.TextStyle{Font: draw.Font{Size: 24}, Color: draw.ColorWhite, MaxWidth: 150}

	if err := (Text{X: 0, Y: 25, Value: "Score: 3", Style: style}).Draw(DrawContext{Surface: rec}); err != nil {
		t.Fatal(err)
	}
	if err := (Text{Value: ""}).Draw(DrawContext{Surface: rec}); err != nil {
		t.Fatal(err)
	}
	texts := rec.Texts()
	if len(texts) != 1 || texts[0].Text != "Score: 3" || texts[0].Style.MaxWidth != 150 {
		t.Errorf("Texts() = %+v", texts)
	}
}
