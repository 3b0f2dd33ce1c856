package draw

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func newTestCanvas() *Canvas {
	return NewCanvas(10, 4, 25, 25, plainRenderer())
}

func TestCanvasLogicalSize(t *testing.T) {
	c := newTestCanvas()
	if c.Width() != 250 || c.Height() != 100 {
		t.Errorf("size = %vx%v, want 250x100", c.Width(), c.Height())
	}
	c.Resize(4, 2)
	if c.Width() != 100 || c.Height() != 50 {
		t.Errorf("after Resize size = %vx%v, want 100x50", c.Width(), c.Height())
	}
}

func TestCanvasFillTextBaselineRow(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		row  int
	}{
		{"first row bottom", 25, 0},
		{"second row", 39, 1},
		{"second row bottom", 50, 1},
		{"third row", 65, 2},
		{"last row", 100, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()
			c.FillText("ab", 50, tt.y, TextStyle{Color: ColorWhite})
			got := c.RowText(tt.row)
			if got != "  ab      " {
				t.Errorf("RowText(%d) = %q, want %q", tt.row, got, "  ab      ")
			}
		})
	}
}

func TestCanvasFillTextOutOfBounds(t *testing.T) {
	c := newTestCanvas()
	c.FillText("hidden", 0, 0, TextStyle{})
	c.FillText("hidden", 0, 500, TextStyle{})
	c.FillText("abc", -25, 25, TextStyle{})
	c.FillText("abcdef", 200, 50, TextStyle{})

	if got := c.RowText(0); got != "bc        " {
		t.Errorf("row 0 = %q, want %q", got, "bc        ")
	}
	if got := c.RowText(1); got != "        ab" {
		t.Errorf("row 1 = %q, want %q", got, "        ab")
	}
}

func TestCanvasFillTextMaxWidth(t *testing.T) {
	tests := []struct {
		name string
		size float64
		want string
	}{
		{"bold text is cut", 48, "abc       "},
		{"bold threshold is cut", boldFontSize, "abc       "},
		{"small text is kept", 24, "abcdefgh  "},
		{"debug text is kept", 14, "abcdefgh  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()
			c.FillText("abcdefgh", 0, 25, TextStyle{Font: Font{Size: tt.size}, MaxWidth: 75})
			if got := c.RowText(0); got != tt.want {
				t.Errorf("row 0 = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanvasTextKeepsBackground(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(0, 0, 100, 50, ColorGray)
	c.FillText("x", 25, 39, TextStyle{Font: Font{Size: 48}, Color: ColorWhite})

	cell := c.CellAt(1, 1)
	if cell.Rune != 'x' {
		t.Fatalf("rune = %q, want 'x'", cell.Rune)
	}
	if !ColorEqual(cell.BG, ColorGray) {
		t.Errorf("background = %v, want gray", cell.BG)
	}
	if !ColorEqual(cell.FG, ColorWhite) {
		t.Errorf("foreground = %v, want white", cell.FG)
	}
	if !cell.Bold {
		t.Error("48px text should render bold")
	}
	if got := c.CellAt(4, 0); got.BG != nil {
		t.Errorf("cell outside rect has background %v", got.BG)
	}
}

func TestCanvasClearRect(t *testing.T) {
	c := newTestCanvas()
	c.FillText("abcdefghij", 0, 25, TextStyle{})
	c.ClearRect(50, 0, 50, 25)
	if got := c.RowText(0); got != "ab  efghij" {
		t.Errorf("row 0 = %q, want %q", got, "ab  efghij")
	}
	c.ClearRect(0, 0, c.Width(), c.Height())
	if got := c.RowText(0); strings.TrimSpace(got) != "" {
		t.Errorf("row 0 after full clear = %q", got)
	}
}

func TestCanvasRenderOnlyChangedRows(t *testing.T) {
	c := newTestCanvas()

	var first bytes.Buffer
	c.Render(&first)
	for row := 1; row <= 4; row++ {
		seq := "\033[" + string(rune('0'+row)) + ";1H"
		if !strings.Contains(first.String(), seq) {
			t.Errorf("first render missing row %d", row)
		}
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("unchanged render wrote %q", second.String())
	}

	c.FillText("hi", 0, 50, TextStyle{})
	var third bytes.Buffer
	c.Render(&third)
	want := "\033[2;1Hhi        "
	if third.String() != want {
		t.Errorf("render = %q, want %q", third.String(), want)
	}

	c.ForceRedraw()
	var fourth bytes.Buffer
	c.Render(&fourth)
	if strings.Count(fourth.String(), "\033[") != 4 {
		t.Errorf("forced render should rewrite all rows, got %q", fourth.String())
	}
}

func TestCanvasRenderOffset(t *testing.T) {
	c := NewCanvas(2, 1, 25, 25, plainRenderer())
	c.SetOffset(3, 5)
	var buf bytes.Buffer
	c.Render(&buf)
	if got, want := buf.String(), "\033[6;4H  "; got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRecorderTexts(t *testing.T) {
	r := NewRecorder(800, 600)
	r.ClearRect(0, 0, 800, 600)
	r.FillText("a", 1, 2, TextStyle{Color: ColorBlue})
	r.FillRect(0, 0, 1, 1, ColorGray)
	r.FillText("b", 3, 4, TextStyle{})

	texts := r.Texts()
	if len(texts) != 2 || texts[0].Text != "a" || texts[1].Text != "b" {
		t.Fatalf("Texts() = %+v", texts)
	}
	if !ColorEqual(texts[0].Color, ColorBlue) {
		t.Errorf("color = %v, want blue", texts[0].Color)
	}
	r.Reset()
	if len(r.Ops) != 0 {
		t.Errorf("Reset left %d ops", len(r.Ops))
	}
}
