package loop

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/tomz197/typedrift/internal/draw"
	"github.com/tomz197/typedrift/internal/input"
	"github.com/tomz197/typedrift/internal/object"
)

func TestDrawHUD(t *testing.T) {
	g, rec := newTestGame(t, 800, 600, []string{"code"})
	g.Update(at(0))
	g.HandleInput(&input.KeyEvent{Code: 'C', Key: "c"})
	g.Draw()

	if len(rec.Ops) == 0 || rec.Ops[0].Kind != draw.OpClearRect {
		t.Fatalf("first op = %+v, want full clear", rec.Ops)
	}
	clr := rec.Ops[0]
	if clr.X != 0 || clr.Y != 0 || clr.W != 800 || clr.H != 600 {
		t.Errorf("clear = (%v,%v,%v,%v), want (0,0,800,600)", clr.X, clr.Y, clr.W, clr.H)
	}

	var box *draw.Op
	for i := range rec.Ops {
		if rec.Ops[i].Kind == draw.OpFillRect {
			box = &rec.Ops[i]
		}
	}
	if box == nil {
		t.Fatal("no input box drawn")
	}
	if box.X != 250 || box.Y != 0 || box.W != 300 || box.H != 50 || !draw.ColorEqual(box.Color, draw.ColorGray) {
		t.Errorf("input box = %+v, want gray (250,0,300,50)", *box)
	}

	texts := map[string]draw.Op{}
	for _, op := range rec.Texts() {
		texts[op.Text] = op
	}
	in, ok := texts[": c"]
	if !ok {
		t.Fatalf("input readout missing, got %v", texts)
	}
	if in.X != 250 || in.Y != 39 || in.Style.Font.Size != 48 || in.Style.MaxWidth != 300 {
		t.Errorf("input readout = %+v", in)
	}
	score, ok := texts["Score: 0"]
	if !ok {
		t.Fatalf("score missing, got %v", texts)
	}
	if score.X != 0 || score.Y != 25 || score.Style.Font.Size != 24 || score.Style.MaxWidth != 150 {
		t.Errorf("score = %+v", score)
	}

	first, ok := texts["c"]
	if !ok || !draw.ColorEqual(first.Color, draw.ColorBlue) {
		t.Errorf("matched letter = %+v, want blue", first)
	}
	if o, ok := texts["o"]; !ok || !draw.ColorEqual(o.Color, draw.ColorWhite) {
		t.Errorf("unmatched letter = %+v, want white", o)
	}
	if _, ok := texts["delay: 2000"]; ok {
		t.Error("debug overlay drawn without debug mode")
	}
}

func TestDrawDebugOverlay(t *testing.T) {
	g, rec := newTestGame(t, 800, 600, []string{"code"}, WithDebug(true))
	g.Update(at(0))
	g.Draw()

	want := map[string]float64{
		"delay: 2000":    50,
		"enemy speed: 2": 65,
	}
	for _, op := range rec.Texts() {
		y, ok := want[op.Text]
		if !ok {
			continue
		}
		if op.Y != y || op.Style.Font.Size != 14 {
			t.Errorf("%q at y=%v size=%v, want y=%v size=14", op.Text, op.Y, op.Style.Font.Size, y)
		}
		delete(want, op.Text)
	}
	for text := range want {
		t.Errorf("%q not drawn", text)
	}
}

func TestDrawHUDOnTerminalCanvas(t *testing.T) {
	canvas := draw.NewCanvas(80, 24, 25, 25, nil)
	g := New(canvas, object.NewPool([]string{"test"}), WithRand(rand.New(rand.NewSource(1))), WithDebug(true))
	g.Init(t0)
	g.Update(at(0))
	typeWord(g, "test")
	g.Update(at(1))
	g.Update(at(2))
	g.Draw()

	tests := []struct {
		row  int
		want string
	}{
		{0, "Score: 1"},
		{1, "delay: 1800"},
		{2, "enemy speed: 2"},
	}
	for _, tt := range tests {
		if got := canvas.RowText(tt.row); !strings.Contains(got, tt.want) {
			t.Errorf("RowText(%d) = %q, want it to contain %q", tt.row, got, tt.want)
		}
	}
}
