package draw

import "image/color"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClearRect OpKind = iota
	OpFillRect
	OpFillText
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64     // Rect ops only
	Text  string      // FillText only
	Style TextStyle   // FillText only
	Color color.Color // FillRect color, or FillText style color
}

// Recorder is a Surface that records calls instead of drawing.
// It is used for headless runs and tests.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder creates a recorder with the given logical size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{W: width, H: height}
}

// Width returns the logical width.
func (r *Recorder) Width() float64 { return r.W }

// Height returns the logical height.
func (r *Recorder) Height() float64 { return r.H }

// ClearRect records a clear.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h})
}

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

// FillText records a text draw.
func (r *Recorder) FillText(text string, x, y float64, style TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, X: x, Y: y, Text: text, Style: style, Color: style.Color})
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Texts returns the recorded FillText operations in call order.
func (r *Recorder) Texts() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpFillText {
			out = append(out, op)
		}
	}
	return out
}

// Ensure Recorder satisfies Surface.
var _ Surface = (*Recorder)(nil)
