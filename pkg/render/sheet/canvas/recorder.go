package canvas

import (
	"image/color"
	"unicode/utf8"
)

// OpKind names a recorded drawing call.
type OpKind string

const (
	OpFillRect   OpKind = "fill_rect"
	OpStrokeRect OpKind = "stroke_rect"
	OpLine       OpKind = "line"
	OpFillCircle OpKind = "fill_circle"
	OpText       OpKind = "text"
)

// Op is one recorded drawing call. Unused fields are zero.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	X2, Y2     float64
	LineWidth  float64
	Text       string
	Align      Align
	Font       Font
	Color      color.Color
}

// Recorder is a [Canvas] that records calls instead of drawing. Text width is
// estimated as half the font size per rune, which keeps measurements
// deterministic without loading fonts.
type Recorder struct {
	Ops []Op
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, LineWidth: lineWidth, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, LineWidth: lineWidth, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: cx, Y: cy, W: radius, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, align Align, f Font, c color.Color) {
	if s == "" {
		return
	}
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: s, Align: align, Font: f, Color: c})
}

func (r *Recorder) MeasureText(s string, f Font) float64 {
	return float64(utf8.RuneCountInString(s)) * f.Size * 0.5
}

// Texts returns the recorded text runs in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Filter returns the recorded ops of one kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset discards all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
