package canvas

import "image/color"

// Align is the horizontal anchor of a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font selects a face by logical size and weight.
type Font struct {
	Size float64
	Bold bool
}

// Canvas is the drawing surface the section renderers paint on. All
// coordinates and sizes are logical units; implementations apply the device
// pixel ratio.
type Canvas interface {
	// FillRect fills the rectangle with its top-left corner at (x, y).
	FillRect(x, y, w, h float64, c color.Color)
	// StrokeRect outlines the rectangle with a line of the given width.
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
	// Line draws a straight segment.
	Line(x1, y1, x2, y2, lineWidth float64, c color.Color)
	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c color.Color)
	// Text draws s anchored at x per align, vertically centered on y.
	Text(s string, x, y float64, align Align, f Font, c color.Color)
	// MeasureText returns the logical advance width of s.
	MeasureText(s string, f Font) float64
}

func anchor(a Align) float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}
