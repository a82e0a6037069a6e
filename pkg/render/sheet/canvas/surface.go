package canvas

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/shiftreport/pkg/errors"
)

const (
	// MaxPixelRatio caps the device pixel ratio a surface accepts.
	MaxPixelRatio = 4.0
	// MaxSurfacePixels caps the backing store at roughly 400 MB of RGBA.
	MaxSurfacePixels = 100_000_000
)

// Surface is a raster canvas backed by a gg context. It is sized in logical
// units and stores ceil(width*ratio) by ceil(height*ratio) device pixels.
//
// A Surface is not safe for concurrent drawing. Once drawing has finished,
// [Surface.Image] may be read from any number of goroutines.
type Surface struct {
	dc     *gg.Context
	width  float64
	height float64
	ratio  float64
	faces  faceCache
}

// Allocate creates a transparent surface of the given logical size at the
// given device pixel ratio. The context is scaled by ratio so callers draw in
// logical units.
//
// Non-finite or non-positive sizes, a ratio above [MaxPixelRatio], or a
// backing store above [MaxSurfacePixels] return errors.ErrCodeConfiguration
// and no surface.
func Allocate(width, height, ratio float64) (*Surface, error) {
	for _, v := range []float64{width, height, ratio} {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, errors.New(errors.ErrCodeConfiguration,
				"cannot allocate surface %vx%v at ratio %v: dimensions and ratio must be positive and finite", width, height, ratio)
		}
	}
	if ratio > MaxPixelRatio {
		return nil, errors.New(errors.ErrCodeConfiguration, "pixel ratio %v exceeds maximum %v", ratio, MaxPixelRatio)
	}

	dw, dh := math.Ceil(width*ratio), math.Ceil(height*ratio)
	if dw*dh > MaxSurfacePixels {
		return nil, errors.New(errors.ErrCodeConfiguration,
			"surface of %.0fx%.0f device pixels exceeds limit of %d", dw, dh, MaxSurfacePixels)
	}
	if err := parseFonts(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load embedded fonts")
	}

	dc := gg.NewContext(int(dw), int(dh))
	dc.Scale(ratio, ratio)
	return &Surface{
		dc:     dc,
		width:  width,
		height: height,
		ratio:  ratio,
		faces:  faceCache{},
	}, nil
}

// Width returns the logical width.
func (s *Surface) Width() float64 { return s.width }

// Height returns the logical height.
func (s *Surface) Height() float64 { return s.height }

// PixelRatio returns the device pixel ratio.
func (s *Surface) PixelRatio() float64 { return s.ratio }

// Image returns the device-resolution backing image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the backing image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// Line widths are not affected by the context transform, so they are scaled here.
func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth * s.ratio)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Stroke()
}

func (s *Surface) Line(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth * s.ratio)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawCircle(cx, cy, r)
	s.dc.Fill()
}

// Text is rasterised in device space with a face sized for the pixel ratio,
// so glyphs stay sharp instead of being scaled up from logical size.
func (s *Surface) Text(str string, x, y float64, align Align, f Font, c color.Color) {
	if str == "" {
		return
	}
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.Identity()
	s.dc.SetFontFace(s.faces.get(f.Size*s.ratio, f.Bold))
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, x*s.ratio, y*s.ratio, anchor(align), 0.5)
}

func (s *Surface) MeasureText(str string, f Font) float64 {
	adv := font.MeasureString(s.faces.get(f.Size*s.ratio, f.Bold), str)
	return float64(adv) / 64 / s.ratio
}
