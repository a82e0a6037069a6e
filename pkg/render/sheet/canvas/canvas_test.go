package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/matzehuels/shiftreport/pkg/errors"
)

var red = color.RGBA{255, 0, 0, 255}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name           string
		w, h, ratio    float64
		wantDW, wantDH int
	}{
		{"unit ratio", 100, 50, 1, 100, 50},
		{"retina", 100, 50, 2, 200, 100},
		{"fractional rounds up", 101, 33, 1.5, 152, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Allocate(tt.w, tt.h, tt.ratio)
			if err != nil {
				t.Fatalf("Allocate() error: %v", err)
			}
			b := s.Image().Bounds()
			if b.Dx() != tt.wantDW || b.Dy() != tt.wantDH {
				t.Errorf("device size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantDW, tt.wantDH)
			}
			if s.Width() != tt.w || s.Height() != tt.h || s.PixelRatio() != tt.ratio {
				t.Errorf("logical = %vx%v@%v, want %vx%v@%v", s.Width(), s.Height(), s.PixelRatio(), tt.w, tt.h, tt.ratio)
			}
		})
	}
}

func TestAllocateRejects(t *testing.T) {
	tests := []struct {
		name        string
		w, h, ratio float64
	}{
		{"zero width", 0, 100, 1},
		{"negative height", 100, -1, 1},
		{"zero ratio", 100, 100, 0},
		{"nan ratio", 100, 100, math.NaN()},
		{"infinite height", 100, math.Inf(1), 1},
		{"ratio too high", 100, 100, MaxPixelRatio + 1},
		{"too many pixels", 20000, 20000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Allocate(tt.w, tt.h, tt.ratio)
			if s != nil {
				t.Error("Allocate() returned a surface on error")
			}
			if !errors.Is(err, errors.ErrCodeConfiguration) {
				t.Errorf("Allocate() error = %v, want %v", err, errors.ErrCodeConfiguration)
			}
		})
	}
}

func TestSurfaceScalesDrawing(t *testing.T) {
	s, err := Allocate(20, 20, 2)
	if err != nil {
		t.Fatal(err)
	}
	s.FillRect(0, 0, 10, 10, red)

	img := s.Image()
	if got := color.RGBAModel.Convert(img.At(19, 19)).(color.RGBA); got != red {
		t.Errorf("pixel (19,19) = %v, want %v", got, red)
	}
	if _, _, _, a := img.At(25, 25).RGBA(); a != 0 {
		t.Errorf("pixel (25,25) alpha = %d, want transparent", a)
	}
}

func TestSurfaceMeasureTextIndependentOfRatio(t *testing.T) {
	f := Font{Size: 12}
	s1, _ := Allocate(100, 100, 1)
	s2, _ := Allocate(100, 100, 2)

	w1 := s1.MeasureText("Average", f)
	w2 := s2.MeasureText("Average", f)
	if w1 <= 0 {
		t.Fatalf("MeasureText() = %v, want positive", w1)
	}
	if math.Abs(w1-w2) > 2 {
		t.Errorf("MeasureText at ratio 1 = %v, ratio 2 = %v; want about equal", w1, w2)
	}
	if bold := s1.MeasureText("Average", Font{Size: 12, Bold: true}); bold < w1 {
		t.Errorf("bold width %v < regular width %v", bold, w1)
	}
}

func TestSurfaceTextDrawsPixels(t *testing.T) {
	s, _ := Allocate(80, 20, 2)
	s.Text("88", 40, 10, AlignCenter, Font{Size: 14, Bold: true}, color.Black)

	img := s.Image()
	b := img.Bounds()
	painted := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("Text() painted no pixels")
	}
}

func TestSurfaceEncodePNG(t *testing.T) {
	s, _ := Allocate(10, 10, 3)
	s.FillRect(0, 0, 10, 10, color.White)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if img.Bounds().Dx() != 30 {
		t.Errorf("decoded width = %d, want 30", img.Bounds().Dx())
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.FillRect(1, 2, 3, 4, red)
	r.Text("", 0, 0, AlignLeft, Font{Size: 10}, red)
	r.Text("abc", 5, 6, AlignRight, Font{Size: 10}, red)
	r.Line(0, 0, 1, 1, 1, red)

	if len(r.Ops) != 3 {
		t.Fatalf("len(Ops) = %d, want 3 (empty text is skipped)", len(r.Ops))
	}
	if got := r.Texts(); len(got) != 1 || got[0] != "abc" {
		t.Errorf("Texts() = %v, want [abc]", got)
	}
	if got := r.MeasureText("abcd", Font{Size: 10}); got != 20 {
		t.Errorf("MeasureText() = %v, want 20", got)
	}
	if got := len(r.Filter(OpLine)); got != 1 {
		t.Errorf("Filter(OpLine) = %d ops, want 1", got)
	}
	r.Reset()
	if len(r.Ops) != 0 {
		t.Errorf("Reset() left %d ops", len(r.Ops))
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		a    Align
		want float64
	}{
		{AlignLeft, 0}, {AlignCenter, 0.5}, {AlignRight, 1},
	}
	for _, tt := range tests {
		if got := anchor(tt.a); got != tt.want {
			t.Errorf("anchor(%v) = %v, want %v", tt.a, got, tt.want)
		}
	}
}
