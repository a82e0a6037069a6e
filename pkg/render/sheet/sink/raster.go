package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/render/sheet"
)

// DefaultJPEGQuality is used when no quality is set.
const DefaultJPEGQuality = 90

// RasterOption configures PNG and JPEG encoding.
type RasterOption func(*rasterRenderer)

type rasterRenderer struct {
	maxWidth int
	quality  int
}

// WithMaxWidth downsamples images wider than px device pixels, keeping the
// aspect ratio. Zero disables resizing.
func WithMaxWidth(px int) RasterOption { return func(r *rasterRenderer) { r.maxWidth = px } }

// WithQuality sets the JPEG quality (1-100). PNG ignores it.
func WithQuality(q int) RasterOption { return func(r *rasterRenderer) { r.quality = q } }

func newRasterRenderer(opts ...RasterOption) rasterRenderer {
	r := rasterRenderer{quality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r rasterRenderer) image(res *sheet.Result) (image.Image, error) {
	if res == nil || res.Surface == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no rendered surface")
	}
	img := res.Surface.Image()
	if r.maxWidth > 0 && img.Bounds().Dx() > r.maxWidth {
		img = imaging.Resize(img, r.maxWidth, 0, imaging.Lanczos)
	}
	return img, nil
}

// RenderPNG encodes the rendered report as PNG at device resolution.
func RenderPNG(res *sheet.Result, opts ...RasterOption) ([]byte, error) {
	r := newRasterRenderer(opts...)
	img, err := r.image(res)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RenderJPEG encodes the rendered report as JPEG.
func RenderJPEG(res *sheet.Result, opts ...RasterOption) ([]byte, error) {
	r := newRasterRenderer(opts...)
	if r.quality < 1 || r.quality > 100 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "jpeg quality must be within 1..100, got %d", r.quality)
	}
	img, err := r.image(res)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(r.quality)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode jpeg")
	}
	return buf.Bytes(), nil
}
