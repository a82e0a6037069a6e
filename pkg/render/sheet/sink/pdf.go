package sink

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/render/sheet"
)

const pdfImageName = "report"

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title   string
	creator string
}

// WithPDFTitle sets the document title metadata.
func WithPDFTitle(title string) PDFOption { return func(r *pdfRenderer) { r.title = title } }

// WithPDFCreator sets the document creator metadata.
func WithPDFCreator(creator string) PDFOption { return func(r *pdfRenderer) { r.creator = creator } }

// RenderPDF wraps the rendered report in a single-page PDF. The page is the
// report's logical size in points and the raster is embedded at full device
// resolution, so a 2x render prints at 144 dpi.
func RenderPDF(res *sheet.Result, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{creator: "shiftreport"}
	for _, opt := range opts {
		opt(&r)
	}

	png, err := RenderPNG(res)
	if err != nil {
		return nil, err
	}
	w, h := res.Surface.Width(), res.Surface.Height()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator(r.creator, true)
	if r.title != "" {
		pdf.SetTitle(r.title, true)
	}
	pdf.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pdfImageName, imgOpts, bytes.NewReader(png))
	pdf.ImageOptions(pdfImageName, 0, 0, w, h, false, imgOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write pdf")
	}
	return buf.Bytes(), nil
}
