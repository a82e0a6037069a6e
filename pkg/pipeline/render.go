package pipeline

import (
	"github.com/matzehuels/shiftreport/pkg/buildinfo"
	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/render/sheet"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/sink"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// Encode produces one artifact. Raster formats need res.Surface; JSON only
// reads res.Plan and XLSX only reads m.
func Encode(format string, res *sheet.Result, m report.Model, opts Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		return sink.RenderPNG(res, sink.WithMaxWidth(opts.MaxWidth))
	case FormatJPEG:
		return sink.RenderJPEG(res, sink.WithMaxWidth(opts.MaxWidth), sink.WithQuality(opts.Quality))
	case FormatPDF:
		return sink.RenderPDF(res,
			sink.WithPDFTitle(m.Title),
			sink.WithPDFCreator("shiftreport "+buildinfo.Version))
	case FormatJSON:
		if res == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "no layout plan")
		}
		return sink.RenderJSON(res.Plan,
			sink.WithJSONTitle(m.Title),
			sink.WithJSONPixelRatio(opts.PixelRatio))
	case FormatXLSX:
		return sink.RenderXLSX(m, sink.WithXLSXLabels(*opts.Labels))
	default:
		return nil, ValidateFormat(format)
	}
}
