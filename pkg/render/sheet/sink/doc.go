// Package sink provides output formats for rendered shift reports.
//
// # Overview
//
// A "sink" turns a finished [sheet.Result] (or the report data behind it)
// into bytes:
//
//   - PNG: the raster at device resolution ([RenderPNG])
//   - JPEG: a smaller lossy copy for sharing ([RenderJPEG])
//   - PDF: a single page sized to the report with the raster embedded ([RenderPDF])
//   - JSON: the layout plan for tooling ([RenderJSON])
//   - XLSX: the report data as a workbook ([RenderXLSX])
//
// Sinks only read the finished surface, so several can encode the same
// result concurrently.
//
//	res, err := sheet.Render(model)
//	if err != nil {
//	    return err
//	}
//	png, err := sink.RenderPNG(res, sink.WithMaxWidth(2400))
//	pdf, err := sink.RenderPDF(res, sink.WithPDFTitle(model.Title))
//
// # Raster Options
//
//   - [WithMaxWidth]: downsample with Lanczos filtering when wider than n pixels
//   - [WithQuality]: JPEG quality, default [DefaultJPEGQuality]
//
// [sheet.Result]: github.com/matzehuels/shiftreport/pkg/render/sheet.Result
package sink
