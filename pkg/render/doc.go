// Package render groups the report renderers.
//
// The [sheet] subpackage draws the fixed-schema shift report. Its work is
// split across subpackages that mirror the drawing flow:
//
//   - [sheet/styles]: geometry constants, fonts, palette, and TOML overrides
//   - [sheet/layout]: pure geometry, computed once from the model and style
//   - [sheet/canvas]: the raster surface and a recording canvas for tests
//   - [sheet/section]: one renderer per section, each advancing a Y cursor
//   - [sheet/sink]: PNG, JPEG, PDF, JSON, and XLSX output
//
// [sheet]: github.com/matzehuels/shiftreport/pkg/render/sheet
// [sheet/styles]: github.com/matzehuels/shiftreport/pkg/render/sheet/styles
// [sheet/layout]: github.com/matzehuels/shiftreport/pkg/render/sheet/layout
// [sheet/canvas]: github.com/matzehuels/shiftreport/pkg/render/sheet/canvas
// [sheet/section]: github.com/matzehuels/shiftreport/pkg/render/sheet/section
// [sheet/sink]: github.com/matzehuels/shiftreport/pkg/render/sheet/sink
package render
