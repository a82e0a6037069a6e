// Package pkg provides the libraries behind shiftreport.
//
// # Overview
//
// Shiftreport turns one day of plant operations data into a pixel-precise
// report image. The pkg directory is organized as:
//
//  1. [report] - the input model, hourly row normalization, footer statistics
//  2. [format] - locale-aware numbers, fill percentages, downtime durations
//  3. [render] - layout planning, drawing, and output sinks
//  4. [io] - JSON and YAML model files
//  5. [pipeline] - orchestration with artifact caching
//  6. [cache], [errors], [observability], [buildinfo] - supporting infrastructure
//
// # Data Flow
//
//	JSON/YAML model
//	       ↓
//	   [io] package (decode + validate)
//	       ↓
//	   [report] package (24 hourly rows, optional footer)
//	       ↓
//	   render/sheet/layout (section slots, column boundaries)
//	       ↓
//	   render/sheet (draw onto a surface at a device pixel ratio)
//	       ↓
//	   PNG/JPEG/PDF/JSON/XLSX output
//
// # Quick Start
//
//	m, err := io.ImportFile("daily.json")
//	if err != nil {
//	    return err
//	}
//	res, err := sheet.Render(m, sheet.WithPixelRatio(2))
//	if err != nil {
//	    return err
//	}
//	png, err := sink.RenderPNG(res)
//
// [report]: github.com/matzehuels/shiftreport/pkg/report
// [format]: github.com/matzehuels/shiftreport/pkg/format
// [render]: github.com/matzehuels/shiftreport/pkg/render
// [io]: github.com/matzehuels/shiftreport/pkg/io
// [pipeline]: github.com/matzehuels/shiftreport/pkg/pipeline
// [cache]: github.com/matzehuels/shiftreport/pkg/cache
// [errors]: github.com/matzehuels/shiftreport/pkg/errors
// [observability]: github.com/matzehuels/shiftreport/pkg/observability
// [buildinfo]: github.com/matzehuels/shiftreport/pkg/buildinfo
package pkg
