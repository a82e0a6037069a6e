// Package sheet renders a shift report into a raster image.
//
// # Overview
//
// A report is drawn in three steps:
//
//  1. [layout.Build] derives every section's slot from the data and style.
//  2. [canvas.Allocate] creates a surface of exactly the planned size at the
//     requested device pixel ratio.
//  3. The section renderers draw banner, parameter grid, operators, silo, and
//     downtime from top to bottom, threading a single y cursor.
//
// [Render] performs all three:
//
//	res, err := sheet.Render(model,
//	    sheet.WithStyle(styles.Default()),
//	    sheet.WithPixelRatio(2),
//	)
//	if err != nil {
//	    return err
//	}
//	res.Surface.EncodePNG(w)
//
// # Cursor Checks
//
// Each renderer returns the cursor advanced by the height it drew. Before
// every section the cursor is compared with the plan's section top; a
// mismatch is logged as a warning through the logger given with
// [WithLogger].
//
// # Errors
//
// An invalid style (errors.ErrCodeInvalidStyle), invalid model
// (errors.ErrCodeInvalidInput), or a surface that cannot be allocated
// (errors.ErrCodeConfiguration) fails the whole render and returns no
// surface. Bad individual values never fail a render.
//
// # Output Formats
//
// The [sink] subpackage encodes a finished [Result] as PNG, JPEG, PDF, XLSX,
// or a JSON dump of the plan.
//
// [sink]: github.com/matzehuels/shiftreport/pkg/render/sheet/sink
package sheet
