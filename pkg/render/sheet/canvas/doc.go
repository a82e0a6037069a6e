// Package canvas provides the drawing surface for shift report rendering.
//
// # Canvas
//
// [Canvas] is the small set of primitives the section renderers need: filled
// and stroked rectangles, lines, circles, and single-line text anchored left,
// center, or right. Coordinates are logical units.
//
// # Surface
//
// [Allocate] returns a [Surface] backed by a fogleman/gg context whose backing
// store is the logical size multiplied by the device pixel ratio. A uniform
// scale transform is applied once, so renderers never see device pixels. Text
// is rasterised in device space with Go fonts sized for the ratio so that
// glyphs stay crisp at 2x and 3x.
//
//	s, err := canvas.Allocate(1600, 1200, 2)
//	if err != nil {
//	    return err // errors.ErrCodeConfiguration
//	}
//	s.FillRect(0, 0, s.Width(), s.Height(), color.White)
//	s.EncodePNG(w)
//
// # Recorder
//
// [Recorder] implements [Canvas] by recording calls. Tests use it to check
// geometry and to assert that empty sections draw nothing.
package canvas
