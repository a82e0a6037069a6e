// Package styles holds the constant table that drives shift report geometry
// and appearance.
//
// # Overview
//
// Every length the layout planner and section renderers use comes from a
// [Style] value: canvas width, padding, band and row heights, fixed column
// widths, font sizes, and the color [Palette]. Nothing is measured from text;
// the table alone decides where every line and cell goes.
//
// # Configuration
//
// [Default] returns the built-in table. [Load] and [Decode] read a TOML file
// whose keys override individual defaults:
//
//	width = 1800
//	row_height = 22
//
//	[columns]
//	hour = 48
//
//	[palette]
//	banner_background = "#0b3d2e"
//
// Unknown keys and non-positive geometry are rejected with
// errors.ErrCodeInvalidStyle.
//
// # Text
//
// [Truncate] shortens labels to a width with a ".." suffix, using whatever
// measuring function the caller's canvas provides.
package styles
