// Package layout computes the geometry of a shift report before anything is
// drawn.
//
// # Plan
//
// [Build] turns a report.Model and a styles.Style into a [Plan]: the canvas
// width, the total height, and one [Section] slot per visible section in the
// fixed order banner, grid, operators, silo, downtime. Heights depend only on
// data cardinality (parameter count, footer rows, entry counts) and the style
// table, never on text measurement, so the same input always yields the same
// plan.
//
// The total height is conserved:
//
//	Height == sum(section heights) + BottomPadding
//
// # Columns
//
// The parameter grid has two fixed label columns (hour and shift) followed by
// equal-width parameter columns that share what is left of the content width.
// [GridPlan.Columns] is the one boundary sequence that header text, body text,
// footer text, and every vertical line use, which keeps all rows aligned.
//
// # Optional Sections
//
// The operator, silo, and downtime tables are planned only when their entry
// slices are non-empty. Absent sections have no slot in [Plan.Sections] and a
// nil table plan, so nothing below them shifts.
package layout
