// Package section draws the individual regions of a shift report.
//
// Each renderer takes an [Env] (canvas, style, number formatter, header
// labels), its part of the layout plan, the data it shows, and the y
// coordinate where its section starts. It draws only inside that section and
// returns y plus the height it consumed, which always equals the planned
// section height:
//
//	y = section.Banner(env, m, y)
//	y = section.Grid(env, plan.Grid, m, y)
//	y = section.Operators(env, plan.Operators, m.Operators, y)
//	y = section.Silo(env, plan.Silo, m.Silo, y)
//	y = section.Downtime(env, plan.Downtime, m.Downtime, y)
//
// Optional renderers given a nil plan or no entries draw nothing and return y
// unchanged. Individual bad values (missing readings, malformed times, zero
// capacity) render as format.Placeholder and never abort a render.
package section
