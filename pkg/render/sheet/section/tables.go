package section

import (
	"github.com/matzehuels/shiftreport/pkg/format"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/canvas"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// Operators draws the operator roster. With no plan or no entries it draws
// nothing and returns y unchanged.
func Operators(e Env, t *layout.TablePlan, entries []report.OperatorEntry, y float64) float64 {
	if t == nil || len(entries) == 0 {
		return y
	}
	labels := []string{e.Labels.Shift, e.Labels.Operator}
	aligns := []canvas.Align{canvas.AlignLeft, canvas.AlignLeft}
	return e.simpleTable(t, y, e.Labels.Operators, labels, aligns, len(entries), func(i int) []string {
		op := entries[i]
		return []string{orPlaceholder(op.ShiftLabel), orPlaceholder(op.Name)}
	})
}

// Downtime draws the downtime log. Durations crossing midnight wrap by 24
// hours; malformed times render as placeholders. The problem column is
// left-aligned and truncated to fit.
func Downtime(e Env, t *layout.TablePlan, entries []report.DowntimeEntry, y float64) float64 {
	if t == nil || len(entries) == 0 {
		return y
	}
	labels := []string{e.Labels.Start, e.Labels.End, e.Labels.Duration, e.Labels.PIC, e.Labels.Problem}
	aligns := []canvas.Align{canvas.AlignCenter, canvas.AlignCenter, canvas.AlignCenter, canvas.AlignLeft, canvas.AlignLeft}
	return e.simpleTable(t, y, e.Labels.Downtime, labels, aligns, len(entries), func(i int) []string {
		d := entries[i]
		return []string{
			clock(d.StartTime),
			clock(d.EndTime),
			format.DowntimeDuration(d.StartTime, d.EndTime),
			orPlaceholder(d.PIC),
			orPlaceholder(d.Problem),
		}
	})
}

func clock(s string) string {
	if _, ok := format.ParseClock(s); !ok {
		return format.Placeholder
	}
	return s
}

// Silo draws the silo stock table: a name column, then three shift groups of
// empty space, content, and fill percentage under a two-band header.
func Silo(e Env, t *layout.TablePlan, entries []report.SiloEntry, y float64) float64 {
	if t == nil || len(entries) == 0 {
		return y
	}
	p := e.Style.Palette
	hf := e.headerFont()

	e.title(t, y, e.Labels.Silo)

	top := y + t.HeaderTop()
	shiftBand, subBand := t.HeaderBands[0], t.HeaderBands[1]
	subTop := top + shiftBand
	bodyTop := top + t.HeaderHeight()
	bottom := y + t.Height()

	e.Canvas.FillRect(t.Left(), top, t.Right()-t.Left(), t.HeaderHeight(), p.HeaderBackground.RGBA)
	e.text(e.Labels.SiloName, t.Cell(0), top, t.HeaderHeight(), canvas.AlignLeft, hf, p.HeaderText.RGBA)
	sub := []string{e.Labels.Empty, e.Labels.Content, e.Labels.Fill}
	for g, span := range t.Groups {
		e.text(span.Label, span, top, shiftBand, canvas.AlignCenter, hf, p.HeaderText.RGBA)
		for k, l := range sub {
			e.text(l, t.Cell(1+g*layout.SiloSubColumns+k), subTop, subBand, canvas.AlignCenter, hf, p.HeaderText.RGBA)
		}
	}

	for i := 0; i < t.Rows && i < len(entries); i++ {
		s := entries[i]
		rowTop := y + t.RowTop(i)
		e.Canvas.FillRect(t.Left(), rowTop, t.Right()-t.Left(), t.RowHeight, e.zebra(i))
		e.value(orPlaceholder(s.Name), t.Cell(0), rowTop, t.RowHeight, canvas.AlignLeft)
		for g, sh := range s.Shifts() {
			col := 1 + g*layout.SiloSubColumns
			e.value(e.Format.NumberPtr(sh.EmptySpace), t.Cell(col), rowTop, t.RowHeight, canvas.AlignCenter)
			e.value(e.Format.NumberPtr(sh.Content), t.Cell(col+1), rowTop, t.RowHeight, canvas.AlignCenter)
			e.value(format.FillPercent(sh.Content, s.Capacity), t.Cell(col+2), rowTop, t.RowHeight, canvas.AlignCenter)
		}
	}

	e.hline(t.Columns[1], t.Right(), subTop)
	e.hline(t.Left(), t.Right(), bodyTop)
	groupEdge := make(map[int]bool, len(t.Groups))
	for g := range t.Groups {
		groupEdge[1+g*layout.SiloSubColumns] = true
	}
	for i := 1; i < len(t.Columns)-1; i++ {
		from := subTop
		if groupEdge[i] {
			from = top
		}
		e.vline(t.Columns[i], from, bottom)
	}
	e.outline(t.Left(), top, t.Right()-t.Left(), bottom-top)
	return y + t.Height()
}
