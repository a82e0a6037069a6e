package section

import (
	"github.com/matzehuels/shiftreport/pkg/render/sheet/canvas"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// Grid draws the hourly parameter grid: the two-band header with category
// spans over parameter labels, 24 zebra rows, and one row per footer stat.
// Every x position comes from g.Columns. A nil plan draws nothing.
func Grid(e Env, g *layout.GridPlan, m report.Model, y float64) float64 {
	if g == nil {
		return y
	}
	params := m.Parameters()
	e.gridHeader(g, params, m.Groups, y)
	e.gridBody(g, params, m.Rows, y)
	e.gridFooter(g, params, m.Footer, y)
	e.gridLines(g, y)
	return y + g.Height()
}

func (e Env) gridHeader(g *layout.GridPlan, params []report.Parameter, groups []report.Group, y float64) {
	p := e.Style.Palette
	hf := e.headerFont()

	// Hour and shift header cells span both bands.
	labels := layout.Span{Left: g.Left(), Right: g.Columns[2]}
	e.Canvas.FillRect(labels.Left, y, labels.Width(), g.HeaderHeight(), p.HeaderBackground.RGBA)
	e.text(e.Labels.Hour, g.Cell(0), y, g.HeaderHeight(), canvas.AlignCenter, hf, p.HeaderText.RGBA)
	e.text(e.Labels.Shift, g.Cell(1), y, g.HeaderHeight(), canvas.AlignCenter, hf, p.HeaderText.RGBA)

	body := layout.Span{Left: g.Columns[2], Right: g.Right()}
	e.Canvas.FillRect(body.Left, y, body.Width(), g.CategoryBandHeight, p.CategoryBackground.RGBA)
	for _, c := range g.Categories {
		e.text(e.Format.Upper(c.Label), c, y, g.CategoryBandHeight, canvas.AlignCenter, hf, p.BannerText.RGBA)
	}

	labelTop := y + g.CategoryBandHeight
	e.Canvas.FillRect(body.Left, labelTop, body.Width(), g.LabelBandHeight, p.HeaderBackground.RGBA)
	for i, prm := range params {
		label := prm.Label
		if label == "" {
			label = prm.ID
		}
		e.text(label, g.ParameterCell(i), labelTop, g.LabelBandHeight, canvas.AlignCenter, hf, p.HeaderText.RGBA)
	}
}

func (e Env) gridBody(g *layout.GridPlan, params []report.Parameter, rows []report.Row, y float64) {
	hourly := report.HourlyRows(rows)
	p := e.Style.Palette
	cf := e.cellFont()

	for i := 0; i < g.Rows; i++ {
		r := hourly[i]
		top := y + g.RowTop(i)
		e.Canvas.FillRect(g.Left(), top, g.Right()-g.Left(), g.RowHeight, e.zebra(i))

		e.text(report.HourLabel(r.Hour), g.Cell(0), top, g.RowHeight, canvas.AlignCenter, cf, p.BodyText.RGBA)
		e.text(r.ShiftLabel, g.Cell(1), top, g.RowHeight, canvas.AlignCenter, cf, p.BodyText.RGBA)
		for j, prm := range params {
			s := e.Format.Value(r.Values[prm.ID], prm.DataType.IsNumeric())
			e.value(s, g.ParameterCell(j), top, g.RowHeight, canvas.AlignCenter)
		}
	}
}

func (e Env) gridFooter(g *layout.GridPlan, params []report.Parameter, footer []report.FooterStat, y float64) {
	p := e.Style.Palette
	labelCell := layout.Span{Left: g.Left(), Right: g.Columns[2]}
	bold := canvas.Font{Size: e.Style.Fonts.Cell, Bold: true}

	for i := 0; i < g.FooterRows && i < len(footer); i++ {
		stat := footer[i]
		top := y + g.FooterRowTop(i)
		e.Canvas.FillRect(g.Left(), top, g.Right()-g.Left(), g.FooterRowHeight, p.FooterBackground.RGBA)
		e.text(stat.Name, labelCell, top, g.FooterRowHeight, canvas.AlignRight, bold, p.FooterText.RGBA)

		for j, prm := range params {
			if !prm.DataType.IsNumeric() {
				continue
			}
			v, ok := stat.Values[prm.ID]
			if !ok {
				continue
			}
			e.text(v, g.ParameterCell(j), top, g.FooterRowHeight, canvas.AlignCenter, bold, p.FooterText.RGBA)
		}
	}
}

func (e Env) gridLines(g *layout.GridPlan, y float64) {
	top := y
	labelTop := y + g.CategoryBandHeight
	bodyTop := y + g.HeaderHeight()
	footerTop := y + g.FooterTop()
	bottom := y + g.Height()

	categoryEdge := make(map[float64]bool, len(g.Categories))
	for _, c := range g.Categories {
		categoryEdge[c.Left] = true
	}

	e.hline(g.Columns[2], g.Right(), labelTop)
	e.hline(g.Left(), g.Right(), bodyTop)
	if g.FooterRows > 0 {
		e.hline(g.Left(), g.Right(), footerTop)
		for i := 1; i < g.FooterRows; i++ {
			e.hline(g.Left(), g.Right(), y+g.FooterRowTop(i))
		}
	}

	// Hour and shift share one footer label cell.
	e.vline(g.Columns[1], top, footerTop)
	e.vline(g.Columns[2], top, bottom)
	for _, x := range g.Columns[3 : len(g.Columns)-1] {
		from := labelTop
		if categoryEdge[x] {
			from = top
		}
		e.vline(x, from, bottom)
	}

	e.outline(g.Left(), top, g.Right()-g.Left(), bottom-top)
}
