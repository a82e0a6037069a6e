package section

import (
	"image/color"
	"strings"

	"github.com/matzehuels/shiftreport/pkg/format"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/canvas"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/styles"
)

// Env is what every section renderer draws with.
type Env struct {
	Canvas canvas.Canvas
	Style  styles.Style
	Format format.Formatter
	Labels Labels
}

// Labels are the fixed header texts. The zero value is not usable; start from
// [DefaultLabels].
type Labels struct {
	Hour      string
	Shift     string
	Operators string
	Operator  string
	Silo      string
	SiloName  string
	Empty     string
	Content   string
	Fill      string
	Downtime  string
	Start     string
	End       string
	Duration  string
	PIC       string
	Problem   string
}

// DefaultLabels returns the English header texts.
func DefaultLabels() Labels {
	return Labels{
		Hour:      "Hour",
		Shift:     "Shift",
		Operators: "Operators on Duty",
		Operator:  "Operator",
		Silo:      "Silo Stock",
		SiloName:  "Silo",
		Empty:     "Empty",
		Content:   "Content",
		Fill:      "Fill",
		Downtime:  "Downtime Log",
		Start:     "Start",
		End:       "End",
		Duration:  "Duration",
		PIC:       "PIC",
		Problem:   "Problem",
	}
}

func (e Env) cellFont() canvas.Font   { return canvas.Font{Size: e.Style.Fonts.Cell} }
func (e Env) headerFont() canvas.Font { return canvas.Font{Size: e.Style.Fonts.Header, Bold: true} }

// text draws s inside span, vertically centered in the band [top, top+h),
// truncated to the span width minus cell padding.
func (e Env) text(s string, span layout.Span, top, h float64, align canvas.Align, f canvas.Font, c color.Color) {
	pad := e.Style.CellPadding
	avail := span.Width() - 2*pad
	if avail <= 0 {
		return
	}
	s = styles.Truncate(strings.TrimSpace(s), avail, func(v string) float64 { return e.Canvas.MeasureText(v, f) })
	if s == "" {
		return
	}

	x := span.CenterX()
	switch align {
	case canvas.AlignLeft:
		x = span.Left + pad
	case canvas.AlignRight:
		x = span.Right - pad
	}
	e.Canvas.Text(s, x, top+h/2, align, f, c)
}

// value draws a formatted cell, using the placeholder color for placeholders.
func (e Env) value(s string, span layout.Span, top, h float64, align canvas.Align) {
	c := e.Style.Palette.BodyText.RGBA
	if s == format.Placeholder {
		c = e.Style.Palette.Placeholder.RGBA
		align = canvas.AlignCenter
	}
	e.text(s, span, top, h, align, e.cellFont(), c)
}

func (e Env) hline(x1, x2, y float64) {
	e.Canvas.Line(x1, y, x2, y, e.Style.LineWidth, e.Style.Palette.Border.RGBA)
}

func (e Env) vline(x, y1, y2 float64) {
	e.Canvas.Line(x, y1, x, y2, e.Style.LineWidth, e.Style.Palette.Border.RGBA)
}

func (e Env) outline(x, y, w, h float64) {
	e.Canvas.StrokeRect(x, y, w, h, e.Style.OuterLineWidth, e.Style.Palette.Border.RGBA)
}

func (e Env) zebra(i int) color.Color {
	if i%2 == 0 {
		return e.Style.Palette.ZebraEven.RGBA
	}
	return e.Style.Palette.ZebraOdd.RGBA
}

// title draws a section title in the title band of t.
func (e Env) title(t *layout.TablePlan, y float64, s string) {
	f := canvas.Font{Size: e.Style.Fonts.SectionTitle, Bold: true}
	span := layout.Span{Left: t.Left() - e.Style.CellPadding, Right: e.Style.Width - e.Style.Padding}
	e.text(s, span, y+t.TitleTop(), t.TitleHeight, canvas.AlignLeft, f, e.Style.Palette.SectionTitle.RGBA)
}

// header fills a single-band header and writes one bold label per column.
func (e Env) header(t *layout.TablePlan, top float64, labels []string, aligns []canvas.Align) {
	h := t.HeaderHeight()
	e.Canvas.FillRect(t.Left(), top, t.Right()-t.Left(), h, e.Style.Palette.HeaderBackground.RGBA)
	for i, l := range labels {
		e.text(l, t.Cell(i), top, h, aligns[i], e.headerFont(), e.Style.Palette.HeaderText.RGBA)
	}
}

// simpleTable draws a titled single-band table with n entries. cells returns
// the texts of body row i, one per column.
func (e Env) simpleTable(t *layout.TablePlan, y float64, title string, labels []string, aligns []canvas.Align, n int, cells func(i int) []string) float64 {
	e.title(t, y, title)

	top := y + t.HeaderTop()
	e.header(t, top, labels, aligns)

	for i := 0; i < t.Rows && i < n; i++ {
		rowTop := y + t.RowTop(i)
		e.Canvas.FillRect(t.Left(), rowTop, t.Right()-t.Left(), t.RowHeight, e.zebra(i))
		for col, s := range cells(i) {
			e.value(s, t.Cell(col), rowTop, t.RowHeight, aligns[col])
		}
	}

	bottom := y + t.Height()
	bodyTop := top + t.HeaderHeight()
	e.hline(t.Left(), t.Right(), bodyTop)
	for _, x := range t.Columns[1 : len(t.Columns)-1] {
		e.vline(x, top, bottom)
	}
	e.outline(t.Left(), top, t.Right()-t.Left(), bottom-top)
	return y + t.Height()
}

func orPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return format.Placeholder
	}
	return s
}
