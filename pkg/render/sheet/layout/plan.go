package layout

import (
	"github.com/matzehuels/shiftreport/pkg/render/sheet/styles"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// Kind identifies a report section.
type Kind string

const (
	KindBanner    Kind = "banner"
	KindGrid      Kind = "grid"
	KindOperators Kind = "operators"
	KindSilo      Kind = "silo"
	KindDowntime  Kind = "downtime"
)

// Order is the fixed top-to-bottom order of sections.
var Order = []Kind{KindBanner, KindGrid, KindOperators, KindSilo, KindDowntime}

// Section is the vertical slot reserved for one section.
type Section struct {
	Kind   Kind    `json:"kind"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Bottom returns the y coordinate just below the section.
func (s Section) Bottom() float64 { return s.Top + s.Height }

// Span is a horizontal extent, optionally labelled.
type Span struct {
	Label string  `json:"label,omitempty"`
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// Width returns the horizontal size of the span.
func (s Span) Width() float64 { return s.Right - s.Left }

// CenterX returns the horizontal center of the span.
func (s Span) CenterX() float64 { return (s.Left + s.Right) / 2 }

// Plan is the complete geometry of one report. Section tops are absolute;
// all offsets inside GridPlan and TablePlan are relative to their section's top.
type Plan struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	BottomPadding float64 `json:"bottom_padding"`

	// Sections lists only the sections that are drawn, in [Order].
	Sections []Section `json:"sections"`

	Grid      *GridPlan  `json:"grid,omitempty"`
	Operators *TablePlan `json:"operators,omitempty"`
	Silo      *TablePlan `json:"silo,omitempty"`
	Downtime  *TablePlan `json:"downtime,omitempty"`
}

// Section returns the slot for kind and whether that section is present.
func (p Plan) Section(kind Kind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// GridPlan is the geometry of the hourly parameter grid.
type GridPlan struct {
	// Columns holds the x boundaries of every column: hour, shift, then one
	// per parameter. len(Columns) == ParameterCount+3. Header, body, footer,
	// and lines all read their x positions from this single sequence.
	Columns     []float64 `json:"columns"`
	ColumnWidth float64   `json:"column_width"`
	// Categories span the parameter columns of each group.
	Categories []Span `json:"categories"`

	CategoryBandHeight float64 `json:"category_band_height"`
	LabelBandHeight    float64 `json:"label_band_height"`
	RowHeight          float64 `json:"row_height"`
	FooterRowHeight    float64 `json:"footer_row_height"`
	Rows               int     `json:"rows"`
	FooterRows         int     `json:"footer_rows"`
}

// Left returns the x of the grid's left edge.
func (g GridPlan) Left() float64 { return g.Columns[0] }

// Right returns the x of the grid's right edge.
func (g GridPlan) Right() float64 { return g.Columns[len(g.Columns)-1] }

// Cell returns the horizontal extent of column i (0 = hour, 1 = shift).
func (g GridPlan) Cell(i int) Span { return Span{Left: g.Columns[i], Right: g.Columns[i+1]} }

// ParameterCell returns the extent of the i-th parameter column.
func (g GridPlan) ParameterCell(i int) Span { return g.Cell(i + 2) }

// HeaderHeight is the height of both header bands.
func (g GridPlan) HeaderHeight() float64 { return g.CategoryBandHeight + g.LabelBandHeight }

// RowTop returns the offset of body row i (0-based).
func (g GridPlan) RowTop(i int) float64 { return g.HeaderHeight() + float64(i)*g.RowHeight }

// FooterTop returns the offset of the first footer row.
func (g GridPlan) FooterTop() float64 { return g.RowTop(g.Rows) }

// FooterRowTop returns the offset of footer row i.
func (g GridPlan) FooterRowTop(i int) float64 { return g.FooterTop() + float64(i)*g.FooterRowHeight }

// Height returns the full grid height.
func (g GridPlan) Height() float64 { return g.FooterRowTop(g.FooterRows) }

// TablePlan is the geometry of an optional titled table. A section starts with
// Spacing, then the title band, the header bands, and Rows body rows.
type TablePlan struct {
	Columns []float64 `json:"columns"`
	// Groups are header spans above the sub-columns (silo shift groups).
	Groups []Span `json:"groups,omitempty"`

	Spacing     float64   `json:"spacing"`
	TitleHeight float64   `json:"title_height"`
	HeaderBands []float64 `json:"header_bands"`
	RowHeight   float64   `json:"row_height"`
	Rows        int       `json:"rows"`
}

// Left returns the x of the table's left edge.
func (t TablePlan) Left() float64 { return t.Columns[0] }

// Right returns the x of the table's right edge.
func (t TablePlan) Right() float64 { return t.Columns[len(t.Columns)-1] }

// Cell returns the horizontal extent of column i.
func (t TablePlan) Cell(i int) Span { return Span{Left: t.Columns[i], Right: t.Columns[i+1]} }

// TitleTop returns the offset of the title band.
func (t TablePlan) TitleTop() float64 { return t.Spacing }

// HeaderTop returns the offset of the first header band.
func (t TablePlan) HeaderTop() float64 { return t.Spacing + t.TitleHeight }

// HeaderHeight returns the combined height of all header bands.
func (t TablePlan) HeaderHeight() float64 {
	var h float64
	for _, b := range t.HeaderBands {
		h += b
	}
	return h
}

// RowTop returns the offset of body row i.
func (t TablePlan) RowTop(i int) float64 {
	return t.HeaderTop() + t.HeaderHeight() + float64(i)*t.RowHeight
}

// Height returns the full section height.
func (t TablePlan) Height() float64 { return t.RowTop(t.Rows) }

// SiloSubColumns is the number of sub-columns per shift group.
const SiloSubColumns = 3

// Build derives the layout of m under style s. It is pure: the same inputs
// always produce the same plan. Sections with nothing to draw are left out
// and contribute no height. With zero parameters the grid is omitted.
func Build(m report.Model, s styles.Style) Plan {
	p := Plan{Width: s.Width, BottomPadding: s.BottomPadding}

	y := 0.0
	add := func(kind Kind, h float64) {
		p.Sections = append(p.Sections, Section{Kind: kind, Top: y, Height: h})
		y += h
	}

	add(KindBanner, s.BannerHeight)

	if g := planGrid(m, s); g != nil {
		p.Grid = g
		add(KindGrid, g.Height())
	}
	if n := len(m.Operators); n > 0 {
		p.Operators = planOperators(n, s)
		add(KindOperators, p.Operators.Height())
	}
	if n := len(m.Silo); n > 0 {
		p.Silo = planSilo(n, s)
		add(KindSilo, p.Silo.Height())
	}
	if n := len(m.Downtime); n > 0 {
		p.Downtime = planDowntime(n, s)
		add(KindDowntime, p.Downtime.Height())
	}

	p.Height = y + s.BottomPadding
	return p
}

func planGrid(m report.Model, s styles.Style) *GridPlan {
	n := m.ParameterCount()
	if n == 0 {
		return nil
	}
	left := s.Padding
	colW := (s.ContentWidth() - s.Columns.Hour - s.Columns.Shift) / float64(n)

	cols := make([]float64, 0, n+3)
	cols = append(cols, left, left+s.Columns.Hour, left+s.Columns.Hour+s.Columns.Shift)
	for i := 1; i <= n; i++ {
		cols = append(cols, cols[2]+float64(i)*colW)
	}
	// Pin the last boundary so rounding never leaves a sliver at the edge.
	cols[len(cols)-1] = s.Width - s.Padding

	cats := make([]Span, 0, len(m.Groups))
	idx := 2
	for _, grp := range m.Groups {
		if len(grp.Parameters) == 0 {
			continue
		}
		cats = append(cats, Span{
			Label: grp.Category,
			Left:  cols[idx],
			Right: cols[idx+len(grp.Parameters)],
		})
		idx += len(grp.Parameters)
	}

	return &GridPlan{
		Columns:            cols,
		ColumnWidth:        colW,
		Categories:         cats,
		CategoryBandHeight: s.CategoryBandHeight,
		LabelBandHeight:    s.LabelBandHeight,
		RowHeight:          s.RowHeight,
		FooterRowHeight:    s.FooterRowHeight,
		Rows:               report.HoursPerDay,
		FooterRows:         len(m.Footer),
	}
}

func newTable(s styles.Style, cols []float64, rows int, bands ...float64) *TablePlan {
	return &TablePlan{
		Columns:     cols,
		Spacing:     s.SectionSpacing,
		TitleHeight: s.SectionTitleHeight,
		HeaderBands: bands,
		RowHeight:   s.RowHeight,
		Rows:        rows,
	}
}

func planOperators(rows int, s styles.Style) *TablePlan {
	left := s.Padding
	w := s.ContentWidth() * s.OperatorWidthRatio
	shiftW := w * s.OperatorShiftRatio
	return newTable(s, []float64{left, left + shiftW, left + w}, rows, s.TableHeaderHeight)
}

func planSilo(rows int, s styles.Style) *TablePlan {
	left := s.Padding
	right := s.Width - s.Padding
	sub := (s.ContentWidth() - s.Columns.SiloName) / (3 * SiloSubColumns)

	cols := []float64{left, left + s.Columns.SiloName}
	for i := 1; i <= 3*SiloSubColumns; i++ {
		cols = append(cols, cols[1]+float64(i)*sub)
	}
	cols[len(cols)-1] = right

	t := newTable(s, cols, rows, s.SiloShiftBandHeight, s.SiloSubBandHeight)
	for g := 0; g < 3; g++ {
		first := 1 + g*SiloSubColumns
		t.Groups = append(t.Groups, Span{
			Label: report.ShiftLabelForHour(1 + g*8),
			Left:  cols[first],
			Right: cols[first+SiloSubColumns],
		})
	}
	return t
}

func planDowntime(rows int, s styles.Style) *TablePlan {
	c := s.Columns
	left := s.Padding
	cols := []float64{left}
	for _, w := range []float64{c.DowntimeStart, c.DowntimeEnd, c.DowntimeDuration, c.DowntimePIC} {
		cols = append(cols, cols[len(cols)-1]+w)
	}
	cols = append(cols, s.Width-s.Padding)
	return newTable(s, cols, rows, s.TableHeaderHeight)
}
