package sink

import (
	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/format"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/section"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// Worksheet names used by [RenderXLSX].
const (
	SheetReport    = "Report"
	SheetOperators = "Operators"
	SheetSilo      = "Silo"
	SheetDowntime  = "Downtime"
)

// XLSXOption configures workbook export.
type XLSXOption func(*xlsxRenderer)

type xlsxRenderer struct {
	labels section.Labels
}

// WithXLSXLabels overrides the header texts.
func WithXLSXLabels(l section.Labels) XLSXOption { return func(r *xlsxRenderer) { r.labels = l } }

// RenderXLSX exports the report data as a workbook: the hourly grid with its
// category headers and footer rows on the first sheet, then one sheet per
// non-empty optional section. Numeric readings are written as numbers so the
// workbook can be recalculated; missing values are left blank.
func RenderXLSX(m report.Model, opts ...XLSXOption) ([]byte, error) {
	r := xlsxRenderer{labels: section.DefaultLabels()}
	for _, opt := range opts {
		opt(&r)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetReport); err != nil {
		return nil, wrapXLSX(err)
	}
	w := &xlsxWriter{f: f}
	w.grid(m, r.labels)
	if len(m.Operators) > 0 {
		w.operators(m.Operators, r.labels)
	}
	if len(m.Silo) > 0 {
		w.silo(m.Silo, r.labels)
	}
	if len(m.Downtime) > 0 {
		w.downtime(m.Downtime, r.labels)
	}
	if w.err != nil {
		return nil, wrapXLSX(w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, wrapXLSX(err)
	}
	return buf.Bytes(), nil
}

func wrapXLSX(err error) error {
	return errors.Wrap(errors.ErrCodeInternal, err, "write xlsx")
}

// xlsxWriter keeps the first error and turns later calls into no-ops.
type xlsxWriter struct {
	f      *excelize.File
	err    error
	header int
}

func (w *xlsxWriter) set(sheet string, col, row int, v any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(sheet, cell, v)
}

func (w *xlsxWriter) merge(sheet string, c1, r1, c2, r2 int) {
	if w.err != nil || (c1 == c2 && r1 == r2) {
		return
	}
	a, _ := excelize.CoordinatesToCellName(c1, r1)
	b, _ := excelize.CoordinatesToCellName(c2, r2)
	w.err = w.f.MergeCell(sheet, a, b)
}

func (w *xlsxWriter) styleRange(sheet string, c1, r1, c2, r2 int) {
	if w.err != nil {
		return
	}
	if w.header == 0 {
		id, err := w.f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F2"}},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		if err != nil {
			w.err = err
			return
		}
		w.header = id
	}
	a, _ := excelize.CoordinatesToCellName(c1, r1)
	b, _ := excelize.CoordinatesToCellName(c2, r2)
	w.err = w.f.SetCellStyle(sheet, a, b, w.header)
}

func (w *xlsxWriter) newSheet(name string) {
	if w.err != nil {
		return
	}
	_, w.err = w.f.NewSheet(name)
}

func (w *xlsxWriter) grid(m report.Model, l section.Labels) {
	const sheet = SheetReport
	params := m.Parameters()
	last := 2 + len(params)

	w.set(sheet, 1, 1, m.Title)
	if m.Subtitle != "" {
		w.set(sheet, 1, 2, m.Subtitle)
	}
	w.set(sheet, last, 1, m.DateLabel)

	const catRow, labelRow = 4, 5
	w.set(sheet, 1, catRow, l.Hour)
	w.set(sheet, 2, catRow, l.Shift)
	w.merge(sheet, 1, catRow, 1, labelRow)
	w.merge(sheet, 2, catRow, 2, labelRow)

	col := 3
	for _, g := range m.Groups {
		if len(g.Parameters) == 0 {
			continue
		}
		w.set(sheet, col, catRow, g.Category)
		w.merge(sheet, col, catRow, col+len(g.Parameters)-1, catRow)
		col += len(g.Parameters)
	}
	for i, p := range params {
		label := p.Label
		if label == "" {
			label = p.ID
		}
		w.set(sheet, 3+i, labelRow, label)
	}
	w.styleRange(sheet, 1, catRow, max(last, 2), labelRow)

	row := labelRow + 1
	for _, r := range report.HourlyRows(m.Rows) {
		w.set(sheet, 1, row, r.Hour)
		w.set(sheet, 2, row, r.ShiftLabel)
		for i, p := range params {
			if v, ok := cellValue(r.Values[p.ID], p.DataType.IsNumeric()); ok {
				w.set(sheet, 3+i, row, v)
			}
		}
		row++
	}

	for _, stat := range m.Footer {
		w.set(sheet, 1, row, stat.Name)
		w.merge(sheet, 1, row, 2, row)
		for i, p := range params {
			if v, ok := stat.Values[p.ID]; ok && p.DataType.IsNumeric() {
				w.set(sheet, 3+i, row, v)
			}
		}
		row++
	}
}

func cellValue(v any, numeric bool) (any, bool) {
	if numeric {
		n, ok := format.AsFloat(v)
		return n, ok
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func (w *xlsxWriter) operators(entries []report.OperatorEntry, l section.Labels) {
	const sheet = SheetOperators
	w.newSheet(sheet)
	w.set(sheet, 1, 1, l.Shift)
	w.set(sheet, 2, 1, l.Operator)
	w.styleRange(sheet, 1, 1, 2, 1)
	for i, op := range entries {
		w.set(sheet, 1, i+2, op.ShiftLabel)
		w.set(sheet, 2, i+2, op.Name)
	}
}

func (w *xlsxWriter) silo(entries []report.SiloEntry, l section.Labels) {
	const sheet = SheetSilo
	w.newSheet(sheet)
	w.set(sheet, 1, 1, l.SiloName)
	w.merge(sheet, 1, 1, 1, 2)
	sub := []string{l.Empty, l.Content, l.Fill}
	for g := 0; g < 3; g++ {
		col := 2 + g*len(sub)
		w.set(sheet, col, 1, report.ShiftLabelForHour(1+g*8))
		w.merge(sheet, col, 1, col+len(sub)-1, 1)
		for k, s := range sub {
			w.set(sheet, col+k, 2, s)
		}
	}
	w.styleRange(sheet, 1, 1, 1+3*len(sub), 2)

	for i, s := range entries {
		row := i + 3
		w.set(sheet, 1, row, s.Name)
		for g, sh := range s.Shifts() {
			col := 2 + g*len(sub)
			if sh.EmptySpace != nil {
				w.set(sheet, col, row, *sh.EmptySpace)
			}
			if sh.Content != nil {
				w.set(sheet, col+1, row, *sh.Content)
			}
			w.set(sheet, col+2, row, format.FillPercent(sh.Content, s.Capacity))
		}
	}
}

func (w *xlsxWriter) downtime(entries []report.DowntimeEntry, l section.Labels) {
	const sheet = SheetDowntime
	w.newSheet(sheet)
	for i, h := range []string{l.Start, l.End, l.Duration, l.PIC, l.Problem} {
		w.set(sheet, i+1, 1, h)
	}
	w.styleRange(sheet, 1, 1, 5, 1)
	for i, d := range entries {
		row := i + 2
		w.set(sheet, 1, row, d.StartTime)
		w.set(sheet, 2, row, d.EndTime)
		w.set(sheet, 3, row, format.DowntimeDuration(d.StartTime, d.EndTime))
		w.set(sheet, 4, row, d.PIC)
		w.set(sheet, 5, row, d.Problem)
	}
}
