package sink

import (
	"bytes"
	"encoding/json"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/format"
	"github.com/matzehuels/shiftreport/pkg/render/sheet"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/report"
)

func sample(t *testing.T) (report.Model, *sheet.Result) {
	t.Helper()
	m := report.Sample()
	m.Footer = report.ComputeFooter(m, format.MustNew("en", 1))
	res, err := sheet.Render(m, sheet.WithPixelRatio(1))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return m, res
}

func TestRenderPNG(t *testing.T) {
	_, res := sample(t)

	data, err := RenderPNG(res)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if got, want := img.Bounds(), res.Surface.Image().Bounds(); got.Dx() != want.Dx() || got.Dy() != want.Dy() {
		t.Errorf("PNG size = %v, want %v", got, want)
	}
}

func TestRenderPNGMaxWidth(t *testing.T) {
	_, res := sample(t)

	data, err := RenderPNG(res, WithMaxWidth(400))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Errorf("width = %d, want 400", img.Bounds().Dx())
	}
	src := res.Surface.Image().Bounds()
	wantH := src.Dy() * 400 / src.Dx()
	if d := img.Bounds().Dy() - wantH; d < -1 || d > 1 {
		t.Errorf("height = %d, want about %d", img.Bounds().Dy(), wantH)
	}
}

func TestRenderJPEG(t *testing.T) {
	_, res := sample(t)

	data, err := RenderJPEG(res, WithQuality(70))
	if err != nil {
		t.Fatalf("RenderJPEG() error: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("jpeg.Decode() error: %v", err)
	}

	if _, err := RenderJPEG(res, WithQuality(0)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderJPEG(quality 0) error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestRenderNilResult(t *testing.T) {
	if _, err := RenderPNG(nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderPNG(nil) error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
	if _, err := RenderPDF(&sheet.Result{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderPDF(empty) error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestRenderPDF(t *testing.T) {
	m, res := sample(t)

	data, err := RenderPDF(res, WithPDFTitle(m.Title))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(8, len(data))])
	}
	if !bytes.Contains(data, []byte("/Subtype /Image")) {
		t.Error("PDF does not embed an image")
	}
}

func TestRenderJSON(t *testing.T) {
	_, res := sample(t)

	data, err := RenderJSON(res.Plan, WithJSONTitle("Daily"), WithJSONPixelRatio(2))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Title != "Daily" || out.PixelRatio != 2 {
		t.Errorf("metadata = %q/%v, want Daily/2", out.Title, out.PixelRatio)
	}
	if out.Plan.Height != res.Plan.Height {
		t.Errorf("Plan.Height = %v, want %v", out.Plan.Height, res.Plan.Height)
	}
	if len(out.Plan.Sections) != len(res.Plan.Sections) {
		t.Errorf("len(Sections) = %d, want %d", len(out.Plan.Sections), len(res.Plan.Sections))
	}
	if out.Plan.Grid == nil || len(out.Plan.Grid.Columns) != len(res.Plan.Grid.Columns) {
		t.Error("grid columns not exported")
	}
	if out.Plan.Sections[1].Kind != layout.KindGrid {
		t.Errorf("Sections[1].Kind = %q, want %q", out.Plan.Sections[1].Kind, layout.KindGrid)
	}
}

func TestRenderXLSX(t *testing.T) {
	m, _ := sample(t)

	data, err := RenderXLSX(m)
	if err != nil {
		t.Fatalf("RenderXLSX() error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer f.Close()

	want := []string{SheetReport, SheetOperators, SheetSilo, SheetDowntime}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sheet[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	cells := []struct {
		sheet, cell, want string
	}{
		{SheetReport, "A1", m.Title},
		{SheetReport, "A4", "Hour"},
		{SheetReport, "C4", "Feed"},
		{SheetReport, "C5", "Feed (t/h)"},
		{SheetReport, "A6", "1"},
		{SheetReport, "B6", "Shift 1"},
		{SheetReport, "H6", "RUN"},
		{SheetReport, "A29", "24"},
		{SheetReport, "A30", report.StatAverage},
		{SheetOperators, "B2", "Andi Pratama"},
		{SheetSilo, "B1", "Shift 1"},
		{SheetSilo, "D3", "50.0%"},
		{SheetDowntime, "C3", "0h 45m"},
	}
	for _, c := range cells {
		v, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Errorf("GetCellValue(%s!%s) error: %v", c.sheet, c.cell, err)
			continue
		}
		if v != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, v, c.want)
		}
	}
}

func TestRenderXLSXSkipsEmptySections(t *testing.T) {
	m := report.Model{Title: "Bare", Groups: []report.Group{{Category: "A", Parameters: []report.Parameter{{ID: "a"}}}}}
	data, err := RenderXLSX(m)
	if err != nil {
		t.Fatalf("RenderXLSX() error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer f.Close()
	if got := f.GetSheetList(); len(got) != 1 || got[0] != SheetReport {
		t.Errorf("sheets = %v, want [%s]", got, SheetReport)
	}
}
