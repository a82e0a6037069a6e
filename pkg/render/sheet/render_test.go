package sheet

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/format"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/canvas"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/styles"
	"github.com/matzehuels/shiftreport/pkg/report"
)

func sampleModel() report.Model {
	m := report.Sample()
	m.Footer = report.ComputeFooter(m, format.MustNew("id-ID", 2))
	return m
}

func TestRenderSurfaceMatchesPlan(t *testing.T) {
	m := sampleModel()
	for _, ratio := range []float64{1, 2, 3} {
		res, err := Render(m, WithPixelRatio(ratio))
		require.NoError(t, err)

		want := layout.Build(m, styles.Default())
		assert.Equal(t, want, res.Plan)

		s := res.Surface
		assert.Equal(t, want.Width, s.Width())
		assert.Equal(t, want.Height, s.Height())
		assert.Equal(t, ratio, s.PixelRatio())

		b := s.Image().Bounds()
		assert.Equal(t, int(math.Ceil(want.Width*ratio)), b.Dx())
		assert.Equal(t, int(math.Ceil(want.Height*ratio)), b.Dy())
	}
}

func TestRenderConfigurationError(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
	}{
		{"zero ratio", 0},
		{"negative ratio", -2},
		{"ratio above max", canvas.MaxPixelRatio * 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Render(sampleModel(), WithPixelRatio(tt.ratio))
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, errors.ErrCodeConfiguration), "got %v", err)
		})
	}
}

func TestRenderRejectsInvalidInput(t *testing.T) {
	bad := styles.Default()
	bad.RowHeight = 0
	res, err := Render(sampleModel(), WithStyle(bad))
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidStyle), "got %v", err)

	m := sampleModel()
	m.Groups[1].Parameters[0].ID = m.Groups[0].Parameters[0].ID
	res, err = Render(m)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)

	badLocale := styles.Default()
	badLocale.Locale = "not a locale!"
	res, err = Render(sampleModel(), WithStyle(badLocale))
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidStyle), "got %v", err)
}

func TestRenderDeterministic(t *testing.T) {
	m := sampleModel()
	a, err := Render(m, WithPixelRatio(1))
	require.NoError(t, err)
	b, err := Render(m, WithPixelRatio(1))
	require.NoError(t, err)

	pa := a.Surface.Image().(*image.RGBA).Pix
	pb := b.Surface.Image().(*image.RGBA).Pix
	assert.True(t, bytes.Equal(pa, pb), "renders of the same model differ")
}

func TestRenderPaintsBannerAndBackground(t *testing.T) {
	s := styles.Default()
	res, err := Render(sampleModel(), WithPixelRatio(1))
	require.NoError(t, err)
	img := res.Surface.Image()

	// Right edge of the banner band, clear of the date text.
	got := color.RGBAModel.Convert(img.At(int(s.Width)-2, 2)).(color.RGBA)
	assert.Equal(t, s.Palette.BannerBackground.RGBA, got)

	// Bottom padding is plain background.
	got = color.RGBAModel.Convert(img.At(2, int(res.Plan.Height)-2)).(color.RGBA)
	assert.Equal(t, s.Palette.Background.RGBA, got)
}

func TestDrawThreadsCursorWithoutWarnings(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		m := sampleModel()
		if mask&1 == 0 {
			m.Operators = nil
		}
		if mask&2 == 0 {
			m.Silo = nil
		}
		if mask&4 == 0 {
			m.Downtime = nil
		}

		var buf bytes.Buffer
		rec := canvas.NewRecorder()
		plan := layout.Build(m, styles.Default())
		require.NoError(t, Draw(rec, plan, m, WithLogger(log.New(&buf))))
		assert.NotContains(t, buf.String(), "cursor does not match", "mask %d", mask)
	}
}

func TestDrawWarnsOnPlanMismatch(t *testing.T) {
	m := sampleModel()
	plan := layout.Build(m, styles.Default())
	m.Downtime = append(m.Downtime, report.DowntimeEntry{StartTime: "01:00", EndTime: "02:00"})
	other := layout.Build(m, styles.Default())
	plan.Height = other.Height

	var buf bytes.Buffer
	require.NoError(t, Draw(canvas.NewRecorder(), plan, m, WithLogger(log.New(&buf))))
	assert.Contains(t, buf.String(), "cursor does not match")
}

func TestDrawOrderAndContent(t *testing.T) {
	m := sampleModel()
	rec := canvas.NewRecorder()
	plan := layout.Build(m, styles.Default())
	require.NoError(t, Draw(rec, plan, m))

	first := rec.Ops[0]
	assert.Equal(t, canvas.OpFillRect, first.Kind)
	assert.Equal(t, plan.Width, first.W)
	assert.Equal(t, plan.Height, first.H)

	texts := rec.Texts()
	order := []string{m.Title, "FEED", "Operators on Duty", "Silo Stock", "Downtime Log"}
	last := -1
	for _, s := range order {
		i := slices.Index(texts, s)
		require.NotEqual(t, -1, i, "text %q not drawn", s)
		assert.Greater(t, i, last, "text %q drawn out of order", s)
		last = i
	}
	assert.Contains(t, texts, "0h 45m")
}

func TestDrawZeroParameters(t *testing.T) {
	m := report.Model{Title: "Empty", Operators: []report.OperatorEntry{{ShiftLabel: "Shift 1", Name: "A"}}}
	res, err := Render(m, WithPixelRatio(1))
	require.NoError(t, err)
	assert.Nil(t, res.Plan.Grid)
	_, ok := res.Plan.Section(layout.KindOperators)
	assert.True(t, ok)
}
