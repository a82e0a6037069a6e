package pipeline

import (
	"bytes"
	"context"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shiftreport/pkg/cache"
	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/observability"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/styles"
	"github.com/matzehuels/shiftreport/pkg/report"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"jpeg", false},
		{"pdf", false},
		{"json", false},
		{"xlsx", false},
		{"svg", true},
		{"PNG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.format, errors.GetCode(err), errors.ErrCodeUnsupported)
		}
	}
}

func TestFileExtension(t *testing.T) {
	tests := map[string]string{
		FormatPNG:  ".png",
		FormatJPEG: ".jpg",
		FormatPDF:  ".pdf",
		FormatJSON: ".json",
		FormatXLSX: ".xlsx",
	}
	for f, want := range tests {
		if got := FileExtension(f); got != want {
			t.Errorf("FileExtension(%q) = %q, want %q", f, got, want)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	require.NoError(t, opts.ValidateAndSetDefaults())

	assert.Equal(t, []string{FormatPNG}, opts.Formats)
	assert.Equal(t, 2.0, opts.PixelRatio)
	assert.Equal(t, 90, opts.Quality)
	require.NotNil(t, opts.Style)
	assert.Equal(t, styles.Default(), *opts.Style)
	require.NotNil(t, opts.Labels)
	assert.Equal(t, "Hour", opts.Labels.Hour)
	assert.NotNil(t, opts.Logger)
}

func TestOptionsNormalisesFormats(t *testing.T) {
	opts := Options{Formats: []string{" PNG", "png", "jpg", "jpeg", "XLSX"}}
	require.NoError(t, opts.ValidateAndSetDefaults())
	assert.Equal(t, []string{FormatPNG, FormatJPEG, FormatXLSX}, opts.Formats)
}

func TestOptionsLocaleDoesNotMutateStyle(t *testing.T) {
	s := styles.Default()
	opts := Options{Style: &s, Locale: "en"}
	require.NoError(t, opts.ValidateAndSetDefaults())

	assert.Equal(t, "en", opts.Style.Locale)
	assert.Equal(t, styles.Default().Locale, s.Locale)
}

func TestOptionsValidation(t *testing.T) {
	bad := styles.Default()
	bad.RowHeight = 0

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"unknown format", Options{Formats: []string{"svg"}}, errors.ErrCodeUnsupported},
		{"ratio too large", Options{PixelRatio: 5}, errors.ErrCodeConfiguration},
		{"negative ratio", Options{PixelRatio: -1}, errors.ErrCodeConfiguration},
		{"quality", Options{Quality: 101}, errors.ErrCodeInvalidInput},
		{"max width", Options{MaxWidth: -1}, errors.ErrCodeInvalidInput},
		{"style", Options{Style: &bad}, errors.ErrCodeInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			assert.True(t, errors.Is(err, tt.code), "error = %v, want code %v", err, tt.code)
		})
	}
}

func TestArtifactKeyOptsIgnoresUnrelatedOptions(t *testing.T) {
	a := Options{Quality: 50}
	b := Options{Quality: 80}
	require.NoError(t, a.ValidateAndSetDefaults())
	require.NoError(t, b.ValidateAndSetDefaults())

	assert.Equal(t, a.ArtifactKeyOpts(FormatPNG, "s"), b.ArtifactKeyOpts(FormatPNG, "s"))
	assert.NotEqual(t, a.ArtifactKeyOpts(FormatJPEG, "s"), b.ArtifactKeyOpts(FormatJPEG, "s"))
	assert.Zero(t, a.ArtifactKeyOpts(FormatXLSX, "s").PixelRatio)
}

func TestPrepareComputesFooter(t *testing.T) {
	opts := Options{ComputeFooter: true}
	require.NoError(t, opts.ValidateAndSetDefaults())

	m, err := Prepare(report.Sample(), opts)
	require.NoError(t, err)
	require.Len(t, m.Footer, 3)
	assert.Equal(t, report.StatAverage, m.Footer[0].Name)
	assert.Contains(t, m.Footer[0].Values, "feed_rate")
	assert.NotContains(t, m.Footer[0].Values, "status")

	own := report.Sample()
	own.Footer = []report.FooterStat{{Name: "Total", Values: map[string]string{"feed_rate": "4.320"}}}
	m, err = Prepare(own, opts)
	require.NoError(t, err)
	require.Len(t, m.Footer, 1, "a supplied footer is kept")
}

func TestPlan(t *testing.T) {
	plan, err := Plan(report.Sample(), Options{})
	require.NoError(t, err)
	assert.Len(t, plan.Sections, 5)
	assert.Greater(t, plan.Height, 0.0)

	withFooter, err := Plan(report.Sample(), Options{ComputeFooter: true})
	require.NoError(t, err)
	s := styles.Default()
	assert.InDelta(t, plan.Height+3*s.FooterRowHeight, withFooter.Height, 1e-9)
}

func TestExecuteAllFormats(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	res, err := runner.Execute(context.Background(), report.Sample(), Options{
		Formats:       FormatNames(),
		PixelRatio:    1,
		ComputeFooter: true,
	})
	require.NoError(t, err)

	for _, f := range FormatNames() {
		assert.NotEmpty(t, res.Artifacts[f], "artifact %s", f)
	}
	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Len(t, res.ModelHash, 64)
	assert.False(t, res.CacheInfo.RenderHit)
	assert.Empty(t, res.CacheInfo.Hits)
	assert.Equal(t, 5, res.Stats.Sections)
	assert.Equal(t, 6, res.Stats.Parameters)

	img, err := png.Decode(bytes.NewReader(res.Artifacts[FormatPNG]))
	require.NoError(t, err)
	assert.Equal(t, res.Stats.PixelWidth, img.Bounds().Dx())
	assert.Equal(t, res.Stats.PixelHeight, img.Bounds().Dy())
}

func TestExecuteDataOnlyFormatsSkipDrawing(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	res, err := runner.Execute(context.Background(), report.Sample(), Options{
		Formats: []string{FormatJSON, FormatXLSX},
	})
	require.NoError(t, err)
	assert.Zero(t, res.Stats.RenderTime)
	assert.NotEmpty(t, res.Artifacts[FormatJSON])
	assert.NotEmpty(t, res.Artifacts[FormatXLSX])
}

func TestExecuteUsesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	runner := NewRunner(c, nil, nil)
	ctx := context.Background()
	opts := Options{Formats: []string{FormatPNG, FormatJSON}, PixelRatio: 1}

	first, err := runner.Execute(ctx, report.Sample(), opts)
	require.NoError(t, err)
	assert.False(t, first.CacheInfo.RenderHit)

	second, err := runner.Execute(ctx, report.Sample(), opts)
	require.NoError(t, err)
	assert.True(t, second.CacheInfo.RenderHit)
	assert.Equal(t, []string{FormatPNG, FormatJSON}, second.CacheInfo.Hits)
	assert.Equal(t, first.Artifacts, second.Artifacts)
	assert.Equal(t, first.ModelHash, second.ModelHash)
	assert.NotEqual(t, first.ID, second.ID)

	partial, err := runner.Execute(ctx, report.Sample(), Options{
		Formats:    []string{FormatPNG, FormatPDF},
		PixelRatio: 1,
	})
	require.NoError(t, err)
	assert.False(t, partial.CacheInfo.RenderHit)
	assert.Equal(t, []string{FormatPNG}, partial.CacheInfo.Hits)

	refreshed, err := runner.Execute(ctx, report.Sample(), Options{
		Formats:    []string{FormatPNG},
		PixelRatio: 1,
		Refresh:    true,
	})
	require.NoError(t, err)
	assert.False(t, refreshed.CacheInfo.RenderHit)
	assert.Empty(t, refreshed.CacheInfo.Hits)
}

func TestExecuteCacheKeyFollowsModel(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	runner := NewRunner(c, nil, nil)
	ctx := context.Background()
	opts := Options{Formats: []string{FormatJSON}}

	_, err = runner.Execute(ctx, report.Sample(), opts)
	require.NoError(t, err)

	changed := report.Sample()
	changed.Downtime = nil
	res, err := runner.Execute(ctx, changed, opts)
	require.NoError(t, err)
	assert.False(t, res.CacheInfo.RenderHit)
}

func TestExecuteErrors(t *testing.T) {
	runner := NewRunner(nil, nil, nil)

	dup := report.Model{Groups: []report.Group{{Parameters: []report.Parameter{{ID: "a"}, {ID: "a"}}}}}
	_, err := runner.Execute(context.Background(), dup, Options{})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "duplicate ids: %v", err)

	_, err = runner.Execute(context.Background(), report.Sample(), Options{PixelRatio: 8})
	assert.True(t, errors.Is(err, errors.ErrCodeConfiguration), "pixel ratio: %v", err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Execute(ctx, report.Sample(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	runner := NewRunner(nil, nil, nil)
	_, err := runner.Execute(context.Background(), report.Sample(), Options{
		Formats:    []string{FormatPNG, FormatPDF},
		PixelRatio: 1,
	})
	require.NoError(t, err)

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	assert.Equal(t, 1, hooks.renders)
	assert.ElementsMatch(t, []string{FormatPNG, FormatPDF}, hooks.encoded)
	assert.Equal(t, 2, hooks.misses)
	assert.Equal(t, 2, hooks.sets)
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks

	mu      sync.Mutex
	renders int
	encoded []string
	misses  int
	sets    int
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, _ string, _ float64, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders++
}

func (h *recordingHooks) OnEncodeComplete(_ context.Context, format string, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.encoded = append(h.encoded, format)
}

func (h *recordingHooks) OnCacheMiss(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses++
}

func (h *recordingHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sets++
}
