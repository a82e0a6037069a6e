// Package pipeline runs the complete load → draw → encode flow for a shift
// report.
//
// The CLI and any embedding service go through this package so that
// defaults, validation, caching, and output formats behave the same
// everywhere.
//
// # Stages
//
//  1. Prepare: validate options, optionally compute footer statistics
//  2. Draw: plan the layout and paint the raster (skipped when every
//     requested artifact is cached or no raster format is requested)
//  3. Encode: produce each requested format concurrently
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, model, pipeline.Options{
//	    Formats:    []string{pipeline.FormatPNG, pipeline.FormatPDF},
//	    PixelRatio: 2,
//	})
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts[pipeline.FormatPNG]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/shiftreport/pkg/cache"
	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/render/sheet"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/canvas"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/section"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/sink"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/styles"
)

// =============================================================================
// Formats
// =============================================================================

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatPNG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatJPEG: true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatXLSX: true,
}

// rasterFormats need a drawn surface. JSON and XLSX only need the plan or
// the model.
var rasterFormats = map[string]bool{
	FormatPNG:  true,
	FormatJPEG: true,
	FormatPDF:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeUnsupported,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// FileExtension returns the file extension for a format, including the dot.
func FileExtension(format string) string {
	if format == FormatJPEG {
		return ".jpg"
	}
	return "." + format
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Formats lists the artifacts to produce. Duplicates are dropped.
	Formats []string `json:"formats,omitempty"`

	// PixelRatio is the device pixel ratio of the raster.
	PixelRatio float64 `json:"pixel_ratio,omitempty"`

	// Style replaces styles.Default when set.
	Style *styles.Style `json:"-"`

	// Locale overrides Style.Locale when set.
	Locale string `json:"locale,omitempty"`

	// Labels replaces section.DefaultLabels when set.
	Labels *section.Labels `json:"-"`

	// ComputeFooter fills average, min, and max rows when the model has no
	// footer of its own.
	ComputeFooter bool `json:"compute_footer,omitempty"`

	// MaxWidth downsamples PNG and JPEG output wider than this many pixels.
	MaxWidth int `json:"max_width,omitempty"`

	// Quality is the JPEG quality.
	Quality int `json:"quality,omitempty"`

	// Refresh skips cache reads but still writes fresh results.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks every field and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !(o.PixelRatio > 0) || o.PixelRatio > canvas.MaxPixelRatio {
		return errors.New(errors.ErrCodeConfiguration,
			"pixel ratio must be in (0, %v], got %v", canvas.MaxPixelRatio, o.PixelRatio)
	}
	if o.Quality < 1 || o.Quality > 100 {
		return errors.New(errors.ErrCodeInvalidInput, "jpeg quality must be 1-100, got %d", o.Quality)
	}
	if o.MaxWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max width must not be negative, got %d", o.MaxWidth)
	}
	if err := o.Style.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset fields without validating them.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.Formats = dedupe(o.Formats)
	if o.PixelRatio == 0 {
		o.PixelRatio = sheet.DefaultPixelRatio
	}
	if o.Style == nil {
		s := styles.Default()
		o.Style = &s
	}
	if o.Locale != "" && o.Locale != o.Style.Locale {
		s := *o.Style
		s.Locale = o.Locale
		o.Style = &s
	}
	if o.Labels == nil {
		l := section.DefaultLabels()
		o.Labels = &l
	}
	if o.Quality == 0 {
		o.Quality = sink.DefaultJPEGQuality
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// needsRaster reports whether any of formats needs a drawn surface.
func (o *Options) needsRaster(formats []string) bool {
	for _, f := range formats {
		if rasterFormats[f] {
			return true
		}
	}
	return false
}

// ArtifactKeyOpts returns cache key options for one format. styleHash
// covers the style and the labels.
func (o *Options) ArtifactKeyOpts(format, styleHash string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:        format,
		StyleHash:     styleHash,
		Locale:        o.Style.Locale,
		Decimals:      o.Style.Decimals,
		ComputeFooter: o.ComputeFooter,
	}
	if rasterFormats[format] || format == FormatJSON {
		k.PixelRatio = o.PixelRatio
	}
	if format == FormatPNG || format == FormatJPEG {
		k.MaxWidth = o.MaxWidth
	}
	if format == FormatJPEG {
		k.Quality = o.Quality
	}
	return k
}

func (o *Options) renderOptions() []sheet.RenderOption {
	return []sheet.RenderOption{
		sheet.WithStyle(*o.Style),
		sheet.WithPixelRatio(o.PixelRatio),
		sheet.WithLabels(*o.Labels),
		sheet.WithLogger(o.Logger),
	}
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "jpg" {
			f = FormatJPEG
		}
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run in logs and API responses.
	ID uuid.UUID

	// ModelHash is the content hash of the prepared model.
	ModelHash string

	// Plan is the layout the artifacts were drawn from.
	Plan layout.Plan

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Sections    int
	Parameters  int
	Width       float64
	Height      float64
	PixelWidth  int
	PixelHeight int
	RenderTime  time.Duration
	EncodeTime  time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	Hits      []string // formats served from cache
	RenderHit bool     // every artifact came from cache and nothing was drawn
}
