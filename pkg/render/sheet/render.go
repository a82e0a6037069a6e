package sheet

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/format"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/canvas"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/section"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/styles"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// DefaultPixelRatio renders at 2x for sharp output on high-density screens and print.
const DefaultPixelRatio = 2.0

// cursorTolerance absorbs float noise when comparing the cursor to the plan.
const cursorTolerance = 1e-6

type RenderOption func(*renderer)

type renderer struct {
	style  styles.Style
	ratio  float64
	labels section.Labels
	logger *log.Logger
}

func WithStyle(s styles.Style) RenderOption      { return func(r *renderer) { r.style = s } }
func WithPixelRatio(ratio float64) RenderOption  { return func(r *renderer) { r.ratio = ratio } }
func WithLabels(l section.Labels) RenderOption   { return func(r *renderer) { r.labels = l } }
func WithLogger(logger *log.Logger) RenderOption { return func(r *renderer) { r.logger = logger } }

func newRenderer(opts ...RenderOption) renderer {
	r := renderer{
		style:  styles.Default(),
		ratio:  DefaultPixelRatio,
		labels: section.DefaultLabels(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.logger == nil {
		r.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return r
}

// Result is a finished render.
type Result struct {
	Surface *canvas.Surface
	Plan    layout.Plan
}

// Render plans, allocates, and draws the report for m. On any error no
// surface is returned. Allocation failures carry errors.ErrCodeConfiguration.
func Render(m report.Model, opts ...RenderOption) (*Result, error) {
	r := newRenderer(opts...)

	if err := r.style.Validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	f, err := r.formatter()
	if err != nil {
		return nil, err
	}

	plan := layout.Build(m, r.style)
	surface, err := canvas.Allocate(plan.Width, plan.Height, r.ratio)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("allocated surface",
		"width", plan.Width,
		"height", plan.Height,
		"ratio", r.ratio)

	if err := r.draw(surface, plan, m, f); err != nil {
		return nil, err
	}
	return &Result{Surface: surface, Plan: plan}, nil
}

// Draw paints m onto c following plan. It is the drawing half of [Render]
// and lets callers supply their own canvas, such as a recorder in tests.
func Draw(c canvas.Canvas, plan layout.Plan, m report.Model, opts ...RenderOption) error {
	r := newRenderer(opts...)
	f, err := r.formatter()
	if err != nil {
		return err
	}
	return r.draw(c, plan, m, f)
}

func (r renderer) formatter() (format.Formatter, error) {
	f, err := format.New(r.style.Locale, r.style.Decimals)
	if err != nil {
		return format.Formatter{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "style locale")
	}
	return f, nil
}

func (r renderer) draw(c canvas.Canvas, plan layout.Plan, m report.Model, f format.Formatter) error {
	env := section.Env{Canvas: c, Style: r.style, Format: f, Labels: r.labels}

	c.FillRect(0, 0, plan.Width, plan.Height, r.style.Palette.Background.RGBA)

	if plan.Grid == nil {
		r.logger.Debug("no parameters, grid omitted")
	}

	y := 0.0
	for _, sec := range plan.Sections {
		r.checkCursor(sec.Kind, y, sec.Top)
		switch sec.Kind {
		case layout.KindBanner:
			y = section.Banner(env, m, y)
		case layout.KindGrid:
			y = section.Grid(env, plan.Grid, m, y)
		case layout.KindOperators:
			y = section.Operators(env, plan.Operators, m.Operators, y)
		case layout.KindSilo:
			y = section.Silo(env, plan.Silo, m.Silo, y)
		case layout.KindDowntime:
			y = section.Downtime(env, plan.Downtime, m.Downtime, y)
		default:
			return errors.New(errors.ErrCodeInternal, "unknown section kind %q", sec.Kind)
		}
	}
	r.checkCursor("end", y+plan.BottomPadding, plan.Height)
	return nil
}

func (r renderer) checkCursor(at any, got, want float64) {
	if math.Abs(got-want) > cursorTolerance {
		r.logger.Warn("cursor does not match layout plan",
			"section", fmt.Sprint(at),
			"cursor", got,
			"planned", want)
	}
}
