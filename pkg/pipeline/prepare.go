package pipeline

import (
	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/format"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// Prepare returns the model exactly as it will be drawn: footer statistics
// are filled in when requested and missing, then the model is validated.
// opts must already have defaults applied.
func Prepare(m report.Model, opts Options) (report.Model, error) {
	if opts.ComputeFooter && len(m.Footer) == 0 {
		f, err := format.New(opts.Style.Locale, opts.Style.Decimals)
		if err != nil {
			return report.Model{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "style locale")
		}
		m.Footer = report.ComputeFooter(m, f)
		opts.Logger.Debug("computed footer", "rows", len(m.Footer))
	}
	if err := m.Validate(); err != nil {
		return report.Model{}, err
	}
	return m, nil
}

// Plan validates opts, prepares m, and returns its layout without drawing.
func Plan(m report.Model, opts Options) (layout.Plan, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Plan{}, err
	}
	m, err := Prepare(m, opts)
	if err != nil {
		return layout.Plan{}, err
	}
	return layout.Build(m, *opts.Style), nil
}
