// Package report defines the input data for one shift report render.
//
// A [Model] is an immutable snapshot assembled by the caller (typically by
// decoding a JSON or YAML export with pkg/io) and passed once per render. It
// carries no behavior beyond validation and small read helpers; all geometry
// is derived elsewhere.
//
// # Sections
//
// The hourly parameter grid is always present when at least one parameter is
// defined. The operator roster, silo stock, and downtime log are optional and
// are left out of the report entirely when their slices are empty.
//
// # Hourly Rows
//
// A report always shows 24 hourly rows. [HourlyRows] normalises whatever the
// caller supplied into exactly 24 rows, so a partially filled day renders
// placeholders instead of a shorter table.
package report

import (
	"github.com/matzehuels/shiftreport/pkg/errors"
)

// HoursPerDay is the number of body rows in the parameter grid.
const HoursPerDay = 24

// DataType tells the renderer how to format a parameter's values.
type DataType string

const (
	// DataTypeNumber values are formatted with the locale formatter and aggregated in the footer.
	DataTypeNumber DataType = "number"
	// DataTypeText values are printed as-is and never aggregated.
	DataTypeText DataType = "text"
)

// IsNumeric reports whether values of this type are numbers that can be aggregated.
func (d DataType) IsNumeric() bool { return d == DataTypeNumber }

// Model is the complete input for one report.
type Model struct {
	Title     string          `json:"title" yaml:"title"`
	Subtitle  string          `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	DateLabel string          `json:"dateLabel" yaml:"dateLabel"`
	Groups    []Group         `json:"groupedHeaders" yaml:"groupedHeaders"`
	Rows      []Row           `json:"rows" yaml:"rows"`
	Footer    []FooterStat    `json:"footer,omitempty" yaml:"footer,omitempty"`
	Downtime  []DowntimeEntry `json:"downtime,omitempty" yaml:"downtime,omitempty"`
	Silo      []SiloEntry     `json:"silo,omitempty" yaml:"silo,omitempty"`
	Operators []OperatorEntry `json:"operators,omitempty" yaml:"operators,omitempty"`
}

// Group is a category header spanning its parameters' columns.
type Group struct {
	Category   string      `json:"category" yaml:"category"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
}

// Parameter is one column of the hourly grid.
type Parameter struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	DataType DataType `json:"dataType" yaml:"dataType"`
}

// Row holds one hour's readings keyed by parameter ID.
// Values are numbers, numeric strings, text, or nil.
type Row struct {
	Hour       int            `json:"hour" yaml:"hour"`
	ShiftLabel string         `json:"shiftLabel" yaml:"shiftLabel"`
	Values     map[string]any `json:"values" yaml:"values"`
}

// FooterStat is one aggregate row (e.g. "Average") with pre-formatted values
// keyed by parameter ID. Only numeric parameters carry values.
type FooterStat struct {
	Name   string            `json:"name" yaml:"name"`
	Values map[string]string `json:"values" yaml:"values"`
}

// DowntimeEntry is one stop in the downtime log. Times are "HH:MM".
type DowntimeEntry struct {
	StartTime string `json:"startTime" yaml:"startTime"`
	EndTime   string `json:"endTime" yaml:"endTime"`
	PIC       string `json:"pic" yaml:"pic"`
	Problem   string `json:"problem" yaml:"problem"`
}

// SiloShift is a silo reading taken at the end of a shift. Either field may be missing.
type SiloShift struct {
	EmptySpace *float64 `json:"emptySpace,omitempty" yaml:"emptySpace,omitempty"`
	Content    *float64 `json:"content,omitempty" yaml:"content,omitempty"`
}

// SiloEntry is one silo with its three shift readings.
type SiloEntry struct {
	Name     string    `json:"name" yaml:"name"`
	Capacity float64   `json:"capacity" yaml:"capacity"`
	Shift1   SiloShift `json:"shift1" yaml:"shift1"`
	Shift2   SiloShift `json:"shift2" yaml:"shift2"`
	Shift3   SiloShift `json:"shift3" yaml:"shift3"`
}

// Shifts returns the three shift readings in order.
func (s SiloEntry) Shifts() [3]SiloShift { return [3]SiloShift{s.Shift1, s.Shift2, s.Shift3} }

// OperatorEntry names the operator on duty for a shift.
type OperatorEntry struct {
	ShiftLabel string `json:"shiftLabel" yaml:"shiftLabel"`
	Name       string `json:"name" yaml:"name"`
}

// Parameters returns all parameters in column order (group by group).
func (m Model) Parameters() []Parameter {
	var params []Parameter
	for _, g := range m.Groups {
		params = append(params, g.Parameters...)
	}
	return params
}

// ParameterCount returns the number of parameter columns.
func (m Model) ParameterCount() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Parameters)
	}
	return n
}

// Validate checks structural invariants the renderer relies on. Irregular
// individual values are not errors; they render as placeholders.
func (m Model) Validate() error {
	seen := make(map[string]bool, m.ParameterCount())
	for _, g := range m.Groups {
		for _, p := range g.Parameters {
			if err := errors.ValidateIdentifier(p.ID); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "category %q", g.Category)
			}
			if seen[p.ID] {
				return errors.New(errors.ErrCodeInvalidInput, "duplicate parameter id: %s", p.ID)
			}
			seen[p.ID] = true
		}
	}
	return nil
}
