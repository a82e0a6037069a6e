// Package format turns raw report values into the strings drawn in table cells.
//
// Numbers go through a locale-aware [Formatter] built on golang.org/x/text/message,
// so "1234.5" becomes "1,234.50" in English and "1.234,50" in Indonesian. Values that
// cannot be formatted are rendered as [Placeholder] instead of failing: a single bad
// cell never aborts a report.
package format

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matzehuels/shiftreport/pkg/errors"
)

// Placeholder is drawn for missing or malformed values.
const Placeholder = "-"

// DefaultLocale is the BCP 47 tag used when none is configured.
const DefaultLocale = "id-ID"

// DefaultDecimals is the number of fraction digits shown for numeric cells.
const DefaultDecimals = 2

// Formatter formats numeric cell values for one locale.
// The zero value is not usable; construct with [New] or [MustNew].
type Formatter struct {
	printer *message.Printer
	layout  string
	tag     language.Tag
}

// New returns a Formatter for the given BCP 47 locale (e.g. "id-ID", "en").
// An empty locale selects [DefaultLocale]; negative decimals select [DefaultDecimals].
func New(locale string, decimals int) (Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid locale %q", locale)
	}
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	return Formatter{
		printer: message.NewPrinter(tag),
		layout:  fmt.Sprintf("%%.%df", decimals),
		tag:     tag,
	}, nil
}

// MustNew is like [New] but panics on an invalid locale.
func MustNew(locale string, decimals int) Formatter {
	f, err := New(locale, decimals)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the formatter's language tag.
func (f Formatter) Locale() language.Tag { return f.tag }

// Upper upper-cases s with the formatter's locale rules. Category bands use it.
func (f Formatter) Upper(s string) string {
	return cases.Upper(f.tag).String(s)
}

// Number formats v with locale grouping and decimal separators.
// NaN and infinities render as [Placeholder].
func (f Formatter) Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	return f.printer.Sprintf(f.layout, v)
}

// NumberPtr formats *v, or returns [Placeholder] for nil.
func (f Formatter) NumberPtr(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return f.Number(*v)
}

// Value formats a raw cell value. Numeric parameters accept numbers and numeric
// strings; text parameters print strings as-is. Everything else is a placeholder.
func (f Formatter) Value(v any, numeric bool) string {
	if s, ok := v.(string); ok && !numeric {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
		return Placeholder
	}
	if n, ok := AsFloat(v); ok {
		return f.Number(n)
	}
	return Placeholder
}

// AsFloat extracts a finite float from the value types a decoded report may carry.
func AsFloat(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// FillPercent returns content/capacity as a one-decimal percentage ("50.0%").
// Missing content or a non-positive capacity yields [Placeholder]. Out-of-range
// results are shown as computed.
func FillPercent(content *float64, capacity float64) string {
	if content == nil || capacity <= 0 || math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return Placeholder
	}
	pct := *content / capacity * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return Placeholder
	}
	return fmt.Sprintf("%.1f%%", pct)
}
