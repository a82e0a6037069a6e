package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/shiftreport/pkg/format"
)

// Footer statistic names produced by [ComputeFooter].
const (
	StatAverage = "Average"
	StatMin     = "Min"
	StatMax     = "Max"
)

// ComputeFooter derives average, min, and max rows from the hourly values of
// every numeric parameter. Parameters without a single numeric reading get no
// value and render blank.
func ComputeFooter(m Model, f format.Formatter) []FooterStat {
	avg := FooterStat{Name: StatAverage, Values: map[string]string{}}
	lo := FooterStat{Name: StatMin, Values: map[string]string{}}
	hi := FooterStat{Name: StatMax, Values: map[string]string{}}

	rows := HourlyRows(m.Rows)
	for _, p := range m.Parameters() {
		if !p.DataType.IsNumeric() {
			continue
		}
		xs := numericValues(rows[:], p.ID)
		if len(xs) == 0 {
			continue
		}
		avg.Values[p.ID] = f.Number(stat.Mean(xs, nil))
		lo.Values[p.ID] = f.Number(floats.Min(xs))
		hi.Values[p.ID] = f.Number(floats.Max(xs))
	}
	return []FooterStat{avg, lo, hi}
}

func numericValues(rows []Row, id string) []float64 {
	xs := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v, ok := format.AsFloat(r.Values[id]); ok {
			xs = append(xs, v)
		}
	}
	return xs
}
