package report

import "fmt"

// ShiftLabelForHour returns the default label for hour 1..24 when a row does
// not name its shift: hours 1-8 are shift 1, 9-16 shift 2, 17-24 shift 3.
func ShiftLabelForHour(hour int) string {
	switch {
	case hour >= 1 && hour <= 8:
		return "Shift 1"
	case hour >= 9 && hour <= 16:
		return "Shift 2"
	case hour >= 17 && hour <= HoursPerDay:
		return "Shift 3"
	default:
		return ""
	}
}

// HourlyRows returns exactly 24 rows, one per hour 1..24 in order.
//
// Rows are matched by their Hour field. Hours with no row become empty rows
// whose values all render as placeholders. Rows outside 1..24 are dropped and
// a later row for the same hour replaces an earlier one.
func HourlyRows(rows []Row) [HoursPerDay]Row {
	var out [HoursPerDay]Row
	for i := range out {
		out[i] = Row{Hour: i + 1}
	}
	for _, r := range rows {
		if r.Hour < 1 || r.Hour > HoursPerDay {
			continue
		}
		out[r.Hour-1] = r
	}
	for i := range out {
		if out[i].ShiftLabel == "" {
			out[i].ShiftLabel = ShiftLabelForHour(i + 1)
		}
	}
	return out
}

// HourLabel formats an hour for the first grid column ("01".."24").
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d", hour)
}
