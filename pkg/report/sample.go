package report

import "math"

// Sample returns a fully populated demo model: two parameter groups, 24 hourly
// rows, an operator roster, two silos, and two downtime entries (one of them
// crossing midnight). The values are synthetic but deterministic.
func Sample() Model {
	m := Model{
		Title:     "Daily Operations Report",
		Subtitle:  "Cement Mill 2",
		DateLabel: "Monday, 6 May 2024",
		Groups: []Group{
			{
				Category: "Feed",
				Parameters: []Parameter{
					{ID: "feed_rate", Label: "Feed (t/h)", DataType: DataTypeNumber},
					{ID: "clinker", Label: "Clinker %", DataType: DataTypeNumber},
					{ID: "gypsum", Label: "Gypsum %", DataType: DataTypeNumber},
				},
			},
			{
				Category: "Mill",
				Parameters: []Parameter{
					{ID: "mill_kw", Label: "Power (kW)", DataType: DataTypeNumber},
					{ID: "blaine", Label: "Blaine", DataType: DataTypeNumber},
					{ID: "status", Label: "Status", DataType: DataTypeText},
				},
			},
		},
		Operators: []OperatorEntry{
			{ShiftLabel: "Shift 1", Name: "Andi Pratama"},
			{ShiftLabel: "Shift 2", Name: "Budi Santoso"},
			{ShiftLabel: "Shift 3", Name: "Citra Lestari"},
		},
		Silo: []SiloEntry{
			{
				Name: "Silo A", Capacity: 5000,
				Shift1: SiloShift{EmptySpace: float(2500), Content: float(2500)},
				Shift2: SiloShift{EmptySpace: float(2100), Content: float(2900)},
				Shift3: SiloShift{EmptySpace: float(1800), Content: float(3200)},
			},
			{
				Name: "Silo B", Capacity: 3000,
				Shift1: SiloShift{EmptySpace: float(900), Content: float(2100)},
				Shift2: SiloShift{Content: float(2250)},
			},
		},
		Downtime: []DowntimeEntry{
			{StartTime: "10:15", EndTime: "11:00", PIC: "Maintenance", Problem: "Separator bearing temperature high"},
			{StartTime: "23:30", EndTime: "00:15", PIC: "Electrical", Problem: "Main drive trip, restarted after inspection"},
		},
	}

	for h := 1; h <= HoursPerDay; h++ {
		phase := float64(h) / HoursPerDay * 2 * math.Pi
		status := "RUN"
		if h == 11 || h == 24 {
			status = "STOP"
		}
		m.Rows = append(m.Rows, Row{
			Hour:       h,
			ShiftLabel: ShiftLabelForHour(h),
			Values: map[string]any{
				"feed_rate": round1(180 + 12*math.Sin(phase)),
				"clinker":   round1(78 + 1.5*math.Cos(phase)),
				"gypsum":    round1(4.5 + 0.3*math.Sin(2*phase)),
				"mill_kw":   round1(3200 + 150*math.Cos(phase)),
				"blaine":    round1(3650 + 40*math.Sin(phase)),
				"status":    status,
			},
		})
	}
	return m
}

func float(v float64) *float64 { return &v }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
