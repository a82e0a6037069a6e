package format

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"07:30", 450, true},
		{"7:30", 450, true},
		{"23:59", 1439, true},
		{" 12:05 ", 725, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12:5", 0, false},
		{"1230", 0, false},
		{"", 0, false},
		{"ab:cd", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClock(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseClock(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// End times earlier than the start are read as an overnight wrap (+24h).
// Whether such entries are real midnight-spanning stops or data-entry errors is
// not decided here; the wrap policy is kept as the dashboard has always applied it.
func TestDowntimeMinutesOvernightWrap(t *testing.T) {
	got, ok := DowntimeMinutes("23:30", "00:15")
	if !ok {
		t.Fatal("DowntimeMinutes() should parse both times")
	}
	if got != 45 {
		t.Errorf("DowntimeMinutes(23:30, 00:15) = %d, want 45", got)
	}
	if s := DowntimeDuration("23:30", "00:15"); s != "0h 45m" {
		t.Errorf("DowntimeDuration(23:30, 00:15) = %q, want %q", s, "0h 45m")
	}
}

func TestDowntimeDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{"same hour", "08:00", "08:45", "0h 45m"},
		{"multi hour", "08:10", "11:05", "2h 55m"},
		{"equal times", "10:00", "10:00", "0h 00m"},
		{"wrap one minute", "00:01", "00:00", "23h 59m"},
		{"bad start", "8am", "09:00", Placeholder},
		{"bad end", "08:00", "", Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DowntimeDuration(tt.start, tt.end); got != tt.want {
				t.Errorf("DowntimeDuration(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDurationNegative(t *testing.T) {
	if got := Duration(-5); got != Placeholder {
		t.Errorf("Duration(-5) = %q, want %q", got, Placeholder)
	}
}
