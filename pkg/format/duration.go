package format

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" time of day into minutes after midnight.
func ParseClock(s string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// DowntimeMinutes returns the minutes between start and end ("HH:MM").
//
// An end time earlier than the start time is read as crossing midnight and 24 hours
// are added, so 23:30 to 00:15 is 45 minutes. Equal times give zero.
func DowntimeMinutes(start, end string) (int, bool) {
	s, ok := ParseClock(start)
	if !ok {
		return 0, false
	}
	e, ok := ParseClock(end)
	if !ok {
		return 0, false
	}
	d := e - s
	if d < 0 {
		d += minutesPerDay
	}
	return d, true
}

// Duration formats minutes as "1h 05m".
func Duration(minutes int) string {
	if minutes < 0 {
		return Placeholder
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// DowntimeDuration formats the span between two "HH:MM" strings, or [Placeholder].
func DowntimeDuration(start, end string) string {
	d, ok := DowntimeMinutes(start, end)
	if !ok {
		return Placeholder
	}
	return Duration(d)
}
