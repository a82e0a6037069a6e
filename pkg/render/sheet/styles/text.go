package styles

// Ellipsis is appended to text cut short by [Truncate].
const Ellipsis = ".."

// Truncate shortens s until measure(s) fits in maxWidth, appending [Ellipsis].
// It returns s unchanged when it already fits and "" when not even the
// ellipsis fits.
func Truncate(s string, maxWidth float64, measure func(string) float64) string {
	if measure(s) <= maxWidth {
		return s
	}
	if measure(Ellipsis) > maxWidth {
		return ""
	}
	runes := []rune(s)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if measure(string(runes[:mid])+Ellipsis) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + Ellipsis
}
