package section

import (
	"strings"
	"unicode"

	"github.com/matzehuels/shiftreport/pkg/render/sheet/canvas"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/report"
)

const (
	markRadiusRatio = 0.32
	markGap         = 16.0
	titleLineRatio  = 0.38
	subLineRatio    = 0.70
)

// Banner draws the full-width title band with the report mark, title,
// subtitle, and right-aligned date. It always consumes Style.BannerHeight.
func Banner(e Env, m report.Model, y float64) float64 {
	s := e.Style
	p := s.Palette
	bandH := s.BannerHeight - s.BannerGap

	e.Canvas.FillRect(0, y, s.Width, bandH, p.BannerBackground.RGBA)

	r := bandH * markRadiusRatio
	cx, cy := s.Padding+r, y+bandH/2
	e.Canvas.FillCircle(cx, cy, r, p.Mark.RGBA)
	e.Canvas.Text(Initials(m.Title), cx, cy, canvas.AlignCenter, canvas.Font{Size: s.Fonts.Mark, Bold: true}, p.MarkText.RGBA)

	dateFont := canvas.Font{Size: s.Fonts.Date, Bold: true}
	right := s.Width - s.Padding
	dateW := e.Canvas.MeasureText(m.DateLabel, dateFont)
	e.Canvas.Text(m.DateLabel, right, cy, canvas.AlignRight, dateFont, p.BannerText.RGBA)

	textLeft := cx + r + markGap
	span := layout.Span{Left: textLeft - s.CellPadding, Right: right - dateW - markGap + s.CellPadding}

	titleFont := canvas.Font{Size: s.Fonts.Title, Bold: true}
	if strings.TrimSpace(m.Subtitle) == "" {
		e.text(m.Title, span, y, bandH, canvas.AlignLeft, titleFont, p.BannerText.RGBA)
		return y + s.BannerHeight
	}

	lineH := bandH * (subLineRatio - titleLineRatio)
	e.text(m.Title, span, y+bandH*titleLineRatio-lineH/2, lineH, canvas.AlignLeft, titleFont, p.BannerText.RGBA)
	e.text(m.Subtitle, span, y+bandH*subLineRatio-lineH/2, lineH, canvas.AlignLeft,
		canvas.Font{Size: s.Fonts.Subtitle}, p.BannerSubtext.RGBA)
	return y + s.BannerHeight
}

// Initials returns up to two upper-case initials from the words of title,
// or "R" when title has no letters.
func Initials(title string) string {
	var out []rune
	for _, w := range strings.Fields(title) {
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "R"
	}
	return string(out)
}
