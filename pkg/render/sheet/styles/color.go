package styles

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an RGBA color that reads and writes "#rrggbb" or "#rrggbbaa" in
// TOML and JSON.
type Color struct {
	color.RGBA
}

// Hex parses s and panics if it is malformed. Use it for literal palettes only.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex parses "#rgb", "#rrggbb", or "#rrggbbaa" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}}, nil
}

// String returns "#rrggbb", or "#rrggbbaa" when the color is not opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Palette holds every fill and text color used by the section renderers.
type Palette struct {
	Background       Color `toml:"background" json:"background"`
	BannerBackground Color `toml:"banner_background" json:"banner_background"`
	BannerText       Color `toml:"banner_text" json:"banner_text"`
	BannerSubtext    Color `toml:"banner_subtext" json:"banner_subtext"`
	Mark             Color `toml:"mark" json:"mark"`
	MarkText         Color `toml:"mark_text" json:"mark_text"`

	CategoryBackground Color `toml:"category_background" json:"category_background"`
	HeaderBackground   Color `toml:"header_background" json:"header_background"`
	HeaderText         Color `toml:"header_text" json:"header_text"`
	BodyText           Color `toml:"body_text" json:"body_text"`
	ZebraEven          Color `toml:"zebra_even" json:"zebra_even"`
	ZebraOdd           Color `toml:"zebra_odd" json:"zebra_odd"`
	Border             Color `toml:"border" json:"border"`
	FooterBackground   Color `toml:"footer_background" json:"footer_background"`
	FooterText         Color `toml:"footer_text" json:"footer_text"`
	SectionTitle       Color `toml:"section_title" json:"section_title"`
	Placeholder        Color `toml:"placeholder" json:"placeholder"`
}

// DefaultPalette is a navy banner over a light grey table.
func DefaultPalette() Palette {
	return Palette{
		Background:       Hex("#ffffff"),
		BannerBackground: Hex("#1f3a5f"),
		BannerText:       Hex("#ffffff"),
		BannerSubtext:    Hex("#c9d6e8"),
		Mark:             Hex("#f2a541"),
		MarkText:         Hex("#1f3a5f"),

		CategoryBackground: Hex("#2e5984"),
		HeaderBackground:   Hex("#dce6f2"),
		HeaderText:         Hex("#1b2631"),
		BodyText:           Hex("#212121"),
		ZebraEven:          Hex("#ffffff"),
		ZebraOdd:           Hex("#f3f6fa"),
		Border:             Hex("#9aa8b8"),
		FooterBackground:   Hex("#e8edf3"),
		FooterText:         Hex("#1b2631"),
		SectionTitle:       Hex("#1f3a5f"),
		Placeholder:        Hex("#8a8a8a"),
	}
}
