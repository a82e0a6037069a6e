package styles

import (
	"math"

	"github.com/matzehuels/shiftreport/pkg/errors"
)

// Style is the fixed constant table behind every report render: geometry,
// fixed column widths, font sizes, palette, and number locale. All lengths are
// logical units; the device pixel ratio is applied by the canvas.
//
// A Style is a plain value. Renderers receive it explicitly and never mutate it.
type Style struct {
	// Width is the logical canvas width.
	Width float64 `toml:"width" json:"width"`
	// Padding is the left and right margin around every table.
	Padding float64 `toml:"padding" json:"padding"`
	// BottomPadding is appended below the last section.
	BottomPadding float64 `toml:"bottom_padding" json:"bottom_padding"`

	// BannerHeight is reserved for the banner section; the colored band is
	// BannerHeight-BannerGap tall and the gap separates it from the grid.
	BannerHeight float64 `toml:"banner_height" json:"banner_height"`
	BannerGap    float64 `toml:"banner_gap" json:"banner_gap"`

	// CategoryBandHeight and LabelBandHeight make up the grid's two-row header.
	CategoryBandHeight float64 `toml:"category_band_height" json:"category_band_height"`
	LabelBandHeight    float64 `toml:"label_band_height" json:"label_band_height"`
	RowHeight          float64 `toml:"row_height" json:"row_height"`
	FooterRowHeight    float64 `toml:"footer_row_height" json:"footer_row_height"`

	// SectionSpacing separates optional sections from what is above them.
	SectionSpacing     float64 `toml:"section_spacing" json:"section_spacing"`
	SectionTitleHeight float64 `toml:"section_title_height" json:"section_title_height"`
	// TableHeaderHeight is the single-band header of the operator and downtime tables.
	TableHeaderHeight float64 `toml:"table_header_height" json:"table_header_height"`
	// SiloShiftBandHeight and SiloSubBandHeight make up the silo table's two-band header.
	SiloShiftBandHeight float64 `toml:"silo_shift_band_height" json:"silo_shift_band_height"`
	SiloSubBandHeight   float64 `toml:"silo_sub_band_height" json:"silo_sub_band_height"`

	// OperatorWidthRatio is the operator table's share of the content width.
	OperatorWidthRatio float64 `toml:"operator_width_ratio" json:"operator_width_ratio"`
	// OperatorShiftRatio is the shift column's share of the operator table.
	OperatorShiftRatio float64 `toml:"operator_shift_ratio" json:"operator_shift_ratio"`

	CellPadding    float64 `toml:"cell_padding" json:"cell_padding"`
	LineWidth      float64 `toml:"line_width" json:"line_width"`
	OuterLineWidth float64 `toml:"outer_line_width" json:"outer_line_width"`

	Columns ColumnWidths `toml:"columns" json:"columns"`
	Fonts   FontSizes    `toml:"fonts" json:"fonts"`
	Palette Palette      `toml:"palette" json:"palette"`

	// Locale is the BCP 47 tag used for numbers (e.g. "id-ID").
	Locale string `toml:"locale" json:"locale"`
	// Decimals is the fraction digits shown for numeric cells.
	Decimals int `toml:"decimals" json:"decimals"`
}

// ColumnWidths holds the fixed-width columns of every table.
type ColumnWidths struct {
	Hour             float64 `toml:"hour" json:"hour"`
	Shift            float64 `toml:"shift" json:"shift"`
	SiloName         float64 `toml:"silo_name" json:"silo_name"`
	DowntimeStart    float64 `toml:"downtime_start" json:"downtime_start"`
	DowntimeEnd      float64 `toml:"downtime_end" json:"downtime_end"`
	DowntimeDuration float64 `toml:"downtime_duration" json:"downtime_duration"`
	DowntimePIC      float64 `toml:"downtime_pic" json:"downtime_pic"`
}

// FontSizes are in logical units.
type FontSizes struct {
	Title        float64 `toml:"title" json:"title"`
	Subtitle     float64 `toml:"subtitle" json:"subtitle"`
	Date         float64 `toml:"date" json:"date"`
	Mark         float64 `toml:"mark" json:"mark"`
	SectionTitle float64 `toml:"section_title" json:"section_title"`
	Header       float64 `toml:"header" json:"header"`
	Cell         float64 `toml:"cell" json:"cell"`
}

// Default returns the built-in style table.
func Default() Style {
	return Style{
		Width:         1600,
		Padding:       24,
		BottomPadding: 32,

		BannerHeight: 112,
		BannerGap:    24,

		CategoryBandHeight: 28,
		LabelBandHeight:    32,
		RowHeight:          24,
		FooterRowHeight:    26,

		SectionSpacing:      32,
		SectionTitleHeight:  32,
		TableHeaderHeight:   28,
		SiloShiftBandHeight: 26,
		SiloSubBandHeight:   24,

		OperatorWidthRatio: 0.4,
		OperatorShiftRatio: 0.35,

		CellPadding:    6,
		LineWidth:      0.75,
		OuterLineWidth: 1.5,

		Columns: ColumnWidths{
			Hour:             56,
			Shift:            80,
			SiloName:         180,
			DowntimeStart:    90,
			DowntimeEnd:      90,
			DowntimeDuration: 110,
			DowntimePIC:      200,
		},
		Fonts: FontSizes{
			Title:        28,
			Subtitle:     16,
			Date:         18,
			Mark:         22,
			SectionTitle: 18,
			Header:       12,
			Cell:         12,
		},
		Palette:  DefaultPalette(),
		Locale:   "id-ID",
		Decimals: 2,
	}
}

// ContentWidth is the canvas width minus the left and right padding.
func (s Style) ContentWidth() float64 { return s.Width - 2*s.Padding }

// HeaderBandHeight is the full height of the grid's two-row header.
func (s Style) HeaderBandHeight() float64 { return s.CategoryBandHeight + s.LabelBandHeight }

// SiloHeaderHeight is the full height of the silo table's two-band header.
func (s Style) SiloHeaderHeight() float64 { return s.SiloShiftBandHeight + s.SiloSubBandHeight }

// DowntimeFixedWidth is the combined width of the downtime table's fixed columns.
func (s Style) DowntimeFixedWidth() float64 {
	c := s.Columns
	return c.DowntimeStart + c.DowntimeEnd + c.DowntimeDuration + c.DowntimePIC
}

// Validate rejects tables the planner cannot lay out. The grid's label columns
// and the downtime fixed columns must leave room inside the content width.
func (s Style) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"width", s.Width},
		{"banner_height", s.BannerHeight},
		{"category_band_height", s.CategoryBandHeight},
		{"label_band_height", s.LabelBandHeight},
		{"row_height", s.RowHeight},
		{"footer_row_height", s.FooterRowHeight},
		{"section_title_height", s.SectionTitleHeight},
		{"table_header_height", s.TableHeaderHeight},
		{"silo_shift_band_height", s.SiloShiftBandHeight},
		{"silo_sub_band_height", s.SiloSubBandHeight},
		{"operator_width_ratio", s.OperatorWidthRatio},
		{"operator_shift_ratio", s.OperatorShiftRatio},
		{"columns.hour", s.Columns.Hour},
		{"columns.shift", s.Columns.Shift},
		{"columns.silo_name", s.Columns.SiloName},
		{"fonts.cell", s.Fonts.Cell},
		{"fonts.header", s.Fonts.Header},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return errors.New(errors.ErrCodeInvalidStyle, "%s must be positive, got %v", p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"padding", s.Padding},
		{"bottom_padding", s.BottomPadding},
		{"banner_gap", s.BannerGap},
		{"section_spacing", s.SectionSpacing},
		{"cell_padding", s.CellPadding},
		{"line_width", s.LineWidth},
		{"outer_line_width", s.OuterLineWidth},
	}
	for _, p := range nonNegative {
		if p.v < 0 || math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return errors.New(errors.ErrCodeInvalidStyle, "%s must not be negative, got %v", p.name, p.v)
		}
	}

	if s.BannerGap >= s.BannerHeight {
		return errors.New(errors.ErrCodeInvalidStyle, "banner_gap (%v) must be smaller than banner_height (%v)", s.BannerGap, s.BannerHeight)
	}
	if s.OperatorWidthRatio > 1 || s.OperatorShiftRatio >= 1 {
		return errors.New(errors.ErrCodeInvalidStyle, "operator ratios must be within (0, 1]")
	}
	if fixed := s.Columns.Hour + s.Columns.Shift; fixed >= s.ContentWidth() {
		return errors.New(errors.ErrCodeInvalidStyle, "label columns (%v) leave no room for parameters in content width %v", fixed, s.ContentWidth())
	}
	if s.DowntimeFixedWidth() >= s.ContentWidth() {
		return errors.New(errors.ErrCodeInvalidStyle, "downtime fixed columns (%v) leave no room for the problem column", s.DowntimeFixedWidth())
	}
	if s.Columns.SiloName >= s.ContentWidth() {
		return errors.New(errors.ErrCodeInvalidStyle, "silo name column (%v) exceeds content width", s.Columns.SiloName)
	}
	if s.Decimals < 0 || s.Decimals > 6 {
		return errors.New(errors.ErrCodeInvalidStyle, "decimals must be within 0..6, got %d", s.Decimals)
	}
	return nil
}
