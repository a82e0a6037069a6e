package sink

import (
	"encoding/json"

	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title      string
	pixelRatio float64
	style      string
}

// WithJSONTitle records the report title for documentation.
func WithJSONTitle(title string) JSONOption { return func(r *jsonRenderer) { r.title = title } }

// WithJSONPixelRatio records the device pixel ratio the plan was rendered at.
func WithJSONPixelRatio(ratio float64) JSONOption {
	return func(r *jsonRenderer) { r.pixelRatio = ratio }
}

// WithJSONStyle records the style file name the plan was computed with.
func WithJSONStyle(name string) JSONOption { return func(r *jsonRenderer) { r.style = name } }

type jsonOutput struct {
	Title      string      `json:"title,omitempty"`
	Style      string      `json:"style,omitempty"`
	PixelRatio float64     `json:"pixel_ratio,omitempty"`
	Plan       layout.Plan `json:"plan"`
}

// RenderJSON exports the layout plan: section slots, column boundaries, and
// band heights. It is meant for tooling that overlays or checks the raster.
func RenderJSON(p layout.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return json.MarshalIndent(jsonOutput{
		Title:      r.title,
		Style:      r.style,
		PixelRatio: r.pixelRatio,
		Plan:       p,
	}, "", "  ")
}
