package sink

import (
	"encoding/json"

	"github.com/plinyoo/starfield/pkg/galaxy"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
	title string
}

// WithJSONStyle records the style name in the output so the scene can be
// re-rendered the same way.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONTitle records the caption.
func WithJSONTitle(t string) JSONOption { return func(r *jsonRenderer) { r.title = t } }

type jsonOutput struct {
	galaxy.Layout
	Style string `json:"style,omitempty"`
	Title string `json:"title,omitempty"`
}

// RenderJSON exports the layout as pretty-printed JSON. The document is a
// superset of [galaxy.MarshalLayout] output, so [galaxy.UnmarshalLayout]
// reads it back.
func RenderJSON(l galaxy.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return json.MarshalIndent(jsonOutput{Layout: l, Style: r.style, Title: r.title}, "", "  ")
}
