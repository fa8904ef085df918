package sink

import (
	"bytes"
	"fmt"

	"github.com/plinyoo/starfield/pkg/galaxy"
	"github.com/plinyoo/starfield/pkg/galaxy/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	title      string
	orbits     bool
	background string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithTitle(t string) SVGOption       { return func(r *svgRenderer) { r.title = t } }
func WithOrbits() SVGOption              { return func(r *svgRenderer) { r.orbits = true } }

// WithBackground fills the canvas with color before drawing. An empty color
// leaves the canvas transparent.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG draws l as a standalone SVG document.
func RenderSVG(l galaxy.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	r.style.RenderDefs(&buf)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" width="100%%" height="100%%" fill="%s"/>`+"\n", escapeAttr(r.background))
	}
	if y, ok := titleY(l); ok && r.title != "" {
		r.style.RenderTitle(&buf, l.Width/2, y, r.title)
	}

	for _, g := range l.Galaxies {
		r.style.RenderGalaxy(&buf, g)
	}
	for _, s := range l.LargeSystems {
		r.renderSystem(&buf, s)
	}
	for _, s := range l.SmallSystems {
		r.renderSystem(&buf, s)
	}
	for _, s := range l.Stars {
		r.style.RenderStar(&buf, s, styles.RoleSingle)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// titleY centers a caption in the band between the padding and the top
// margin. A layout with no such band has nowhere to put one.
func titleY(l galaxy.Layout) (float64, bool) {
	if l.TopMargin <= l.Padding {
		return 0, false
	}
	return l.Padding + (l.TopMargin-l.Padding)/2, true
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Simple{}
	}
	return r
}

func (r *svgRenderer) renderSystem(buf *bytes.Buffer, s galaxy.System) {
	fmt.Fprintf(buf, `  <g id="system-%s" class="system %s">`+"\n", escapeAttr(s.ID), s.Size)
	if r.orbits {
		r.style.RenderOrbit(buf, s)
	}
	r.style.RenderStar(buf, s.Sun, styles.RoleSun)
	for _, p := range s.Planets {
		r.style.RenderStar(buf, p, styles.RolePlanet)
	}
	buf.WriteString("  </g>\n")
}
