package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/plinyoo/starfield/pkg/galaxy"
	"github.com/plinyoo/starfield/pkg/render"
)

// RootID names the scene node every top-level entity hangs from.
const RootID = "scene"

// Options configures diagram generation.
type Options struct {
	// Detailed adds grid coordinates to node labels.
	Detailed bool
	// CollapsePlanets replaces each system's planets with a count on the sun.
	CollapsePlanets bool
}

// ToDOT converts a layout to Graphviz DOT.
func ToDOT(l galaxy.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [shape=box, style=\"rounded,filled\", fillcolor=black, fontcolor=white, label=%q];\n",
		RootID, fmt.Sprintf("%d stars", l.Structure.Total()))

	for _, g := range l.Galaxies {
		fmt.Fprintf(&buf, "  %q [shape=ellipse, fillcolor=\"#6A5ACD\", fontcolor=white, label=%q];\n",
			g.ID, label(g.ID, g.X, g.Y, opts.Detailed))
		fmt.Fprintf(&buf, "  %q -> %q;\n", RootID, g.ID)
	}
	for _, s := range l.LargeSystems {
		writeSystem(&buf, s, opts)
	}
	for _, s := range l.SmallSystems {
		writeSystem(&buf, s, opts)
	}
	for _, s := range l.Stars {
		fmt.Fprintf(&buf, "  %q [shape=point, width=0.15, label=%q];\n", s.ID, label(s.ID, s.X, s.Y, opts.Detailed))
		fmt.Fprintf(&buf, "  %q -> %q;\n", RootID, s.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeSystem(buf *bytes.Buffer, s galaxy.System, opts Options) {
	fmt.Fprintf(buf, "  %q [shape=box, style=\"rounded,dashed\", label=%q];\n",
		s.ID, label(s.ID, s.X, s.Y, opts.Detailed))
	fmt.Fprintf(buf, "  %q -> %q;\n", RootID, s.ID)

	sunLabel := s.Sun.ID
	if opts.CollapsePlanets {
		sunLabel = fmt.Sprintf("%s\n+%d planets", s.Sun.ID, len(s.Planets))
	}
	fmt.Fprintf(buf, "  %q [fillcolor=%q, label=%q];\n", s.Sun.ID, s.Sun.Color, sunLabel)
	fmt.Fprintf(buf, "  %q -> %q;\n", s.ID, s.Sun.ID)

	if opts.CollapsePlanets {
		return
	}
	for _, p := range s.Planets {
		fmt.Fprintf(buf, "  %q [shape=point, width=0.1];\n", p.ID)
		fmt.Fprintf(buf, "  %q -> %q;\n", s.Sun.ID, p.ID)
	}
}

func label(id string, x, y float64, detailed bool) string {
	if !detailed {
		return id
	}
	return fmt.Sprintf("%s\n(%.1f, %.1f)", id, x, y)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders DOT source as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders DOT source as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
