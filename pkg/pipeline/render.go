package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/plinyoo/starfield/pkg/galaxy"
	"github.com/plinyoo/starfield/pkg/galaxy/nodelink"
	"github.com/plinyoo/starfield/pkg/galaxy/sink"
	"github.com/plinyoo/starfield/pkg/galaxy/styles"
)

// treeCollapseThreshold is the unit count above which the tree view folds
// planets into their sun; Graphviz output is unreadable past it.
const treeCollapseThreshold = 500

// Render generates output artifacts in the requested formats. Formats are
// rendered concurrently; the first failure cancels the rest.
func Render(ctx context.Context, l galaxy.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	out := make([][]byte, len(opts.Formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.Formats {
		g.Go(func() error {
			data, err := renderFormat(gctx, l, opts, format)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			out[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for i, format := range opts.Formats {
		artifacts[format] = out[i]
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, l galaxy.Layout, opts Options, format string) ([]byte, error) {
	if format == FormatJSON {
		return sink.RenderJSON(l, sink.WithJSONStyle(opts.Style), sink.WithJSONTitle(opts.Title))
	}
	if opts.IsTree() {
		return renderTree(ctx, l, format)
	}
	return renderGrid(ctx, l, opts, format)
}

func renderGrid(ctx context.Context, l galaxy.Layout, opts Options, format string) ([]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(ctx, l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(DefaultPNGScale))
	case FormatPDF:
		return sink.RenderPDF(ctx, l, sink.WithPDFSVGOptions(svgOpts...))
	default:
		return nil, fmt.Errorf("unsupported grid format: %s", format)
	}
}

func renderTree(ctx context.Context, l galaxy.Layout, format string) ([]byte, error) {
	dot := nodelink.ToDOT(l, nodelink.Options{
		CollapsePlanets: l.UnitCount() > treeCollapseThreshold,
	})

	switch format {
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, DefaultPNGScale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported tree format: %s", format)
	}
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, err
	}

	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.Orbits {
		svgOpts = append(svgOpts, sink.WithOrbits())
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	return svgOpts, nil
}
