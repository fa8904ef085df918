// Package render converts finished SVG documents into raster and print formats.
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg). Both the
// grid sink and the node-link renderer produce SVG first and hand it here
// when another format is requested.
//
//	svg := sink.RenderSVG(layout)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//	pdf, err := render.ToPDF(ctx, svg)
package render
