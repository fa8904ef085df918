// Package sink turns a positioned [galaxy.Layout] into output documents.
//
// # Formats
//
//   - SVG: [RenderSVG], drawn with a [styles.Style]
//   - JSON: [RenderJSON], the layout plus render metadata
//   - PNG: [RenderPNG], SVG converted with rsvg-convert
//   - PDF: [RenderPDF], SVG converted with rsvg-convert
//
// # SVG Options
//
//   - [WithStyle]: visual style ([styles.Simple] by default)
//   - [WithTitle]: caption centered in the space reserved above the grid
//   - [WithOrbits]: draw the orbit ring of every system
//   - [WithBackground]: fill the canvas with a color
//
// Output is deterministic: entities are written in packing order (galaxies,
// large systems, small systems, stars), so equal layouts produce equal bytes.
//
//	svg := sink.RenderSVG(l,
//	    sink.WithStyle(styles.Glow{}),
//	    sink.WithTitle("237 stars"),
//	    sink.WithOrbits(),
//	)
package sink
