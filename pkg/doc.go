// Package pkg provides the core libraries for Starfield community visualization.
//
// # Overview
//
// Starfield turns a member count into a night sky. Every hundred members
// become a galaxy, every ten a sun with nine planets, every five a sun with
// four planets, and whatever is left shines as a single star. The pkg
// directory is organized into three main areas:
//
//  1. [galaxy] - Domain logic (decomposition, scene building, grid packing, rendering)
//  2. [pipeline] - Orchestration (count → layout → render) with caching
//  3. Infrastructure - [cache], [leads], [config], [errors] and [observability]
//
// # Architecture
//
// The typical data flow through Starfield:
//
//	Star count
//	     ↓
//	[galaxy.CalculateStructure] (galaxies, large/small systems, stars)
//	     ↓
//	[galaxy.Build] + [galaxy.Arrange] (positioned scene)
//	     ↓
//	[galaxy/sink] or [galaxy/nodelink] (drawing)
//	     ↓
//	SVG/PDF/PNG/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/plinyoo/starfield/pkg/galaxy"
//	    "github.com/plinyoo/starfield/pkg/galaxy/sink"
//	    "github.com/plinyoo/starfield/pkg/galaxy/styles"
//	)
//
//	l := galaxy.Generate(1234, 800, galaxy.DefaultHeight)
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Glow{}), sink.WithOrbits())
//
// # Main Packages
//
// [galaxy] - Star-count decomposition and row-packing layout. Pure and
// deterministic: the same count and frame always give the same coordinates.
//
// [galaxy/sink] - Output formats for a layout (SVG, PDF, PNG, JSON).
//
// [galaxy/styles] - Visual styles (simple, glow).
//
// [galaxy/nodelink] - Hierarchy diagram of the tiers using Graphviz.
//
// [render] - Format conversion (SVG to PDF/PNG) via rsvg-convert.
//
// [pipeline] - The layout → render pipeline used by the CLI and the HTTP
// server, with content-addressed caching of both stages.
//
// [cache] - File, Redis and null cache backends plus key derivation.
//
// [leads] - Contact, join and invest submissions with memory, PostgreSQL
// and MongoDB stores.
//
// [config] - TOML configuration with environment overrides.
//
// # Testing
//
//	go test ./...                        # All tests
//	go test -run Example ./pkg/galaxy/... # Examples only
//	go test -tags integration ./pkg/...  # Include Redis, PostgreSQL and MongoDB
//
// [galaxy]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/galaxy
// [galaxy/sink]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/galaxy/sink
// [galaxy/styles]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/galaxy/styles
// [galaxy/nodelink]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/galaxy/nodelink
// [render]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/cache
// [leads]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/leads
// [config]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/config
// [errors]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/errors
// [observability]: https://pkg.go.dev/github.com/plinyoo/starfield/pkg/observability
package pkg
