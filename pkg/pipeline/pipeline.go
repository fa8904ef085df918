// Package pipeline turns a star count into rendered artifacts.
//
// The CLI and the HTTP API both go through this package, so defaults,
// validation and cache keys are identical on every entry point.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Layout: decompose the count and arrange the scene ([galaxy.GenerateFrame])
//  2. Render: produce SVG, PNG, PDF or JSON for a grid or tree view
//
// Each stage can run on its own or as part of [Runner.Execute].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Stars:   237,
//	    Formats: []string{"svg", "png"},
//	    Style:   "glow",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plinyoo/starfield/pkg/cache"
	"github.com/plinyoo/starfield/pkg/errors"
	"github.com/plinyoo/starfield/pkg/galaxy"
	"github.com/plinyoo/starfield/pkg/galaxy/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = galaxy.DefaultHeight

	// MaxStars caps the count a single request may lay out. A million stars
	// is ten thousand galaxy blocks, already far taller than any frame.
	MaxStars = 1_000_000

	// DefaultPNGScale is the PNG resolution multiplier.
	DefaultPNGScale = 2.0
)

// Visualization types.
const (
	VizTypeGrid = "grid"
	VizTypeTree = "tree"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeGrid

// DefaultStyle is the default visual style.
const DefaultStyle = styles.NameSimple

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	styles.NameSimple: true,
	styles.NameGlow:   true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeGrid: true,
	VizTypeTree: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Stars     int      `json:"stars"`
	Width     float64  `json:"width,omitempty"`
	Height    float64  `json:"height,omitempty"`
	Padding   float64  `json:"padding,omitempty"`
	TopMargin *float64 `json:"top_margin,omitempty"` // nil keeps room for a caption
	Refresh   bool     `json:"refresh,omitempty"`

	// Render options
	VizType    string   `json:"viz_type,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Style      string   `json:"style,omitempty"`
	Title      string   `json:"title,omitempty"`
	Orbits     bool     `json:"orbits,omitempty"`
	Background string   `json:"background,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the positioned scene.
	Layout galaxy.Layout

	// LayoutHash is the content hash of the serialized layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Structure  galaxy.Structure
	Elements   int // top-level cells in the grid
	Rows       int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, glow)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: grid, tree)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks and defaults every field for a full run.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Padding == 0 {
		o.Padding = galaxy.DefaultPadding
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateStarCount(o.Stars, MaxStars); err != nil {
		return err
	}
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if err := errors.ValidateDimension("padding", o.Padding); err != nil {
		return err
	}
	if o.TopMargin != nil && (math.IsNaN(*o.TopMargin) || math.IsInf(*o.TopMargin, 0)) {
		return errors.New(errors.ErrCodeInvalidDimensions, "top_margin must be a finite number")
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	return errors.ValidateText("title", o.Title, 200)
}

// IsTree reports whether the hierarchy diagram was requested.
func (o *Options) IsTree() bool {
	return o.VizType == VizTypeTree
}

// Frame returns the galaxy frame described by the options.
// Call after SetLayoutDefaults.
func (o *Options) Frame() galaxy.Frame {
	f := galaxy.NewFrame(o.Width, o.Height)
	if o.Padding > 0 {
		f.Padding = o.Padding
		f.TopMargin = o.Padding + (galaxy.DefaultTopMargin - galaxy.DefaultPadding)
	}
	if o.TopMargin != nil {
		f.TopMargin = *o.TopMargin
	}
	return f
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	f := o.Frame()
	return cache.LayoutKeyOpts{
		Stars:     o.Stars,
		Width:     f.Width,
		Height:    f.Height,
		Padding:   f.Padding,
		TopMargin: f.TopMargin,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		VizType:    o.VizType,
		Style:      o.Style,
		Title:      o.Title,
		Orbits:     o.Orbits,
		Background: o.Background,
	}
}

// TopMargin returns a pointer to v, for literal Options.
func TopMargin(v float64) *float64 { return &v }
