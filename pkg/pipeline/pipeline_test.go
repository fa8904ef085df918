package pipeline

import (
	"math"
	"testing"

	"github.com/plinyoo/starfield/pkg/errors"
	"github.com/plinyoo/starfield/pkg/galaxy"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"simple", false},
		{"glow", false},
		{"handdrawn", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"grid", false},
		{"tree", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Stars: 10}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}

	if opts.Width != DefaultWidth {
		t.Errorf("Width = %v, want %v", opts.Width, DefaultWidth)
	}
	if opts.Height != 320 {
		t.Errorf("Height = %v, want 320", opts.Height)
	}
	if opts.Padding != galaxy.DefaultPadding {
		t.Errorf("Padding = %v, want %v", opts.Padding, galaxy.DefaultPadding)
	}
	if opts.VizType != VizTypeGrid {
		t.Errorf("VizType = %q, want grid", opts.VizType)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style = %q, want %q", opts.Style, DefaultStyle)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}
}

func TestOptionsValidateForLayout(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative stars", Options{Stars: -1}, errors.ErrCodeInvalidStarCount},
		{"too many stars", Options{Stars: MaxStars + 1}, errors.ErrCodeInvalidStarCount},
		{"negative width", Options{Stars: 1, Width: -5}, errors.ErrCodeInvalidDimensions},
		{"NaN height", Options{Stars: 1, Height: math.NaN()}, errors.ErrCodeInvalidDimensions},
		{"negative padding", Options{Stars: 1, Padding: -1}, errors.ErrCodeInvalidDimensions},
		{"infinite top margin", Options{Stars: 1, TopMargin: TopMargin(math.Inf(1))}, errors.ErrCodeInvalidDimensions},
		{"ok", Options{Stars: MaxStars}, ""},
		{"zero stars", Options{}, ""},
		{"zero top margin", Options{Stars: 1, TopMargin: TopMargin(0)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForLayout()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("ValidateForLayout() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestOptionsValidateForRender(t *testing.T) {
	opts := Options{Formats: []string{"svg", "gif"}}
	if err := opts.ValidateForRender(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown format error = %v", err)
	}

	opts = Options{Style: "neon"}
	if err := opts.ValidateForRender(); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("unknown style error = %v", err)
	}

	opts = Options{Title: "bad\x00title"}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("control characters in title should fail")
	}
}

func TestOptionsFrame(t *testing.T) {
	opts := Options{Width: 400}
	opts.SetLayoutDefaults()
	f := opts.Frame()
	if f.Width != 400 || f.Height != 320 || f.Padding != 15 || f.TopMargin != galaxy.DefaultTopMargin {
		t.Errorf("Frame() = %+v", f)
	}

	opts = Options{Width: 400, Padding: 10, TopMargin: TopMargin(0)}
	opts.SetLayoutDefaults()
	f = opts.Frame()
	if f.Padding != 10 || f.TopMargin != 0 {
		t.Errorf("Frame() = %+v, want padding 10, top margin 0", f)
	}

	opts = Options{Width: 400, Padding: 10}
	opts.SetLayoutDefaults()
	if got := opts.Frame().TopMargin; got != 70 {
		t.Errorf("TopMargin with padding 10 = %v, want 70", got)
	}
}

func TestLayoutKeyOpts(t *testing.T) {
	a := Options{Stars: 10}
	b := Options{Stars: 10, Title: "ignored for layout"}
	a.SetLayoutDefaults()
	b.SetLayoutDefaults()
	if a.LayoutKeyOpts() != b.LayoutKeyOpts() {
		t.Error("render-only fields should not change the layout key")
	}

	c := Options{Stars: 10, TopMargin: TopMargin(0)}
	c.SetLayoutDefaults()
	if a.LayoutKeyOpts() == c.LayoutKeyOpts() {
		t.Error("top margin should change the layout key")
	}
}

func TestGenerateLayout(t *testing.T) {
	l, err := GenerateLayout(Options{Stars: 7, Width: 400})
	if err != nil {
		t.Fatalf("GenerateLayout() error: %v", err)
	}
	if len(l.SmallSystems) != 1 || len(l.Stars) != 2 {
		t.Errorf("structure = %+v", l.Structure)
	}
	if l.Stars[0].X != 217.5 || l.Stars[0].Y != 160 {
		t.Errorf("star0 = (%v, %v), want (217.5, 160)", l.Stars[0].X, l.Stars[0].Y)
	}

	if _, err := GenerateLayout(Options{Stars: -3}); err == nil {
		t.Error("negative count should fail")
	}
}
