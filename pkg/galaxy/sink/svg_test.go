package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plinyoo/starfield/pkg/galaxy"
	"github.com/plinyoo/starfield/pkg/galaxy/styles"
)

func TestRenderSVG(t *testing.T) {
	l := galaxy.Generate(7, 400, 320)
	got := string(RenderSVG(l))

	contains := []string{
		`viewBox="0 0 400.0 320.0"`,
		`<g id="system-sss0" class="system small">`,
		`id="sss0-sun" class="sun" cx="170.00" cy="160.00" r="5.00" fill="#FFA500"`,
		`id="star0" class="star" cx="217.50" cy="160.00"`,
		`id="star1" class="star" cx="247.50" cy="160.00"`,
	}
	for _, want := range contains {
		if !strings.Contains(got, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
	if n := strings.Count(got, `class="planet"`); n != 4 {
		t.Errorf("planet count = %d, want 4", n)
	}
	if strings.Contains(got, `class="orbit"`) {
		t.Error("orbits drawn without WithOrbits")
	}
	if !strings.HasSuffix(got, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestRenderSVGTitleFollowsTopMargin(t *testing.T) {
	tests := []struct {
		name   string
		margin float64
		want   string // empty when no title is drawn
	}{
		{"default band", galaxy.DefaultTopMargin, `y="45.00"`},
		{"taller band", 135, `y="75.00"`},
		{"no band", 0, ""},
		{"margin equal to padding", galaxy.DefaultPadding, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := galaxy.NewFrame(400, 320)
			f.TopMargin = tt.margin
			l := galaxy.GenerateFrame(7, f)

			got := string(RenderSVG(l, WithTitle("seven")))
			if tt.want == "" {
				if strings.Contains(got, "seven") {
					t.Error("title drawn without a band to hold it")
				}
				return
			}
			if !strings.Contains(got, `x="200.00" `+tt.want) {
				t.Errorf("RenderSVG() missing title at %s", tt.want)
			}
		})
	}
}

func TestRenderSVGOptions(t *testing.T) {
	l := galaxy.Generate(237, 2000, 320)

	tests := []struct {
		name     string
		opts     []SVGOption
		contains []string
	}{
		{
			name:     "orbits",
			opts:     []SVGOption{WithOrbits()},
			contains: []string{`class="orbit"`, `r="28.00"`, `r="18.00"`},
		},
		{
			name:     "title",
			opts:     []SVGOption{WithTitle("Join <us>")},
			contains: []string{`x="1000.00" y="45.00"`, "Join &lt;us&gt;"},
		},
		{
			name:     "background",
			opts:     []SVGOption{WithBackground("#000010")},
			contains: []string{`class="background"`, `fill="#000010"`},
		},
		{
			name:     "glow",
			opts:     []SVGOption{WithStyle(styles.Glow{})},
			contains: []string{`<radialGradient id="halo">`, `id="galaxy-g1"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(RenderSVG(l, tt.opts...))
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("RenderSVG() missing %q", want)
				}
			}
		})
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	got := string(RenderSVG(galaxy.Generate(0, 300, 320)))
	if strings.Contains(got, "<circle") || strings.Contains(got, "<g ") {
		t.Errorf("empty layout drew entities: %s", got)
	}
	if !strings.Contains(got, `viewBox="0 0 300.0 320.0"`) {
		t.Errorf("empty layout has wrong viewBox: %s", got)
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	a := RenderSVG(galaxy.Generate(1234, 900, 600), WithOrbits())
	b := RenderSVG(galaxy.Generate(1234, 900, 600), WithOrbits())
	if !bytes.Equal(a, b) {
		t.Error("equal layouts produced different SVG")
	}
}

func TestRenderSVGNilStyle(t *testing.T) {
	got := RenderSVG(galaxy.Generate(3, 300, 320), WithStyle(nil))
	if !bytes.Contains(got, []byte(`class="star"`)) {
		t.Error("nil style should fall back to Simple")
	}
}
