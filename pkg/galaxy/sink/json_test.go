package sink

import (
	"encoding/json"
	"testing"

	"github.com/plinyoo/starfield/pkg/galaxy"
)

func TestRenderJSON(t *testing.T) {
	l := galaxy.Generate(65, 800, 320)

	data, err := RenderJSON(l, WithJSONStyle("glow"), WithJSONTitle("65"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Style != "glow" {
		t.Errorf("Style = %q, want glow", out.Style)
	}
	if out.Title != "65" {
		t.Errorf("Title = %q, want 65", out.Title)
	}
	if out.Width != 800 || out.Height != 320 {
		t.Errorf("frame = %vx%v, want 800x320", out.Width, out.Height)
	}
	if len(out.LargeSystems) != 6 || len(out.SmallSystems) != 1 {
		t.Errorf("systems = %d large, %d small; want 6, 1", len(out.LargeSystems), len(out.SmallSystems))
	}
}

func TestRenderJSONReadableAsLayout(t *testing.T) {
	l := galaxy.Generate(237, 2000, 320)
	data, err := RenderJSON(l, WithJSONStyle("simple"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	back, err := galaxy.UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error: %v", err)
	}
	if back.UnitCount() != 237 {
		t.Errorf("UnitCount() = %d, want 237", back.UnitCount())
	}
	if back.Galaxies[1].X != l.Galaxies[1].X {
		t.Errorf("g1.X = %v, want %v", back.Galaxies[1].X, l.Galaxies[1].X)
	}
}

func TestRenderJSONOmitsEmptyMetadata(t *testing.T) {
	data, err := RenderJSON(galaxy.Generate(1, 300, 320))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if _, ok := raw["style"]; ok {
		t.Error("style should be omitted when unset")
	}
	if _, ok := raw["stars"]; !ok {
		t.Error("layout fields should be inlined")
	}
}
