// Package styles defines how galaxy scenes are drawn as SVG.
//
// A [Style] receives positioned entities from the SVG sink and writes the
// markup for each. Two styles ship with the package: [Simple], flat shapes
// with no definitions, and [Glow], which adds radial-gradient halos.
package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/plinyoo/starfield/pkg/galaxy"
)

// Style names accepted by ByName.
const (
	NameSimple = "simple"
	NameGlow   = "glow"
)

// Role tells a style what a star is drawn as.
type Role int

const (
	RoleSingle Role = iota // an individual star
	RoleSun                // the center of a system
	RolePlanet             // a satellite of a system
)

// Style renders the pieces of a galaxy scene.
type Style interface {
	// Name is the identifier used in options and cache keys.
	Name() string
	// RenderDefs writes SVG <defs> content (gradients, filters).
	RenderDefs(buf *bytes.Buffer)
	// RenderGalaxy writes a galaxy block centered on its position.
	RenderGalaxy(buf *bytes.Buffer, g galaxy.Galaxy)
	// RenderOrbit writes the orbit ring of a system.
	RenderOrbit(buf *bytes.Buffer, s galaxy.System)
	// RenderStar writes a single star, sun or planet.
	RenderStar(buf *bytes.Buffer, s galaxy.Star, role Role)
	// RenderTitle writes a caption centered on (x, y).
	RenderTitle(buf *bytes.Buffer, x, y float64, text string)
}

// ByName returns the style registered under name.
func ByName(name string) (Style, error) {
	switch name {
	case NameSimple, "":
		return Simple{}, nil
	case NameGlow:
		return Glow{}, nil
	default:
		return nil, fmt.Errorf("unknown style %q (must be one of: simple, glow)", name)
	}
}

// escape makes s safe for SVG text content and attribute values.
func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func (r Role) class() string {
	switch r {
	case RoleSun:
		return "sun"
	case RolePlanet:
		return "planet"
	default:
		return "star"
	}
}
