package styles

import (
	"bytes"
	"fmt"

	"github.com/plinyoo/starfield/pkg/galaxy"
)

// Glow draws every body with a soft radial halo.
type Glow struct{}

const glowDefs = `  <defs>
    <radialGradient id="halo">
      <stop offset="0%" stop-color="white" stop-opacity="0.9"/>
      <stop offset="100%" stop-color="white" stop-opacity="0"/>
    </radialGradient>
    <radialGradient id="galaxy-core">
      <stop offset="0%" stop-color="#FFF5E1"/>
      <stop offset="35%" stop-color="#9F8FEF" stop-opacity="0.8"/>
      <stop offset="100%" stop-color="#2B1B5A" stop-opacity="0"/>
    </radialGradient>
  </defs>
`

func (Glow) Name() string { return NameGlow }

func (Glow) RenderDefs(buf *bytes.Buffer) { buf.WriteString(glowDefs) }

func (Glow) RenderGalaxy(buf *bytes.Buffer, g galaxy.Galaxy) {
	fmt.Fprintf(buf, `  <g id="galaxy-%s" class="galaxy" transform="translate(%.2f %.2f) rotate(-30)">`+"\n",
		escape(g.ID), g.X, g.Y)
	buf.WriteString(`    <ellipse rx="50.00" ry="22.00" fill="url(#galaxy-core)"/>` + "\n")
	buf.WriteString("  </g>\n")
}

func (Glow) RenderOrbit(buf *bytes.Buffer, s galaxy.System) {
	fmt.Fprintf(buf, `  <circle class="orbit" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="white" stroke-opacity="0.15" stroke-width="0.75"/>`+"\n",
		s.X, s.Y, s.OrbitRadius())
}

func (Glow) RenderStar(buf *bytes.Buffer, s galaxy.Star, role Role) {
	haloR := s.R * 2.5
	if role == RoleSun {
		haloR = s.R * 3
	}
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="url(#halo)" opacity="0.6"/>`+"\n",
		s.X, s.Y, haloR)
	fmt.Fprintf(buf, `  <circle id="%s" class="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
		escape(s.ID), role.class(), s.X, s.Y, s.R, escape(s.Color))
}

func (Glow) RenderTitle(buf *bytes.Buffer, x, y float64, text string) {
	fmt.Fprintf(buf, `  <text class="title" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="20" fill="#FFF5E1">%s</text>`+"\n",
		x, y, escape(text))
}
