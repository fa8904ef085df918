package styles

import (
	"bytes"
	"fmt"

	"github.com/plinyoo/starfield/pkg/galaxy"
)

// Simple draws flat circles and a tilted ellipse for each galaxy.
type Simple struct{}

func (Simple) Name() string { return NameSimple }

func (Simple) RenderDefs(*bytes.Buffer) {}

func (Simple) RenderGalaxy(buf *bytes.Buffer, g galaxy.Galaxy) {
	fmt.Fprintf(buf, `  <g id="galaxy-%s" class="galaxy" transform="translate(%.2f %.2f) rotate(-30)">`+"\n",
		escape(g.ID), g.X, g.Y)
	buf.WriteString(`    <ellipse rx="45.00" ry="18.00" fill="#6A5ACD" fill-opacity="0.55"/>` + "\n")
	buf.WriteString(`    <circle r="8.00" fill="#E6E6FA"/>` + "\n")
	buf.WriteString("  </g>\n")
}

func (Simple) RenderOrbit(buf *bytes.Buffer, s galaxy.System) {
	fmt.Fprintf(buf, `  <circle class="orbit" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="#555" stroke-width="0.5"/>`+"\n",
		s.X, s.Y, s.OrbitRadius())
}

func (Simple) RenderStar(buf *bytes.Buffer, s galaxy.Star, role Role) {
	fmt.Fprintf(buf, `  <circle id="%s" class="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
		escape(s.ID), role.class(), s.X, s.Y, s.R, escape(s.Color))
}

func (Simple) RenderTitle(buf *bytes.Buffer, x, y float64, text string) {
	fmt.Fprintf(buf, `  <text class="title" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="20" fill="white">%s</text>`+"\n",
		x, y, escape(text))
}
