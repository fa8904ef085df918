package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/plinyoo/starfield/pkg/galaxy"
)

// Terminal cells are roughly twice as tall as wide.
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	previewMaxStars = 100_000
	defaultPreview  = 58
)

// previewCommand opens an interactive sky that redraws as the count changes.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [stars]",
		Short: "Explore star counts interactively in the terminal",
		Long: `Explore star counts interactively in the terminal.

  ↑/↓     change the count by 1
  ←/→     change the count by 10
  pgup/dn change the count by 100
  home/0  reset the count to zero
  q/esc   quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := defaultPreview
			if len(args) == 1 {
				var err error
				if n, err = parseStarCount(args[0]); err != nil {
					return err
				}
			}
			m := newPreviewModel(min(n, previewMaxStars), 100, 30)
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// previewModel - Interactive sky
// =============================================================================

type previewModel struct {
	stars  int
	cols   int
	rows   int
	layout galaxy.Layout
}

func newPreviewModel(stars, cols, rows int) previewModel {
	m := previewModel{stars: stars, cols: cols, rows: rows}
	m.relayout()
	return m
}

// relayout sizes the frame to the terminal so the grid centers on screen.
func (m *previewModel) relayout() {
	m.layout = galaxy.Generate(m.stars, float64(m.cols)*cellWidth, float64(m.rows)*cellHeight)
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		delta := 0
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			delta = 1
		case "down", "j":
			delta = -1
		case "right", "l":
			delta = 10
		case "left", "h":
			delta = -10
		case "pgup":
			delta = 100
		case "pgdown":
			delta = -100
		case "home", "0":
			delta = -m.stars
		}
		if delta != 0 {
			m.stars = max(0, min(previewMaxStars, m.stars+delta))
			m.relayout()
		}
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 20)
		m.rows = max(msg.Height-5, 5)
		m.relayout()
	}
	return m, nil
}

var (
	skyGalaxy    = lipgloss.NewStyle().Foreground(colorMagenta)
	skyLargeSun  = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
	skySmallSun  = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)
	skyWhite     = lipgloss.NewStyle().Foreground(colorWhite)
	skyUnstyled  = lipgloss.NewStyle()
	previewTitle = StyleTitle
)

func (m previewModel) View() string {
	var b strings.Builder

	st := m.layout.Structure
	b.WriteString(previewTitle.Render(fmt.Sprintf("%d stars", m.stars)))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d galaxies · %d large · %d small · %d single",
		st.Galaxies, st.LargeSystems, st.SmallSystems, st.Stars)))
	b.WriteString("\n\n")

	canvas := drawSky(m.layout, m.cols, m.rows)
	b.WriteString(canvas.String())

	b.WriteString("\n")
	help := "↑/↓ ±1  ←/→ ±10  pgup/pgdn ±100  home reset  q quit"
	if canvas.clipped {
		help += "  (sky continues below)"
	}
	b.WriteString(StyleDim.Render(help))
	return b.String()
}

// =============================================================================
// Canvas
// =============================================================================

type cell struct {
	r     rune
	style *lipgloss.Style
}

// skyCanvas is a character grid of a layout, one cell per cellWidth by
// cellHeight pixels.
type skyCanvas struct {
	cells   [][]cell
	clipped bool
}

func newSkyCanvas(cols, rows int) *skyCanvas {
	c := &skyCanvas{cells: make([][]cell, rows)}
	for i := range c.cells {
		c.cells[i] = make([]cell, cols)
		for j := range c.cells[i] {
			c.cells[i][j] = cell{r: ' ', style: &skyUnstyled}
		}
	}
	return c
}

// plot writes r at pixel (x, y). overwrite=false keeps existing glyphs.
func (c *skyCanvas) plot(x, y float64, r rune, style *lipgloss.Style, overwrite bool) {
	row := int(math.Floor(y / cellHeight))
	col := int(math.Floor(x / cellWidth))
	if row < 0 || col < 0 || col >= len(c.cells[0]) {
		return
	}
	if row >= len(c.cells) {
		c.clipped = true
		return
	}
	if !overwrite && c.cells[row][col].r != ' ' {
		return
	}
	c.cells[row][col] = cell{r: r, style: style}
}

// drawSky rasterizes l. Galaxies become tilted dust clouds, suns '*',
// planets '·' and single stars '+'.
func drawSky(l galaxy.Layout, cols, rows int) *skyCanvas {
	c := newSkyCanvas(cols, rows)

	for _, g := range l.Galaxies {
		for dy := -40.0; dy <= 40; dy += cellHeight / 2 {
			for dx := -48.0; dx <= 48; dx += cellWidth / 2 {
				// ellipse rotated -30°, matching the SVG galaxy
				rx := dx*math.Cos(math.Pi/6) - dy*math.Sin(math.Pi/6)
				ry := dx*math.Sin(math.Pi/6) + dy*math.Cos(math.Pi/6)
				if (rx*rx)/(45*45)+(ry*ry)/(18*18) <= 1 {
					c.plot(g.X+dx, g.Y+dy, '∙', &skyGalaxy, false)
				}
			}
		}
		c.plot(g.X, g.Y, '@', &skyGalaxy, true)
	}
	for _, s := range l.LargeSystems {
		drawSystem(c, s, &skyLargeSun)
	}
	for _, s := range l.SmallSystems {
		drawSystem(c, s, &skySmallSun)
	}
	for _, s := range l.Stars {
		c.plot(s.X, s.Y, '+', &skyWhite, false)
	}
	return c
}

func drawSystem(c *skyCanvas, s galaxy.System, sun *lipgloss.Style) {
	for _, p := range s.Planets {
		c.plot(p.X, p.Y, '·', &skyWhite, false)
	}
	c.plot(s.Sun.X, s.Sun.Y, '*', sun, true)
}

// String renders the grid, styling runs of same-styled cells together.
func (c *skyCanvas) String() string {
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var current *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == &skyUnstyled {
				b.WriteString(run.String())
			} else {
				b.WriteString(current.Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}

// Plain returns the grid without styling.
func (c *skyCanvas) Plain() string {
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}
