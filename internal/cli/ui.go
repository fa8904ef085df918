package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plinyoo/starfield/pkg/galaxy"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // muted

	colorGold    = lipgloss.Color("220") // large suns
	colorOrange  = lipgloss.Color("214") // small suns
	colorMagenta = lipgloss.Color("177") // galaxies
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for headings such as "247 stars".
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for file paths and config values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconCached = "cached"
	iconFresh  = "fresh"
)

// statusLine is one kind of one-line status message.
type statusLine struct {
	icon  string
	style lipgloss.Style
}

var (
	lineSuccess = statusLine{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	lineError   = statusLine{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	lineWarning = statusLine{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	lineInfo    = statusLine{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

func (s statusLine) print(format string, args ...any) {
	fmt.Println(s.style.Render(s.icon) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { lineSuccess.print(format, args...) }
func printError(format string, args ...any)   { lineError.print(format, args...) }
func printWarning(format string, args ...any) { lineWarning.print(format, args...) }
func printInfo(format string, args ...any)    { lineInfo.print(format, args...) }

// printDetail prints an indented, muted line under a status message.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile lists a written file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints the tier counts of a scene and whether it came from
// cache, e.g. "2 galaxies · 4 large systems · fresh".
func printStats(st galaxy.Structure, cached bool) {
	var parts []string
	for _, p := range []struct {
		n    int
		unit string
	}{
		{st.Galaxies, "galaxies"},
		{st.LargeSystems, "large systems"},
		{st.SmallSystems, "small systems"},
		{st.Stars, "stars"},
	} {
		if p.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", p.n, p.unit))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "empty sky")
	}

	status := lipgloss.NewStyle().Foreground(colorGray).Render(iconFresh)
	if cached {
		status = lipgloss.NewStyle().Foreground(colorGreen).Render(iconCached)
	}
	sep := StyleDim.Render(" · ")
	fmt.Println("  " + StyleDim.Render(strings.Join(parts, " · ")) + sep + status)
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }
