package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/plinyoo/starfield/pkg/errors"
	"github.com/plinyoo/starfield/pkg/galaxy"
	"github.com/plinyoo/starfield/pkg/pipeline"
)

// structureCommand prints how a count decomposes into tiers.
func (c *CLI) structureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "structure <stars>",
		Short: "Show how a star count breaks down into galaxies, systems and stars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseStarCount(args[0])
			if err != nil {
				return err
			}
			writeStructureTable(cmd.OutOrStdout(), n, galaxy.CalculateStructure(n))
			return nil
		},
	}
}

// parseStarCount parses a positional star count.
func parseStarCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidStarCount, "star count must be an integer, got %q", s)
	}
	if err := errors.ValidateStarCount(n, pipeline.MaxStars); err != nil {
		return 0, err
	}
	return n, nil
}

func writeStructureTable(w io.Writer, total int, st galaxy.Structure) {
	rows := [][]string{
		{"Galaxies", strconv.Itoa(st.Galaxies), strconv.Itoa(st.Galaxies * galaxy.StarsPerGalaxy)},
		{"Large systems", strconv.Itoa(st.LargeSystems), strconv.Itoa(st.LargeSystems * galaxy.StarsPerLargeSystem)},
		{"Small systems", strconv.Itoa(st.SmallSystems), strconv.Itoa(st.SmallSystems * galaxy.StarsPerSmallSystem)},
		{"Stars", strconv.Itoa(st.Stars), strconv.Itoa(st.Stars)},
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tier", "Count", "Stars").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				base = base.Align(lipgloss.Right)
			}
			if rows[row][1] == "0" {
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})

	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d stars", total)))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%d elements to place", st.Elements())))
}
