package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/plinyoo/starfield/pkg/leads"
)

// leadsCommand groups operator commands for captured leads.
func (c *CLI) leadsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Inspect contact, join and invest submissions",
	}
	cmd.AddCommand(c.leadsListCommand())
	return cmd
}

func (c *CLI) leadsListCommand() *cobra.Command {
	var (
		limit    int
		formType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored leads, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.config()
			if err != nil {
				return err
			}
			svc, err := openLeadService(ctx, cfg.Leads, c.Logger)
			if err != nil {
				return err
			}
			defer svc.Close()

			list, err := svc.List(ctx, leads.ListOptions{
				FormType: leads.FormType(strings.ToLower(formType)),
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if len(list) == 0 {
				printInfo("No leads in the %s store", cfg.Leads.Backend)
				return nil
			}
			writeLeadsTable(cmd.OutOrStdout(), list)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", leads.DefaultListLimit, "maximum number of leads")
	cmd.Flags().StringVar(&formType, "form", "", "only show one form: contact, join, invest")
	return cmd
}

func writeLeadsTable(w io.Writer, list []leads.Lead) {
	rows := make([][]string, len(list))
	for i, l := range list {
		rows[i] = []string{
			l.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(l.FormType),
			l.Name,
			l.Email,
			leadDetail(l),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Received", "Form", "Name", "Email", "Detail").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0, 4:
				return base.Foreground(colorDim)
			case 1:
				return base.Foreground(colorCyan)
			}
			return base.Foreground(colorWhite)
		})
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("  %d lead(s)", len(list))))
}

// leadDetail summarizes the form-specific fields in one short cell.
func leadDetail(l leads.Lead) string {
	var parts []string
	switch l.FormType {
	case leads.FormJoin:
		parts = append(parts, l.Role, l.Availability)
	case leads.FormInvest:
		parts = append(parts, l.InvestmentRange)
	}
	if l.Message != "" {
		parts = append(parts, truncate(l.Message, 40))
	}
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " · ")
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
