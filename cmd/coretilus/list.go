package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coretilus/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows every scene registered in coretilus with its flags.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	listIDStyle     = lipgloss.NewStyle().Bold(true)
	listDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runList(cmd *cobra.Command, _ []string) {
	fmt.Fprint(cmd.OutOrStdout(), formatList(registry.List()))
}

// formatList renders the scene table.
func formatList(scenes []registry.Info) string {
	if len(scenes) == 0 {
		return "No scenes available.\n"
	}

	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("Available scenes:"))
	b.WriteString("\n\n")

	// Calculate column widths
	idWidth := 2 // "ID" header
	for _, sc := range scenes {
		idWidth = max(idWidth, len(sc.ID))
	}

	fmt.Fprintf(&b, "  %-*s  %s\n", idWidth, "ID", "Title")
	fmt.Fprintf(&b, "  %-*s  %s\n", idWidth, "--", "-----")

	for _, sc := range scenes {
		id := listIDStyle.Render(fmt.Sprintf("%-*s", idWidth, sc.ID))
		fmt.Fprintf(&b, "  %s  %s - %s\n", id, sc.Title, sc.Summary)
		if sc.Usage != "" {
			fmt.Fprintf(&b, "  %*s  %s\n", idWidth, "", listDimStyle.Render("args: "+sc.Usage))
		}
		for _, f := range sc.Flags {
			name := "    --" + f.Long
			if f.Short != "" {
				name = fmt.Sprintf("-%s, --%s", f.Short, f.Long)
			}
			fmt.Fprintf(&b, "  %*s  %s\n", idWidth, "", listDimStyle.Render(fmt.Sprintf("%-16s %s", name, f.Usage)))
		}
	}

	b.WriteString("\nRun 'coretilus <id>' or 'coretilus play <id>' to play a scene.\n")
	return b.String()
}
