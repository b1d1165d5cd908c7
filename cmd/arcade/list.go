package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered games",
	RunE: func(cmd *cobra.Command, _ []string) error {
		games := registry.List()
		out := cmd.OutOrStdout()
		if len(games) == 0 {
			_, err := fmt.Fprintln(out, "No games registered.")
			return err
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
			Headers("ID", "TITLE")
		for _, g := range games {
			t.Row(g.ID, g.Title)
		}

		_, err := fmt.Fprintf(out, "%s\n\nPlay one with: arcade play <id>\n", t)
		return err
	},
}
