package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), themesTable(theme.List()))
			return nil
		},
	}

	return cmd
}

func themesTable(summaries []theme.Summary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		variants := make([]string, 0, len(s.Variants))
		for _, v := range s.Variants {
			variants = append(variants, string(v))
		}
		name := s.Name
		if s.Name == theme.DefaultName {
			name += " (default)"
		}
		rows = append(rows, []string{
			name,
			s.ID,
			string(s.Recipe),
			color.ToHex(s.Background) + " / " + color.ToHex(s.Accent),
			strings.Join(variants, ", "),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "ID", "RECIPE", "BACKGROUND / ACCENT", "LAYOUTS").
		Rows(rows...).
		String()
}
