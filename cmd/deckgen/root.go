package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "deckgen",
		Short:         "deckgen lays out themed slide decks from outlines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to deckgen.yaml (default ./deckgen.yaml when present)")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newPlanCmd(flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
