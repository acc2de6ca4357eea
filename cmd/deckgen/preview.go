package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/deckgen/internal/deck"
	"github.com/alexisbeaulieu97/deckgen/internal/tui"
)

// sampleSections feed the sample deck shown by preview; four sections are
// enough to walk every catalog rotation once.
var sampleSections = []deck.Section{
	{Title: "Where we are", Facts: []string{"Adoption doubled this year", "Support load is flat", "Mobile leads growth"}},
	{Title: "What changed", Facts: []string{"New onboarding flow", "Faster exports", "Self-serve billing", "Regional pricing"}},
	{Title: "Risks", Facts: []string{"Hiring is slow", "Supplier concentration"}},
	{Title: "Next steps", Facts: []string{"Ship the tablet layout", "Open two new regions", "Review pricing in March"}},
}

type previewOptions struct {
	Style styleSource
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a theme's palette and a sample deck outline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Style.stylePath != "" {
				if err := validateInputFile("style", opts.Style.stylePath); err != nil {
					return err
				}
			}

			app, err := loadAppContext(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			t, err := opts.Style.resolve(app.Config.DefaultTheme)
			if err != nil {
				return err
			}

			slides, err := deck.Assembler{IncludeImages: app.Config.Images()}.Assemble(t, "Sample deck", sampleSections)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.Preview(t, slides))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Style.themeName, "theme", "", "Catalog theme name")
	cmd.Flags().StringVar(&opts.Style.stylePath, "style", "", "Custom style YAML or JSON (overrides --theme)")

	return cmd
}
