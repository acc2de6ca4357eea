package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	deckapp "github.com/alexisbeaulieu97/deckgen/internal/app/deck"
	"github.com/alexisbeaulieu97/deckgen/internal/config"
	"github.com/alexisbeaulieu97/deckgen/internal/history"
	"github.com/alexisbeaulieu97/deckgen/internal/render"
	"github.com/alexisbeaulieu97/deckgen/pkg/diff"
)

type planOptions struct {
	OutlinePath string
	Style       styleSource
	NoImages    bool
	DiffPath    string
	Against     string
	OutputPath  string
}

func newPlanCmd(root *rootFlags) *cobra.Command {
	opts := planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the YAML shape plan of an outline",
		Long: "Plan lays out the outline without writing a presentation. With --diff the plan is\n" +
			"compared against a previously saved plan and only the differences are printed.\n" +
			"Add --against to compare with the plan as committed at a git revision instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInputFile("outline", opts.OutlinePath); err != nil {
				return err
			}
			if opts.Against != "" && opts.DiffPath == "" {
				return fmt.Errorf("--against requires --diff")
			}
			if opts.DiffPath != "" && opts.Against == "" {
				if err := validateInputFile("previous plan", opts.DiffPath); err != nil {
					return err
				}
			}

			app, err := loadAppContext(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runPlan(cmd, app, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.OutlinePath, "outline", "o", "", "Path to the outline YAML")
	cmd.Flags().StringVar(&opts.Style.themeName, "theme", "", "Catalog theme name (overrides the outline)")
	cmd.Flags().StringVar(&opts.Style.stylePath, "style", "", "Custom style YAML or JSON (overrides --theme)")
	cmd.Flags().BoolVar(&opts.NoImages, "no-images", false, "Omit image placeholders")
	cmd.Flags().StringVar(&opts.DiffPath, "diff", "", "Compare against a previously saved plan")
	cmd.Flags().StringVar(&opts.Against, "against", "", "Read the --diff plan from this git revision (e.g. HEAD)")
	cmd.Flags().StringVar(&opts.OutputPath, "write", "", "Also save the plan to this file")
	cmd.MarkFlagRequired("outline") //nolint:errcheck

	return cmd
}

func runPlan(cmd *cobra.Command, app *AppContext, opts planOptions, out io.Writer) error {
	outline, err := config.ParseOutline(opts.OutlinePath)
	if err != nil {
		return err
	}
	if err := opts.Style.apply(outline); err != nil {
		return err
	}

	req := deckapp.RequestFromOutline(outline, app.Config)
	if opts.NoImages {
		req.IncludeImages = false
	}

	outcome, err := deckapp.NewService(nil, app.Logger).Plan(cmd.Context(), req)
	if err != nil {
		return err
	}

	data, err := render.Dump(outline.Title, outcome.Slides)
	if err != nil {
		return err
	}

	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, data, 0o644); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
	}

	if opts.DiffPath == "" {
		_, err = out.Write(data)
		return err
	}

	previous, label, err := readPrevious(opts)
	if err != nil {
		return err
	}
	changes := diff.Unified(previous, data, label, opts.OutlinePath)
	if changes == "" {
		fmt.Fprintln(out, "no changes")
		return nil
	}
	stats := diff.Count(previous, data)
	fmt.Fprint(out, changes)
	fmt.Fprintf(out, "%d lines added, %d removed\n", stats.Added, stats.Removed)
	return nil
}

func readPrevious(opts planOptions) ([]byte, string, error) {
	if opts.Against == "" {
		data, err := os.ReadFile(opts.DiffPath)
		if err != nil {
			return nil, "", fmt.Errorf("read previous plan: %w", err)
		}
		return data, opts.DiffPath, nil
	}

	data, err := history.ReadAt(opts.DiffPath, opts.Against)
	if err != nil {
		return nil, "", fmt.Errorf("read previous plan: %w", err)
	}
	return data, opts.DiffPath + "@" + opts.Against, nil
}
