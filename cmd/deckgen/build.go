package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	deckapp "github.com/alexisbeaulieu97/deckgen/internal/app/deck"
	"github.com/alexisbeaulieu97/deckgen/internal/config"
	"github.com/alexisbeaulieu97/deckgen/internal/logger"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/render"
	"github.com/alexisbeaulieu97/deckgen/internal/render/pptx"
	"github.com/alexisbeaulieu97/deckgen/internal/tui"
)

type buildOptions struct {
	OutlinePath    string
	Style          styleSource
	NoImages       bool
	OutDir         string
	Name           string
	NotesStyle     string
	SlideFormat    string
	DumpPlan       bool
	NonInteractive bool
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Lay out an outline and write the presentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInputFile("outline", opts.OutlinePath); err != nil {
				return err
			}
			opts.NonInteractive = !logger.IsTerminal(cmd.OutOrStdout())

			app, err := loadAppContext(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runBuild(ctx, app, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.OutlinePath, "outline", "o", "", "Path to the outline YAML")
	cmd.Flags().StringVar(&opts.Style.themeName, "theme", "", "Catalog theme name (overrides the outline)")
	cmd.Flags().StringVar(&opts.Style.stylePath, "style", "", "Custom style YAML or JSON (overrides --theme)")
	cmd.Flags().BoolVar(&opts.NoImages, "no-images", false, "Omit image placeholders")
	cmd.Flags().StringVar(&opts.OutDir, "out", "", "Output directory (default from config)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Output file name without extension (default derived from the title)")
	cmd.Flags().StringVar(&opts.NotesStyle, "notes-style", "", "Fallback notes style: Concise, Detailed or Full Explanation")
	cmd.Flags().StringVar(&opts.SlideFormat, "slide-format", "", "Bullet density: Concise or Detailed")
	cmd.Flags().BoolVar(&opts.DumpPlan, "dump-plan", false, "Write the YAML shape plan instead of a presentation")
	cmd.MarkFlagRequired("outline") //nolint:errcheck

	return cmd
}

func runBuild(ctx context.Context, app *AppContext, opts buildOptions, out io.Writer) error {
	outline, err := config.ParseOutline(opts.OutlinePath)
	if err != nil {
		return err
	}
	if err := opts.Style.apply(outline); err != nil {
		return err
	}

	req := deckapp.RequestFromOutline(outline, app.Config)
	req.OutputName = opts.Name
	if opts.NoImages {
		req.IncludeImages = false
	}
	if opts.NotesStyle != "" {
		req.NotesStyle = opts.NotesStyle
	}
	if opts.SlideFormat != "" {
		req.SlideFormat = opts.SlideFormat
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = app.Config.OutputDir
	}
	var sink render.Sink
	if opts.DumpPlan {
		sink = render.DumpSink{Dir: outDir}
	} else {
		sink = pptx.New(outDir, app.Config.AssetDir, app.Logger)
	}
	svc := deckapp.NewService(sink, app.Logger)

	themeLabel := outline.Theme
	if outline.CustomStyle != nil {
		themeLabel = "custom style"
	}
	modelState := tui.NewModel(outline.Title, themeLabel, len(outline.Sections), opts.NonInteractive)
	interactive := !opts.NonInteractive

	var program *tea.Program
	var programErr error
	done := make(chan struct{})

	if interactive {
		program = tea.NewProgram(modelState, tea.WithOutput(out))
		go func() {
			_, programErr = program.Run()
			close(done)
		}()
	}

	req.OnSlide = func(s plan.Slide) {
		dispatchTuiMessage(interactive, program, &modelState, tui.SlidePlannedMsg{Slide: s})
	}

	outcome, genErr := svc.Generate(ctx, req)
	result := tui.BuildDoneMsg{Err: genErr}
	if outcome != nil {
		result.Path = outcome.Path
	}
	dispatchTuiMessage(interactive, program, &modelState, result)

	if interactive {
		<-done
		if programErr != nil {
			return programErr
		}
	} else {
		fmt.Fprintln(out, modelState.View())
	}

	return genErr
}

func dispatchTuiMessage(interactive bool, program *tea.Program, state *tui.Model, msg tea.Msg) {
	if interactive {
		if program != nil {
			program.Send(msg)
		}
		return
	}

	updated, _ := state.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*state = m
	}
}
