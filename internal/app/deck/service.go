// Package deck is the caller-facing entry point: it turns an outline
// request into a planned and rendered deck.
package deck

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/deckgen/internal/config"
	"github.com/alexisbeaulieu97/deckgen/internal/deck"
	"github.com/alexisbeaulieu97/deckgen/internal/logger"
	"github.com/alexisbeaulieu97/deckgen/internal/notes"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/render"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

// DefaultOutputName is used when neither the request nor the title yields
// a usable file name.
const DefaultOutputName = "presentation"

const maxNameRunes = 80

// Service coordinates theme resolution, assembly and rendering. It holds
// only immutable collaborators and is safe for concurrent use.
type Service struct {
	sink render.Sink
	log  *logger.Logger
}

// NewService constructs a deck service writing through sink. A nil sink
// plans decks without rendering them.
func NewService(sink render.Sink, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{sink: sink, log: log}
}

// Request describes one deck.
type Request struct {
	Title     string
	Presenter string
	Sections  []config.Section
	// CustomStyle wins over ThemeName when set.
	ThemeName     string
	CustomStyle   *theme.CustomStyleRequest
	IncludeImages bool
	NotesStyle    string
	SlideFormat   string
	OutputName    string
	// OnSlide observes every slide as soon as it is planned.
	OnSlide func(plan.Slide)
}

// RequestFromOutline builds a request from a parsed outline, filling
// unset choices from the application configuration.
func RequestFromOutline(o *config.Outline, app config.App) Request {
	req := Request{
		Title:         o.Title,
		Presenter:     o.Presenter,
		Sections:      o.Sections,
		ThemeName:     o.Theme,
		CustomStyle:   o.CustomStyle,
		IncludeImages: app.Images(),
		NotesStyle:    o.NotesStyle,
		SlideFormat:   o.SlideFormat,
	}
	if req.ThemeName == "" {
		req.ThemeName = app.DefaultTheme
	}
	if o.IncludeImages != nil {
		req.IncludeImages = *o.IncludeImages
	}
	if req.NotesStyle == "" {
		req.NotesStyle = app.NotesStyle
	}
	if req.SlideFormat == "" {
		req.SlideFormat = app.SlideFormat
	}
	return req
}

// Outcome is the result of a generation.
type Outcome struct {
	DeckID   string
	Theme    theme.Theme
	Slides   []plan.Slide
	Path     string
	Duration time.Duration
}

// Plan resolves the theme and assembles the deck without rendering it.
func (s *Service) Plan(ctx context.Context, req Request) (*Outcome, error) {
	started := time.Now()
	deckID := uuid.NewString()
	log := s.log.With("deck_id", deckID)

	t, err := s.resolveTheme(req, log)
	if err != nil {
		return nil, err
	}
	log = log.With("theme", t.ID)

	assembler := deck.Assembler{
		Presenter:     req.Presenter,
		IncludeImages: req.IncludeImages,
		OnSlide:       req.OnSlide,
	}
	build, err := assembler.NewBuild(t, req.Title)
	if err != nil {
		return nil, err
	}

	style := notes.ParseStyle(req.NotesStyle)
	format, ok := notes.ParseFormat(req.SlideFormat)
	if !ok {
		format = notes.FormatDetailed
	}

	for _, section := range req.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slide, err := build.AddSection(prepareSection(section, style, format))
		if err != nil {
			return nil, err
		}
		log.WithFields(map[string]any{
			"slide":     slide.Index,
			"variant":   slide.Variant,
			"structure": slide.Structure,
		}).Debug("slide planned")
	}

	slides, err := build.Finish()
	if err != nil {
		return nil, err
	}

	return &Outcome{
		DeckID:   deckID,
		Theme:    t,
		Slides:   slides,
		Duration: time.Since(started),
	}, nil
}

// Generate plans the deck and hands it to the sink.
func (s *Service) Generate(ctx context.Context, req Request) (*Outcome, error) {
	started := time.Now()
	outcome, err := s.Plan(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.sink == nil {
		return outcome, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := s.log.WithFields(map[string]any{"deck_id": outcome.DeckID, "theme": outcome.Theme.ID})
	path, err := s.sink.Render(ctx, render.Document{
		Name:   OutputName(req.OutputName, req.Title),
		Title:  req.Title,
		Author: req.Presenter,
		Slides: outcome.Slides,
	})
	if err != nil {
		log.Error(err, "render failed")
		return nil, fmt.Errorf("render deck: %w", err)
	}

	outcome.Path = path
	outcome.Duration = time.Since(started)
	log.WithFields(map[string]any{
		"path":   path,
		"slides": len(outcome.Slides),
	}).Info("deck generated")
	return outcome, nil
}

func (s *Service) resolveTheme(req Request, log *logger.Logger) (theme.Theme, error) {
	if req.CustomStyle == nil && !theme.Known(req.ThemeName) {
		log.With("requested", req.ThemeName).Warn(nil, fmt.Sprintf("unknown theme, using %s", theme.DefaultName))
	}
	t, err := theme.Resolve(theme.Source{Name: req.ThemeName, Custom: req.CustomStyle})
	if err != nil {
		return theme.Theme{}, fmt.Errorf("resolve theme: %w", err)
	}
	return t, nil
}

// prepareSection shortens facts for the slide format and writes fallback
// notes from the full facts when none were authored.
func prepareSection(s config.Section, style notes.Style, format notes.Format) deck.Section {
	out := deck.Section{
		Title: s.Title,
		Facts: format.Apply(s.Facts),
		Notes: s.Notes,
	}
	if strings.TrimSpace(out.Notes) == "" {
		out.Notes = notes.Generate(style, notes.Input{
			Title:   s.Title,
			Facts:   s.Facts,
			Context: s.Context,
		})
	}
	return out
}

// OutputName returns name, or a file-safe form of title, or
// DefaultOutputName.
func OutputName(name, title string) string {
	if candidate := sanitize(name); candidate != "" {
		return candidate
	}
	if candidate := sanitize(title); candidate != "" {
		return candidate
	}
	return DefaultOutputName
}

func sanitize(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	out := []rune(strings.Trim(b.String(), "_"))
	if len(out) > maxNameRunes {
		out = out[:maxNameRunes]
	}
	return strings.TrimRight(string(out), "_")
}
