// Package deck sequences title, content and closing slides into a complete
// deck plan.
package deck

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/deckgen/internal/compose"
	"github.com/alexisbeaulieu97/deckgen/internal/fit"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

// DefaultPresenter is shown on title slides when no presenter is given.
const DefaultPresenter = "[Your Name]"

// ErrFinished is returned when a finished build is used again.
var ErrFinished = errors.New("deck build already finished")

// Section is one content slide worth of input.
type Section struct {
	Title string
	Facts []string
	Notes string
}

// Assembler builds decks. It holds configuration only, so one value can
// serve any number of concurrent builds.
type Assembler struct {
	Presenter     string
	IncludeImages bool
	// OnSlide, when set, observes every slide as soon as it is planned.
	OnSlide func(plan.Slide)
}

// Build is one in-progress deck. It owns its cycle state and must not be
// shared between goroutines.
type Build struct {
	assembler Assembler
	theme     theme.Theme
	title     string
	state     layout.CycleState
	slides    []plan.Slide
	finished  bool
}

// NewBuild starts a deck and plans its title slide.
func (a Assembler) NewBuild(t theme.Theme, title string) (*Build, error) {
	b := &Build{assembler: a, theme: t, title: title}
	slide, err := compose.Compose(t, layout.Step{}, b.content(title, nil), plan.RoleTitle)
	if err != nil {
		return nil, fmt.Errorf("compose title slide: %w", err)
	}
	b.append(slide)
	return b, nil
}

// AddSection plans the next content slide: the cycler picks the layout, the
// composer draws it and the fitter shrinks its text. Notes are attached
// verbatim.
func (b *Build) AddSection(s Section) (plan.Slide, error) {
	if b.finished {
		return plan.Slide{}, ErrFinished
	}

	step := b.state.Next(b.theme)
	slide, err := compose.Compose(b.theme, step, b.content(s.Title, s.Facts), plan.RoleContent)
	if err != nil {
		return plan.Slide{}, fmt.Errorf("compose section %q: %w", s.Title, err)
	}
	slide = fit.Fit(slide)
	slide.Notes = s.Notes
	return b.append(slide), nil
}

// Finish plans the closing slide and returns the whole deck.
func (b *Build) Finish() ([]plan.Slide, error) {
	if b.finished {
		return nil, ErrFinished
	}

	slide, err := compose.Compose(b.theme, layout.Step{}, b.content("", nil), plan.RoleClosing)
	if err != nil {
		return nil, fmt.Errorf("compose closing slide: %w", err)
	}
	b.append(slide)
	b.finished = true
	return b.slides, nil
}

// State exposes the rotation counters of this build.
func (b *Build) State() layout.CycleState {
	return b.state
}

func (b *Build) append(slide plan.Slide) plan.Slide {
	slide.Index = len(b.slides)
	b.slides = append(b.slides, slide)
	if b.assembler.OnSlide != nil {
		b.assembler.OnSlide(slide)
	}
	return slide
}

func (b *Build) content(title string, facts []string) compose.Content {
	presenter := b.assembler.Presenter
	if presenter == "" {
		presenter = DefaultPresenter
	}
	return compose.Content{
		Title:         title,
		Bullets:       facts,
		Presenter:     presenter,
		IncludeImages: b.assembler.IncludeImages,
	}
}

// Assemble returns len(sections)+2 slides: the title slide, one content
// slide per section in order, and the closing slide.
func (a Assembler) Assemble(t theme.Theme, title string, sections []Section) ([]plan.Slide, error) {
	b, err := a.NewBuild(t, title)
	if err != nil {
		return nil, err
	}
	for _, s := range sections {
		if _, err := b.AddSection(s); err != nil {
			return nil, err
		}
	}
	return b.Finish()
}

// AssembleWithNotes is Assemble with speaker notes supplied separately. A
// non-empty entry in notes replaces the notes of the section at the same
// index; missing or empty entries keep the section's own notes.
func (a Assembler) AssembleWithNotes(t theme.Theme, title string, sections []Section, notes []string) ([]plan.Slide, error) {
	merged := make([]Section, len(sections))
	copy(merged, sections)
	for i := range merged {
		if i < len(notes) && notes[i] != "" {
			merged[i].Notes = notes[i]
		}
	}
	return a.Assemble(t, title, merged)
}
