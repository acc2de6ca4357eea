package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/tui/components"
)

// SlidePlannedMsg reports that a slide has been planned.
type SlidePlannedMsg struct {
	Slide plan.Slide
}

// BuildDoneMsg reports the end of a build, successful or not.
type BuildDoneMsg struct {
	Path string
	Err  error
}

// Model contains the Bubbletea state for a deck build.
type Model struct {
	title          string
	themeName      string
	spinner        spinner.Model
	slides         []components.SlideEntry
	total          int
	path           string
	err            error
	finished       bool
	cancelled      bool
	nonInteractive bool
}

// NewModel constructs a build model for a deck of sectionCount content
// slides. The title and closing slides are counted in the total.
func NewModel(title, themeName string, sectionCount int, nonInteractive bool) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = runningStyle
	return Model{
		title:          title,
		themeName:      themeName,
		spinner:        s,
		total:          sectionCount + 2,
		nonInteractive: nonInteractive,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	if m.nonInteractive {
		return nil
	}
	return m.spinner.Tick
}

// TotalSlides returns the expected slide count.
func (m Model) TotalSlides() int {
	return m.total
}

// PlannedSlides returns the number of slides planned so far.
func (m Model) PlannedSlides() int {
	return len(m.slides)
}

// IsFinished reports whether the build has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

// Err returns the build error, if any.
func (m Model) Err() error {
	return m.err
}
