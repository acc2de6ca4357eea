package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts for rendering summaries.
type SummaryData struct {
	Total     int
	Planned   int
	Finished  bool
	Cancelled bool
	Path      string
	Err       error
}

// Summary renders a textual build summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Total > 0 {
		lines = append(lines, fmt.Sprintf("Slides: %d/%d planned", s.data.Planned, s.data.Total))
	}

	switch {
	case s.data.Cancelled:
		lines = append(lines, "Build cancelled")
	case s.data.Err != nil:
		lines = append(lines, fmt.Sprintf("Build failed: %v", s.data.Err))
	case s.data.Finished && s.data.Path != "":
		lines = append(lines, fmt.Sprintf("Written to %s", s.data.Path))
	case s.data.Finished:
		lines = append(lines, "Build finished")
	}

	return strings.Join(lines, "\n")
}
