package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	header := titleStyle.Render(fmt.Sprintf("deckgen • %s", m.heading()))
	if m.themeName != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Left, header, mutedStyle.Render("  "+m.themeName))
	}
	sections = append(sections, header)

	bar := components.NewSlideMeter(m.total).View(len(m.slides))
	if !m.finished && !m.nonInteractive {
		bar = lipgloss.JoinHorizontal(lipgloss.Left, m.spinner.View(), " ", bar)
	}
	sections = append(sections, sectionStyle.Render("Slides"), bar)

	if len(m.slides) > 0 {
		sections = append(sections, renderSlideEntries(m.slides))
	}

	summary := components.NewSummary(components.SummaryData{
		Total:     m.total,
		Planned:   len(m.slides),
		Finished:  m.finished,
		Cancelled: m.cancelled,
		Path:      m.path,
		Err:       m.err,
	}).View()
	if m.err != nil {
		summary = failureStyle.Render(summary)
	}
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderSlideEntries(entries []components.SlideEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		line := fmt.Sprintf(" %s %2d %s", RoleIcon(entry.Role), entry.Index+1, entry.Title)
		if entry.Layout != "" {
			line = fmt.Sprintf("%s %s", line, mutedStyle.Render("["+entry.Layout+"]"))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) heading() string {
	if strings.TrimSpace(m.title) != "" {
		return m.title
	}
	return "Untitled deck"
}

// RoleIcon returns the glyph representing a slide role.
func RoleIcon(role plan.Role) string {
	switch role {
	case plan.RoleTitle:
		return successStyle.Render("◆")
	case plan.RoleClosing:
		return successStyle.Render("■")
	default:
		return runningStyle.Render("•")
	}
}
