package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
	"github.com/alexisbeaulieu97/deckgen/internal/tui/components"
)

const gradientWidth = 24

// Preview renders a theme's palette, fonts and layout rotation, followed by
// the outline of a sample deck planned with it.
func Preview(t theme.Theme, sample []plan.Slide) string {
	sections := []string{titleStyle.Render(fmt.Sprintf("%s (%s)", t.Name, t.ID))}
	if t.Description != "" {
		sections = append(sections, mutedStyle.Render(t.Description))
	}

	palette := []string{
		components.Swatch("background", t.Background),
		components.Swatch("content", t.ContentBackgroundColor()),
		components.Swatch("primary", t.Primary),
		components.Swatch("secondary", t.Secondary),
		components.Swatch("text", t.ContentTextColor()),
		components.Swatch("accent", t.Accent),
		fmt.Sprintf("%-12s%s", "blend", components.Gradient(t.Background, t.Accent, gradientWidth)),
	}
	sections = append(sections, sectionStyle.Render("Palette"), strings.Join(palette, "\n"))

	typography := fmt.Sprintf("title  %s %gpt\nbody   %s %gpt", t.TitleFont, t.TitleSize, t.BodyFont, t.BodySize)
	sections = append(sections, sectionStyle.Render("Typography"), typography)

	rotation := "positions  " + joinVariants(t.Positions())
	if structures := t.Structures(); len(structures) > 0 {
		rotation += "\nstructures " + joinVariants(structures)
	}
	sections = append(sections, sectionStyle.Render("Layouts"), rotation)

	if len(sample) > 0 {
		entries := make([]components.SlideEntry, 0, len(sample))
		for _, s := range sample {
			entries = append(entries, components.EntryFor(s))
		}
		sections = append(sections, sectionStyle.Render("Sample deck"), renderSlideEntries(entries))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func joinVariants(variants []layout.Variant) string {
	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, string(v))
	}
	return strings.Join(names, " → ")
}
