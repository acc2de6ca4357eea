package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
)

// Swatch renders a labelled color block with its hex code drawn in the
// contrasting text color.
func Swatch(label string, c color.RGB) string {
	hex := color.ToHex(c)
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(color.ToHex(color.Contrasting(c)))).
		Padding(0, 1).
		Render(hex)
	return fmt.Sprintf("%-12s%s", label, block)
}

// Gradient renders width cells blending from start to end.
func Gradient(start, end color.RGB, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for i := range width {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		cell := lipgloss.NewStyle().Background(lipgloss.Color(color.ToHex(color.Blend(start, end, t))))
		b.WriteString(cell.Render(" "))
	}
	return b.String()
}
