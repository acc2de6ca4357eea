package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const meterWidth = 32

var counterStyle = lipgloss.NewStyle().Bold(true)

// SlideMeter shows how far a deck build has progressed. The total grows
// when more slides are planned than announced.
type SlideMeter struct {
	bar   progress.Model
	total int
}

// NewSlideMeter returns a meter for a deck expected to hold total slides.
func NewSlideMeter(total int) SlideMeter {
	bar := progress.New(
		progress.WithGradient("#1F4E79", "#FFD700"),
		progress.WithWidth(meterWidth),
		progress.WithoutPercentage(),
	)
	return SlideMeter{bar: bar, total: total}
}

// Ratio is the filled fraction, capped at one.
func (m SlideMeter) Ratio(planned int) float64 {
	if m.total <= 0 || planned <= 0 {
		return 0
	}
	if planned >= m.total {
		return 1
	}
	return float64(planned) / float64(m.total)
}

// View renders the bar followed by a planned/total counter.
func (m SlideMeter) View(planned int) string {
	counter := counterStyle.Render(fmt.Sprintf("%d/%d slides", planned, m.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, m.bar.ViewAs(m.Ratio(planned)), "  ", counter)
}
