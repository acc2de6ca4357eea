package tui

import "github.com/charmbracelet/lipgloss"

// Palette borrowed from the default deck theme: black, gold, muted gray.
var (
	gold  = lipgloss.Color("#FFD700")
	ink   = lipgloss.Color("#1F4E79")
	slate = lipgloss.Color("245")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(gold)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ink).MarginTop(1)

	successStyle = lipgloss.NewStyle().Foreground(gold)
	runningStyle = lipgloss.NewStyle().Foreground(ink)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C00000")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(slate).Italic(true)
	summaryStyle = lipgloss.NewStyle().MarginTop(1).PaddingLeft(1)
)
