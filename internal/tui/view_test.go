package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

func titled(index int, role plan.Role, variant, text string) plan.Slide {
	return plan.Slide{
		Index:   index,
		Role:    role,
		Variant: variant,
		Shapes: []plan.Shape{
			plan.TextBox("title", plan.At(0, 0, 10, 1), plan.Line(plan.AlignLeft, plan.Run{Text: text, Color: color.Black})),
		},
	}
}

func TestViewRendersBuildProgress(t *testing.T) {
	m := NewModel("Quarterly Review", "Ocean Blue", 2, true)
	for _, s := range []plan.Slide{
		titled(0, plan.RoleTitle, "", "Quarterly Review"),
		titled(1, plan.RoleContent, "right", "Growth"),
	} {
		updated, _ := m.Update(SlidePlannedMsg{Slide: s})
		m = updated.(Model)
	}

	view := m.View()
	require.Contains(t, view, "Quarterly Review")
	require.Contains(t, view, "Ocean Blue")
	require.Contains(t, view, "Growth")
	require.Contains(t, view, "[right]")
	require.Contains(t, view, "2/4")
}

func TestViewShowsOutcome(t *testing.T) {
	m := NewModel("", "", 0, true)
	updated, _ := m.Update(BuildDoneMsg{Path: "out/deck.pptx"})
	view := updated.(Model).View()
	require.Contains(t, view, "Untitled deck")
	require.Contains(t, view, "Written to out/deck.pptx")

	updated, _ = m.Update(BuildDoneMsg{Err: errors.New("disk full")})
	require.Contains(t, updated.(Model).View(), "disk full")
}

func TestRoleIcon(t *testing.T) {
	t.Parallel()

	require.Contains(t, RoleIcon(plan.RoleTitle), "◆")
	require.Contains(t, RoleIcon(plan.RoleContent), "•")
	require.Contains(t, RoleIcon(plan.RoleClosing), "■")
}

func TestPreviewListsPaletteAndRotation(t *testing.T) {
	t.Parallel()

	sunset, ok := theme.Lookup("Sunset Orange")
	require.True(t, ok)

	view := Preview(sunset, []plan.Slide{titled(0, plan.RoleTitle, "", "Sample")})
	require.Contains(t, view, "Sunset Orange")
	require.Contains(t, view, "Palette")
	require.Contains(t, view, color.ToHex(sunset.Accent))
	require.Contains(t, view, "structures body1 → body2")
	require.Contains(t, view, "Sample deck")
	require.Contains(t, view, "Sample")
}
