package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
)

func TestEntryFor(t *testing.T) {
	t.Parallel()

	slide := plan.Slide{
		Index:     3,
		Role:      plan.RoleContent,
		Variant:   "right",
		Structure: "body2",
		Shapes: []plan.Shape{
			plan.Rect(plan.KindRectangle, plan.At(0, 0, 10, 1), color.Black),
			plan.TextBox("title", plan.At(0.5, 0.3, 9, 1), plan.Line(plan.AlignLeft, plan.Run{Text: "  Growth  "})),
			plan.TextBox("bullets", plan.At(0.5, 2, 5, 4), plan.Line(plan.AlignLeft, plan.Run{Text: "• one"})),
		},
	}

	entry := EntryFor(slide)
	require.Equal(t, SlideEntry{Index: 3, Role: plan.RoleContent, Title: "Growth", Layout: "right/body2"}, entry)
}

func TestEntryForFallsBackToRole(t *testing.T) {
	t.Parallel()

	entry := EntryFor(plan.Slide{Role: plan.RoleClosing})
	require.Equal(t, "closing", entry.Title)
	require.Empty(t, entry.Layout)

	entry = EntryFor(plan.Slide{Role: plan.RoleContent, Structure: "body1"})
	require.Equal(t, "body1", entry.Layout)
}
