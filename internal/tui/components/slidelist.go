package components

import (
	"strings"

	"github.com/alexisbeaulieu97/deckgen/internal/plan"
)

// SlideEntry is one planned slide as shown in the build list.
type SlideEntry struct {
	Index  int
	Role   plan.Role
	Title  string
	Layout string
}

// EntryFor summarises a planned slide. The title is the text of the first
// text-bearing shape.
func EntryFor(s plan.Slide) SlideEntry {
	entry := SlideEntry{Index: s.Index, Role: s.Role, Layout: layoutLabel(s)}
	for _, shape := range s.Shapes {
		if !shape.HasText() {
			continue
		}
		if text := strings.TrimSpace(shape.Text.Paragraphs[0].Text()); text != "" {
			entry.Title = text
			break
		}
	}
	if entry.Title == "" {
		entry.Title = string(s.Role)
	}
	return entry
}

func layoutLabel(s plan.Slide) string {
	switch {
	case s.Variant != "" && s.Structure != "":
		return s.Variant + "/" + s.Structure
	case s.Structure != "":
		return s.Structure
	default:
		return s.Variant
	}
}
