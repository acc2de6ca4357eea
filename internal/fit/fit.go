// Package fit shrinks text so that content stays legible inside its box.
//
// The heuristic only looks at paragraph and character counts; a single very
// long unbroken token can still overflow and that is accepted.
package fit

import (
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/deckgen/internal/plan"
)

// Target returns the point size for a text block with the given total
// character count and number of non-blank paragraphs.
func Target(totalChars, nonEmpty int) float64 {
	switch {
	case nonEmpty > 4 || totalChars > 400:
		return 13
	case nonEmpty > 3 || totalChars > 300:
		return 14
	case totalChars > 200:
		return 16
	default:
		return 18
	}
}

// Measure returns the character count and non-blank paragraph count of text.
func Measure(text *plan.Text) (totalChars, nonEmpty int) {
	if text == nil {
		return 0, 0
	}
	for _, p := range text.Paragraphs {
		content := p.Text()
		totalChars += utf8.RuneCountInString(content)
		if strings.TrimSpace(content) != "" {
			nonEmpty++
		}
	}
	return totalChars, nonEmpty
}

// Fit returns a copy of slide with FitShape applied to every text-bearing
// shape. The input is left untouched.
func Fit(slide plan.Slide) plan.Slide {
	out := slide.Clone()
	for i := range out.Shapes {
		out.Shapes[i] = FitShape(out.Shapes[i])
	}
	return out
}

// FitShape caps every run at the target size, fills in unset sizes, enables
// word wrap and anchors text to the top of its box. Sizes are never raised.
func FitShape(shape plan.Shape) plan.Shape {
	if shape.Text == nil {
		return shape
	}
	out := shape.Clone()
	target := Target(Measure(out.Text))

	for pi := range out.Text.Paragraphs {
		runs := out.Text.Paragraphs[pi].Runs
		for ri := range runs {
			if runs[ri].Size == 0 || runs[ri].Size > target {
				runs[ri].Size = target
			}
		}
	}
	out.Text.WordWrap = true
	out.Text.Anchor = plan.AnchorTop
	return out
}
