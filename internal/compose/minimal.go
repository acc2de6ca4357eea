package compose

import (
	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

const pointInches = 1.0 / 72.0

var minimalFrame = color.New(140, 140, 140)

func minimalTitle(t theme.Theme, c Content) plan.Slide {
	return solidSlide(t.Background,
		text("title", plan.At(1, 0.5, 8, 1), plan.AlignCenter, titleStyle(t, 54, t.Text), c.Title),
		plan.Rect(plan.KindRectangle, plan.At(0.4, 1.6, 9.2, 2*pointInches), t.Text),
		text("presenter", plan.At(1, 1.8, 8, 0.5), plan.AlignCenter,
			plan.Style{Font: t.BodyFont, Size: 22, Italic: true, Color: t.Secondary}, "["+c.Presenter+"]"),
		plan.Rect(plan.KindRectangle, plan.At(2.5, 2.8, 5, 3.5), minimalFrame),
	)
}

// minimalContent keeps an italic underlined title over three bullets with a
// tall image region beside them. Left and top variants swap the sides.
func minimalContent(t theme.Theme, step layout.Step, c Content) plan.Slide {
	textLeft, imageLeft := 0.5, 6.2
	if step.Variant == layout.Left || step.Variant == layout.Top {
		textLeft, imageLeft = 4.2, 0.5
	}

	heading := plan.Style{Font: t.TitleFont, Size: 48, Italic: true, Color: t.Secondary}
	slide := solidSlide(t.Background,
		text("title", plan.At(textLeft, 0.8, 5, 0.8), plan.AlignLeft, heading, c.Title),
		plan.Rect(plan.KindRectangle, plan.At(textLeft, 1.65, 5.5, 2*pointInches), t.Secondary),
	)

	column := bulletColumn{
		textBox: func(y float64) plan.Box { return plan.At(textLeft+0.3, y, 4.5, 0.6) },
		style:   bodyStyle(t, 24, t.Secondary),
		align:   plan.AlignLeft,
		prefix:  "• ",
		start:   2.3,
		step:    1.1,
	}
	slide.Shapes = append(slide.Shapes, column.shapes(Truncate(c.Bullets, 3), nil)...)
	slide.Shapes = append(slide.Shapes, plan.Placeholder(plan.At(imageLeft, 0.8, 3.3, 6.2), minimalFrame, nil))
	return slide
}
