package compose

import (
	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

var (
	redPaper   = color.New(240, 240, 235)
	redWine    = color.New(180, 30, 50)
	redFrame   = color.New(250, 250, 250)
	redOutline = color.New(100, 100, 100)
)

func redTitle(t theme.Theme, c Content) plan.Slide {
	triangle := plan.Rect(plan.KindRightTriangle, plan.At(6.5, 3, 4, 4.5), redWine)
	triangle.Rotation = 135

	frame := plan.Rect(plan.KindRectangle, plan.At(7, 1, 3, 5.5), redFrame)
	frame.Border = border(redOutline, 2)

	return solidSlide(redPaper,
		triangle,
		text("title", plan.At(0.5, 2, 5.5, 2), plan.AlignLeft, titleStyle(t, 72, t.Accent), c.Title),
		text("presenter", plan.At(0.5, 4, 5.5, 0.6), plan.AlignLeft,
			plan.Style{Font: t.BodyFont, Size: 28, Bold: true, Color: t.Accent}, "Presented by "+c.Presenter),
		frame,
	)
}

// redContent sets a wine triangle along the bottom edge, a framed image
// region and four red dash bullets. Right and bottom variants mirror the
// image to the right-hand side.
func redContent(t theme.Theme, step layout.Step, c Content) plan.Slide {
	imageLeft, markerLeft := 0.5, 5.2
	if step.Variant == layout.Right || step.Variant == layout.Bottom {
		imageLeft, markerLeft = 5.5, 0.5
	}

	slide := solidSlide(redPaper,
		plan.Rect(plan.KindRightTriangle, plan.At(0, 4.5, 10, 3), redWine),
		text("title", plan.At(1, 0.3, 8, 1), plan.AlignCenter, titleStyle(t, 60, t.Accent), c.Title),
		plan.Placeholder(plan.At(imageLeft, 1.8, 4, 3.5), placeholderOr(t, redFrame), border(redOutline, 2)),
	)

	column := bulletColumn{
		markerBox: func(y float64) plan.Box { return plan.At(markerLeft, y, 0.3, 0.4) },
		marker:    plan.Style{Font: t.BodyFont, Size: 40, Bold: true, Color: t.Accent},
		markerTxt: "-",
		markerAln: plan.AlignCenter,
		textBox:   func(y float64) plan.Box { return plan.At(markerLeft+0.6, y, 4, 0.8) },
		style:     plan.Style{Font: t.BodyFont, Size: 28, Bold: true, Color: t.Accent},
		align:     plan.AlignLeft,
		start:     2,
		step:      0.9,
	}
	slide.Shapes = append(slide.Shapes, column.shapes(Truncate(c.Bullets, 4), nil)...)
	return slide
}
