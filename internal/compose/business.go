package compose

import (
	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

// Background pictures used by the business recipe, resolved by the sink
// against its asset directory.
const (
	BusinessTitleAsset = "Business Black and Yellow Title Background.jpg"
	BusinessBody1Asset = "Business Black and Yellow Body 1 Background.jpg"
	BusinessBody2Asset = "Business Black and Yellow Body 2 Background.jpg"
)

var businessFrame = color.New(220, 220, 220)

func businessTitle(t theme.Theme, c Content) plan.Slide {
	return solidSlide(t.Background,
		plan.Picture(plan.FullBleed(), BusinessTitleAsset),
		text("title", plan.At(1, 2.5, 8, 1.5), plan.AlignCenter, titleStyle(t, 72, color.White), c.Title),
		text("presenter", plan.At(1, 4.2, 8, 0.7), plan.AlignCenter,
			plan.Style{Font: t.BodyFont, Size: 32, Bold: true, Color: color.White}, "Presented by "+c.Presenter),
	)
}

func businessContent(t theme.Theme, step layout.Step, c Content) plan.Slide {
	if step.Variant == layout.Center {
		return businessCenter(t, c)
	}
	return businessRight(t, c)
}

func businessRight(t theme.Theme, c Content) plan.Slide {
	slide := solidSlide(t.Background,
		plan.Picture(plan.FullBleed(), BusinessBody1Asset),
		text("title", plan.At(0.5, 0.5, 5, 0.8), plan.AlignLeft, titleStyle(t, 48, color.White), c.Title),
	)

	column := bulletColumn{
		textBox: func(y float64) plan.Box { return plan.At(0.8, y, 5, 0.8) },
		style:   plan.Style{Font: t.BodyFont, Size: 26, Bold: true, Color: color.White},
		align:   plan.AlignLeft,
		prefix:  "- ",
		start:   2,
		step:    1.2,
	}
	slide.Shapes = append(slide.Shapes, column.shapes(Truncate(c.Bullets, 3), nil)...)

	frame := businessPlaceholder(t, plan.At(6.5, 1.8, 3, 3))
	ink := color.Contrasting(frame.Fill.Color)
	label := plan.TextBox(imageLabel, plan.At(6.5, 2.8, 3, 1),
		plan.Line(plan.AlignCenter, plan.Run{Text: "INPUT", Font: "Arial", Size: 24, Color: ink}),
		plan.Line(plan.AlignCenter, plan.Run{Text: "IMAGE", Font: "Arial", Size: 24, Color: ink}),
	)
	slide.Shapes = append(slide.Shapes, frame, label)
	return slide
}

// businessCenter centers four bullets under the title with a narrow image
// strip along the left edge.
func businessCenter(t theme.Theme, c Content) plan.Slide {
	slide := solidSlide(t.Background,
		plan.Picture(plan.FullBleed(), BusinessBody2Asset),
		text("title", plan.At(1, 0.8, 8, 0.8), plan.AlignCenter, titleStyle(t, 52, color.White), c.Title),
	)

	column := bulletColumn{
		textBox: func(y float64) plan.Box { return plan.At(2.5, y, 5, 0.8) },
		style:   plan.Style{Font: t.BodyFont, Size: 26, Bold: true, Color: color.White},
		align:   plan.AlignCenter,
		prefix:  "- ",
		start:   2.2,
		step:    1.1,
	}
	slide.Shapes = append(slide.Shapes, column.shapes(Truncate(c.Bullets, 4), nil)...)
	slide.Shapes = append(slide.Shapes, businessPlaceholder(t, plan.At(0.4, 2.2, 1.8, 4.4)))
	return slide
}

// businessPlaceholder is the image frame shared by both content variants.
func businessPlaceholder(t theme.Theme, box plan.Box) plan.Shape {
	return plan.Placeholder(box, placeholderOr(t, businessFrame), border(t.Accent, 2))
}
