package compose

import (
	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

var (
	sunsetDeep  = color.New(255, 140, 0)
	sunsetLight = color.New(255, 200, 100)
	sunsetInk   = color.New(120, 90, 60)
)

func sunsetBackground() plan.Fill {
	return plan.Gradient(sunsetDeep, sunsetLight, 90)
}

func sunsetTitle(t theme.Theme, c Content) plan.Slide {
	return plan.Slide{
		Background: sunsetBackground(),
		Shapes: []plan.Shape{
			anchored(text("title", plan.At(1, 2.5, 8, 1.5), plan.AlignCenter,
				titleStyle(t, 60, t.TitleTextColor(color.Black)), c.Title), plan.AnchorMiddle),
			text("presenter", plan.At(1, 4.5, 8, 0.8), plan.AlignCenter,
				bodyStyle(t, 28, sunsetInk), "Presented By "+c.Presenter),
		},
	}
}

func sunsetContent(t theme.Theme, step layout.Step, c Content) plan.Slide {
	if step.Structure == layout.Body2 {
		return sunsetBody2(t, c)
	}
	return sunsetBody1(t, c)
}

// sunsetBody1 puts three dash bullets on the left and a rounded image
// region on the right.
func sunsetBody1(t theme.Theme, c Content) plan.Slide {
	heading := plan.Style{Font: t.BodyFont, Size: 36, Bold: true, Color: t.TitleTextColor(color.Black)}
	slide := plan.Slide{
		Background: sunsetBackground(),
		Shapes:     []plan.Shape{text("title", plan.At(0.5, 0.5, 5, 0.8), plan.AlignLeft, heading, c.Title)},
	}

	column := bulletColumn{
		markerBox: func(y float64) plan.Box { return plan.At(0.6, y, 0.3, 0.5) },
		marker:    bodyStyle(t, 32, sunsetInk),
		markerTxt: "-",
		markerAln: plan.AlignLeft,
		textBox:   func(y float64) plan.Box { return plan.At(1.1, y, 4.5, 1.0) },
		style:     bodyStyle(t, 20, sunsetInk),
		align:     plan.AlignLeft,
		start:     2.0,
		step:      1.3,
	}
	slide.Shapes = append(slide.Shapes, column.shapes(Truncate(c.Bullets, 3), nil)...)
	slide.Shapes = append(slide.Shapes,
		plan.Placeholder(plan.At(6.0, 2.0, 3.5, 4.5), color.New(200, 200, 200), nil).Shaped(plan.KindRoundedRectangle))
	return slide
}

// sunsetBody2 centers the title, overlaps two round image regions on the
// left and lists four dash bullets on the right.
func sunsetBody2(t theme.Theme, c Content) plan.Slide {
	heading := plan.Style{Font: t.BodyFont, Size: 36, Bold: true, Color: t.TitleTextColor(color.Black)}
	slide := plan.Slide{
		Background: sunsetBackground(),
		Shapes: []plan.Shape{
			text("title", plan.At(2, 0.5, 6, 0.8), plan.AlignCenter, heading, c.Title),
			plan.Placeholder(plan.At(0.8, 2.5, 3, 3), color.New(220, 220, 220), nil).Shaped(plan.KindOval),
			plan.Placeholder(plan.At(2.2, 3.0, 3, 3), color.New(200, 200, 200), nil).Shaped(plan.KindOval),
		},
	}

	column := bulletColumn{
		markerBox: func(y float64) plan.Box { return plan.At(5.5, y, 0.3, 0.5) },
		marker:    bodyStyle(t, 32, sunsetInk),
		markerTxt: "-",
		markerAln: plan.AlignLeft,
		textBox:   func(y float64) plan.Box { return plan.At(6.0, y, 3.5, 0.9) },
		style:     bodyStyle(t, 18, sunsetInk),
		align:     plan.AlignLeft,
		start:     2.2,
		step:      1.0,
	}
	slide.Shapes = append(slide.Shapes, column.shapes(Truncate(c.Bullets, 4), nil)...)
	return slide
}
