package compose

import (
	"strings"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

var (
	oceanSea   = color.New(0, 120, 215)
	oceanPanel = color.New(0, 80, 150)
	oceanSky   = color.New(135, 206, 235)
)

func oceanTitle(t theme.Theme, c Content) plan.Slide {
	titlePanel := plan.Rect(plan.KindRoundedRectangle, plan.At(0.5, 0.5, 6.5, 4.5), oceanPanel)
	titlePanel.Name = "title"
	titlePanel.Text = &plan.Text{
		Paragraphs: []plan.Paragraph{plan.Line(plan.AlignLeft, titleStyle(t, 60, color.White).Run(c.Title))},
		WordWrap:   true,
		Anchor:     plan.AnchorTop,
	}

	presenter := plan.Rect(plan.KindRoundedRectangle, plan.At(0.5, 5.5, 4, 1.8), oceanPanel)
	presenter.Name = "presenter"
	presenter.Text = &plan.Text{
		Paragraphs: []plan.Paragraph{plan.Line(plan.AlignLeft, bodyStyle(t, 20, color.White).Run("Presented by ["+c.Presenter+"]"))},
		Anchor:     plan.AnchorMiddle,
	}

	return solidSlide(oceanSea,
		titlePanel,
		presenter,
		plan.Rect(plan.KindRoundedRectangle, plan.At(4.8, 5.5, 1.9, 1.8), oceanSky),
	)
}

// oceanContent draws one dark rounded panel holding the title, three
// upper-case bullets and an image region whose position follows the variant.
func oceanContent(t theme.Theme, step layout.Step, c Content) plan.Slide {
	slide := solidSlide(oceanSea,
		plan.Rect(plan.KindRoundedRectangle, plan.At(0.8, 0.8, 8.4, 6), oceanPanel),
		text("title", plan.At(1.2, 1.3, 7.6, 1.2), plan.AlignLeft, titleStyle(t, 54, color.White), c.Title),
	)

	var image plan.Box
	column := bulletColumn{
		style:  plan.Style{Font: t.BodyFont, Size: 24, Bold: true, Color: color.White},
		align:  plan.AlignLeft,
		prefix: "• ",
		start:  3,
		step:   1.3,
	}
	switch step.Variant {
	case layout.Left:
		image = plan.At(1.2, 3.0, 2.4, 3.4)
		column.textBox = func(y float64) plan.Box { return plan.At(4.0, y, 4.8, 0.8) }
	case layout.Top:
		image = plan.At(1.5, 2.6, 7, 1.4)
		column.start, column.step = 4.1, 0.9
		column.textBox = func(y float64) plan.Box { return plan.At(1.5, y, 7, 0.8) }
	case layout.Bottom:
		image = plan.At(1.5, 5.4, 7, 1.2)
		column.start, column.step = 2.7, 0.9
		column.textBox = func(y float64) plan.Box { return plan.At(1.5, y, 7, 0.8) }
	default:
		image = plan.At(6.4, 3.0, 2.4, 3.4)
		column.textBox = func(y float64) plan.Box { return plan.At(1.5, y, 4.7, 0.8) }
	}

	slide.Shapes = append(slide.Shapes, column.shapes(Truncate(c.Bullets, 3), strings.ToUpper)...)
	slide.Shapes = append(slide.Shapes,
		plan.Placeholder(image, oceanSky, border(t.Accent, 2)).Shaped(plan.KindRoundedRectangle))
	return slide
}
