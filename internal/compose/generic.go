package compose

import (
	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

var defaultPlaceholder = color.New(60, 60, 60)

// positional maps a variant to its image region and bullet text region.
var positional = map[layout.Variant]struct{ image, body plan.Box }{
	layout.Right:  {image: plan.At(6.5, 1.8, 3, 5), body: plan.At(0.5, 1.8, 5.5, 5)},
	layout.Left:   {image: plan.At(0.5, 1.8, 3.5, 5), body: plan.At(4.5, 1.8, 5, 5)},
	layout.Top:    {image: plan.At(2, 1.5, 6, 2.5), body: plan.At(0.5, 4.3, 9, 2.8)},
	layout.Bottom: {image: plan.At(2, 4.6, 6, 2.5), body: plan.At(0.5, 1.5, 9, 2.8)},
	layout.Center: {image: plan.At(2, 5.2, 6, 1.9), body: plan.At(1, 1.8, 8, 3.2)},
}

func genericTitle(t theme.Theme, c Content) plan.Slide {
	return solidSlide(t.Background,
		anchored(text("title", plan.At(1, 2.5, 8, 2), plan.AlignCenter,
			titleStyle(t, 54, t.TitleTextColor(t.Text)), c.Title), plan.AnchorMiddle),
		text("presenter", plan.At(1, 4.8, 8, 0.6), plan.AlignCenter,
			plan.Style{Font: t.BodyFont, Size: 24, Italic: true, Color: t.TitleTextColor(t.Secondary)}, "By "+c.Presenter),
	)
}

func genericContent(t theme.Theme, step layout.Step, c Content) plan.Slide {
	slide := solidSlide(t.ContentBackgroundColor())

	titleBox := plan.At(0.5, 0.5, 9, 0.8)
	if t.TitleBar && !t.Custom {
		slide.Shapes = append(slide.Shapes, plan.Rect(plan.KindRectangle, plan.At(0, 0, plan.CanvasWidth, 1), t.Primary))
		titleBox = plan.At(0.5, 0.15, 9, 0.7)
	}

	titleColor := t.ContentTextColor()
	if t.Custom {
		titleColor = t.Primary
	}
	slide.Shapes = append(slide.Shapes, text("title", titleBox, plan.AlignLeft, titleStyle(t, t.TitleSize, titleColor), c.Title))

	geometry, ok := positional[step.Variant]
	if !ok {
		geometry = positional[layout.Right]
	}
	body := geometry.body
	if !c.IncludeImages {
		body = plan.At(0.5, body.Top, 9, body.Height)
	}

	slide.Shapes = append(slide.Shapes, plan.Placeholder(geometry.image, placeholderOr(t, defaultPlaceholder), border(t.Accent, 2)))

	align := plan.AlignLeft
	if step.Variant == layout.Center {
		align = plan.AlignCenter
	}
	style := bodyStyle(t, t.BodySize, t.ContentTextColor())
	paragraphs := make([]plan.Paragraph, 0, len(c.Bullets))
	for _, b := range c.Bullets {
		paragraphs = append(paragraphs, plan.Line(align, style.Run("• "+b)))
	}
	slide.Shapes = append(slide.Shapes, plan.TextBox("bullets", body, paragraphs...))
	return slide
}
