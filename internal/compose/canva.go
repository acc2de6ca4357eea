package compose

import (
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

var canvaDefaultRegion = plan.At(6.5, 1.5, 3, 4)

func canvaTitle(t theme.Theme, c Content) plan.Slide {
	slide := solidSlide(t.Background,
		text("title", plan.At(1, 2.5, 8, 2), plan.AlignCenter, titleStyle(t, 54, t.TitleTextColor(t.Text)), c.Title),
	)
	if c.Presenter != "" {
		slide.Shapes = append(slide.Shapes, text("presenter", plan.At(1, 4.8, 8, 0.6), plan.AlignCenter,
			plan.Style{Font: t.BodyFont, Size: 24, Italic: true, Color: t.Text}, "By "+c.Presenter))
	}
	return slide
}

// canvaContent places the title and bullets on the left and the theme's
// fixed image region on the right; without images the text spans the slide.
func canvaContent(t theme.Theme, _ layout.Step, c Content) plan.Slide {
	width := 5.5
	if !c.IncludeImages {
		width = 9
	}

	slide := solidSlide(t.Background,
		text("title", plan.At(0.5, 0.5, width, 1), plan.AlignLeft, titleStyle(t, t.TitleSize, t.TitleTextColor(t.Text)), c.Title),
	)

	style := bodyStyle(t, t.BodySize, t.Text)
	paragraphs := make([]plan.Paragraph, 0, len(c.Bullets))
	for _, b := range c.Bullets {
		paragraphs = append(paragraphs, plan.Line(plan.AlignLeft, style.Run(b)))
	}
	slide.Shapes = append(slide.Shapes, plan.TextBox("bullets", plan.At(0.5, 1.8, width, 4.5), paragraphs...))

	region := canvaDefaultRegion
	if t.ImageRegion != nil {
		region = *t.ImageRegion
	}
	label := plan.TextBox(imageLabel, region, plan.Line(plan.AlignCenter, plan.Run{Text: "IMAGE", Size: 24, Color: t.Text}))
	label.Text.Anchor = plan.AnchorMiddle
	slide.Shapes = append(slide.Shapes, plan.Placeholder(region, t.Accent, border(t.Text, 2)), label)
	return slide
}
