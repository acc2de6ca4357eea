package compose

import (
	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

func closing(t theme.Theme) plan.Slide {
	var slide plan.Slide
	switch t.Recipe {
	case theme.RecipeSunset:
		slide.Background = plan.Gradient(color.New(255, 140, 0), color.New(160, 160, 160), 90)
	case theme.RecipeBusiness:
		slide.Background = plan.Solid(t.Background)
		slide.Shapes = append(slide.Shapes, plan.Picture(plan.FullBleed(), BusinessTitleAsset))
	default:
		slide.Background = plan.Solid(t.Background)
	}

	var c color.RGB
	switch {
	case t.Custom:
		c = t.Primary
	case t.TitleText != nil:
		c = *t.TitleText
	case t.Recipe == theme.RecipeRedWhite:
		c = t.Accent
	default:
		c = t.Text
	}

	slide.Shapes = append(slide.Shapes, anchored(
		text("closing", plan.At(1, 3, 8, 1.5), plan.AlignCenter, titleStyle(t, 72, c), ClosingText),
		plan.AnchorMiddle))
	return slide
}
