// Package compose turns a theme, a layout step and slide content into a
// shape plan. Each theme family is a recipe: a closed set of pure functions
// selected by the theme's Recipe tag.
package compose

import (
	"fmt"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

// Content is the text placed on one slide.
type Content struct {
	Title     string
	Bullets   []string
	Presenter string
	// IncludeImages controls image placeholder regions on content slides.
	IncludeImages bool
}

// ClosingText is the headline of every closing slide.
const ClosingText = "Thank You"

type recipe struct {
	title   func(t theme.Theme, c Content) plan.Slide
	content func(t theme.Theme, step layout.Step, c Content) plan.Slide
}

var recipes = map[theme.Recipe]recipe{
	theme.RecipeGeneric:  {title: genericTitle, content: genericContent},
	theme.RecipeSunset:   {title: sunsetTitle, content: sunsetContent},
	theme.RecipeMinimal:  {title: minimalTitle, content: minimalContent},
	theme.RecipeOcean:    {title: oceanTitle, content: oceanContent},
	theme.RecipeRedWhite: {title: redTitle, content: redContent},
	theme.RecipeBusiness: {title: businessTitle, content: businessContent},
	theme.RecipeCanva:    {title: canvaTitle, content: canvaContent},
}

// Compose builds the plan for one slide. A theme whose recipe is not
// registered is a programming error and panics.
func Compose(t theme.Theme, step layout.Step, content Content, role plan.Role) (plan.Slide, error) {
	r, ok := recipes[t.Recipe]
	if !ok {
		panic(fmt.Sprintf("compose: no recipe registered for %q (theme %q)", t.Recipe, t.Name))
	}

	var slide plan.Slide
	switch role {
	case plan.RoleTitle:
		slide = r.title(t, content)
	case plan.RoleContent:
		slide = r.content(t, step, content)
		slide.Variant = string(step.Variant)
		slide.Structure = string(step.Structure)
		if !content.IncludeImages {
			slide.Shapes = withoutImages(slide.Shapes)
		}
	case plan.RoleClosing:
		slide = closing(t)
	default:
		return plan.Slide{}, fmt.Errorf("unknown slide role %q", role)
	}

	slide.Role = role
	return slide, nil
}

// Truncate returns at most n bullets.
func Truncate(bullets []string, n int) []string {
	if len(bullets) > n {
		return bullets[:n]
	}
	return bullets
}

func withoutImages(shapes []plan.Shape) []plan.Shape {
	out := shapes[:0:0]
	for _, s := range shapes {
		if s.Kind == plan.KindPicturePlaceholder || s.Name == imageLabel {
			continue
		}
		out = append(out, s)
	}
	return out
}

const imageLabel = "image_label"

func titleStyle(t theme.Theme, size float64, c color.RGB) plan.Style {
	return plan.Style{Font: t.TitleFont, Size: size, Bold: true, Color: c}
}

func bodyStyle(t theme.Theme, size float64, c color.RGB) plan.Style {
	return plan.Style{Font: t.BodyFont, Size: size, Color: c}
}

func text(name string, box plan.Box, align plan.Align, style plan.Style, value string) plan.Shape {
	return plan.TextBox(name, box, plan.Line(align, style.Run(value)))
}

func anchored(shape plan.Shape, anchor plan.Anchor) plan.Shape {
	shape.Text.Anchor = anchor
	return shape
}

func border(c color.RGB, width float64) *plan.Border {
	return &plan.Border{Color: c, Width: width}
}

// placeholderOr is the theme's image placeholder color, or fallback when the
// theme leaves it to the recipe.
func placeholderOr(t theme.Theme, fallback color.RGB) color.RGB {
	if t.Placeholder != nil {
		return *t.Placeholder
	}
	return fallback
}

func solidSlide(bg color.RGB, shapes ...plan.Shape) plan.Slide {
	return plan.Slide{Background: plan.Solid(bg), Shapes: shapes}
}

// bulletColumn stacks one text box per bullet, each optionally preceded by a
// separate marker box, stepping down by step inches.
type bulletColumn struct {
	markerBox func(y float64) plan.Box
	marker    plan.Style
	markerTxt string
	markerAln plan.Align
	textBox   func(y float64) plan.Box
	style     plan.Style
	align     plan.Align
	prefix    string
	start     float64
	step      float64
}

func (b bulletColumn) shapes(bullets []string, transform func(string) string) []plan.Shape {
	var out []plan.Shape
	y := b.start
	for i, bullet := range bullets {
		if transform != nil {
			bullet = transform(bullet)
		}
		if b.markerBox != nil {
			out = append(out, text(fmt.Sprintf("marker_%d", i), b.markerBox(y), b.markerAln, b.marker, b.markerTxt))
		}
		out = append(out, text(fmt.Sprintf("bullet_%d", i), b.textBox(y), b.align, b.style, b.prefix+bullet))
		y += b.step
	}
	return out
}
