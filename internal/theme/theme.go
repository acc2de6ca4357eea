// Package theme resolves a theme name or a custom style description into an
// immutable Theme value.
package theme

import (
	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
)

// Recipe tags the composer recipe that renders a theme.
type Recipe string

const (
	RecipeGeneric  Recipe = "generic"
	RecipeSunset   Recipe = "sunset"
	RecipeMinimal  Recipe = "minimal"
	RecipeOcean    Recipe = "ocean"
	RecipeRedWhite Recipe = "redwhite"
	RecipeBusiness Recipe = "business"
	RecipeCanva    Recipe = "canva"
)

// DefaultName is used whenever a requested theme is unknown.
const DefaultName = "Business Black and Yellow"

// Default fallbacks applied to custom styles and themes that do not set them.
const (
	DefaultFont      = "Arial"
	DefaultTitleSize = 36
	DefaultBodySize  = 18
)

// Theme is an immutable palette, font and layout bundle. Copy it freely; the
// variant slices are only reachable through copying accessors.
type Theme struct {
	ID     string
	Name   string
	Recipe Recipe
	Custom bool

	Primary    color.RGB
	Secondary  color.RGB
	Text       color.RGB
	Accent     color.RGB
	Background color.RGB

	// Optional overrides; nil means "use the base palette entry".
	ContentBackground *color.RGB
	TitleText         *color.RGB
	ContentText       *color.RGB
	Placeholder       *color.RGB

	TitleFont string
	BodyFont  string
	TitleSize float64
	BodySize  float64

	// TitleBar draws a primary-colored band behind content titles.
	TitleBar bool
	// ImageRegion pins the image placeholder to a fixed box.
	ImageRegion *plan.Box

	Description string
	Mood        string

	variants   []layout.Variant
	structures []layout.Variant
}

// Positions returns the positional variants in rotation order.
func (t Theme) Positions() []layout.Variant {
	return append([]layout.Variant(nil), t.variants...)
}

// Structures returns the structural variants in rotation order, if any.
func (t Theme) Structures() []layout.Variant {
	return append([]layout.Variant(nil), t.structures...)
}

// ContentBackgroundColor is the background used on content slides.
func (t Theme) ContentBackgroundColor() color.RGB {
	if t.ContentBackground != nil {
		return *t.ContentBackground
	}
	return t.Background
}

// ContentTextColor is the body text color used on content slides.
func (t Theme) ContentTextColor() color.RGB {
	if t.ContentText != nil {
		return *t.ContentText
	}
	return t.Text
}

// TitleTextColor is the title color on title and closing slides, falling
// back to fallback when the theme defines no override.
func (t Theme) TitleTextColor(fallback color.RGB) color.RGB {
	if t.TitleText != nil {
		return *t.TitleText
	}
	return fallback
}

// Summary is a listing entry for the catalog.
type Summary struct {
	ID         string
	Name       string
	Recipe     Recipe
	Background color.RGB
	Accent     color.RGB
	Variants   []layout.Variant
}

func (t Theme) summary() Summary {
	return Summary{
		ID:         t.ID,
		Name:       t.Name,
		Recipe:     t.Recipe,
		Background: t.Background,
		Accent:     t.Accent,
		Variants:   t.Positions(),
	}
}

func rgbPtr(c color.RGB) *color.RGB {
	return &c
}
