package theme

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	"github.com/alexisbeaulieu97/deckgen/internal/plan"
)

var (
	rightLeftTopBottom = []layout.Variant{layout.Right, layout.Left, layout.Top, layout.Bottom}
	leftRightTopBottom = []layout.Variant{layout.Left, layout.Right, layout.Top, layout.Bottom}
)

func predefined(name string, recipe Recipe, font string, primary, secondary, text, accent, background color.RGB, variants []layout.Variant) Theme {
	return Theme{
		ID:         slug(name),
		Name:       name,
		Recipe:     recipe,
		Primary:    primary,
		Secondary:  secondary,
		Text:       text,
		Accent:     accent,
		Background: background,
		TitleFont:  font,
		BodyFont:   font,
		TitleSize:  DefaultTitleSize,
		BodySize:   DefaultBodySize,
		variants:   variants,
	}
}

func buildCatalog() []Theme {
	business := predefined("Business Black and Yellow", RecipeBusiness, "Roboto Black",
		color.New(255, 200, 0), color.Black, color.White, color.New(255, 200, 0), color.Black,
		[]layout.Variant{layout.Right, layout.Center})
	business.Placeholder = rgbPtr(color.New(40, 40, 40))

	autumn := predefined("Autumn Brown and Orange", RecipeGeneric, "Georgia",
		color.New(210, 105, 30), color.New(255, 140, 0), color.White, color.New(255, 140, 0), color.New(139, 69, 19),
		[]layout.Variant{layout.Left, layout.Right, layout.Bottom, layout.Top})
	autumn.TitleBar = true

	red := predefined("Simplistic Red and White", RecipeRedWhite, "Impact",
		color.New(220, 20, 60), color.White, color.New(50, 50, 50), color.New(220, 20, 60), color.White,
		leftRightTopBottom)
	red.Placeholder = rgbPtr(color.New(240, 240, 240))

	nature := predefined("Nature Green", RecipeGeneric, "Verdana",
		color.New(34, 139, 34), color.New(144, 238, 144), color.White, color.New(50, 205, 50), color.New(34, 139, 34),
		rightLeftTopBottom)

	elegant := predefined("Elegant Black and Gray", RecipeGeneric, "Garamond",
		color.New(64, 64, 64), color.New(192, 192, 192), color.White, color.New(192, 192, 192), color.New(45, 45, 45),
		leftRightTopBottom)

	ocean := predefined("Ocean Blue", RecipeOcean, "Calibri",
		color.New(0, 119, 182), color.New(173, 216, 230), color.White, color.New(0, 191, 255), color.New(0, 91, 150),
		rightLeftTopBottom)

	sunset := predefined("Sunset Orange", RecipeSunset, "Lobster",
		color.New(255, 140, 0), color.New(255, 99, 71), color.New(50, 50, 50), color.New(255, 85, 0), color.New(255, 85, 0),
		rightLeftTopBottom)
	sunset.ContentBackground = rgbPtr(color.New(255, 211, 179))
	sunset.TitleText = rgbPtr(color.Black)
	sunset.structures = []layout.Variant{layout.Body1, layout.Body2}

	minimal := predefined("Minimalist Gray", RecipeMinimal, "Times New Roman",
		color.New(80, 80, 80), color.New(120, 120, 120), color.New(80, 80, 80), color.New(100, 100, 100), color.New(220, 220, 220),
		[]layout.Variant{layout.Right, layout.Left, layout.Bottom, layout.Top})

	themes := []Theme{business, autumn, red, nature, elegant, ocean, sunset, minimal}
	themes = append(themes,
		canva("canva_dark_gray", "Canva Dark Gray", "#2f2f2f", "#d9d9d9", "#a6a6a6", "#ffffff", "Calibri", "Calibri"),
		canva("canva_navy_blue", "Canva Navy Blue", "#001f3f", "#ffffff", "#ffffff", "#4a90e2", "Arial", "Arial"),
		canva("canva_bold_red", "Canva Bold Red", "#ff0000", "#ffffff", "#ffffff", "#ffcccb", "Arial Bold", "Arial"),
		canva("canva_orange", "Canva Orange", "#d35400", "#ffffff", "#f0f0f0", "#ffa500", "Arial", "Calibri"),
		canva("canva_purple", "Canva Purple", "#5a2e7d", "#ffffff", "#ffffff", "#9b59b6", "Arial Bold", "Arial"),
	)
	return themes
}

func canva(id, name, background, title, text, accent, titleFont, bodyFont string) Theme {
	region := plan.At(6.5, 1.5, 3, 4)
	titleColor := color.MustRGB(title)
	return Theme{
		ID:          id,
		Name:        name,
		Recipe:      RecipeCanva,
		Primary:     titleColor,
		Secondary:   color.MustRGB(text),
		Text:        color.MustRGB(text),
		Accent:      color.MustRGB(accent),
		Background:  color.MustRGB(background),
		TitleText:   &titleColor,
		TitleFont:   titleFont,
		BodyFont:    bodyFont,
		TitleSize:   44,
		BodySize:    18,
		ImageRegion: &region,
		variants:    []layout.Variant{layout.Right},
	}
}

var (
	catalog = buildCatalog()
	byKey   = indexCatalog(catalog)
)

func indexCatalog(themes []Theme) map[string]int {
	index := make(map[string]int, 2*len(themes))
	for i, t := range themes {
		index[t.Name] = i
		index[slug(t.Name)] = i
		index[slug(t.ID)] = i
	}
	return index
}

// slug lower-cases a name and collapses runs of spaces, dashes and
// underscores into a single underscore.
func slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(name)), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	return strings.Join(fields, "_")
}

// Lookup finds a predefined theme by exact name or by case and
// separator-insensitive id.
func Lookup(name string) (Theme, bool) {
	if i, ok := byKey[name]; ok {
		return catalog[i], true
	}
	if i, ok := byKey[slug(name)]; ok {
		return catalog[i], true
	}
	return Theme{}, false
}

// Default returns the documented fallback theme.
func Default() Theme {
	t, _ := Lookup(DefaultName)
	return t
}

// List returns the catalog sorted by name.
func List() []Summary {
	out := make([]Summary, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t.summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
