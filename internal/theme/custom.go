package theme

import (
	"strings"

	"github.com/alexisbeaulieu97/deckgen/internal/color"
	"github.com/alexisbeaulieu97/deckgen/internal/layout"
	deckerrors "github.com/alexisbeaulieu97/deckgen/pkg/errors"
)

// Placeholder style preferences for custom styles.
const (
	PlaceholderLight  = "light"
	PlaceholderDark   = "dark"
	PlaceholderThemed = "themed"
)

// Fixed placeholder fills for the light and dark preferences.
var (
	LightPlaceholder = color.New(240, 240, 240)
	DarkPlaceholder  = color.New(40, 40, 40)
)

const themedShift = 30

// CustomStyleRequest is an externally authored style description.
type CustomStyleRequest struct {
	ThemeName        string `yaml:"theme_name,omitempty" json:"theme_name,omitempty" validate:"omitempty,max=100"`
	BackgroundColor  string `yaml:"background_color" json:"background_color" validate:"required,nonblank"`
	PrimaryColor     string `yaml:"primary_color,omitempty" json:"primary_color,omitempty"`
	SecondaryColor   string `yaml:"secondary_color,omitempty" json:"secondary_color,omitempty"`
	TextColor        string `yaml:"text_color" json:"text_color" validate:"required,nonblank"`
	AccentColor      string `yaml:"accent_color" json:"accent_color" validate:"required,nonblank"`
	PlaceholderStyle string `yaml:"image_placeholder_style,omitempty" json:"image_placeholder_style,omitempty" validate:"omitempty,placeholder_style"`
	TitleFont        string `yaml:"title_font,omitempty" json:"title_font,omitempty"`
	BodyFont         string `yaml:"body_font,omitempty" json:"body_font,omitempty"`
	TitleSize        int    `yaml:"title_size,omitempty" json:"title_size,omitempty" validate:"omitempty,min=8,max=120"`
	BodySize         int    `yaml:"body_size,omitempty" json:"body_size,omitempty" validate:"omitempty,min=6,max=72"`
	StyleDescription string `yaml:"style_description,omitempty" json:"style_description,omitempty"`
	Mood             string `yaml:"mood,omitempty" json:"mood,omitempty"`
}

// PlaceholderColor derives the image placeholder fill for a background.
// Unknown styles are treated as themed.
func PlaceholderColor(style string, background color.RGB) color.RGB {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case PlaceholderLight:
		return LightPlaceholder
	case PlaceholderDark, "":
		return DarkPlaceholder
	}
	if color.Brightness(background) > 128 {
		return color.Shift(background, -themedShift)
	}
	return color.Shift(background, themedShift)
}

// FromCustomStyle validates req and converts it into a Theme.
func FromCustomStyle(req CustomStyleRequest) (Theme, error) {
	if err := req.Validate(); err != nil {
		return Theme{}, err
	}

	background, err := parseColor("background_color", req.BackgroundColor, "")
	if err != nil {
		return Theme{}, err
	}
	text, err := parseColor("text_color", req.TextColor, "")
	if err != nil {
		return Theme{}, err
	}
	accent, err := parseColor("accent_color", req.AccentColor, "")
	if err != nil {
		return Theme{}, err
	}
	primary, err := parseColor("primary_color", req.PrimaryColor, "#FFD700")
	if err != nil {
		return Theme{}, err
	}
	secondary, err := parseColor("secondary_color", req.SecondaryColor, "#000000")
	if err != nil {
		return Theme{}, err
	}

	name := strings.TrimSpace(req.ThemeName)
	if name == "" {
		name = "Custom Theme"
	}

	placeholder := PlaceholderColor(req.PlaceholderStyle, background)

	return Theme{
		ID:          "custom_" + slug(name),
		Name:        name,
		Recipe:      RecipeGeneric,
		Custom:      true,
		Primary:     primary,
		Secondary:   secondary,
		Text:        text,
		Accent:      accent,
		Background:  background,
		Placeholder: &placeholder,
		TitleFont:   orDefault(req.TitleFont, DefaultFont),
		BodyFont:    orDefault(req.BodyFont, DefaultFont),
		TitleSize:   float64(orDefaultInt(req.TitleSize, DefaultTitleSize)),
		BodySize:    float64(orDefaultInt(req.BodySize, DefaultBodySize)),
		Description: req.StyleDescription,
		Mood:        req.Mood,
		variants:    []layout.Variant{layout.Right, layout.Left, layout.Top, layout.Bottom},
	}, nil
}

func parseColor(field, value, fallback string) (color.RGB, error) {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	c, err := color.ToRGB(value)
	if err != nil {
		return color.RGB{}, deckerrors.NewMalformedColorError(field, value, err)
	}
	return c, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func orDefaultInt(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
