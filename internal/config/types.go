package config

import (
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

// Default values applied to the application configuration.
const (
	DefaultLogLevel    = "info"
	DefaultOutputDir   = "."
	DefaultAssetDir    = "assets"
	DefaultNotesStyle  = "Detailed"
	DefaultSlideFormat = "Detailed"
)

// App is the deckgen.yaml application configuration.
type App struct {
	LogLevel      string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	OutputDir     string `yaml:"output_dir,omitempty"`
	AssetDir      string `yaml:"asset_dir,omitempty"`
	DefaultTheme  string `yaml:"default_theme,omitempty" validate:"omitempty,max=100"`
	NotesStyle    string `yaml:"notes_style,omitempty" validate:"omitempty,notes_style"`
	SlideFormat   string `yaml:"slide_format,omitempty" validate:"omitempty,slide_format"`
	IncludeImages *bool  `yaml:"include_images,omitempty"`
}

// DefaultApp returns the configuration used when no file is present.
func DefaultApp() App {
	return App{}.WithDefaults()
}

// WithDefaults fills unset fields.
func (a App) WithDefaults() App {
	if a.LogLevel == "" {
		a.LogLevel = DefaultLogLevel
	}
	if a.OutputDir == "" {
		a.OutputDir = DefaultOutputDir
	}
	if a.AssetDir == "" {
		a.AssetDir = DefaultAssetDir
	}
	if a.DefaultTheme == "" {
		a.DefaultTheme = theme.DefaultName
	}
	if a.NotesStyle == "" {
		a.NotesStyle = DefaultNotesStyle
	}
	if a.SlideFormat == "" {
		a.SlideFormat = DefaultSlideFormat
	}
	if a.IncludeImages == nil {
		enabled := true
		a.IncludeImages = &enabled
	}
	return a
}

// Images reports whether image placeholders are enabled.
func (a App) Images() bool {
	return a.IncludeImages == nil || *a.IncludeImages
}

// Outline is an authored deck outline.
type Outline struct {
	Title     string `yaml:"title" validate:"required,nonblank,max=200"`
	Presenter string `yaml:"presenter,omitempty"`
	Theme     string `yaml:"theme,omitempty"`
	// CustomStyle takes precedence over Theme when both are set.
	CustomStyle   *theme.CustomStyleRequest `yaml:"custom_style,omitempty" validate:"-"`
	IncludeImages *bool                     `yaml:"include_images,omitempty"`
	NotesStyle    string                    `yaml:"notes_style,omitempty" validate:"omitempty,notes_style"`
	SlideFormat   string                    `yaml:"slide_format,omitempty" validate:"omitempty,slide_format"`
	Sections      []Section                 `yaml:"sections" validate:"omitempty,dive"`
}

// Section is one outline entry, rendered as one content slide.
type Section struct {
	Title string   `yaml:"title" validate:"required,nonblank"`
	Facts []string `yaml:"facts,omitempty"`
	// Notes are attached verbatim. When empty, notes are generated from
	// Facts and Context.
	Notes   string `yaml:"notes,omitempty"`
	Context string `yaml:"context,omitempty"`
}
