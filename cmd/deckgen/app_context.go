package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/deckgen/internal/config"
	"github.com/alexisbeaulieu97/deckgen/internal/logger"
	"github.com/alexisbeaulieu97/deckgen/internal/theme"
)

// AppContext bundles the configuration and logger shared by a command run.
type AppContext struct {
	Config config.App
	Logger *logger.Logger
}

func loadAppContext(flags *rootFlags, logOut io.Writer) (*AppContext, error) {
	cfg, err := config.LoadApp(flags.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:      level,
		AutoDetect: true,
		Writer:     logOut,
		Component:  "deckgen",
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &AppContext{Config: cfg, Logger: log}, nil
}

// styleSource holds the theme selection flags shared by several commands.
type styleSource struct {
	themeName string
	stylePath string
}

// apply overrides the outline's theme choice with the flags, if set.
func (s styleSource) apply(outline *config.Outline) error {
	if s.themeName != "" {
		outline.Theme = s.themeName
		outline.CustomStyle = nil
	}
	if s.stylePath != "" {
		req, err := config.ParseStyle(s.stylePath)
		if err != nil {
			return err
		}
		outline.CustomStyle = req
	}
	return nil
}

// resolve returns the theme the flags select, falling back to fallback.
func (s styleSource) resolve(fallback string) (theme.Theme, error) {
	src := theme.Source{Name: s.themeName}
	if src.Name == "" {
		src.Name = fallback
	}
	if s.stylePath != "" {
		req, err := config.ParseStyle(s.stylePath)
		if err != nil {
			return theme.Theme{}, err
		}
		src.Custom = req
	}
	return theme.Resolve(src)
}
