package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/deckgen/internal/theme"
	deckerrors "github.com/alexisbeaulieu97/deckgen/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultAppPath is where the application configuration is looked up when
// no path is given.
const DefaultAppPath = "deckgen.yaml"

// LoadApp reads the application configuration at path. A missing file at
// DefaultAppPath yields the defaults; a missing file anywhere else is an
// error.
func LoadApp(path string) (App, error) {
	if path == "" {
		path = DefaultAppPath
	}

	var cfg App
	if err := decodeFile(path, &cfg); err != nil {
		if path == DefaultAppPath && errors.Is(err, fs.ErrNotExist) {
			return DefaultApp(), nil
		}
		return App{}, err
	}

	if err := ValidateApp(&cfg); err != nil {
		return App{}, err
	}
	return cfg.WithDefaults(), nil
}

// ParseOutline loads an outline file from disk, validates it, and returns the resulting model.
func ParseOutline(path string) (*Outline, error) {
	var outline Outline
	if err := decodeFile(path, &outline); err != nil {
		return nil, err
	}

	if err := ValidateOutline(&outline); err != nil {
		return nil, err
	}

	return &outline, nil
}

// ParseStyle loads a custom style description. JSON files are accepted as
// YAML.
func ParseStyle(path string) (*theme.CustomStyleRequest, error) {
	var req theme.CustomStyleRequest
	if err := decodeFile(path, &req); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &req, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return deckerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return deckerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
