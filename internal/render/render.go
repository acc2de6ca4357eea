// Package render defines the boundary between planned slides and the
// document writers that persist them.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/deckgen/internal/plan"
	deckerrors "github.com/alexisbeaulieu97/deckgen/pkg/errors"
)

// Document is a complete deck ready to be written.
type Document struct {
	// Name is the output base name without extension.
	Name   string
	Title  string
	Author string
	Slides []plan.Slide
}

// Sink persists a document and returns the path it was written to.
type Sink interface {
	Render(ctx context.Context, doc Document) (string, error)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, doc Document) (string, error)

// Render implements Sink.
func (f SinkFunc) Render(ctx context.Context, doc Document) (string, error) {
	return f(ctx, doc)
}

// Assets resolves decorative asset names against a directory.
type Assets struct {
	Dir string
}

// Resolve returns the path of name, or an error wrapping ErrMissingAsset
// when the file does not exist.
func (a Assets) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty asset name: %w", deckerrors.ErrMissingAsset)
	}
	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(a.Dir, name)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, deckerrors.ErrMissingAsset)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory: %w", path, deckerrors.ErrMissingAsset)
	}
	return path, nil
}

type dump struct {
	Title  string       `yaml:"title,omitempty"`
	Slides []plan.Slide `yaml:"slides"`
}

// Dump renders the slide plans as YAML.
func Dump(title string, slides []plan.Slide) ([]byte, error) {
	out, err := yaml.Marshal(dump{Title: title, Slides: slides})
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	return out, nil
}

// DumpSink writes the YAML plan dump to Dir/<name>.yaml instead of a
// presentation file.
type DumpSink struct {
	Dir string
}

// Render implements Sink.
func (s DumpSink) Render(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := Dump(doc.Title, doc.Slides)
	if err != nil {
		return "", deckerrors.NewRenderError(-1, err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", deckerrors.NewRenderError(-1, err)
	}
	path := filepath.Join(s.Dir, doc.Name+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", deckerrors.NewRenderError(-1, err)
	}
	return path, nil
}
