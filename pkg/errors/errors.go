package errors

import (
	"errors"
	"fmt"
)

// ErrMissingAsset reports a decorative asset (for example a themed
// background picture) that could not be found on disk. Sinks recover from it
// locally; it never aborts a deck.
var ErrMissingAsset = errors.New("missing rendering asset")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures outline, style, or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MalformedColorError is returned when a style field does not hold a
// 6-hex-digit color. It is never retried.
type MalformedColorError struct {
	Field string
	Value string
	Err   error
}

// NewMalformedColorError constructs a MalformedColorError for the given style field.
func NewMalformedColorError(field, value string, err error) error {
	return &MalformedColorError{Field: field, Value: value, Err: err}
}

func (e *MalformedColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("malformed color: %s: %q", e.Field, e.Value)
	}
	return fmt.Sprintf("malformed color: %q", e.Value)
}

// Unwrap exposes the underlying error.
func (e *MalformedColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a failure in the rendering sink while writing a slide
// or persisting the document.
type RenderError struct {
	Slide int
	Err   error
}

// NewRenderError constructs a RenderError. Use a negative slide index for
// document-level failures.
func NewRenderError(slide int, err error) error {
	return &RenderError{Slide: slide, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Slide >= 0 {
		return fmt.Sprintf("render error on slide %d: %v", e.Slide, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
