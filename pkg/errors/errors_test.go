package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("outline.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "outline.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "outline.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("sections[1].title", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "sections[1].title", validationErr.Field)
	require.Contains(t, err.Error(), "sections[1].title: is required")
}

func TestMalformedColorErrorQuotesValue(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad digit")
	err := NewMalformedColorError("background_color", "#12G456", underlying)

	var colorErr *MalformedColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "background_color", colorErr.Field)
	require.Equal(t, "#12G456", colorErr.Value)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `"#12G456"`)
}

func TestRenderErrorIncludesSlideIndex(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewRenderError(3, underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, 3, renderErr.Slide)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "slide 3")

	docErr := NewRenderError(-1, underlying)
	require.Equal(t, "render error: disk full", docErr.Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var colorErr *MalformedColorError
	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, colorErr.Error())
}
