// Package color holds the pure color helpers shared by the theme resolver and
// the slide composer. Every function is side-effect free and safe to call
// from concurrent deck builds.
package color

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RGB is an 8-bit per channel color triple.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Common palette entries used across recipes.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// New returns the RGB triple for the given channels.
func New(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// ToRGB parses a 6-hex-digit color, with or without a leading '#'. Digits
// are case-insensitive, so "FFD700", "#ffd700" and "#FFD700" parse alike.
func ToRGB(hex string) (RGB, error) {
	trimmed := strings.TrimSpace(hex)
	if !hexPattern.MatchString(trimmed) {
		return RGB{}, fmt.Errorf("expected 6 hex digits, got %q", hex)
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustRGB is ToRGB for package-level literals; it panics on malformed input.
func MustRGB(hex string) RGB {
	c, err := ToRGB(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// ToHex formats the triple in canonical form: '#' followed by six lowercase
// digits. ToHex(ToRGB(h)) == h holds exactly when h is already canonical;
// any other accepted spelling comes back canonicalized.
func ToHex(c RGB) string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return ToHex(c)
}

// ARGB returns the opaque "FFRRGGBB" form expected by OOXML writers.
func (c RGB) ARGB() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}

// Brightness is the perceptual luminance 0.299R + 0.587G + 0.114B, in [0, 255].
func Brightness(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// IsLight reports whether the color is brighter than the midpoint.
func IsLight(c RGB) bool {
	return Brightness(c) > 128
}

// Shift adds delta to every channel, clamping at 0 and 255.
func Shift(c RGB, delta int) RGB {
	return RGB{R: clamp(int(c.R) + delta), G: clamp(int(c.G) + delta), B: clamp(int(c.B) + delta)}
}

// Contrasting picks black text for light backgrounds and white otherwise.
func Contrasting(bg RGB) RGB {
	if IsLight(bg) {
		return Black
	}
	return White
}

// Blend mixes a towards b by t in [0, 1] in RGB space.
func Blend(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r, g, bl := a.colorful().BlendRgb(b.colorful(), t).Clamped().RGB255()
	return RGB{R: r, G: g, B: bl}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
