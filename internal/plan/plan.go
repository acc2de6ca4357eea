// Package plan defines the renderer-agnostic shape plan produced for every
// slide of a deck. All geometry is expressed in inches from the top-left
// corner of a 10 x 7.5 canvas.
package plan

import (
	"github.com/alexisbeaulieu97/deckgen/internal/color"
)

// Canvas dimensions in inches.
const (
	CanvasWidth  = 10.0
	CanvasHeight = 7.5
)

// Role identifies where a slide sits in the deck.
type Role string

const (
	RoleTitle   Role = "title"
	RoleContent Role = "content"
	RoleClosing Role = "closing"
)

// Kind enumerates shape descriptors understood by rendering sinks.
type Kind string

const (
	KindRectangle          Kind = "rectangle"
	KindRoundedRectangle   Kind = "rounded_rectangle"
	KindOval               Kind = "oval"
	KindRightTriangle      Kind = "right_triangle"
	KindTextBox            Kind = "text_box"
	KindPicturePlaceholder Kind = "picture_placeholder"
	KindPicture            Kind = "picture"
)

// FillType selects how a Fill is painted.
type FillType string

const (
	FillNone     FillType = "none"
	FillSolid    FillType = "solid"
	FillGradient FillType = "gradient"
)

// Align is the horizontal paragraph alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Anchor is the vertical anchoring of text inside its box.
type Anchor string

const (
	AnchorTop    Anchor = "top"
	AnchorMiddle Anchor = "middle"
	AnchorBottom Anchor = "bottom"
)

// Box is a bounding box in inches.
type Box struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// At builds a Box from left, top, width and height.
func At(left, top, width, height float64) Box {
	return Box{Left: left, Top: top, Width: width, Height: height}
}

// FullBleed covers the whole canvas.
func FullBleed() Box {
	return At(0, 0, CanvasWidth, CanvasHeight)
}

// Fill is a solid color or a two-stop linear gradient.
type Fill struct {
	Type  FillType  `yaml:"type"`
	Color color.RGB `yaml:"color"`
	// End and Angle are only meaningful for gradients. Angle is in degrees.
	End   color.RGB `yaml:"end,omitempty"`
	Angle int       `yaml:"angle,omitempty"`
}

// Solid returns a solid fill of c.
func Solid(c color.RGB) Fill {
	return Fill{Type: FillSolid, Color: c}
}

// Gradient returns a two-stop linear gradient from start to end.
func Gradient(start, end color.RGB, angle int) Fill {
	return Fill{Type: FillGradient, Color: start, End: end, Angle: angle}
}

// NoFill leaves the shape transparent.
func NoFill() Fill {
	return Fill{Type: FillNone}
}

// Border is an outline drawn around a shape. A zero Width means no border.
type Border struct {
	Color color.RGB `yaml:"color"`
	Width float64   `yaml:"width_pt"`
}

// Run is a span of text sharing one font. Size 0 means unset.
type Run struct {
	Text   string    `yaml:"text"`
	Font   string    `yaml:"font,omitempty"`
	Size   float64   `yaml:"size,omitempty"`
	Bold   bool      `yaml:"bold,omitempty"`
	Italic bool      `yaml:"italic,omitempty"`
	Color  color.RGB `yaml:"color"`
}

// Paragraph is an aligned sequence of runs.
type Paragraph struct {
	Align Align `yaml:"align"`
	Runs  []Run `yaml:"runs"`
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var n int
	for _, r := range p.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range p.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// Text is the text body of a text-bearing shape.
type Text struct {
	Paragraphs []Paragraph `yaml:"paragraphs"`
	WordWrap   bool        `yaml:"word_wrap"`
	Anchor     Anchor      `yaml:"anchor"`
}

// Shape is one renderer-agnostic shape descriptor.
type Shape struct {
	Kind Kind   `yaml:"kind"`
	Name string `yaml:"name,omitempty"`
	// Geometry is the outline drawn for picture placeholders: rectangle,
	// rounded_rectangle or oval. Empty means rectangle.
	Geometry  Kind    `yaml:"geometry,omitempty"`
	Box       Box     `yaml:"box"`
	Fill      Fill    `yaml:"fill"`
	Border    *Border `yaml:"border,omitempty"`
	Rotation  int     `yaml:"rotation,omitempty"`
	AssetPath string  `yaml:"asset,omitempty"`
	Text      *Text   `yaml:"text,omitempty"`
}

// HasText reports whether the shape carries at least one paragraph.
func (s Shape) HasText() bool {
	return s.Text != nil && len(s.Text.Paragraphs) > 0
}

// Slide is the shape plan for one slide.
type Slide struct {
	Index      int     `yaml:"index"`
	Role       Role    `yaml:"role"`
	Variant    string  `yaml:"variant,omitempty"`
	Structure  string  `yaml:"structure,omitempty"`
	Background Fill    `yaml:"background"`
	Shapes     []Shape `yaml:"shapes"`
	Notes      string  `yaml:"notes,omitempty"`
}

// ShapesOf returns the shapes of the given kind in plan order.
func (s Slide) ShapesOf(kind Kind) []Shape {
	var out []Shape
	for _, shape := range s.Shapes {
		if shape.Kind == kind {
			out = append(out, shape)
		}
	}
	return out
}

// Clone returns a deep copy so callers may edit the result freely.
func (s Slide) Clone() Slide {
	out := s
	out.Shapes = make([]Shape, len(s.Shapes))
	for i, shape := range s.Shapes {
		out.Shapes[i] = shape.Clone()
	}
	return out
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := s
	if s.Border != nil {
		b := *s.Border
		out.Border = &b
	}
	if s.Text != nil {
		t := *s.Text
		t.Paragraphs = make([]Paragraph, len(s.Text.Paragraphs))
		for i, p := range s.Text.Paragraphs {
			p.Runs = append([]Run(nil), p.Runs...)
			t.Paragraphs[i] = p
		}
		out.Text = &t
	}
	return out
}
