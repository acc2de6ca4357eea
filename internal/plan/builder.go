package plan

import "github.com/alexisbeaulieu97/deckgen/internal/color"

// Rect returns a filled shape of the given kind with no border.
func Rect(kind Kind, box Box, fill color.RGB) Shape {
	return Shape{Kind: kind, Box: box, Fill: Solid(fill)}
}

// Placeholder returns an image placeholder region.
func Placeholder(box Box, fill color.RGB, border *Border) Shape {
	return Shape{Kind: KindPicturePlaceholder, Name: "image", Box: box, Fill: Solid(fill), Border: border}
}

// Shaped returns a copy of a placeholder drawn with the given outline.
func (s Shape) Shaped(geometry Kind) Shape {
	s.Geometry = geometry
	return s
}

// Picture returns a picture shape loaded from asset by the sink.
func Picture(box Box, asset string) Shape {
	return Shape{Kind: KindPicture, Box: box, Fill: NoFill(), AssetPath: asset}
}

// TextBox returns an unfilled text box holding the given paragraphs.
func TextBox(name string, box Box, paragraphs ...Paragraph) Shape {
	return Shape{
		Kind: KindTextBox,
		Name: name,
		Box:  box,
		Fill: NoFill(),
		Text: &Text{Paragraphs: paragraphs, WordWrap: true, Anchor: AnchorTop},
	}
}

// Line returns a single-run paragraph.
func Line(align Align, run Run) Paragraph {
	return Paragraph{Align: align, Runs: []Run{run}}
}

// Style is the font portion of a Run, reused across runs of one role.
type Style struct {
	Font   string
	Size   float64
	Bold   bool
	Italic bool
	Color  color.RGB
}

// Run builds a run of text with this style.
func (s Style) Run(text string) Run {
	return Run{Text: text, Font: s.Font, Size: s.Size, Bold: s.Bold, Italic: s.Italic, Color: s.Color}
}

// Sized returns a copy of the style with a different point size.
func (s Style) Sized(size float64) Style {
	s.Size = size
	return s
}

// Colored returns a copy of the style with a different color.
func (s Style) Colored(c color.RGB) Style {
	s.Color = c
	return s
}

// Bolded returns a copy of the style with bold set.
func (s Style) Bolded(bold bool) Style {
	s.Bold = bold
	return s
}
