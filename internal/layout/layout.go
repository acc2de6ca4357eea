// Package layout rotates layout variants across the content slides of a deck.
package layout

// Variant is a symbolic positional or structural layout choice.
type Variant string

// Positional variants place the image region relative to the text.
const (
	Left   Variant = "left"
	Right  Variant = "right"
	Top    Variant = "top"
	Bottom Variant = "bottom"
	Center Variant = "center"
)

// Structural variants switch between two distinct content recipes.
const (
	Body1 Variant = "body1"
	Body2 Variant = "body2"
)

// VariantFor returns variants[slideIndex mod len(variants)].
//
// An empty list is a programming error and panics.
func VariantFor(variants []Variant, slideIndex int) Variant {
	if len(variants) == 0 {
		panic("layout: VariantFor called with no variants")
	}
	i := slideIndex % len(variants)
	if i < 0 {
		i += len(variants)
	}
	return variants[i]
}

// Rotation is what the cycler needs to know about a theme.
type Rotation interface {
	Positions() []Variant
	Structures() []Variant
}

// Step is the layout decision for one content slide.
type Step struct {
	Index     int
	Variant   Variant
	Structure Variant
}

// CycleState holds the per-deck rotation counters. The zero value is ready
// to use and a fresh one must be created for every deck build.
type CycleState struct {
	SlideCount  int
	LayoutIndex int
}

// Next returns the step for the next content slide and advances both
// counters by exactly one.
func (c *CycleState) Next(r Rotation) Step {
	step := Step{Index: c.SlideCount, Variant: VariantFor(r.Positions(), c.SlideCount)}
	if structures := r.Structures(); len(structures) > 0 {
		step.Structure = VariantFor(structures, c.LayoutIndex)
	}
	c.SlideCount++
	c.LayoutIndex++
	return step
}
