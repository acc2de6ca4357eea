// Package notes produces local speaker notes and concise bullet text for
// sections that arrive without authored notes.
package notes

import (
	"fmt"
	"strings"
)

// Style selects the shape of generated speaker notes.
type Style string

const (
	Concise         Style = "Concise"
	Detailed        Style = "Detailed"
	FullExplanation Style = "Full Explanation"
)

// MaxFacts is the number of facts considered when writing notes.
const MaxFacts = 5

// ParseStyle maps a case-insensitive name onto a Style, defaulting to
// Detailed.
func ParseStyle(name string) Style {
	if style, ok := LookupStyle(name); ok {
		return style
	}
	return Detailed
}

// LookupStyle is ParseStyle without the fallback.
func LookupStyle(name string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "concise":
		return Concise, true
	case "detailed":
		return Detailed, true
	case "full explanation", "full_explanation", "full":
		return FullExplanation, true
	}
	return "", false
}

// Format is the bullet density of content slides.
type Format string

const (
	FormatConcise  Format = "Concise"
	FormatDetailed Format = "Detailed"
)

// ConciseWords is the per-fact word cap of the Concise format.
const ConciseWords = 5

// ParseFormat maps a case-insensitive name onto a Format.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "concise":
		return FormatConcise, true
	case "detailed":
		return FormatDetailed, true
	}
	return "", false
}

// Apply returns facts as they should appear on a slide of this format.
func (f Format) Apply(facts []string) []string {
	if f == FormatConcise {
		return Shorten(facts, ConciseWords, MaxFacts)
	}
	return facts
}

// Input is what notes are written from.
type Input struct {
	Title   string
	Facts   []string
	Context string
	// Custom notes are returned as-is for the Detailed style.
	Custom string
}

// Generate writes speaker notes for one section.
func Generate(style Style, in Input) string {
	facts := in.Facts
	if len(facts) > MaxFacts {
		facts = facts[:MaxFacts]
	}

	switch style {
	case Concise:
		return concise(in, facts)
	case FullExplanation:
		return fullExplanation(in, facts)
	default:
		if in.Custom != "" {
			return in.Custom
		}
		return detailed(in, facts)
	}
}

func concise(in Input, facts []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s represents an important aspect of this topic. ", in.Title)
	for i, fact := range facts {
		if i > 0 && i == len(facts)-1 {
			fmt.Fprintf(&b, "Additionally, %s. ", fact)
			continue
		}
		fmt.Fprintf(&b, "%s. ", fact)
	}
	if in.Context != "" {
		b.WriteString(in.Context + " ")
	}
	b.WriteString("These elements work together to create a comprehensive understanding of the situation.")
	return b.String()
}

var fullExplanationLinks = []string{
	"%s. This forms the foundation of our discussion today. ",
	"Building on that, %s. These two elements are closely related and support each other. ",
	"Another significant factor involves %s. This particular aspect has far-reaching implications. ",
	"Furthermore, %s. This adds considerable depth to our understanding. ",
	"Finally, %s. This completes the picture we've been building. ",
}

func fullExplanation(in Input, facts []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s encompasses several interconnected elements.\n\n", in.Title)
	if in.Context != "" {
		b.WriteString(in.Context + "\n\n")
	}
	for i, fact := range facts {
		fmt.Fprintf(&b, fullExplanationLinks[i], fact)
	}
	fmt.Fprintf(&b, "\n\nThe significance of %s becomes clear when we examine how these components interact. ", in.Title)
	b.WriteString("Real-world applications demonstrate the practical value of understanding these relationships. ")
	b.WriteString("Organizations that successfully implement these principles often see measurable improvements in their outcomes.")
	return b.String()
}

func detailed(in Input, facts []string) string {
	var b strings.Builder
	b.WriteString(in.Title + "\n\n")
	if in.Context != "" {
		b.WriteString(in.Context + "\n\n")
	}
	b.WriteString(strings.Join(facts, " "))
	return b.String()
}

// Shorten trims every fact to at most maxWords words and keeps at most
// maxFacts facts. Non-positive limits disable the respective cap.
func Shorten(facts []string, maxWords, maxFacts int) []string {
	if maxFacts > 0 && len(facts) > maxFacts {
		facts = facts[:maxFacts]
	}
	out := make([]string, 0, len(facts))
	for _, fact := range facts {
		words := strings.Fields(fact)
		if maxWords > 0 && len(words) > maxWords {
			words = words[:maxWords]
		}
		out = append(out, strings.Join(words, " "))
	}
	return out
}
