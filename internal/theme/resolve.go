package theme

import "strings"

// Source is what a caller supplies to pick a theme: a catalog name, a custom
// style, or neither.
type Source struct {
	Name   string
	Custom *CustomStyleRequest
}

// Resolve returns the theme for src. A custom style wins when present and
// is the only path that can fail. Unknown or empty names resolve to the
// default theme.
func Resolve(src Source) (Theme, error) {
	if src.Custom != nil {
		return FromCustomStyle(*src.Custom)
	}
	if t, ok := Lookup(src.Name); ok {
		return t, nil
	}
	return Default(), nil
}

// Known reports whether name matches a catalog entry.
func Known(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, ok := Lookup(name)
	return ok
}
