package color

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the color as its "#rrggbb" form.
func (c RGB) MarshalYAML() (interface{}, error) {
	return ToHex(c), nil
}

// UnmarshalYAML accepts a 6-hex-digit scalar.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ToRGB(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
