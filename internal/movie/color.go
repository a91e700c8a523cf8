package movie

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Color struct {
	R, G, B, A uint8
}

// ParseColor accepts "#rrggbb" (opaque) and "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	if len(s) != 7 && len(s) != 9 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustParseColor is ParseColor for validated configuration values.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
