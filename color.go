package viz

import (
	"fmt"
	"image/color"
)

// RGB is an opaque color with 8-bit red, green and blue components,
// stored in that order. There is no alpha channel in the data model;
// transparency is a separate parameter to the blending operations.
type RGB [3]uint8

// NewRGB creates a color from its components.
func NewRGB(r, g, b uint8) RGB {
	return RGB{r, g, b}
}

// NRGBA converts the color to the standard library representation.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// SVG formats the color as an SVG rgb() attribute value.
func (c RGB) SVG() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
}

// Lerp performs linear interpolation between two colors.
// t=0 returns c, t=1 returns other.
func (c RGB) Lerp(other RGB, t float64) RGB {
	var out RGB
	for i := range c {
		out[i] = uint8(float64(c[i]) + (float64(other[i])-float64(c[i]))*t)
	}
	return out
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Malformed input yields black.
func Hex(hex string) RGB {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}

	return RGB{uint8(r), uint8(g), uint8(b)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Common colors
var (
	Black     = RGB{0, 0, 0}
	White     = RGB{255, 255, 255}
	Red       = RGB{255, 0, 0}
	Green     = RGB{0, 255, 0}
	Blue      = RGB{0, 0, 255}
	Yellow    = RGB{255, 255, 0}
	Cyan      = RGB{0, 255, 255}
	Magenta   = RGB{255, 0, 255}
	Gray      = RGB{128, 128, 128}
	LightGray = RGB{200, 200, 200}
)
