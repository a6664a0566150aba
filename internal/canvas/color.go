package canvas

import (
	"fmt"
	"image/color"
	"strconv"
)

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("canvas: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("canvas: bad hex color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex is ParseHex for color literals; it panics on malformed input.
func Hex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Fade multiplies the alpha of c by alpha, clamped to [0, 1]. It stands in
// for a surface-wide alpha setting.
func Fade(c color.NRGBA, alpha float64) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	c.A = uint8(float64(c.A)*alpha + 0.5)
	return c
}

// WithAlpha replaces the alpha of c.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// HexString formats c as "#rrggbb", dropping alpha.
func HexString(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
