// Package raster holds RGBA color grids and their PNG encoding.
package raster

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrFormat is returned for color literals that are not #RRGGBB or #RRGGBBAA.
var ErrFormat = errors.New("malformed color literal")

// Color is an 8-bit RGBA value.
type Color struct {
	R, G, B, A uint8
}

// Fallback is the color used wherever no band or class matches.
var Fallback = Color{A: 0xFF}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// ParseColor reads #RRGGBB (opaque) or #RRGGBBAA, ignoring case.
func ParseColor(s string) (Color, error) {
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	if len(s) == 7 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the canonical uppercase form. Alpha is only written when the
// color is not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// NRGBA converts to the image/color non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any image/color value.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// MarshalText writes the canonical hex form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts any literal ParseColor does.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
