// Package colorblend converts between hex color literals and RGB triples and
// builds gradients between them. Every function is pure.
package colorblend

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrArgument is returned for invalid blend inputs.
	ErrArgument = errors.New("invalid blend argument")
	// ErrFormat is returned for hex literals that are not #RRGGBB.
	ErrFormat = errors.New("malformed hex color")
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

func (c RGB) channels() [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

// HexToRGB parses a #RRGGBB literal. Digits are case-insensitive; alpha is
// not accepted.
func HexToRGB(hex string) (RGB, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrFormat, hex)
	}

	var out [3]uint8
	for i := range out {
		v, err := strconv.ParseUint(hex[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrFormat, hex)
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// RGBToHex formats c as #rrggbb with lowercase digits.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MidwayColor returns the per-channel average of two colors, rounding halves
// away from zero, as uppercase hex.
func MidwayColor(c1, c2 string) (string, error) {
	a, err := HexToRGB(c1)
	if err != nil {
		return "", err
	}
	b, err := HexToRGB(c2)
	if err != nil {
		return "", err
	}

	ac, bc := a.channels(), b.channels()
	var mid [3]uint8
	for i := range mid {
		mid[i] = uint8(math.Round((ac[i] + bc[i]) / 2))
	}
	return strings.ToUpper(RGBToHex(RGB{R: mid[0], G: mid[1], B: mid[2]})), nil
}

// Interpolate returns the steps colors strictly between c1 and c2, evenly
// spaced, endpoints excluded, as uppercase hex.
func Interpolate(c1, c2 string, steps int) ([]string, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: steps must be non-negative, got %d", ErrArgument, steps)
	}
	start, err := HexToRGB(c1)
	if err != nil {
		return nil, err
	}
	end, err := HexToRGB(c2)
	if err != nil {
		return nil, err
	}

	sc, ec := start.channels(), end.channels()
	out := make([]string, 0, steps)
	for step := 1; step <= steps; step++ {
		t := float64(step) / float64(steps+1)
		var ch [3]uint8
		for i := range ch {
			ch[i] = uint8(math.Round(sc[i] + (ec[i]-sc[i])*t))
		}
		out = append(out, strings.ToUpper(RGBToHex(RGB{R: ch[0], G: ch[1], B: ch[2]})))
	}
	return out, nil
}

// BlendColors emits every input color followed by steps interpolated colors
// toward the next one, then the last input color. The result has
// len(colors) + (len(colors)-1)*steps uppercase entries.
func BlendColors(colors []string, steps int) ([]string, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("%w: need at least two colors, got %d", ErrArgument, len(colors))
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: steps must be non-negative, got %d", ErrArgument, steps)
	}

	out := make([]string, 0, len(colors)+(len(colors)-1)*steps)
	for i := 0; i < len(colors)-1; i++ {
		between, err := Interpolate(colors[i], colors[i+1], steps)
		if err != nil {
			return nil, err
		}
		out = append(out, colors[i])
		out = append(out, between...)
	}
	if _, err := HexToRGB(colors[len(colors)-1]); err != nil {
		return nil, err
	}
	out = append(out, colors[len(colors)-1])

	for i := range out {
		out[i] = strings.ToUpper(out[i])
	}
	return out, nil
}

// ExclusiveTripleBlend replaces the outer colors of [a, b, c] with their
// midpoints toward b and blends the result. With steps=1 it yields five
// shades centered on b.
func ExclusiveTripleBlend(colors []string, steps int) ([]string, error) {
	if len(colors) != 3 {
		return nil, fmt.Errorf("%w: need exactly three colors, got %d", ErrArgument, len(colors))
	}

	low, err := MidwayColor(colors[0], colors[1])
	if err != nil {
		return nil, err
	}
	high, err := MidwayColor(colors[1], colors[2])
	if err != nil {
		return nil, err
	}
	return BlendColors([]string{low, colors[1], high}, steps)
}
