package raster

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensions is returned for grids with non-positive sizes.
var ErrDimensions = errors.New("invalid grid dimensions")

// ColorGrid is a row-major height×width grid of colors.
type ColorGrid struct {
	Width, Height int
	Pixels        []Color
}

// NewColorGrid allocates a grid filled with fill.
func NewColorGrid(width, height int, fill Color) (*ColorGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrDimensions, width, height)
	}
	g := &ColorGrid{Width: width, Height: height, Pixels: make([]Color, width*height)}
	for i := range g.Pixels {
		g.Pixels[i] = fill
	}
	return g, nil
}

// At returns the color at column x, row y.
func (g *ColorGrid) At(x, y int) Color {
	return g.Pixels[y*g.Width+x]
}

// Set stores c at column x, row y.
func (g *ColorGrid) Set(x, y int, c Color) {
	g.Pixels[y*g.Width+x] = c
}

// SameSize reports whether both grids have identical dimensions.
func (g *ColorGrid) SameSize(o *ColorGrid) bool {
	return g.Width == o.Width && g.Height == o.Height
}

// Row returns row y, sharing storage with the grid.
func (g *ColorGrid) Row(y int) []Color {
	return g.Pixels[y*g.Width : (y+1)*g.Width]
}
