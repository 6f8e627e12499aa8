package noisemap

import (
	"fmt"
	"math"
)

// Field is a row-major height×width grid of floats.
type Field struct {
	Width, Height int
	Values        []float64
}

// NewField allocates a zero-filled field.
func NewField(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: field dimensions must be positive, got %dx%d", ErrArgument, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: field dimensions %dx%d overflow", ErrArgument, width, height)
	}
	return &Field{Width: width, Height: height, Values: make([]float64, width*height)}, nil
}

// FieldFromRows copies a rectangular [y][x] grid into a Field.
func FieldFromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrArgument)
	}
	f, err := NewField(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != f.Width {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrArgument, y, len(row), f.Width)
		}
		copy(f.Row(y), row)
	}
	return f, nil
}

// At returns the value at column x, row y.
func (f *Field) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

// Set stores v at column x, row y.
func (f *Field) Set(x, y int, v float64) {
	f.Values[y*f.Width+x] = v
}

// Row returns row y, sharing storage with the field.
func (f *Field) Row(y int) []float64 {
	return f.Values[y*f.Width : (y+1)*f.Width]
}

// SameSize reports whether both fields have identical dimensions.
func (f *Field) SameSize(o *Field) bool {
	return f.Width == o.Width && f.Height == o.Height
}

// MinMax returns the smallest and largest values.
func (f *Field) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.Values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func (f *Field) empty() *Field {
	return &Field{Width: f.Width, Height: f.Height, Values: make([]float64, len(f.Values))}
}
