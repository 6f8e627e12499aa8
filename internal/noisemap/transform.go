package noisemap

import (
	"context"
	"fmt"
	"math"

	"github.com/VoidMesh/terrainpainter/internal/raster"
)

// ApplyBorderFade attenuates f toward the map edges. See BorderFade.
func (m *Map) ApplyBorderFade(f *Field, fadeWidth float64) (*Field, error) {
	if err := m.checkSize(f); err != nil {
		return nil, err
	}
	return BorderFade(f, fadeWidth)
}

// Blend multiplies base by mask and weight. See Blend.
func (m *Map) Blend(base, mask *Field, weight float64) (*Field, error) {
	if err := m.checkSize(base); err != nil {
		return nil, err
	}
	return Blend(base, mask, weight)
}

// QuantizeToColors maps f through cm. See Quantize.
func (m *Map) QuantizeToColors(f *Field, cm ColorMap) (*raster.ColorGrid, error) {
	if err := m.checkSize(f); err != nil {
		return nil, err
	}
	return Quantize(f, cm)
}

func (m *Map) checkSize(f *Field) error {
	if f.Width != m.width || f.Height != m.height {
		return fmt.Errorf("%w: field is %dx%d, map is %dx%d", ErrDimensionMismatch, f.Width, f.Height, m.width, m.height)
	}
	return nil
}

// BorderFade scales each value by the smallest of its four edge distances
// divided by fadeWidth, clamped to [0, 1]. Edge pixels become 0.
func BorderFade(f *Field, fadeWidth float64) (*Field, error) {
	if !(fadeWidth > 0) || math.IsInf(fadeWidth, 0) {
		return nil, fmt.Errorf("%w: fade width must be positive, got %v", ErrArgument, fadeWidth)
	}

	out := f.empty()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			factor := math.Min(
				math.Min(float64(x)/fadeWidth, float64(f.Width-1-x)/fadeWidth),
				math.Min(float64(y)/fadeWidth, float64(f.Height-1-y)/fadeWidth),
			)
			factor = math.Max(0, math.Min(factor, 1))
			out.Set(x, y, f.At(x, y)*factor)
		}
	}
	return out, nil
}

// Blend returns base*mask*weight elementwise. The result is not
// renormalized.
func Blend(base, mask *Field, weight float64) (*Field, error) {
	if !base.SameSize(mask) {
		return nil, fmt.Errorf("%w: base is %dx%d, mask is %dx%d", ErrDimensionMismatch, base.Width, base.Height, mask.Width, mask.Height)
	}

	out := base.empty()
	for i, v := range base.Values {
		out.Values[i] = v * (mask.Values[i] * weight)
	}
	return out, nil
}

// Quantize maps every value through cm. Pixels no band covers get
// raster.Fallback.
func Quantize(f *Field, cm ColorMap) (*raster.ColorGrid, error) {
	grid, err := raster.NewColorGrid(f.Width, f.Height, raster.Fallback)
	if err != nil {
		return nil, err
	}

	err = forEachRow(context.Background(), f.Height, func(y int) {
		src, dst := f.Row(y), grid.Row(y)
		for x, v := range src {
			dst[x] = cm.Lookup(v)
		}
	})
	if err != nil {
		return nil, err
	}
	return grid, nil
}
