package terrain

import (
	"errors"
	"fmt"

	"github.com/VoidMesh/terrainpainter/internal/colorblend"
	"github.com/VoidMesh/terrainpainter/internal/raster"
)

var (
	ErrPalette           = errors.New("invalid terrain palette")
	ErrDimensionMismatch = errors.New("grid dimensions do not match")
)

// Entry is one cell of the terrain table.
type Entry struct {
	HeightClass      int          `json:"height_class"`
	TemperatureClass int          `json:"temperature_class"`
	Name             string       `json:"name,omitempty"`
	Color            raster.Color `json:"color"`
}

// Table maps (height class, temperature class) to a terrain color. It is
// immutable once built.
type Table struct {
	shades [][]raster.Color
	names  [][]string
}

// BuildTable blends [cold tint, base, hot tint] for every family with the
// exclusive triple blend. The step count is chosen so each family yields
// exactly temperatureClasses shades, which must be odd and at least 3.
func BuildTable(p Palette, temperatureClasses int) (*Table, error) {
	if temperatureClasses < 3 || temperatureClasses%2 == 0 {
		return nil, fmt.Errorf("%w: temperature class count must be odd and >= 3, got %d", ErrPalette, temperatureClasses)
	}
	if len(p.Families) == 0 {
		return nil, fmt.Errorf("%w: no terrain families", ErrPalette)
	}
	steps := (temperatureClasses - 3) / 2

	t := &Table{
		shades: make([][]raster.Color, len(p.Families)),
		names:  make([][]string, len(p.Families)),
	}
	for i, family := range p.Families {
		hexes, err := colorblend.ExclusiveTripleBlend([]string{p.ColdTint, family.Base, p.HotTint}, steps)
		if err != nil {
			return nil, fmt.Errorf("%w: family %d (%s): %w", ErrPalette, i+1, family.Base, err)
		}

		shades := make([]raster.Color, len(hexes))
		for j, hex := range hexes {
			c, err := raster.ParseColor(hex)
			if err != nil {
				return nil, fmt.Errorf("%w: family %d shade %d: %w", ErrPalette, i+1, j+1, err)
			}
			shades[j] = c
		}
		t.shades[i] = shades

		names := make([]string, len(shades))
		copy(names, family.Names)
		t.names[i] = names
	}
	return t, nil
}

// HeightClasses returns the number of families.
func (t *Table) HeightClasses() int {
	return len(t.shades)
}

// TemperatureClasses returns the number of shades per family.
func (t *Table) TemperatureClasses() int {
	if len(t.shades) == 0 {
		return 0
	}
	return len(t.shades[0])
}

// Lookup returns the color for 1-based classes. Class 0 or any class out of
// range yields raster.Fallback.
func (t *Table) Lookup(heightClass, temperatureClass int) raster.Color {
	if heightClass < 1 || heightClass > len(t.shades) {
		return raster.Fallback
	}
	shades := t.shades[heightClass-1]
	if temperatureClass < 1 || temperatureClass > len(shades) {
		return raster.Fallback
	}
	return shades[temperatureClass-1]
}

// Entries lists every cell ordered by height class, then temperature class.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.HeightClasses()*t.TemperatureClasses())
	for h, shades := range t.shades {
		for tc, c := range shades {
			entries = append(entries, Entry{
				HeightClass:      h + 1,
				TemperatureClass: tc + 1,
				Name:             t.names[h][tc],
				Color:            c,
			})
		}
	}
	return entries
}
