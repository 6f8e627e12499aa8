package noisemap

import (
	"github.com/VoidMesh/terrainpainter/internal/raster"
)

// Band pairs an upper threshold with the color for values at or below it.
type Band struct {
	Threshold float64      `toml:"threshold" json:"threshold"`
	Color     raster.Color `toml:"color" json:"color"`
}

// ColorMap is an ordered list of bands. Lookup returns the first band whose
// threshold is >= the value, so callers are expected to list thresholds in
// ascending order. Order is never rearranged here.
type ColorMap []Band

// Lookup returns the color for v, or raster.Fallback when no band matches.
func (cm ColorMap) Lookup(v float64) raster.Color {
	for _, band := range cm {
		if band.Threshold >= v {
			return band.Color
		}
	}
	return raster.Fallback
}

// Sorted reports whether thresholds are strictly ascending.
func (cm ColorMap) Sorted() bool {
	for i := 1; i < len(cm); i++ {
		if cm[i].Threshold <= cm[i-1].Threshold {
			return false
		}
	}
	return true
}
