package noisemap

import (
	"fmt"
	"math"

	"github.com/VoidMesh/terrainpainter/internal/noise"
)

// MaskRange keeps sampled values within [Min, Max] and zeroes the rest.
type MaskRange struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

func (r MaskRange) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// LayerConfig describes one octave. Zero Dimension means 2. A nil Seed picks
// a random seed, which makes Generate non-deterministic.
type LayerConfig struct {
	Frequency       float64
	Amplitude       float64
	Seed            *int64
	Dimension       int
	CenterAmplified bool
	Invert          bool
	Mask            *MaskRange
}

// Seed is a helper for filling LayerConfig.Seed.
func Seed(v int64) *int64 {
	return &v
}

func (c LayerConfig) validate() error {
	if !(c.Frequency > 0) || math.IsInf(c.Frequency, 0) {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrArgument, c.Frequency)
	}
	if math.IsNaN(c.Amplitude) || math.IsInf(c.Amplitude, 0) {
		return fmt.Errorf("%w: amplitude must be finite, got %v", ErrArgument, c.Amplitude)
	}
	if c.Dimension < 0 {
		return fmt.Errorf("%w: dimension must be at least 1, got %d", ErrArgument, c.Dimension)
	}
	if c.Mask != nil && c.Mask.Min > c.Mask.Max {
		return fmt.Errorf("%w: mask min %v exceeds max %v", ErrArgument, c.Mask.Min, c.Mask.Max)
	}
	return nil
}

// Layer is an immutable octave owned by a Map.
type Layer struct {
	Frequency       float64
	Amplitude       float64
	Seed            int64
	Dimension       int
	CenterAmplified bool
	Invert          bool
	Mask            *MaskRange

	sampler noise.Sampler
}

// value samples the layer at pixel (x, y) and applies inversion and masking.
func (l *Layer) value(x, y, width, height int) float64 {
	u := float64(x) * l.Frequency / float64(width)
	v := float64(y) * l.Frequency / float64(height)

	value := l.sampler.Sample(u, v)
	if l.Invert {
		value = 1 - value
	}
	if l.Mask != nil && !l.Mask.contains(value) {
		value = 0
	}
	return value
}
