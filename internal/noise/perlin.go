package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// PerlinSampler samples classic Perlin noise in one to three dimensions.
type PerlinSampler struct {
	noise     *perlin.Perlin
	seed      int64
	dimension int
}

// NewPerlinSampler creates a Perlin sampler with the given seed.
func NewPerlinSampler(seed int64, dimension int) (*PerlinSampler, error) {
	if dimension < 1 || dimension > 3 {
		return nil, fmt.Errorf("%w: perlin supports 1-3, got %d", ErrUnsupportedDimension, dimension)
	}
	// alpha=2, beta=2, n=3 give good terrain-like noise
	return &PerlinSampler{
		noise:     perlin.NewPerlin(2, 2, 3, seed),
		seed:      seed,
		dimension: dimension,
	}, nil
}

// Sample returns a noise value between -1 and 1. Missing coordinates are 0.
func (p *PerlinSampler) Sample(coords ...float64) float64 {
	switch p.dimension {
	case 1:
		return clamp(p.noise.Noise1D(coord(coords, 0)))
	case 2:
		return clamp(p.noise.Noise2D(coord(coords, 0), coord(coords, 1)))
	default:
		return clamp(p.noise.Noise3D(coord(coords, 0), coord(coords, 1), coord(coords, 2)))
	}
}

func (p *PerlinSampler) Seed() int64 {
	return p.seed
}

func (p *PerlinSampler) Dimension() int {
	return p.dimension
}
