package noise

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"
)

// SimplexSampler samples OpenSimplex noise in two to four dimensions.
type SimplexSampler struct {
	noise     opensimplex.Noise
	seed      int64
	dimension int
}

// NewSimplexSampler creates an OpenSimplex sampler with the given seed.
func NewSimplexSampler(seed int64, dimension int) (*SimplexSampler, error) {
	if dimension < 2 || dimension > 4 {
		return nil, fmt.Errorf("%w: opensimplex supports 2-4, got %d", ErrUnsupportedDimension, dimension)
	}
	return &SimplexSampler{
		noise:     opensimplex.New(seed),
		seed:      seed,
		dimension: dimension,
	}, nil
}

func (s *SimplexSampler) Sample(coords ...float64) float64 {
	x, y := coord(coords, 0), coord(coords, 1)
	switch s.dimension {
	case 2:
		return clamp(s.noise.Eval2(x, y))
	case 3:
		return clamp(s.noise.Eval3(x, y, coord(coords, 2)))
	default:
		return clamp(s.noise.Eval4(x, y, coord(coords, 2), coord(coords, 3)))
	}
}

func (s *SimplexSampler) Seed() int64 {
	return s.seed
}

func (s *SimplexSampler) Dimension() int {
	return s.dimension
}
