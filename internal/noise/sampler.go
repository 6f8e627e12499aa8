package noise

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownAlgorithm     = errors.New("unknown noise algorithm")
	ErrUnsupportedDimension = errors.New("unsupported noise dimension")
)

// Algorithm names a coherent-noise implementation.
type Algorithm string

const (
	Perlin      Algorithm = "perlin"
	OpenSimplex Algorithm = "opensimplex"
)

//go:generate mockgen -destination=../testmocks/noise/sampler.go -package=mocknoise github.com/VoidMesh/terrainpainter/internal/noise Sampler

// Sampler is a seeded coherent-noise function. Sample returns a value in
// [-1, 1] and is deterministic for a fixed seed and coordinates. Implementations
// are read-only after construction and safe for concurrent use.
type Sampler interface {
	Sample(coords ...float64) float64
	Seed() int64
	Dimension() int
}

// ParseAlgorithm resolves a configured algorithm name. Empty means Perlin.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case "", Perlin:
		return Perlin, nil
	case OpenSimplex, "simplex":
		return OpenSimplex, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// NewSampler creates a sampler of the given algorithm and dimensionality.
func NewSampler(algorithm Algorithm, seed int64, dimension int) (Sampler, error) {
	var (
		s   Sampler
		err error
	)
	switch algorithm {
	case Perlin, "":
		s, err = NewPerlinSampler(seed, dimension)
	case OpenSimplex:
		s, err = NewSimplexSampler(seed, dimension)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// coord returns coords[i], or 0 past the end.
func coord(coords []float64, i int) float64 {
	if i < len(coords) {
		return coords[i]
	}
	return 0
}

func clamp(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}
