// Package noisemap composites seeded noise layers into normalized scalar
// fields and quantizes them into color grids.
//
// A Map's layer list is append-only and must not be modified while Generate
// runs. Every transform returns a new Field.
package noisemap

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/VoidMesh/terrainpainter/internal/logging"
	"github.com/VoidMesh/terrainpainter/internal/noise"
)

var (
	// ErrArgument is returned for invalid dimensions, layers and thresholds.
	ErrArgument = errors.New("invalid noise map argument")
	// ErrDimensionMismatch is returned when two fields or a field and its map differ in size.
	ErrDimensionMismatch = errors.New("field dimensions do not match")
	// ErrDegenerateField is returned by Normalize for fields with no finite range.
	ErrDegenerateField = errors.New("field has no range to normalize")
)

// SamplerFactory builds the noise primitive for a layer.
type SamplerFactory func(seed int64, dimension int) (noise.Sampler, error)

// Option configures a Map.
type Option func(*Map)

// WithAlgorithm selects the noise algorithm used for new layers.
func WithAlgorithm(algorithm noise.Algorithm) Option {
	return func(m *Map) {
		m.factory = func(seed int64, dimension int) (noise.Sampler, error) {
			return noise.NewSampler(algorithm, seed, dimension)
		}
	}
}

// WithSamplerFactory replaces sampler construction entirely.
func WithSamplerFactory(factory SamplerFactory) Option {
	return func(m *Map) {
		m.factory = factory
	}
}

// Map owns grid dimensions and an ordered list of layers.
type Map struct {
	width, height int
	layers        []Layer
	factory       SamplerFactory
}

// New creates a Map. Perlin noise is used unless an option says otherwise.
func New(width, height int, opts ...Option) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: map dimensions must be positive, got %dx%d", ErrArgument, width, height)
	}

	m := &Map{width: width, height: height}
	WithAlgorithm(noise.Perlin)(m)
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Width returns the grid width in pixels.
func (m *Map) Width() int { return m.width }

// Height returns the grid height in pixels.
func (m *Map) Height() int { return m.height }

// AddLayer validates cfg, builds its sampler and appends it.
func (m *Map) AddLayer(cfg LayerConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.Dimension == 0 {
		cfg.Dimension = 2
	}

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = rand.Int64()
		logging.GetLogger().Debug("Layer seed not set, using random seed", "layer", len(m.layers), "seed", seed)
	}

	sampler, err := m.factory(seed, cfg.Dimension)
	if err != nil {
		return fmt.Errorf("failed to create sampler for layer %d: %w", len(m.layers), err)
	}

	var mask *MaskRange
	if cfg.Mask != nil {
		r := *cfg.Mask
		mask = &r
	}

	m.layers = append(m.layers, Layer{
		Frequency:       cfg.Frequency,
		Amplitude:       cfg.Amplitude,
		Seed:            seed,
		Dimension:       cfg.Dimension,
		CenterAmplified: cfg.CenterAmplified,
		Invert:          cfg.Invert,
		Mask:            mask,
		sampler:         sampler,
	})
	logging.WithLayer(len(m.layers)-1, seed).Debug("Added noise layer",
		"frequency", cfg.Frequency, "amplitude", cfg.Amplitude, "dimension", cfg.Dimension,
		"center_amplified", cfg.CenterAmplified, "invert", cfg.Invert, "masked", mask != nil)
	return nil
}

// Generate samples every layer at every pixel, accumulates
// value*amplitude*factor per cell in layer order, and rescales the result to
// [0, 1]. A constant result (including a map with no layers) yields a
// zero-filled field.
func (m *Map) Generate(ctx context.Context) (*Field, error) {
	logger := logging.WithGrid(m.width, m.height)
	logger.Debug("Generating noise field", "layers", len(m.layers))
	start := time.Now()

	field, err := NewField(m.width, m.height)
	if err != nil {
		return nil, err
	}

	err = forEachRow(ctx, m.height, func(y int) {
		row := field.Row(y)
		for i := range m.layers {
			layer := &m.layers[i]
			factor := 1.0
			if layer.CenterAmplified {
				factor = m.centerFactor(y)
			}
			for x := range row {
				row[x] += layer.value(x, y, m.width, m.height) * layer.Amplitude * factor
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("noise generation interrupted: %w", err)
	}

	normalized, err := Normalize(field)
	if errors.Is(err, ErrDegenerateField) {
		logger.Warn("Generated field is constant, returning zero field", "layers", len(m.layers))
		return normalized, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Noise field generated", "duration", time.Since(start))
	return normalized, nil
}

// centerFactor is 1 at the vertical center and falls off parabolically to 0
// at the top and bottom edges.
func (m *Map) centerFactor(y int) float64 {
	center := float64(m.height) / 2
	linear := 1 - math.Abs(float64(y)-center)/center
	if linear < 0 {
		return 0
	}
	return linear * linear
}

// Normalize rescales f to [0, 1] with a global min-max pass. When f has no
// finite range it returns a zero-filled field together with
// ErrDegenerateField.
func Normalize(f *Field) (*Field, error) {
	out := f.empty()

	lo, hi := f.MinMax()
	span := hi - lo
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return out, fmt.Errorf("%w: min %v max %v", ErrDegenerateField, lo, hi)
	}

	for i, v := range f.Values {
		out.Values[i] = (v - lo) / span
	}
	return out, nil
}

// forEachRow runs fn for every row, spread across GOMAXPROCS workers. No new
// rows are scheduled once ctx is done.
func forEachRow(ctx context.Context, height int, fn func(y int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
