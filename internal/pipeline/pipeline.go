// Package pipeline runs the full render: height map, temperature map, painted
// terrain and ore maps, all driven by a config.MapConfig.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/VoidMesh/terrainpainter/internal/config"
	"github.com/VoidMesh/terrainpainter/internal/logging"
	"github.com/VoidMesh/terrainpainter/internal/noisemap"
	"github.com/VoidMesh/terrainpainter/internal/raster"
	"github.com/VoidMesh/terrainpainter/internal/terrain"
)

const (
	HeightMapFile      = "height_map.png"
	TemperatureMapFile = "temperature_map.png"
	PaintedMapFile     = "painted_map.png"
)

// OreMapFile names the PNG written for the i-th ore.
func OreMapFile(i int) string {
	return fmt.Sprintf("ore_map_%d.png", i)
}

// Ore is one rendered ore map.
type Ore struct {
	Name  string
	Field *noisemap.Field
	Map   *raster.ColorGrid
}

// Result holds every intermediate field and grid of a run.
type Result struct {
	Seed             int64
	Width            int
	Height           int
	HeightField      *noisemap.Field
	TemperatureField *noisemap.Field
	HeightMap        *raster.ColorGrid
	TemperatureMap   *raster.ColorGrid
	Painted          *raster.ColorGrid
	Ores             []Ore
	Duration         time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMapOptions passes options to every noisemap.Map the pipeline builds.
// Options are applied after the configured noise algorithm.
func WithMapOptions(opts ...noisemap.Option) Option {
	return func(p *Pipeline) {
		p.mapOpts = append(p.mapOpts, opts...)
	}
}

// WithoutOres skips the ore maps.
func WithoutOres() Option {
	return func(p *Pipeline) {
		p.skipOres = true
	}
}

// Pipeline is reusable; each Run builds fresh noise maps.
type Pipeline struct {
	cfg        *config.MapConfig
	classifier *terrain.Classifier
	mapOpts    []noisemap.Option
	skipOres   bool
}

// New validates cfg and builds the terrain classifier.
func New(cfg *config.MapConfig, logger terrain.LoggerInterface, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	classifier, err := terrain.NewClassifier(logger, cfg.ClassifierConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier: %w", err)
	}

	p := &Pipeline{cfg: cfg, classifier: classifier}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Classifier returns the classifier built for the config.
func (p *Pipeline) Classifier() *terrain.Classifier {
	return p.classifier
}

// Run renders everything. It is deterministic when every layer has a seed.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	cfg := p.cfg
	logger := logging.WithGrid(cfg.Width, cfg.Height).With("seed", cfg.Seed)
	logger.Debug("Starting render", "noise", cfg.Algorithm())

	res := &Result{Seed: cfg.Seed, Width: cfg.Width, Height: cfg.Height}

	heightMap, err := p.newMap(cfg.NoiseLayers(cfg.HeightMap))
	if err != nil {
		return nil, fmt.Errorf("height map: %w", err)
	}
	heightField, err := heightMap.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("height map: %w", err)
	}
	res.HeightField, err = heightMap.ApplyBorderFade(heightField, cfg.FadeWidth)
	if err != nil {
		return nil, fmt.Errorf("height map: %w", err)
	}
	res.HeightMap, err = p.quantize(heightMap, res.HeightField, cfg.HeightMap.Bands, "height")
	if err != nil {
		return nil, err
	}

	tempMap, err := p.newMap(cfg.NoiseLayers(cfg.Temperature))
	if err != nil {
		return nil, fmt.Errorf("temperature map: %w", err)
	}
	res.TemperatureField, err = tempMap.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("temperature map: %w", err)
	}
	if w := cfg.Temperature.BlendWeight; w != nil {
		res.TemperatureField, err = blendTemperature(tempMap, res.TemperatureField, res.HeightField, *w)
		if err != nil {
			return nil, err
		}
	}
	res.TemperatureMap, err = p.quantize(tempMap, res.TemperatureField, cfg.Temperature.Bands, "temperature")
	if err != nil {
		return nil, err
	}

	res.Painted, err = p.classifier.Classify(ctx, res.HeightMap, res.TemperatureMap)
	if err != nil {
		return nil, fmt.Errorf("painted map: %w", err)
	}

	if !p.skipOres {
		res.Ores, err = p.ores(ctx)
		if err != nil {
			return nil, err
		}
	}

	res.Duration = time.Since(start)
	logging.WithDuration("render", res.Duration).Info("Render complete",
		"width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed, "ores", len(res.Ores))
	return res, nil
}

func (p *Pipeline) newMap(layers []noisemap.LayerConfig) (*noisemap.Map, error) {
	opts := append([]noisemap.Option{noisemap.WithAlgorithm(p.cfg.Algorithm())}, p.mapOpts...)
	m, err := noisemap.New(p.cfg.Width, p.cfg.Height, opts...)
	if err != nil {
		return nil, err
	}
	for i, layer := range layers {
		if err := m.AddLayer(layer); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return m, nil
}

func (p *Pipeline) quantize(m *noisemap.Map, f *noisemap.Field, cm noisemap.ColorMap, name string) (*raster.ColorGrid, error) {
	if !cm.Sorted() {
		logging.WithFields("map", name).Warn("Color map thresholds are not ascending; first match wins")
	}
	grid, err := m.QuantizeToColors(f, cm)
	if err != nil {
		return nil, fmt.Errorf("%s map: %w", name, err)
	}
	return grid, nil
}

// blendTemperature weights temperature by faded height and renormalizes.
func blendTemperature(m *noisemap.Map, temp, height *noisemap.Field, weight float64) (*noisemap.Field, error) {
	blended, err := m.Blend(temp, height, weight)
	if err != nil {
		return nil, fmt.Errorf("temperature blend: %w", err)
	}
	normalized, err := noisemap.Normalize(blended)
	if errors.Is(err, noisemap.ErrDegenerateField) {
		logging.WithFields("map", "temperature").Warn("Blended temperature has no range; using zero field")
		return normalized, nil
	}
	if err != nil {
		return nil, fmt.Errorf("temperature blend: %w", err)
	}
	return normalized, nil
}

func (p *Pipeline) ores(ctx context.Context) ([]Ore, error) {
	out := make([]Ore, 0, len(p.cfg.Ores))
	for i, ore := range p.cfg.Ores {
		m, err := p.newMap([]noisemap.LayerConfig{{
			Frequency: ore.Frequency,
			Amplitude: ore.Amplitude,
			Seed:      noisemap.Seed(p.cfg.Seed + ore.SeedOffset),
		}})
		if err != nil {
			return nil, fmt.Errorf("ore %d (%s): %w", i, ore.Name, err)
		}
		field, err := m.Generate(ctx)
		if err != nil {
			return nil, fmt.Errorf("ore %d (%s): %w", i, ore.Name, err)
		}
		grid, err := m.QuantizeToColors(field, noisemap.ColorMap{{Threshold: ore.Threshold, Color: ore.Color}})
		if err != nil {
			return nil, fmt.Errorf("ore %d (%s): %w", i, ore.Name, err)
		}
		out = append(out, Ore{Name: ore.Name, Field: field, Map: grid})
	}
	return out, nil
}

// Save writes every map of res into dir as PNG, creating dir if needed.
// It returns the written paths in write order.
func Save(res *Result, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	type output struct {
		name string
		grid *raster.ColorGrid
	}
	outputs := []output{
		{HeightMapFile, res.HeightMap},
		{TemperatureMapFile, res.TemperatureMap},
		{PaintedMapFile, res.Painted},
	}
	for i, ore := range res.Ores {
		outputs = append(outputs, output{OreMapFile(i), ore.Map})
	}

	paths := make([]string, 0, len(outputs))
	for _, o := range outputs {
		if o.grid == nil {
			continue
		}
		path := filepath.Join(dir, o.name)
		if err := raster.Save(o.grid, path); err != nil {
			return paths, err
		}
		logging.WithFields("path", path).Debug("Wrote map")
		paths = append(paths, path)
	}
	return paths, nil
}
