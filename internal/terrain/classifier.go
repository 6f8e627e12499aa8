// Package terrain turns quantized height and temperature grids into terrain
// colors through a precomputed (height class, temperature class) table.
package terrain

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/VoidMesh/terrainpainter/internal/raster"
)

// Config selects the class tables and the palette the table is built from.
type Config struct {
	HeightClasses      ClassTable
	TemperatureClasses ClassTable
	Palette            Palette
}

// DefaultConfig returns the default class tables and palette.
func DefaultConfig() Config {
	return Config{
		HeightClasses:      DefaultHeightClasses,
		TemperatureClasses: DefaultTemperatureClasses,
		Palette:            DefaultPalette(),
	}
}

// Classifier is safe for concurrent use once constructed.
type Classifier struct {
	logger       LoggerInterface
	heights      ClassTable
	temperatures ClassTable
	table        *Table
}

// NewClassifier validates cfg and builds the terrain table.
func NewClassifier(logger LoggerInterface, cfg Config) (*Classifier, error) {
	componentLogger := logger.With("component", "terrain-classifier")

	if len(cfg.Palette.Families) != len(cfg.HeightClasses) {
		return nil, fmt.Errorf("%w: %d families for %d height classes", ErrPalette, len(cfg.Palette.Families), len(cfg.HeightClasses))
	}
	heights, err := checkClasses(cfg.HeightClasses)
	if err != nil {
		return nil, fmt.Errorf("height classes: %w", err)
	}
	temperatures, err := checkClasses(cfg.TemperatureClasses)
	if err != nil {
		return nil, fmt.Errorf("temperature classes: %w", err)
	}

	table, err := BuildTable(cfg.Palette, len(cfg.TemperatureClasses))
	if err != nil {
		return nil, err
	}
	componentLogger.Debug("Built terrain table",
		"height_classes", table.HeightClasses(), "temperature_classes", table.TemperatureClasses())

	return &Classifier{
		logger:       componentLogger,
		heights:      heights,
		temperatures: temperatures,
		table:        table,
	}, nil
}

// NewClassifierWithDefaultLogger creates a classifier with the default logger (convenience constructor for production use).
func NewClassifierWithDefaultLogger(cfg Config) (*Classifier, error) {
	return NewClassifier(NewDefaultLoggerWrapper(), cfg)
}

// checkClasses rejects repeated colors and returns a private copy of t.
func checkClasses(t ClassTable) (ClassTable, error) {
	for i, c := range t {
		if t[:i].ClassOf(c) != 0 {
			return nil, fmt.Errorf("%w: color %s listed twice", ErrPalette, c.Hex())
		}
	}
	return append(ClassTable(nil), t...), nil
}

// Table returns the terrain table.
func (c *Classifier) Table() *Table {
	return c.table
}

// HeightClassOf returns the height class of a quantized color, or 0.
func (c *Classifier) HeightClassOf(col raster.Color) int {
	return c.heights.ClassOf(col)
}

// TemperatureClassOf returns the temperature class of a quantized color, or 0.
func (c *Classifier) TemperatureClassOf(col raster.Color) int {
	return c.temperatures.ClassOf(col)
}


// Classify paints every pixel from its height and temperature colors. Both
// grids must be the same size. Pixels whose colors are not in the class
// tables become raster.Fallback.
func (c *Classifier) Classify(ctx context.Context, height, temperature *raster.ColorGrid) (*raster.ColorGrid, error) {
	if !height.SameSize(temperature) {
		return nil, fmt.Errorf("%w: height is %dx%d, temperature is %dx%d",
			ErrDimensionMismatch, height.Width, height.Height, temperature.Width, temperature.Height)
	}
	start := time.Now()

	out, err := raster.NewColorGrid(height.Width, height.Height, raster.Fallback)
	if err != nil {
		return nil, err
	}

	unclassified := make([]int, height.Height)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < height.Height; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hs, ts, dst := height.Row(y), temperature.Row(y), out.Row(y)
			for x := range dst {
				hc, tc := c.HeightClassOf(hs[x]), c.TemperatureClassOf(ts[x])
				if hc == 0 || tc == 0 {
					unclassified[y]++
				}
				dst[x] = c.table.Lookup(hc, tc)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classification interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classification interrupted: %w", err)
	}

	total := 0
	for _, n := range unclassified {
		total += n
	}
	if total > 0 {
		c.logger.Warn("Unclassified pixels painted with fallback color", "count", total, "fallback", raster.Fallback.Hex())
	}
	c.logger.Debug("Terrain classified", "width", out.Width, "height", out.Height, "duration", time.Since(start))
	return out, nil
}

// Survey returns the distinct colors of g as hex codes in first-seen
// row-major order.
func Survey(g *raster.ColorGrid) []string {
	seen := make(map[raster.Color]struct{})
	var codes []string
	for _, p := range g.Pixels {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		codes = append(codes, p.Hex())
	}
	return codes
}
