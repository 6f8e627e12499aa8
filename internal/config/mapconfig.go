package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/VoidMesh/terrainpainter/internal/noise"
	"github.com/VoidMesh/terrainpainter/internal/noisemap"
	"github.com/VoidMesh/terrainpainter/internal/raster"
	"github.com/VoidMesh/terrainpainter/internal/terrain"
)

var ErrInvalidMapConfig = errors.New("invalid map config")

// MapConfig holds every parameter of a terrain render.
type MapConfig struct {
	Width       int             `toml:"width"`
	Height      int             `toml:"height"`
	Seed        int64           `toml:"seed"`
	FadeWidth   float64         `toml:"fade_width"`
	Noise       string          `toml:"noise"`
	HeightMap   FieldConfig     `toml:"height_map"`
	Temperature FieldConfig     `toml:"temperature_map"`
	Palette     terrain.Palette `toml:"palette"`
	Classes     ClassesConfig   `toml:"classes"`
	Ores        []OreConfig     `toml:"ores"`
}

// FieldConfig describes one noise map and its quantization bands. Layer
// seeds without an explicit value derive from map seed * SeedScale + offset.
type FieldConfig struct {
	SeedScale   int64             `toml:"seed_scale,omitempty"`
	Layers      []LayerConfig     `toml:"layers"`
	Bands       noisemap.ColorMap `toml:"bands"`
	BlendWeight *float64          `toml:"blend_weight"`
}

type LayerConfig struct {
	Frequency       float64             `toml:"frequency"`
	Amplitude       float64             `toml:"amplitude"`
	Seed            *int64              `toml:"seed"`
	SeedOffset      *int64              `toml:"seed_offset"`
	Dimension       int                 `toml:"dimension,omitempty"`
	CenterAmplified bool                `toml:"center_amplified,omitempty"`
	Invert          bool                `toml:"invert,omitempty"`
	Mask            *noisemap.MaskRange `toml:"mask"`
}

type ClassesConfig struct {
	Height      []raster.Color `toml:"height"`
	Temperature []raster.Color `toml:"temperature"`
}

// OreConfig is a single-layer map quantized with one band.
type OreConfig struct {
	Name       string       `toml:"name"`
	Threshold  float64      `toml:"threshold"`
	Color      raster.Color `toml:"color"`
	Frequency  float64      `toml:"frequency"`
	Amplitude  float64      `toml:"amplitude"`
	SeedOffset int64        `toml:"seed_offset"`
}

func offset(v int64) *int64 {
	return &v
}

func band(threshold float64, hex string) noisemap.Band {
	return noisemap.Band{Threshold: threshold, Color: raster.MustParseColor(hex)}
}

// DefaultMapConfig returns the stock 150x100 world.
func DefaultMapConfig() *MapConfig {
	return &MapConfig{
		Width:     150,
		Height:    100,
		Seed:      12345,
		FadeWidth: 30,
		Noise:     string(noise.Perlin),
		HeightMap: FieldConfig{
			SeedScale: 1,
			Layers: []LayerConfig{
				{Frequency: 4, Amplitude: 0.5, SeedOffset: offset(0)},
				{Frequency: 6, Amplitude: 0.5, SeedOffset: offset(1)},
				{Frequency: 12, Amplitude: 0.5, SeedOffset: offset(2)},
			},
			Bands: noisemap.ColorMap{
				band(0.25, "#000000"), // deep water
				band(0.4, "#1C1C1C"),  // water
				band(0.45, "#393939"), // sand
				band(0.49, "#555555"), // scrub
				band(0.63, "#717171"), // grassland
				band(0.73, "#8E8E8E"), // forest
				band(0.78, "#AAAAAA"), // steppe
				band(0.85, "#C6C6C6"), // cliffs
				band(0.9, "#E3E3E3"),  // mountain
				band(1.0, "#FFFFFF"),  // peaks
			},
		},
		Temperature: FieldConfig{
			SeedScale: 2,
			Layers: []LayerConfig{
				{Frequency: 6, Amplitude: 0.125, SeedOffset: offset(0), CenterAmplified: true},
				{Frequency: 8, Amplitude: 0.125, SeedOffset: offset(1), CenterAmplified: true},
			},
			Bands: noisemap.ColorMap{
				band(0.005, "#00CDF9"), // arctic
				band(0.075, "#1AB3A2"), // cold
				band(0.7, "#33984B"),   // temperate
				band(0.8, "#7C5E3E"),   // warm
				band(1.0, "#C42430"),   // hot
			},
		},
		Palette: terrain.DefaultPalette(),
		Classes: ClassesConfig{
			Height:      append([]raster.Color(nil), terrain.DefaultHeightClasses...),
			Temperature: append([]raster.Color(nil), terrain.DefaultTemperatureClasses...),
		},
		Ores: []OreConfig{
			{Name: "lead", Threshold: 0.22, Color: raster.MustParseColor("#2A2F4E"), Frequency: 50, Amplitude: 0.125, SeedOffset: 0},
			{Name: "tin", Threshold: 0.22, Color: raster.MustParseColor("#C7CFDD"), Frequency: 50, Amplitude: 0.125, SeedOffset: 1},
			{Name: "copper", Threshold: 0.2, Color: raster.MustParseColor("#8E251D"), Frequency: 50, Amplitude: 0.125, SeedOffset: 2},
			{Name: "iron", Threshold: 0.2, Color: raster.MustParseColor("#1C121C"), Frequency: 50, Amplitude: 0.125, SeedOffset: 3},
			{Name: "silver", Threshold: 0.18, Color: raster.MustParseColor("#92A1B9"), Frequency: 50, Amplitude: 0.125, SeedOffset: 4},
			{Name: "gold", Threshold: 0.15, Color: raster.MustParseColor("#FFA214"), Frequency: 50, Amplitude: 0.125, SeedOffset: 5},
		},
	}
}

// LoadMapConfig reads a TOML map config. Keys left out of the file keep
// their DefaultMapConfig values; a listed array replaces the default one.
func LoadMapConfig(path string) (*MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map config: %w", err)
	}
	return ParseMapConfig(data)
}

// ParseMapConfig decodes TOML map config text and validates it.
func ParseMapConfig(data []byte) (*MapConfig, error) {
	var file MapConfig
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidMapConfig, undecoded)
	}

	cfg := DefaultMapConfig()
	if md.IsDefined("width") {
		cfg.Width = file.Width
	}
	if md.IsDefined("height") {
		cfg.Height = file.Height
	}
	if md.IsDefined("seed") {
		cfg.Seed = file.Seed
	}
	if md.IsDefined("fade_width") {
		cfg.FadeWidth = file.FadeWidth
	}
	if md.IsDefined("noise") {
		cfg.Noise = file.Noise
	}
	mergeField(&cfg.HeightMap, file.HeightMap, md, "height_map")
	mergeField(&cfg.Temperature, file.Temperature, md, "temperature_map")
	if md.IsDefined("palette", "cold_tint") {
		cfg.Palette.ColdTint = file.Palette.ColdTint
	}
	if md.IsDefined("palette", "hot_tint") {
		cfg.Palette.HotTint = file.Palette.HotTint
	}
	if md.IsDefined("palette", "families") {
		cfg.Palette.Families = file.Palette.Families
	}
	if md.IsDefined("classes", "height") {
		cfg.Classes.Height = file.Classes.Height
	}
	if md.IsDefined("classes", "temperature") {
		cfg.Classes.Temperature = file.Classes.Temperature
	}
	if md.IsDefined("ores") {
		cfg.Ores = file.Ores
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeField(dst *FieldConfig, src FieldConfig, md toml.MetaData, section string) {
	if md.IsDefined(section, "seed_scale") {
		dst.SeedScale = src.SeedScale
	}
	if md.IsDefined(section, "layers") {
		dst.Layers = src.Layers
	}
	if md.IsDefined(section, "bands") {
		dst.Bands = src.Bands
	}
	if md.IsDefined(section, "blend_weight") {
		dst.BlendWeight = src.BlendWeight
	}
}

// Validate checks everything that can be checked without building samplers.
func (c *MapConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidMapConfig, c.Width, c.Height)
	}
	if !(c.FadeWidth > 0) {
		return fmt.Errorf("%w: fade_width must be positive, got %v", ErrInvalidMapConfig, c.FadeWidth)
	}
	if _, err := noise.ParseAlgorithm(c.Noise); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMapConfig, err)
	}

	fields := []struct {
		name string
		FieldConfig
	}{{"height", c.HeightMap}, {"temperature", c.Temperature}}
	for _, field := range fields {
		name := field.name
		if len(field.Bands) == 0 {
			return fmt.Errorf("%w: %s has no bands", ErrInvalidMapConfig, name)
		}
		for i, layer := range field.Layers {
			if !(layer.Frequency > 0) {
				return fmt.Errorf("%w: %s layer %d frequency must be positive", ErrInvalidMapConfig, name, i)
			}
			if layer.Dimension < 0 {
				return fmt.Errorf("%w: %s layer %d dimension must be at least 1", ErrInvalidMapConfig, name, i)
			}
			if layer.Mask != nil && layer.Mask.Min > layer.Mask.Max {
				return fmt.Errorf("%w: %s layer %d mask min exceeds max", ErrInvalidMapConfig, name, i)
			}
		}
	}

	if len(c.Palette.Families) != len(c.Classes.Height) {
		return fmt.Errorf("%w: %d palette families for %d height classes", ErrInvalidMapConfig, len(c.Palette.Families), len(c.Classes.Height))
	}
	for i, ore := range c.Ores {
		if !(ore.Frequency > 0) {
			return fmt.Errorf("%w: ore %d (%s) frequency must be positive", ErrInvalidMapConfig, i, ore.Name)
		}
	}
	return nil
}

// LoadMap returns the map config named by MapConfigPath, or the default
// config when no path is set.
func (r RenderConfig) LoadMap() (*MapConfig, error) {
	if r.MapConfigPath == "" {
		return DefaultMapConfig(), nil
	}
	return LoadMapConfig(r.MapConfigPath)
}

// Algorithm returns the configured noise algorithm.
func (c *MapConfig) Algorithm() noise.Algorithm {
	a, err := noise.ParseAlgorithm(c.Noise)
	if err != nil {
		return noise.Perlin
	}
	return a
}

// ClassifierConfig returns the class tables and palette for terrain.NewClassifier.
func (c *MapConfig) ClassifierConfig() terrain.Config {
	return terrain.Config{
		HeightClasses:      terrain.ClassTable(c.Classes.Height),
		TemperatureClasses: terrain.ClassTable(c.Classes.Temperature),
		Palette:            c.Palette,
	}
}

// NoiseLayers resolves layer seeds against the map seed.
func (c *MapConfig) NoiseLayers(field FieldConfig) []noisemap.LayerConfig {
	scale := field.SeedScale
	if scale == 0 {
		scale = 1
	}
	base := c.Seed * scale

	out := make([]noisemap.LayerConfig, len(field.Layers))
	for i, l := range field.Layers {
		var seed *int64
		switch {
		case l.Seed != nil:
			seed = noisemap.Seed(*l.Seed)
		case l.SeedOffset != nil:
			seed = noisemap.Seed(base + *l.SeedOffset)
		}
		out[i] = noisemap.LayerConfig{
			Frequency:       l.Frequency,
			Amplitude:       l.Amplitude,
			Seed:            seed,
			Dimension:       l.Dimension,
			CenterAmplified: l.CenterAmplified,
			Invert:          l.Invert,
			Mask:            l.Mask,
		}
	}
	return out
}

// Encode renders the config as TOML.
func (c *MapConfig) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("failed to encode map config: %w", err)
	}
	return buf.String(), nil
}
