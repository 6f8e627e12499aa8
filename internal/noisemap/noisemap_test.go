package noisemap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terrainpainter/internal/noise"
	"github.com/VoidMesh/terrainpainter/internal/testmocks"
	mocknoise "github.com/VoidMesh/terrainpainter/internal/testmocks/noise"
	"github.com/VoidMesh/terrainpainter/internal/testutil"
)

// funcSampler evaluates fn at the first two coordinates.
type funcSampler struct {
	fn   func(u, v float64) float64
	seed int64
}

func (s funcSampler) Sample(coords ...float64) float64 { return s.fn(coords[0], coords[1]) }
func (s funcSampler) Seed() int64                     { return s.seed }
func (s funcSampler) Dimension() int                  { return 2 }

func factoryFor(fns ...func(u, v float64) float64) SamplerFactory {
	next := 0
	return func(seed int64, dimension int) (noise.Sampler, error) {
		fn := fns[next%len(fns)]
		next++
		return funcSampler{fn: fn, seed: seed}, nil
	}
}

func constant(c float64) func(u, v float64) float64 {
	return func(u, v float64) float64 { return c }
}

func alongX(u, v float64) float64 { return u }

func rowValues(f *Field, y int) []float64 {
	return append([]float64(nil), f.Row(y)...)
}

func TestNew(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	m, err := New(150, 100)
	require.NoError(t, err)
	assert.Equal(t, 150, m.Width())
	assert.Equal(t, 100, m.Height())
	assert.Empty(t, m.layers)

	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrArgument)
	}
}

func TestMap_AddLayer(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	tests := []struct {
		name    string
		cfg     LayerConfig
		wantErr error
	}{
		{name: "random seed", cfg: LayerConfig{Frequency: 1, Amplitude: 1}},
		{name: "explicit seed", cfg: LayerConfig{Frequency: 4, Amplitude: 0.5, Seed: Seed(12345)}},
		{name: "three dimensional", cfg: LayerConfig{Frequency: 4, Amplitude: 0.5, Dimension: 3, Seed: Seed(1)}},
		{name: "masked", cfg: LayerConfig{Frequency: 2, Amplitude: 1, Mask: &MaskRange{Min: -0.2, Max: 0.2}}},
		{name: "zero frequency", cfg: LayerConfig{Frequency: 0, Amplitude: 1}, wantErr: ErrArgument},
		{name: "negative frequency", cfg: LayerConfig{Frequency: -3, Amplitude: 1}, wantErr: ErrArgument},
		{name: "negative dimension", cfg: LayerConfig{Frequency: 1, Amplitude: 1, Dimension: -1}, wantErr: ErrArgument},
		{name: "inverted mask", cfg: LayerConfig{Frequency: 1, Amplitude: 1, Mask: &MaskRange{Min: 0.5, Max: 0.1}}, wantErr: ErrArgument},
		{name: "unsupported dimension", cfg: LayerConfig{Frequency: 1, Amplitude: 1, Dimension: 7}, wantErr: noise.ErrUnsupportedDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(16, 8)
			require.NoError(t, err)

			err = m.AddLayer(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, m.layers)
				return
			}
			require.NoError(t, err)
			layers := m.layers
			require.Len(t, layers, 1)
			assert.Equal(t, tt.cfg.Frequency, layers[0].Frequency)
			assert.GreaterOrEqual(t, layers[0].Dimension, 1)
			if tt.cfg.Seed != nil {
				assert.Equal(t, *tt.cfg.Seed, layers[0].Seed)
			}
		})
	}
}

func TestMap_AddLayerCopiesMask(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	m, err := New(8, 8)
	require.NoError(t, err)
	mask := &MaskRange{Min: 0, Max: 1}
	require.NoError(t, m.AddLayer(LayerConfig{Frequency: 1, Amplitude: 1, Seed: Seed(3), Mask: mask}))

	mask.Max = 42
	assert.Equal(t, 1.0, m.layers[0].Mask.Max)
}

func TestMap_Generate_PerlinIsNormalizedAndDeterministic(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	build := func(seed int64, algorithm noise.Algorithm) *Field {
		m, err := New(60, 40, WithAlgorithm(algorithm))
		require.NoError(t, err)
		require.NoError(t, m.AddLayer(LayerConfig{Frequency: 4, Amplitude: 0.5, Seed: Seed(seed)}))
		require.NoError(t, m.AddLayer(LayerConfig{Frequency: 6, Amplitude: 0.5, Seed: Seed(seed + 1)}))
		require.NoError(t, m.AddLayer(LayerConfig{Frequency: 12, Amplitude: 0.5, Seed: Seed(seed + 2)}))
		f, err := m.Generate(context.Background())
		require.NoError(t, err)
		return f
	}

	for _, algorithm := range []noise.Algorithm{noise.Perlin, noise.OpenSimplex} {
		t.Run(string(algorithm), func(t *testing.T) {
			a := build(12345, algorithm)
			b := build(12345, algorithm)

			assert.Equal(t, 60, a.Width)
			assert.Equal(t, 40, a.Height)
			testutil.AssertNormalized(t, a.Values)
			assert.Equal(t, a.Values, b.Values, "same seeds should reproduce the field")

			c := build(999, algorithm)
			assert.NotEqual(t, a.Values, c.Values)
		})
	}
}

func TestMap_Generate_SamplesScaledCoordinates(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	ctrl := testmocks.NewMockController(t)
	sampler := mocknoise.NewMockSampler(ctrl.Controller)

	// 4x2 grid, frequency 2: u = x*2/4, v = y*2/2
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			u := float64(x) * 2 / 4
			v := float64(y) * 2 / 2
			sampler.EXPECT().Sample(u, v).Return(u).Times(1)
		}
	}

	m, err := New(4, 2, WithSamplerFactory(func(seed int64, dimension int) (noise.Sampler, error) {
		assert.Equal(t, int64(77), seed)
		assert.Equal(t, 2, dimension)
		return sampler, nil
	}))
	require.NoError(t, err)
	require.NoError(t, m.AddLayer(LayerConfig{Frequency: 2, Amplitude: 3, Seed: Seed(77)}))

	f, err := m.Generate(context.Background())
	require.NoError(t, err)

	for y := 0; y < 2; y++ {
		assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, rowValues(f, y), 1e-12)
	}
}

func TestMap_Generate_LayerTransforms(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	tests := []struct {
		name    string
		width   int
		height  int
		fns     []func(u, v float64) float64
		layers  []LayerConfig
		wantRow map[int][]float64
	}{
		{
			name:  "invert flips ordering",
			width: 4, height: 1,
			fns:     []func(u, v float64) float64{alongX},
			layers:  []LayerConfig{{Frequency: 2, Amplitude: 1, Seed: Seed(1), Invert: true}},
			wantRow: map[int][]float64{0: {1, 2.0 / 3, 1.0 / 3, 0}},
		},
		{
			name:  "mask zeroes values outside range without rescaling inside",
			width: 4, height: 1,
			fns:     []func(u, v float64) float64{alongX},
			layers:  []LayerConfig{{Frequency: 2, Amplitude: 1, Seed: Seed(1), Mask: &MaskRange{Min: 0.4, Max: 1.0}}},
			wantRow: map[int][]float64{0: {0, 0.5, 1, 0}},
		},
		{
			name:  "negative amplitude",
			width: 4, height: 1,
			fns:     []func(u, v float64) float64{alongX},
			layers:  []LayerConfig{{Frequency: 2, Amplitude: -1, Seed: Seed(1)}},
			wantRow: map[int][]float64{0: {1, 2.0 / 3, 1.0 / 3, 0}},
		},
		{
			name:  "layers accumulate additively",
			width: 4, height: 1,
			fns: []func(u, v float64) float64{constant(1), alongX},
			layers: []LayerConfig{
				{Frequency: 2, Amplitude: 0.5, Seed: Seed(1)},
				{Frequency: 2, Amplitude: 1, Seed: Seed(2)},
			},
			wantRow: map[int][]float64{0: {0, 1.0 / 3, 2.0 / 3, 1}},
		},
		{
			name:  "center amplification peaks mid rows",
			width: 2, height: 5,
			fns:    []func(u, v float64) float64{constant(1)},
			layers: []LayerConfig{{Frequency: 1, Amplitude: 1, Seed: Seed(1), CenterAmplified: true}},
			wantRow: map[int][]float64{
				0: {0, 0},
				1: {0.25, 0.25},
				2: {1, 1},
				3: {1, 1},
				4: {0.25, 0.25},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.width, tt.height, WithSamplerFactory(factoryFor(tt.fns...)))
			require.NoError(t, err)
			for _, cfg := range tt.layers {
				require.NoError(t, m.AddLayer(cfg))
			}

			f, err := m.Generate(context.Background())
			require.NoError(t, err)
			for y, want := range tt.wantRow {
				assert.InDeltaSlice(t, want, rowValues(f, y), 1e-12, "row %d", y)
			}
		})
	}
}

func TestMap_CenterFactor(t *testing.T) {
	m, err := New(3, 4)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, m.centerFactor(0), 1e-12)
	assert.InDelta(t, 0.25, m.centerFactor(1), 1e-12)
	assert.InDelta(t, 1.0, m.centerFactor(2), 1e-12)
	assert.InDelta(t, 0.25, m.centerFactor(3), 1e-12)
}

func TestMap_Generate_DegenerateFieldIsZero(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	t.Run("no layers", func(t *testing.T) {
		m, err := New(5, 3)
		require.NoError(t, err)
		f, err := m.Generate(context.Background())
		require.NoError(t, err)
		testutil.AssertAllEqual(t, 0, f.Values, 0)
	})

	t.Run("constant sampler", func(t *testing.T) {
		m, err := New(5, 3, WithSamplerFactory(factoryFor(constant(0.3))))
		require.NoError(t, err)
		require.NoError(t, m.AddLayer(LayerConfig{Frequency: 1, Amplitude: 1, Seed: Seed(1)}))
		f, err := m.Generate(context.Background())
		require.NoError(t, err)
		testutil.AssertAllEqual(t, 0, f.Values, 0)
	})
}

func TestMap_Generate_Canceled(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	m, err := New(8, 8, WithSamplerFactory(factoryFor(alongX)))
	require.NoError(t, err)
	require.NoError(t, m.AddLayer(LayerConfig{Frequency: 1, Amplitude: 1, Seed: Seed(1)}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = m.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalize(t *testing.T) {
	f, err := FieldFromRows([][]float64{{1, 3}, {2, 5}})
	require.NoError(t, err)

	out, err := Normalize(f)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 0.25, 1}, out.Values)
	assert.Equal(t, []float64{1, 3, 2, 5}, f.Values, "input should not be modified")

	flat, err := FieldFromRows([][]float64{{2, 2}, {2, 2}})
	require.NoError(t, err)
	out, err = Normalize(flat)
	assert.ErrorIs(t, err, ErrDegenerateField)
	require.NotNil(t, out)
	assert.Equal(t, []float64{0, 0, 0, 0}, out.Values)
}
