package colorblend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{name: "uppercase", hex: "#124E89", want: RGB{R: 0x12, G: 0x4E, B: 0x89}},
		{name: "lowercase", hex: "#edab50", want: RGB{R: 0xED, G: 0xAB, B: 0x50}},
		{name: "black", hex: "#000000", want: RGB{}},
		{name: "white", hex: "#FFFFFF", want: RGB{R: 255, G: 255, B: 255}},
		{name: "missing hash", hex: "124E89", wantErr: true},
		{name: "alpha rejected", hex: "#124E89FF", wantErr: true},
		{name: "short form rejected", hex: "#FFF", wantErr: true},
		{name: "non hex digits", hex: "#GG0000", wantErr: true},
		{name: "sign prefix", hex: "#+f0000", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.hex)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBToHex_RoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 7 {
			for b := 0; b < 256; b += 11 {
				c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				hex := RGBToHex(c)
				assert.Equal(t, strings.ToLower(hex), hex, "RGBToHex should emit lowercase")

				back, err := HexToRGB(hex)
				require.NoError(t, err)
				require.Equal(t, c, back)

				back, err = HexToRGB(strings.ToUpper(hex))
				require.NoError(t, err)
				require.Equal(t, c, back)
			}
		}
	}
}

func TestRGBToHex_ZeroPadding(t *testing.T) {
	assert.Equal(t, "#01020a", RGBToHex(RGB{R: 1, G: 2, B: 10}))
}

func TestMidwayColor(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 string
		want   string
	}{
		{name: "black and white rounds half up", c1: "#000000", c2: "#FFFFFF", want: "#808080"},
		{name: "same color", c1: "#124e89", c2: "#124E89", want: "#124E89"},
		{name: "cold tint to base", c1: "#ffffff", c2: "#124E89", want: "#89A7C4"},
		{name: "base to hot tint", c1: "#124E89", c2: "#edab50", want: "#807D6D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MidwayColor(tt.c1, tt.c2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MidwayColor("#000000", "white")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestInterpolate(t *testing.T) {
	t.Run("zero steps is empty", func(t *testing.T) {
		got, err := Interpolate("#000000", "#FFFFFF", 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("excludes endpoints", func(t *testing.T) {
		got, err := Interpolate("#000000", "#FFFFFF", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"#404040", "#808080", "#BFBFBF"}, got)
	})

	t.Run("identical endpoints repeat", func(t *testing.T) {
		got, err := Interpolate("#3e8948", "#3E8948", 4)
		require.NoError(t, err)
		assert.Equal(t, []string{"#3E8948", "#3E8948", "#3E8948", "#3E8948"}, got)
	})

	t.Run("negative steps", func(t *testing.T) {
		_, err := Interpolate("#000000", "#FFFFFF", -1)
		assert.ErrorIs(t, err, ErrArgument)
	})
}

func TestBlendColors(t *testing.T) {
	t.Run("two colors no steps returns inputs uppercased", func(t *testing.T) {
		got, err := BlendColors([]string{"#abcdef", "#012345"}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"#ABCDEF", "#012345"}, got)
	})

	t.Run("length follows n plus gaps times steps", func(t *testing.T) {
		inputs := []string{"#000000", "#FF0000", "#00FF00", "#0000FF"}
		for steps := 0; steps <= 5; steps++ {
			got, err := BlendColors(inputs, steps)
			require.NoError(t, err)
			assert.Len(t, got, len(inputs)+(len(inputs)-1)*steps)
			assert.Equal(t, "#000000", got[0])
			assert.Equal(t, "#0000FF", got[len(got)-1])
		}
	})

	t.Run("output is uppercase", func(t *testing.T) {
		got, err := BlendColors([]string{"#000000", "#ffffff"}, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"#000000", "#404040", "#808080", "#BFBFBF", "#FFFFFF"}, got)
	})

	tests := []struct {
		name    string
		colors  []string
		steps   int
		wantErr error
	}{
		{name: "single color", colors: []string{"#000000"}, steps: 1, wantErr: ErrArgument},
		{name: "no colors", colors: nil, steps: 1, wantErr: ErrArgument},
		{name: "negative steps", colors: []string{"#000000", "#FFFFFF"}, steps: -2, wantErr: ErrArgument},
		{name: "malformed last color", colors: []string{"#000000", "#FFFFFF", "nope"}, steps: 0, wantErr: ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BlendColors(tt.colors, tt.steps)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExclusiveTripleBlend(t *testing.T) {
	t.Run("deep ocean family", func(t *testing.T) {
		got, err := ExclusiveTripleBlend([]string{"#ffffff", "#124E89", "#edab50"}, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"#89A7C4", "#4E7BA7", "#124E89", "#49667B", "#807D6D"}, got)
	})

	t.Run("five shades centered on base", func(t *testing.T) {
		bases := []string{"#124E89", "#0099db", "#EAD4AA", "#B86F50", "#63C74D", "#3E8948", "#193C3E", "#5A6988", "#8B9BB4", "#C0CBDC"}
		for _, base := range bases {
			got, err := ExclusiveTripleBlend([]string{"#ffffff", base, "#edab50"}, 1)
			require.NoError(t, err)
			require.Len(t, got, 5)
			assert.Equal(t, strings.ToUpper(base), got[2])
		}
	})

	t.Run("wrong count", func(t *testing.T) {
		_, err := ExclusiveTripleBlend([]string{"#ffffff", "#000000"}, 1)
		assert.ErrorIs(t, err, ErrArgument)

		_, err = ExclusiveTripleBlend([]string{"#ffffff", "#000000", "#111111", "#222222"}, 1)
		assert.ErrorIs(t, err, ErrArgument)
	})

	t.Run("more steps", func(t *testing.T) {
		got, err := ExclusiveTripleBlend([]string{"#000000", "#808080", "#FFFFFF"}, 3)
		require.NoError(t, err)
		assert.Len(t, got, 3+2*3)
	})
}
