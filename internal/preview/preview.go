// Package preview draws color grids and palettes in the terminal.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/VoidMesh/terrainpainter/internal/noisemap"
	"github.com/VoidMesh/terrainpainter/internal/raster"
	"github.com/VoidMesh/terrainpainter/internal/terrain"
)

// upperHalf carries the top pixel as foreground and the bottom pixel as
// background, so one terminal line shows two grid rows.
const upperHalf = "▀"

var (
	lightText = raster.MustParseColor(string(LightText))
	darkText  = raster.MustParseColor(string(DarkText))
)

// LegendEntry is one labelled swatch.
type LegendEntry struct {
	Label string
	Color raster.Color
}

type Previewer struct {
	renderer *lipgloss.Renderer
}

// New detects the color profile of w.
func New(w io.Writer) *Previewer {
	return &Previewer{renderer: lipgloss.NewRenderer(w)}
}

// NewWithProfile forces a color profile regardless of w.
func NewWithProfile(w io.Writer, profile termenv.Profile) *Previewer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Previewer{renderer: r}
}

// Render draws g scaled down to at most columns wide.
func (p *Previewer) Render(g *raster.ColorGrid, columns int) string {
	g = Downsample(g, columns)

	var b strings.Builder
	for y := 0; y < g.Height; y += 2 {
		for x := 0; x < g.Width; x++ {
			style := p.renderer.NewStyle().Foreground(lipColor(g.At(x, y)))
			if y+1 < g.Height {
				style = style.Background(lipColor(g.At(x, y+1)))
			}
			b.WriteString(style.Render(upperHalf))
		}
		if y+2 < g.Height {
			b.WriteByte('\n')
		}
	}
	return borderStyle(p.renderer).Render(b.String())
}

// Legend lists entries as colored swatches under title.
func (p *Previewer) Legend(title string, entries []LegendEntry) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, titleStyle(p.renderer).Render(title))
	for _, e := range entries {
		swatch := swatchStyle(p.renderer).
			Background(lipColor(e.Color)).
			Foreground(lipColor(TextColor(e.Color))).
			Render(e.Color.Hex())
		lines = append(lines, swatch+" "+e.Label)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Downsample scales g with nearest-neighbour sampling so it is at most
// columns wide, keeping the aspect ratio. columns <= 0 or a grid that
// already fits returns g unchanged.
func Downsample(g *raster.ColorGrid, columns int) *raster.ColorGrid {
	if columns <= 0 || g.Width <= columns {
		return g
	}
	height := g.Height * columns / g.Width
	if height < 1 {
		height = 1
	}

	out, err := raster.NewColorGrid(columns, height, raster.Fallback)
	if err != nil {
		return g
	}
	for y := 0; y < height; y++ {
		sy := y * g.Height / height
		for x := 0; x < columns; x++ {
			out.Set(x, y, g.At(x*g.Width/columns, sy))
		}
	}
	return out
}

// TextColor picks dark or light text for a swatch of background c by its
// CIE L*a*b* lightness.
func TextColor(c raster.Color) raster.Color {
	cf, ok := colorful.MakeColor(c.NRGBA())
	if !ok {
		return lightText
	}
	l, _, _ := cf.Lab()
	if l > 0.6 {
		return darkText
	}
	return lightText
}

// TerrainLegend lists every terrain table cell.
func TerrainLegend(t *terrain.Table) []LegendEntry {
	entries := t.Entries()
	out := make([]LegendEntry, len(entries))
	for i, e := range entries {
		label := fmt.Sprintf("h%d t%d", e.HeightClass, e.TemperatureClass)
		if e.Name != "" {
			label += " " + e.Name
		}
		out[i] = LegendEntry{Label: label, Color: e.Color}
	}
	return out
}

// BandLegend lists the bands of cm by threshold.
func BandLegend(cm noisemap.ColorMap) []LegendEntry {
	out := make([]LegendEntry, len(cm))
	for i, b := range cm {
		out[i] = LegendEntry{Label: fmt.Sprintf("<= %g", b.Threshold), Color: b.Color}
	}
	return out
}

func lipColor(c raster.Color) lipgloss.Color {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return lipgloss.Color(cf.Hex())
}
