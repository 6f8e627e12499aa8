package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Encode writes g as a PNG.
func Encode(w io.Writer, g *ColorGrid) error {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetNRGBA(x, y, g.At(x, y).NRGBA())
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Decode reads a PNG into a grid.
func Decode(r io.Reader) (*ColorGrid, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}

	b := img.Bounds()
	g, err := NewColorGrid(b.Dx(), b.Dy(), Fallback)
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Set(x, y, FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return g, nil
}

// Save writes g to path as a PNG.
func Save(g *ColorGrid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, g); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Load reads a PNG file into a grid.
func Load(path string) (*ColorGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}
