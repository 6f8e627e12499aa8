package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoidMesh/terrainpainter/internal/preview"
	"github.com/VoidMesh/terrainpainter/internal/raster"
	"github.com/VoidMesh/terrainpainter/internal/terrain"
)

func newPreviewCmd() *cobra.Command {
	var columns int
	var legend bool

	cmd := &cobra.Command{
		Use:   "preview <map.png>",
		Short: "Draw a PNG map in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := raster.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := preview.New(out)
			fmt.Fprintln(out, p.Render(grid, columns))

			if legend {
				entries := make([]preview.LegendEntry, 0)
				for _, code := range terrain.Survey(grid) {
					c, err := raster.ParseColor(code)
					if err != nil {
						return err
					}
					entries = append(entries, preview.LegendEntry{Label: fmt.Sprintf("%d px", count(grid, c)), Color: c})
				}
				fmt.Fprintln(out, p.Legend("Colors", entries))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&columns, "columns", "w", 100, "maximum preview width in terminal columns")
	cmd.Flags().BoolVar(&legend, "legend", false, "list the distinct colors of the map")
	return cmd
}

func count(g *raster.ColorGrid, c raster.Color) int {
	n := 0
	for _, p := range g.Pixels {
		if p == c {
			n++
		}
	}
	return n
}
