package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoidMesh/terrainpainter/internal/colorblend"
	"github.com/VoidMesh/terrainpainter/internal/preview"
	"github.com/VoidMesh/terrainpainter/internal/raster"
	"github.com/VoidMesh/terrainpainter/internal/terrain"
)

func newPaletteCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Show the color bands and the terrain table of the map config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadMap()
			if err != nil {
				return err
			}
			classifier, err := terrain.NewClassifierWithDefaultLogger(cfg.ClassifierConfig())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := preview.New(out)
			fmt.Fprintln(out, p.Legend("Height bands", preview.BandLegend(cfg.HeightMap.Bands)))
			fmt.Fprintln(out, p.Legend("Temperature bands", preview.BandLegend(cfg.Temperature.Bands)))
			fmt.Fprintln(out, p.Legend("Terrain", preview.TerrainLegend(classifier.Table())))
			return nil
		},
	}
}

func newBlendCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "blend <cold> <base> <hot>",
		Short: "Print the exclusive triple blend of three hex colors",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			shades, err := colorblend.ExclusiveTripleBlend(args, steps)
			if err != nil {
				return err
			}

			entries := make([]preview.LegendEntry, len(shades))
			for i, hex := range shades {
				c, err := raster.ParseColor(hex)
				if err != nil {
					return err
				}
				entries[i] = preview.LegendEntry{Label: fmt.Sprintf("shade %d", i+1), Color: c}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, preview.New(out).Legend(strings.Join(args, " / "), entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "s", 1, "interpolation steps per segment")
	return cmd
}
