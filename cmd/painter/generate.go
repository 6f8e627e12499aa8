package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/VoidMesh/terrainpainter/internal/catalog"
	"github.com/VoidMesh/terrainpainter/internal/config"
	"github.com/VoidMesh/terrainpainter/internal/pipeline"
	"github.com/VoidMesh/terrainpainter/internal/preview"
	"github.com/VoidMesh/terrainpainter/internal/terrain"
)

type generateOptions struct {
	outputDir string
	seed      int64
	width     int
	height    int
	noOres    bool
	dumpCodes bool
	record    bool
	preview   int
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render height, temperature, painted and ore maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runGenerate(ctx, cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "out", "o", global.env.Render.OutputDir, "output directory for PNG files")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "override the map seed")
	cmd.Flags().IntVar(&opts.width, "width", 0, "override the map width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "override the map height")
	cmd.Flags().BoolVar(&opts.noOres, "no-ores", false, "skip the ore maps")
	cmd.Flags().BoolVar(&opts.dumpCodes, "dump-codes", false, "write the distinct height and temperature colors to text files")
	cmd.Flags().BoolVar(&opts.record, "record", false, "record the render in the catalog database")
	cmd.Flags().IntVar(&opts.preview, "preview", 0, "print a terminal preview of the painted map this many columns wide")
	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, global *globalOptions, opts *generateOptions) error {
	cfg, err := global.loadMap()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}

	var pipelineOpts []pipeline.Option
	if opts.noOres {
		pipelineOpts = append(pipelineOpts, pipeline.WithoutOres())
	}
	p, err := pipeline.New(cfg, terrain.NewDefaultLoggerWrapper(), pipelineOpts...)
	if err != nil {
		return err
	}

	res, err := p.Run(ctx)
	if err != nil {
		return err
	}

	paths, err := pipeline.Save(res, opts.outputDir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, path := range paths {
		fmt.Fprintf(out, "wrote %s\n", path)
	}

	if opts.dumpCodes {
		dumps := []struct {
			name  string
			codes []string
		}{
			{"height_codes.txt", terrain.Survey(res.HeightMap)},
			{"temperature_codes.txt", terrain.Survey(res.TemperatureMap)},
		}
		for _, dump := range dumps {
			path, codes := filepath.Join(opts.outputDir, dump.name), dump.codes
			if err := os.WriteFile(path, []byte(strings.Join(codes, "\n")+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintf(out, "wrote %s (%d codes)\n", path, len(codes))
		}
	}

	if opts.record {
		if err := recordRender(ctx, global, cfg, res, opts.outputDir, out); err != nil {
			return err
		}
	}

	if opts.preview > 0 {
		fmt.Fprintln(out, preview.New(out).Render(res.Painted, opts.preview))
	}
	return nil
}

func recordRender(ctx context.Context, global *globalOptions, cfg *config.MapConfig, res *pipeline.Result, outputDir string, out io.Writer) error {
	store, err := catalog.Open(global.env.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	dir, err := filepath.Abs(outputDir)
	if err != nil {
		dir = outputDir
	}
	r, err := catalog.NewRender(cfg, res, dir)
	if err != nil {
		return err
	}
	r, err = store.Record(ctx, r)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "recorded render %s\n", r.ID)
	return nil
}
