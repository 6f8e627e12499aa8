package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VoidMesh/terrainpainter/internal/config"
	"github.com/VoidMesh/terrainpainter/internal/logging"
)

var version = "0.1.0"

// globalOptions are shared by every subcommand.
type globalOptions struct {
	env       *config.Config
	mapConfig string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{env: config.Load()}

	rootCmd := &cobra.Command{
		Use:   "painter",
		Short: "Procedural terrain painter",
		Long: `painter composites layered noise into height and temperature maps,
classifies every pixel into a terrain color and writes the results as PNG.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Configure(cmd.ErrOrStderr(), logging.ParseLevel(opts.logLevel), opts.logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.mapConfig, "config", "c", opts.env.Render.MapConfigPath, "path to a TOML map config (defaults to the built-in map)")
	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", opts.env.Logging.Level, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", opts.env.Logging.Format, "log format (pretty, json)")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newPreviewCmd(),
		newRendersCmd(opts),
		newPaletteCmd(opts),
		newBlendCmd(),
	)
	return rootCmd
}

// loadMap reads the map config named by --config, or the default map.
func (o *globalOptions) loadMap() (*config.MapConfig, error) {
	return config.RenderConfig{MapConfigPath: o.mapConfig}.LoadMap()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
