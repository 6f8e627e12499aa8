package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/VoidMesh/terrainpainter/internal/catalog"
)

func newRendersCmd(global *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "renders [id]",
		Short: "List recorded renders, or print the config of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.Open(global.env.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid render id %q: %w", args[0], err)
				}
				r, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "# render %s, %s, %s into %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Duration, r.OutputDir)
				fmt.Fprint(out, r.Config)
				return nil
			}

			renders, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(renders) == 0 {
				fmt.Fprintln(out, "no renders recorded")
				return nil
			}
			for _, r := range renders {
				fmt.Fprintf(out, "%s  %s  seed=%d  %dx%d  %s  %s\n",
					r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Seed, r.Width, r.Height, r.Algorithm, r.Duration)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", catalog.DefaultListLimit, "number of renders to list")
	return cmd
}
