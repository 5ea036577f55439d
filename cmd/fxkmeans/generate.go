package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/fxkmeans/dataset"
	"github.com/hupe1980/fxkmeans/sink"
	"github.com/spf13/cobra"
)

func newGenerateCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write a seeded random dataset and initial centers",
		Long: "Generate N points and M initial centers and store them as a new run,\n" +
			"which then becomes CURRENT. Cluster it later with run --from-current.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd.Context(), cmd.OutOrStdout(), *cfg)
		},
	}
}

func generate(ctx context.Context, stdout io.Writer, cfg config) error {
	if err := cfg.Clustering.Validate(); err != nil {
		return err
	}

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	if store == nil {
		return errNoStore
	}

	out, err := newSink(store, cfg.Store)
	if err != nil {
		return err
	}

	points, centers := dataset.Generate(cfg.Seed, cfg.Clustering.N, cfg.Clustering.M, cfg.Clustering.MaxCoord)

	if err := out.WriteDataset(ctx, points); err != nil {
		return abort(ctx, out, err)
	}
	if err := out.WriteInitialCenters(ctx, centers); err != nil {
		return abort(ctx, out, err)
	}
	if err := out.Commit(ctx); err != nil {
		return abort(ctx, out, err)
	}

	fmt.Fprintf(stdout, "Wrote %d points and %d centers to %s.\n",
		len(points), len(centers), out.(*sink.BlobSink).Prefix())
	return nil
}
