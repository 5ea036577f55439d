package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/fxkmeans"
	"github.com/hupe1980/fxkmeans/blobstore"
	"github.com/hupe1980/fxkmeans/core"
	"github.com/hupe1980/fxkmeans/dataset"
	"github.com/hupe1980/fxkmeans/prom"
	"github.com/hupe1980/fxkmeans/sink"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newRunCmd(cfg *config) *cobra.Command {
	var fromCurrent bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster a dataset and print the final centers",
		Long: "Generate a seeded random dataset (or load the CURRENT run from the dump\n" +
			"destination), run k-means until no centroid moves and print the centers.\n" +
			"With a dump destination, the dataset, initial centers, final centers and\n" +
			"assignment are written under runs/<run-id>/ and CURRENT is updated.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClustering(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), *cfg, fromCurrent)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines for the assignment pass")
	f.IntVar(&cfg.MaxIterations, "max-iterations", cfg.MaxIterations, "stop after this many steps (0 = until converged)")
	f.BoolVar(&fromCurrent, "from-current", false, "cluster the run CURRENT points at instead of generating data")
	f.StringVar(&cfg.Metrics.Textfile, "metrics-textfile", "", "write Prometheus metrics to this file after the run")

	return cmd
}

func runClustering(ctx context.Context, stdout, stderr io.Writer, cfg config, fromCurrent bool) error {
	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}

	var points, centers []core.Point
	if fromCurrent {
		if store == nil {
			return errNoStore
		}
		run, err := sink.LoadCurrent(ctx, store, cfg.Clustering.MaxCoord)
		if err != nil {
			return err
		}
		points, centers = run.Points, run.InitialCenters
		cfg.Clustering.N, cfg.Clustering.M = len(points), len(centers)
		logger.InfoContext(ctx, "loaded input", "run", run.Prefix)
	} else {
		if err := cfg.Clustering.Validate(); err != nil {
			return err
		}
		points, centers = dataset.Generate(cfg.Seed, cfg.Clustering.N, cfg.Clustering.M, cfg.Clustering.MaxCoord)
	}

	var reg *prometheus.Registry
	var metrics fxkmeans.MetricsCollector = fxkmeans.NoopMetricsCollector{}
	if cfg.Metrics.Textfile != "" {
		reg = prometheus.NewRegistry()
		if metrics, err = prom.New(reg, "fxkmeans"); err != nil {
			return err
		}
	}

	out, err := newSink(store, cfg.Store)
	if err != nil {
		return err
	}
	if bs, ok := out.(*sink.BlobSink); ok {
		logger = logger.WithRunID(bs.RunID())
	}

	c, err := fxkmeans.New(cfg.Clustering,
		fxkmeans.WithWorkers(cfg.Workers),
		fxkmeans.WithMaxIterations(cfg.MaxIterations),
		fxkmeans.WithMetricsCollector(metrics),
		fxkmeans.WithLogger(logger.WithShape(cfg.Clustering.N, cfg.Clustering.M)),
	)
	if err != nil {
		return err
	}

	if err := out.WriteDataset(ctx, points); err != nil {
		return abort(ctx, out, err)
	}
	if err := out.WriteInitialCenters(ctx, centers); err != nil {
		return abort(ctx, out, err)
	}

	res, runErr := c.Run(ctx, points, centers)
	if runErr != nil && !errors.Is(runErr, fxkmeans.ErrNotConverged) {
		return abort(ctx, out, runErr)
	}

	if err := out.WriteFinalCenters(ctx, res.Centers); err != nil {
		return abort(ctx, out, err)
	}
	if err := out.WriteAssignment(ctx, res.Assignment); err != nil {
		return abort(ctx, out, err)
	}
	if err := out.Commit(ctx); err != nil {
		return abort(ctx, out, err)
	}

	printReport(stdout, res)

	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return runErr
}

func newSink(store blobstore.BlobStore, cfg storeConfig) (sink.Sink, error) {
	if store == nil {
		return sink.Nop{}, nil
	}
	t, err := cfg.compressionType()
	if err != nil {
		return nil, err
	}
	return sink.NewBlobSink(store, sink.WithCompression(t), sink.WithIOLimit(cfg.IOLimit))
}

// abort removes a partially written run and returns cause.
func abort(ctx context.Context, out sink.Sink, cause error) error {
	if bs, ok := out.(*sink.BlobSink); ok {
		if err := bs.Abort(context.WithoutCancel(ctx)); err != nil {
			return errors.Join(cause, err)
		}
	}
	return cause
}

func printReport(w io.Writer, res *fxkmeans.Result) {
	fmt.Fprintf(w, "K-Means algorithm finished after %d iterations.\n", res.Iterations)
	fmt.Fprintf(w, "The %d centers are:\n", len(res.Centers))
	for _, p := range res.Centers {
		fmt.Fprintf(w, "%d, %d\n", p.X, p.Y)
	}
}
