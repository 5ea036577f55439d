package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hupe1980/fxkmeans"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:           "fxkmeans",
		Short:         "Fixed-point k-means clustering of 2D points",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				return nil
			}
			return applyConfigFile(cmd.Flags(), configPath, &cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "TOML configuration file")
	pf.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level (debug, info, warn, error)")
	pf.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format (text, json)")

	pf.IntVar(&cfg.Clustering.N, "n", cfg.Clustering.N, "number of points")
	pf.IntVar(&cfg.Clustering.M, "m", cfg.Clustering.M, "number of clusters")
	pf.IntVar(&cfg.Clustering.MaxCoord, "max-coord", cfg.Clustering.MaxCoord, "inclusive coordinate bound")
	pf.Var(metricValue{m: &cfg.Clustering.Metric}, "metric", "distance metric (l1, chebyshev)")
	pf.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the generated dataset")

	pf.StringVar(&cfg.Store.Dir, "dir", "", "write dumps to this directory")
	pf.StringVar(&cfg.Store.Compression, "compression", "", "compress dumps (none, lz4, zstd)")
	pf.Int64Var(&cfg.Store.IOLimit, "io-limit", 0, "throttle dump writes to this many bytes/sec (0 = unlimited)")
	pf.StringVar(&cfg.Store.S3.Bucket, "s3-bucket", "", "write dumps to this S3 bucket")
	pf.StringVar(&cfg.Store.S3.Prefix, "s3-prefix", "", "key prefix inside the S3 bucket")
	pf.StringVar(&cfg.Store.S3.Region, "s3-region", "", "AWS region (default from the AWS config chain)")
	pf.StringVar(&cfg.Store.S3.DDBTable, "ddb-table", "", "DynamoDB table for atomic CURRENT commits on S3")
	pf.StringVar(&cfg.Store.MinIO.Endpoint, "minio-endpoint", "", "write dumps to this MinIO endpoint")
	pf.StringVar(&cfg.Store.MinIO.Bucket, "minio-bucket", "", "MinIO bucket")
	pf.StringVar(&cfg.Store.MinIO.Prefix, "minio-prefix", "", "key prefix inside the MinIO bucket")
	pf.StringVar(&cfg.Store.MinIO.AccessKey, "minio-access-key", "", "MinIO access key")
	pf.StringVar(&cfg.Store.MinIO.SecretKey, "minio-secret-key", "", "MinIO secret key")
	pf.BoolVar(&cfg.Store.MinIO.Secure, "minio-secure", false, "use TLS for MinIO")

	cmd.AddCommand(newRunCmd(&cfg), newGenerateCmd(&cfg))

	return cmd
}

func newLogger(w io.Writer, cfg logConfig) (*fxkmeans.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Format {
	case "", "text":
		return fxkmeans.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return fxkmeans.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
}

var errNoStore = errors.New("no dump destination configured (use --dir, --s3-bucket or --minio-endpoint)")
