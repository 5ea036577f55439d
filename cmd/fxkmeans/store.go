package main

import (
	"context"
	"errors"
	"path"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/fxkmeans/blobstore"
	minioblob "github.com/hupe1980/fxkmeans/blobstore/minio"
	s3blob "github.com/hupe1980/fxkmeans/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var errAmbiguousStore = errors.New("configure only one of --dir, --s3-bucket and --minio-endpoint")

// openStore returns the configured dump destination, or nil if none is set.
func openStore(ctx context.Context, cfg storeConfig) (blobstore.BlobStore, error) {
	configured := 0
	for _, set := range []bool{cfg.Dir != "", cfg.S3.Bucket != "", cfg.MinIO.Endpoint != ""} {
		if set {
			configured++
		}
	}
	if configured > 1 {
		return nil, errAmbiguousStore
	}

	switch {
	case cfg.S3.Bucket != "":
		return openS3(ctx, cfg.S3)
	case cfg.MinIO.Endpoint != "":
		return openMinIO(cfg.MinIO)
	case cfg.Dir != "":
		return blobstore.NewLocalStore(cfg.Dir), nil
	default:
		return nil, nil
	}
}

func openS3(ctx context.Context, cfg s3Config) (blobstore.BlobStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	store := s3blob.NewStore(awss3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix)
	if cfg.DDBTable == "" {
		return store, nil
	}

	baseURI := "s3://" + path.Join(cfg.Bucket, cfg.Prefix)
	return s3blob.NewDDBCommitStore(store, dynamodb.NewFromConfig(awsCfg), cfg.DDBTable, baseURI), nil
}

func openMinIO(cfg minioConfig) (blobstore.BlobStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("--minio-bucket is required with --minio-endpoint")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, err
	}

	return minioblob.NewStore(client, cfg.Bucket, cfg.Prefix), nil
}
