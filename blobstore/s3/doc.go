// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "kmeans/")
//
// To keep the CURRENT run pointer consistent across concurrent writers, wrap
// the store with a DynamoDB commit table:
//
//	committed := s3.NewDDBCommitStore(store, dynamodb.NewFromConfig(cfg),
//	    "fxkmeans-commits", "s3://my-bucket/kmeans/")
//
// # Features
//
//   - Range reads
//   - Streaming multipart uploads via the S3 upload manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
