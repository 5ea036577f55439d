// Package blobstore provides the storage abstraction for clustering dumps.
//
// BlobStore is the interface for reading and writing named blobs (point
// dumps, assignments, the CURRENT run pointer). Implementations must be
// safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap reads and atomic renames
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3, with s3.DDBCommitStore for an atomic CURRENT pointer
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Create(ctx, name) (WritableBlob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
