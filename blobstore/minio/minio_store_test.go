package minio

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/hupe1980/fxkmeans/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Names(t *testing.T) {
	s := NewStore(nil, "bucket", "/kmeans/")
	assert.Equal(t, "kmeans/runs/r1/final_ids.txt", s.key("runs/r1/final_ids.txt"))
	assert.Equal(t, "kmeans/runs/", s.listPrefix("runs/"))
	assert.Equal(t, "runs/r1/final_ids.txt", s.relName("kmeans/runs/r1/final_ids.txt"))

	root := NewStore(nil, "bucket", "")
	assert.Equal(t, "CURRENT", root.key("CURRENT"))
	assert.Equal(t, "", root.listPrefix(""))
	assert.Equal(t, "CURRENT", root.relName("CURRENT"))
}

// TestMinioStore_Integration requires a running MinIO instance at
// FXKMEANS_MINIO_ENDPOINT (default localhost:9000). Skipped if not reachable.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := os.Getenv("FXKMEANS_MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}
	bucket := "test-fxkmeans"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	probeCtx, probeCancel := context.WithTimeout(ctx, 2*time.Second)
	_, err = client.ListBuckets(probeCtx)
	probeCancel()
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("1 2\n98 99\n")
	require.NoError(t, store.Put(ctx, "runs/it/random_data.txt", data))

	blob, err := store.Open(ctx, "runs/it/random_data.txt")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 4)
	require.NoError(t, err)
	assert.Equal(t, "98 99", string(buf[:n]))

	n, err = blob.ReadAt(ctx, make([]byte, 20), 4)
	assert.Equal(t, 6, n)
	assert.Equal(t, io.EOF, err)
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "runs/")
	require.NoError(t, err)
	assert.Contains(t, names, "runs/it/random_data.txt")

	wb, err := store.Create(ctx, "runs/it/final_ids.txt")
	require.NoError(t, err)
	_, err = wb.Write([]byte("0\n1\n"))
	require.NoError(t, err)
	require.NoError(t, wb.Close())

	got, err := blobstore.ReadAll(ctx, store, "runs/it/final_ids.txt")
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n", string(got))

	require.NoError(t, store.Delete(ctx, "runs/it/random_data.txt"))
	require.NoError(t, store.Delete(ctx, "runs/it/final_ids.txt"))

	_, err = store.Open(ctx, "runs/it/random_data.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
