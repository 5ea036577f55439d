package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/fxkmeans/blobstore"
	"github.com/hupe1980/fxkmeans/core"
	"github.com/hupe1980/fxkmeans/dataset"
	"github.com/hupe1980/fxkmeans/internal/compress"
)

// Run holds the dumps of one stored run. FinalCenters and Assignment are nil
// for runs that only stored their input.
type Run struct {
	Prefix         string
	Points         []core.Point
	InitialCenters []core.Point
	FinalCenters   []core.Point
	Assignment     []int
}

// LoadCurrent loads the run CURRENT points at.
func LoadCurrent(ctx context.Context, store blobstore.BlobStore, maxCoord int) (*Run, error) {
	data, err := blobstore.ReadAll(ctx, store, blobstore.PointerName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", blobstore.PointerName, err)
	}
	return LoadRun(ctx, store, strings.TrimSpace(string(data)), maxCoord)
}

// LoadRun loads the dumps under prefix. The dataset and initial centers are
// required; the outputs are optional.
func LoadRun(ctx context.Context, store blobstore.BlobStore, prefix string, maxCoord int) (*Run, error) {
	run := &Run{Prefix: prefix}

	var err error
	if run.Points, err = LoadPoints(ctx, store, path.Join(prefix, DatasetName), maxCoord); err != nil {
		return nil, err
	}
	if run.InitialCenters, err = LoadPoints(ctx, store, path.Join(prefix, InitialCentersName), maxCoord); err != nil {
		return nil, err
	}

	run.FinalCenters, err = LoadPoints(ctx, store, path.Join(prefix, FinalCentersName), maxCoord)
	if err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return nil, err
	}

	run.Assignment, err = LoadAssignment(ctx, store, path.Join(prefix, AssignmentName), len(run.InitialCenters))
	if err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return nil, err
	}

	return run, nil
}

// LoadPoints reads a point dump. name may omit the compression suffix.
func LoadPoints(ctx context.Context, store blobstore.BlobStore, name string, maxCoord int) ([]core.Point, error) {
	var points []core.Point
	err := load(ctx, store, name, func(r io.Reader) error {
		var err error
		points, err = dataset.DecodePoints(r, maxCoord)
		return err
	})
	return points, err
}

// LoadAssignment reads an assignment dump. Ids must be below m when m > 0.
func LoadAssignment(ctx context.Context, store blobstore.BlobStore, name string, m int) ([]int, error) {
	var assignment []int
	err := load(ctx, store, name, func(r io.Reader) error {
		var err error
		assignment, err = dataset.DecodeAssignment(r, m)
		return err
	})
	return assignment, err
}

func load(ctx context.Context, store blobstore.BlobStore, name string, decode func(io.Reader) error) error {
	full, err := resolve(ctx, store, name)
	if err != nil {
		return err
	}

	blob, err := store.Open(ctx, full)
	if err != nil {
		return fmt.Errorf("open %s: %w", full, err)
	}
	defer blob.Close()

	r, err := compress.NewReader(blobstore.NewReader(ctx, blob), compress.FromName(full))
	if err != nil {
		return fmt.Errorf("open %s: %w", full, err)
	}
	defer r.Close()

	if err := decode(r); err != nil {
		return fmt.Errorf("decode %s: %w", full, err)
	}
	return nil
}

// resolve finds name with any of the known compression suffixes.
func resolve(ctx context.Context, store blobstore.BlobStore, name string) (string, error) {
	names, err := store.List(ctx, name)
	if err != nil {
		return "", err
	}
	for _, t := range []compress.Type{compress.None, compress.LZ4, compress.ZSTD} {
		for _, n := range names {
			if n == name+t.Ext() {
				return n, nil
			}
		}
	}
	return "", fmt.Errorf("%s: %w", name, blobstore.ErrNotFound)
}
