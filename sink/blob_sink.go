package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/hupe1980/fxkmeans/blobstore"
	"github.com/hupe1980/fxkmeans/core"
	"github.com/hupe1980/fxkmeans/dataset"
	"github.com/hupe1980/fxkmeans/internal/compress"
	"github.com/hupe1980/fxkmeans/internal/resource"
)

type options struct {
	runID       string
	compression compress.Type
	ioLimit     int64
}

// Option configures a BlobSink.
type Option func(*options)

// WithRunID sets the run directory name. Defaults to a random UUID.
func WithRunID(id string) Option {
	return func(o *options) {
		o.runID = id
	}
}

// WithCompression compresses every dump with t.
func WithCompression(t compress.Type) Option {
	return func(o *options) {
		o.compression = t
	}
}

// WithIOLimit throttles dump writes to bytesPerSec. 0 means unlimited.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}

// BlobSink writes dumps to a blobstore.
type BlobSink struct {
	store       blobstore.BlobStore
	runID       string
	prefix      string
	compression compress.Type
	rc          *resource.Controller
}

var _ Sink = (*BlobSink)(nil)

// NewBlobSink creates a sink writing under runs/<run-id>/ of store.
func NewBlobSink(store blobstore.BlobStore, optFns ...Option) (*BlobSink, error) {
	var o options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.runID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("generate run id: %w", err)
		}
		o.runID = id.String()
	}
	if o.runID != path.Base(o.runID) || o.runID == "." || o.runID == ".." {
		return nil, fmt.Errorf("%w: run id %q", blobstore.ErrInvalidName, o.runID)
	}
	if o.compression.Ext() == "" && o.compression != compress.None {
		return nil, fmt.Errorf("unknown compression %s", o.compression)
	}

	return &BlobSink{
		store:       store,
		runID:       o.runID,
		prefix:      RunsPrefix + o.runID,
		compression: o.compression,
		rc:          resource.NewController(resource.Config{IOLimitBytesPerSec: o.ioLimit}),
	}, nil
}

// RunID returns the run directory name.
func (s *BlobSink) RunID() string {
	return s.runID
}

// Prefix returns the run directory, e.g. "runs/<run-id>".
func (s *BlobSink) Prefix() string {
	return s.prefix
}

// WriteDataset writes random_data.txt.
func (s *BlobSink) WriteDataset(ctx context.Context, points []core.Point) error {
	return s.write(ctx, DatasetName, func(w io.Writer) error {
		return dataset.EncodePoints(w, points)
	})
}

// WriteInitialCenters writes random_centers.txt.
func (s *BlobSink) WriteInitialCenters(ctx context.Context, centers []core.Point) error {
	return s.write(ctx, InitialCentersName, func(w io.Writer) error {
		return dataset.EncodePoints(w, centers)
	})
}

// WriteFinalCenters writes final_centers.txt.
func (s *BlobSink) WriteFinalCenters(ctx context.Context, centers []core.Point) error {
	return s.write(ctx, FinalCentersName, func(w io.Writer) error {
		return dataset.EncodePoints(w, centers)
	})
}

// WriteAssignment writes final_ids.txt.
func (s *BlobSink) WriteAssignment(ctx context.Context, assignment []int) error {
	return s.write(ctx, AssignmentName, func(w io.Writer) error {
		return dataset.EncodeAssignment(w, assignment)
	})
}

// Commit points CURRENT at this run.
func (s *BlobSink) Commit(ctx context.Context) error {
	return s.store.Put(ctx, blobstore.PointerName, []byte(s.prefix))
}

// Abort deletes every blob written for this run.
func (s *BlobSink) Abort(ctx context.Context) error {
	names, err := s.store.List(ctx, s.prefix+"/")
	if err != nil {
		return err
	}
	var errs []error
	for _, name := range names {
		errs = append(errs, s.store.Delete(ctx, name))
	}
	return errors.Join(errs...)
}

func (s *BlobSink) write(ctx context.Context, name string, encode func(io.Writer) error) error {
	full := path.Join(s.prefix, name+s.compression.Ext())

	blob, err := s.store.Create(ctx, full)
	if err != nil {
		return fmt.Errorf("create %s: %w", full, err)
	}

	if err := s.encode(ctx, blob, encode); err != nil {
		_ = blob.Close()
		_ = s.store.Delete(ctx, full)
		return fmt.Errorf("write %s: %w", full, err)
	}

	if err := blob.Close(); err != nil {
		return fmt.Errorf("close %s: %w", full, err)
	}
	return nil
}

func (s *BlobSink) encode(ctx context.Context, blob blobstore.WritableBlob, encode func(io.Writer) error) error {
	cw, err := compress.NewWriter(resource.NewRateLimitedWriter(ctx, blob, s.rc), s.compression)
	if err != nil {
		return err
	}
	if err := encode(cw); err != nil {
		_ = cw.Close()
		return err
	}
	return cw.Close()
}
