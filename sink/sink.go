package sink

import (
	"context"

	"github.com/hupe1980/fxkmeans/core"
)

// Dump names, relative to the run prefix.
const (
	DatasetName        = "random_data.txt"
	InitialCentersName = "random_centers.txt"
	FinalCentersName   = "final_centers.txt"
	AssignmentName     = "final_ids.txt"
)

// RunsPrefix is the directory all runs live under.
const RunsPrefix = "runs/"

// Sink receives the dumps of one clustering run.
type Sink interface {
	WriteDataset(ctx context.Context, points []core.Point) error
	WriteInitialCenters(ctx context.Context, centers []core.Point) error
	WriteFinalCenters(ctx context.Context, centers []core.Point) error
	WriteAssignment(ctx context.Context, assignment []int) error
	// Commit makes the run the current one.
	Commit(ctx context.Context) error
}

// Nop discards all dumps.
type Nop struct{}

var _ Sink = Nop{}

func (Nop) WriteDataset(context.Context, []core.Point) error        { return nil }
func (Nop) WriteInitialCenters(context.Context, []core.Point) error { return nil }
func (Nop) WriteFinalCenters(context.Context, []core.Point) error   { return nil }
func (Nop) WriteAssignment(context.Context, []int) error            { return nil }
func (Nop) Commit(context.Context) error                            { return nil }
