package fxkmeans

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/hupe1980/fxkmeans/core"
	"github.com/hupe1980/fxkmeans/distance"
	"github.com/hupe1980/fxkmeans/internal/kmeans"
	"github.com/hupe1980/fxkmeans/internal/resource"
)

// Clusterer runs the fixed-point k-means kernel for one validated Config.
// It is safe for concurrent use; every Step and Run owns its own scratch state.
type Clusterer struct {
	cfg  Config
	opts options
	dist distance.Func
	rc   *resource.Controller
}

// New validates cfg and returns a Clusterer for it.
// Configuration errors are returned here, before any iteration can run.
func New(cfg Config, optFns ...Option) (*Clusterer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dist, err := distance.Provider(cfg.Metric)
	if err != nil {
		return nil, &ErrInvalidMetric{Metric: cfg.Metric, cause: err}
	}

	o := applyOptions(optFns)

	return &Clusterer{
		cfg:  cfg,
		opts: o,
		dist: dist,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes:  o.memoryLimitBytes,
			MaxConcurrentRuns: o.maxConcurrentRuns,
		}),
	}, nil
}

// Config returns the configuration the Clusterer was built with.
func (c *Clusterer) Config() Config {
	return c.cfg
}

// Step runs one iteration: every point is assigned to its nearest centroid and
// every centroid is moved to the truncated mean of its members. centers is
// rewritten in place. changed reports whether any centroid coordinate moved.
//
// An error is only returned when points or centers do not match the Config.
func (c *Clusterer) Step(points, centers []core.Point) (assignment []int, changed bool, err error) {
	return c.StepContext(context.Background(), points, centers)
}

// StepContext is like Step but honours ctx while assigning points in parallel.
// On cancellation centers are left untouched.
func (c *Clusterer) StepContext(ctx context.Context, points, centers []core.Point) ([]int, bool, error) {
	if err := c.validate(points, centers); err != nil {
		return nil, false, err
	}

	k := c.newKernel()

	start := time.Now()
	res, err := k.Step(ctx, points, centers)
	if err != nil {
		return nil, false, err
	}
	c.opts.metricsCollector.RecordStep(time.Since(start), res.Changed, len(res.Empty))

	return k.Assignment(), res.Changed, nil
}

// Run steps from initial until no centroid moves and returns the final
// centroids and assignment. initial is not modified.
//
// If WithMaxIterations is set and reached first, Run returns the Result of
// the last step together with ErrNotConverged.
func (c *Clusterer) Run(ctx context.Context, points, initial []core.Point) (*Result, error) {
	start := time.Now()

	res, err := c.run(ctx, points, initial)

	var iterations int
	var converged bool
	if res != nil {
		iterations = res.Iterations
		converged = res.Converged
	}

	c.opts.metricsCollector.RecordRun(iterations, time.Since(start), err)
	c.opts.logger.LogRun(ctx, iterations, converged, err)

	return res, err
}

func (c *Clusterer) run(ctx context.Context, points, initial []core.Point) (*Result, error) {
	if err := c.validate(points, initial); err != nil {
		return nil, err
	}

	if err := c.rc.AcquireRun(ctx); err != nil {
		return nil, err
	}
	defer c.rc.ReleaseRun()

	scratch := c.scratchBytes()
	if err := c.rc.AcquireMemory(scratch); err != nil {
		return nil, err
	}
	defer c.rc.ReleaseMemory(scratch)

	k := c.newKernel()
	res := &Result{Centers: core.Clone(initial)}

	for !res.Converged {
		if limit := c.opts.maxIterations; limit > 0 && res.Iterations >= limit {
			res.Assignment = slices.Clone(k.Assignment())
			return res, ErrNotConverged
		}

		start := time.Now()
		sr, err := k.Step(ctx, points, res.Centers)
		if err != nil {
			return nil, err
		}

		res.Iterations++
		res.EmptyClusters += len(sr.Empty)
		res.Converged = !sr.Changed

		c.opts.metricsCollector.RecordStep(time.Since(start), sr.Changed, len(sr.Empty))
		c.opts.logger.LogStep(ctx, res.Iterations, sr.Changed, sr.Empty)
	}

	res.Assignment = slices.Clone(k.Assignment())
	return res, nil
}

func (c *Clusterer) newKernel() *kmeans.Kernel {
	return kmeans.NewKernel(c.cfg.N, c.cfg.M, c.dist, c.opts.workers)
}

// scratchBytes estimates the memory a kernel holds: the assignment vector plus
// three 32-bit accumulators per cluster, once for the total and once per worker.
func (c *Clusterer) scratchBytes() int64 {
	accSets := int64(1)
	if c.opts.workers > 1 {
		accSets += int64(c.opts.workers)
	}
	return int64(c.cfg.N)*strconv.IntSize/8 + accSets*int64(c.cfg.M)*3*4
}

func (c *Clusterer) validate(points, centers []core.Point) error {
	if len(points) != c.cfg.N {
		return &ErrSizeMismatch{Field: "points", Expected: c.cfg.N, Actual: len(points)}
	}
	if len(centers) != c.cfg.M {
		return &ErrSizeMismatch{Field: "centers", Expected: c.cfg.M, Actual: len(centers)}
	}

	bound := c.cfg.Bound()
	for i, p := range points {
		if !p.Within(bound) {
			return &ErrCoordinateOutOfRange{Field: "points", Index: i, Point: p, Bound: bound}
		}
	}
	for j, p := range centers {
		if !p.Within(bound) {
			return &ErrCoordinateOutOfRange{Field: "centers", Index: j, Point: p, Bound: bound}
		}
	}

	return nil
}
