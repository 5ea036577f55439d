package kmeans

import (
	"context"

	"github.com/hupe1980/fxkmeans/core"
	"github.com/hupe1980/fxkmeans/distance"
	"golang.org/x/sync/errgroup"
)

const (
	// parallelThreshold is the smallest dataset the kernel fans out for.
	parallelThreshold = 256
	// cancelCheckInterval is how many points a worker assigns between context checks.
	cancelCheckInterval = 4096
)

// StepResult describes one kernel step.
type StepResult struct {
	// Changed is true if at least one centroid coordinate moved.
	Changed bool
	// Empty lists clusters that received no points and kept their centroid.
	Empty []int
}

// Kernel owns the scratch state of one clustering run: the assignment vector
// and the per-cluster accumulators. It is not safe for concurrent use.
type Kernel struct {
	dist       distance.Func
	acc        *Accumulators
	partials   []*Accumulators
	assignment []int
}

// NewKernel allocates a kernel for n points and m clusters.
// With workers > 1 the assignment pass is split across that many goroutines.
func NewKernel(n, m int, dist distance.Func, workers int) *Kernel {
	k := &Kernel{
		dist:       dist,
		acc:        NewAccumulators(m),
		assignment: make([]int, n),
	}
	if workers > 1 {
		k.partials = make([]*Accumulators, workers)
		for i := range k.partials {
			k.partials[i] = NewAccumulators(m)
		}
	}
	return k
}

// Assignment returns the assignment vector of the last step.
// The slice is reused by the next step.
func (k *Kernel) Assignment() []int {
	return k.assignment
}

// Accumulators returns the accumulators of the last step.
func (k *Kernel) Accumulators() *Accumulators {
	return k.acc
}

// Step runs the assignment pass followed by the update pass, rewriting centers
// in place. On cancellation centers are left untouched.
func (k *Kernel) Step(ctx context.Context, points, centers []core.Point) (StepResult, error) {
	if err := ctx.Err(); err != nil {
		return StepResult{}, err
	}

	k.acc.Reset()

	if len(k.partials) > 0 && len(points) >= parallelThreshold {
		if err := AssignParallel(ctx, points, centers, k.dist, k.partials, k.acc, k.assignment); err != nil {
			return StepResult{}, err
		}
	} else {
		Assign(points, centers, k.dist, k.acc, k.assignment)
	}

	changed, empty := Update(centers, k.acc)
	return StepResult{Changed: changed, Empty: empty}, nil
}

// AssignParallel splits points into len(partials) contiguous chunks, assigns
// each chunk into its own partial accumulators and merges them into acc in
// chunk order. Chunks write disjoint ranges of assignment, so the result is
// identical to Assign.
func AssignParallel(ctx context.Context, points, centers []core.Point, dist distance.Func,
	partials []*Accumulators, acc *Accumulators, assignment []int) error {
	if len(partials) == 0 {
		Assign(points, centers, dist, acc, assignment)
		return nil
	}

	size := (len(points) + len(partials) - 1) / len(partials)

	g, gctx := errgroup.WithContext(ctx)

	for w, part := range partials {
		part.Reset()

		lo := w * size
		hi := min(lo+size, len(points))
		if lo >= hi {
			continue
		}

		g.Go(func() error {
			for start := lo; start < hi; start += cancelCheckInterval {
				if err := gctx.Err(); err != nil {
					return err
				}
				end := min(start+cancelCheckInterval, hi)
				Assign(points[start:end], centers, dist, part, assignment[start:end])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, part := range partials {
		acc.Merge(part)
	}

	return nil
}
