package fxkmeans

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/fxkmeans/core"
)

// Result is the outcome of a Run.
type Result struct {
	// Centers holds the final centroids, indexed by cluster.
	Centers []core.Point
	// Assignment maps every point index to its cluster in the last step.
	Assignment []int
	// Iterations is the number of steps executed, including the final one
	// that detected convergence.
	Iterations int
	// Converged is false only if the iteration limit stopped the run.
	Converged bool
	// EmptyClusters counts (step, cluster) pairs in which a cluster had no
	// members and kept its centroid.
	EmptyClusters int
}

// Sizes returns the number of points assigned to each cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Centers))
	for _, j := range r.Assignment {
		sizes[j]++
	}
	return sizes
}

// Members returns the indices of the points assigned to cluster j.
func (r *Result) Members(j int) *roaring.Bitmap {
	bm := roaring.New()
	for i, a := range r.Assignment {
		if a == j {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// Clusters returns the member bitmap of every cluster in one pass.
func (r *Result) Clusters() []*roaring.Bitmap {
	out := make([]*roaring.Bitmap, len(r.Centers))
	for j := range out {
		out[j] = roaring.New()
	}
	for i, a := range r.Assignment {
		out[a].Add(uint32(i))
	}
	return out
}
