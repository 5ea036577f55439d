package kmeans

import (
	"github.com/hupe1980/fxkmeans/core"
	"github.com/hupe1980/fxkmeans/distance"
	"github.com/hupe1980/fxkmeans/internal/fixed"
)

// Nearest returns the index of the centroid closest to p.
// Ties go to the lowest index: a later centroid must be strictly closer to win.
func Nearest(p core.Point, centers []core.Point, dist distance.Func) int {
	minID := 0
	minDist := fixed.DistanceSeed

	for j, c := range centers {
		d := dist(p, c)
		if d < minDist {
			minDist = d
			minID = j
		}
	}

	return minID
}

// Assign finds the nearest centroid for every point, records it in assignment
// and adds the point to acc. acc is not reset; callers start from zeroed
// accumulators. points and centers are only read.
func Assign(points, centers []core.Point, dist distance.Func, acc *Accumulators, assignment []int) {
	for i, p := range points {
		minID := Nearest(p, centers, dist)
		acc.Add(minID, p)
		assignment[i] = minID
	}
}

// Update recomputes every centroid from acc and reports whether any moved.
//
// A cluster without members keeps its centroid and is returned in empty.
// It never counts as a change.
func Update(centers []core.Point, acc *Accumulators) (changed bool, empty []int) {
	for j := range centers {
		old := centers[j]

		next, ok := acc.Mean(j)
		if !ok {
			empty = append(empty, j)
			continue
		}

		centers[j] = next

		if !changed && (old.X != next.X || old.Y != next.Y) {
			changed = true
		}
	}

	return changed, empty
}
