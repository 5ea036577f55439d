package kmeans

import "github.com/hupe1980/fxkmeans/core"

// Accumulators holds the per-cluster member count and coordinate sums of one iteration.
type Accumulators struct {
	Count []uint32
	SumX  []uint32
	SumY  []uint32
}

// NewAccumulators returns zeroed accumulators for m clusters.
func NewAccumulators(m int) *Accumulators {
	return &Accumulators{
		Count: make([]uint32, m),
		SumX:  make([]uint32, m),
		SumY:  make([]uint32, m),
	}
}

// Len returns the number of clusters.
func (a *Accumulators) Len() int {
	return len(a.Count)
}

// Reset zeroes all accumulators.
func (a *Accumulators) Reset() {
	clear(a.Count)
	clear(a.SumX)
	clear(a.SumY)
}

// Add records p as a member of cluster j.
func (a *Accumulators) Add(j int, p core.Point) {
	a.Count[j]++
	a.SumX[j] += uint32(p.X)
	a.SumY[j] += uint32(p.Y)
}

// Merge adds other into a. Integer addition is associative, so merging
// partial accumulators in any fixed order yields the sequential result.
func (a *Accumulators) Merge(other *Accumulators) {
	for j := range a.Count {
		a.Count[j] += other.Count[j]
		a.SumX[j] += other.SumX[j]
		a.SumY[j] += other.SumY[j]
	}
}

// Mean returns the truncated mean of cluster j and false if it has no members.
func (a *Accumulators) Mean(j int) (core.Point, bool) {
	n := a.Count[j]
	if n == 0 {
		return core.Point{}, false
	}
	// sum <= n*maxCoord, so the quotient fits back into a coordinate.
	return core.Point{
		X: core.Coord(a.SumX[j] / n),
		Y: core.Coord(a.SumY[j] / n),
	}, true
}
