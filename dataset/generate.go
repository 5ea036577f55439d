package dataset

import (
	"fmt"
	"math/rand/v2"

	"github.com/hupe1980/fxkmeans/core"
)

// Generate draws n points and then m initial centers from one source seeded
// with seed. Every coordinate is uniform in [0, maxCoord]; maxCoord is clamped
// to the coordinate range.
//
// The same seed always yields the same points and centers.
func Generate(seed uint64, n, m, maxCoord int) (points, centers []core.Point) {
	r := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // reproducible test data, not security
	bound := clampBound(maxCoord)

	points = make([]core.Point, max(n, 0))
	for i := range points {
		points[i] = randomPoint(r, bound)
	}

	centers = make([]core.Point, max(m, 0))
	for i := range centers {
		centers[i] = randomPoint(r, bound)
	}

	return points, centers
}

func randomPoint(r *rand.Rand, bound int) core.Point {
	x := r.IntN(bound + 1)
	y := r.IntN(bound + 1)
	return core.P(core.Coord(x), core.Coord(y)) //nolint:gosec // bounded by clampBound
}

func clampBound(maxCoord int) int {
	return min(max(maxCoord, 0), int(core.MaxCoord))
}

// Validate returns an error naming the first point with a coordinate above maxCoord.
func Validate(points []core.Point, maxCoord int) error {
	bound := core.Coord(clampBound(maxCoord)) //nolint:gosec // clamped
	for i, p := range points {
		if !p.Within(bound) {
			return fmt.Errorf("%w: point %d %s exceeds %d", ErrOutOfRange, i, p, bound)
		}
	}
	return nil
}
