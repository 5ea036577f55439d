package fxkmeans

import (
	"fmt"

	"github.com/hupe1980/fxkmeans/core"
	"github.com/hupe1980/fxkmeans/distance"
	"github.com/hupe1980/fxkmeans/internal/fixed"
)

// Reference configuration.
const (
	DefaultN        = 50
	DefaultM        = 3
	DefaultMaxCoord = 100
	DefaultSeed     = 42
)

// Config fixes the shape of a clustering run. Every slice passed to a
// Clusterer must match it exactly.
type Config struct {
	// N is the number of points.
	N int `toml:"n"`
	// M is the number of clusters. M <= N is assumed but not enforced; a
	// cluster that no point chooses keeps its centroid.
	M int `toml:"m"`
	// MaxCoord is the inclusive upper bound of every coordinate.
	MaxCoord int `toml:"max_coord"`
	// Metric selects the point-to-centroid distance. Defaults to L1.
	Metric distance.Metric `toml:"metric"`
}

// DefaultConfig returns the reference configuration: 50 points, 3 clusters,
// coordinates in [0, 100], L1 distance.
func DefaultConfig() Config {
	return Config{
		N:        DefaultN,
		M:        DefaultM,
		MaxCoord: DefaultMaxCoord,
		Metric:   distance.MetricL1,
	}
}

// Validate reports configuration errors. A Config that validates can never
// overflow the kernel's integer widths.
func (c Config) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDatasetSize, c.N)
	}
	if c.M <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClusterCount, c.M)
	}
	if c.MaxCoord < 0 || c.MaxCoord > int(core.MaxCoord) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidCoordinateBound, c.MaxCoord, core.MaxCoord)
	}
	if _, err := distance.Provider(c.Metric); err != nil {
		return &ErrInvalidMetric{Metric: c.Metric, cause: err}
	}
	return translateError(fixed.Required(c.N, c.MaxCoord).Check())
}

// Bound returns MaxCoord as a coordinate. Only meaningful for a valid Config.
func (c Config) Bound() core.Coord {
	return core.Coord(c.MaxCoord)
}
