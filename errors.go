package fxkmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fxkmeans/core"
	"github.com/hupe1980/fxkmeans/distance"
	"github.com/hupe1980/fxkmeans/internal/fixed"
	"github.com/hupe1980/fxkmeans/internal/resource"
)

var (
	// ErrInvalidDatasetSize is returned when N is not positive.
	ErrInvalidDatasetSize = errors.New("dataset size must be positive")

	// ErrInvalidClusterCount is returned when M is not positive.
	ErrInvalidClusterCount = errors.New("cluster count must be positive")

	// ErrInvalidCoordinateBound is returned when the coordinate bound is negative
	// or does not fit the 16-bit coordinate type.
	ErrInvalidCoordinateBound = errors.New("coordinate bound out of range")

	// ErrNotConverged is returned by Run together with a partial Result when the
	// configured iteration limit is reached first.
	ErrNotConverged = errors.New("iteration limit reached before convergence")

	// ErrMemoryLimitExceeded is returned by Run when the kernel scratch space
	// does not fit the configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ErrWidthOverflow indicates a configuration whose worst-case values do not fit
// the kernel's integer widths.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrWidthOverflow struct {
	Quantity  string
	Required  int
	Available int
	cause     error
}

func (e *ErrWidthOverflow) Error() string {
	return fmt.Sprintf("width overflow: %s needs %d bits, only %d available", e.Quantity, e.Required, e.Available)
}

func (e *ErrWidthOverflow) Unwrap() error { return e.cause }

// ErrInvalidMetric indicates an unsupported distance metric.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidMetric struct {
	Metric distance.Metric
	cause  error
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid metric: %s", e.Metric)
}

func (e *ErrInvalidMetric) Unwrap() error { return e.cause }

// ErrSizeMismatch indicates an input slice whose length differs from the
// configured N or M.
type ErrSizeMismatch struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("%s size mismatch: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

// ErrCoordinateOutOfRange indicates an input point above the configured coordinate bound.
type ErrCoordinateOutOfRange struct {
	Field string
	Index int
	Point core.Point
	Bound core.Coord
}

func (e *ErrCoordinateOutOfRange) Error() string {
	return fmt.Sprintf("%s[%d] = %s exceeds coordinate bound %d", e.Field, e.Index, e.Point, e.Bound)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var oe *fixed.OverflowError
	if errors.As(err, &oe) {
		return &ErrWidthOverflow{Quantity: oe.Quantity, Required: oe.Required, Available: oe.Available, cause: err}
	}

	return err
}
