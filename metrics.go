package fxkmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package prom
// provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordStep is called after each kernel step.
	// changed reports whether a centroid moved, emptyClusters how many clusters
	// received no points.
	RecordStep(duration time.Duration, changed bool, emptyClusters int)

	// RecordRun is called after each Run.
	// iterations is the number of completed steps, err is nil if the run converged.
	RecordRun(iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(time.Duration, bool, int)  {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount      atomic.Int64
	StepChanged    atomic.Int64
	StepTotalNanos atomic.Int64
	EmptyClusters  atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunIterations  atomic.Int64
	RunTotalNanos  atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(duration time.Duration, changed bool, emptyClusters int) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if changed {
		b.StepChanged.Add(1)
	}
	b.EmptyClusters.Add(int64(emptyClusters))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunIterations.Add(int64(iterations))
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StepCount:     b.StepCount.Load(),
		StepChanged:   b.StepChanged.Load(),
		StepAvgNanos:  avg(b.StepTotalNanos.Load(), b.StepCount.Load()),
		EmptyClusters: b.EmptyClusters.Load(),
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunIterations: b.RunIterations.Load(),
		RunAvgNanos:   avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StepCount     int64
	StepChanged   int64
	StepAvgNanos  int64
	EmptyClusters int64
	RunCount      int64
	RunErrors     int64
	RunIterations int64
	RunAvgNanos   int64
}
