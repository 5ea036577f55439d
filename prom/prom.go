// Package prom exports clustering metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := prom.New(reg, "fxkmeans")
//	c, err := fxkmeans.New(cfg, fxkmeans.WithMetricsCollector(mc))
package prom

import (
	"errors"
	"strconv"
	"time"

	"github.com/hupe1980/fxkmeans"
	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used as the status label of runs_total.
const (
	StatusConverged    = "converged"
	StatusNotConverged = "not_converged"
	StatusError        = "error"
)

// Collector implements fxkmeans.MetricsCollector with Prometheus metrics.
type Collector struct {
	steps         *prometheus.CounterVec
	stepLatency   prometheus.Histogram
	emptyClusters prometheus.Counter
	runs          *prometheus.CounterVec
	runLatency    prometheus.Histogram
	runIterations prometheus.Histogram
}

var _ fxkmeans.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg under namespace.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Kernel steps executed, by whether a centroid moved.",
		}, []string{"changed"}),
		stepLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Latency of one kernel step.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		emptyClusters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_clusters_total",
			Help:      "Clusters that received no points in a step and kept their centroid.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Clustering runs, by outcome.",
		}, []string{"status"}),
		runLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Latency of a clustering run.",
			Buckets:   prometheus.DefBuckets,
		}),
		runIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_iterations",
			Help:      "Steps per clustering run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
	}

	for _, m := range []prometheus.Collector{c.steps, c.stepLatency, c.emptyClusters, c.runs, c.runLatency, c.runIterations} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordStep implements fxkmeans.MetricsCollector.
func (c *Collector) RecordStep(duration time.Duration, changed bool, emptyClusters int) {
	c.steps.WithLabelValues(strconv.FormatBool(changed)).Inc()
	c.stepLatency.Observe(duration.Seconds())
	c.emptyClusters.Add(float64(emptyClusters))
}

// RecordRun implements fxkmeans.MetricsCollector.
func (c *Collector) RecordRun(iterations int, duration time.Duration, err error) {
	c.runs.WithLabelValues(status(err)).Inc()
	c.runLatency.Observe(duration.Seconds())
	c.runIterations.Observe(float64(iterations))
}

func status(err error) string {
	switch {
	case err == nil:
		return StatusConverged
	case errors.Is(err, fxkmeans.ErrNotConverged):
		return StatusNotConverged
	default:
		return StatusError
	}
}
