package fxkmeans

import (
	"log/slog"
)

type options struct {
	workers           int
	maxIterations     int
	maxConcurrentRuns int64
	memoryLimitBytes  int64
	metricsCollector  MetricsCollector
	logger            *Logger
}

// Option configures Clusterer behaviour that does not affect results.
type Option func(*options)

// WithWorkers splits the assignment pass of each step across n goroutines.
//
// Partial accumulators are merged in a fixed order, so results are identical
// to the sequential kernel. Small datasets are always assigned sequentially.
// If n <= 1, the kernel runs on the calling goroutine (default).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxIterations caps the number of steps a Run may take.
//
// The default (0) is unbounded: Run iterates until no centroid moves. With a
// cap, Run returns the partial Result together with ErrNotConverged once the
// cap is reached.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithMaxConcurrentRuns limits how many Runs of one Clusterer execute at once.
// Additional callers block until a slot frees up or their context ends.
// If n <= 0, runs are not limited.
func WithMaxConcurrentRuns(n int64) Option {
	return func(o *options) {
		o.maxConcurrentRuns = n
	}
}

// WithMemoryLimit caps the kernel scratch memory held by concurrent Runs.
// A Run that would exceed it fails fast with ErrMemoryLimitExceeded.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimitBytes = bytes
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fxkmeans.BasicMetricsCollector{}
//	c, _ := fxkmeans.New(fxkmeans.DefaultConfig(), fxkmeans.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, Avg latency: %dns\n", stats.StepCount, stats.StepAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fxkmeans.NewJSONLogger(slog.LevelInfo)
//	c, _ := fxkmeans.New(cfg, fxkmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
