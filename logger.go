package fxkmeans

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustering-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRunID adds a run_id field to the logger.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithShape adds the dataset size and cluster count to the logger.
func (l *Logger) WithShape(n, m int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n, "m", m),
	}
}

// LogStep logs one kernel iteration.
func (l *Logger) LogStep(ctx context.Context, iteration int, changed bool, empty []int) {
	if len(empty) > 0 {
		l.WarnContext(ctx, "clusters without members kept their centroid",
			"iteration", iteration,
			"clusters", empty,
		)
	}
	l.DebugContext(ctx, "step completed",
		"iteration", iteration,
		"changed", changed,
	)
}

// LogRun logs the outcome of a clustering run.
func (l *Logger) LogRun(ctx context.Context, iterations int, converged bool, err error) {
	switch {
	case err != nil && iterations > 0 && !converged:
		l.WarnContext(ctx, "run stopped before convergence",
			"iterations", iterations,
			"error", err,
		)
	case err != nil:
		l.ErrorContext(ctx, "run failed",
			"iterations", iterations,
			"error", err,
		)
	default:
		l.InfoContext(ctx, "run converged",
			"iterations", iterations,
		)
	}
}
