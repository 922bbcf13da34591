package kcluster

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kcluster-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRunID tags the logger with a run identifier.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithPolicy adds the policy name.
func (l *Logger) WithPolicy(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("policy", name),
	}
}

// LogIteration logs the outcome of one assignment/update round.
func (l *Logger) LogIteration(ctx context.Context, iteration, clusters, changed int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "iteration failed",
			"iteration", iteration,
			"clusters", clusters,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "iteration completed",
			"iteration", iteration,
			"clusters", clusters,
			"changed", changed,
			"duration", duration,
		)
	}
}

// LogGrowth logs a newly seeded cluster.
func (l *Logger) LogGrowth(ctx context.Context, clusters int, c Candidate, threshold float64) {
	l.DebugContext(ctx, "cluster added",
		"clusters", clusters,
		"source_cluster", c.Cluster,
		"seed", c.Point.String(),
		"distance", c.Distance,
		"threshold", threshold,
	)
}

// LogRun logs the end of a run.
func (l *Logger) LogRun(ctx context.Context, res *Result, err error) {
	switch {
	case err != nil && res != nil:
		l.WarnContext(ctx, "run finished with soft failure",
			"iterations", res.Iterations,
			"clusters", len(res.Clusters),
			"error", err,
		)
	case err != nil:
		l.ErrorContext(ctx, "run failed",
			"error", err,
		)
	default:
		attrs := []any{
			"iterations", res.Iterations,
			"clusters", len(res.Clusters),
			"converged", res.Converged,
			"stopped", res.Stopped,
			"duration", res.Duration,
		}
		if res.StopReason != nil {
			attrs = append(attrs, "stop_reason", res.StopReason)
		}
		l.InfoContext(ctx, "run completed", attrs...)
	}
}
