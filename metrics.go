package kcluster

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordIteration is called after each assignment/update round.
	// clusters is the cluster count at the end of the round.
	RecordIteration(policy string, clusters int, duration time.Duration, err error)

	// RecordGrowth is called when the growth policy appends a cluster.
	RecordGrowth(clusters int)

	// RecordRun is called once per Run, after the loop exits.
	RecordRun(policy string, iterations int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(string, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordGrowth(int)                                   {}
func (NoopMetricsCollector) RecordRun(string, int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IterationCount      atomic.Int64
	IterationErrors     atomic.Int64
	IterationTotalNanos atomic.Int64
	GrowthCount         atomic.Int64
	MaxClusters         atomic.Int64
	RunCount            atomic.Int64
	RunErrors           atomic.Int64
	RunsConverged       atomic.Int64
	RunTotalNanos       atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_ string, clusters int, duration time.Duration, err error) {
	b.IterationCount.Add(1)
	b.IterationTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IterationErrors.Add(1)
	}
	b.observeClusters(int64(clusters))
}

// RecordGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrowth(clusters int) {
	b.GrowthCount.Add(1)
	b.observeClusters(int64(clusters))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ string, _ int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
	if converged {
		b.RunsConverged.Add(1)
	}
}

func (b *BasicMetricsCollector) observeClusters(n int64) {
	for {
		cur := b.MaxClusters.Load()
		if n <= cur || b.MaxClusters.CompareAndSwap(cur, n) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IterationCount:    b.IterationCount.Load(),
		IterationErrors:   b.IterationErrors.Load(),
		IterationAvgNanos: avg(b.IterationTotalNanos.Load(), b.IterationCount.Load()),
		GrowthCount:       b.GrowthCount.Load(),
		MaxClusters:       b.MaxClusters.Load(),
		RunCount:          b.RunCount.Load(),
		RunErrors:         b.RunErrors.Load(),
		RunsConverged:     b.RunsConverged.Load(),
		RunAvgNanos:       avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
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
	IterationCount    int64
	IterationErrors   int64
	IterationAvgNanos int64
	GrowthCount       int64
	MaxClusters       int64
	RunCount          int64
	RunErrors         int64
	RunsConverged     int64
	RunAvgNanos       int64
}
