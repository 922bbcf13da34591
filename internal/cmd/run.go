package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// runEngine loads the points, runs policy to completion and prints a summary.
// A progress reporter polls Engine.Snapshot alongside the run.
func runEngine(cmd *cobra.Command, cfg *config.Config, policy kcluster.Policy, extra ...kcluster.Option) error {
	points, err := loadPoints(cfg)
	if err != nil {
		return fmt.Errorf("failed to load points: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), &cfg.Logging)
	metrics := &kcluster.BasicMetricsCollector{}

	opts := []kcluster.Option{
		kcluster.WithWorkers(cfg.Engine.Workers),
		kcluster.WithMaxIterations(cfg.Engine.MaxIterations),
		kcluster.WithIterationRate(cfg.Engine.IterationRate),
		kcluster.WithLogger(logger),
		kcluster.WithMetricsCollector(metrics),
	}
	if cfg.Engine.Seed != 0 {
		opts = append(opts, kcluster.WithSeed(cfg.Engine.Seed))
	}
	opts = append(opts, extra...)

	eng, err := kcluster.New(points, policy, opts...)
	if err != nil {
		return err
	}
	defer eng.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var res *kcluster.Result
	done := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)

		var runErr error
		res, runErr = eng.Run(gctx)
		switch {
		case errors.Is(runErr, kcluster.ErrNonConvergence):
			logger.WarnContext(gctx, "iteration cap reached", "max_iterations", cfg.Engine.MaxIterations)
			return nil
		case res != nil && errors.Is(runErr, context.Canceled):
			// Interrupted: still print what we have.
			return nil
		default:
			return runErr
		}
	})
	g.Go(func() error {
		report(gctx, done, eng, cfg.Report.ReportInterval(), logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	renderSummary(cmd.OutOrStdout(), res, cfg.Report.Members)

	stats := metrics.GetStats()
	logger.DebugContext(ctx, "metrics",
		"iterations", stats.IterationCount,
		"iteration_avg", time.Duration(stats.IterationAvgNanos),
		"growth", stats.GrowthCount,
		"max_clusters", stats.MaxClusters,
	)
	return nil
}

func newLogger(w io.Writer, cfg *config.LoggingConfig) *kcluster.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.Format, "json") {
		return kcluster.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return kcluster.NewLogger(slog.NewTextHandler(w, opts))
}

// report logs a snapshot summary every interval until done is closed.
func report(ctx context.Context, done <-chan struct{}, eng *kcluster.Engine, interval time.Duration, logger *kcluster.Logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := eng.Snapshot()
			sizes := make([]int, len(snap))
			for i, c := range snap {
				sizes[i] = c.Len()
			}
			logger.InfoContext(ctx, "progress", "clusters", len(snap), "sizes", sizes)
		}
	}
}
