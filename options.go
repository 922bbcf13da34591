package kcluster

import (
	"slices"
	"time"

	"github.com/hupe1980/kcluster/geom"
)

const (
	// DefaultMaxIterations caps the assignment/update loop when
	// WithMaxIterations is not given.
	DefaultMaxIterations = 100

	// DefaultSeparationFactor scales the mean centroid separation that a
	// growth candidate must exceed.
	DefaultSeparationFactor = 0.5
)

type options struct {
	workers          int
	maxIterations    int
	seed             int64
	seeds            []geom.Point
	maxClusters      int
	separationFactor float64
	iterationRate    float64
	metricsCollector MetricsCollector
	logger           *Logger
}

func defaultOptions() options {
	return options{
		maxIterations:    DefaultMaxIterations,
		separationFactor: DefaultSeparationFactor,
		seed:             time.Now().UnixNano(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// Option configures an Engine.
type Option func(*options)

// WithWorkers sets the number of worker goroutines in the engine's pool.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxIterations caps the number of assignment/update rounds per Run.
// When the cap is hit Run returns the partial result and ErrNonConvergence.
// Values <= 0 keep DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithSeed fixes the random source used for seed selection and cluster colors.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithSeeds supplies explicit initial centroids for MedoidRelaxation.
// The number of points must equal the policy's K.
//
// Example:
//
//	eng, _ := kcluster.New(points, kcluster.MedoidRelaxation(2),
//	    kcluster.WithSeeds(geom.Pt(0, 0), geom.Pt(10, 0)))
func WithSeeds(points ...geom.Point) Option {
	return func(o *options) {
		o.seeds = slices.Clone(points)
	}
}

// WithMaxClusters limits how many clusters GrowthByOutlier may create.
// 0 means unlimited.
func WithMaxClusters(n int) Option {
	return func(o *options) {
		o.maxClusters = n
	}
}

// WithSeparationFactor sets the multiple of the mean centroid separation that
// the farthest outlier must exceed for GrowthByOutlier to add a cluster.
//
// The two initial clusters sit on the farthest pair of points, so no point
// can lie farther than the mean separation from its nearest centroid at that
// stage: a factor of 1 never grows beyond two clusters. The default of 0.5 is
// the classic maximin threshold. f must be positive.
func WithSeparationFactor(f float64) Option {
	return func(o *options) {
		o.separationFactor = f
	}
}

// WithIterationRate paces the loop to at most hz iterations per second so a
// live consumer polling Snapshot can follow the run. 0 disables pacing.
func WithIterationRate(hz float64) Option {
	return func(o *options) {
		o.iterationRate = hz
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kcluster.BasicMetricsCollector{}
//	eng, _ := kcluster.New(points, kcluster.GrowthByOutlier(), kcluster.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
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
//	logger := kcluster.NewJSONLogger(slog.LevelDebug)
//	eng, _ := kcluster.New(points, kcluster.MedoidRelaxation(5), kcluster.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
