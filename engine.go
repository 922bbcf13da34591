package kcluster

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/kcluster/geom"
	"github.com/hupe1980/kcluster/internal/container"
	"github.com/hupe1980/kcluster/internal/pool"
	"golang.org/x/time/rate"
)

// Result is the outcome of one Run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	// Policy is the policy name.
	Policy string
	// Iterations counts completed assignment/update rounds.
	Iterations int
	// Converged is true when the policy settled on its own: no medoid moved,
	// or growth found no outlier beyond its threshold.
	Converged bool
	// Stopped is true when the run ended because Stop was called.
	Stopped bool
	// StopReason explains a non-error termination such as
	// ErrDegenerateCandidateSet or ErrClusterLimit. Nil otherwise.
	StopReason error
	// Clusters holds the final per-cluster snapshots in cluster order.
	Clusters []ClusterSnapshot
	// Duration is the wall time of the run.
	Duration time.Duration

	numPoints int
}

// Labels returns the cluster index of every input point, or -1 for a point
// not assigned in the last published iteration.
func (r *Result) Labels() []int {
	labels := make([]int, r.numPoints)
	for i := range labels {
		labels[i] = -1
	}
	for _, c := range r.Clusters {
		it := c.IDs.Iterator()
		for it.HasNext() {
			labels[it.Next()] = c.Index
		}
	}
	return labels
}

// Centroids returns the final centroids in cluster order.
func (r *Result) Centroids() []geom.Point {
	out := make([]geom.Point, len(r.Clusters))
	for i, c := range r.Clusters {
		out[i] = c.Centroid
	}
	return out
}

// Engine partitions a fixed point set under a Policy.
//
// An Engine owns a worker pool; call Close to release it. Run may be called
// repeatedly, but runs are serialised.
type Engine struct {
	points  []geom.Point
	policy  Policy
	opts    options
	pool    *pool.Pool
	limiter *rate.Limiter

	runMu sync.Mutex
	rng   *rand.Rand // protected by runMu

	current atomic.Pointer[container.SegmentedArray[*cluster]]
	stop    atomic.Bool
	closed  atomic.Bool
}

// New validates the configuration and creates an Engine.
//
// It fails with an error wrapping ErrInvalidConfiguration, before any worker
// starts, if points is empty or the policy parameters are out of range.
func New(points []geom.Point, policy Policy, optFns ...Option) (*Engine, error) {
	if policy == nil {
		return nil, &ConfigError{Field: "policy", Value: nil, Reason: "policy is required"}
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := validateCommon(len(points), &opts); err != nil {
		return nil, err
	}
	if err := validatePoints("points", points); err != nil {
		return nil, err
	}
	if err := validatePoints("seeds", opts.seeds); err != nil {
		return nil, err
	}
	if err := policy.validate(len(points), &opts); err != nil {
		return nil, err
	}

	e := &Engine{
		points: slices.Clone(points),
		policy: policy,
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.seed)),
		pool:   pool.New(opts.workers),
	}

	if opts.iterationRate > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(opts.iterationRate), 1)
	}

	return e, nil
}

// Policy returns the engine's policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Stop asks the current run to finish after the iteration in progress.
//
// Run clears the flag when it starts, so Stop only affects a run that is
// already in progress: a Stop issued before Run (or while Run is still
// waiting for a previous run to finish) is discarded.
func (e *Engine) Stop() {
	e.stop.Store(true)
}

// Snapshot returns the clusters as of the last completed iteration of the
// current or most recent run. It is safe to call concurrently with Run.
func (e *Engine) Snapshot() []ClusterSnapshot {
	clusters := e.current.Load()
	if clusters == nil {
		return nil
	}
	out := make([]ClusterSnapshot, 0, clusters.Len())
	for _, c := range clusters.All() {
		out = append(out, c.snapshot())
	}
	return out
}

// Close shuts down the worker pool. Close is idempotent.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	e.pool.Close()
	return nil
}

// Run iterates assignment and policy steps until the policy finishes, the
// iteration cap is reached, Stop is called or ctx is cancelled.
//
// Cancellation and Stop are only observed between iterations. On cancellation
// Run returns the partial result together with ctx.Err(). When the iteration
// cap is reached it returns the partial result and an error wrapping
// ErrNonConvergence. A failing task aborts the run with a nil result.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.closed.Load() {
		return nil, ErrClosed
	}

	e.runMu.Lock()
	defer e.runMu.Unlock()

	e.stop.Store(false)

	start := time.Now()
	runID := uuid.NewString()
	name := e.policy.Name()
	log := e.opts.logger.WithRunID(runID).WithPolicy(name)

	r := &run{
		points:   e.points,
		clusters: container.NewSegmentedArray[*cluster](),
		pool:     e.pool,
		rng:      e.rng,
		opts:     &e.opts,
		log:      log,
		metrics:  e.opts.metricsCollector,
	}
	for _, s := range e.policy.seed(e.points, &e.opts, e.rng) {
		r.addCluster(s)
	}
	e.current.Store(r.clusters)

	res := &Result{
		RunID:     runID,
		Policy:    name,
		numPoints: len(e.points),
	}

	finish := func(err error) (*Result, error) {
		res.Clusters = r.snapshots()
		res.Duration = time.Since(start)
		e.opts.metricsCollector.RecordRun(name, res.Iterations, res.Converged, res.Duration, err)
		log.LogRun(ctx, res, err)
		return res, err
	}

	// Tasks are never cancelled mid-iteration.
	stepCtx := context.WithoutCancel(ctx)

	for {
		if e.stop.Load() {
			res.Stopped = true
			return finish(nil)
		}
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		if res.Iterations >= e.opts.maxIterations {
			return finish(fmt.Errorf("%w: %d iterations", ErrNonConvergence, res.Iterations))
		}
		if e.limiter != nil {
			if err := e.limiter.Wait(ctx); err != nil {
				return finish(err)
			}
		}

		iterStart := time.Now()

		r.assign()
		out, err := e.policy.step(stepCtx, r)

		iterDur := time.Since(iterStart)
		e.opts.metricsCollector.RecordIteration(name, r.clusters.Len(), iterDur, err)
		log.LogIteration(ctx, res.Iterations+1, r.clusters.Len(), out.moved, iterDur, err)

		if err != nil {
			e.opts.metricsCollector.RecordRun(name, res.Iterations, false, time.Since(start), err)
			log.LogRun(ctx, nil, err)
			return nil, err
		}

		r.publish()
		res.Iterations++

		if out.done {
			res.Converged = out.converged
			res.StopReason = out.stopReason
			return finish(nil)
		}
	}
}

// run is the per-Run state shared between the engine loop and the policy.
type run struct {
	points   []geom.Point
	clusters *container.SegmentedArray[*cluster]
	pool     *pool.Pool
	rng      *rand.Rand
	opts     *options
	log      *Logger
	metrics  MetricsCollector
}

// addCluster appends a cluster seeded at centroid. Only the orchestrator
// goroutine appends.
func (r *run) addCluster(centroid geom.Point) *cluster {
	c := newCluster(r.clusters.Len(), centroid, randomColor(r.rng))
	r.clusters.Append(c)
	return c
}

func (r *run) centroids() []geom.Point {
	out := make([]geom.Point, 0, r.clusters.Len())
	for _, c := range r.clusters.All() {
		out = append(out, c.centroid)
	}
	return out
}

// assign clears every member buffer and refills it from the current
// centroids. It runs on the orchestrator before any task of the iteration is
// dispatched.
func (r *run) assign() {
	clusters := r.clusters.Slice()
	for _, c := range clusters {
		c.reset()
	}

	centroids := r.centroids()
	for i, p := range r.points {
		clusters[nearest(p, centroids)].attach(uint32(i), p)
	}
}

func (r *run) publish() {
	for _, c := range r.clusters.All() {
		c.publish()
	}
}

func (r *run) snapshots() []ClusterSnapshot {
	out := make([]ClusterSnapshot, 0, r.clusters.Len())
	for _, c := range r.clusters.All() {
		out = append(out, c.snapshot())
	}
	return out
}
