package kcluster

import (
	"context"
	"math/rand"

	"github.com/hupe1980/kcluster/geom"
	"github.com/hupe1980/kcluster/internal/pool"
)

type growthByOutlier struct{}

// GrowthByOutlier returns the dynamic cluster-count policy.
//
// Two clusters are seeded at the farthest pair of input points. Each round
// finds every cluster's farthest member and compares the largest such
// distance with the mean distance between centroids, scaled by the
// separation factor (see WithSeparationFactor). If it is strictly greater, a
// new cluster is seeded at that point; otherwise the cluster count is final.
// Centroids are never recomputed.
func GrowthByOutlier() Policy {
	return growthByOutlier{}
}

func (growthByOutlier) Name() string { return "growth" }

func (growthByOutlier) validate(numPoints int, o *options) error {
	if numPoints < 2 {
		return &ConfigError{Field: "points", Value: numPoints, Reason: "growth needs at least two points"}
	}
	if len(o.seeds) > 0 {
		return &ConfigError{Field: "seeds", Value: len(o.seeds), Reason: "seeds are chosen by the growth policy"}
	}
	if o.maxClusters == 1 {
		return &ConfigError{Field: "max_clusters", Value: o.maxClusters, Reason: "growth starts with two clusters"}
	}
	return nil
}

func (growthByOutlier) seed(points []geom.Point, _ *options, _ *rand.Rand) []geom.Point {
	i, j := geom.FarthestPair(points)
	return []geom.Point{points[i], points[j]}
}

func (growthByOutlier) step(ctx context.Context, r *run) (stepResult, error) {
	clusters := r.clusters.Slice()
	centroids := r.centroids()

	sepFuture, err := pool.Submit(r.pool, func() (float64, error) {
		return meanSeparation(centroids), nil
	})
	if err != nil {
		return stepResult{}, err
	}

	candidates := make([]Candidate, 0, len(clusters))
	err = dispatch(ctx, r.pool, clusters, (*cluster).candidate, func(_ int, res candidateResult) {
		if res.ok {
			candidates = append(candidates, res.candidate)
		}
	})

	separation, sepErr := sepFuture.Wait()
	if err != nil {
		return stepResult{}, err
	}
	if sepErr != nil {
		return stepResult{}, taskError(-1, sepErr)
	}

	best, ok := maxCandidate(candidates)
	if !ok {
		return stepResult{done: true, converged: true, stopReason: ErrDegenerateCandidateSet}, nil
	}

	threshold := separation * r.opts.separationFactor
	if best.Distance <= threshold {
		return stepResult{done: true, converged: true}, nil
	}
	if limit := r.opts.maxClusters; limit > 0 && len(clusters) >= limit {
		return stepResult{done: true, stopReason: ErrClusterLimit}, nil
	}

	r.addCluster(best.Point)
	n := r.clusters.Len()
	r.log.LogGrowth(ctx, n, best, threshold)
	r.metrics.RecordGrowth(n)

	return stepResult{moved: 1}, nil
}
