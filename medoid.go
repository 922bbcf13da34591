package kcluster

import (
	"context"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/kcluster/geom"
)

type medoidRelaxation struct {
	k int
}

// MedoidRelaxation returns the fixed-K policy.
//
// Each round moves every non-empty cluster's centroid to the member that
// minimises the sum of squared distances to the other members. The run
// converges once no centroid moves. k must be within [MinClusters, MaxClusters].
func MedoidRelaxation(k int) Policy {
	return &medoidRelaxation{k: k}
}

func (m *medoidRelaxation) Name() string { return "medoid" }

func (m *medoidRelaxation) validate(numPoints int, o *options) error {
	if err := validateK(m.k, numPoints); err != nil {
		return err
	}
	if len(o.seeds) > 0 && len(o.seeds) != m.k {
		return &ConfigError{Field: "seeds", Value: len(o.seeds), Reason: "seed count must equal k"}
	}
	return nil
}

// seed uses explicit seeds if given, otherwise k distinct random input points.
func (m *medoidRelaxation) seed(points []geom.Point, o *options, rng *rand.Rand) []geom.Point {
	if len(o.seeds) > 0 {
		return o.seeds
	}

	perm := rng.Perm(len(points))
	seeds := make([]geom.Point, m.k)
	for i := range seeds {
		seeds[i] = points[perm[i]]
	}
	return seeds
}

func (m *medoidRelaxation) step(ctx context.Context, r *run) (stepResult, error) {
	clusters := r.clusters.Slice()
	moved := bitset.New(uint(len(clusters)))

	err := dispatch(ctx, r.pool, clusters, (*cluster).relax, func(i int, ok bool) {
		if ok {
			moved.Set(uint(i))
		}
	})
	if err != nil {
		return stepResult{}, err
	}

	done := converged(moved)
	return stepResult{
		done:      done,
		converged: done,
		moved:     int(moved.Count()),
	}, nil
}
