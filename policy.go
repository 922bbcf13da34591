package kcluster

import (
	"context"
	"math/rand"

	"github.com/hupe1980/kcluster/geom"
)

// Policy decides how centroids evolve and when a run is finished.
//
// The engine runs assignment before every step; a step may read member lists
// and dispatch work to the pool, but must not touch another step's state.
// Use MedoidRelaxation or GrowthByOutlier.
type Policy interface {
	// Name identifies the policy in logs and metrics.
	Name() string

	validate(numPoints int, o *options) error
	seed(points []geom.Point, o *options, rng *rand.Rand) []geom.Point
	step(ctx context.Context, r *run) (stepResult, error)
}

type stepResult struct {
	done       bool
	converged  bool
	moved      int // clusters whose centroid changed (medoid) or were added (growth)
	stopReason error
}
