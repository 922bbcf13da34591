package kcluster_test

import (
	"context"
	"testing"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/geom"
	"github.com/hupe1980/kcluster/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedoidRelaxation_FourPoints(t *testing.T) {
	points := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(10, 0), geom.Pt(10, 1)}

	eng, err := kcluster.New(points, kcluster.MedoidRelaxation(2),
		kcluster.WithSeeds(geom.Pt(0, 0), geom.Pt(10, 0)),
	)
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, "medoid", res.Policy)
	require.Len(t, res.Clusters, 2)

	assert.Equal(t, geom.Pt(0, 0), res.Clusters[0].Centroid)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1)}, res.Clusters[0].Members)
	assert.Equal(t, geom.Pt(10, 0), res.Clusters[1].Centroid)
	assert.Equal(t, []geom.Point{geom.Pt(10, 0), geom.Pt(10, 1)}, res.Clusters[1].Members)
	assert.Equal(t, []int{0, 0, 1, 1}, res.Labels())
}

func TestMedoidRelaxation_Line(t *testing.T) {
	eng, err := kcluster.New(linePoints(), kcluster.MedoidRelaxation(2),
		kcluster.WithSeeds(geom.Pt(0, 0), geom.Pt(1, 0)),
	)
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 4, res.Iterations)
	assert.Equal(t, []geom.Point{geom.Pt(1, 0), geom.Pt(11, 0)}, res.Centroids())
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1}, res.Labels())
}

func TestMedoidRelaxation_NonConvergence(t *testing.T) {
	eng, err := kcluster.New(linePoints(), kcluster.MedoidRelaxation(2),
		kcluster.WithSeeds(geom.Pt(0, 0), geom.Pt(1, 0)),
		kcluster.WithMaxIterations(1),
	)
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.ErrorIs(t, err, kcluster.ErrNonConvergence)
	require.NotNil(t, res, "best-effort result is returned")

	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(3, 0)}, res.Centroids())
}

// TestMedoidRelaxation_FixedPoint checks the properties of a converged run:
// every point belongs to exactly one cluster, that cluster has the nearest
// centroid, and every non-empty cluster's centroid is its own medoid.
func TestMedoidRelaxation_FixedPoint(t *testing.T) {
	rng := testutil.NewRNG(42)
	centers := []geom.Point{geom.Pt(-5, -5), geom.Pt(5, 5), geom.Pt(-5, 5), geom.Pt(5, -5), geom.Pt(0, 0)}
	points := rng.Blobs(400, centers, 1.0)

	eng, err := kcluster.New(points, kcluster.MedoidRelaxation(5),
		kcluster.WithSeed(7),
		kcluster.WithWorkers(4),
	)
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Converged)

	total := 0
	for _, c := range res.Clusters {
		total += c.Len()
		assert.Equal(t, uint64(c.Len()), c.IDs.GetCardinality())

		if c.Len() > 0 {
			assert.Equal(t, c.Members[testutil.BruteMedoid(c.Members)], c.Centroid, "cluster %d", c.Index)
		}
	}
	assert.Equal(t, len(points), total)

	assert.Equal(t, testutil.BruteNearest(points, res.Centroids()), res.Labels())
}

// TestMedoidRelaxation_WorkerCountIndependent runs the same configuration on
// different pool sizes; completion order differs, the result must not.
func TestMedoidRelaxation_WorkerCountIndependent(t *testing.T) {
	rng := testutil.NewRNG(5)
	points := rng.UniformRangePoints(300, -10, 10)

	var results []*kcluster.Result
	for _, workers := range []int{1, 3, 8} {
		eng, err := kcluster.New(points, kcluster.MedoidRelaxation(6),
			kcluster.WithSeed(99),
			kcluster.WithWorkers(workers),
		)
		require.NoError(t, err)

		res, err := eng.Run(context.Background())
		require.NoError(t, err)
		require.NoError(t, eng.Close())

		results = append(results, res)
	}

	for _, res := range results[1:] {
		assert.Equal(t, results[0].Iterations, res.Iterations)
		assert.Equal(t, results[0].Centroids(), res.Centroids())
		assert.Equal(t, results[0].Labels(), res.Labels())
	}
}

func TestMedoidRelaxation_KEqualsN(t *testing.T) {
	points := []geom.Point{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(0, 5)}

	eng, err := kcluster.New(points, kcluster.MedoidRelaxation(3), kcluster.WithSeed(1))
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	for _, c := range res.Clusters {
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, c.Members[0], c.Centroid)
	}
}

// TestMedoidRelaxation_IdenticalPoints leaves the second cluster empty: every
// point is equidistant and goes to the first centroid.
func TestMedoidRelaxation_IdenticalPoints(t *testing.T) {
	points := []geom.Point{geom.Pt(2, 2), geom.Pt(2, 2), geom.Pt(2, 2), geom.Pt(2, 2)}

	eng, err := kcluster.New(points, kcluster.MedoidRelaxation(2), kcluster.WithSeed(3))
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 4, res.Clusters[0].Len())
	assert.Zero(t, res.Clusters[1].Len())
	assert.Equal(t, geom.Pt(2, 2), res.Clusters[1].Centroid)
}
