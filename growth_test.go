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

func TestGrowthByOutlier_BlobsAndOutlier(t *testing.T) {
	eng, err := kcluster.New(blobsAndOutlier(), kcluster.GrowthByOutlier(), kcluster.WithSeed(1))
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Nil(t, res.StopReason)
	assert.Equal(t, "growth", res.Policy)
	assert.Equal(t, 2, res.Iterations)
	require.Len(t, res.Clusters, 3)

	// Seeds are the first farthest pair, the third cluster sits on the outlier.
	assert.Equal(t, geom.Pt(0, 0), res.Clusters[0].Centroid)
	assert.Equal(t, geom.Pt(101, 1), res.Clusters[1].Centroid)
	assert.Equal(t, geom.Pt(50, 60), res.Clusters[2].Centroid)

	assert.Equal(t, 4, res.Clusters[0].Len())
	assert.Equal(t, 4, res.Clusters[1].Len())
	assert.Equal(t, []geom.Point{geom.Pt(50, 60)}, res.Clusters[2].Members)
}

// TestGrowthByOutlier_UnscaledThreshold compares against the plain mean
// separation. With two seeds on the farthest pair no point can exceed it.
func TestGrowthByOutlier_UnscaledThreshold(t *testing.T) {
	eng, err := kcluster.New(blobsAndOutlier(), kcluster.GrowthByOutlier(),
		kcluster.WithSeparationFactor(1),
	)
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Len(t, res.Clusters, 2)
}

func TestGrowthByOutlier_ClusterLimit(t *testing.T) {
	eng, err := kcluster.New(blobsAndOutlier(), kcluster.GrowthByOutlier(),
		kcluster.WithMaxClusters(2),
	)
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.ErrorIs(t, res.StopReason, kcluster.ErrClusterLimit)
	assert.Len(t, res.Clusters, 2)
}

func TestGrowthByOutlier_TwoPoints(t *testing.T) {
	eng, err := kcluster.New([]geom.Point{geom.Pt(0, 0), geom.Pt(3, 4)}, kcluster.GrowthByOutlier())
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(3, 4)}, res.Centroids())
	assert.Equal(t, []int{0, 1}, res.Labels())
}

// TestGrowthByOutlier_Monotonic checks that the cluster count never shrinks,
// grows by at most one per round, and that the run ends exactly when the
// farthest member is within the threshold.
func TestGrowthByOutlier_Monotonic(t *testing.T) {
	rng := testutil.NewRNG(21)
	centers := []geom.Point{
		geom.Pt(0, 0), geom.Pt(40, 0), geom.Pt(0, 40), geom.Pt(40, 40), geom.Pt(20, 80),
	}
	points := rng.Blobs(500, centers, 2.0)

	rec := &recordingCollector{}
	eng, err := kcluster.New(points, kcluster.GrowthByOutlier(),
		kcluster.WithMetricsCollector(rec),
		kcluster.WithMaxIterations(len(points)),
	)
	require.NoError(t, err)
	defer eng.Close()

	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Converged)

	counts := rec.counts()
	require.NotEmpty(t, counts)
	// Counts are taken after each step, so the first round may already show a third cluster.
	assert.Contains(t, []int{2, 3}, counts[0])
	for i := 1; i < len(counts); i++ {
		assert.Contains(t, []int{counts[i-1], counts[i-1] + 1}, counts[i], "round %d", i)
	}
	assert.Equal(t, len(res.Clusters), counts[len(counts)-1])

	centroids := res.Centroids()
	var farthest float64
	for _, c := range res.Clusters {
		if _, d, ok := kcluster.Farthest(c.Centroid, c.Members); ok && d > farthest {
			farthest = d
		}
		assert.Contains(t, points, c.Centroid, "centroids are input points")
	}
	threshold := kcluster.DefaultSeparationFactor * geom.MeanPairwiseDistance(centroids)
	assert.LessOrEqual(t, farthest, threshold)
}
