package kcluster

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/kcluster/geom"
	"github.com/hupe1980/kcluster/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reductions must not depend on the order tasks complete in. Each test
// feeds the same inputs in many shuffled orders.

func TestConverged_AnyOrder(t *testing.T) {
	rng := testutil.NewRNG(7)

	assert.True(t, converged(bitset.New(8)))

	order := []uint{0, 3, 5}
	for range 20 {
		moved := bitset.New(8)
		for _, i := range testutil.Shuffle(rng, order) {
			moved.Set(i)
		}
		assert.False(t, converged(moved))
		assert.Equal(t, uint(3), moved.Count())
	}
}

func TestMaxCandidate_AnyOrder(t *testing.T) {
	rng := testutil.NewRNG(11)

	candidates := []Candidate{
		{Cluster: 0, Distance: 1.5, Point: geom.Pt(1, 1)},
		{Cluster: 1, Distance: 4, Point: geom.Pt(2, 2)},
		{Cluster: 2, Distance: 0, Point: geom.Pt(3, 3)},
		{Cluster: 3, Distance: 4, Point: geom.Pt(4, 4)},
		{Cluster: 4, Distance: 2, Point: geom.Pt(5, 5)},
	}

	for range 50 {
		best, ok := maxCandidate(testutil.Shuffle(rng, candidates))
		require.True(t, ok)
		assert.Equal(t, candidates[1], best, "equal distances resolve to the lowest cluster")
	}

	_, ok := maxCandidate(nil)
	assert.False(t, ok)
}

func TestMeanSeparation_AnyOrder(t *testing.T) {
	rng := testutil.NewRNG(13)
	centroids := rng.UniformRangePoints(12, -50, 50)
	want := meanSeparation(centroids)

	for range 20 {
		assert.InDelta(t, want, meanSeparation(testutil.Shuffle(rng, centroids)), 1e-9)
	}
}
