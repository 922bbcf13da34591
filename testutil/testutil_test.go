package testutil

import (
	"testing"

	"github.com/hupe1980/kcluster/geom"
	"github.com/stretchr/testify/assert"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.UniformPoints(100)

	assert.Len(t, pts, 100)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, -1.0)
		assert.Less(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, -1.0)
		assert.Less(t, p.Y, 1.0)
		assert.Zero(t, p.Z)
	}
}

func TestGridPoints(t *testing.T) {
	rng := NewRNG(4711)

	for _, p := range rng.GridPoints(50) {
		assert.GreaterOrEqual(t, p.X, -1.0)
		assert.Less(t, p.X, 1.0)
	}
}

func TestBlob(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.Blob(500, geom.Pt(10, -10), 0.1)

	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	assert.InDelta(t, 10, sx/500, 0.05)
	assert.InDelta(t, -10, sy/500, 0.05)
}

func TestBlobs(t *testing.T) {
	rng := NewRNG(4711)
	centers := []geom.Point{geom.Pt(0, 0), geom.Pt(100, 100)}

	pts := rng.Blobs(10, centers, 0.01)

	assert.Len(t, pts, 10)
	assert.InDelta(t, 0, pts[0].X, 1)
	assert.InDelta(t, 100, pts[1].X, 1)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	p1 := rng.UniformPoints(10)

	rng.Reset()
	p2 := rng.UniformPoints(10)

	assert.Equal(t, p1, p2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestShuffle(t *testing.T) {
	rng := NewRNG(1)
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	out := Shuffle(rng, in)

	assert.ElementsMatch(t, in, out)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, in)
}

func TestBruteMedoid(t *testing.T) {
	assert.Equal(t, -1, BruteMedoid(nil))
	assert.Equal(t, 0, BruteMedoid([]geom.Point{geom.Pt(3, 3)}))

	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(10, 0)}
	assert.Equal(t, 2, BruteMedoid(pts))
}

func TestBruteNearest(t *testing.T) {
	centers := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}
	pts := []geom.Point{geom.Pt(1, 0), geom.Pt(9, 0), geom.Pt(5, 0)}

	assert.Equal(t, []int{0, 1, 0}, BruteNearest(pts, centers))
}
