package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/kcluster/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates points with both coordinates in [-1, 1).
func (r *RNG) UniformPoints(num int) []geom.Point {
	return r.UniformRangePoints(num, -1, 1)
}

// UniformRangePoints generates points with both coordinates in [minVal, maxVal).
func (r *RNG) UniformRangePoints(num int, minVal, maxVal float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	points := make([]geom.Point, num)
	for i := range points {
		points[i] = geom.Pt(minVal+r.rand.Float64()*span, minVal+r.rand.Float64()*span)
	}
	return points
}

// GridPoints generates points on an integer grid in [0, 2000) scaled to
// [-1, 1) with a step of 0.001, like a renderer-friendly input set.
func (r *RNG) GridPoints(num int) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		x := float64(r.rand.Intn(2000)-1000) / 1000
		y := float64(r.rand.Intn(2000)-1000) / 1000
		points[i] = geom.Pt(x, y)
	}
	return points
}

// Blob generates num points with gaussian noise of the given spread around center.
func (r *RNG) Blob(num int, center geom.Point, spread float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		points[i] = geom.Pt(
			center.X+r.rand.NormFloat64()*spread,
			center.Y+r.rand.NormFloat64()*spread,
		)
	}
	return points
}

// Blobs generates num points spread round-robin over the given centers.
func (r *RNG) Blobs(num int, centers []geom.Point, spread float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		c := centers[i%len(centers)]
		points[i] = geom.Pt(
			c.X+r.rand.NormFloat64()*spread,
			c.Y+r.rand.NormFloat64()*spread,
		)
	}
	return points
}

// Shuffle returns a shuffled copy of s.
func Shuffle[T any](r *RNG, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// BruteMedoid returns the index of the point with the smallest sum of squared
// distances to all points, evaluating every candidate independently.
// Returns -1 for an empty slice.
func BruteMedoid(points []geom.Point) int {
	costs := make([]float64, len(points))
	for i := range points {
		for j := range points {
			costs[i] += geom.SquaredDistance(points[i], points[j])
		}
	}

	best := -1
	bestCost := math.Inf(1)
	for i, c := range costs {
		if c < bestCost {
			best, bestCost = i, c
		}
	}
	return best
}

// BruteNearest returns, for each point, the index of the nearest centre using
// squared distances. Ties go to the lowest centre index.
func BruteNearest(points, centers []geom.Point) []int {
	labels := make([]int, len(points))
	for i, p := range points {
		best, bestDist := -1, math.Inf(1)
		for j, c := range centers {
			if d := geom.SquaredDistance(p, c); d < bestDist {
				best, bestDist = j, d
			}
		}
		labels[i] = best
	}
	return labels
}
