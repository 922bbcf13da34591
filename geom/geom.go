package geom

import (
	"fmt"
	"math"
)

// Point is an immutable 3-component coordinate.
// Z is always zero and ignored by all distance functions.
type Point struct {
	X, Y, Z float64
}

// Pt returns the planar point (x, y, 0).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and q share the same planar coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// SquaredDistance returns the squared planar Euclidean distance between a and b.
func SquaredDistance(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Distance returns the planar Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// FarthestPair returns the indices of the pair with maximum planar distance.
// The scan visits (i, j) with i < j in order and keeps the first maximum.
// With fewer than two points it returns (0, 0).
func FarthestPair(points []Point) (int, int) {
	bi, bj := 0, 0
	best := -1.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := SquaredDistance(points[i], points[j]); d > best {
				best = d
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}

// MeanPairwiseDistance returns the mean planar distance over all unordered pairs
// of points. Pairs are accumulated in (i, j) order so the result does not depend
// on the caller's scheduling. It returns 0 for fewer than two points.
func MeanPairwiseDistance(points []Point) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += Distance(points[i], points[j])
		}
	}
	return sum / float64(n*(n-1)/2)
}
