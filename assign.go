package kcluster

import (
	"math"

	"github.com/hupe1980/kcluster/geom"
)

// Assign returns, for each point, the index of its nearest centroid by planar
// distance. A point equidistant from several centroids goes to the first of
// them in slice order.
func Assign(points, centroids []geom.Point) []int {
	labels := make([]int, len(points))
	for i, p := range points {
		labels[i] = nearest(p, centroids)
	}
	return labels
}

func nearest(p geom.Point, centroids []geom.Point) int {
	best := 0
	minDist := math.Inf(1)
	for j, c := range centroids {
		if d := geom.Distance(p, c); d < minDist {
			minDist = d
			best = j
		}
	}
	return best
}
