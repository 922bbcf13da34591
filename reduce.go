package kcluster

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/kcluster/geom"
)

// The reductions below combine per-cluster task results. They must give the
// same answer whatever order the tasks complete in.

// converged reports whether no cluster moved.
func converged(moved *bitset.BitSet) bool {
	return moved.None()
}

// maxCandidate returns the candidate with the largest distance. Equal
// distances resolve to the lowest cluster index. ok is false if there are no
// candidates.
func maxCandidate(candidates []Candidate) (best Candidate, ok bool) {
	for _, c := range candidates {
		if !ok || c.Distance > best.Distance ||
			(c.Distance == best.Distance && c.Cluster < best.Cluster) {
			best = c
			ok = true
		}
	}
	return best, ok
}

// meanSeparation is the mean planar distance over all unordered centroid pairs.
func meanSeparation(centroids []geom.Point) float64 {
	return geom.MeanPairwiseDistance(centroids)
}
