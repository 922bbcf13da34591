// Package kcluster partitions a fixed set of planar points into clusters.
//
// An Engine alternates a sequential assignment phase, where every point joins
// the cluster with the nearest centroid, with a parallel update phase
// dispatched to a fixed worker pool. Two policies drive the update:
//
//   - MedoidRelaxation(k): a fixed number of clusters whose centroids move to
//     the member minimising the sum of squared distances, until no centroid
//     moves.
//   - GrowthByOutlier(): clusters with fixed centroids, grown one at a time
//     from the farthest outlier while it lies farther from its centroid than
//     a fraction (WithSeparationFactor) of the mean centroid separation.
//
// # Quick Start
//
//	eng, err := kcluster.New(points, kcluster.MedoidRelaxation(5),
//	    kcluster.WithWorkers(4),
//	    kcluster.WithSeed(42),
//	)
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	res, err := eng.Run(ctx)
//	for _, c := range res.Clusters {
//	    fmt.Println(c.Index, c.Centroid, c.Color.Hex(), c.Len())
//	}
//
// # Live Snapshots
//
// Engine.Snapshot may be called from another goroutine while Run is in
// progress. It returns copies of each cluster as of the last completed
// iteration and never observes a half-finished assignment.
//
// # Errors
//
//   - ErrInvalidConfiguration: rejected by New, no work scheduled.
//   - ErrNonConvergence: iteration cap reached; the partial Result is returned.
//   - ErrTaskFailed: a pool task failed or panicked; the run is aborted.
//   - ErrDegenerateCandidateSet: growth had no candidates; reported as
//     Result.StopReason.
//   - ErrClusterLimit: growth hit WithMaxClusters; reported as
//     Result.StopReason.
package kcluster
