package kcluster_test

import (
	"sync"
	"time"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/geom"
)

// linePoints needs four medoid rounds from seeds (0,0) and (1,0); the run
// settles on centroids (1,0) and (11,0).
func linePoints() []geom.Point {
	return []geom.Point{
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(3, 0),
		geom.Pt(10, 0), geom.Pt(11, 0), geom.Pt(12, 0),
	}
}

// blobsAndOutlier holds two unit squares 100 apart and one point above them.
func blobsAndOutlier() []geom.Point {
	return []geom.Point{
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1),
		geom.Pt(100, 0), geom.Pt(101, 0), geom.Pt(100, 1), geom.Pt(101, 1),
		geom.Pt(50, 60),
	}
}

// recordingCollector keeps the cluster count of every iteration and can run a
// hook after each one.
type recordingCollector struct {
	kcluster.NoopMetricsCollector

	mu          sync.Mutex
	clusters    []int
	onIteration func(n int)
}

func (c *recordingCollector) RecordIteration(_ string, clusters int, _ time.Duration, _ error) {
	c.mu.Lock()
	c.clusters = append(c.clusters, clusters)
	n := len(c.clusters)
	c.mu.Unlock()

	if c.onIteration != nil {
		c.onIteration(n)
	}
}

func (c *recordingCollector) counts() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int, len(c.clusters))
	copy(out, c.clusters)
	return out
}
