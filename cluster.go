package kcluster

import (
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kcluster/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// Candidate is a cluster's farthest member from its centroid.
type Candidate struct {
	Cluster  int
	Distance float64
	Point    geom.Point
}

// cluster owns a centroid, a color and the member buffer of the current iteration.
//
// Ownership within one iteration: the orchestrator writes members during
// assignment; afterwards exactly one pool task reads them and may replace the
// centroid. The published snapshot is the only state shared with outside
// readers and is guarded by mu.
type cluster struct {
	index    int
	centroid geom.Point
	color    colorful.Color

	members []geom.Point // truncated and refilled every iteration
	ids     *roaring.Bitmap

	mu        sync.Mutex
	published ClusterSnapshot // protected by mu
}

func newCluster(index int, centroid geom.Point, color colorful.Color) *cluster {
	c := &cluster{
		index:    index,
		centroid: centroid,
		color:    color,
		ids:      roaring.New(),
	}
	c.published = ClusterSnapshot{
		Index:    index,
		Centroid: centroid,
		Color:    color,
		IDs:      roaring.New(),
	}
	return c
}

// randomColor splits one random word into RGB bytes.
func randomColor(rng *rand.Rand) colorful.Color {
	rgb := rng.Uint32()
	return colorful.Color{
		R: float64(uint8(rgb)) / 255,
		G: float64(uint8(rgb>>8)) / 255,
		B: float64(uint8(rgb>>16)) / 255,
	}
}

// reset clears the member buffer, keeping its capacity.
func (c *cluster) reset() {
	c.members = c.members[:0]
	c.ids.Clear()
}

func (c *cluster) attach(id uint32, p geom.Point) {
	c.members = append(c.members, p)
	c.ids.Add(id)
}

// relax moves the centroid to the member medoid and reports whether it moved.
// An empty cluster keeps its centroid.
func (c *cluster) relax() (bool, error) {
	i, ok := Medoid(c.members)
	if !ok {
		return false, nil
	}
	next := c.members[i]
	moved := !next.Equal(c.centroid)
	c.centroid = next
	return moved, nil
}

type candidateResult struct {
	candidate Candidate
	ok        bool
}

// candidate finds the member farthest from the centroid.
func (c *cluster) candidate() (candidateResult, error) {
	i, d, ok := Farthest(c.centroid, c.members)
	if !ok {
		return candidateResult{}, nil
	}
	return candidateResult{
		candidate: Candidate{Cluster: c.index, Distance: d, Point: c.members[i]},
		ok:        true,
	}, nil
}

// publish copies the current iteration's state into the snapshot buffer.
// Must be called by the orchestrator between iterations.
func (c *cluster) publish() {
	members := slices.Clone(c.members)
	ids := c.ids.Clone()

	c.mu.Lock()
	c.published.Centroid = c.centroid
	c.published.Members = members
	c.published.IDs = ids
	c.mu.Unlock()
}

func (c *cluster) snapshot() ClusterSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.published
	s.Members = slices.Clone(s.Members)
	s.IDs = s.IDs.Clone()
	return s
}

// Medoid returns the index of the point minimising the sum of squared planar
// distances to all points. The first minimum in slice order wins.
// ok is false for an empty slice.
func Medoid(points []geom.Point) (index int, ok bool) {
	if len(points) == 0 {
		return 0, false
	}

	best := math.Inf(1)
	for i, p := range points {
		var sum float64
		for _, q := range points {
			sum += geom.SquaredDistance(p, q)
		}
		if sum < best {
			best = sum
			index = i
		}
	}
	return index, true
}

// Farthest returns the index and planar distance of the point farthest from
// center. The first maximum in slice order wins. ok is false for an empty slice.
func Farthest(center geom.Point, points []geom.Point) (index int, dist float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}

	dist = -1
	for i, p := range points {
		if d := geom.Distance(center, p); d > dist {
			dist = d
			index = i
		}
	}
	return index, dist, true
}
