package kcluster

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kcluster/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// ClusterSnapshot is an immutable copy of one cluster taken between iterations.
type ClusterSnapshot struct {
	// Index is the cluster's stable position in the cluster list.
	Index int
	// Centroid is the representative point used during assignment.
	Centroid geom.Point
	// Color is a cosmetic tag for renderers. It never changes.
	Color colorful.Color
	// Members are the assigned points in input order.
	Members []geom.Point
	// IDs holds the input indices of Members.
	IDs *roaring.Bitmap
}

// Len returns the number of members.
func (s ClusterSnapshot) Len() int {
	return len(s.Members)
}
