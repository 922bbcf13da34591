// Package geom provides the planar geometry used by the clustering engine.
//
// Points carry three components for compatibility with renderers that expect
// (x, y, z) vertices, but every function in this package reads only X and Y.
//
// # Usage
//
//	d := geom.Distance(a, b)
//	sq := geom.SquaredDistance(a, b)
//	i, j := geom.FarthestPair(points)
package geom
