// Package testutil provides testing utilities for kcluster.
//
// This package is intended for use in tests, benchmarks and the CLI's
// generate command. It provides seeded generators for planar point sets and
// brute-force reference implementations to check the engine against.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000)              // uniform in [-1, 1)²
//	blob := rng.Blob(200, geom.Pt(5, 5), 0.3)   // gaussian around (5, 5)
//
// # Reference Implementations
//
//	best := testutil.BruteMedoid(points)
package testutil
