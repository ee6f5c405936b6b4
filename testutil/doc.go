// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic random coordinate
// tuples.
//
// # Random Coordinate Generation
//
//	rng := testutil.NewRNG(seed)
//	coords := rng.Uniform(3)          // uniform [0, 1)
//	coords = rng.UniformRange(3, -1, 1)
//	coords = rng.Unit(3)              // L2-normalized
package testutil
