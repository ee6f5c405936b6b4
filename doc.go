// Package vecmath provides immutable mathematical vectors over real numbers.
//
// A Vector is an ordered tuple of float64 coordinates fixed at construction.
// Arithmetic operations return new vectors and never mutate their operands;
// derived values (dimension, magnitude, normalized form) are computed lazily
// on first access and cached per instance.
//
// # Quick Start
//
//	v := vecmath.New([]float64{3, 4})
//	w := vecmath.New([]float64{1, 0})
//
//	sum, _ := v.Add(w)        // Vector([4 4])
//	d, _ := v.Dot(w)          // 3
//	v.Magnitude()             // 5
//	unit, _ := v.Normalize()  // Vector([0.6 0.8])
//
// # Predicates
//
// Predicates use a fixed epsilon (Tolerance, 1e-10) to absorb floating-point
// rounding:
//
//	v.IsZero()
//	v.IsOrthogonal(w)
//	v.IsParallel(w)
//
// # Errors
//
// Operations on vectors of different dimensions return *ErrDimensionMismatch.
// Normalize and Angle return ErrZeroVector for the zero vector; check IsZero
// first where that matters. Out-of-range coordinate access returns
// *ErrIndexOutOfRange.
package vecmath
