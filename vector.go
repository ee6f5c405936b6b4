package vecmath

import (
	"fmt"
	"math"
	"slices"

	"github.com/viterin/vek"

	"github.com/hupe1980/vecmath/internal/memo"
)

// Tolerance is the epsilon below which a magnitude or dot product is treated
// as zero for the IsZero, IsOrthogonal and IsParallel predicates.
const Tolerance = 1e-10

// Cache keys for derived values. The cache is populated lazily and
// monotonically: a key, once set, is never overwritten.
const (
	cacheDimension  memo.Key = "dimension"
	cacheMagnitude  memo.Key = "magnitude"
	cacheNormalized memo.Key = "normalized"
)

// Vector is an immutable ordered tuple of real coordinates.
//
// All operations either are pure queries or return newly constructed
// vectors; the coordinates of a Vector never change after construction.
// Expensive derived values (dimension, magnitude, normalized form) are
// computed on first access and cached per instance; the cache is the only
// internal mutable state and is invisible to callers.
type Vector struct {
	coords []float64
	cache  *memo.Store
}

// New creates a Vector from the given coordinates.
// The input slice is copied; later mutation of it does not affect the Vector.
func New(coords []float64) *Vector {
	return &Vector{
		coords: slices.Clone(coords),
		cache:  memo.New(),
	}
}

// newOwned wraps a freshly allocated coordinate slice without copying.
// The caller must not retain a reference to coords.
func newOwned(coords []float64) *Vector {
	return &Vector{
		coords: coords,
		cache:  memo.New(),
	}
}

// Coords returns a copy of the coordinate tuple.
func (v *Vector) Coords() []float64 {
	return slices.Clone(v.coords)
}

// Coord returns the i-th coordinate, 0-based.
// It returns ErrIndexOutOfRange when i is outside [0, Dimension).
func (v *Vector) Coord(i int) (float64, error) {
	if i < 0 || i >= len(v.coords) {
		return 0, &ErrIndexOutOfRange{Index: i, Dimension: len(v.coords)}
	}

	return v.coords[i], nil
}

// Dimension returns the number of coordinates.
func (v *Vector) Dimension() int {
	n, _ := memo.Memoize(v.cache, cacheDimension, func() (int, error) {
		return len(v.coords), nil
	})

	return n
}

// Add returns the element-wise sum of v and other as a new Vector.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := v.checkDimension(other); err != nil {
		return nil, err
	}

	if len(v.coords) == 0 {
		return New(nil), nil
	}

	return newOwned(vek.Add(v.coords, other.coords)), nil
}

// Sub returns the element-wise difference of v and other as a new Vector.
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if err := v.checkDimension(other); err != nil {
		return nil, err
	}

	if len(v.coords) == 0 {
		return New(nil), nil
	}

	return newOwned(vek.Sub(v.coords, other.coords)), nil
}

// Scale returns v multiplied element-wise by the scalar c as a new Vector.
// It always succeeds; scaling by 0 yields the zero vector of the same
// dimension, and scaling by 1 yields an independent copy.
func (v *Vector) Scale(c float64) *Vector {
	if len(v.coords) == 0 {
		return New(nil)
	}

	return newOwned(vek.MulNumber(v.coords, c))
}

// Dot returns the inner product of v and other.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := v.checkDimension(other); err != nil {
		return 0, err
	}

	if len(v.coords) == 0 {
		return 0, nil
	}

	return vek.Dot(v.coords, other.coords), nil
}

// Magnitude returns the Euclidean norm of v.
// The norm is computed once and cached.
func (v *Vector) Magnitude() float64 {
	m, _ := memo.Memoize(v.cache, cacheMagnitude, func() (float64, error) {
		if len(v.coords) == 0 {
			return 0, nil
		}

		return vek.Norm(v.coords), nil
	})

	return m
}

// Normalize returns the unit-length vector in the direction of v.
// The result is computed once and cached; repeated calls return the same
// instance. It returns ErrZeroVector when the magnitude of v is zero.
func (v *Vector) Normalize() (*Vector, error) {
	return memo.Memoize(v.cache, cacheNormalized, func() (*Vector, error) {
		m := v.Magnitude()
		if m == 0 {
			return nil, fmt.Errorf("normalize: %w", ErrZeroVector)
		}

		return v.Scale(1 / m), nil
	})
}

// IsZero reports whether the magnitude of v is below Tolerance.
func (v *Vector) IsZero() bool {
	return v.Magnitude() < Tolerance
}

// IsOrthogonal reports whether v and other are perpendicular, i.e. their
// dot product is zero within Tolerance.
func (v *Vector) IsOrthogonal(other *Vector) (bool, error) {
	d, err := v.Dot(other)
	if err != nil {
		return false, err
	}

	return math.Abs(d) < Tolerance, nil
}

// IsParallel reports whether v and other point in the same or opposite
// direction. The zero vector is considered parallel to every vector.
func (v *Vector) IsParallel(other *Vector) (bool, error) {
	if v.IsZero() || other.IsZero() {
		return true, nil
	}

	// Both non-zero, so Normalize cannot fail.
	u1, _ := v.Normalize()
	u2, _ := other.Normalize()

	diff, err := u1.Sub(u2)
	if err != nil {
		return false, err
	}
	if diff.IsZero() {
		return true, nil
	}

	sum, err := u1.Add(u2)
	if err != nil {
		return false, err
	}

	return sum.IsZero(), nil
}

// Angle returns the angle between v and other in radians.
// It returns ErrZeroVector when either vector has zero magnitude.
func (v *Vector) Angle(other *Vector) (float64, error) {
	d, err := v.Dot(other)
	if err != nil {
		return 0, err
	}

	mv, mo := v.Magnitude(), other.Magnitude()
	if mv == 0 || mo == 0 {
		return 0, fmt.Errorf("angle: %w", ErrZeroVector)
	}

	// Rounding can push the cosine just outside [-1, 1], which would make
	// Acos return NaN.
	cos := min(1, max(-1, d/(mv*mo)))

	return math.Acos(cos), nil
}

// Equal reports whether v and other have identical coordinates.
func (v *Vector) Equal(other *Vector) bool {
	return slices.Equal(v.coords, other.coords)
}

// String returns a readable rendering such as "Vector([1 2 3])".
func (v *Vector) String() string {
	return fmt.Sprintf("Vector(%v)", v.coords)
}

func (v *Vector) checkDimension(other *Vector) error {
	if len(v.coords) != len(other.coords) {
		return &ErrDimensionMismatch{Expected: len(v.coords), Actual: len(other.coords)}
	}

	return nil
}
