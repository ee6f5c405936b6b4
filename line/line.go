// Package line provides 2-D lines in normal form, ax + by = c, built on
// vecmath vectors.
//
// A Line is defined by its normal vector (a, b) and constant term c. The
// package derives a base point and direction vector from that form and
// answers point-membership and parallelism queries.
package line

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/vecmath"
)

// Dimension is the coordinate dimension of every Line.
const Dimension = 2

// ErrNoNonzeroElements is returned when an operation needs a non-zero
// component of the normal vector and none exists.
var ErrNoNonzeroElements = errors.New("no nonzero elements")

// Line is the set of points (x, y) satisfying Normal · (x, y) = Constant.
type Line struct {
	normal   *vecmath.Vector
	constant float64
}

// New creates a Line with the given normal vector and constant term.
// A nil normal defaults to the zero vector (a degenerate line).
func New(normal *vecmath.Vector, constant float64) (*Line, error) {
	if normal == nil {
		normal = vecmath.New(make([]float64, Dimension))
	}

	if normal.Dimension() != Dimension {
		return nil, &vecmath.ErrDimensionMismatch{Expected: Dimension, Actual: normal.Dimension()}
	}

	return &Line{normal: normal, constant: constant}, nil
}

// Normal returns the normal vector of the line.
func (l *Line) Normal() *vecmath.Vector {
	return l.normal
}

// Constant returns the constant term of the line.
func (l *Line) Constant() float64 {
	return l.constant
}

// BasePoint returns a point on the line: all coordinates zero except the
// first non-zero normal component k, where it is Constant / Normal_k.
// It returns ErrNoNonzeroElements for a degenerate line with a zero normal.
func (l *Line) BasePoint() (*vecmath.Vector, error) {
	k, err := firstNonzeroIndex(l.normal)
	if err != nil {
		return nil, err
	}

	coords := make([]float64, Dimension)
	nk, _ := l.normal.Coord(k)
	coords[k] = l.constant / nk

	return vecmath.New(coords), nil
}

// Direction returns a vector along the line, perpendicular to the normal:
// (b, -a) for normal (a, b).
func (l *Line) Direction() *vecmath.Vector {
	a, _ := l.normal.Coord(0)
	b, _ := l.normal.Coord(1)

	return vecmath.New([]float64{b, -a})
}

// IncludesPoint reports whether point lies on the line: the path from the
// base point to it must be parallel to the line's direction.
func (l *Line) IncludesPoint(point *vecmath.Vector) (bool, error) {
	base, err := l.BasePoint()
	if err != nil {
		return false, err
	}

	path, err := point.Sub(base)
	if err != nil {
		return false, err
	}

	return path.IsParallel(l.Direction())
}

// IsParallelTo reports whether the two lines have parallel normals.
func (l *Line) IsParallelTo(other *Line) (bool, error) {
	return l.normal.IsParallel(other.normal)
}

// String renders the line as "ax_1 + bx_2 = c" with coefficients rounded
// to three decimal places. A zero normal renders as "0 = c".
func (l *Line) String() string {
	var terms []string
	initial := true

	for i := 0; i < Dimension; i++ {
		c, _ := l.normal.Coord(i)
		c = round3(c)
		if c == 0 {
			continue
		}

		var sb strings.Builder
		if c < 0 {
			sb.WriteString("-")
		} else if !initial {
			sb.WriteString("+")
		}
		if !initial {
			sb.WriteString(" ")
		}
		if abs := math.Abs(c); abs != 1 {
			sb.WriteString(trimFloat(abs))
		}
		fmt.Fprintf(&sb, "x_%d", i+1)

		terms = append(terms, sb.String())
		initial = false
	}

	lhs := "0"
	if len(terms) > 0 {
		lhs = strings.Join(terms, " ")
	}

	return fmt.Sprintf("%s = %s", lhs, trimFloat(round3(l.constant)))
}

func firstNonzeroIndex(v *vecmath.Vector) (int, error) {
	for i := 0; i < v.Dimension(); i++ {
		c, _ := v.Coord(i)
		if math.Abs(c) >= vecmath.Tolerance {
			return i, nil
		}
	}

	return 0, ErrNoNonzeroElements
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}

	return fmt.Sprintf("%g", v)
}
