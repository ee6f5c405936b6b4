package vecmath

import (
	"errors"
	"fmt"
)

// ErrZeroVector is returned when an operation is undefined for the zero
// vector, such as Normalize or Angle.
var ErrZeroVector = errors.New("cannot operate on the zero vector")

// ErrDimensionMismatch indicates that two vectors of different dimensions
// were combined in an operation requiring matching dimensions.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates a coordinate index outside [0, Dimension).
type ErrIndexOutOfRange struct {
	Index     int
	Dimension int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("coordinate index %d out of range for dimension %d", e.Index, e.Dimension)
}
