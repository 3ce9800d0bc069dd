// Package quantity: sentinel error set.
// DimensionError is the one runtime failure mode of the dynamic path.
// It always carries both operands' dimension vectors so callers can
// report or recover; tests and callers match it with
// errors.Is(err, ErrDimensionMismatch).

package quantity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quanta/dimension"
)

// ErrDimensionMismatch is the sentinel matched by every *DimensionError.
var ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

// DimensionError reports an operation that required dimensional equality
// (or dimensionlessness) which did not hold. Other is the empty vector
// for the "must be dimensionless" case.
type DimensionError struct {
	Op    string
	This  dimension.Vec
	Other dimension.Vec
}

// Error renders both vectors, e.g.
// "quantity: dimension mismatch in add: [m] vs [s]".
func (e *DimensionError) Error() string {
	return fmt.Sprintf("quantity: dimension mismatch in %s: %s vs %s",
		e.Op, e.This, e.Other)
}

// Is makes errors.Is(err, ErrDimensionMismatch) hold for every
// DimensionError regardless of its payload.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// mismatch builds the error for op over the two vectors.
func mismatch(op string, this, other dimension.Vec) error {
	return &DimensionError{Op: op, This: this, Other: other}
}
