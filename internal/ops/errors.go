package ops

import (
	"errors"
	"fmt"

	"github.com/born-ml/mlfunc/internal/tensor"
)

// Precondition errors. Operations return them wrapped in an *AxisError.
var (
	ErrInvalidAxis = errors.New("invalid axis")
	ErrEmptyLane   = errors.New("empty lane")
)

// AxisError reports a precondition failure for an axis operation.
type AxisError struct {
	Op    string       // Operation name (e.g. "max", "softmax")
	Axis  int          // Axis as passed by the caller
	Shape tensor.Shape // Shape of the input array
	Err   error        // ErrInvalidAxis or ErrEmptyLane
}

// Error implements the error interface.
func (e *AxisError) Error() string {
	return fmt.Sprintf("%s: axis %d of shape %v: %v", e.Op, e.Axis, e.Shape, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *AxisError) Unwrap() error {
	return e.Err
}
