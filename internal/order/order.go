// Package order defines the total order used to compare floating-point values.
//
// The order is
//
//	-Inf < finite values < +Inf < NaN
//
// with every NaN equal to every other NaN and -0 equal to +0. Placing NaN
// above everything else means a NaN in a lane is what max and argmax pick,
// in line with Jax, TensorFlow and PyTorch, and it sorts to the end of the lane.
package order

import "github.com/born-ml/mlfunc/internal/tensor"

// Compare returns -1 if a < b, 0 if a == b and +1 if a > b under the total order.
func Compare[T tensor.Float](a, b T) int {
	aNaN, bNaN := a != a, b != b //nolint:gocritic // x != x is the NaN test for generic floats.
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b.
func Less[T tensor.Float](a, b T) bool {
	return Compare(a, b) < 0
}

// Float wraps a value so it compares under the total order.
type Float[T tensor.Float] struct {
	V T
}

// Of wraps v.
func Of[T tensor.Float](v T) Float[T] {
	return Float[T]{V: v}
}

// Compare compares f with other under the total order.
func (f Float[T]) Compare(other Float[T]) int {
	return Compare(f.V, other.V)
}

// Less reports whether f orders strictly before other.
func (f Float[T]) Less(other Float[T]) bool {
	return Compare(f.V, other.V) < 0
}

// IsNaN reports whether the wrapped value is NaN.
func (f Float[T]) IsNaN() bool {
	return f.V != f.V
}

// Max returns the greater of a and b, preferring b when they are equal.
// Folding a lane left to right with Max keeps the last maximal element.
func Max[T tensor.Float](a, b T) T {
	if Compare(b, a) >= 0 {
		return b
	}
	return a
}
