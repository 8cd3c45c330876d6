package ops

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/born-ml/mlfunc/internal/tensor"
)

// Exp computes the element-wise exponential e^x.
// The result has the shape of x. Overflow gives +Inf, exp(-Inf) is 0 and exp(NaN) is NaN.
func Exp[T tensor.Float](x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return tensor.Map(x, expFunc[T]())
}

// expFunc picks the scalar exponential for T once per call.
// float32 uses the single-precision kernel from math32.
func expFunc[T tensor.Float]() func(T) T {
	var dummy T
	if _, ok := any(dummy).(float32); ok {
		return func(v T) T {
			return T(math32.Exp(float32(v)))
		}
	}
	return func(v T) T {
		return T(math.Exp(float64(v)))
	}
}
