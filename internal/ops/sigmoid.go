package ops

import "github.com/born-ml/mlfunc/internal/tensor"

// Sigmoid computes the element-wise logistic function 1 / (1 + exp(-x)).
//
// Very negative inputs overflow exp(-x) to +Inf and give 0; very positive
// inputs underflow it to 0 and give 1.
func Sigmoid[T tensor.Float](x *tensor.Tensor[T]) *tensor.Tensor[T] {
	neg := tensor.Map(x, func(v T) T { return -v })
	denom := tensor.AddScalar(Exp(neg), 1)
	return tensor.Map(denom, func(v T) T { return 1 / v })
}
