package ops

import (
	"fmt"

	"github.com/born-ml/mlfunc/internal/tensor"
)

// Softmax normalizes every lane along axis into a probability distribution:
//
//	softmax(x)_i = exp(x_i - max(x)) / sum_j exp(x_j - max(x))
//
// Subtracting the lane maximum first makes the largest exponent exactly 1,
// so no finite input overflows. Every lane of the result sums to 1.
//
// Edge cases: a lane of -Inf with a single finite value becomes one-hot; a
// lane that is entirely -Inf, or holds +Inf or NaN, becomes NaN.
// Fails with ErrInvalidAxis or ErrEmptyLane.
func Softmax[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[T], error) {
	o := newOptions(opts)

	peak, err := maxAlong("softmax", x, axis, keepAxis, o)
	if err != nil {
		return nil, err
	}

	shifted, err := tensor.Sub(x, peak)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	exps := Exp(shifted)

	sums, err := tensor.SumAxis(exps, axis, true)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}

	out, err := tensor.Div(exps, sums)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	return out, nil
}
