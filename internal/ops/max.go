package ops

import (
	"github.com/born-ml/mlfunc/internal/order"
	"github.com/born-ml/mlfunc/internal/tensor"
)

// Max returns the maximum of every lane along axis, with the axis removed.
//
// Values are compared under the total order of package order, so NaN is the
// maximum of any lane that contains it. Fails with ErrInvalidAxis or
// ErrEmptyLane.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{2.2, 4.4, 1.5, 2.4, 0, 0}, tensor.Shape{2, 3})
//	m, _ := ops.Max(x, 1) // [4.4 2.4]
func Max[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[T], error) {
	return maxAlong("max", x, axis, dropAxis, newOptions(opts))
}

// MaxKeepDims is Max with the reduced axis kept at size 1, so the result
// broadcasts against x.
func MaxKeepDims[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[T], error) {
	return maxAlong("max", x, axis, keepAxis, newOptions(opts))
}

// Argmax returns the index within each lane of the element Max selects.
// Among equal maxima the last one wins.
func Argmax[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[tensor.Index], error) {
	return argmaxAlong("argmax", x, axis, dropAxis, newOptions(opts))
}

// ArgmaxKeepDims is Argmax with the reduced axis kept at size 1.
func ArgmaxKeepDims[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[tensor.Index], error) {
	return argmaxAlong("argmax", x, axis, keepAxis, newOptions(opts))
}

func maxAlong[T tensor.Float](op string, x *tensor.Tensor[T], axis int, policy shapePolicy, o options) (*tensor.Tensor[T], error) {
	dim, err := checkAxis(op, x, axis, true, o)
	if err != nil {
		return nil, err
	}
	return reduceLanes(op, x, dim, policy, o, func(lane []T) T {
		return lane[argmaxLane(lane)]
	}), nil
}

func argmaxAlong[T tensor.Float](op string, x *tensor.Tensor[T], axis int, policy shapePolicy, o options) (*tensor.Tensor[tensor.Index], error) {
	dim, err := checkAxis(op, x, axis, true, o)
	if err != nil {
		return nil, err
	}
	return reduceLanes(op, x, dim, policy, o, func(lane []T) tensor.Index {
		return tensor.Index(argmaxLane(lane))
	}), nil
}

// argmaxLane returns the position of the last maximal element of a non-empty lane.
func argmaxLane[T tensor.Float](lane []T) int {
	best := 0
	bestVal := order.Of(lane[0])
	for i := 1; i < len(lane); i++ {
		if v := order.Of(lane[i]); v.Compare(bestVal) >= 0 {
			best, bestVal = i, v
		}
	}
	return best
}
