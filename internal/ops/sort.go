package ops

import (
	"slices"

	"github.com/born-ml/mlfunc/internal/order"
	"github.com/born-ml/mlfunc/internal/tensor"
)

// Sort returns x with every lane along axis sorted ascending.
//
// The sort is stable under the total order of package order: equal values
// keep their relative order and NaNs go last. A zero-length axis yields an
// empty result. Fails with ErrInvalidAxis.
func Sort[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[T], error) {
	o := newOptions(opts)
	dim, err := checkAxis("sort", x, axis, false, o)
	if err != nil {
		return nil, err
	}
	return reorderLanes("sort", x, dim, o, sortLane[T]), nil
}

// Argsort returns, for every lane along axis, the permutation of lane
// indices that sorts it. Gathering a lane by its permutation reproduces
// the corresponding lane of Sort exactly.
func Argsort[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[tensor.Index], error) {
	o := newOptions(opts)
	dim, err := checkAxis("argsort", x, axis, false, o)
	if err != nil {
		return nil, err
	}
	return reorderLanes("argsort", x, dim, o, argsortLane[T]), nil
}

func argsortLane[T tensor.Float](lane []T, perm []tensor.Index) {
	for i := range perm {
		perm[i] = tensor.Index(i)
	}
	slices.SortStableFunc(perm, func(i, j tensor.Index) int {
		return order.Compare(lane[i], lane[j])
	})
}

// sortLane applies the argsort permutation so Sort and Argsort cannot disagree.
func sortLane[T tensor.Float](lane, out []T) {
	perm := make([]tensor.Index, len(lane))
	argsortLane(lane, perm)
	for i, p := range perm {
		out[i] = lane[p]
	}
}
