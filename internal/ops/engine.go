// Package ops implements elementwise and axis-reduction operations over tensors.
//
// All axis operations share one lane engine: the input is split into the 1-D
// lanes along the axis, each lane is handled independently, and the results
// are written to a freshly allocated output. Lanes may be processed in
// parallel; the output is the same either way.
//
// Max, Argmax, Sort and Argsort agree on ties: the maximum of a lane is its
// last maximal element, which is also where a stable ascending sort leaves it.
package ops

import (
	"github.com/born-ml/mlfunc/internal/parallel"
	"github.com/born-ml/mlfunc/internal/tensor"
)

// shapePolicy selects the output shape of a lane reduction.
type shapePolicy int

const (
	dropAxis shapePolicy = iota // remove the reduced axis (rank - 1)
	keepAxis                    // keep the reduced axis with size 1
)

func (p shapePolicy) outShape(shape tensor.Shape, axis int) tensor.Shape {
	if p == keepAxis {
		return shape.CollapseAxis(axis)
	}
	return shape.RemoveAxis(axis)
}

// checkAxis validates axis for x and returns it normalized to [0, rank).
// When nonEmpty is set the axis must also have at least one element.
func checkAxis[T tensor.DType](op string, x *tensor.Tensor[T], axis int, nonEmpty bool, o options) (int, error) {
	dim, ok := x.Shape().NormalizeAxis(axis)
	var err error
	switch {
	case !ok:
		err = &AxisError{Op: op, Axis: axis, Shape: x.Shape().Clone(), Err: ErrInvalidAxis}
	case nonEmpty && x.Shape()[dim] == 0:
		err = &AxisError{Op: op, Axis: axis, Shape: x.Shape().Clone(), Err: ErrEmptyLane}
	}
	if err != nil {
		o.logger.Warn("precondition failed", "op", op, "axis", axis, "shape", x.Shape(), "err", err)
		return 0, err
	}
	return dim, nil
}

// reduceLanes maps every lane of x along axis to a single value.
// axis must already be validated and lanes must be non-empty.
func reduceLanes[T tensor.Float, U tensor.DType](
	op string, x *tensor.Tensor[T], axis int, policy shapePolicy, o options, kernel func(lane []T) U,
) *tensor.Tensor[U] {
	lanes := x.Lanes(axis)
	logLanes(op, x, lanes, o)

	out := tensor.Zeros[U](policy.outShape(x.Shape(), axis))
	src, dst := x.Data(), out.Data()
	n := lanes.Len()

	parallel.For(lanes.Count(), func(i int) {
		lane := make([]T, n)
		tensor.Gather(lanes, src, i, lane)
		dst[i] = kernel(lane)
	}, o.parallel)

	return out
}

// reorderLanes replaces every lane of x along axis by kernel's output lane.
// The result has the shape of x.
func reorderLanes[T tensor.Float, U tensor.DType](
	op string, x *tensor.Tensor[T], axis int, o options, kernel func(lane []T, out []U),
) *tensor.Tensor[U] {
	lanes := x.Lanes(axis)
	logLanes(op, x, lanes, o)

	out := tensor.Zeros[U](x.Shape())
	src, dst := x.Data(), out.Data()
	n := lanes.Len()

	parallel.For(lanes.Count(), func(i int) {
		lane := make([]T, n)
		result := make([]U, n)
		tensor.Gather(lanes, src, i, lane)
		kernel(lane, result)
		tensor.Scatter(lanes, dst, i, result)
	}, o.parallel)

	return out
}

func logLanes[T tensor.DType](op string, x *tensor.Tensor[T], lanes tensor.Lanes, o options) {
	o.logger.Debug("lane op",
		"op", op,
		"axis", lanes.Axis(),
		"shape", x.Shape(),
		"lanes", lanes.Count(),
		"lane_len", lanes.Len(),
		"parallel", o.parallel.Parallel(lanes.Count()),
	)
}
