package tensor

// Lanes describes the 1-D lanes of a shape along one axis.
//
// A lane holds every index fixed except the one along the axis. Lanes are
// numbered by walking the remaining axes in row-major order, so lane i lines
// up with flat index i of the shape with the axis removed.
type Lanes struct {
	shape   Shape
	strides []int
	axis    int
	count   int
}

// LanesOf returns the lanes of shape along axis.
// axis must already be normalized to [0, rank).
func LanesOf(shape Shape, axis int) Lanes {
	count := 1
	for i, dim := range shape {
		if i != axis {
			count *= dim
		}
	}
	return Lanes{
		shape:   shape,
		strides: shape.ComputeStrides(),
		axis:    axis,
		count:   count,
	}
}

// Count returns the number of lanes.
func (l Lanes) Count() int {
	return l.count
}

// Len returns the length of every lane.
func (l Lanes) Len() int {
	return l.shape[l.axis]
}

// Stride returns the flat distance between consecutive lane elements.
func (l Lanes) Stride() int {
	return l.strides[l.axis]
}

// Axis returns the lane axis.
func (l Lanes) Axis() int {
	return l.axis
}

// Base returns the flat offset of the first element of lane i.
func (l Lanes) Base(i int) int {
	base := 0
	remaining := i
	for d := len(l.shape) - 1; d >= 0; d-- {
		if d == l.axis {
			continue
		}
		coord := remaining % l.shape[d]
		remaining /= l.shape[d]
		base += coord * l.strides[d]
	}
	return base
}

// Gather copies lane i of data into dst, which must have length Len.
func Gather[T DType](l Lanes, data []T, i int, dst []T) {
	idx := l.Base(i)
	stride := l.Stride()
	for k := range dst {
		dst[k] = data[idx]
		idx += stride
	}
}

// Scatter writes src into lane i of data.
func Scatter[T DType](l Lanes, data []T, i int, src []T) {
	idx := l.Base(i)
	stride := l.Stride()
	for _, v := range src {
		data[idx] = v
		idx += stride
	}
}
