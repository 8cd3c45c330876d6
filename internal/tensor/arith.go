package tensor

import "fmt"

// Map applies f to every element and returns a new tensor of the same shape.
//
// Example:
//
//	neg := tensor.Map(x, func(v float64) float64 { return -v })
func Map[T, U DType](t *Tensor[T], f func(T) U) *Tensor[U] {
	src := t.Data()
	dst := make([]U, len(src))
	for i, v := range src {
		dst[i] = f(v)
	}
	return newTensor(dst, t.shape.Clone())
}

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1})
//	b := tensor.Ones[float32](Shape{3, 5})
//	c, _ := tensor.Add(a, b) // Shape: (3, 5)
func Add[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return binaryOp(a, b, "add", func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func Sub[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return binaryOp(a, b, "sub", func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func Mul[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return binaryOp(a, b, "mul", func(x, y T) T { return x * y })
}

// Div performs element-wise division with broadcasting.
func Div[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return binaryOp(a, b, "div", func(x, y T) T { return x / y })
}

// AddScalar adds a scalar to every element.
func AddScalar[T Float](t *Tensor[T], scalar T) *Tensor[T] {
	return Map(t, func(v T) T { return v + scalar })
}

// binaryOp evaluates f over the broadcast of a and b.
func binaryOp[T Float](a, b *Tensor[T], name string, f func(x, y T) T) (*Tensor[T], error) {
	outShape, needsBroadcast, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	out := make([]T, outShape.NumElements())
	aData, bData := a.Data(), b.Data()

	if !needsBroadcast {
		for i := range out {
			out[i] = f(aData[i], bData[i])
		}
		return newTensor(out, outShape), nil
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)

	for i := range out {
		aIdx, bIdx := 0, 0
		rem := i
		for d := range outShape {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			aIdx += coord * aStrides[d]
			bIdx += coord * bStrides[d]
		}
		out[i] = f(aData[aIdx], bData[bIdx])
	}
	return newTensor(out, outShape), nil
}

// SumAxis sums tensor elements along axis.
//
// Parameters:
//   - axis: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDims: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 3, 4})
//	y, _ := tensor.SumAxis(x, -1, true)   // shape: (2, 3, 1)
//	z, _ := tensor.SumAxis(x, -1, false)  // shape: (2, 3)
func SumAxis[T Float](t *Tensor[T], axis int, keepDims bool) (*Tensor[T], error) {
	dim, ok := t.shape.NormalizeAxis(axis)
	if !ok {
		return nil, fmt.Errorf("sum: axis %d out of range for %dD tensor", axis, len(t.shape))
	}

	lanes := t.Lanes(dim)
	out := make([]T, lanes.Count())
	data := t.Data()
	stride := lanes.Stride()
	for i := range out {
		var sum T
		idx := lanes.Base(i)
		for k := 0; k < lanes.Len(); k++ {
			sum += data[idx]
			idx += stride
		}
		out[i] = sum
	}

	outShape := t.shape.RemoveAxis(dim)
	if keepDims {
		outShape = t.shape.CollapseAxis(dim)
	}
	return newTensor(out, outShape), nil
}
