// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/mlfunc/internal/tensor"
)

// Type aliases for public API

// Float is the element constraint for value tensors (float32, float64).
type Float = tensor.Float

// DType is a constraint for tensor element types: floats and Index.
type DType = tensor.DType

// Index is the element type of argmax and argsort results.
type Index = tensor.Index

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Uint    DataType = tensor.Uint
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Lanes describes the 1-D lanes of a shape along one axis.
type Lanes = tensor.Lanes

// Tensor is a dense row-major N-dimensional array.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y := tensor.AddScalar(x, 1)
type Tensor[T DType] = tensor.Tensor[T]

// Errors returned by shape validation and arithmetic.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrBroadcast     = tensor.ErrBroadcast
)

// Creation functions

// New allocates a zero-filled tensor, failing on negative dimensions.
func New[T DType](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T DType](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Randn creates a tensor of standard normal samples N(0, 1) drawn from rng.
func Randn[T Float](shape Shape, rng *rand.Rand) *Tensor[T] {
	return tensor.Randn[T](shape, rng)
}

// Rand creates a tensor of uniform samples U(0, 1) drawn from rng.
func Rand[T Float](shape Shape, rng *rand.Rand) *Tensor[T] {
	return tensor.Rand[T](shape, rng)
}

// Arange creates the 1D tensor [0, 1, ..., n-1].
func Arange[T DType](n int) *Tensor[T] {
	return tensor.Arange[T](n)
}

// Elementwise and broadcasting arithmetic

// Map applies f to every element.
func Map[T, U DType](t *Tensor[T], f func(T) U) *Tensor[U] {
	return tensor.Map(t, f)
}

// Add performs element-wise addition with broadcasting.
func Add[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Add(a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func Sub[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Sub(a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func Mul[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Mul(a, b)
}

// Div performs element-wise division with broadcasting.
func Div[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Div(a, b)
}

// AddScalar adds a scalar to every element.
func AddScalar[T Float](t *Tensor[T], scalar T) *Tensor[T] {
	return tensor.AddScalar(t, scalar)
}

// SumAxis sums along axis, keeping it at size 1 when keepDims is set.
//
// Example:
//
//	x := tensor.Ones[float32](tensor.Shape{2, 3})
//	s, _ := tensor.SumAxis(x, -1, false) // [3 3]
func SumAxis[T Float](t *Tensor[T], axis int, keepDims bool) (*Tensor[T], error) {
	return tensor.SumAxis(t, axis, keepDims)
}

// BroadcastShapes returns the NumPy broadcast of two shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
