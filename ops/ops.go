// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"log/slog"

	internalops "github.com/born-ml/mlfunc/internal/ops"
	"github.com/born-ml/mlfunc/internal/parallel"
	"github.com/born-ml/mlfunc/tensor"
)

// Precondition errors, wrapped in *AxisError.
var (
	ErrInvalidAxis = internalops.ErrInvalidAxis
	ErrEmptyLane   = internalops.ErrEmptyLane
)

// AxisError reports which operation, axis and shape failed validation.
type AxisError = internalops.AxisError

// Option configures a single axis operation.
type Option = internalops.Option

// ParallelConfig controls how lanes are spread across goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns the scheduling used when no option is given.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// WithParallel sets how lanes are scheduled. Results do not depend on it.
func WithParallel(cfg ParallelConfig) Option {
	return internalops.WithParallel(cfg)
}

// WithSequential processes every lane on the calling goroutine.
func WithSequential() Option {
	return internalops.WithSequential()
}

// WithLogger enables structured debug logging. nil disables it.
func WithLogger(logger *slog.Logger) Option {
	return internalops.WithLogger(logger)
}

// Exp computes the element-wise exponential.
//
// Example:
//
//	x := tensor.Zeros[float64](tensor.Shape{2, 2})
//	y := ops.Exp(x) // all ones
func Exp[T tensor.Float](x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return internalops.Exp(x)
}

// Sigmoid computes the element-wise logistic function.
func Sigmoid[T tensor.Float](x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return internalops.Sigmoid(x)
}

// Max returns the maximum of every lane along axis, with the axis removed.
func Max[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[T], error) {
	return internalops.Max(x, axis, opts...)
}

// MaxKeepDims returns the lane maxima with the axis kept at size 1.
func MaxKeepDims[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[T], error) {
	return internalops.MaxKeepDims(x, axis, opts...)
}

// Argmax returns the index of the maximum within every lane, with the axis removed.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{3.4, 2.4, 10.4, 4.5, -1.5, 2.6}, tensor.Shape{2, 3})
//	i, _ := ops.Argmax(x, 1) // [2 0]
func Argmax[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[tensor.Index], error) {
	return internalops.Argmax(x, axis, opts...)
}

// ArgmaxKeepDims returns the lane argmax with the axis kept at size 1.
func ArgmaxKeepDims[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[tensor.Index], error) {
	return internalops.ArgmaxKeepDims(x, axis, opts...)
}

// Sort returns x with every lane sorted ascending (stable).
func Sort[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[T], error) {
	return internalops.Sort(x, axis, opts...)
}

// Argsort returns the permutation that sorts every lane.
func Argsort[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[tensor.Index], error) {
	return internalops.Argsort(x, axis, opts...)
}

// Softmax normalizes every lane into a probability distribution.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{-0.5, 0.4, 0.7, -0.056}, tensor.Shape{2, 2})
//	p, _ := ops.Softmax(x, 1) // [[0.28905 0.71095] [0.68048 0.31952]]
func Softmax[T tensor.Float](x *tensor.Tensor[T], axis int, opts ...Option) (*tensor.Tensor[T], error) {
	return internalops.Softmax(x, axis, opts...)
}
