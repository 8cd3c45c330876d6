// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense N-dimensional array consumed by mlfunc operations.
//
// # Overview
//
// A Tensor[T] is a row-major array of float32 or float64 values (or uint
// indices, for the outputs of argmax and argsort). This package provides:
//   - Generic type-safe tensors (Tensor[T])
//   - Shape bookkeeping and lane extraction along an axis
//   - NumPy-style broadcasting arithmetic
//   - Axis sums
//
// # Basic Usage
//
//	import "github.com/born-ml/mlfunc/tensor"
//
//	func main() {
//	    x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    rowSums, _ := tensor.SumAxis(x, 1, true) // shape (2, 1)
//	    normalized, _ := tensor.Div(x, rowSums)   // shape (2, 3)
//	}
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1})   // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4})    // (3, 4)
//	c, _ := tensor.Add(a, b)                         // (3, 4)
//
// # Ownership
//
// Every function returns a newly allocated tensor and leaves its inputs
// untouched. Data exposes the backing slice of a tensor for direct reads.
package tensor
