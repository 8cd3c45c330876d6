// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides elementwise and axis-reduction operations over tensors.
//
// # Overview
//
// Elementwise transforms keep the input shape:
//   - Exp: e^x
//   - Sigmoid: 1 / (1 + e^-x)
//
// Axis operations act on the 1-D lanes along one axis:
//   - Max, MaxKeepDims: lane maximum, axis removed or kept at size 1
//   - Argmax, ArgmaxKeepDims: index of the lane maximum
//   - Sort, Argsort: stable ascending sort of each lane, or its permutation
//   - Softmax: numerically stable probability normalization of each lane
//
// # Ordering
//
// Comparisons use a total order in which NaN is greater than every other
// value (including +Inf) and all NaNs are equal. Ties resolve to the last
// occurrence in the lane, consistently across all operations:
//
//	m, _ := ops.Max(x, axis)
//	i, _ := ops.Argmax(x, axis)   // x[..., i, ...] == m for every lane
//	s, _ := ops.Sort(x, axis)     // last element of each lane == m
//	p, _ := ops.Argsort(x, axis)  // gathering x by p gives s exactly
//
// # Errors
//
// Axis operations validate their input before computing anything. An axis
// outside [-rank, rank) fails with ErrInvalidAxis; a reduction over a
// zero-length axis fails with ErrEmptyLane. Both arrive wrapped in an
// *AxisError naming the operation, axis and shape:
//
//	_, err := ops.Max(x, 5)
//	if errors.Is(err, ops.ErrInvalidAxis) { ... }
//
// # Options
//
// Lanes are processed in parallel on multi-core machines. WithSequential and
// WithParallel control scheduling; WithLogger enables slog debug output:
//
//	y, err := ops.Softmax(x, -1, ops.WithLogger(slog.Default()))
package ops
