// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/wtens/internal/tensor"

// Backend defines the numerical routines a tensor delegates to.
//
// Implementations:
//   - backend/cpu: gonum-backed contraction (GEMM) and symmetric eigen solver
//
// Example:
//
//	import (
//	    "github.com/born-ml/wtens/tensor"
//	    "github.com/born-ml/wtens/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x, err := tensor.New[float64, tensor.R2](backend, 2, 3)
type Backend = tensor.Backend

// AxisPair names the axes of two operands that a contraction sums over.
type AxisPair = tensor.AxisPair

// RawTensor is the float64 dense carrier passed to backends.
type RawTensor = tensor.RawTensor

// NewRaw allocates a zero-filled raw tensor.
//
// This is a low-level function for backend implementations.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// FreeAxes validates axis pairs against two shapes and returns the
// uncontracted axes of each operand. Backend implementations use it to lay
// out contraction results.
func FreeAxes(shapeA, shapeB Shape, pairs []AxisPair) (freeA, freeB []int, err error) {
	return tensor.FreeAxes(shapeA, shapeB, pairs)
}
