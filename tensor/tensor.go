// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for fixed-rank dense tensors.
//
// The package defines core types for type-safe tensor operations:
//   - Tensor[T, R, B]: dense tensor with element type T, static rank R, backend B
//   - Shape: runtime extents, one per axis
//   - R0 … R4: rank markers
//   - Backend: numerical collaborator for contraction and eigen-decomposition
//
// Example:
//
//	backend := cpu.New()
//	a := tensor.MustNew[float64, tensor.R2](backend, 2, 2)
//	_ = a.SetValues2([][]float64{{1, 2}, {3, 4}})
//	b := a.Scale(2)
//	c, err := tensor.Contract[tensor.R2](a, b, 1, 0) // matrix product
package tensor

import (
	"github.com/born-ml/wtens/internal/tensor"
)

// Numeric is a constraint for tensor element types.
// Supported types: float32, float64, int, int32, int64.
type Numeric = tensor.Numeric

// DataType represents the element type of a tensor at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int     DataType = tensor.Int
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents the extents of a tensor.
// Example: Shape{2, 3, 4} is a rank-3 tensor of 2×3×4 elements.
type Shape = tensor.Shape

// Rank is implemented by the rank marker types.
type Rank = tensor.Rank

// Rank markers.
type (
	R0 = tensor.R0
	R1 = tensor.R1
	R2 = tensor.R2
	R3 = tensor.R3
	R4 = tensor.R4
)

// Tensor is a dense tensor with element type T, static rank R and backend B.
type Tensor[T Numeric, R Rank, B Backend] = tensor.Tensor[T, R, B]

// Error kinds, matched with errors.Is.
var (
	ErrInvalidSet    = tensor.ErrInvalidSet
	ErrInvalidType   = tensor.ErrInvalidType
	ErrInvalidLookup = tensor.ErrInvalidLookup
)

// Error carries the failing operation alongside the error kind.
type Error = tensor.Error

// Creation functions

// New creates a zero-filled tensor with one extent per axis.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.New[float64, tensor.R2](backend, 2, 3)
func New[T Numeric, R Rank, B Backend](b B, extents ...int) (*Tensor[T, R, B], error) {
	return tensor.New[T, R](b, extents...)
}

// MustNew is like New but panics on error.
func MustNew[T Numeric, R Rank, B Backend](b B, extents ...int) *Tensor[T, R, B] {
	return tensor.MustNew[T, R](b, extents...)
}

// FromSlice creates a tensor from a row-major Go slice.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.FromSlice[float64, tensor.R2](backend, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T Numeric, R Rank, B Backend](b B, data []T, extents ...int) (*Tensor[T, R, B], error) {
	return tensor.FromSlice[T, R](b, data, extents...)
}

// Arithmetic

// Add returns the elementwise sum of two tensors of identical shape.
func Add[T Numeric, RA, RB Rank, B Backend](a *Tensor[T, RA, B], b *Tensor[T, RB, B]) (*Tensor[T, RA, B], error) {
	return tensor.Add(a, b)
}

// Scale returns a new tensor with every element multiplied by s.
func Scale[T Numeric, R Rank, B Backend](a *Tensor[T, R, B], s T) *Tensor[T, R, B] {
	return tensor.Scale(a, s)
}

// Contraction

// Contract sums products over axis axisA of a paired with axis axisB of b.
// RO must name the result rank, rank(a)+rank(b)-2.
//
// Example:
//
//	c, err := tensor.Contract[tensor.R2](a, b, 1, 0) // (2, 3)·(3, 4) -> (2, 4)
func Contract[RO Rank, T Numeric, RA, RB Rank, B Backend](a *Tensor[T, RA, B], b *Tensor[T, RB, B], axisA, axisB int) (*Tensor[T, RO, B], error) {
	return tensor.Contract[RO](a, b, axisA, axisB)
}

// ContractPairs contracts over several axis pairs at once.
// RO must name rank(a)+rank(b)-2*len(pairs).
func ContractPairs[RO Rank, T Numeric, RA, RB Rank, B Backend](a *Tensor[T, RA, B], b *Tensor[T, RB, B], pairs ...AxisPair) (*Tensor[T, RO, B], error) {
	return tensor.ContractPairs[RO](a, b, pairs...)
}
