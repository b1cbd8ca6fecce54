// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-rank dense tensors.
//
// # Overview
//
// A Tensor[T, R, B] owns a row-major buffer of T. Its rank is part of its Go
// type (R is one of R0 … R4); its extents are runtime values. Operations that
// return a tensor always allocate a new one.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/wtens/tensor"
//	    "github.com/born-ml/wtens/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    m := tensor.MustNew[float64, tensor.R2](backend, 2, 2)
//	    if err := m.SetValues2([][]float64{{2, 1}, {1, 2}}); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    values, vectors, err := m.EigenDecompose()
//	}
//
// # Supported Data Types
//
// The Numeric constraint admits float32, float64, int, int32 and int64.
// Eigen-decomposition always yields float64 tensors.
//
// # Errors
//
// Every failure wraps one of ErrInvalidSet, ErrInvalidType or
// ErrInvalidLookup and names the operation that failed. Checks run before
// anything is written, so a failed call leaves its operands untouched.
//
// Element access (At, Set) is not checked: the number of indices must equal
// the rank and each index must be in range.
package tensor
