// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Tensor contraction over any number of axis pairs, reduced to one GEMM
//   - Symmetric eigen-decomposition (ascending eigenvalues, column eigenvectors)
//   - float64 arithmetic via gonum.org/v1/gonum/mat
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/wtens/backend/cpu"
//	    "github.com/born-ml/wtens/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a := tensor.MustNew[float64, tensor.R2](backend, 2, 3)
//	    b := tensor.MustNew[float64, tensor.R2](backend, 3, 4)
//	    c, err := tensor.Contract[tensor.R2](a, b, 1, 0)
//	}
//
// The backend is stateless and safe for concurrent use.
package cpu
