// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/wtens/internal/backend/cpu"
	"github.com/born-ml/wtens/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend runs contraction as a single gonum GEMM after permuting
// operand axes, and eigen-decomposition through gonum's EigenSym.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/wtens/backend/cpu"
//	    "github.com/born-ml/wtens/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.MustNew[float64, tensor.R2](backend, 2, 3)
//	}
func New() *Backend {
	return internalcpu.New()
}
