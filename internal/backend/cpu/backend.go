// Package cpu implements the CPU backend on top of gonum's dense linear algebra.
package cpu

import "github.com/born-ml/wtens/internal/tensor"

// Verify that CPUBackend implements Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements tensor contraction and symmetric eigen-decomposition
// on CPU. It holds no state and may be shared between goroutines.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}
