package tensor

// AxisPair names one axis of the first operand and one axis of the second
// operand that a contraction sums over.
type AxisPair struct {
	A int
	B int
}

// Backend defines the numerical routines a tensor delegates to.
// Tensors validate their own preconditions; a backend only sees well-ranked
// input and reports what it alone can detect (extent mismatch, solver failure).
//
// Implementations:
//   - CPU: gonum-backed (internal/backend/cpu)
//   - Mock: naive loops, used as a reference in tests
type Backend interface {
	// Name returns the backend name.
	Name() string

	// Contract sums products over every pair in pairs. The result holds the
	// uncontracted axes of a in order, followed by those of b in order.
	Contract(a, b *RawTensor, pairs []AxisPair) (*RawTensor, error)

	// EigenSym decomposes a symmetric n×n matrix. values has shape (n) in
	// ascending order; column i of vectors (shape (n, n)) belongs to values[i].
	EigenSym(m *RawTensor) (values, vectors *RawTensor, err error)
}
