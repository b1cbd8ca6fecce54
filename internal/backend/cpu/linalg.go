package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/wtens/internal/tensor"
)

// EigenSym decomposes a symmetric n×n matrix with gonum's EigenSym.
// Only the upper triangle of m is read.
func (cpu *CPUBackend) EigenSym(m *tensor.RawTensor) (values, vectors *tensor.RawTensor, err error) {
	shape := m.Shape()
	if len(shape) != 2 || shape[0] != shape[1] {
		return nil, nil, fmt.Errorf("eigensym: expected square matrix, got %v", shape)
	}
	n := shape[0]

	if values, err = tensor.NewRaw(tensor.Shape{n}); err != nil {
		return nil, nil, err
	}
	if vectors, err = tensor.NewRaw(tensor.Shape{n, n}); err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return values, vectors, nil
	}

	sym := mat.NewSymDense(n, m.Clone().Data())
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, fmt.Errorf("eigensym: factorization of %d×%d matrix did not converge", n, n)
	}
	es.Values(values.Data())
	es.VectorsTo(mat.NewDense(n, n, vectors.Data()))
	return values, vectors, nil
}
