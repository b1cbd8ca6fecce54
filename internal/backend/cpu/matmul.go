package cpu

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/wtens/internal/tensor"
)

// Contract sums products over the paired axes.
//
// Both operands are permuted so the contraction becomes one GEMM:
// a -> (free axes of a, paired axes) viewed as (M, K),
// b -> (paired axes, free axes of b) viewed as (K, N),
// and the (M, N) product is the result in row-major order.
func (cpu *CPUBackend) Contract(a, b *tensor.RawTensor, pairs []tensor.AxisPair) (*tensor.RawTensor, error) {
	freeA, freeB, err := tensor.FreeAxes(a.Shape(), b.Shape(), pairs)
	if err != nil {
		return nil, err
	}

	permA := append([]int(nil), freeA...)
	permB := make([]int, 0, len(b.Shape()))
	outShape := make(tensor.Shape, 0, len(freeA)+len(freeB))
	m, k, n := 1, 1, 1
	for _, ax := range freeA {
		outShape = append(outShape, a.Shape()[ax])
		m *= a.Shape()[ax]
	}
	for _, p := range pairs {
		permA = append(permA, p.A)
		permB = append(permB, p.B)
		k *= a.Shape()[p.A]
	}
	for _, ax := range freeB {
		permB = append(permB, ax)
		outShape = append(outShape, b.Shape()[ax])
		n *= b.Shape()[ax]
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		return nil, err
	}
	// gonum rejects zero-sized matrices; an empty sum is zero anyway.
	if m == 0 || k == 0 || n == 0 {
		return result, nil
	}

	lhs := mat.NewDense(m, k, transposeData(a, permA))
	rhs := mat.NewDense(k, n, transposeData(b, permB))
	mat.NewDense(m, n, result.Data()).Mul(lhs, rhs)
	return result, nil
}
