package tensor

import (
	"fmt"
	"math"
	"sort"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// Jacobi iteration limits for MockBackend.EigenSym.
const (
	mockMaxSweeps = 100
	mockEigenTol  = 1e-24
)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Contract sums products over the paired axes with plain nested loops.
func (m *MockBackend) Contract(a, b *RawTensor, pairs []AxisPair) (*RawTensor, error) {
	freeA, freeB, err := FreeAxes(a.Shape(), b.Shape(), pairs)
	if err != nil {
		return nil, err
	}

	outShape := make(Shape, 0, len(freeA)+len(freeB))
	for _, ax := range freeA {
		outShape = append(outShape, a.Shape()[ax])
	}
	for _, ax := range freeB {
		outShape = append(outShape, b.Shape()[ax])
	}
	sumShape := make(Shape, len(pairs))
	for i, p := range pairs {
		sumShape[i] = a.Shape()[p.A]
	}

	result, err := NewRaw(outShape)
	if err != nil {
		return nil, err
	}

	idxA := make([]int, len(a.Shape()))
	idxB := make([]int, len(b.Shape()))
	out := result.Data()
	forEachIndex(outShape, func(pos int, outIdx []int) {
		for i, ax := range freeA {
			idxA[ax] = outIdx[i]
		}
		for i, ax := range freeB {
			idxB[ax] = outIdx[len(freeA)+i]
		}
		sum := 0.0
		forEachIndex(sumShape, func(_ int, k []int) {
			for i, p := range pairs {
				idxA[p.A] = k[i]
				idxB[p.B] = k[i]
			}
			sum += a.At(idxA...) * b.At(idxB...)
		})
		out[pos] = sum
	})
	return result, nil
}

// EigenSym decomposes a symmetric matrix with cyclic Jacobi rotations.
func (m *MockBackend) EigenSym(mat *RawTensor) (values, vectors *RawTensor, err error) {
	shape := mat.Shape()
	if len(shape) != 2 || shape[0] != shape[1] {
		return nil, nil, fmt.Errorf("eigensym: expected square matrix, got %v", shape)
	}
	n := shape[0]

	a := mat.Clone().Data()
	v := make([]float64, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}

	for sweep := 0; sweep < mockMaxSweeps; sweep++ {
		off := 0.0
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				off += a[p*n+q] * a[p*n+q]
			}
		}
		if off < mockEigenTol {
			break
		}
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				if a[p*n+q] != 0 {
					jacobiRotate(a, v, n, p, q)
				}
			}
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return a[order[i]*n+order[i]] < a[order[j]*n+order[j]] })

	if values, err = NewRaw(Shape{n}); err != nil {
		return nil, nil, err
	}
	if vectors, err = NewRaw(Shape{n, n}); err != nil {
		return nil, nil, err
	}
	for col, src := range order {
		values.Data()[col] = a[src*n+src]
		for row := 0; row < n; row++ {
			vectors.Data()[row*n+col] = v[row*n+src]
		}
	}
	return values, vectors, nil
}

// jacobiRotate zeroes a[p][q] by A' = JᵀAJ and accumulates V' = VJ.
func jacobiRotate(a, v []float64, n, p, q int) {
	theta := (a[q*n+q] - a[p*n+p]) / (2 * a[p*n+q])
	t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	if theta < 0 {
		t = -t
	}
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	for k := 0; k < n; k++ {
		akp, akq := a[k*n+p], a[k*n+q]
		a[k*n+p] = c*akp - s*akq
		a[k*n+q] = s*akp + c*akq
	}
	for k := 0; k < n; k++ {
		apk, aqk := a[p*n+k], a[q*n+k]
		a[p*n+k] = c*apk - s*aqk
		a[q*n+k] = s*apk + c*aqk
	}
	for k := 0; k < n; k++ {
		vkp, vkq := v[k*n+p], v[k*n+q]
		v[k*n+p] = c*vkp - s*vkq
		v[k*n+q] = s*vkp + c*vkq
	}
}

// FreeAxes validates pairs against both shapes and returns the uncontracted
// axes of each operand in their original order.
func FreeAxes(shapeA, shapeB Shape, pairs []AxisPair) (freeA, freeB []int, err error) {
	usedA := make([]bool, len(shapeA))
	usedB := make([]bool, len(shapeB))
	for _, p := range pairs {
		if p.A < 0 || p.A >= len(shapeA) || p.B < 0 || p.B >= len(shapeB) {
			return nil, nil, fmt.Errorf("contract: pair (%d, %d) out of range for shapes %v and %v", p.A, p.B, shapeA, shapeB)
		}
		if shapeA[p.A] != shapeB[p.B] {
			return nil, nil, fmt.Errorf("contract: extent mismatch on pair (%d, %d): %d vs %d", p.A, p.B, shapeA[p.A], shapeB[p.B])
		}
		usedA[p.A], usedB[p.B] = true, true
	}
	for ax, used := range usedA {
		if !used {
			freeA = append(freeA, ax)
		}
	}
	for ax, used := range usedB {
		if !used {
			freeB = append(freeB, ax)
		}
	}
	return freeA, freeB, nil
}

// forEachIndex visits every multi-index of shape in row-major order.
// The idx slice is reused between calls.
func forEachIndex(shape Shape, fn func(pos int, idx []int)) {
	n := shape.NumElements()
	idx := make([]int, len(shape))
	for pos := 0; pos < n; pos++ {
		fn(pos, idx)
		for ax := len(shape) - 1; ax >= 0; ax-- {
			idx[ax]++
			if idx[ax] < shape[ax] {
				break
			}
			idx[ax] = 0
		}
	}
}
