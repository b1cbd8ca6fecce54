package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reconstruct returns V·diag(values)·Vᵀ.
func reconstruct(values *Tensor[float64, R1, *MockBackend], vectors *Tensor[float64, R2, *MockBackend]) []float64 {
	n := values.NumElements()
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				out[i*n+j] += vectors.At(i, k) * values.At(k) * vectors.At(j, k)
			}
		}
	}
	return out
}

func TestEigenDiagonal(t *testing.T) {
	m := MustNew[float64, R2](NewMockBackend(), 2, 2)
	require.NoError(t, m.SetValues2([][]float64{{2, 0}, {0, 3}}))

	values, err := m.Eigenvalues()
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, values.Shape())
	assert.InDelta(t, 2.0, values.At(0), 1e-12)
	assert.InDelta(t, 3.0, values.At(1), 1e-12)

	vectors, err := m.Eigenvectors()
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, vectors.Shape())
	assert.InDeltaSlice(t, m.Data(), reconstruct(values, vectors), 1e-12)
}

func TestEigenDescendingDiagonal(t *testing.T) {
	m := MustNew[int, R2](NewMockBackend(), 2, 2)
	require.NoError(t, m.SetValues2([][]int{{5, 0}, {0, 1}}))

	values, vectors, err := m.EigenDecompose()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 5}, values.Data(), 1e-12)
	// Column 0 belongs to eigenvalue 1, i.e. the second basis vector.
	assert.InDelta(t, 0.0, vectors.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, abs(vectors.At(1, 0)), 1e-12)
}

func TestEigenSymmetric3x3(t *testing.T) {
	m := MustNew[float64, R2](NewMockBackend(), 3, 3)
	require.NoError(t, m.SetValues2([][]float64{
		{4, 1, 2},
		{1, 3, 0},
		{2, 0, 5},
	}))

	values, vectors, err := m.EigenDecompose()
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 3}, vectors.Shape())

	for i := 1; i < 3; i++ {
		assert.LessOrEqual(t, values.At(i-1), values.At(i), "eigenvalues must ascend")
	}
	assert.InDelta(t, 12.0, values.At(0)+values.At(1)+values.At(2), 1e-9, "trace")
	assert.InDeltaSlice(t, m.Data(), reconstruct(values, vectors), 1e-9)

	// Columns are orthonormal.
	for p := 0; p < 3; p++ {
		for q := 0; q < 3; q++ {
			dot := 0.0
			for k := 0; k < 3; k++ {
				dot += vectors.At(k, p) * vectors.At(k, q)
			}
			want := 0.0
			if p == q {
				want = 1
			}
			assert.InDelta(t, want, dot, 1e-9)
		}
	}
}

func TestEigenNonSquare(t *testing.T) {
	backend := NewMockBackend()
	m := MustNew[float64, R2](backend, 2, 3)

	_, err := m.Eigenvalues()
	assert.ErrorIs(t, err, ErrInvalidType)
	_, err = m.Eigenvectors()
	assert.ErrorIs(t, err, ErrInvalidType)
	_, _, err = m.EigenDecompose()
	assert.ErrorIs(t, err, ErrInvalidType)

	cube := MustNew[float64, R3](backend, 2, 2, 2)
	_, err = cube.Eigenvalues()
	assert.ErrorIs(t, err, ErrInvalidType)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
