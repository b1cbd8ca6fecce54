package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestChipMatrix(t *testing.T) {
	backend := NewMockBackend()
	m, err := FromSlice[float64, R2](backend, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	row, err := m.Chip(1, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, row.Shape())
	assert.Equal(t, []float64{4, 5, 6}, row.Data())

	col, err := m.Chip(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, col.Data())

	col.Set(100, 0)
	assert.Equal(t, 3.0, m.At(0, 2), "Chip must not alias its source")
}

func TestChipFlattensHigherRank(t *testing.T) {
	x := MustNew[int, R3](NewMockBackend(), 2, 3, 4)
	for i := range x.Data() {
		x.Data()[i] = i
	}

	chip, err := x.Chip(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, chip.Rank())

	var want []int
	for i := 0; i < 2; i++ {
		for k := 0; k < 4; k++ {
			want = append(want, x.At(i, 2, k))
		}
	}
	assert.Equal(t, want, chip.Data())
}

func TestChipOutOfRange(t *testing.T) {
	m := MustNew[float64, R2](NewMockBackend(), 2, 3)

	_, err := m.Chip(0, 2)
	assert.ErrorIs(t, err, ErrInvalidLookup)
	_, err = m.Chip(3, 1)
	assert.ErrorIs(t, err, ErrInvalidLookup)
	_, err = m.Chip(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidLookup)
}

func TestContractIdentity(t *testing.T) {
	backend := NewMockBackend()
	a := MustNew[float64, R2](backend, 2, 2)
	require.NoError(t, a.SetValues2([][]float64{{1, 2}, {3, 4}}))
	id := MustNew[float64, R2](backend, 2, 2)
	require.NoError(t, id.SetValues2([][]float64{{1, 0}, {0, 1}}))

	c, err := Contract[R2](a, id, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), c.Shape())
	assert.Equal(t, a.Data(), c.Data())
}

func TestContractMatMul(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice[int, R2](backend, []int{1, 2, 3, 4, 5, 6}, 2, 3)
	b, _ := FromSlice[int, R2](backend, []int{7, 8, 9, 10, 11, 12}, 3, 2)

	c, err := Contract[R2](a, b, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, c.Shape())
	assert.Equal(t, []int{58, 64, 139, 154}, c.Data())
}

func TestContractRankLaw(t *testing.T) {
	backend := NewMockBackend()
	a := MustNew[float64, R3](backend, 2, 3, 4)
	b := MustNew[float64, R2](backend, 4, 5)
	v := MustNew[float64, R1](backend, 3)

	c, err := Contract[R3](a, b, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Rank())
	assert.Equal(t, Shape{2, 3, 5}, c.Shape())

	d, err := Contract[R2](a, v, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4}, d.Shape())

	s, err := Contract[R0](v, v, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
}

func TestContractAxisOrder(t *testing.T) {
	backend := NewMockBackend()
	a := MustNew[float64, R3](backend, 2, 3, 4)
	b := MustNew[float64, R3](backend, 5, 3, 2)
	a.SetRandomFrom(rand.NewSource(11))
	b.SetRandomFrom(rand.NewSource(12))

	// Contract a's axis 1 with b's axis 1: result axes (a0, a2, b0, b2).
	c, err := Contract[R4](a, b, 1, 1)
	require.NoError(t, err)
	require.Equal(t, Shape{2, 4, 5, 2}, c.Shape())

	for i := 0; i < 2; i++ {
		for k := 0; k < 4; k++ {
			for l := 0; l < 5; l++ {
				for n := 0; n < 2; n++ {
					want := 0.0
					for j := 0; j < 3; j++ {
						want += a.At(i, j, k) * b.At(l, j, n)
					}
					assert.InDelta(t, want, c.At(i, k, l, n), 1e-12)
				}
			}
		}
	}
}

func TestContractDot(t *testing.T) {
	backend := NewMockBackend()
	u, _ := FromSlice[float64, R1](backend, []float64{1, 2, 3}, 3)
	v, _ := FromSlice[float64, R1](backend, []float64{4, 5, 6}, 3)

	s, err := Contract[R0](u, v, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 32.0, s.At())
}

func TestContractOutOfRange(t *testing.T) {
	backend := NewMockBackend()
	a := MustNew[float64, R2](backend, 2, 2)
	b := MustNew[float64, R2](backend, 2, 2)

	_, err := Contract[R2](a, b, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidLookup)

	_, err = Contract[R2](a, b, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidLookup)

	_, err = Contract[R2](a, b, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidLookup)
}

func TestContractWrongResultRank(t *testing.T) {
	backend := NewMockBackend()
	a := MustNew[float64, R2](backend, 2, 3)
	b := MustNew[float64, R2](backend, 3, 2)

	_, err := Contract[R3](a, b, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestContractExtentMismatch(t *testing.T) {
	backend := NewMockBackend()
	a := MustNew[float64, R2](backend, 2, 3)
	b := MustNew[float64, R2](backend, 2, 3)

	_, err := Contract[R2](a, b, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidType)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "Contract", e.Op)
}

func TestContractPairsFrobenius(t *testing.T) {
	backend := NewMockBackend()
	a, _ := FromSlice[float64, R2](backend, []float64{1, 2, 3, 4}, 2, 2)
	b, _ := FromSlice[float64, R2](backend, []float64{5, 6, 7, 8}, 2, 2)

	s, err := ContractPairs[R0](a, b, AxisPair{A: 0, B: 0}, AxisPair{A: 1, B: 1})
	require.NoError(t, err)
	assert.Equal(t, 70.0, s.At())
}

func TestContractPairsOuterProduct(t *testing.T) {
	backend := NewMockBackend()
	u, _ := FromSlice[int, R1](backend, []int{1, 2}, 2)
	v, _ := FromSlice[int, R1](backend, []int{3, 4, 5}, 3)

	o, err := ContractPairs[R2](u, v)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, o.Shape())
	assert.Equal(t, []int{3, 4, 5, 6, 8, 10}, o.Data())
}

func TestContractPairsDuplicateAxis(t *testing.T) {
	backend := NewMockBackend()
	a := MustNew[float64, R2](backend, 2, 2)
	b := MustNew[float64, R2](backend, 2, 2)

	_, err := ContractPairs[R0](a, b, AxisPair{A: 0, B: 0}, AxisPair{A: 0, B: 1})
	assert.ErrorIs(t, err, ErrInvalidLookup)
}
