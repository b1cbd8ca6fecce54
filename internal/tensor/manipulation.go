package tensor

import "errors"

// Chip fixes axis at offset and returns the remaining elements, in row-major
// order, as a rank-1 tensor.
//
// Example:
//
//	// m = [[1 2 3] [4 5 6]]
//	row, _ := m.Chip(1, 0) // [4 5 6]
//	col, _ := m.Chip(2, 1) // [3 6]
func (t *Tensor[T, R, B]) Chip(offset, axis int) (*Tensor[T, R1, B], error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, errorf(ErrInvalidLookup, "Chip", "axis %d out of range for rank %d", axis, len(t.shape))
	}
	if offset < 0 || offset >= t.shape[axis] {
		return nil, errorf(ErrInvalidLookup, "Chip", "offset %d out of range for extent %d on axis %d", offset, t.shape[axis], axis)
	}

	outer := t.shape[:axis].NumElements()
	inner := t.shape[axis+1:].NumElements()
	out := newTensor[T, R1](t.backend, Shape{outer * inner})
	for o := 0; o < outer; o++ {
		src := (o*t.shape[axis] + offset) * inner
		copy(out.data[o*inner:(o+1)*inner], t.data[src:src+inner])
	}
	return out, nil
}

// Contract sums products over axis axisA of a paired with axis axisB of b,
// the N-dimensional generalization of matrix multiplication.
//
// The result holds the remaining axes of a in their original order, followed
// by the remaining axes of b. RO must name that rank, rank(a)+rank(b)-2:
//
//	// a: (2, 3), b: (3, 4)
//	c, err := tensor.Contract[tensor.R2](a, b, 1, 0) // c: (2, 4), c = a·b
func Contract[RO Rank, T Numeric, RA, RB Rank, B Backend](a *Tensor[T, RA, B], b *Tensor[T, RB, B], axisA, axisB int) (*Tensor[T, RO, B], error) {
	return contract[RO]("Contract", a, b, []AxisPair{{A: axisA, B: axisB}})
}

// ContractPairs is like Contract but sums over several axis pairs at once.
// RO must name rank(a)+rank(b)-2*len(pairs). With no pairs it is the outer
// product.
func ContractPairs[RO Rank, T Numeric, RA, RB Rank, B Backend](a *Tensor[T, RA, B], b *Tensor[T, RB, B], pairs ...AxisPair) (*Tensor[T, RO, B], error) {
	return contract[RO]("ContractPairs", a, b, pairs)
}

func contract[RO Rank, T Numeric, RA, RB Rank, B Backend](op string, a *Tensor[T, RA, B], b *Tensor[T, RB, B], pairs []AxisPair) (*Tensor[T, RO, B], error) {
	usedA := make([]bool, a.Rank())
	usedB := make([]bool, b.Rank())
	for _, p := range pairs {
		if p.A < 0 || p.A >= a.Rank() || p.B < 0 || p.B >= b.Rank() {
			return nil, errorf(ErrInvalidLookup, op, "index out of range: pair (%d, %d) for ranks %d and %d", p.A, p.B, a.Rank(), b.Rank())
		}
		if usedA[p.A] || usedB[p.B] {
			return nil, errorf(ErrInvalidLookup, op, "axis paired twice: (%d, %d)", p.A, p.B)
		}
		usedA[p.A], usedB[p.B] = true, true
	}

	want := a.Rank() + b.Rank() - 2*len(pairs)
	if got := rankOf[RO](); got != want {
		return nil, errorf(ErrInvalidType, op, "result rank %d requested, contraction yields rank %d", got, want)
	}

	raw, err := a.backend.Contract(a.raw(), b.raw(), pairs)
	if err != nil {
		return nil, backendError(op, err)
	}
	return fromRaw[T, RO](a.backend, raw), nil
}

// backendError classifies a backend failure. Backends only detect operand
// incompatibilities, so untyped errors become ErrInvalidType.
func backendError(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return errorf(ErrInvalidType, op, "%s", err.Error())
}
