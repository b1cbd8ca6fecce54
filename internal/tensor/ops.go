package tensor

// Add returns the elementwise sum of a and b.
// Both operands must have the same rank and identical extents; the static
// ranks may differ so that the mismatch is reported rather than rejected by
// the compiler.
func Add[T Numeric, RA, RB Rank, B Backend](a *Tensor[T, RA, B], b *Tensor[T, RB, B]) (*Tensor[T, RA, B], error) {
	if a.Rank() != b.Rank() || !a.shape.Equal(b.shape) {
		return nil, errorf(ErrInvalidType, "Add", "wrong dimensions in addition: %v vs %v", a.shape, b.shape)
	}

	out := newTensor[T, RA](a.backend, a.shape.Clone())
	for i := range out.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out, nil
}

// Add returns t + other. See the package-level Add.
func (t *Tensor[T, R, B]) Add(other *Tensor[T, R, B]) (*Tensor[T, R, B], error) {
	return Add(t, other)
}

// Scale returns a new tensor with every element of a multiplied by s.
func Scale[T Numeric, R Rank, B Backend](a *Tensor[T, R, B], s T) *Tensor[T, R, B] {
	out := newTensor[T, R](a.backend, a.shape.Clone())
	for i, v := range a.data {
		out.data[i] = v * s
	}
	return out
}

// Scale returns t * s. See the package-level Scale.
func (t *Tensor[T, R, B]) Scale(s T) *Tensor[T, R, B] {
	return Scale(t, s)
}
