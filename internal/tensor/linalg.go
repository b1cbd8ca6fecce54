package tensor

// Eigenvalues returns the eigenvalues of a symmetric n×n tensor in ascending
// order. Symmetry is assumed, not checked.
func (t *Tensor[T, R, B]) Eigenvalues() (*Tensor[float64, R1, B], error) {
	values, _, err := t.eigenSym("Eigenvalues")
	if err != nil {
		return nil, err
	}
	return fromRaw[float64, R1](t.backend, values), nil
}

// Eigenvectors returns an n×n tensor whose column i is the eigenvector for
// the i-th value of Eigenvalues.
func (t *Tensor[T, R, B]) Eigenvectors() (*Tensor[float64, R2, B], error) {
	_, vectors, err := t.eigenSym("Eigenvectors")
	if err != nil {
		return nil, err
	}
	return fromRaw[float64, R2](t.backend, vectors), nil
}

// EigenDecompose returns eigenvalues and eigenvectors from one factorization.
func (t *Tensor[T, R, B]) EigenDecompose() (values *Tensor[float64, R1, B], vectors *Tensor[float64, R2, B], err error) {
	rawValues, rawVectors, err := t.eigenSym("EigenDecompose")
	if err != nil {
		return nil, nil, err
	}
	return fromRaw[float64, R1](t.backend, rawValues), fromRaw[float64, R2](t.backend, rawVectors), nil
}

func (t *Tensor[T, R, B]) eigenSym(op string) (values, vectors *RawTensor, err error) {
	if len(t.shape) != 2 || t.shape[0] != t.shape[1] {
		return nil, nil, errorf(ErrInvalidType, op, "eigen-decomposition requires an n×n tensor, got shape %v", t.shape)
	}
	values, vectors, err = t.backend.EigenSym(t.raw())
	if err != nil {
		return nil, nil, backendError(op, err)
	}
	return values, vectors, nil
}
