package tensor

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Ranges used by SetRandom.
const (
	randomFloatMin = -1.0
	randomFloatMax = 1.0
	randomIntMin   = -128.0
	randomIntMax   = 128.0
)

// SetToValue overwrites every element with value.
func (t *Tensor[T, R, B]) SetToValue(value T) {
	for i := range t.data {
		t.data[i] = value
	}
}

// SetRandom fills the tensor with uniform pseudo-random values from a
// time-seeded source. Floats fall in [-1, 1), integers in [-128, 128).
func (t *Tensor[T, R, B]) SetRandom() {
	t.SetRandomFrom(rand.NewSource(uint64(time.Now().UnixNano())))
}

// SetRandomFrom is like SetRandom but draws from src, so a seeded source
// reproduces the same values.
func (t *Tensor[T, R, B]) SetRandomFrom(src rand.Source) {
	isFloat := inferDataType[T]().IsFloat()
	dist := distuv.Uniform{Min: randomIntMin, Max: randomIntMax, Src: src}
	if isFloat {
		dist.Min, dist.Max = randomFloatMin, randomFloatMax
	}
	for i := range t.data {
		v := dist.Rand()
		if !isFloat {
			v = math.Floor(v)
		}
		t.data[i] = T(v)
	}
}

// SetValues1 copies a rank-1 literal into the tensor.
// The literal's length must equal the tensor's whole shape; nothing is written
// on mismatch.
func (t *Tensor[T, R, B]) SetValues1(values []T) error {
	if err := t.checkLiteral(Shape{len(values)}); err != nil {
		return err
	}
	copy(t.data, values)
	return nil
}

// SetValues2 copies a rank-2 literal, row by row, into the tensor.
func (t *Tensor[T, R, B]) SetValues2(values [][]T) error {
	implied := Shape{len(values), 0}
	if len(values) > 0 {
		implied[1] = len(values[0])
	}
	if err := t.checkLiteral(implied); err != nil {
		return err
	}
	for _, row := range values {
		if len(row) != implied[1] {
			return errorf(ErrInvalidSet, "SetValues", "ragged literal: row of length %d, want %d", len(row), implied[1])
		}
	}

	pos := 0
	for _, row := range values {
		pos += copy(t.data[pos:], row)
	}
	return nil
}

// SetValues3 copies a rank-3 literal, in nesting order, into the tensor.
func (t *Tensor[T, R, B]) SetValues3(values [][][]T) error {
	implied := Shape{len(values), 0, 0}
	if len(values) > 0 {
		implied[1] = len(values[0])
		if len(values[0]) > 0 {
			implied[2] = len(values[0][0])
		}
	}
	if err := t.checkLiteral(implied); err != nil {
		return err
	}
	for _, plane := range values {
		if len(plane) != implied[1] {
			return errorf(ErrInvalidSet, "SetValues", "ragged literal: plane of length %d, want %d", len(plane), implied[1])
		}
		for _, row := range plane {
			if len(row) != implied[2] {
				return errorf(ErrInvalidSet, "SetValues", "ragged literal: row of length %d, want %d", len(row), implied[2])
			}
		}
	}

	pos := 0
	for _, plane := range values {
		for _, row := range plane {
			pos += copy(t.data[pos:], row)
		}
	}
	return nil
}

func (t *Tensor[T, R, B]) checkLiteral(implied Shape) error {
	if !implied.Equal(t.shape) {
		return errorf(ErrInvalidSet, "SetValues", "wrong initializer list format: literal shape %v, tensor shape %v", implied, t.shape)
	}
	return nil
}
