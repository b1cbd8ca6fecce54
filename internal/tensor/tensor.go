package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense tensor with element type T, static rank R and backend B.
// The buffer is row-major and owned exclusively by the tensor; every operation
// that returns a tensor allocates a new one.
//
// Type Parameters:
//   - T: Element type (must satisfy Numeric)
//   - R: Rank marker (R0 … R4)
//   - B: Backend used for contraction and eigen-decomposition
//
// Example:
//
//	backend := cpu.New()
//	t, err := tensor.New[float64, tensor.R2](backend, 3, 4)
//	t.Set(1.5, 1, 2)
type Tensor[T Numeric, R Rank, B Backend] struct {
	shape   Shape
	strides []int
	data    []T
	backend B
}

// New creates a zero-filled tensor with one extent per axis.
func New[T Numeric, R Rank, B Backend](b B, extents ...int) (*Tensor[T, R, B], error) {
	rank := rankOf[R]()
	if len(extents) != rank {
		return nil, errorf(ErrInvalidType, "New", "rank %d tensor needs %d extents, got %d", rank, rank, len(extents))
	}
	shape := Shape(extents).Clone()
	if err := shape.Validate(); err != nil {
		return nil, errorf(ErrInvalidType, "New", "%v", err)
	}
	return newTensor[T, R](b, shape), nil
}

// MustNew is like New but panics on error.
func MustNew[T Numeric, R Rank, B Backend](b B, extents ...int) *Tensor[T, R, B] {
	t, err := New[T, R](b, extents...)
	if err != nil {
		panic(err)
	}
	return t
}

// FromSlice creates a tensor from a row-major Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Numeric, R Rank, B Backend](b B, data []T, extents ...int) (*Tensor[T, R, B], error) {
	t, err := New[T, R](b, extents...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, errorf(ErrInvalidSet, "FromSlice", "shape %v requires %d elements, but got %d", t.shape, len(t.data), len(data))
	}
	copy(t.data, data)
	return t, nil
}

// newTensor allocates without validation; shape must already match R.
func newTensor[T Numeric, R Rank, B Backend](b B, shape Shape) *Tensor[T, R, B] {
	return &Tensor[T, R, B]{
		shape:   shape,
		strides: shape.ComputeStrides(),
		data:    make([]T, shape.NumElements()),
		backend: b,
	}
}

// fromRaw converts a backend result into a tensor of element type T.
func fromRaw[T Numeric, R Rank, B Backend](b B, raw *RawTensor) *Tensor[T, R, B] {
	t := newTensor[T, R](b, raw.Shape().Clone())
	for i, v := range raw.Data() {
		t.data[i] = T(v)
	}
	return t
}

// raw returns a float64 copy of the tensor for a backend call.
func (t *Tensor[T, R, B]) raw() *RawTensor {
	return toRaw(t.shape, t.data)
}

// Rank returns the number of axes.
func (t *Tensor[T, R, B]) Rank() int {
	return len(t.shape)
}

// Shape returns a copy of the extents.
func (t *Tensor[T, R, B]) Shape() Shape {
	return t.shape.Clone()
}

// Dim returns the extent of one axis.
func (t *Tensor[T, R, B]) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(t.shape) {
		return 0, errorf(ErrInvalidLookup, "Dim", "axis %d out of range for rank %d", axis, len(t.shape))
	}
	return t.shape[axis], nil
}

// NumElements returns the total number of elements.
func (t *Tensor[T, R, B]) NumElements() int {
	return len(t.data)
}

// DType returns the tensor's data type.
func (t *Tensor[T, R, B]) DType() DataType {
	return inferDataType[T]()
}

// Backend returns the computation backend.
func (t *Tensor[T, R, B]) Backend() B {
	return t.backend
}

// Data returns the tensor's buffer in row-major order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T, R, B]) Data() []T {
	return t.data
}

// At returns the element at the given indices.
// The number of indices must equal the rank; indices are not range-checked.
func (t *Tensor[T, R, B]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// The number of indices must equal the rank; indices are not range-checked.
func (t *Tensor[T, R, B]) Set(value T, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor[T, R, B]) offset(indices []int) int {
	offset := 0
	for i, idx := range indices {
		offset += idx * t.strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T, R, B]) Clone() *Tensor[T, R, B] {
	c := newTensor[T, R](t.backend, t.shape.Clone())
	copy(c.data, t.data)
	return c
}

// Describe returns a one-line summary of rank and extents.
func (t *Tensor[T, R, B]) Describe() string {
	return fmt.Sprintf("tensor dims = %d %v", t.Rank(), t.shape)
}

// String renders the elements as nested brackets, one level per axis.
func (t *Tensor[T, R, B]) String() string {
	var sb strings.Builder
	if len(t.shape) == 0 {
		fmt.Fprint(&sb, t.data[0])
		return sb.String()
	}
	t.format(&sb, 0, 0)
	return sb.String()
}

func (t *Tensor[T, R, B]) format(sb *strings.Builder, axis, offset int) {
	sb.WriteByte('[')
	for i := 0; i < t.shape[axis]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		pos := offset + i*t.strides[axis]
		if axis == len(t.shape)-1 {
			fmt.Fprint(sb, t.data[pos])
		} else {
			t.format(sb, axis+1, pos)
		}
	}
	sb.WriteByte(']')
}
