package tensor

import "fmt"

// RawTensor is the float64 dense carrier handed to backends.
// It is created for one backend call and discarded afterwards.
type RawTensor struct {
	shape   Shape
	strides []int
	data    []float64
}

// NewRaw allocates a zero-filled RawTensor.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &RawTensor{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    make([]float64, shape.NumElements()),
	}, nil
}

// NewRawFrom wraps data in a RawTensor without copying.
func NewRawFrom(shape Shape, data []float64) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &RawTensor{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    data,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the row-major strides.
func (r *RawTensor) Strides() []int {
	return r.strides
}

// Data returns the underlying buffer (zero-copy).
func (r *RawTensor) Data() []float64 {
	return r.data
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// At returns the element at the given indices.
func (r *RawTensor) At(indices ...int) float64 {
	offset := 0
	for i, idx := range indices {
		offset += idx * r.strides[i]
	}
	return r.data[offset]
}

// Clone creates a deep copy.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]float64, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		shape:   r.shape.Clone(),
		strides: append([]int(nil), r.strides...),
		data:    data,
	}
}

func toRaw[T Numeric](shape Shape, data []T) *RawTensor {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return &RawTensor{shape: shape.Clone(), strides: shape.ComputeStrides(), data: out}
}
