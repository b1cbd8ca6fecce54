package cpu

import "github.com/born-ml/wtens/internal/tensor"

// transposeData returns the elements of src with its axes reordered so that
// output axis i is source axis axes[i].
func transposeData(src *tensor.RawTensor, axes []int) []float64 {
	data := src.Data()
	dst := make([]float64, len(data))
	if isIdentity(axes) {
		copy(dst, data)
		return dst
	}

	shape := src.Shape()
	strides := src.Strides()
	ndim := len(axes)
	dstShape := make(tensor.Shape, ndim)
	srcStrides := make([]int, ndim)
	for i, ax := range axes {
		dstShape[i] = shape[ax]
		srcStrides[i] = strides[ax]
	}

	// Walk the destination in row-major order, tracking the source offset.
	coords := make([]int, ndim)
	offset := 0
	for i := range dst {
		dst[i] = data[offset]
		for dim := ndim - 1; dim >= 0; dim-- {
			coords[dim]++
			offset += srcStrides[dim]
			if coords[dim] < dstShape[dim] {
				break
			}
			offset -= coords[dim] * srcStrides[dim]
			coords[dim] = 0
		}
	}
	return dst
}

func isIdentity(axes []int) bool {
	for i, ax := range axes {
		if i != ax {
			return false
		}
	}
	return true
}
