// Package tensor provides the fixed-rank dense tensor container and its operations.
package tensor

// Numeric is a constraint for supported tensor element types.
type Numeric interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int
	Int32
	Int64
)

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int:
		return "int"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Numeric]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int:
		return Int
	case int32:
		return Int32
	case int64:
		return Int64
	}
	// Named types (~float64 etc.) fall through the switch above.
	if T(1)/T(2) != 0 {
		return Float64
	}
	return Int64
}
