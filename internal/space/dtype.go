// Package space provides the core vector-space types for the ODL-Go library.
package space

// DType is a constraint for supported element scalar types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64
}

// DataType represents runtime type information for elements.
type DataType int

// Supported scalar types for space elements.
// Float64 is the zero value: it is the default precision throughout.
const (
	Float64 DataType = iota
	Float32
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDataType returns the DataType for a concrete scalar value.
func inferDataType[T DType](v T) DataType {
	switch any(v).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
