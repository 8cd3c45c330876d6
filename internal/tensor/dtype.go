// Package tensor provides the dense N-dimensional array used by mlfunc operations.
package tensor

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the element constraint for value tensors.
type Float interface {
	constraints.Float
}

// DType is a constraint for supported tensor element types.
// Value tensors hold floats; index tensors (argmax, argsort) hold Index.
type DType interface {
	constraints.Float | ~uint
}

// Index is the element type of index tensors.
type Index = uint

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Uint
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Uint:
		return "uint"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
// Named types fall back on their underlying kind and size.
func inferDataType[T DType]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case uint:
		return Uint
	}
	if T(1)/T(2) == 0 {
		return Uint
	}
	if unsafe.Sizeof(dummy) == 4 {
		return Float32
	}
	return Float64
}
