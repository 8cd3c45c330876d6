package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense row-major N-dimensional array with elements of type T.
//
// Operations in mlfunc never modify a tensor they receive; they always
// allocate a new one for the result.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y := tensor.Map(x, func(v float64) float64 { return v * 2 })
type Tensor[T DType] struct {
	data    []T
	shape   Shape
	strides []int
}

// newTensor wraps data without copying. len(data) must match shape.
func newTensor[T DType](data []T, shape Shape) *Tensor[T] {
	return &Tensor[T]{
		data:    data,
		shape:   shape,
		strides: shape.ComputeStrides(),
	}
}

// New allocates a zero-filled tensor with the given shape.
func New[T DType](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newTensor(make([]T, shape.NumElements()), shape.Clone()), nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	owned := make([]T, len(data))
	copy(owned, data)
	return newTensor(owned, shape.Clone()), nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	return t.strides
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Data returns the flat row-major element slice.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Lanes returns the lanes of the tensor along a normalized axis.
func (t *Tensor[T]) Lanes(axis int) Lanes {
	return LanesOf(t.shape, axis)
}

// Item returns the scalar value of a 0-D tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T]) Item() T {
	if len(t.shape) != 0 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor[T]) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return newTensor(data, t.shape.Clone())
}

// Reshape returns a copy of the tensor with a new shape holding the same number of elements.
func (t *Tensor[T]) Reshape(shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(t.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrShapeMismatch, t.shape, shape)
	}
	return FromSlice(t.data, shape)
}

// InsertAxis returns a copy of the tensor with a size-1 dimension inserted at axis.
// axis must be in [0, rank].
func (t *Tensor[T]) InsertAxis(axis int) *Tensor[T] {
	if axis < 0 || axis > len(t.shape) {
		panic(fmt.Sprintf("insert axis %d out of range for %dD tensor", axis, len(t.shape)))
	}
	data := make([]T, len(t.data))
	copy(data, t.data)
	return newTensor(data, t.shape.InsertAxis(axis))
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}

// Format renders the tensor values as nested brackets, e.g. [[1 2] [3 4]].
func (t *Tensor[T]) Format() string {
	var sb strings.Builder
	t.format(&sb, 0, 0)
	return sb.String()
}

func (t *Tensor[T]) format(sb *strings.Builder, dim, offset int) {
	if dim == len(t.shape) {
		fmt.Fprint(sb, t.data[offset])
		return
	}
	sb.WriteByte('[')
	for i := 0; i < t.shape[dim]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		t.format(sb, dim+1, offset+i*t.strides[dim])
	}
	sb.WriteByte(']')
}
