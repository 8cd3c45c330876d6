package tensor

import (
	"errors"
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func assertEqualData[T comparable](t *testing.T, expected, actual []T, msg string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("%s: expected %d elements, got %d", msg, len(expected), len(actual))
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("%s[%d]: expected %v, got %v", msg, i, expected[i], actual[i])
		}
	}
}

// DType Tests

type celsius float32

func TestInferDataType(t *testing.T) {
	tests := []struct {
		got  DataType
		want DataType
	}{
		{inferDataType[float32](), Float32},
		{inferDataType[float64](), Float64},
		{inferDataType[uint](), Uint},
		{inferDataType[celsius](), Float32},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("inferDataType = %v, want %v", tt.got, tt.want)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype    DataType
		expected string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Uint, "uint"},
		{DataType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.expected {
			t.Errorf("DataType(%d).String() = %q, want %q", tt.dtype, got, tt.expected)
		}
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{1, 1, 1}, 1},  // Ones
		{Shape{3, 0}, 0},     // Empty
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	validShapes := []Shape{
		{},
		{0},
		{3, 0},
		{3, 4},
		{2, 3, 4},
	}

	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{-1},
		{3, -4},
	}

	for _, s := range invalidShapes {
		err := s.Validate()
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("Shape%v.Validate() = %v, want ErrInvalidShape", s, err)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3}, Shape{3, 1}, false},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{}, []int{}},
		{Shape{4}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		assertEqualData(t, tt.expected, got, "strides of "+tt.shape.String())
	}
}

func TestShapeAxisHelpers(t *testing.T) {
	s := Shape{2, 3, 4}

	assertEqualShape(t, Shape{2, 4}, s.RemoveAxis(1), "RemoveAxis(1)")
	assertEqualShape(t, Shape{3, 4}, s.RemoveAxis(0), "RemoveAxis(0)")
	assertEqualShape(t, Shape{2, 3}, s.RemoveAxis(2), "RemoveAxis(2)")
	assertEqualShape(t, Shape{}, Shape{5}.RemoveAxis(0), "RemoveAxis on 1D")

	assertEqualShape(t, Shape{1, 2, 3, 4}, s.InsertAxis(0), "InsertAxis(0)")
	assertEqualShape(t, Shape{2, 1, 3, 4}, s.InsertAxis(1), "InsertAxis(1)")
	assertEqualShape(t, Shape{2, 3, 4, 1}, s.InsertAxis(3), "InsertAxis(3)")

	assertEqualShape(t, Shape{2, 1, 4}, s.CollapseAxis(1), "CollapseAxis(1)")
	assertEqualShape(t, Shape{2, 3, 4}, s, "original shape untouched")

	// RemoveAxis followed by InsertAxis is CollapseAxis.
	for axis := range s {
		assertEqualShape(t, s.CollapseAxis(axis), s.RemoveAxis(axis).InsertAxis(axis), "round trip")
	}
}

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		shape Shape
		axis  int
		want  int
		ok    bool
	}{
		{Shape{2, 3}, 0, 0, true},
		{Shape{2, 3}, 1, 1, true},
		{Shape{2, 3}, -1, 1, true},
		{Shape{2, 3}, -2, 0, true},
		{Shape{2, 3}, 2, 0, false},
		{Shape{2, 3}, -3, 0, false},
		{Shape{}, 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.shape.NormalizeAxis(tt.axis)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Shape%v.NormalizeAxis(%d) = (%d, %v), want (%d, %v)", tt.shape, tt.axis, got, ok, tt.want, tt.ok)
		}
	}
}

func TestShapeString(t *testing.T) {
	if got := (Shape{2, 3}).String(); got != "(2, 3)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Shape{}).String(); got != "()" {
		t.Errorf("String() = %q", got)
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		expected  Shape
		shouldErr bool
	}{
		// Compatible shapes
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{3, 4}, Shape{3, 4}, Shape{3, 4}, false},
		{Shape{1}, Shape{3, 4}, Shape{3, 4}, false},
		{Shape{3, 4}, Shape{1}, Shape{3, 4}, false},
		{Shape{0, 3}, Shape{0, 1}, Shape{0, 3}, false},

		// Incompatible shapes
		{Shape{3, 4}, Shape{3, 5}, nil, true},
		{Shape{2, 3}, Shape{3, 3}, nil, true},
	}

	for _, tt := range tests {
		got, _, err := BroadcastShapes(tt.a, tt.b)
		if tt.shouldErr {
			if !errors.Is(err, ErrBroadcast) {
				t.Errorf("BroadcastShapes(%v, %v) = %v, want ErrBroadcast", tt.a, tt.b, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) failed: %v", tt.a, tt.b, err)
		}
		if !got.Equal(tt.expected) {
			t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

// Tensor Tests

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(data, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "FromSlice shape")
	assertEqualData(t, data, x.Data(), "FromSlice data")

	// The tensor owns a copy.
	data[0] = 100
	if x.At(0, 0) != 1 {
		t.Errorf("FromSlice must copy its input, got %v", x.At(0, 0))
	}

	if _, err := FromSlice(data, Shape{4, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("FromSlice with wrong size = %v, want ErrShapeMismatch", err)
	}
	if _, err := FromSlice(data, Shape{-2, -3}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("FromSlice with negative shape = %v, want ErrInvalidShape", err)
	}
}

func TestTensorAt(t *testing.T) {
	x, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
	if got := x.At(0, 1); got != 2 {
		t.Errorf("At(0, 1) = %v, want 2", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("At out of bounds should panic")
		}
	}()
	_ = x.At(2, 0)
}

func TestTensorSet(t *testing.T) {
	x := Zeros[float32](Shape{2, 2})
	x.Set(7, 1, 0)
	assertEqualData(t, []float32{0, 0, 7, 0}, x.Data(), "Set")
}

func TestTensorItem(t *testing.T) {
	x := Full[float64](Shape{}, 3.5)
	if got := x.Item(); got != 3.5 {
		t.Errorf("Item() = %v, want 3.5", got)
	}
}

func TestTensorClone(t *testing.T) {
	x, _ := FromSlice([]float32{1, 2, 3}, Shape{3})
	c := x.Clone()
	c.Set(9, 0)

	if x.At(0) != 1 {
		t.Errorf("Clone must not share data with the original")
	}
	assertEqualShape(t, x.Shape(), c.Shape(), "Clone shape")
}

func TestTensorReshape(t *testing.T) {
	x := Arange[float64](6)

	r, err := x.Reshape(Shape{3, 2})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	assertEqualShape(t, Shape{3, 2}, r.Shape(), "Reshape")
	if r.At(2, 1) != 5 {
		t.Errorf("Reshape At(2, 1) = %v, want 5", r.At(2, 1))
	}

	if _, err := x.Reshape(Shape{4, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Reshape to wrong size = %v, want ErrShapeMismatch", err)
	}
}

func TestTensorInsertAxis(t *testing.T) {
	x, _ := FromSlice([]float64{4.4, 2.4}, Shape{2})

	assertEqualShape(t, Shape{1, 2}, x.InsertAxis(0).Shape(), "InsertAxis(0)")
	col := x.InsertAxis(1)
	assertEqualShape(t, Shape{2, 1}, col.Shape(), "InsertAxis(1)")
	if col.At(1, 0) != 2.4 {
		t.Errorf("InsertAxis(1) At(1, 0) = %v, want 2.4", col.At(1, 0))
	}
}

func TestTensorFormat(t *testing.T) {
	x, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if got := x.Format(); got != "[[1 2 3] [4 5 6]]" {
		t.Errorf("Format() = %q", got)
	}
	if got := x.String(); got != "Tensor[float64](2, 3)" {
		t.Errorf("String() = %q", got)
	}

	empty := Zeros[float32](Shape{2, 0})
	if got := empty.Format(); got != "[[] []]" {
		t.Errorf("Format() of empty = %q", got)
	}
}
