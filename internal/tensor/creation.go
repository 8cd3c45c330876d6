package tensor

import (
	"math"
	"math/rand/v2"
)

// Zeros creates a tensor filled with zeros.
// Panics if the shape has a negative dimension.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T DType](shape Shape) *Tensor[T] {
	t, err := New[T](shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3})
func Ones[T DType](shape Shape) *Tensor[T] {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with values from a normal distribution (mean=0, std=1)
// drawn from rng. Uses the Box-Muller transform.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	t := tensor.Randn[float32](Shape{100, 100}, rng)
func Randn[T Float](shape Shape, rng *rand.Rand) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()

	for i := 0; i < len(data); i += 2 {
		u1 := 1 - rng.Float64() // (0, 1] keeps the log finite
		u2 := rng.Float64()
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = T(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2.0*math.Pi*u2))
		}
	}
	return t
}

// Rand creates a tensor with values uniformly distributed in [0, 1) drawn from rng.
//
// Example:
//
//	t := tensor.Rand[float64](Shape{10, 10}, rng)
func Rand[T Float](shape Shape, rng *rand.Rand) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()
	for i := range data {
		data[i] = T(rng.Float64())
	}
	return t
}

// Arange creates a 1D tensor holding 0, 1, ..., n-1.
//
// Example:
//
//	t := tensor.Arange[float64](5) // [0, 1, 2, 3, 4]
func Arange[T DType](n int) *Tensor[T] {
	t := Zeros[T](Shape{n})
	data := t.Data()
	for i := range data {
		data[i] = T(i)
	}
	return t
}
