package ops

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlfunc/internal/tensor"
)

func mustTensor[T tensor.DType](t *testing.T, data []T, shape tensor.Shape) *tensor.Tensor[T] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return x
}

// argmaxMatrix is the 3x3 example used across reduction tests.
func argmaxMatrix(t *testing.T) *tensor.Tensor[float64] {
	return mustTensor(t, []float64{
		3.4, 2.4, 10.4,
		4.5, -1.5, 2.6,
		2.4, 1.8, 8.9,
	}, tensor.Shape{3, 3})
}

// sortMatrix is the 2x3 example used across sort tests.
func sortMatrix(t *testing.T) *tensor.Tensor[float64] {
	return mustTensor(t, []float64{25.6, 56.4, 35.6, -45.5, 35.5, 25.8}, tensor.Shape{2, 3})
}

// randomCases returns arrays of varied rank and shape, with ties from a
// small value range.
func randomCases(seed uint64) []*tensor.Tensor[float64] {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	shapes := []tensor.Shape{{7}, {4, 5}, {3, 1, 6}, {2, 3, 4, 2}, {1, 9}}

	cases := make([]*tensor.Tensor[float64], 0, 2*len(shapes))
	for _, shape := range shapes {
		cases = append(cases, tensor.Randn[float64](shape, rng))

		ties := tensor.Zeros[float64](shape)
		for i := range ties.Data() {
			ties.Data()[i] = float64(rng.IntN(3))
		}
		cases = append(cases, ties)
	}
	return cases
}
