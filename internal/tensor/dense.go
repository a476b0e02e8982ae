package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies a rank-2 tensor into a gonum dense matrix.
func (t *Tensor) ToDense() (*mat.Dense, error) {
	if t.Rank() != 2 || t.shape[0] == 0 || t.shape[1] == 0 {
		return nil, fmt.Errorf("%w: dense matrix needs a non-empty rank 2 tensor, got shape %v",
			ErrShapeMismatch, t.shape)
	}
	return mat.NewDense(t.shape[0], t.shape[1], t.Data()), nil
}

// FromDense creates a rank-2 tensor holding a copy of m.
func FromDense(m mat.Matrix) *Tensor {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return &Tensor{shape: Shape{r, c}, data: data}
}
