package tensor

import (
	"fmt"

	"github.com/born-ml/qtensor/internal/parallel"
)

// Times performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Both operands must be rank 2 with matching inner dimensions; otherwise
// Times returns an error wrapping ErrShapeMismatch.
func (t *Tensor) Times(other *Tensor) (*Tensor, error) {
	return t.TimesWith(other, parallel.Sequential())
}

// TimesWith is Times with the output rows spread over workers according to
// cfg. Results are bit-identical to Times.
func (t *Tensor) TimesWith(other *Tensor, cfg parallel.Config) (*Tensor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, k, n, err := matmulDims(t.shape, other.shape)
	if err != nil {
		return nil, err
	}

	result := Zeros(Shape{m, n})
	parallel.ForRange(m, func(start, end int) {
		matmulRows(result.data, t.data, other.data, start, end, k, n)
	}, cfg)
	return result, nil
}

func matmulDims(a, b Shape) (m, k, n int, err error) {
	if len(a) != 2 || len(b) != 2 {
		return 0, 0, 0, fmt.Errorf("%w: matmul needs rank 2 operands, got rank %d and %d",
			ErrShapeMismatch, len(a), len(b))
	}
	if a[1] != b[0] {
		return 0, 0, 0, fmt.Errorf("%w: matmul %v @ %v", ErrShapeMismatch, a, b)
	}
	if a[0] == 0 || a[1] == 0 || b[1] == 0 {
		return 0, 0, 0, fmt.Errorf("%w: matmul with empty dimension %v @ %v", ErrShapeMismatch, a, b)
	}
	if err := (Shape{a[0], b[1]}).Validate(); err != nil {
		return 0, 0, 0, fmt.Errorf("matmul %v @ %v: %w", a, b, err)
	}
	return a[0], a[1], b[1], nil
}

// matmulRows fills rows [start, end) of c = a @ b.
// C[i,j] = sum_k A[i,k] * B[k,j], summed in increasing k.
func matmulRows(c, a, b []float64, start, end, k, n int) {
	for i := start; i < end; i++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// ApplyFunction returns a new tensor with fn applied to every element.
// The receiver is left unchanged.
func (t *Tensor) ApplyFunction(fn func(float64) float64) *Tensor {
	result := t.Clone()
	for i, v := range result.data {
		result.data[i] = fn(v)
	}
	return result
}
