// Package tensor provides the float64 tensor value type used by qtensor.
package tensor

import (
	"fmt"
	"math"
)

// Tensor is a dense row-major array of float64 values with a fixed shape.
//
// A Tensor is never modified after construction. Every operation returns a
// fresh value that owns its own shape and data, so a Tensor can be shared
// freely between goroutines.
type Tensor struct {
	shape Shape
	data  []float64
}

// New creates a tensor from a shape and a flat row-major initializer.
// Only the first shape.NumElements() values of init are used.
func New(shape Shape, init []float64) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	n := shape.NumElements()
	if len(init) < n {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrSizeUnderflow, shape, n, len(init))
	}

	data := make([]float64, n)
	copy(data, init[:n])
	return &Tensor{shape: shape.Clone(), data: data}, nil
}

// MustNew is like New but panics if the initializer does not fit the shape.
func MustNew(shape Shape, init []float64) *Tensor {
	t, err := New(shape, init)
	if err != nil {
		panic(err)
	}
	return t
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return &Tensor{shape: shape.Clone(), data: make([]float64, shape.NumElements())}
}

// Identity creates a rank-dimensional hypercube of edge size with 1.0 at the
// flat positions i*(size+1) for i in [0, size).
//
// For rank 2 this is the identity matrix. Other ranks get the same flat
// placement, which only marks a single line of cells and is not a
// generalized identity tensor.
func Identity(size, rank int) (*Tensor, error) {
	if size < 0 || rank < 0 {
		return nil, fmt.Errorf("%w: identity size %d, rank %d", ErrInvalidShape, size, rank)
	}

	shape := make(Shape, rank)
	for i := range shape {
		shape[i] = size
	}

	if err := shape.Validate(); err != nil {
		return nil, err
	}

	n := shape.NumElements()
	if size > 0 && (size-1)*(size+1) >= n {
		return nil, fmt.Errorf("%w: identity of size %d does not fit rank %d", ErrInvalidShape, size, rank)
	}

	data := make([]float64, n)
	for i := 0; i < size; i++ {
		data[i*(size+1)] = 1
	}
	return &Tensor{shape: shape, data: data}, nil
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Tensor {
	t, err := Identity(n, 2)
	if err != nil {
		panic(err)
	}
	return t
}

// Clone returns a deep copy that shares no storage with t.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{shape: t.shape.Clone(), data: data}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns a copy of the flat row-major buffer.
func (t *Tensor) Data() []float64 {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return data
}

// At returns the element at the given coordinates.
func (t *Tensor) At(coords ...int) (float64, error) {
	idx, err := t.shape.Offset(coords...)
	if err != nil {
		return 0, err
	}
	return t.data[idx], nil
}

// With returns a copy of t with the element at coords replaced by v.
func (t *Tensor) With(v float64, coords ...int) (*Tensor, error) {
	idx, err := t.shape.Offset(coords...)
	if err != nil {
		return nil, err
	}
	result := t.Clone()
	result.data[idx] = v
	return result, nil
}

// Equal reports whether both tensors have the same shape and bit-identical data.
func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil || !t.shape.Equal(other.shape) || len(t.data) != len(other.data) {
		return false
	}
	for i, v := range t.data {
		if math.Float64bits(v) != math.Float64bits(other.data[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(shape=%v, data=%v)", t.shape, t.data)
}
