// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/qtensor/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a 2×3 matrix.
type Shape = tensor.Shape

// Tensor is an immutable dense float64 tensor.
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3})
//	y := x.ApplyFunction(func(v float64) float64 { return v + 1 })
type Tensor = tensor.Tensor

// Errors returned by tensor operations. Use errors.Is to match them.
var (
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrSizeUnderflow    = tensor.ErrSizeUnderflow
	ErrInvalidShape     = tensor.ErrInvalidShape
	ErrIndexOutOfRange  = tensor.ErrIndexOutOfRange
	ErrInvalidPrintRank = tensor.ErrInvalidPrintRank
)

// New creates a tensor from a shape and a flat row-major initializer.
//
// Returns ErrSizeUnderflow if init holds fewer than shape.NumElements()
// values. Extra values are ignored.
//
// Example:
//
//	x, err := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
func New(shape Shape, init []float64) (*Tensor, error) {
	return tensor.New(shape, init)
}

// MustNew is like New but panics on error.
func MustNew(shape Shape, init []float64) *Tensor {
	return tensor.MustNew(shape, init)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3})
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Identity creates a rank-dimensional tensor of edge size with 1.0 at flat
// positions i*(size+1).
//
// Example:
//
//	id, err := tensor.Identity(3, 2)  // 3x3 identity matrix
func Identity(size, rank int) (*Tensor, error) {
	return tensor.Identity(size, rank)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	identity := tensor.Eye(3)
func Eye(n int) *Tensor {
	return tensor.Eye(n)
}

// FromDense creates a rank-2 tensor from a gonum matrix.
func FromDense(m mat.Matrix) *Tensor {
	return tensor.FromDense(m)
}
