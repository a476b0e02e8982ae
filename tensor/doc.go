// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a small float64 tensor for value-function tables
// and other compact numeric state.
//
// # Overview
//
// A Tensor is a flat row-major buffer plus a Shape. Tensors are values:
// every operation returns a new Tensor and never changes its receiver, so
// they are safe to share between goroutines.
//
// # Basic Usage
//
//	a := tensor.MustNew(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
//	b := tensor.Eye(2)
//
//	c, err := a.Times(b)
//	if errors.Is(err, tensor.ErrShapeMismatch) {
//	    // operands were not (M, K) @ (K, N)
//	}
//
//	scaled := c.ApplyFunction(func(v float64) float64 { return v * 3 })
//	scaled.Print()
//
// # Multiplication
//
// Times supports rank-2 operands only. There is no broadcasting. TimesWith
// spreads output rows over goroutines and returns results bit-identical to
// Times.
//
// # Identity
//
// Identity(size, rank) places 1.0 at flat positions i*(size+1). For rank 2
// this is the identity matrix; for higher ranks it only marks one line of
// cells. Eye(n) is the rank-2 shorthand.
package tensor
