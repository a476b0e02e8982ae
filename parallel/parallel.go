// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel exposes the worker configuration used by
// Tensor.TimesWith.
//
// Example:
//
//	cfg := parallel.DefaultConfig()
//	c, err := a.TimesWith(b, cfg)
package parallel

import (
	"github.com/born-ml/qtensor/internal/parallel"
)

// Config controls how many goroutines share a computation.
type Config = parallel.Config

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = parallel.ErrInvalidConfig

// DefaultConfig returns a config sized to the number of CPUs.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns a config that runs on the calling goroutine.
func Sequential() Config {
	return parallel.Sequential()
}
