// Package parallel fans independent index ranges out over worker goroutines.
package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("parallel: invalid config")

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum indices per goroutine.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 8,
	}
}

// Sequential returns a config that runs everything on the calling goroutine.
func Sequential() Config {
	return Config{}
}

// Validate checks the worker and chunk counts.
func (c Config) Validate() error {
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: NumWorkers %d", ErrInvalidConfig, c.NumWorkers)
	}
	if c.MinChunkSize < 0 {
		return fmt.Errorf("%w: MinChunkSize %d", ErrInvalidConfig, c.MinChunkSize)
	}
	return nil
}

// ForRange calls f(start, end) over contiguous chunks covering [0, n).
// Chunks run concurrently when cfg allows it; ForRange returns once every
// chunk has finished.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
