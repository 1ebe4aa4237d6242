// Package parallel fans independent work items out over goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16,
	}
}

// Sequential returns a config that runs every item on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1}
}

// Workers returns the number of goroutines For would start for n items.
func (cfg Config) Workers(n int) int {
	if n <= 0 {
		return 0
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		return 1
	}
	return (n + cfg.chunkSize(n) - 1) / cfg.chunkSize(n)
}

func (cfg Config) chunkSize(n int) int {
	workers := max(cfg.NumWorkers, 1)
	return max((n+workers-1)/workers, cfg.MinChunkSize, 1)
}

// For executes f(worker, start, end) over contiguous chunks of [0, n).
// Falls back to a single call on the calling goroutine if parallelism is
// disabled or n is too small. worker is the chunk index, in [0, Workers(n)).
func For(n int, f func(worker, start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if cfg.Workers(n) == 1 {
		f(0, 0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := cfg.chunkSize(n)

	for w, start := 0, 0; start < n; w, start = w+1, start+chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(w, s, e int) {
			defer wg.Done()
			f(w, s, e)
		}(w, start, end)
	}
	wg.Wait()
}
