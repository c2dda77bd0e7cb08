// Package accumulate folds a slice in parallel by splitting it into
// contiguous blocks, one per goroutine.
package accumulate

import (
	"runtime"
	"sync"
)

const defaultMinPerWorker = 25

// Workers returns how many goroutines Parallel uses for n elements:
// enough that each gets at least minPerWorker elements, but no more
// than maxWorkers. A non-positive maxWorkers counts as 2.
func Workers(n, minPerWorker, maxWorkers int) int {
	if n <= 0 {
		return 0
	}
	if minPerWorker < 1 {
		minPerWorker = 1
	}
	if maxWorkers < 1 {
		maxWorkers = 2
	}
	return min(maxWorkers, (n+minPerWorker-1)/minPerWorker)
}

// Parallel folds values into init with fold. Each block is folded
// from the zero value of T, and the block results are folded into
// init in block order, so fold must be associative and the zero
// value of T must be its identity.
//
// The last block runs on the caller's goroutine.
func Parallel[T any](values []T, init T, fold func(T, T) T, opts ...Option) T {
	cfg := config{
		minPerWorker: defaultMinPerWorker,
		maxWorkers:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	workers := Workers(len(values), cfg.minPerWorker, cfg.maxWorkers)
	if workers == 0 {
		return init
	}
	blockSize := len(values) / workers
	results := make([]T, workers)

	var wg sync.WaitGroup
	start := 0
	for i := 0; i < workers-1; i++ {
		end := start + blockSize
		wg.Add(1)
		go func(i int, block []T) {
			defer wg.Done()
			results[i] = Serial(block, results[i], fold)
		}(i, values[start:end])
		start = end
	}
	results[workers-1] = Serial(values[start:], results[workers-1], fold)
	wg.Wait()

	return Serial(results, init, fold)
}

// Serial folds values into init on the calling goroutine.
func Serial[T any](values []T, init T, fold func(T, T) T) T {
	acc := init
	for _, v := range values {
		acc = fold(acc, v)
	}
	return acc
}
