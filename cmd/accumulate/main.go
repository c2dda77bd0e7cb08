// Command accumulate sums a vector of ones in parallel.
//
// Usage:
//
//	go run ./cmd/accumulate -n 1000000
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"

	"github.com/symonk/syncds/accumulate"
	"github.com/symonk/syncds/internal/profile"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of elements")
	minPer := flag.Int("min-per-worker", 25, "smallest block per goroutine")
	maxWorkers := flag.Int("workers", runtime.NumCPU(), "maximum goroutines")
	profilePath := flag.String("fgprof", "", "write a wall-clock profile to this file")
	flag.Parse()

	stop, err := profile.Start(*profilePath)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	v := make([]int, *n)
	for i := range v {
		v[i] = 1
	}

	start := time.Now()
	result := accumulate.Parallel(v, 0, func(a, b int) int { return a + b },
		accumulate.WithMinPerWorker(*minPer),
		accumulate.WithMaxWorkers(*maxWorkers),
	)
	elapsed := time.Since(start)

	fmt.Printf("Workers: %d\n", accumulate.Workers(*n, *minPer, *maxWorkers))
	color.Green("Result: %d", result)
	fmt.Printf("Took: %v\n", elapsed)

	if err := stop(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}
