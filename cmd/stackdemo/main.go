// Command stackdemo has several goroutines push a value onto a
// shared stack and immediately pop one back.
//
// Usage:
//
//	go run ./cmd/stackdemo -n 10
package main

import (
	"errors"
	"flag"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/symonk/syncds"
	"github.com/symonk/syncds/internal/profile"
)

func main() {
	n := flag.Int("n", 10, "number of goroutines")
	profilePath := flag.String("fgprof", "", "write a wall-clock profile to this file")
	flag.Parse()

	stop, err := profile.Start(*profilePath)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	stack := syncds.NewStack[int]()
	var wg sync.WaitGroup
	for i := 0; i < *n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stack.Push(i)
			color.Blue("Pushed value: %d", i)
			h, err := stack.PopHandle()
			if err != nil {
				color.Red("Pop failed: %v", err)
				return
			}
			color.Green("Popped value: %d", h.Value())
		}(i)
	}
	wg.Wait()

	if _, err := stack.Pop(); errors.Is(err, syncds.ErrEmptyContainer) {
		color.Yellow("Stack drained: %v", err)
	}

	if err := stop(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}
