// Command queuedemo runs producers and consumers against a shared
// FIFO queue and stops the consumers with sentinel tasks.
//
// Usage:
//
//	go run ./cmd/queuedemo -producers 2 -consumers 3 -tasks 5
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/symonk/syncds"
	"github.com/symonk/syncds/internal/pipeline"
	"github.com/symonk/syncds/internal/profile"
)

func main() {
	producers := flag.Int("producers", 2, "number of producer goroutines")
	consumers := flag.Int("consumers", 3, "number of consumer goroutines")
	tasks := flag.Int("tasks", 5, "tasks pushed by each producer")
	produceDelay := flag.Duration("produce-delay", 100*time.Millisecond, "pause after each push")
	consumeDelay := flag.Duration("consume-delay", 200*time.Millisecond, "simulated work per task")
	profilePath := flag.String("fgprof", "", "write a wall-clock profile to this file")
	flag.Parse()

	stop, err := profile.Start(*profilePath)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	fmt.Println("Starting producer-consumer run on a shared queue")
	fmt.Println()

	taskQueue := syncds.NewQueue[int]()
	p := pipeline.New(taskQueue,
		pipeline.WithProducers(*producers),
		pipeline.WithConsumers(*consumers),
		pipeline.WithTasksPerProducer(*tasks),
		pipeline.WithProducerDelay(*produceDelay),
		pipeline.WithConsumerDelay(*consumeDelay),
		pipeline.WithObserver(narrate),
	)
	report := p.Run()

	color.Green("\n=== %d RESULTS COLLECTED ===", len(report.Results))
	for id := 1; id <= *consumers; id++ {
		fmt.Printf("Consumer %d processed %d tasks\n", id, report.Processed[id])
	}

	demoClone()

	if err := stop(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func narrate(e pipeline.Event) {
	switch e.Kind {
	case pipeline.TaskPushed:
		color.Blue("Producer %d pushed task: %d", e.Worker, e.Task)
	case pipeline.TaskProcessed:
		fmt.Println(pipeline.Result{Consumer: e.Worker, Task: e.Task})
	case pipeline.ResultCollected:
		color.Cyan("RESULT: %s", pipeline.Result{Consumer: e.Worker, Task: e.Task})
	case pipeline.ConsumerStopped:
		color.Yellow("Consumer %d received termination signal", e.Worker)
	default:
		color.Magenta("-- %s", e.Kind)
	}
}

func demoClone() {
	fmt.Println("\nTesting clone...")
	original := syncds.NewQueue[int]()
	original.Push(100)
	original.Push(200)
	original.Push(300)

	copied := original.Clone()
	fmt.Printf("Original queue empty: %t\n", original.Empty())
	fmt.Printf("Copied queue empty: %t\n", copied.Empty())
	if v, ok := copied.TryPop(); ok {
		fmt.Printf("Popped from copied queue: %d\n", v)
	}
	fmt.Printf("Original queue length: %d, copied queue length: %d\n", original.Len(), copied.Len())
}
