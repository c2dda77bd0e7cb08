// Package pipeline runs producers and consumers against a shared
// blocking queue and shuts the consumers down with sentinel tasks.
package pipeline

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/symonk/syncds"
	"github.com/symonk/syncds/internal/contract"
)

// Sentinel is pushed once per consumer after all results are in.
// Consumers treat any negative task as a stop signal.
const Sentinel = -1

type EventKind int

const (
	TaskPushed EventKind = iota
	TaskProcessed
	ResultCollected
	ConsumerStopped
	ProducersFinished
	CollectorFinished
	SentinelsSent
	ConsumersFinished
)

func (k EventKind) String() string {
	switch k {
	case TaskPushed:
		return "task pushed"
	case TaskProcessed:
		return "task processed"
	case ResultCollected:
		return "result collected"
	case ConsumerStopped:
		return "consumer stopped"
	case ProducersFinished:
		return "producers finished"
	case CollectorFinished:
		return "collector finished"
	case SentinelsSent:
		return "sentinels sent"
	case ConsumersFinished:
		return "consumers finished"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes one step of a run. Worker is the producer or
// consumer id (1 based) where it applies, zero otherwise.
type Event struct {
	Kind   EventKind
	Worker int
	Task   int
}

// Result is what a consumer hands to the collector for a task.
type Result struct {
	Consumer int
	Task     int
}

func (r Result) String() string {
	return fmt.Sprintf("Consumer %d processed task %d", r.Consumer, r.Task)
}

// Report is the outcome of a run.
type Report struct {
	// Results in the order the collector received them.
	Results []Result
	// Processed counts tasks per consumer id.
	Processed map[int]int
}

// Pipeline feeds tasks from producers through a shared queue to
// consumers, and gathers their results on a second queue.
type Pipeline struct {
	tasks   contract.Blocker[int]
	results *syncds.Queue[Result]

	// worker specifics
	producers        int
	consumers        int
	tasksPerProducer int
	producerDelay    time.Duration
	consumerDelay    time.Duration
	activeWorkers    atomic.Int64

	observe func(Event)

	startOnce   sync.Once
	waitOnce    sync.Once
	producerWg  sync.WaitGroup
	consumerWg  sync.WaitGroup
	collectorWg sync.WaitGroup

	reportMu sync.Mutex
	report   Report
}

// Ensure Pipeline implements Pooler
var _ contract.Pooler = (*Pipeline)(nil)

// New instantiates a pipeline over tasks and applies the
// appropriate functional options to it. The queue is shared, not
// owned: the caller may keep using it once Wait returns.
func New(tasks contract.Blocker[int], opts ...Option) *Pipeline {
	p := &Pipeline{
		tasks:            tasks,
		results:          syncds.NewQueue[Result](),
		producers:        2,
		consumers:        3,
		tasksPerProducer: 5,
		observe:          func(Event) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.producers = max(p.producers, 0)
	p.tasksPerProducer = max(p.tasksPerProducer, 0)
	// without a consumer the collector would wait forever.
	p.consumers = max(p.consumers, 1)
	p.report.Processed = make(map[int]int, p.consumers)
	return p
}

// MaxWorkers returns the number of goroutines a run uses: every
// producer and consumer plus the collector.
func (p *Pipeline) MaxWorkers() int {
	return p.producers + p.consumers + 1
}

// ActiveWorkers returns the number of worker goroutines currently
// running.
func (p *Pipeline) ActiveWorkers() int {
	return int(p.activeWorkers.Load())
}

// Start launches the collector, then the consumers, then the
// producers. Calling it again has no effect.
func (p *Pipeline) Start() {
	p.startOnce.Do(func() {
		p.launch(&collector{p: p, expected: p.producers * p.tasksPerProducer}, &p.collectorWg)
		for i := 1; i <= p.consumers; i++ {
			p.launch(&consumer{id: i, p: p}, &p.consumerWg)
		}
		for i := 1; i <= p.producers; i++ {
			p.launch(&producer{id: i, p: p}, &p.producerWg)
		}
	})
}

// Wait starts the pipeline if needed and blocks until it is done:
// producers finish, the collector has every result, then one
// Sentinel per consumer is pushed and the consumers are joined.
// Only the first call shuts the pipeline down; later calls return
// once that shutdown has completed.
func (p *Pipeline) Wait() {
	p.Start()
	p.waitOnce.Do(p.shutdown)
}

func (p *Pipeline) shutdown() {
	p.producerWg.Wait()
	p.observe(Event{Kind: ProducersFinished})

	p.collectorWg.Wait()
	p.observe(Event{Kind: CollectorFinished})

	for i := 0; i < p.consumers; i++ {
		p.tasks.Push(Sentinel)
	}
	p.observe(Event{Kind: SentinelsSent})

	p.consumerWg.Wait()
	p.observe(Event{Kind: ConsumersFinished})
}

// Run is Start followed by Wait, returning the report.
func (p *Pipeline) Run() Report {
	p.Wait()
	return p.Report()
}

// Report returns a copy of what has been collected so far.
func (p *Pipeline) Report() Report {
	p.reportMu.Lock()
	defer p.reportMu.Unlock()
	r := Report{
		Results:   append([]Result(nil), p.report.Results...),
		Processed: make(map[int]int, len(p.report.Processed)),
	}
	for id, n := range p.report.Processed {
		r.Processed[id] = n
	}
	return r
}

func (p *Pipeline) launch(w contract.Worker, wg *sync.WaitGroup) {
	wg.Add(1)
	p.activeWorkers.Add(1)
	go func() {
		defer wg.Done()
		defer p.activeWorkers.Add(-1)
		w.Run()
	}()
}

// taskID spaces producers far enough apart that ids never collide.
func (p *Pipeline) taskID(producer, i int) int {
	stride := 100
	for stride < p.tasksPerProducer {
		stride *= 10
	}
	return producer*stride + i
}

type producer struct {
	id int
	p  *Pipeline
}

func (w *producer) Run() {
	for i := 0; i < w.p.tasksPerProducer; i++ {
		task := w.p.taskID(w.id, i)
		w.p.tasks.Push(task)
		w.p.observe(Event{Kind: TaskPushed, Worker: w.id, Task: task})
		if w.p.producerDelay > 0 {
			time.Sleep(w.p.producerDelay)
		}
	}
}

type consumer struct {
	id int
	p  *Pipeline
}

func (w *consumer) Run() {
	for {
		task := w.p.tasks.WaitAndPop()
		if task < 0 {
			w.p.observe(Event{Kind: ConsumerStopped, Worker: w.id, Task: task})
			return
		}
		if w.p.consumerDelay > 0 {
			time.Sleep(w.p.consumerDelay)
		}
		w.p.reportMu.Lock()
		w.p.report.Processed[w.id]++
		w.p.reportMu.Unlock()
		w.p.results.Push(Result{Consumer: w.id, Task: task})
		w.p.observe(Event{Kind: TaskProcessed, Worker: w.id, Task: task})
	}
}

type collector struct {
	p        *Pipeline
	expected int
}

func (w *collector) Run() {
	for collected := 0; collected < w.expected; collected++ {
		h := w.p.results.WaitAndPopHandle()
		r := h.Value()
		w.p.reportMu.Lock()
		w.p.report.Results = append(w.p.report.Results, r)
		w.p.reportMu.Unlock()
		w.p.observe(Event{Kind: ResultCollected, Worker: r.Consumer, Task: r.Task})
	}
}
