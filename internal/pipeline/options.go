package pipeline

import "time"

type Option func(p *Pipeline)

// WithProducers sets how many producer goroutines push tasks.
func WithProducers(n int) Option {
	return func(p *Pipeline) {
		p.producers = n
	}
}

// WithConsumers sets how many consumer goroutines process tasks.
func WithConsumers(n int) Option {
	return func(p *Pipeline) {
		p.consumers = n
	}
}

// WithTasksPerProducer sets how many tasks each producer pushes.
func WithTasksPerProducer(n int) Option {
	return func(p *Pipeline) {
		p.tasksPerProducer = n
	}
}

// WithProducerDelay pauses a producer after every push.
func WithProducerDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		p.producerDelay = d
	}
}

// WithConsumerDelay simulates work time for every task processed.
func WithConsumerDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		p.consumerDelay = d
	}
}

// WithObserver registers fn to be told about every event. fn is
// called from worker goroutines concurrently and must be safe for
// that.
func WithObserver(fn func(Event)) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.observe = fn
		}
	}
}
