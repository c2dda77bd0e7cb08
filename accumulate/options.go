package accumulate

type Option func(c *config)

type config struct {
	minPerWorker int
	maxWorkers   int
}

// WithMinPerWorker sets the smallest block worth handing to its own
// goroutine. The default is 25.
func WithMinPerWorker(n int) Option {
	return func(c *config) {
		c.minPerWorker = n
	}
}

// WithMaxWorkers caps the number of goroutines, the caller's
// included. The default is runtime.NumCPU().
func WithMaxWorkers(n int) Option {
	return func(c *config) {
		c.maxWorkers = n
	}
}
