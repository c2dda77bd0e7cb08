package contract

// Pooler is the interface for something which owns a set of
// workers and can wait for all of them to finish.
type Pooler interface {
	Start()
	Wait()

	MaxWorkers() int
	ActiveWorkers() int
}
