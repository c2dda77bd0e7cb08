package contract

// Worker is the interface for something which runs on its own
// goroutine until its share of the work is done.
type Worker interface {
	Run()
}
