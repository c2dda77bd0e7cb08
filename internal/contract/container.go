package contract

import "context"

// Pusher is the producer side of a shared container.
type Pusher[T any] interface {
	Push(element T)
}

// Extractor is the non-blocking consumer side of a shared container.
// TryPop reports absence as a value, Pop reports it as an error.
type Extractor[T any] interface {
	TryPop() (T, bool)
	Pop() (T, error)
	Empty() bool
}

// Blocker is a container whose consumers can suspend until an
// element arrives.
type Blocker[T any] interface {
	Pusher[T]
	Extractor[T]
	WaitAndPop() T
	WaitAndPopContext(ctx context.Context) (T, error)
}
