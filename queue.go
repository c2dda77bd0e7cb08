package syncds

import (
	"context"

	"github.com/symonk/syncds/internal/contract"
)

// Ensure Queue implements the blocking container contract.
var _ contract.Blocker[int] = (*Queue[int])(nil)

// Queue is a FIFO Container. Elements are delivered in the global
// order they were pushed, across every consumer.
type Queue[T any] struct {
	c *Container[T]
}

// NewQueue returns an empty FIFO queue.
func NewQueue[T any](opts ...Option[T]) *Queue[T] {
	return &Queue[T]{c: New[T](FIFO, opts...)}
}

// Push appends v and wakes one waiting consumer.
func (q *Queue[T]) Push(v T) { q.c.Push(v) }

// TryPop removes the oldest element; ok is false when empty.
func (q *Queue[T]) TryPop() (T, bool) { return q.c.TryPop() }

// Pop removes the oldest element or returns ErrEmptyContainer.
func (q *Queue[T]) Pop() (T, error) { return q.c.Pop() }

// PopHandle removes the oldest element into a Handle or returns
// ErrEmptyContainer.
func (q *Queue[T]) PopHandle() (Handle[T], error) { return q.c.PopHandle() }

// WaitAndPop blocks until the queue is non-empty and removes the
// oldest element.
func (q *Queue[T]) WaitAndPop() T { return q.c.WaitAndPop() }

// WaitAndPopHandle blocks until the queue is non-empty and removes
// the oldest element into a Handle.
func (q *Queue[T]) WaitAndPopHandle() Handle[T] { return q.c.WaitAndPopHandle() }

// WaitAndPopContext is WaitAndPop that gives up when ctx is done.
func (q *Queue[T]) WaitAndPopContext(ctx context.Context) (T, error) {
	return q.c.WaitAndPopContext(ctx)
}

func (q *Queue[T]) Empty() bool { return q.c.Empty() }

func (q *Queue[T]) Len() int { return q.c.Len() }

// Clone returns an independent copy of the queue.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{c: q.c.Clone()}
}
