package syncds

import "github.com/symonk/syncds/internal/contract"

var (
	_ contract.Pusher[int]    = (*Stack[int])(nil)
	_ contract.Extractor[int] = (*Stack[int])(nil)
)

// Stack is a LIFO Container. Pop returns the most recently pushed
// element that has not been popped yet.
//
// Stack has no blocking retrieval; use a Queue for producer and
// consumer pipelines.
type Stack[T any] struct {
	c *Container[T]
}

// NewStack returns an empty LIFO stack.
func NewStack[T any](opts ...Option[T]) *Stack[T] {
	return &Stack[T]{c: New[T](LIFO, opts...)}
}

func (s *Stack[T]) Push(v T) { s.c.Push(v) }

// TryPop removes the top element; ok is false when empty.
func (s *Stack[T]) TryPop() (T, bool) { return s.c.TryPop() }

// Pop removes the top element or returns ErrEmptyContainer.
func (s *Stack[T]) Pop() (T, error) { return s.c.Pop() }

// PopHandle removes the top element into a Handle or returns
// ErrEmptyContainer. The element is copied before it is removed.
func (s *Stack[T]) PopHandle() (Handle[T], error) { return s.c.PopHandle() }

func (s *Stack[T]) Empty() bool { return s.c.Empty() }

func (s *Stack[T]) Len() int { return s.c.Len() }

// Clone returns an independent copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{c: s.c.Clone()}
}
