package syncds

import (
	"context"
	"fmt"
	"sync"

	"github.com/symonk/syncds/internal/deque"
)

// Order is the retrieval order of a Container, fixed at construction.
type Order int

const (
	// FIFO hands out elements in push order.
	FIFO Order = iota
	// LIFO hands out the most recently pushed element first.
	LIFO
)

func (o Order) String() string {
	switch o {
	case FIFO:
		return "FIFO"
	case LIFO:
		return "LIFO"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Container is a concurrency-safe sequence of elements guarded by
// one mutex. A condition variable bound to that mutex is signalled
// once per Push so that goroutines blocked in WaitAndPop wake up.
//
// The zero value is not ready for use; construct one with New,
// NewQueue or NewStack. A Container must not be copied after first
// use; use Clone.
type Container[T any] struct {
	mu   sync.Mutex
	cond *sync.Cond
	data *deque.Deque[T]

	order    Order
	capacity int
	copy     func(T) T
}

// New instantiates an empty container with the given order and
// applies the functional options to it.
func New[T any](order Order, opts ...Option[T]) *Container[T] {
	c := &Container[T]{
		order: order,
		copy:  assign[T],
	}
	for _, opt := range opts {
		opt(c)
	}
	c.data = deque.New[T](c.capacity)
	c.cond = sync.NewCond(&c.mu)
	return c
}

func assign[T any](v T) T { return v }

// Order returns the retrieval order of the container.
func (c *Container[T]) Order() Order {
	return c.order
}

// Push adds v and wakes one goroutine waiting in WaitAndPop.
func (c *Container[T]) Push(v T) {
	c.mu.Lock()
	c.data.PushBack(v)
	c.mu.Unlock()
	c.cond.Signal()
}

// TryPop removes and returns the next element. The second result is
// false when the container is empty. It never blocks.
func (c *Container[T]) TryPop() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data.Length() == 0 {
		var zero T
		return zero, false
	}
	return c.extractLocked(), true
}

// Pop removes and returns the next element, or ErrEmptyContainer.
func (c *Container[T]) Pop() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data.Length() == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return c.extractLocked(), nil
}

// PopHandle removes the next element and returns it wrapped in a
// Handle, or ErrEmptyContainer. The handle is fully built before
// the element is removed.
func (c *Container[T]) PopHandle() (Handle[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data.Length() == 0 {
		return Handle[T]{}, ErrEmptyContainer
	}
	return c.extractHandleLocked(), nil
}

// WaitAndPop blocks until an element is available, then removes and
// returns it. There is no way to interrupt it other than pushing a
// value the caller recognises as a stop signal.
func (c *Container[T]) WaitAndPop() T {
	c.mu.Lock()
	defer c.releaseWaiter()
	c.waitLocked()
	return c.extractLocked()
}

// WaitAndPopHandle is WaitAndPop returning a Handle.
func (c *Container[T]) WaitAndPopHandle() Handle[T] {
	c.mu.Lock()
	defer c.releaseWaiter()
	c.waitLocked()
	return c.extractHandleLocked()
}

// WaitAndPopContext blocks until an element is available or ctx is
// done. An available element wins over a finished context.
func (c *Container[T]) WaitAndPopContext(ctx context.Context) (T, error) {
	stop := context.AfterFunc(ctx, func() {
		// taking the lock orders the broadcast after the waiter's
		// ctx.Err check, so the wake-up cannot be missed.
		c.mu.Lock()
		c.cond.Broadcast()
		c.mu.Unlock()
	})
	defer stop()

	c.mu.Lock()
	defer c.releaseWaiter()
	for c.data.Length() == 0 {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		c.cond.Wait()
	}
	return c.extractLocked(), nil
}

// Empty reports whether the container held no elements at the
// moment of the call.
func (c *Container[T]) Empty() bool {
	return c.Len() == 0
}

// Len returns the number of elements at the moment of the call.
func (c *Container[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data.Length()
}

// Clone returns a new, independently locked container holding a
// copy of every element of c, in the same order, with the same
// options. Only c's lock is taken.
func (c *Container[T]) Clone() *Container[T] {
	n := &Container[T]{
		order:    c.order,
		capacity: c.capacity,
		copy:     c.copy,
		data:     c.snapshot(),
	}
	n.cond = sync.NewCond(&n.mu)
	return n
}

func (c *Container[T]) snapshot() *deque.Deque[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data.Clone(c.copy)
}

func (c *Container[T]) waitLocked() {
	for c.data.Length() == 0 {
		c.cond.Wait()
	}
}

// releaseWaiter unlocks after a blocking pop. A waiter consumed one
// Signal; if it leaves elements behind (a panicking copy, or a push
// that raced ahead) the wake-up is passed on.
func (c *Container[T]) releaseWaiter() {
	pending := c.data.Length() > 0
	c.mu.Unlock()
	if pending {
		c.cond.Signal()
	}
}

// extractLocked copies the next element out and only then removes
// it. Callers hold c.mu and have checked the container is not empty.
func (c *Container[T]) extractLocked() T {
	v := c.copy(c.peekLocked())
	c.removeLocked()
	return v
}

func (c *Container[T]) extractHandleLocked() Handle[T] {
	h := newHandle(c.copy(c.peekLocked()))
	c.removeLocked()
	return h
}

func (c *Container[T]) peekLocked() T {
	var v T
	if c.order == LIFO {
		v, _ = c.data.Back()
	} else {
		v, _ = c.data.Front()
	}
	return v
}

func (c *Container[T]) removeLocked() {
	if c.order == LIFO {
		_, _ = c.data.PopBack()
	} else {
		_, _ = c.data.PopFront()
	}
}
