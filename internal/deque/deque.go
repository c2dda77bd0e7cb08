// deque is a package that provides a growable ring buffer double ended queue.
package deque

import (
	"errors"
)

var (
	// ErrEmptyDeque is returned when the deque is empty.
	ErrEmptyDeque = errors.New("deque is empty")
)

const minCapacity = 8

// Deque is a ring buffer backed double ended queue with an
// unlimited max length.
//
// Deque is not synchronised; the owner is expected to guard
// every call with its own lock.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

// New returns a new pointer to an instance of a Deque with room
// for at least capacity elements before it has to grow.
func New[T any](capacity int) *Deque[T] {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

// PushBack puts a new element at the tail of the deque.
func (d *Deque[T]) PushBack(element T) {
	if d.count == len(d.buf) {
		d.grow()
	}
	d.buf[d.index(d.count)] = element
	d.count++
}

// Front returns the head element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	if d.count == 0 {
		var t T
		return t, false
	}
	return d.buf[d.head], true
}

// Back returns the tail element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	if d.count == 0 {
		var t T
		return t, false
	}
	return d.buf[d.index(d.count-1)], true
}

// PopFront removes and returns the head element of the deque.
func (d *Deque[T]) PopFront() (T, error) {
	var t T
	if d.count == 0 {
		return t, ErrEmptyDeque
	}
	item := d.buf[d.head]
	// release the slot so the GC can reclaim whatever it referenced.
	d.buf[d.head] = t
	d.head = d.index(1)
	d.count--
	return item, nil
}

// PopBack removes and returns the tail element of the deque.
func (d *Deque[T]) PopBack() (T, error) {
	var t T
	if d.count == 0 {
		return t, ErrEmptyDeque
	}
	i := d.index(d.count - 1)
	item := d.buf[i]
	d.buf[i] = t
	d.count--
	return item, nil
}

// Length returns the length of the Deque.
func (d *Deque[T]) Length() int {
	return d.count
}

// Values returns the elements head to tail, passing each one
// through cp. The deque is left untouched.
func (d *Deque[T]) Values(cp func(T) T) []T {
	out := make([]T, d.count)
	for i := range out {
		out[i] = cp(d.buf[d.index(i)])
	}
	return out
}

// Clone returns an independent deque holding copies of every
// element, made with cp, in the same order.
func (d *Deque[T]) Clone(cp func(T) T) *Deque[T] {
	values := d.Values(cp)
	c := New[T](len(values))
	c.count = copy(c.buf, values)
	return c
}

func (d *Deque[T]) index(offset int) int {
	return (d.head + offset) % len(d.buf)
}

func (d *Deque[T]) grow() {
	buf := make([]T, len(d.buf)*2)
	for i := 0; i < d.count; i++ {
		buf[i] = d.buf[d.index(i)]
	}
	d.buf = buf
	d.head = 0
}
