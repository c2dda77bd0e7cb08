package syncds

// Handle owns a copy of an element removed from a container.
// Copies of a Handle share the same value, which stays alive for
// as long as any of them is reachable.
//
// The zero Handle holds nothing; Valid reports false for it.
type Handle[T any] struct {
	p *T
}

func newHandle[T any](v T) Handle[T] {
	return Handle[T]{p: &v}
}

// Value returns the element. It panics on the zero Handle.
func (h Handle[T]) Value() T {
	return *h.p
}

// Ptr returns the shared element. Writes through it are seen by
// every copy of the handle.
func (h Handle[T]) Ptr() *T {
	return h.p
}

// Valid reports whether the handle holds an element.
func (h Handle[T]) Valid() bool {
	return h.p != nil
}
