package syncds

type Option[T any] func(c *Container[T])

// WithCapacity preallocates room for n elements. It is a sizing
// hint only, the container still grows without bound.
func WithCapacity[T any](n int) Option[T] {
	return func(c *Container[T]) {
		c.capacity = n
	}
}

// WithCopy sets the function used to copy an element out of the
// container, and to copy every element when cloning. The default
// is plain assignment.
//
// fn may panic. Extraction commits only after fn returns, so a
// panicking copy leaves the element where it was.
func WithCopy[T any](fn func(T) T) Option[T] {
	return func(c *Container[T]) {
		if fn != nil {
			c.copy = fn
		}
	}
}
