package hat

// Option configures a HatD or HatC at construction.
type Option[T any] func(*options[T])

type options[T any] struct {
	alloc   Allocator[T]
	destroy func(T)
}

func newOptions[T any](opts []Option[T]) options[T] {
	o := options[T]{alloc: defaultAllocator[T]{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAllocator overrides the default make-backed Allocator, e.g. with
// NewPooledAllocator for workloads that oscillate around a length.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *options[T]) { o.alloc = a }
}

// WithElementDestructor registers a function run on every live element
// during Destroy and CopyFrom (before the element's sub-block is freed),
// for element types that own external resources.
func WithElementDestructor[T any](f func(T)) Option[T] {
	return func(o *options[T]) { o.destroy = f }
}
