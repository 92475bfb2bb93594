package hat

import "sync"

// Allocator abstracts the allocation of sub-blocks and directories, so
// HatD and HatC are portable across allocation strategies. The default,
// used unless overridden, delegates directly to make; Free is then a
// no-op, since Go's GC reclaims unreferenced slices on its own.
//
// A caller-supplied Allocator may fail (return an error); the rotor state
// machines in tree attempt every allocation an operation needs before
// mutating any directory or length field, so a failed Append or rotor
// rotation leaves the container exactly as it was.
type Allocator[T any] interface {
	// AllocBlock returns a sub-block of n slots.
	AllocBlock(n int) ([]T, error)
	// AllocDirectory returns a directory of n pointer slots.
	AllocDirectory(n int) ([][]T, error)
	// Free releases a sub-block previously returned by AllocBlock. It is
	// called at most once per block, from the directory (m) that owns it.
	Free(block []T)
}

// defaultAllocator is the zero-value Allocator: a thin wrapper over make.
type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) AllocBlock(n int) ([]T, error) {
	return make([]T, n), nil
}

func (defaultAllocator[T]) AllocDirectory(n int) ([][]T, error) {
	return make([][]T, n), nil
}

func (defaultAllocator[T]) Free([]T) {}

// pooledAllocator recycles sub-blocks through a sync.Pool keyed by block
// size, for workloads that oscillate around a length (repeatedly growing
// and shrinking the same handful of block sizes). Directories are not
// pooled: they are replaced wholesale only on rotor rotation, which is
// already O(1) and infrequent (geometric in the container size).
type pooledAllocator[T any] struct {
	pools sync.Map // block size (int) -> *sync.Pool
}

// NewPooledAllocator returns an Allocator that recycles same-sized
// sub-blocks via a per-size sync.Pool.
func NewPooledAllocator[T any]() Allocator[T] {
	return &pooledAllocator[T]{}
}

func (a *pooledAllocator[T]) poolFor(n int) *sync.Pool {
	if p, ok := a.pools.Load(n); ok {
		return p.(*sync.Pool)
	}
	p := &sync.Pool{New: func() any {
		return make([]T, n)
	}}
	actual, _ := a.pools.LoadOrStore(n, p)
	return actual.(*sync.Pool)
}

func (a *pooledAllocator[T]) AllocBlock(n int) ([]T, error) {
	block := a.poolFor(n).Get().([]T)
	var zero T
	for i := range block {
		block[i] = zero
	}
	return block, nil
}

func (a *pooledAllocator[T]) AllocDirectory(n int) ([][]T, error) {
	return make([][]T, n), nil
}

func (a *pooledAllocator[T]) Free(block []T) {
	if block == nil {
		return
	}
	a.poolFor(len(block)).Put(block)
}
