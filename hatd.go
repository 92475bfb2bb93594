package hat

import "iter"

// HatD is the size-doubling hashed array tree: sub-block i holds 2^i
// slots. It trades the directory-indirection of a fixed block size for
// never needing to move already-placed elements, the same non-amortized
// guarantee HatC makes with a constant block size instead.
type HatD[T any] struct {
	t *tree[T]
}

// NewHatD allocates an empty HatD. All three directories are pre-sized
// (capacities 1, 1, 2) so the very first Append does no allocation
// beyond the first sub-block itself.
func NewHatD[T any](opts ...Option[T]) *HatD[T] {
	o := newOptions(opts)
	t, err := newTree[T](doublingSchedule{}, o.alloc, o.destroy)
	if err != nil {
		// only reachable if a caller-supplied Allocator fails on the
		// very first, minimum-sized allocation; the default Allocator
		// never does.
		panic(err)
	}
	return &HatD[T]{t: t}
}

func (h *HatD[T]) Len() int { return h.t.Len() }
func (h *HatD[T]) High() int { return h.t.High() }
func (h *HatD[T]) Low() int { return h.t.Low() }
func (h *HatD[T]) Get(i int) (T, error) { return h.t.Get(i) }
func (h *HatD[T]) Set(i int, v T) error { return h.t.Set(i, v) }
func (h *HatD[T]) Append(v T) error { return h.t.Append(v) }
func (h *HatD[T]) Pop() (T, error) { return h.t.Pop() }
func (h *HatD[T]) Destroy() { h.t.Destroy() }
func (h *HatD[T]) ApplyInPlace(f func(T) T) { h.t.ApplyInPlace(f) }
func (h *HatD[T]) Iterate() iter.Seq[T] { return h.t.Iterate() }

// CopyFrom destroys h's current contents and rebuilds it by appending
// every element of src, in order. O(src.Len()); every other HatD
// operation is O(1) worst case.
func (h *HatD[T]) CopyFrom(src Sequence[T]) error {
	return h.t.CopyFrom(src)
}
