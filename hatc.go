package hat

import "iter"

// HatC is the constant-block-size hashed array tree: every sub-block
// holds 2^S slots, for an S fixed at construction. Go has no value-level
// generics (no const-integer type parameters), so S is a runtime field
// rather than a compile-time one — see DESIGN.md's Open Questions for
// why that's the only viable choice here, and what it costs.
type HatC[T any] struct {
	t *tree[T]
}

// NewHatC allocates an empty HatC whose sub-blocks each hold 2^s slots.
// s is typically in 2..8; it panics if s < 0, since a negative
// block-size exponent can never be satisfied.
func NewHatC[T any](s int, opts ...Option[T]) *HatC[T] {
	if s < 0 {
		panic("hat: NewHatC: s must be >= 0")
	}
	o := newOptions(opts)
	t, err := newTree[T](constantSchedule{s: s}, o.alloc, o.destroy)
	if err != nil {
		panic(err)
	}
	return &HatC[T]{t: t}
}

func (h *HatC[T]) Len() int { return h.t.Len() }
func (h *HatC[T]) High() int { return h.t.High() }
func (h *HatC[T]) Low() int { return h.t.Low() }
func (h *HatC[T]) Get(i int) (T, error) { return h.t.Get(i) }
func (h *HatC[T]) Set(i int, v T) error { return h.t.Set(i, v) }
func (h *HatC[T]) Append(v T) error { return h.t.Append(v) }
func (h *HatC[T]) Pop() (T, error) { return h.t.Pop() }
func (h *HatC[T]) Destroy() { h.t.Destroy() }
func (h *HatC[T]) ApplyInPlace(f func(T) T) { h.t.ApplyInPlace(f) }
func (h *HatC[T]) Iterate() iter.Seq[T] { return h.t.Iterate() }

// CopyFrom destroys h's current contents and rebuilds it by appending
// every element of src, in order. O(src.Len()); every other HatC
// operation is O(1) worst case.
func (h *HatC[T]) CopyFrom(src Sequence[T]) error {
	return h.t.CopyFrom(src)
}
