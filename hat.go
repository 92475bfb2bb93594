package hat

import "iter"

// tree is the shared rotor implementation behind HatD and HatC. It holds
// three directories — l (lower), m (middle), h (higher) — of pointer-
// sized sub-block references, plus the occupancy counters and middle
// capacity that the rotor rotates between on growth and shrink.
//
// Invariants, maintained after every exported method returns:
//
//  1. m[0:hLen] == h[0:hLen] (growth mirror); m[0:lLen] == l[0:lLen]
//     (shrink mirror).
//  2. cap(l) == max(1, mCap/2); cap(m) == mCap; cap(h) == 2*mCap; mCap
//     is always a power of two.
//  3. Exactly blocks m[0:mLen] are allocated, each sized per sched.
//  4. Sub-blocks are owned exactly once, by m; entries replicated into
//     l and h are non-owning mirrors. On rotation, ownership travels
//     with whichever directory the block's home array becomes.
type tree[T any] struct {
	sched   schedule
	alloc   Allocator[T]
	destroy func(T)

	length int

	l, m, h          [][]T
	lLen, mLen, hLen int
	mCap             int
}

func newTree[T any](sched schedule, alloc Allocator[T], destroy func(T)) (*tree[T], error) {
	t := &tree[T]{sched: sched, alloc: alloc, destroy: destroy}
	if err := t.reset(); err != nil {
		return nil, err
	}
	return t, nil
}

// reset (re)allocates the three directories at their minimum sizes and
// zeroes the occupancy counters, as used both by construction and by
// CopyFrom (after destroying whatever the receiver held before).
func (t *tree[T]) reset() error {
	l, err := t.alloc.AllocDirectory(1)
	if err != nil {
		return outOfMemory("new", err)
	}
	m, err := t.alloc.AllocDirectory(1)
	if err != nil {
		return outOfMemory("new", err)
	}
	h, err := t.alloc.AllocDirectory(2)
	if err != nil {
		return outOfMemory("new", err)
	}
	t.l, t.m, t.h = l, m, h
	t.lLen, t.mLen, t.hLen = 0, 0, 0
	t.mCap = 1
	t.length = 0
	return nil
}

func (t *tree[T]) assertAlive(op string) {
	if t.m == nil {
		panic("hat: " + op + ": use of destroyed container")
	}
}

func (t *tree[T]) Len() int  { return t.length }
func (t *tree[T]) High() int { return t.length - 1 }
func (t *tree[T]) Low() int  { return 0 }

func (t *tree[T]) Get(i int) (T, error) {
	t.assertAlive("get")
	var zero T
	if err := checkIndex("get", i, t.length); err != nil {
		return zero, err
	}
	bi, si := t.sched.locate(i)
	return t.m[bi][si], nil
}

func (t *tree[T]) Set(i int, v T) error {
	t.assertAlive("set")
	if err := checkIndex("set", i, t.length); err != nil {
		return err
	}
	bi, si := t.sched.locate(i)
	t.m[bi][si] = v
	return nil
}

// Append writes e at index Len(), growing the directory rotor if needed.
// At most one new sub-block and, on a rotor rotation, one new directory
// are allocated; at most two directory entries are copied (the
// preload-up step). Every allocation is attempted before any state is
// mutated, so a failed Append leaves the container valid.
func (t *tree[T]) Append(e T) error {
	t.assertAlive("append")

	bi, si := t.sched.locate(t.length)

	if bi < t.mLen {
		// fast path: the target block already exists
		t.m[bi][si] = e
		t.length++
		return nil
	}

	// slow path: bi == t.mLen, a new block is needed
	grow := bi == t.mCap
	var newH [][]T
	if grow {
		// rotor growth: attempt the new h allocation first
		var err error
		newH, err = t.alloc.AllocDirectory(4 * t.mCap)
		if err != nil {
			return outOfMemory("append", err)
		}
	}

	// the block is allocated before the rotor rotates, so a failure here
	// leaves every directory and counter untouched.
	block, err := t.alloc.AllocBlock(t.sched.blockSize(bi))
	if err != nil {
		return outOfMemory("append", err)
	}

	if grow {
		t.l = t.m
		t.lLen = t.mLen
		t.m = t.h
		t.mCap *= 2
		t.h = newH
		t.hLen = 0
	}
	t.m[t.mLen] = block
	t.mLen++

	for i := 0; i < 2 && t.hLen < t.mLen; i++ {
		t.h[t.hLen] = t.m[t.hLen]
		t.hLen++
	}

	t.m[bi][si] = e
	t.length++
	return nil
}

// Pop removes and returns the element at index Len()-1. The last block
// is retired (and, at the quarter-mark of the prior h, the rotor
// shrinks) in at most O(1) work, with at most two directory entries
// copied (the preload-down step).
func (t *tree[T]) Pop() (T, error) {
	t.assertAlive("pop")
	var zero T
	if t.length == 0 {
		return zero, outOfBounds("pop")
	}

	bi, si := t.sched.locate(t.length - 1)
	v := t.m[bi][si]

	if si == 0 {
		// the last block held exactly one live element: retire it.
		if bi < t.mCap/2 {
			// rotor shrink: attempt the new l allocation before
			// mutating anything.
			newMCap := t.mCap / 2
			newLCap := max(1, newMCap/2)
			newL, err := t.alloc.AllocDirectory(newLCap)
			if err != nil {
				return zero, outOfMemory("pop", err)
			}
			retiring := t.m[t.mLen-1]
			t.m[bi][si] = zero
			t.alloc.Free(retiring)
			// both old m and old l mirrored the block just retired
			// (old l because mLen <= cap(l) always holds at a rotor
			// shrink); exclude it from both before promoting them.
			t.mLen--
			t.lLen--
			t.h = t.m
			t.hLen = t.mLen
			t.m = t.l
			t.mLen = t.lLen
			t.mCap = newMCap
			t.l = newL
			t.lLen = 0
		} else {
			retiring := t.m[t.mLen-1]
			t.m[bi][si] = zero
			t.alloc.Free(retiring)
			t.mLen--
			// h may have mirrored the block just retired; uncount it
			// so a later Append refreshes the slot instead of assuming
			// it's already preloaded.
			if t.hLen > t.mLen {
				t.hLen = t.mLen
			}
		}
	} else {
		t.m[bi][si] = zero
	}

	halfCap := t.mCap / 2
	for i := 0; i < 2 && t.lLen < halfCap; i++ {
		t.l[t.lLen] = t.m[t.lLen]
		t.lLen++
	}

	t.length--
	return v, nil
}

// ApplyInPlace invokes f on each slot in iteration order, storing the
// result back in place, with one directory lookup per sub-block rather
// than per element.
func (t *tree[T]) ApplyInPlace(f func(T) T) {
	t.assertAlive("apply in place")
	remaining := t.length
	for bi := 0; bi < t.mLen && remaining > 0; bi++ {
		block := t.m[bi]
		n := len(block)
		if n > remaining {
			n = remaining
		}
		for si := 0; si < n; si++ {
			block[si] = f(block[si])
		}
		remaining -= n
	}
}

// Iterate yields each element exactly once, in index order, with one
// directory lookup per sub-block.
func (t *tree[T]) Iterate() iter.Seq[T] {
	return func(yield func(T) bool) {
		remaining := t.length
		for bi := 0; bi < t.mLen && remaining > 0; bi++ {
			block := t.m[bi]
			n := len(block)
			if n > remaining {
				n = remaining
			}
			for si := 0; si < n; si++ {
				if !yield(block[si]) {
					return
				}
			}
			remaining -= n
		}
	}
}

// CopyFrom destroys the receiver's current contents and rebuilds it by
// appending every element of src, in order. This is the one operation
// that is not O(1): it is linear in src.Len().
func (t *tree[T]) CopyFrom(src Sequence[T]) error {
	t.destroyBlocks()
	if err := t.reset(); err != nil {
		return err
	}
	for v := range src.Iterate() {
		if err := t.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// destroyBlocks runs the element destructor (if any) over every live
// slot, then frees each sub-block. Destructor counts are derived from
// the schedule rather than a fixed loop bound: blocks 0..mLen-2 run
// their full blockSize, and the last block runs only its occupied
// slots (si+1 of the address of Len()-1).
func (t *tree[T]) destroyBlocks() {
	if t.mLen == 0 {
		return
	}
	lastCount := t.sched.blockSize(t.mLen - 1)
	if t.length > 0 {
		lastBi, lastSi := t.sched.locate(t.length - 1)
		if lastBi == t.mLen-1 {
			lastCount = lastSi + 1
		}
	}
	for bi := 0; bi < t.mLen; bi++ {
		block := t.m[bi]
		count := t.sched.blockSize(bi)
		if bi == t.mLen-1 {
			count = lastCount
		}
		if t.destroy != nil {
			for si := 0; si < count; si++ {
				t.destroy(block[si])
			}
		}
		t.alloc.Free(block)
	}
}

// Destroy releases all owned storage, invoking the element destructor
// (if configured) on every live slot first. It is idempotent: calling
// Destroy on an already-destroyed container is a no-op.
func (t *tree[T]) Destroy() {
	if t.m == nil {
		return
	}
	t.destroyBlocks()
	t.l, t.m, t.h = nil, nil, nil
	t.lLen, t.mLen, t.hLen = 0, 0, 0
	t.mCap = 0
	t.length = 0
}

// Sequence is satisfied by both HatD and HatC; it's the minimal surface
// Fold and CopyFrom need from a source container.
type Sequence[T any] interface {
	Len() int
	Iterate() iter.Seq[T]
}

// Fold reduces s's elements, left to right, starting from init. It is
// deliberately a free function rather than a method, since it only needs
// Iterate and works identically over HatD, HatC, or any other Sequence.
func Fold[T, A any](s Sequence[T], init A, f func(A, T) A) A {
	acc := init
	for v := range s.Iterate() {
		acc = f(acc, v)
	}
	return acc
}
