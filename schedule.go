package hat

import "math/bits"

// schedule maps an element index to a (directory index, slot index) pair,
// and gives the size of the sub-block at a given directory index. HatD and
// HatC differ only in their schedule; the rotor logic in tree is shared.
type schedule interface {
	// locate returns the sub-block index bi and the slot index si for
	// element index k (k >= 0).
	locate(k int) (bi, si int)

	// blockSize returns the number of slots in sub-block bi (bi >= 0).
	blockSize(bi int) int
}

// doublingSchedule implements the HatD block layout: sub-block i holds
// 2^i slots, so w := k+1 falls in block bi = floor(log2(w)), at slot
// si = w - 2^bi.
type doublingSchedule struct{}

func (doublingSchedule) locate(k int) (bi, si int) {
	w := k + 1
	bi = bits.Len(uint(w)) - 1
	si = w - (1 << bi)
	return bi, si
}

func (doublingSchedule) blockSize(bi int) int {
	return 1 << bi
}

// constantSchedule implements the HatC block layout: every sub-block
// holds 2^S slots, so index math is a shift and a mask.
type constantSchedule struct {
	s int
}

func (c constantSchedule) locate(k int) (bi, si int) {
	bi = k >> c.s
	si = k & ((1 << c.s) - 1)
	return bi, si
}

func (c constantSchedule) blockSize(int) int {
	return 1 << c.s
}
