package hat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoublingSchedule_Locate(t *testing.T) {
	sched := doublingSchedule{}
	tests := []struct {
		k      int
		bi, si int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 1, 1},
		{3, 2, 0},
		{4, 2, 1},
		{5, 2, 2},
		{6, 2, 3},
		{7, 3, 0},
	}
	for _, tt := range tests {
		bi, si := sched.locate(tt.k)
		assert.Equal(t, tt.bi, bi, "k=%d bi", tt.k)
		assert.Equal(t, tt.si, si, "k=%d si", tt.k)
	}
}

func TestDoublingSchedule_BlockSize(t *testing.T) {
	sched := doublingSchedule{}
	for bi := 0; bi < 10; bi++ {
		assert.Equal(t, 1<<bi, sched.blockSize(bi))
	}
}

func TestConstantSchedule_Locate(t *testing.T) {
	sched := constantSchedule{s: 3} // block size 8
	tests := []struct {
		k      int
		bi, si int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{8, 1, 0},
		{15, 1, 7},
		{16, 2, 0},
	}
	for _, tt := range tests {
		bi, si := sched.locate(tt.k)
		assert.Equal(t, tt.bi, bi, "k=%d bi", tt.k)
		assert.Equal(t, tt.si, si, "k=%d si", tt.k)
	}
}

func TestConstantSchedule_BlockSize(t *testing.T) {
	sched := constantSchedule{s: 5}
	for bi := 0; bi < 10; bi++ {
		assert.Equal(t, 32, sched.blockSize(bi))
	}
}

// Every index 0..n-1 must round-trip through locate for both schedules:
// each k maps to a slot inside its block, and no two k share a (bi, si).
func TestSchedules_LocateRoundTrips(t *testing.T) {
	check := func(t *testing.T, sched schedule, n int) {
		t.Helper()
		seen := map[[2]int]int{}
		for k := 0; k < n; k++ {
			bi, si := sched.locate(k)
			if si >= sched.blockSize(bi) {
				t.Fatalf("k=%d: si=%d out of range for blockSize(%d)=%d", k, si, bi, sched.blockSize(bi))
			}
			key := [2]int{bi, si}
			if prev, ok := seen[key]; ok {
				t.Fatalf("k=%d and k=%d both map to (bi=%d,si=%d)", prev, k, bi, si)
			}
			seen[key] = k
		}
	}

	t.Run("doubling", func(t *testing.T) { check(t, doublingSchedule{}, 2000) })
	t.Run("constant/3", func(t *testing.T) { check(t, constantSchedule{s: 3}, 2000) })
	t.Run("constant/0", func(t *testing.T) { check(t, constantSchedule{s: 0}, 500) })
}
