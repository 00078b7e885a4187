package pool

import (
	"sync"
	"testing"
)

func TestGetUint64_Sizes(t *testing.T) {
	for _, n := range []int{0, 1, 16, 64, 100, 256, 1024, 5000} {
		b := GetUint64(n)
		if len(b) != n {
			t.Errorf("GetUint64(%d): len = %d, want %d", n, len(b), n)
		}
		for i, v := range b {
			if v != 0 {
				t.Errorf("GetUint64(%d): b[%d] = %d, want 0", n, i, v)
			}
		}
		PutUint64(b)
	}
}

func TestGetIntRow_Sizes(t *testing.T) {
	for _, n := range []int{0, 1, 16, 64, 100, 256, 1024, 5000} {
		b := GetIntRow(n)
		if len(b) != n {
			t.Errorf("GetIntRow(%d): len = %d, want %d", n, len(b), n)
		}
		for i, v := range b {
			if v != 0 {
				t.Errorf("GetIntRow(%d): b[%d] = %d, want 0", n, i, v)
			}
		}
		PutIntRow(b)
	}
}

// TestScratchReuseZeroed checks that a buffer dirtied before Put comes back
// zeroed from a later Get, since kernels rely on GetUint64/GetIntRow never
// handing back stale data.
func TestScratchReuseZeroed(t *testing.T) {
	b := GetUint64(64)
	for i := range b {
		b[i] = ^uint64(0)
	}
	PutUint64(b)

	b2 := GetUint64(64)
	for i, v := range b2 {
		if v != 0 {
			t.Errorf("reused GetUint64(64): b2[%d] = %d, want 0", i, v)
		}
	}
	PutUint64(b2)
}

func TestScratchPut_OddCapacity(t *testing.T) {
	// A slice whose cap doesn't match any bucket's New-allocated size
	// (e.g. grown past 4096) must not be pooled; Put must not panic.
	odd := make([]uint64, 10, 5000)
	PutUint64(odd) // no matching bucket size, should be a silent no-op

	oddInt := make([]int, 10, 5000)
	PutIntRow(oddInt)
}

func TestScratchConcurrency(t *testing.T) {
	const goroutines = 16
	const iterations = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				for _, n := range []int{8, 64, 256, 1024} {
					u := GetUint64(n)
					for j := range u {
						u[j] = uint64(j)
					}
					PutUint64(u)

					r := GetIntRow(n)
					for j := range r {
						r[j] = j
					}
					PutIntRow(r)
				}
			}
		}()
	}
	wg.Wait()
}
