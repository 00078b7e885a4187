// Package pool provides bucketed sync.Pool instances for the scratch buffers
// the edit-distance kernels allocate per call: the Myers block kernel's
// Phc/Mhc horizontal-carry bitmaps, and the Wagner-Fischer DP row. Buffers
// are organized by element-count size class to bound the waste from
// over-sized reuse, the same tradeoff a byte-oriented buffer pool makes by
// size class instead of exact length.
package pool

import "sync"

// uint64Pools and intPools are bucketed by element count rather than byte
// size, since every caller here (Phc/Mhc, the Wagner-Fischer row) thinks in
// uint64s/ints, not bytes.
var (
	uint64Sizes = [...]int{16, 64, 256, 1024, 4096}
	uint64Pools [len(uint64Sizes)]sync.Pool

	intSizes = [...]int{16, 64, 256, 1024, 4096}
	intPools [len(intSizes)]sync.Pool
)

func init() {
	for i, n := range uint64Sizes {
		n := n
		uint64Pools[i] = sync.Pool{New: func() any {
			b := make([]uint64, n)
			return &b
		}}
	}
	for i, n := range intSizes {
		n := n
		intPools[i] = sync.Pool{New: func() any {
			b := make([]int, n)
			return &b
		}}
	}
}

func bucketFor(sizes []int, n int) int {
	for i, s := range sizes {
		if n <= s {
			return i
		}
	}
	return -1
}

// GetUint64 returns a []uint64 of length n, zeroed, reused from a bucketed
// pool when n fits a bucket, freshly allocated otherwise.
func GetUint64(n int) []uint64 {
	idx := bucketFor(uint64Sizes[:], n)
	if idx < 0 {
		return make([]uint64, n)
	}
	bp := uint64Pools[idx].Get().(*[]uint64)
	b := *bp
	if cap(b) < n {
		b = make([]uint64, uint64Sizes[idx])
	}
	b = b[:n]
	for i := range b {
		b[i] = 0
	}
	return b
}

// PutUint64 returns a slice obtained from GetUint64 to its pool.
func PutUint64(b []uint64) {
	idx := bucketFor(uint64Sizes[:], cap(b))
	if idx < 0 || cap(b) != uint64Sizes[idx] {
		return
	}
	b = b[:cap(b)]
	uint64Pools[idx].Put(&b)
}

// GetIntRow returns an []int of length n, zeroed, for use as the
// Wagner-Fischer DP row.
func GetIntRow(n int) []int {
	idx := bucketFor(intSizes[:], n)
	if idx < 0 {
		return make([]int, n)
	}
	bp := intPools[idx].Get().(*[]int)
	b := *bp
	if cap(b) < n {
		b = make([]int, intSizes[idx])
	}
	b = b[:n]
	for i := range b {
		b[i] = 0
	}
	return b
}

// PutIntRow returns a slice obtained from GetIntRow to its pool.
func PutIntRow(b []int) {
	idx := bucketFor(intSizes[:], cap(b))
	if idx < 0 || cap(b) != intSizes[idx] {
		return
	}
	b = b[:cap(b)]
	intPools[idx].Put(&b)
}
