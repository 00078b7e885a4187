package myers

import (
	"github.com/deepteams/leven/internal/codeunit"
	"github.com/deepteams/leven/internal/peqmap"
	"github.com/deepteams/leven/internal/pool"
)

// Block computes the edit distance between s1 (the text) and s2 (the
// pattern) using Myers' block-chained kernel (JACM 1999, section 4.2:
// "the blocks model"). Precondition: s2.Len() > 64 and s1.Len() >= s2.Len().
//
// The horizontal delta that would otherwise require an extra 64-row DP pass
// between blocks is carried forward as two per-text-column bitmaps, Phc and
// Mhc: bit i of Phc/Mhc holds the +1/-1 delta flowing into text column i at
// the top of the current block, i.e. the delta leaving the previous block's
// bottom row for that same column.
func Block(s1, s2 codeunit.Stream) int {
	bm := peqmap.BuildBlocks(s2)
	return BlockWithMap(s1, bm)
}

// BlockWithMap runs the same kernel as Block against a BlockMap the caller
// already built (and may reuse across calls against the same pattern), the
// way Matcher avoids rebuilding a long pattern's block map on every call.
func BlockWithMap(s1 codeunit.Stream, bm *peqmap.BlockMap) int {
	n1 := s1.Len()
	hsize := (n1 + 63) / 64

	phc := pool.GetUint64(hsize)
	mhc := pool.GetUint64(hsize)
	defer pool.PutUint64(phc)
	defer pool.PutUint64(mhc)
	for i := range phc {
		phc[i] = ^uint64(0)
	}
	// mhc is already zeroed by GetUint64.

	n2 := 0
	for _, v := range bm.VLen {
		n2 += v
	}

	score := 0
	for b := range bm.Blocks {
		tbl := &bm.Blocks[b]
		vlen := bm.VLen[b]
		last := uint64(1) << uint(vlen-1)

		pv, mv := ^uint64(0), uint64(0)
		score = n2

		for i := 0; i < n1; i++ {
			word, bit := i/64, uint(i%64)

			eq := tbl.Lookup(s1.At(i))
			pb := (phc[word] >> bit) & 1
			mb := (mhc[word] >> bit) & 1

			xv := eq | mv
			xh := (((eq|mb) & pv) + pv) ^ pv | eq | mb

			ph := mv | ^(xh | pv)
			mh := pv & xh

			if ph&last != 0 {
				score++
			}
			if mh&last != 0 {
				score--
			}

			if (ph>>63)^pb != 0 {
				phc[word] ^= uint64(1) << bit
			}
			if (mh>>63)^mb != 0 {
				mhc[word] ^= uint64(1) << bit
			}

			ph = (ph << 1) | pb
			mh = (mh << 1) | mb

			pv = mh | ^(xv | ph)
			mv = ph & xv
		}
	}
	return score
}
