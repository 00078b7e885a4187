// Package myers implements the bit-parallel dynamic-programming algorithm
// from G. Myers, "A fast bit-vector algorithm for approximate string
// matching based on dynamic programming" (JACM, 1999), in both its
// single-block form (pattern <= 64 code points) and its block-chained form
// for longer patterns.
package myers

import (
	"github.com/deepteams/leven/internal/codeunit"
	"github.com/deepteams/leven/internal/peqmap"
)

// Simple computes the edit distance between s1 (the text) and s2 (the
// pattern) using the single-block Myers kernel. Precondition: 1 <= s2.Len()
// <= 64 and s1.Len() >= s2.Len() (the dispatcher's swap-on-entry invariant).
func Simple(s1, s2 codeunit.Stream) int {
	vlen := s2.Len()
	tbl := peqmap.Build(s2, 0, vlen)
	return simpleLoop(s1, vlen, func(c rune) uint64 { return tbl.Lookup(c) })
}

// SimpleAscii is Simple specialised for two width-1 streams: it builds the
// dense 256-entry table and indexes s1 as raw bytes, skipping the rune
// conversion on both the setup and the inner-loop read.
func SimpleAscii(s1, s2 codeunit.Stream) int {
	vlen := s2.Len()
	tbl := peqmap.BuildAscii(s2, 0, vlen)

	last := uint64(1) << uint(vlen-1)
	pv, mv := ^uint64(0), uint64(0)
	score := vlen

	n := s1.Len()
	for i := 0; i < n; i++ {
		eq := tbl.Lookup(s1.AsciiByte(i))

		xv := eq | mv
		xh := (((eq & pv) + pv) ^ pv) | eq

		ph := mv | ^(xh | pv)
		mh := pv & xh

		if ph&last != 0 {
			score++
		}
		if mh&last != 0 {
			score--
		}

		ph = (ph << 1) | 1
		mh = mh << 1

		pv = mh | ^(xv | ph)
		mv = ph & xv
	}
	return score
}

// simpleLoop runs the single-block Myers inner loop against s1, reading
// equality masks through lookup. Used by Simple; the ASCII fast path in
// SimpleAscii inlines its own copy to avoid the lookup closure in the
// hottest path.
func simpleLoop(s1 codeunit.Stream, vlen int, lookup func(rune) uint64) int {
	last := uint64(1) << uint(vlen-1)
	pv, mv := ^uint64(0), uint64(0)
	score := vlen

	n := s1.Len()
	for i := 0; i < n; i++ {
		eq := lookup(s1.At(i))

		xv := eq | mv
		xh := (((eq & pv) + pv) ^ pv) | eq

		ph := mv | ^(xh | pv)
		mh := pv & xh

		if ph&last != 0 {
			score++
		}
		if mh&last != 0 {
			score--
		}

		ph = (ph << 1) | 1
		mh = mh << 1

		pv = mh | ^(xv | ph)
		mv = ph & xv
	}
	return score
}
