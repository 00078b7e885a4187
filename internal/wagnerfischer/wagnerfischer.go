// Package wagnerfischer implements the classic Wagner-Fischer edit-distance
// DP, with a diagonal cutoff band for the general case and hand-tuned paths
// for pattern lengths 0, 1, and 2 (where the cutoff's band math degenerates).
package wagnerfischer

import (
	"github.com/deepteams/leven/internal/codeunit"
	"github.com/deepteams/leven/internal/pool"
)

// Cutoff computes the edit distance between s1 (the text) and s2 (the
// pattern). Precondition: s1.Len() >= s2.Len() (the dispatcher's
// swap-on-entry invariant). The result is only correct under this ordering:
// for example the single-code-point path returns 0 for an empty s1.
func Cutoff(s1, s2 codeunit.Stream) int {
	n2 := s2.Len()
	switch {
	case n2 == 0:
		return s1.Len()
	case n2 == 1:
		return l1(s1, s2)
	case n2 == 2:
		return l2(s1, s2)
	default:
		return cutoffBand(s1, s2)
	}
}

// l1 handles the single-code-point pattern: the distance is len(s1) minus
// one if that code point occurs anywhere in s1.
func l1(s1, s2 codeunit.Stream) int {
	c0 := s2.At(0)
	for i := 0; i < s1.Len(); i++ {
		if s1.At(i) == c0 {
			return s1.Len() - 1
		}
	}
	return s1.Len()
}

// l2 handles the two-code-point pattern by searching for each character in
// order, mirroring the greedy two-character Wagner-Fischer special case.
func l2(s1, s2 codeunit.Stream) int {
	n1 := s1.Len()
	c0, c1 := s2.At(0), s2.At(1)

	i0 := find(s1, c0, 0)
	if i0 == -1 || i0 == n1-1 {
		i1 := find(s1, c1, 1)
		if i1 == -1 {
			return n1
		}
		return n1 - 1
	}
	i1 := find(s1, c1, i0+1)
	if i1 == -1 {
		return n1 - 1
	}
	return n1 - 2
}

func find(s codeunit.Stream, c rune, start int) int {
	for i := start; i < s.Len(); i++ {
		if s.At(i) == c {
			return i
		}
	}
	return -1
}

// cutoffBand runs the banded DP for s2.Len() >= 3: cells more than
// (len(s2)-1)/2 columns right of the main diagonal, or more than that plus
// len(s1)-len(s2) columns left of it, can never lie on an optimal edit path,
// so they are skipped rather than filled with a fictitious infinity.
//
//	        x y z
//	      0 1
//	    a 1 1 2
//	    b 2 2 2 3
//	    c   3 3 3
//	    d     4 4
//
// (example band for s1="abcd", s2="xyz")
func cutoffBand(s1, s2 codeunit.Stream) int {
	n1, n2 := s1.Len(), s2.Len()
	rpad := (n2 - 1) / 2
	lpad := rpad + (n1 - n2)

	arr := pool.GetIntRow(n2 + 1)
	defer pool.PutIntRow(arr)

	for j := 0; j <= rpad; j++ {
		arr[j] = j
	}

	var dia, left, top int
	for i := 1; i <= n1; i++ {
		arr[0] = i - 1
		c := s1.At(i - 1)

		start := i - lpad
		if start < 1 {
			start = 1
		}
		dia = arr[start-1]
		top = arr[start]

		if c != s2.At(start-1) {
			if top < dia {
				dia = top
			}
			dia++
		}
		arr[start] = dia
		left = dia
		dia = top

		end := i + rpad - 1
		if n2 < i+rpad {
			end = n2
		}

		for j := start + 1; j <= end; j++ {
			top = arr[j]
			if c != s2.At(j-1) {
				if top < dia {
					dia = top
				}
				if left < dia {
					dia = left
				}
				dia++
			}
			arr[j] = dia
			left = dia
			dia = top
		}

		if n2 < i+rpad {
			continue
		}
		if c != s2.At(end) {
			if left < dia {
				dia = left
			}
			dia++
		}
		arr[end+1] = dia
	}
	return arr[n2]
}
