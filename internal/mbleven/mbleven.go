// Package mbleven implements the bounded-distance "mbleven" algorithm: for a
// small threshold k in {1,2,3}, the set of edit scripts that could possibly
// produce a distance <= k is small and fixed, so each candidate script is
// simulated directly against the two strings instead of filling a DP table.
package mbleven

import "github.com/deepteams/leven/internal/codeunit"

// Script operations, packed two bits per step, lowest-order step first.
// 00 never appears mid-script; a zero byte terminates the script list for a
// (k, dlen) row.
const (
	opDelete  = 0b01 // advance s1 (the text) only.
	opInsert  = 0b10 // advance s2 (the pattern) only.
	opReplace = 0b11 // advance both.
)

// colSize is the number of candidate-script columns per (k, dlen) row; a
// row of all-zero columns past the real candidates acts as padding.
const colSize = 7

// table holds the candidate edit scripts for every (k, dlen) combination
// reachable with k in {1,2,3}. Row index = k*(k+1)/2 - 1 + dlen, following
// the layout used by the algorithm this was ported from. Each script is an
// 8-bit value; bit pairs (low to high) are ordered opDelete/opInsert/
// opReplace values, read least-significant pair first.
var table = [9][colSize]uint8{
	// k=1
	{0x03, 0, 0, 0, 0, 0, 0}, // dlen=0: "r"
	{0x01, 0, 0, 0, 0, 0, 0}, // dlen=1: "d"
	// k=2
	{0x0f, 0x06, 0x09, 0, 0, 0, 0}, // dlen=0: "rr","id","di"
	{0x07, 0x0d, 0, 0, 0, 0, 0},    // dlen=1: "rd","dr"
	{0x05, 0, 0, 0, 0, 0, 0},       // dlen=2: "dd"
	// k=3
	{0x3f, 0x36, 0x1e, 0x1b, 0x27, 0x2d, 0x39}, // dlen=0: "rrr","idr","ird","rid","rdi","dri","dir"
	{0x1f, 0x37, 0x3d, 0x16, 0x19, 0x25, 0},    // dlen=1: "rrd","rdr","drr","idd","did","ddi"
	{0x17, 0x1d, 0x35, 0, 0, 0, 0},             // dlen=2: "rdd","drd","ddr"
	{0x15, 0, 0, 0, 0, 0, 0},                   // dlen=3: "ddd"
}

// rowBase returns the table row for threshold k and length difference dlen.
func rowBase(k, dlen int) int {
	return k*(k+1)/2 - 1 + dlen
}

// Distance computes the edit distance between s1 (the text, the longer or
// equal-length string) and s2 (the pattern), given that the true distance is
// known to be <= k or the caller only cares that it exceeds k. k must be in
// {1, 2, 3}; Distance panics otherwise.
//
// Precondition (enforced by the caller, i.e. the dispatcher): s1.Len() -
// s2.Len() <= k.
func Distance(s1, s2 codeunit.Stream, k int) int {
	if k < 1 || k > 3 {
		panic("mbleven: k must be in {1, 2, 3}")
	}
	dlen := s1.Len() - s2.Len()
	row := table[rowBase(k, dlen)]

	best := k + 1
	for _, script := range row {
		if script == 0 {
			break
		}
		if cost := runScript(s1, s2, script); cost < best {
			best = cost
		}
	}
	return best
}

// runScript simulates one candidate script over s1/s2, returning its cost:
// the number of script steps consumed plus the unmatched tail left in the
// other string once one string is used up. A script that runs out while a
// mismatch remains is infeasible and costs one more than the steps consumed
// (k+1 for a full-length script); Distance's min starting at k+1 absorbs it.
func runScript(s1, s2 codeunit.Stream, script uint8) int {
	n1, n2 := s1.Len(), s2.Len()
	i, j := 0, 0
	c := 0

	for i < n1 && j < n2 {
		if s1.At(i) == s2.At(j) {
			i++
			j++
			continue
		}
		if script == 0 {
			// Script exhausted but a mismatch remains: infeasible.
			return c + 1
		}
		switch script & 0b11 {
		case opDelete:
			i++
		case opInsert:
			j++
		case opReplace:
			i++
			j++
		}
		script >>= 2
		c++
	}
	return c + (n1 - i) + (n2 - j)
}
