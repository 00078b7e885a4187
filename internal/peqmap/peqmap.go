// Package peqmap builds the "equality vector" tables the Myers 1999
// bit-parallel kernels read from: for a pattern window of up to 64 code
// points, a mapping from code point to a 64-bit mask whose bit i is set iff
// the code point occurs at window position i.
//
// Two representations exist. ASCII text uses a dense 256-entry array
// (one slot per byte value). General Unicode text uses an open-addressed
// 128-slot table: the same "fixed-size array, modular hash, no resize, no
// deletion" shape as an image decoder's pixel color cache, applied here to
// code points instead of ARGB pixel values.
package peqmap

import "github.com/deepteams/leven/internal/codeunit"

// slots is the number of buckets in the open-addressed table. A pattern
// window holds at most 64 code points, so 128 slots guarantee a free bucket
// is always found under linear probing without ever needing a resize.
const slots = 128

// emptyTag marks an occupied slot; code point 0 is stored with this bit set
// so that a zero key unambiguously means "empty".
const emptyTag = uint32(1) << 31

// Table is the Unicode (open-addressed) equality-vector table for one
// pattern window of at most 64 code points.
type Table struct {
	key [slots]uint32
	val [slots]uint64
}

// Ascii is the dense equality-vector table for an ASCII-only pattern
// window.
type Ascii struct {
	val [256]uint64
}

// Lookup returns the equality mask for code point c, or 0 if c does not
// appear in the window this table was built from.
func (t *Table) Lookup(c rune) uint64 {
	h := uint32(c) % slots
	key := uint32(c) | emptyTag
	for {
		k := t.key[h]
		if k == key {
			return t.val[h]
		}
		if k == 0 {
			return 0
		}
		h = (h + 1) % slots
	}
}

// insert ORs bit into the mask stored for code point c, probing linearly
// from c mod slots until it finds c's slot or an empty one.
func (t *Table) insert(c rune, bit uint64) {
	h := uint32(c) % slots
	key := uint32(c) | emptyTag
	for {
		k := t.key[h]
		if k == key {
			t.val[h] |= bit
			return
		}
		if k == 0 {
			t.key[h] = key
			t.val[h] = bit
			return
		}
		h = (h + 1) % slots
	}
}

// Lookup returns the equality mask for byte c.
func (a *Ascii) Lookup(c byte) uint64 { return a.val[c] }

// BuildAscii constructs the dense table for the window s[start:start+vlen].
// vlen must be in [1, 64].
func BuildAscii(s codeunit.Stream, start, vlen int) *Ascii {
	a := &Ascii{}
	for j := 0; j < vlen; j++ {
		a.val[s.AsciiByte(start+j)] |= 1 << uint(j)
	}
	return a
}

// Build constructs the open-addressed table for the window
// s[start:start+vlen]. vlen must be in [1, 64].
func Build(s codeunit.Stream, start, vlen int) *Table {
	t := &Table{}
	for j := 0; j < vlen; j++ {
		t.insert(s.At(start+j), 1<<uint(j))
	}
	return t
}

// BlockMap holds one Table per 64-code-point block of a pattern longer than
// a single machine word. Entries are built once per call (or once per
// Matcher) and never mutated afterwards.
type BlockMap struct {
	Blocks []Table
	// VLen is the window length (<=64) of each block; the last block may be
	// shorter than 64.
	VLen []int
}

// BuildBlocks decomposes s into ceil(len(s)/64) blocks and constructs one
// Table per block.
func BuildBlocks(s codeunit.Stream) *BlockMap {
	n := s.Len()
	nb := (n + 63) / 64
	bm := &BlockMap{
		Blocks: make([]Table, nb),
		VLen:   make([]int, nb),
	}
	for b := 0; b < nb; b++ {
		start := b * 64
		vlen := n - start
		if vlen > 64 {
			vlen = 64
		}
		bm.VLen[b] = vlen
		for j := 0; j < vlen; j++ {
			bm.Blocks[b].insert(s.At(start+j), 1<<uint(j))
		}
	}
	return bm
}
