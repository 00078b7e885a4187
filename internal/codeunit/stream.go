// Package codeunit provides a zero-copy view over a string's code points,
// independent of how the caller originally encoded it (UTF-8 bytes, runes,
// or raw 32-bit code points). It mirrors the (width, buffer, length) triple
// the core's original host binding read directly out of a Python unicode
// object's internal PEP 393 storage.
package codeunit

import "unicode/utf8"

// Stream is an immutable, indexed view over a sequence of code points.
// The zero value is not useful; construct one with the From* functions.
type Stream struct {
	raw    string  // Width == 1: raw UTF-8 bytes, ASCII-only.
	runes  []rune  // Width == 4, rune-backed.
	points []int32 // Width == 4, int32-backed.
	width  int     // 1 (ASCII bytes) or 4 (runes/int32s).
	n      int      // length in code points.
}

// Width reports the code-unit width backing the stream: 1 for ASCII bytes,
// 4 for the general rune/int32 paths. A width of 1 is a necessary (not
// sufficient — callers must check both streams) precondition for the
// dispatcher's ASCII fast path.
func (s Stream) Width() int { return s.width }

// Len reports the length of the stream in code points.
func (s Stream) Len() int { return s.n }

// At returns the code point at index i. i must be in [0, Len()).
func (s Stream) At(i int) rune {
	switch {
	case s.raw != "":
		return rune(s.raw[i])
	case s.runes != nil:
		return s.runes[i]
	default:
		return rune(s.points[i])
	}
}

// AsciiByte returns the raw byte at index i without the rune conversion
// `At` performs. Only valid when Width() == 1; used by the ASCII-specialised
// Myers kernel to avoid a function-call-per-read.
func (s Stream) AsciiByte(i int) byte { return s.raw[i] }

// FromString builds a Stream over a UTF-8 string. Pure-ASCII strings get the
// width-1 fast path; anything else is decoded once into a rune slice.
func FromString(s string) Stream {
	if isASCII(s) {
		return Stream{raw: s, width: 1, n: len(s)}
	}
	runes := []rune(s)
	return Stream{runes: runes, width: 4, n: len(runes)}
}

// FromBytes builds a Stream over UTF-8-encoded bytes. The bytes are copied
// into a string; non-ASCII content is then decoded as FromString does.
func FromBytes(b []byte) Stream {
	if isASCIIBytes(b) {
		return Stream{raw: string(b), width: 1, n: len(b)}
	}
	return FromString(string(b))
}

// FromRunes builds a Stream directly over a rune slice, skipping UTF-8
// decoding entirely. The slice is retained, not copied; callers must not
// mutate it while the Stream is in use.
func FromRunes(r []rune) Stream {
	return Stream{runes: r, width: 4, n: len(r)}
}

// FromInt32s builds a Stream over raw 32-bit code points, the width-4 path
// an embedder would use when it already stores text outside Go's string
// type (e.g. a column of a columnar data format).
func FromInt32s(p []int32) Stream {
	return Stream{points: p, width: 4, n: len(p)}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIIBytes(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
