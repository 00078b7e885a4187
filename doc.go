// Package leven computes Levenshtein (edit) distance between strings.
//
// The entry points dispatch across three kernels chosen by pattern length
// and optional distance bound: a bit-parallel Myers 1999 DP for the general
// case (single-block for patterns up to 64 code points, block-chained
// beyond that), a bounded "mbleven" short-circuit for small thresholds, and
// a diagonally-banded Wagner-Fischer tableau kept as a reference/debug path.
// Inputs are compared as sequences of Unicode code points; no normalisation,
// case folding, or grapheme segmentation is performed.
package leven

import "errors"

// ErrOutOfMemory is returned by the Err-suffixed entry points when scratch
// allocation for a kernel's internal buffers fails.
var ErrOutOfMemory = errors.New("leven: out of memory")
