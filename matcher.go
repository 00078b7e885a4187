package leven

import (
	"github.com/deepteams/leven/internal/codeunit"
	"github.com/deepteams/leven/internal/mbleven"
	"github.com/deepteams/leven/internal/myers"
	"github.com/deepteams/leven/internal/peqmap"
)

// Matcher amortises pattern-side setup across many distance computations
// against the same pattern, the way a compiled regexp amortises parsing
// across many Match calls. Building a BlockMap is O(len(pattern)); reusing
// it turns repeated DistanceBytes-against-the-same-pattern calls from
// O(len(pattern)) setup per call into a one-time cost.
type Matcher struct {
	pattern codeunit.Stream
	bm      *peqmap.BlockMap // built in NewMatcher, only when len(pattern) > 64.
}

// NewMatcher builds a Matcher for pattern. The pattern's block map (used
// only when the dispatcher would route to myers.Block for this pattern
// length) is built once, here, rather than on every Distance call.
func NewMatcher(pattern string) *Matcher {
	p := codeunit.FromString(pattern)
	m := &Matcher{pattern: p}
	if p.Len() > 64 {
		m.bm = peqmap.BuildBlocks(p)
	}
	return m
}

// Distance returns the unbounded edit distance between the Matcher's
// pattern and text.
func (m *Matcher) Distance(text string) int {
	return m.DistanceBound(text, unbounded)
}

// DistanceBound returns the edit distance between the Matcher's pattern and
// text, bounded by k exactly as DistanceBound does for the package-level
// function. Routing that would use mbleven or single-block Myers calls those
// kernels directly; only the block-chained Myers path uses the cached map.
func (m *Matcher) DistanceBound(text string, k int) int {
	t := codeunit.FromString(text)
	s1, s2 := t, m.pattern
	swapped := false
	if s1.Len() < s2.Len() {
		s1, s2 = s2, s1
		swapped = true
	}
	if k < 0 {
		k = unbounded
	}

	if k == 0 {
		if streamsEqual(s1, s2) {
			return 0
		}
		return 1
	}

	dlen := s1.Len() - s2.Len()
	if k > 0 && k < dlen {
		return k + 1
	}
	if s2.Len() == 0 {
		return s1.Len()
	}

	var result int
	switch {
	case k > 0 && k <= 3:
		result = mbleven.Distance(s1, s2, k)
	case s2.Len() <= 64:
		if s1.Width() == 1 && s2.Width() == 1 {
			result = myers.SimpleAscii(s1, s2)
		} else {
			result = myers.Simple(s1, s2)
		}
	case !swapped && m.bm != nil:
		// The pattern (m.pattern) ended up as s2, the shorter stream, and
		// its cached block map applies directly — the amortised path this
		// type exists for.
		result = myers.BlockWithMap(s1, m.bm)
	default:
		// The pattern ended up as s1 (text shorter than pattern), so the
		// cached map does not describe s2; build one fresh, the same cost
		// myers.Block itself would pay.
		result = myers.Block(s1, s2)
	}

	if k > 0 && result > k {
		return k + 1
	}
	return result
}

// Within reports whether the edit distance between the Matcher's pattern
// and text is at most k.
func (m *Matcher) Within(text string, k int) bool {
	return m.DistanceBound(text, k) <= k
}
