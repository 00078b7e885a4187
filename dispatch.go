package leven

import (
	"github.com/deepteams/leven/internal/codeunit"
	"github.com/deepteams/leven/internal/mbleven"
	"github.com/deepteams/leven/internal/myers"
)

// unbounded is the internal sentinel meaning "compute the true distance",
// used wherever a caller passes a negative bound.
const unbounded = -1

// distance is the shared dispatcher behind every public entry point. s1 and
// s2 need not be pre-ordered by length; distance normalises that itself.
func distance(s1, s2 codeunit.Stream, k int) int {
	if s1.Len() < s2.Len() {
		s1, s2 = s2, s1
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
	case s1.Width() == 1 && s2.Width() == 1 && s2.Len() <= 64:
		result = myers.SimpleAscii(s1, s2)
	case s2.Len() <= 64:
		result = myers.Simple(s1, s2)
	default:
		result = myers.Block(s1, s2)
	}

	if k > 0 && result > k {
		return k + 1
	}
	return result
}

func streamsEqual(s1, s2 codeunit.Stream) bool {
	if s1.Len() != s2.Len() {
		return false
	}
	for i := 0; i < s1.Len(); i++ {
		if s1.At(i) != s2.At(i) {
			return false
		}
	}
	return true
}
