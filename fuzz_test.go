package leven

import "testing"

// addSeeds adds a handful of representative string pairs to the fuzz
// corpus: empty strings, short ASCII pairs, and multi-byte UTF-8. None of
// the seeds reaches the 64-code-point block boundary.
func addSeeds(f *testing.F) {
	f.Helper()
	seeds := [][2]string{
		{"", ""},
		{"a", ""},
		{"kitten", "sitting"},
		{"日本語", "日本誤"},
		{"abcdef", "zzzzzz"},
		{"a", "a"},
	}
	for _, s := range seeds {
		f.Add(s[0], s[1])
	}
}

// FuzzDistance checks properties that must hold for arbitrary input, not
// just the hand-picked seed corpus: non-negativity/bound and symmetry, the
// two invariants cheap enough to check on every fuzz input without a
// second reference implementation.
func FuzzDistance(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, a, b string) {
		d := Distance(a, b)
		if d < 0 {
			t.Fatalf("Distance(%q,%q) = %d, want >= 0", a, b, d)
		}
		maxLen := len([]rune(a))
		if l := len([]rune(b)); l > maxLen {
			maxLen = l
		}
		if d > maxLen {
			t.Fatalf("Distance(%q,%q) = %d, want <= %d", a, b, d, maxLen)
		}
		if got, want := Distance(b, a), d; got != want {
			t.Fatalf("Distance(%q,%q) = %d, Distance(%q,%q) = %d, want equal", b, a, got, a, b, want)
		}
	})
}

// FuzzDistanceBound checks threshold consistency (invariant 6) against the
// unbounded result for arbitrary input and a small fixed set of bounds.
func FuzzDistanceBound(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, a, b string) {
		true_ := Distance(a, b)
		for _, k := range []int{0, 1, 2, 3, 5} {
			got := DistanceBound(a, b, k)
			if true_ <= k {
				if got != true_ {
					t.Fatalf("DistanceBound(%q,%q,%d) = %d, want %d", a, b, k, got, true_)
				}
			} else if got <= k {
				t.Fatalf("DistanceBound(%q,%q,%d) = %d, want > %d", a, b, k, got, k)
			}
		}
	})
}
