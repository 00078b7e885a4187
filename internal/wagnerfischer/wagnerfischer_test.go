package wagnerfischer

import (
	"math/rand"
	"testing"

	"github.com/deepteams/leven/internal/codeunit"
)

func cutoff(a, b string) int {
	s1, s2 := codeunit.FromString(a), codeunit.FromString(b)
	if s1.Len() < s2.Len() {
		s1, s2 = s2, s1
	}
	return Cutoff(s1, s2)
}

func TestKnownPairs(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"abcde", "abc", 2},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"", "xyz", 3},
		{"日本語", "日本誤", 1},
		{"a", "", 1},
		{"a", "a", 0},
		{"a", "b", 1},
		{"ab", "ab", 0},
		{"ab", "ba", 2},
		{"ab", "a", 1},
		{"ab", "", 2},
	}
	for _, tt := range tests {
		if got := cutoff(tt.a, tt.b); got != tt.want {
			t.Errorf("cutoff(%q,%q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestAgreesWithBruteForce fuzzes short random strings against a plain
// O(n*m) reference implementation across the L0/L1/L2/banded code paths.
func TestAgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := "abc"
	randomString := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(b)
	}

	for trial := 0; trial < 300; trial++ {
		a := randomString(rng.Intn(10))
		b := randomString(rng.Intn(10))

		s1, s2 := codeunit.FromString(a), codeunit.FromString(b)
		if s1.Len() < s2.Len() {
			s1, s2 = s2, s1
		}
		got := Cutoff(s1, s2)
		want := bruteForce(s1, s2)
		if got != want {
			t.Fatalf("trial %d: Cutoff(%q,%q) = %d, want %d", trial, a, b, got, want)
		}
	}
}

func bruteForce(s1, s2 codeunit.Stream) int {
	n1, n2 := s1.Len(), s2.Len()
	prev := make([]int, n2+1)
	curr := make([]int, n2+1)
	for j := 0; j <= n2; j++ {
		prev[j] = j
	}
	for i := 1; i <= n1; i++ {
		curr[0] = i
		for j := 1; j <= n2; j++ {
			cost := 1
			if s1.At(i-1) == s2.At(j-1) {
				cost = 0
			}
			m := prev[j] + 1
			if v := curr[j-1] + 1; v < m {
				m = v
			}
			if v := prev[j-1] + cost; v < m {
				m = v
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}
	return prev[n2]
}
