package search

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "hus", "hus", 1.0},
		{"case-insensitive", "HUS", "hus", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "hus", "", 0.0},
		{"one substitution", "går", "gær", 1.0 - 1.0/3.0},
		{"one insertion", "hus", "huse", 0.75},
		{"disjoint", "abc", "xyz", 0.0},
		{"digraph spelling", "gaar", "går", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"hus", "huse"},
		{"gå", "gaar"},
		{"stor", "større"},
		{"", "ord"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if !almostEqual(ab, ba) {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"hus", "huse"},
		{"a", "zzzzzzzzzz"},
		{"blåbær", "blaabaer"},
		{"x", ""},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, want value in [0,1]", p[0], p[1], got)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"hus", "huset", 2},
		{"gå", "går", 1},
	}

	for _, tt := range tests {
		if got := levenshtein([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
