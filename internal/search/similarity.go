package search

import "strings"

// Similarity computes the edit-distance based similarity ratio between
// two strings: 1 - dist/max(len(a), len(b)), clamped to [0,1]. Two empty
// strings are identical (1.0). Comparison is case-insensitive and
// rune-based. The result is symmetric.
//
// This is the hot path of fuzzy search: it runs once per corpus lemma,
// so the distance computation keeps only two rows of the DP matrix.
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	la, lb := len(ra), len(rb)
	if la == 0 && lb == 0 {
		return 1.0
	}
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}

	dist := levenshtein(ra, rb)
	sim := 1.0 - float64(dist)/float64(maxLen)
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// levenshtein computes the edit distance with a rolling two-row table
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
