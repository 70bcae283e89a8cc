package search

import (
	"sort"

	"github.com/sjursen/ordsok/internal/dict"
)

// Rank applies the uniform ordering and filtering rules to a matcher's
// output: primary score descending (stable, so each matcher's tie-break
// order survives), then word-class exclusion, then limit truncation.
// Pure function: identical inputs always yield identical output order.
func Rank(cands []Candidate, class dict.WordClass, limit int) []Candidate {
	ranked := make([]Candidate, len(cands))
	copy(ranked, cands)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if class != dict.Unknown {
		kept := ranked[:0]
		for _, c := range ranked {
			if c.Entry.Class == class {
				kept = append(kept, c)
			}
		}
		ranked = kept
	}

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
