// Package search implements query classification, matching strategies,
// ranking and the fallback orchestration over the dictionary store.
package search

import "strings"

// Replacement is one ordered digraph substitution, e.g. "aa" -> "å"
type Replacement struct {
	From string
	To   string
}

// DefaultReplacements returns the standard Norwegian digraph table.
// These cover the common ASCII spellings of å, ø and æ.
func DefaultReplacements() []Replacement {
	return []Replacement{
		{From: "aa", To: "å"},
		{From: "oe", To: "ø"},
		{From: "ae", To: "æ"},
	}
}

// Normalizer rewrites raw query strings into candidate strings to try.
// It is a pure value; the replacement table is fixed at construction.
type Normalizer struct {
	replacements []Replacement
}

// NewNormalizer creates a normalizer with the given replacement table.
// A nil table selects DefaultReplacements.
func NewNormalizer(replacements []Replacement) *Normalizer {
	if replacements == nil {
		replacements = DefaultReplacements()
	}
	return &Normalizer{replacements: replacements}
}

// Normalize returns the fully substituted, lower-cased form of s.
// Replacements are applied left-to-right in table order; targets are
// never re-substituted because no source digraph occurs in any target.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func (n *Normalizer) Normalize(s string) string {
	out := strings.ToLower(s)
	for _, r := range n.replacements {
		out = strings.ReplaceAll(out, r.From, r.To)
	}
	return out
}

// Variants returns the ordered candidate strings to try for a raw query:
// the original first, then the substituted variant when it differs.
// An empty input yields an empty sequence.
func (n *Normalizer) Variants(s string) []string {
	if s == "" {
		return nil
	}
	normalized := n.Normalize(s)
	if normalized == strings.ToLower(s) {
		return []string{s}
	}
	return []string{s, normalized}
}
