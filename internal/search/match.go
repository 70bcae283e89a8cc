package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sjursen/ordsok/internal/dict"
)

// Lookup is the read-only data access the matchers need. The SQLite
// store implements it; tests inject an in-memory fake.
type Lookup interface {
	FindExact(term string) ([]dict.Entry, error)
	FindByPrefix(term string) ([]dict.Entry, error)
	FindContainingLemma(term string) ([]dict.Entry, error)
	FindFullText(term string) ([]dict.Entry, error)
	FindExpressions(term string) ([]dict.Entry, error)
	AllLemmas() ([]dict.LemmaRef, error)
	Get(id int64) (dict.Entry, error)
}

// Candidate is a scored match produced by one of the matchers
type Candidate struct {
	Entry      dict.Entry
	Expression *dict.Expression // Set for expression-level matches only
	Score      float64
	Mode       Mode
}

// Summary returns the one-line menu description for the candidate
func (c Candidate) Summary() string {
	if c.Expression != nil {
		return fmt.Sprintf("%s (under %s)", c.Expression.Phrase, c.Entry.Lemma)
	}
	return c.Entry.Summary()
}

// match dispatches the query to its mode's matcher. Empty results are
// normal control flow, never an error.
func match(q Query, lk Lookup) ([]Candidate, error) {
	switch q.Mode {
	case ModeExact:
		return matchExact(q.Term, lk)
	case ModePrefix:
		return matchPrefix(q.Term, lk)
	case ModeAnywhere:
		return matchAnywhere(q.Term, lk)
	case ModeFullText:
		return matchFullText(q.Term, lk)
	case ModeFuzzy:
		return matchFuzzy(q.Term, q.Threshold, lk)
	case ModeExpression:
		return matchExpressions(q.Term, lk)
	default:
		return nil, fmt.Errorf("no matcher for mode %q", q.Mode)
	}
}

// matchExact returns entries whose lemma equals term case-insensitively,
// all scored 1.0. It never retries; fallback is the orchestrator's job.
func matchExact(term string, lk Lookup) ([]Candidate, error) {
	entries, err := lk.FindExact(term)
	if err != nil {
		return nil, err
	}
	cands := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		cands = append(cands, Candidate{Entry: e, Score: 1.0, Mode: ModeExact})
	}
	sortByLemma(cands)
	return cands, nil
}

// matchPrefix scores by term length over lemma length, favoring lemmas
// close in length to the term
func matchPrefix(term string, lk Lookup) ([]Candidate, error) {
	entries, err := lk.FindByPrefix(term)
	if err != nil {
		return nil, err
	}
	termLen := len([]rune(term))
	cands := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		lemmaLen := len([]rune(e.Lemma))
		if lemmaLen == 0 {
			continue
		}
		cands = append(cands, Candidate{
			Entry: e,
			Score: float64(termLen) / float64(lemmaLen),
			Mode:  ModePrefix,
		})
	}
	sortByLemma(cands)
	return cands, nil
}

// matchAnywhere scores by the position of the first occurrence: earlier
// occurrences score higher
func matchAnywhere(term string, lk Lookup) ([]Candidate, error) {
	entries, err := lk.FindContainingLemma(term)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(term)
	cands := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		pos := runeIndex(strings.ToLower(e.Lemma), lower)
		if pos < 0 {
			continue
		}
		cands = append(cands, Candidate{
			Entry: e,
			Score: 1.0 / float64(1+pos),
			Mode:  ModeAnywhere,
		})
	}
	sortByLemma(cands)
	return cands, nil
}

// matchFullText scores by total occurrence count across lemma,
// definitions, examples, etymology and expression text
func matchFullText(term string, lk Lookup) ([]Candidate, error) {
	entries, err := lk.FindFullText(term)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(term)
	cands := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		count := occurrences(e, lower)
		if count == 0 {
			continue
		}
		cands = append(cands, Candidate{
			Entry: e,
			Score: float64(count),
			Mode:  ModeFullText,
		})
	}
	sortByLemma(cands)
	return cands, nil
}

// matchFuzzy scans every corpus lemma and keeps those at or above the
// similarity threshold. A sound length pre-filter skips lemmas whose
// length difference alone already puts them below the threshold, so
// most of the corpus is never scored.
func matchFuzzy(term string, threshold float64, lk Lookup) ([]Candidate, error) {
	refs, err := lk.AllLemmas()
	if err != nil {
		return nil, err
	}

	termLen := len([]rune(term))
	type hit struct {
		ref   dict.LemmaRef
		score float64
	}
	var hits []hit
	for _, ref := range refs {
		lemmaLen := len([]rune(ref.Lemma))
		maxLen := termLen
		if lemmaLen > maxLen {
			maxLen = lemmaLen
		}
		// dist >= |len(a)-len(b)|, so this skip loses no true matches
		diff := termLen - lemmaLen
		if diff < 0 {
			diff = -diff
		}
		if maxLen > 0 && 1.0-float64(diff)/float64(maxLen) < threshold {
			continue
		}

		score := Similarity(term, ref.Lemma)
		if score >= threshold {
			hits = append(hits, hit{ref: ref, score: score})
		}
	}

	// Ties broken by lemma length ascending, then alphabetically
	sort.SliceStable(hits, func(i, j int) bool {
		li, lj := len([]rune(hits[i].ref.Lemma)), len([]rune(hits[j].ref.Lemma))
		if li != lj {
			return li < lj
		}
		if hits[i].ref.Lemma != hits[j].ref.Lemma {
			return hits[i].ref.Lemma < hits[j].ref.Lemma
		}
		return hits[i].ref.ID < hits[j].ref.ID
	})

	cands := make([]Candidate, 0, len(hits))
	for _, h := range hits {
		entry, err := lk.Get(h.ref.ID)
		if err != nil {
			return nil, err
		}
		cands = append(cands, Candidate{Entry: entry, Score: h.score, Mode: ModeFuzzy})
	}
	return cands, nil
}

// matchExpressions returns expression-level matches: the owning entry
// plus the specific expression whose phrase contains the term
func matchExpressions(term string, lk Lookup) ([]Candidate, error) {
	entries, err := lk.FindExpressions(term)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(term)
	var cands []Candidate
	for _, e := range entries {
		for i := range e.Expressions {
			expr := e.Expressions[i]
			pos := runeIndex(strings.ToLower(expr.Phrase), lower)
			if pos < 0 {
				continue
			}
			cands = append(cands, Candidate{
				Entry:      e,
				Expression: &expr,
				Score:      1.0 / float64(1+pos),
				Mode:       ModeExpression,
			})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Expression.Phrase != cands[j].Expression.Phrase {
			return cands[i].Expression.Phrase < cands[j].Expression.Phrase
		}
		return cands[i].Entry.ID < cands[j].Entry.ID
	})
	return cands, nil
}

// occurrences counts case-insensitive occurrences of term across all
// text fields of an entry
func occurrences(e dict.Entry, lowerTerm string) int {
	count := strings.Count(strings.ToLower(e.Lemma), lowerTerm)
	count += strings.Count(strings.ToLower(e.Etymology), lowerTerm)
	for _, d := range e.Definitions {
		count += definitionOccurrences(d, lowerTerm)
	}
	for _, expr := range e.Expressions {
		count += strings.Count(strings.ToLower(expr.Phrase), lowerTerm)
		for _, d := range expr.Definitions {
			count += definitionOccurrences(d, lowerTerm)
		}
	}
	return count
}

func definitionOccurrences(d dict.Definition, lowerTerm string) int {
	count := strings.Count(strings.ToLower(d.Content), lowerTerm)
	for _, ex := range d.Examples {
		count += strings.Count(strings.ToLower(ex.Quote), lowerTerm)
		count += strings.Count(strings.ToLower(ex.Explanation), lowerTerm)
	}
	for _, sub := range d.Subs {
		count += definitionOccurrences(sub, lowerTerm)
	}
	return count
}

// runeIndex returns the rune position of the first occurrence of sub in
// s, or -1
func runeIndex(s, sub string) int {
	byteIdx := strings.Index(s, sub)
	if byteIdx < 0 {
		return -1
	}
	return len([]rune(s[:byteIdx]))
}

// sortByLemma orders candidates alphabetically by lemma, then by id,
// giving every matcher a stable, reproducible base order before ranking
func sortByLemma(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Entry.Lemma != cands[j].Entry.Lemma {
			return cands[i].Entry.Lemma < cands[j].Entry.Lemma
		}
		return cands[i].Entry.ID < cands[j].Entry.ID
	})
}
