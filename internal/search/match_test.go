package search

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sjursen/ordsok/internal/dict"
)

// fakeLookup serves a small in-memory corpus. Its filtering mirrors the
// store's contract: case-insensitive comparison on lemmas and text.
type fakeLookup struct {
	entries []dict.Entry
	err     error // returned by every method when set
}

func (f *fakeLookup) filter(keep func(dict.Entry) bool) ([]dict.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []dict.Entry
	for _, e := range f.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLookup) FindExact(term string) ([]dict.Entry, error) {
	return f.filter(func(e dict.Entry) bool {
		return strings.EqualFold(e.Lemma, term)
	})
}

func (f *fakeLookup) FindByPrefix(term string) ([]dict.Entry, error) {
	lower := strings.ToLower(term)
	return f.filter(func(e dict.Entry) bool {
		return strings.HasPrefix(strings.ToLower(e.Lemma), lower)
	})
}

func (f *fakeLookup) FindContainingLemma(term string) ([]dict.Entry, error) {
	lower := strings.ToLower(term)
	return f.filter(func(e dict.Entry) bool {
		return strings.Contains(strings.ToLower(e.Lemma), lower)
	})
}

func (f *fakeLookup) FindFullText(term string) ([]dict.Entry, error) {
	lower := strings.ToLower(term)
	return f.filter(func(e dict.Entry) bool {
		return occurrences(e, lower) > 0
	})
}

func (f *fakeLookup) FindExpressions(term string) ([]dict.Entry, error) {
	lower := strings.ToLower(term)
	return f.filter(func(e dict.Entry) bool {
		for _, expr := range e.Expressions {
			if strings.Contains(strings.ToLower(expr.Phrase), lower) {
				return true
			}
		}
		return false
	})
}

func (f *fakeLookup) AllLemmas() ([]dict.LemmaRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	refs := make([]dict.LemmaRef, 0, len(f.entries))
	for _, e := range f.entries {
		refs = append(refs, dict.LemmaRef{ID: e.ID, Lemma: e.Lemma})
	}
	return refs, nil
}

func (f *fakeLookup) Get(id int64) (dict.Entry, error) {
	if f.err != nil {
		return dict.Entry{}, f.err
	}
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return dict.Entry{}, fmt.Errorf("entry %d not found", id)
}

func testCorpus() *fakeLookup {
	return &fakeLookup{entries: []dict.Entry{
		{
			ID: 1, Lemma: "hus", Class: dict.Noun, Gender: "n",
			Definitions: []dict.Definition{{
				Content:  "bygning med vegger og tak",
				Examples: []dict.Example{{Quote: "et gammelt hus"}},
			}},
			Expressions: []dict.Expression{{
				Phrase:      "fullt hus",
				Definitions: []dict.Definition{{Content: "utsolgt forestilling"}},
			}},
		},
		{
			ID: 2, Lemma: "huse", Class: dict.Verb,
			Definitions: []dict.Definition{{Content: "gi husrom til"}},
		},
		{
			ID: 3, Lemma: "sjøhus", Class: dict.Noun, Gender: "n",
			Definitions: []dict.Definition{{Content: "bygning ved sjøen"}},
		},
		{
			ID: 4, Lemma: "gå", Class: dict.Verb,
			Definitions: []dict.Definition{{Content: "bevege seg til fots"}},
			Expressions: []dict.Expression{{
				Phrase:      "gå til fots",
				CrossRef:    "fot",
				Definitions: []dict.Definition{{Content: "spasere"}},
			}},
		},
		{
			ID: 5, Lemma: "gård", Class: dict.Noun, Gender: "m",
			Definitions: []dict.Definition{{Content: "landbrukseiendom"}},
		},
		{
			ID: 6, Lemma: "stor", Class: dict.Adjective,
			Definitions: []dict.Definition{{Content: "av betydelig omfang"}},
		},
	}}
}

func lemmas(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Entry.Lemma
	}
	return out
}

func TestMatchExact(t *testing.T) {
	cands, err := matchExact("hus", testCorpus())
	if err != nil {
		t.Fatalf("matchExact error: %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	if cands[0].Entry.Lemma != "hus" || cands[0].Score != 1.0 || cands[0].Mode != ModeExact {
		t.Errorf("candidate = %s score %v mode %s, want hus 1.0 exact",
			cands[0].Entry.Lemma, cands[0].Score, cands[0].Mode)
	}
}

func TestMatchExactCaseInsensitive(t *testing.T) {
	cands, err := matchExact("HUS", testCorpus())
	if err != nil {
		t.Fatalf("matchExact error: %v", err)
	}
	if len(cands) != 1 || cands[0].Entry.Lemma != "hus" {
		t.Errorf("got %v, want [hus]", lemmas(cands))
	}
}

func TestMatchPrefix(t *testing.T) {
	cands, err := matchPrefix("hus", testCorpus())
	if err != nil {
		t.Fatalf("matchPrefix error: %v", err)
	}
	if got := lemmas(cands); len(got) != 2 || got[0] != "hus" || got[1] != "huse" {
		t.Fatalf("got %v, want [hus huse]", got)
	}
	// Shorter lemma means a larger share of it is the prefix
	if cands[0].Score != 1.0 {
		t.Errorf("hus score = %v, want 1.0", cands[0].Score)
	}
	if cands[1].Score != 0.75 {
		t.Errorf("huse score = %v, want 0.75", cands[1].Score)
	}
}

func TestMatchAnywhere(t *testing.T) {
	cands, err := matchAnywhere("us", testCorpus())
	if err != nil {
		t.Fatalf("matchAnywhere error: %v", err)
	}
	if got := lemmas(cands); len(got) != 3 {
		t.Fatalf("got %v, want hus, huse and sjøhus", got)
	}
	for _, c := range cands {
		switch c.Entry.Lemma {
		case "hus", "huse":
			if c.Score != 0.5 {
				t.Errorf("%s score = %v, want 0.5 (match at rune 1)", c.Entry.Lemma, c.Score)
			}
		case "sjøhus":
			if c.Score != 0.2 {
				t.Errorf("sjøhus score = %v, want 0.2 (match at rune 4)", c.Score)
			}
		}
	}
}

func TestMatchFullText(t *testing.T) {
	cands, err := matchFullText("fots", testCorpus())
	if err != nil {
		t.Fatalf("matchFullText error: %v", err)
	}
	if len(cands) != 1 || cands[0].Entry.Lemma != "gå" {
		t.Fatalf("got %v, want [gå]", lemmas(cands))
	}
	// Once in the definition, once in the expression phrase
	if cands[0].Score != 2.0 {
		t.Errorf("score = %v, want 2.0 occurrences", cands[0].Score)
	}
}

func TestMatchFuzzy(t *testing.T) {
	cands, err := matchFuzzy("huz", 0.6, testCorpus())
	if err != nil {
		t.Fatalf("matchFuzzy error: %v", err)
	}
	if got := lemmas(cands); len(got) != 1 || got[0] != "hus" {
		t.Fatalf("got %v, want [hus]", got)
	}
	if cands[0].Score < 0.66 || cands[0].Score > 0.67 {
		t.Errorf("score = %v, want 2/3", cands[0].Score)
	}
	// Fuzzy hydrates the full entry, not just the lemma
	if len(cands[0].Entry.Definitions) == 0 {
		t.Error("fuzzy candidate missing definitions")
	}
}

func TestMatchFuzzyThreshold(t *testing.T) {
	cands, err := matchFuzzy("huz", 0.9, testCorpus())
	if err != nil {
		t.Fatalf("matchFuzzy error: %v", err)
	}
	if len(cands) != 0 {
		t.Errorf("got %v above threshold 0.9, want none", lemmas(cands))
	}
}

func TestMatchFuzzyTieBreak(t *testing.T) {
	lk := &fakeLookup{entries: []dict.Entry{
		{ID: 10, Lemma: "katte", Class: dict.Noun},
		{ID: 11, Lemma: "katt", Class: dict.Noun},
		{ID: 12, Lemma: "hatt", Class: dict.Noun},
	}}
	cands, err := matchFuzzy("kat", 0.5, lk)
	if err != nil {
		t.Fatalf("matchFuzzy error: %v", err)
	}
	// Base order is lemma length ascending, then alphabetical; scoring
	// reorders later in Rank. hatt and katt are both length 4.
	got := lemmas(cands)
	if len(got) != 3 {
		t.Fatalf("got %v, want 3 candidates", got)
	}
	if got[0] != "hatt" || got[1] != "katt" || got[2] != "katte" {
		t.Errorf("order = %v, want [hatt katt katte]", got)
	}
}

func TestMatchExpressions(t *testing.T) {
	cands, err := matchExpressions("fots", testCorpus())
	if err != nil {
		t.Fatalf("matchExpressions error: %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	c := cands[0]
	if c.Entry.Lemma != "gå" {
		t.Errorf("owning entry = %s, want gå", c.Entry.Lemma)
	}
	if c.Expression == nil || c.Expression.Phrase != "gå til fots" {
		t.Fatalf("expression = %v, want gå til fots", c.Expression)
	}
	if want := "gå til fots (under gå)"; c.Summary() != want {
		t.Errorf("Summary() = %q, want %q", c.Summary(), want)
	}
}

func TestMatchErrorPropagation(t *testing.T) {
	boom := errors.New("database gone")
	lk := &fakeLookup{err: boom}

	for _, mode := range []Mode{ModeExact, ModePrefix, ModeAnywhere, ModeFullText, ModeFuzzy, ModeExpression} {
		_, err := match(Query{Mode: mode, Term: "hus", Threshold: 0.7}, lk)
		if !errors.Is(err, boom) {
			t.Errorf("mode %s: error = %v, want wrapped lookup failure", mode, err)
		}
	}
}

func TestMatchUnknownMode(t *testing.T) {
	if _, err := match(Query{Mode: ModeAuto, Term: "hus"}, testCorpus()); err == nil {
		t.Error("expected error for unclassified mode")
	}
}
