package search

import (
	"errors"
	"fmt"

	"github.com/sjursen/ordsok/internal/logger"
)

// ErrSelectionCancelled is returned by a Selector when the user backs
// out of the disambiguation menu. The engine maps it to a Cancelled
// outcome, never to an error.
var ErrSelectionCancelled = errors.New("selection cancelled")

// Selector resolves a multi-candidate result to a single choice. The
// interactive disambiguation menu implements it; tests use scripted
// fakes. Select returns the index of the chosen candidate.
type Selector interface {
	Select(cands []Candidate) (int, error)
}

// OutcomeKind tags the result of a Resolve call
type OutcomeKind int

const (
	// KindEmpty means no candidate survived any attempted mode
	KindEmpty OutcomeKind = iota
	// KindResolved means exactly one entry was chosen
	KindResolved
	// KindCancelled means the user dismissed the disambiguation menu
	KindCancelled
	// KindListed carries the ranked candidates when interactive
	// selection is disabled; the caller renders them as a plain list
	KindListed
)

// Outcome is the final result of resolving one query
type Outcome struct {
	Kind       OutcomeKind
	Candidate  Candidate   // Valid when Kind == KindResolved
	Candidates []Candidate // Valid when Kind == KindListed
	Mode       Mode        // Mode that produced the result
}

// Defaults are the configured values applied when an Options field is zero
type Defaults struct {
	Threshold float64
	Limit     int
	PageSize  int
}

// Engine composes classifier, normalizer, matchers, ranker and selector
// into the single public search operation
type Engine struct {
	lookup   Lookup
	norm     *Normalizer
	defaults Defaults
	selector Selector
}

// New creates a search engine. The selector may be nil, in which case
// multi-candidate results are returned as a listing outcome.
func New(lookup Lookup, norm *Normalizer, defaults Defaults, selector Selector) *Engine {
	if norm == nil {
		norm = NewNormalizer(nil)
	}
	return &Engine{lookup: lookup, norm: norm, defaults: defaults, selector: selector}
}

// state of the fallback machine: which mode to try next
type state int

const (
	stateTryExact state = iota
	stateTryFuzzy
	stateTryPrefix
	stateDone
)

// transition returns the next state after an empty result. The chain is
// Exact -> Fuzzy -> Prefix -> done; non-exact modes never fall back.
func transition(s state, fallback bool) state {
	if !fallback {
		return stateDone
	}
	switch s {
	case stateTryExact:
		return stateTryFuzzy
	case stateTryFuzzy:
		return stateTryPrefix
	default:
		return stateDone
	}
}

func (s state) mode() Mode {
	switch s {
	case stateTryExact:
		return ModeExact
	case stateTryFuzzy:
		return ModeFuzzy
	default:
		return ModePrefix
	}
}

// Resolve classifies the raw query, runs the matching strategy (with
// fallback for exact-mode misses when enabled), ranks the candidates
// and reduces them to a single outcome.
//
// Store failures abort the call; they are never treated as zero results.
func (e *Engine) Resolve(raw string, opts Options) (Outcome, error) {
	q, err := Parse(raw, opts)
	if err != nil {
		return Outcome{}, err
	}
	if q.Threshold <= 0 {
		q.Threshold = e.defaults.Threshold
	}
	if q.Limit <= 0 {
		q.Limit = e.defaults.Limit
	}

	cands, mode, err := e.runSearch(q, opts.Fallback)
	if err != nil {
		return Outcome{}, err
	}

	switch len(cands) {
	case 0:
		return Outcome{Kind: KindEmpty, Mode: mode}, nil
	case 1:
		return Outcome{Kind: KindResolved, Candidate: cands[0], Mode: mode}, nil
	}

	if !opts.Interactive || e.selector == nil {
		return Outcome{Kind: KindListed, Candidates: cands, Mode: mode}, nil
	}

	idx, err := e.selector.Select(cands)
	if err != nil {
		if errors.Is(err, ErrSelectionCancelled) {
			return Outcome{Kind: KindCancelled, Mode: mode}, nil
		}
		return Outcome{}, fmt.Errorf("selection: %w", err)
	}
	if idx < 0 || idx >= len(cands) {
		return Outcome{}, fmt.Errorf("selector returned index %d out of range", idx)
	}
	return Outcome{Kind: KindResolved, Candidate: cands[idx], Mode: mode}, nil
}

// runSearch drives the fallback state machine. Every transition is an
// explicit, observable state change, not a hidden retry loop.
func (e *Engine) runSearch(q Query, fallback bool) ([]Candidate, Mode, error) {
	// Non-exact modes run once, with normalizer variants but no fallback
	if q.Mode != ModeExact {
		cands, err := e.tryVariants(q)
		return cands, q.Mode, err
	}

	st := stateTryExact
	for st != stateDone {
		attempt := q
		attempt.Mode = st.mode()
		logger.Debug("search: trying %s mode for %q", attempt.Mode, attempt.Term)

		cands, err := e.tryVariants(attempt)
		if err != nil {
			return nil, attempt.Mode, err
		}
		if len(cands) > 0 {
			return cands, attempt.Mode, nil
		}
		st = transition(st, fallback)
	}
	return nil, ModeExact, nil
}

// tryVariants runs a single mode over each normalizer variant in order;
// the first variant producing a non-empty ranked result wins
func (e *Engine) tryVariants(q Query) ([]Candidate, error) {
	for _, variant := range e.norm.Variants(q.Term) {
		attempt := q
		attempt.Term = variant

		cands, err := match(attempt, e.lookup)
		if err != nil {
			return nil, fmt.Errorf("%s search for %q: %w", q.Mode, variant, err)
		}
		ranked := Rank(cands, q.WordClass, q.Limit)
		if len(ranked) > 0 {
			return ranked, nil
		}
	}
	return nil, nil
}

// Suggest returns a quick candidate list for incremental interfaces:
// prefix matches first, falling back to anywhere matches. Errors are
// propagated; an empty term yields no suggestions.
func (e *Engine) Suggest(term string, limit int) ([]Candidate, error) {
	if term == "" {
		return nil, nil
	}
	q := Query{Mode: ModePrefix, Term: term, Limit: limit}
	cands, err := e.tryVariants(q)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		q.Mode = ModeAnywhere
		cands, err = e.tryVariants(q)
		if err != nil {
			return nil, err
		}
	}
	return cands, nil
}
