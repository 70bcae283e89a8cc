package search

import (
	"errors"
	"strings"

	"github.com/sjursen/ordsok/internal/dict"
)

// ErrInvalidQuery is returned when the cleaned search term is empty
var ErrInvalidQuery = errors.New("invalid query: empty search term")

// Mode selects a search strategy
type Mode int

const (
	// ModeAuto means "detect from query syntax"; it never reaches a matcher
	ModeAuto Mode = iota
	ModeExact
	ModePrefix
	ModeAnywhere
	ModeFullText
	ModeFuzzy
	ModeExpression
)

// String returns the mode name used in output and logs
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModePrefix:
		return "prefix"
	case ModeAnywhere:
		return "anywhere"
	case ModeFullText:
		return "fulltext"
	case ModeFuzzy:
		return "fuzzy"
	case ModeExpression:
		return "expression"
	default:
		return "auto"
	}
}

// Options carries the per-invocation knobs recognized by Resolve.
// Zero values mean "use the configured default".
type Options struct {
	ModeOverride Mode           // Explicit mode flag; wins over query syntax
	WordClass    dict.WordClass // Drop candidates of other word classes
	Limit        int            // Maximum candidates after ranking (0 = default)
	Threshold    float64        // Fuzzy similarity threshold (0 = default)
	Fallback     bool           // Retry exact misses with fuzzy, then prefix
	Interactive  bool           // Run the disambiguation menu on multiple hits
	PageSize     int            // Menu page size (0 = default)
}

// Query is the classified form of a raw query string, immutable after Parse
type Query struct {
	Mode      Mode
	Term      string
	WordClass dict.WordClass
	Limit     int
	Threshold float64
}

// Syntax markers recognized by the classifier
const (
	markerPrefix   = '@' // trailing: hus@
	markerAnywhere = '@' // leading: @hus
	markerFullText = '%' // leading: %hus
)

// Parse classifies a raw query string into a Query.
//
// Precedence: explicit mode override > trailing marker > leading markers.
// When both leading markers are present, full-text wins and both markers
// are stripped from the term. With an explicit override the raw string is
// taken literally, markers included.
func Parse(raw string, opts Options) (Query, error) {
	term := strings.TrimSpace(raw)
	mode := ModeExact

	if opts.ModeOverride != ModeAuto {
		mode = opts.ModeOverride
	} else {
		term, mode = classify(term)
	}

	if term == "" {
		return Query{}, ErrInvalidQuery
	}

	return Query{
		Mode:      mode,
		Term:      term,
		WordClass: opts.WordClass,
		Limit:     opts.Limit,
		Threshold: opts.Threshold,
	}, nil
}

// classify detects marker syntax and strips the markers
func classify(term string) (string, Mode) {
	switch {
	case strings.HasPrefix(term, string(markerFullText)):
		term = strings.TrimPrefix(term, string(markerFullText))
		// Full-text beats anywhere when both leading markers appear
		term = strings.TrimPrefix(term, string(markerAnywhere))
		term = strings.TrimSuffix(term, string(markerPrefix))
		return term, ModeFullText

	case strings.HasPrefix(term, string(markerAnywhere)):
		term = strings.TrimPrefix(term, string(markerAnywhere))
		// @hus@ is equivalent to @hus
		term = strings.TrimSuffix(term, string(markerPrefix))
		return term, ModeAnywhere

	case strings.HasSuffix(term, string(markerPrefix)):
		return strings.TrimSuffix(term, string(markerPrefix)), ModePrefix

	default:
		return term, ModeExact
	}
}
