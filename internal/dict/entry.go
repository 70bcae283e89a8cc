// Package dict defines the core data structures for dictionary entries
package dict

import (
	"fmt"
	"strings"
)

// WordClass is the grammatical class of a dictionary entry
type WordClass string

const (
	Noun      WordClass = "NOUN"
	Verb      WordClass = "VERB"
	Adjective WordClass = "ADJ"
	Adverb    WordClass = "ADV"
	Other     WordClass = "OTHER"
	Unknown   WordClass = ""
)

// ParseWordClass maps a stored word-class string to a WordClass value.
// Unrecognized values map to Other, an empty value to Unknown.
func ParseWordClass(s string) WordClass {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NOUN":
		return Noun
	case "VERB":
		return Verb
	case "ADJ":
		return Adjective
	case "ADV":
		return Adverb
	case "":
		return Unknown
	default:
		return Other
	}
}

// Label returns the lowercase bracketed form used in listings, e.g. "[noun]"
func (wc WordClass) Label() string {
	if wc == Unknown {
		return ""
	}
	return "[" + strings.ToLower(string(wc)) + "]"
}

// Gender is the grammatical gender of a noun (empty for other word classes)
type Gender string

const (
	Masculine Gender = "m"
	Feminine  Gender = "f"
	Neuter    Gender = "n"
	NoGender  Gender = ""
)

// Definition is one sense of an entry, possibly with nested sub-senses
type Definition struct {
	Content  string       // Definition text
	Examples []Example    // Example sentences for this sense
	Subs     []Definition // Nested sub-definitions, in display order
}

// Example is a usage citation, optionally with an explanation
type Example struct {
	Quote       string
	Explanation string // May be empty
}

// Expression is a fixed idiomatic phrase nested under an entry,
// with its own definitions and an optional cross-reference lemma
type Expression struct {
	Phrase      string
	Definitions []Definition
	CrossRef    string // Lemma of a related entry (may be empty)
}

// Entry is one immutable dictionary entry as retrieved from the store.
// Entries are created by the ETL pipeline and never mutated here.
type Entry struct {
	ID          int64
	Lemma       string
	Class       WordClass
	Gender      Gender
	Definitions []Definition
	Etymology   string            // May be empty
	Inflections map[string]string // Grammatical form -> inflected value, may be nil
	Expressions []Expression
}

// LemmaRef is a lightweight (id, lemma) pair used for corpus scans
// that do not need the full entry
type LemmaRef struct {
	ID    int64
	Lemma string
}

// Summary returns the one-line description used in selection menus:
// lemma, word class and, for nouns, the gender.
func (e Entry) Summary() string {
	var b strings.Builder
	b.WriteString(e.Lemma)
	if label := e.Class.Label(); label != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
	if e.Class == Noun && e.Gender != NoGender {
		b.WriteString(fmt.Sprintf(" (%s)", e.Gender.Name()))
	}
	return b.String()
}

// HasContent reports whether the entry carries any definitions or expressions
func (e Entry) HasContent() bool {
	return len(e.Definitions) > 0 || len(e.Expressions) > 0
}

// Name returns the Norwegian grammatical name of the gender
func (g Gender) Name() string {
	switch g {
	case Masculine:
		return "hankjønn"
	case Feminine:
		return "hunkjønn"
	case Neuter:
		return "intetkjønn"
	default:
		return string(g)
	}
}
