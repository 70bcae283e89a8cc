// Package store provides read-only access to the pre-built dictionary
// database. The database is produced by the external ETL pipeline; this
// package never mutates it.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sjursen/ordsok/internal/dict"
)

// ErrNotFound is returned when an entry id does not exist
var ErrNotFound = errors.New("entry not found")

// Store wraps the dictionary database connection
type Store struct {
	db   *sql.DB
	path string
}

// Open opens an existing dictionary database in read-only mode.
// It fails if the file does not exist; building the database is the
// ETL pipeline's job, not ours.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dictionary database not found at %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Verify the schema is actually a dictionary database
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='entries'").Scan(&n); err != nil || n == 0 {
		_ = db.Close()
		if err == nil {
			err = errors.New("missing entries table")
		}
		return nil, fmt.Errorf("not a dictionary database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

const entryColumns = "id, lemma, word_class, gender, etymology, inflections"

// FindExact returns entries whose lemma equals term, case-insensitively
func (s *Store) FindExact(term string) ([]dict.Entry, error) {
	rows, err := s.db.Query(
		"SELECT "+entryColumns+" FROM entries WHERE lemma = ? COLLATE NOCASE ORDER BY lemma, id", term)
	if err != nil {
		return nil, fmt.Errorf("exact lookup: %w", err)
	}
	entries, err := s.collectEntries(rows)
	if err != nil {
		return nil, err
	}
	// SQLite NOCASE only folds ASCII; re-verify in Go for å/ø/æ correctness
	out := entries[:0]
	for _, e := range entries {
		if strings.EqualFold(e.Lemma, term) {
			out = append(out, e)
		}
	}
	return out, nil
}

// FindByPrefix returns entries whose lemma starts with term, case-insensitively
func (s *Store) FindByPrefix(term string) ([]dict.Entry, error) {
	rows, err := s.db.Query(
		"SELECT "+entryColumns+" FROM entries WHERE lemma LIKE ? ESCAPE '\\' ORDER BY lemma, id",
		escapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("prefix lookup: %w", err)
	}
	entries, err := s.collectEntries(rows)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(term)
	out := entries[:0]
	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Lemma), lower) {
			out = append(out, e)
		}
	}
	return out, nil
}

// FindContainingLemma returns entries whose lemma contains term anywhere
func (s *Store) FindContainingLemma(term string) ([]dict.Entry, error) {
	rows, err := s.db.Query(
		"SELECT "+entryColumns+" FROM entries WHERE lemma LIKE ? ESCAPE '\\' ORDER BY lemma, id",
		"%"+escapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("substring lookup: %w", err)
	}
	entries, err := s.collectEntries(rows)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(term)
	out := entries[:0]
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Lemma), lower) {
			out = append(out, e)
		}
	}
	return out, nil
}

// FindFullText returns entries where term occurs in the lemma, any
// definition, example, etymology or expression text
func (s *Store) FindFullText(term string) ([]dict.Entry, error) {
	pattern := "%" + escapeLike(term) + "%"
	rows, err := s.db.Query(`
		SELECT DISTINCT e.id, e.lemma, e.word_class, e.gender, e.etymology, e.inflections
		FROM entries e
		LEFT JOIN definitions d ON d.entry_id = e.id
		LEFT JOIN examples x ON x.definition_id = d.id
		LEFT JOIN expressions p ON p.entry_id = e.id
		LEFT JOIN expression_defs pd ON pd.expression_id = p.id
		WHERE e.lemma LIKE ?1 ESCAPE '\'
		   OR e.etymology LIKE ?1 ESCAPE '\'
		   OR d.content LIKE ?1 ESCAPE '\'
		   OR x.quote LIKE ?1 ESCAPE '\'
		   OR p.phrase LIKE ?1 ESCAPE '\'
		   OR pd.content LIKE ?1 ESCAPE '\'
		ORDER BY e.lemma, e.id`, pattern)
	if err != nil {
		return nil, fmt.Errorf("full-text lookup: %w", err)
	}
	return s.collectEntries(rows)
}

// FindExpressions returns entries owning a fixed expression whose phrase
// contains term anywhere
func (s *Store) FindExpressions(term string) ([]dict.Entry, error) {
	pattern := "%" + escapeLike(term) + "%"
	rows, err := s.db.Query(`
		SELECT DISTINCT e.id, e.lemma, e.word_class, e.gender, e.etymology, e.inflections
		FROM entries e
		JOIN expressions p ON p.entry_id = e.id
		WHERE p.phrase LIKE ? ESCAPE '\'
		ORDER BY e.lemma, e.id`, pattern)
	if err != nil {
		return nil, fmt.Errorf("expression lookup: %w", err)
	}
	return s.collectEntries(rows)
}

// AllLemmas returns the id and lemma of every entry, ordered by lemma.
// Restartable corpus scan used by the fuzzy matcher; deliberately does
// not hydrate full entries.
func (s *Store) AllLemmas() ([]dict.LemmaRef, error) {
	rows, err := s.db.Query("SELECT id, lemma FROM entries ORDER BY lemma, id")
	if err != nil {
		return nil, fmt.Errorf("lemma scan: %w", err)
	}
	defer rows.Close()

	var refs []dict.LemmaRef
	for rows.Next() {
		var ref dict.LemmaRef
		if err := rows.Scan(&ref.ID, &ref.Lemma); err != nil {
			return nil, fmt.Errorf("lemma scan: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lemma scan: %w", err)
	}
	return refs, nil
}

// Get returns the fully hydrated entry with the given id
func (s *Store) Get(id int64) (dict.Entry, error) {
	row := s.db.QueryRow("SELECT "+entryColumns+" FROM entries WHERE id = ?", id)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dict.Entry{}, fmt.Errorf("entry %d: %w", id, ErrNotFound)
		}
		return dict.Entry{}, fmt.Errorf("entry %d: %w", id, err)
	}
	if err := s.hydrate(&entry); err != nil {
		return dict.Entry{}, err
	}
	return entry, nil
}

// Stats holds dictionary-wide counts
type Stats struct {
	Entries     int64
	ByClass     map[dict.WordClass]int64
	Definitions int64
	Examples    int64
	Expressions int64
}

// Stats returns dictionary-wide counts for the stats display
func (s *Store) Stats() (Stats, error) {
	st := Stats{ByClass: make(map[dict.WordClass]int64)}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&st.Entries); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM definitions").Scan(&st.Definitions); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM examples").Scan(&st.Examples); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM expressions").Scan(&st.Expressions); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}

	rows, err := s.db.Query("SELECT word_class, COUNT(*) FROM entries GROUP BY word_class")
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var class string
		var count int64
		if err := rows.Scan(&class, &count); err != nil {
			return Stats{}, fmt.Errorf("stats: %w", err)
		}
		st.ByClass[dict.ParseWordClass(class)] += count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanEntry
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (dict.Entry, error) {
	var e dict.Entry
	var class, gender, inflections string
	if err := sc.Scan(&e.ID, &e.Lemma, &class, &gender, &e.Etymology, &inflections); err != nil {
		return dict.Entry{}, err
	}
	e.Class = dict.ParseWordClass(class)
	e.Gender = dict.Gender(gender)
	if inflections != "" {
		if err := json.Unmarshal([]byte(inflections), &e.Inflections); err != nil {
			return dict.Entry{}, fmt.Errorf("decoding inflections for %q: %w", e.Lemma, err)
		}
	}
	return e, nil
}

// collectEntries scans all rows and hydrates each entry
func (s *Store) collectEntries(rows *sql.Rows) ([]dict.Entry, error) {
	defer rows.Close()

	var entries []dict.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}

	for i := range entries {
		if err := s.hydrate(&entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// hydrate loads definitions, examples and expressions for an entry
func (s *Store) hydrate(e *dict.Entry) error {
	defs, err := s.loadDefinitions(e.ID)
	if err != nil {
		return fmt.Errorf("definitions for %q: %w", e.Lemma, err)
	}
	e.Definitions = defs

	exprs, err := s.loadExpressions(e.ID)
	if err != nil {
		return fmt.Errorf("expressions for %q: %w", e.Lemma, err)
	}
	e.Expressions = exprs
	return nil
}

func (s *Store) loadDefinitions(entryID int64) ([]dict.Definition, error) {
	rows, err := s.db.Query(`
		SELECT id, parent_id, content
		FROM definitions
		WHERE entry_id = ?
		ORDER BY position, id`, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type defRow struct {
		id     int64
		parent sql.NullInt64
		def    dict.Definition
	}
	var flat []defRow
	for rows.Next() {
		var r defRow
		if err := rows.Scan(&r.id, &r.parent, &r.def.Content); err != nil {
			return nil, err
		}
		flat = append(flat, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range flat {
		examples, err := s.loadExamples(flat[i].id)
		if err != nil {
			return nil, err
		}
		flat[i].def.Examples = examples
	}

	// Attach sub-definitions to their parents, preserving order.
	// The schema only nests one level deep.
	var top []dict.Definition
	for _, r := range flat {
		if r.parent.Valid {
			continue
		}
		def := r.def
		for _, sub := range flat {
			if sub.parent.Valid && sub.parent.Int64 == r.id {
				def.Subs = append(def.Subs, sub.def)
			}
		}
		top = append(top, def)
	}
	return top, nil
}

func (s *Store) loadExamples(definitionID int64) ([]dict.Example, error) {
	rows, err := s.db.Query(`
		SELECT quote, explanation
		FROM examples
		WHERE definition_id = ?
		ORDER BY id`, definitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var examples []dict.Example
	for rows.Next() {
		var ex dict.Example
		if err := rows.Scan(&ex.Quote, &ex.Explanation); err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, rows.Err()
}

func (s *Store) loadExpressions(entryID int64) ([]dict.Expression, error) {
	rows, err := s.db.Query(`
		SELECT id, phrase, cross_ref
		FROM expressions
		WHERE entry_id = ?
		ORDER BY id`, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type exprRow struct {
		id   int64
		expr dict.Expression
	}
	var flat []exprRow
	for rows.Next() {
		var r exprRow
		if err := rows.Scan(&r.id, &r.expr.Phrase, &r.expr.CrossRef); err != nil {
			return nil, err
		}
		flat = append(flat, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var exprs []dict.Expression
	for _, r := range flat {
		defs, err := s.loadExpressionDefs(r.id)
		if err != nil {
			return nil, err
		}
		r.expr.Definitions = defs
		exprs = append(exprs, r.expr)
	}
	return exprs, nil
}

func (s *Store) loadExpressionDefs(expressionID int64) ([]dict.Definition, error) {
	rows, err := s.db.Query(`
		SELECT content, example
		FROM expression_defs
		WHERE expression_id = ?
		ORDER BY position, id`, expressionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []dict.Definition
	for rows.Next() {
		var def dict.Definition
		var example string
		if err := rows.Scan(&def.Content, &example); err != nil {
			return nil, err
		}
		if example != "" {
			def.Examples = []dict.Example{{Quote: example}}
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// escapeLike escapes LIKE metacharacters so user input matches literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
