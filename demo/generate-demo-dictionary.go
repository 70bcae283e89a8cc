// Command generate-demo-dictionary builds a small dictionary database
// for trying ordsok without the real corpus. The schema matches what
// the ETL pipeline produces.
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE entries (
	id INTEGER PRIMARY KEY,
	lemma TEXT NOT NULL,
	word_class TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT '',
	etymology TEXT NOT NULL DEFAULT '',
	inflections TEXT NOT NULL DEFAULT ''
);
CREATE INDEX idx_entries_lemma ON entries(lemma);
CREATE TABLE definitions (
	id INTEGER PRIMARY KEY,
	entry_id INTEGER NOT NULL REFERENCES entries(id),
	parent_id INTEGER,
	content TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE examples (
	id INTEGER PRIMARY KEY,
	definition_id INTEGER NOT NULL REFERENCES definitions(id),
	quote TEXT NOT NULL,
	explanation TEXT NOT NULL DEFAULT ''
);
CREATE TABLE expressions (
	id INTEGER PRIMARY KEY,
	entry_id INTEGER NOT NULL REFERENCES entries(id),
	phrase TEXT NOT NULL,
	cross_ref TEXT NOT NULL DEFAULT ''
);
CREATE TABLE expression_defs (
	id INTEGER PRIMARY KEY,
	expression_id INTEGER NOT NULL REFERENCES expressions(id),
	content TEXT NOT NULL,
	example TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
);
`

type demoExample struct {
	quote       string
	explanation string
}

type demoDefinition struct {
	content  string
	examples []demoExample
	subs     []string
}

type demoExpression struct {
	phrase   string
	crossRef string
	defs     []string
}

type demoEntry struct {
	lemma       string
	class       string
	gender      string
	etymology   string
	inflections map[string]string
	definitions []demoDefinition
	expressions []demoExpression
}

var entries = []demoEntry{
	{
		lemma:     "hus",
		class:     "NOUN",
		gender:    "n",
		etymology: "norrønt hús",
		inflections: map[string]string{
			"entall":           "hus",
			"bestemt entall":   "huset",
			"flertall":         "hus",
			"bestemt flertall": "husa, husene",
		},
		definitions: []demoDefinition{
			{
				content: "bygning med vegger og tak",
				examples: []demoExample{
					{quote: "et gammelt hus", explanation: "om bygninger"},
					{quote: "bygge hus"},
				},
				subs: []string{"bolig, heim"},
			},
			{
				content: "alle som bor i et hus",
			},
		},
		expressions: []demoExpression{
			{phrase: "fullt hus", defs: []string{"utsolgt forestilling"}},
			{phrase: "gå mann av huse", crossRef: "mann", defs: []string{"møte opp i stort antall"}},
		},
	},
	{
		lemma:     "huse",
		class:     "VERB",
		etymology: "av hus",
		inflections: map[string]string{
			"presens":    "huser",
			"preteritum": "huset",
		},
		definitions: []demoDefinition{
			{
				content:  "gi husrom til",
				examples: []demoExample{{quote: "museet huser en stor samling"}},
			},
		},
	},
	{
		lemma:  "sjøhus",
		class:  "NOUN",
		gender: "n",
		definitions: []demoDefinition{
			{content: "hus ved sjøen til redskap og båter"},
		},
	},
	{
		lemma:     "gå",
		class:     "VERB",
		etymology: "norrønt ganga",
		inflections: map[string]string{
			"presens":    "går",
			"preteritum": "gikk",
			"perfektum":  "gått",
		},
		definitions: []demoDefinition{
			{
				content:  "bevege seg skritt for skritt",
				examples: []demoExample{{quote: "gå en tur", explanation: "til fots"}},
			},
			{
				content: "være i drift, virke",
				examples: []demoExample{{quote: "klokka går"}},
			},
		},
		expressions: []demoExpression{
			{phrase: "gå til fots", crossRef: "fot", defs: []string{"spasere, ikke kjøre"}},
			{phrase: "gå i stå", defs: []string{"stoppe helt opp"}},
		},
	},
	{
		lemma:  "gård",
		class:  "NOUN",
		gender: "m",
		inflections: map[string]string{
			"entall":         "gård",
			"bestemt entall": "gården",
			"flertall":       "gårder",
		},
		definitions: []demoDefinition{
			{content: "landbrukseiendom med bygninger"},
			{content: "større bygning i by, bygård"},
		},
	},
	{
		lemma:     "være",
		class:     "VERB",
		etymology: "norrønt vera",
		definitions: []demoDefinition{
			{content: "eksistere, finnes"},
			{content: "befinne seg"},
		},
	},
	{
		lemma:  "brød",
		class:  "NOUN",
		gender: "n",
		definitions: []demoDefinition{
			{
				content:  "bakverk av mel, vann og gjær",
				examples: []demoExample{{quote: "skjære en skive brød"}},
			},
		},
		expressions: []demoExpression{
			{phrase: "det daglige brød", defs: []string{"livsopphold"}},
		},
	},
	{
		lemma: "stor",
		class: "ADJ",
		inflections: map[string]string{
			"komparativ": "større",
			"superlativ": "størst",
		},
		definitions: []demoDefinition{
			{content: "av betydelig omfang eller størrelse"},
		},
	},
	{
		lemma: "fort",
		class: "ADV",
		definitions: []demoDefinition{
			{content: "raskt, i høyt tempo"},
		},
	},
	{
		lemma:  "fot",
		class:  "NOUN",
		gender: "m",
		definitions: []demoDefinition{
			{content: "kroppsdel nederst på beinet"},
		},
	},
}

func main() {
	demoDir := "demo/data"
	if err := os.MkdirAll(demoDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create demo dir: %v\n", err)
		os.Exit(1)
	}

	dbPath := filepath.Join(demoDir, "ordbok.db")
	_ = os.Remove(dbPath)

	fmt.Printf("Generating demo dictionary: %s\n", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create schema: %v\n", err)
		os.Exit(1)
	}

	if err := insertAll(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to insert entries: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Created %d entries\n", len(entries))
	fmt.Printf("\nTo use with ordsok:\n")
	fmt.Printf("  ordsok --db %s hus\n", dbPath)
}

func insertAll(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range entries {
		inflections := ""
		if len(e.inflections) > 0 {
			data, err := json.Marshal(e.inflections)
			if err != nil {
				return fmt.Errorf("inflections for %q: %w", e.lemma, err)
			}
			inflections = string(data)
		}

		res, err := tx.Exec(
			"INSERT INTO entries (lemma, word_class, gender, etymology, inflections) VALUES (?, ?, ?, ?, ?)",
			e.lemma, e.class, e.gender, e.etymology, inflections)
		if err != nil {
			return fmt.Errorf("entry %q: %w", e.lemma, err)
		}
		entryID, err := res.LastInsertId()
		if err != nil {
			return err
		}

		for pos, d := range e.definitions {
			res, err := tx.Exec(
				"INSERT INTO definitions (entry_id, content, position) VALUES (?, ?, ?)",
				entryID, d.content, pos)
			if err != nil {
				return fmt.Errorf("definition for %q: %w", e.lemma, err)
			}
			defID, err := res.LastInsertId()
			if err != nil {
				return err
			}

			for _, ex := range d.examples {
				if _, err := tx.Exec(
					"INSERT INTO examples (definition_id, quote, explanation) VALUES (?, ?, ?)",
					defID, ex.quote, ex.explanation); err != nil {
					return fmt.Errorf("example for %q: %w", e.lemma, err)
				}
			}

			for subPos, sub := range d.subs {
				if _, err := tx.Exec(
					"INSERT INTO definitions (entry_id, parent_id, content, position) VALUES (?, ?, ?, ?)",
					entryID, defID, sub, subPos); err != nil {
					return fmt.Errorf("sub-definition for %q: %w", e.lemma, err)
				}
			}
		}

		for _, expr := range e.expressions {
			res, err := tx.Exec(
				"INSERT INTO expressions (entry_id, phrase, cross_ref) VALUES (?, ?, ?)",
				entryID, expr.phrase, expr.crossRef)
			if err != nil {
				return fmt.Errorf("expression for %q: %w", e.lemma, err)
			}
			exprID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for pos, content := range expr.defs {
				if _, err := tx.Exec(
					"INSERT INTO expression_defs (expression_id, content, position) VALUES (?, ?, ?)",
					exprID, content, pos); err != nil {
					return fmt.Errorf("expression definition for %q: %w", e.lemma, err)
				}
			}
		}
	}

	return tx.Commit()
}
