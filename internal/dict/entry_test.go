package dict

import "testing"

func TestParseWordClass(t *testing.T) {
	tests := []struct {
		input string
		want  WordClass
	}{
		{"NOUN", Noun},
		{"noun", Noun},
		{" verb ", Verb},
		{"ADJ", Adjective},
		{"ADV", Adverb},
		{"PRON", Other},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := ParseWordClass(tt.input); got != tt.want {
			t.Errorf("ParseWordClass(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWordClassLabel(t *testing.T) {
	if got := Noun.Label(); got != "[noun]" {
		t.Errorf("Noun.Label() = %q, want %q", got, "[noun]")
	}
	if got := Unknown.Label(); got != "" {
		t.Errorf("Unknown.Label() = %q, want empty", got)
	}
}

func TestEntrySummary(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "noun with gender",
			entry: Entry{Lemma: "hus", Class: Noun, Gender: Neuter},
			want:  "hus [noun] (intetkjønn)",
		},
		{
			name:  "verb without gender",
			entry: Entry{Lemma: "gå", Class: Verb},
			want:  "gå [verb]",
		},
		{
			name:  "gender ignored for non-nouns",
			entry: Entry{Lemma: "stor", Class: Adjective, Gender: Masculine},
			want:  "stor [adj]",
		},
		{
			name:  "unknown class",
			entry: Entry{Lemma: "og"},
			want:  "og",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasContent(t *testing.T) {
	empty := Entry{Lemma: "tom"}
	if empty.HasContent() {
		t.Error("entry without definitions or expressions should have no content")
	}

	withDef := Entry{Lemma: "hus", Definitions: []Definition{{Content: "bygning"}}}
	if !withDef.HasContent() {
		t.Error("entry with a definition should have content")
	}

	withExpr := Entry{Lemma: "fot", Expressions: []Expression{{Phrase: "til fots"}}}
	if !withExpr.HasContent() {
		t.Error("entry with an expression should have content")
	}
}
